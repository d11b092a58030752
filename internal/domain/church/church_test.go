package church

import "testing"

func newPendingChurch(t *testing.T) *Church {
	t.Helper()
	c, err := NewChurch("First Methodist", Profile{City: "Lubbock", State: "TX"})
	if err != nil {
		t.Fatalf("NewChurch() error = %v, want nil", err)
	}
	return c
}

func TestNewChurch(t *testing.T) {
	c := newPendingChurch(t)

	if c.RegistrationStatus() != RegistrationPending {
		t.Errorf("RegistrationStatus() = %v, want PENDING", c.RegistrationStatus())
	}
	if c.IsActive() {
		t.Error("IsActive() = true, self-registered churches start inactive")
	}
	if c.CanParticipate() {
		t.Error("CanParticipate() = true for a pending church")
	}
}

func TestNewChurch_Invalid(t *testing.T) {
	if _, err := NewChurch("", Profile{}); err == nil {
		t.Error("NewChurch(\"\") error = nil, want error")
	}
	if _, err := NewChurch("   ", Profile{}); err == nil {
		t.Error("NewChurch(whitespace) error = nil, want error")
	}
}

func TestNewApprovedChurch(t *testing.T) {
	c, err := NewApprovedChurch("District Office", Profile{})
	if err != nil {
		t.Fatalf("NewApprovedChurch() error = %v, want nil", err)
	}
	if c.RegistrationStatus() != RegistrationApproved {
		t.Errorf("RegistrationStatus() = %v, want APPROVED", c.RegistrationStatus())
	}
	if !c.CanParticipate() {
		t.Error("CanParticipate() = false for an admin-created church")
	}
}

func TestChurch_Approve(t *testing.T) {
	c := newPendingChurch(t)

	if err := c.Approve(); err != nil {
		t.Fatalf("Approve() error = %v, want nil", err)
	}
	if !c.CanParticipate() {
		t.Error("CanParticipate() = false after approval")
	}

	if err := c.Approve(); err != ErrChurchNotPending {
		t.Errorf("second Approve() error = %v, want ErrChurchNotPending", err)
	}
}

func TestChurch_Reject(t *testing.T) {
	c := newPendingChurch(t)

	if err := c.Reject("not in our district"); err != nil {
		t.Fatalf("Reject() error = %v, want nil", err)
	}
	if c.RegistrationStatus() != RegistrationRejected {
		t.Errorf("RegistrationStatus() = %v, want REJECTED", c.RegistrationStatus())
	}
	if c.RejectionReason() != "not in our district" {
		t.Errorf("RejectionReason() = %q", c.RejectionReason())
	}

	if err := c.Approve(); err != ErrChurchNotPending {
		t.Errorf("Approve() after rejection error = %v, want ErrChurchNotPending", err)
	}
}

func TestChurch_ActivateDeactivate(t *testing.T) {
	c := newPendingChurch(t)

	if err := c.Activate(); err != ErrChurchNotApproved {
		t.Errorf("Activate() on pending church error = %v, want ErrChurchNotApproved", err)
	}

	if err := c.Approve(); err != nil {
		t.Fatalf("Approve() error = %v", err)
	}

	c.Deactivate()
	if c.CanParticipate() {
		t.Error("CanParticipate() = true after deactivation")
	}

	if err := c.Activate(); err != nil {
		t.Fatalf("Activate() error = %v, want nil", err)
	}
	if !c.CanParticipate() {
		t.Error("CanParticipate() = false after reactivation")
	}
}

func TestChurch_Update(t *testing.T) {
	c := newPendingChurch(t)

	if err := c.Update("First UMC Lubbock", Profile{City: "Lubbock", State: "TX", Pastor: "Rev. Ortiz"}); err != nil {
		t.Fatalf("Update() error = %v, want nil", err)
	}
	if c.Name() != "First UMC Lubbock" {
		t.Errorf("Name() = %q", c.Name())
	}
	if c.Profile().Pastor != "Rev. Ortiz" {
		t.Errorf("Profile().Pastor = %q", c.Profile().Pastor)
	}

	if err := c.Update("", Profile{}); err == nil {
		t.Error("Update(\"\") error = nil, want error")
	}
}
