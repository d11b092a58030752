// Package church models the member congregations of the district and their
// registration lifecycle.
package church

import (
	"fmt"
	"strings"
	"time"
)

// RegistrationStatus tracks a church through admin review. PENDING is the
// only state from which Approve or Reject is allowed.
type RegistrationStatus string

const (
	RegistrationPending  RegistrationStatus = "PENDING"
	RegistrationApproved RegistrationStatus = "APPROVED"
	RegistrationRejected RegistrationStatus = "REJECTED"
)

func (s RegistrationStatus) IsValid() bool {
	return s == RegistrationPending || s == RegistrationApproved || s == RegistrationRejected
}

func (s RegistrationStatus) String() string {
	return string(s)
}

// Profile holds the optional descriptive fields of a church.
type Profile struct {
	NameEs        string
	Address       string
	City          string
	State         string
	Zip           string
	Phone         string
	Email         string
	Pastor        string
	Website       string
	Description   string
	DescriptionEs string
}

// Church is a member congregation. Resources, users and loans all hang off a
// church.
type Church struct {
	id                 uint
	name               string
	profile            Profile
	registrationStatus RegistrationStatus
	rejectionReason    string
	isActive           bool
	createdAt          time.Time
	updatedAt          time.Time
}

// NewChurch creates a church awaiting admin review. Self-registered churches
// start PENDING and inactive.
func NewChurch(name string, profile Profile) (*Church, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("church name is required")
	}
	if len(name) > 200 {
		return nil, fmt.Errorf("church name exceeds 200 characters")
	}

	now := time.Now()
	return &Church{
		name:               name,
		profile:            profile,
		registrationStatus: RegistrationPending,
		isActive:           false,
		createdAt:          now,
		updatedAt:          now,
	}, nil
}

// NewApprovedChurch creates a church directly in APPROVED active state, used
// when an admin adds a church by hand.
func NewApprovedChurch(name string, profile Profile) (*Church, error) {
	c, err := NewChurch(name, profile)
	if err != nil {
		return nil, err
	}
	c.registrationStatus = RegistrationApproved
	c.isActive = true
	return c, nil
}

// ReconstructChurch reconstructs a church from persistence.
func ReconstructChurch(
	id uint,
	name string,
	profile Profile,
	registrationStatus RegistrationStatus,
	rejectionReason string,
	isActive bool,
	createdAt, updatedAt time.Time,
) (*Church, error) {
	if id == 0 {
		return nil, fmt.Errorf("church ID cannot be zero")
	}
	if name == "" {
		return nil, fmt.Errorf("church name is required")
	}
	if !registrationStatus.IsValid() {
		return nil, fmt.Errorf("invalid registration status: %s", registrationStatus)
	}

	return &Church{
		id:                 id,
		name:               name,
		profile:            profile,
		registrationStatus: registrationStatus,
		rejectionReason:    rejectionReason,
		isActive:           isActive,
		createdAt:          createdAt,
		updatedAt:          updatedAt,
	}, nil
}

func (c *Church) ID() uint                               { return c.id }
func (c *Church) Name() string                           { return c.name }
func (c *Church) Profile() Profile                       { return c.profile }
func (c *Church) RegistrationStatus() RegistrationStatus { return c.registrationStatus }
func (c *Church) RejectionReason() string                { return c.rejectionReason }
func (c *Church) IsActive() bool                         { return c.isActive }
func (c *Church) CreatedAt() time.Time                   { return c.createdAt }
func (c *Church) UpdatedAt() time.Time                   { return c.updatedAt }

func (c *Church) SetID(id uint) error {
	if c.id != 0 {
		return fmt.Errorf("church ID already set")
	}
	if id == 0 {
		return fmt.Errorf("church ID cannot be zero")
	}
	c.id = id
	return nil
}

// CanParticipate reports whether the church may own resources and borrow.
func (c *Church) CanParticipate() bool {
	return c.registrationStatus == RegistrationApproved && c.isActive
}

// Approve moves a pending church to APPROVED and activates it.
func (c *Church) Approve() error {
	if c.registrationStatus != RegistrationPending {
		return ErrChurchNotPending
	}
	c.registrationStatus = RegistrationApproved
	c.isActive = true
	c.updatedAt = time.Now()
	return nil
}

// Reject moves a pending church to REJECTED with an optional reason.
func (c *Church) Reject(reason string) error {
	if c.registrationStatus != RegistrationPending {
		return ErrChurchNotPending
	}
	if len(reason) > 1000 {
		return fmt.Errorf("rejection reason exceeds 1000 characters")
	}
	c.registrationStatus = RegistrationRejected
	c.rejectionReason = reason
	c.isActive = false
	c.updatedAt = time.Now()
	return nil
}

// Activate re-enables an approved church.
func (c *Church) Activate() error {
	if c.registrationStatus != RegistrationApproved {
		return ErrChurchNotApproved
	}
	c.isActive = true
	c.updatedAt = time.Now()
	return nil
}

// Deactivate suspends the church without losing its data.
func (c *Church) Deactivate() {
	c.isActive = false
	c.updatedAt = time.Now()
}

// Update replaces the church's name and profile.
func (c *Church) Update(name string, profile Profile) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return fmt.Errorf("church name is required")
	}
	if len(name) > 200 {
		return fmt.Errorf("church name exceeds 200 characters")
	}
	c.name = name
	c.profile = profile
	c.updatedAt = time.Now()
	return nil
}
