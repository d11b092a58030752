package catalog

import (
	"testing"

	vo "ministryshare/internal/domain/catalog/valueobjects"
)

func newTestResource(t *testing.T) *Resource {
	t.Helper()
	r, err := NewResource(1, vo.CategoryMusic, "Amazing Grace Hymnal", Attributes{})
	if err != nil {
		t.Fatalf("NewResource() error = %v, want nil", err)
	}
	return r
}

func TestNewResource(t *testing.T) {
	sub := vo.SubcategoryHymnal
	format := vo.FormatBook
	weeks := 6
	r, err := NewResource(5, vo.CategoryMusic, "Hymnal", Attributes{
		TitleEs:      "Himnario",
		Subcategory:  &sub,
		Format:       &format,
		Quantity:     3,
		MaxLoanWeeks: &weeks,
	})
	if err != nil {
		t.Fatalf("NewResource() error = %v, want nil", err)
	}
	if r.Availability() != vo.AvailabilityAvailable {
		t.Errorf("Availability() = %v, want AVAILABLE", r.Availability())
	}
	if !r.IsAvailable() {
		t.Error("IsAvailable() = false for a new resource")
	}
	if r.Quantity() != 3 {
		t.Errorf("Quantity() = %d, want 3", r.Quantity())
	}
	if len(r.TagIDs()) != 0 {
		t.Errorf("TagIDs() = %v, want empty", r.TagIDs())
	}
}

func TestNewResource_Invalid(t *testing.T) {
	studySub := vo.SubcategoryBibleStudy
	badFormat := vo.Format("VHS")
	zeroWeeks := 0
	tooMany := 53

	tests := []struct {
		name   string
		create func() (*Resource, error)
	}{
		{"zero church", func() (*Resource, error) {
			return NewResource(0, vo.CategoryMusic, "x", Attributes{})
		}},
		{"invalid category", func() (*Resource, error) {
			return NewResource(1, vo.Category("VIDEO"), "x", Attributes{})
		}},
		{"empty title", func() (*Resource, error) {
			return NewResource(1, vo.CategoryMusic, "", Attributes{})
		}},
		{"subcategory from wrong category", func() (*Resource, error) {
			return NewResource(1, vo.CategoryMusic, "x", Attributes{Subcategory: &studySub})
		}},
		{"invalid format", func() (*Resource, error) {
			return NewResource(1, vo.CategoryMusic, "x", Attributes{Format: &badFormat})
		}},
		{"loan weeks below range", func() (*Resource, error) {
			return NewResource(1, vo.CategoryMusic, "x", Attributes{MaxLoanWeeks: &zeroWeeks})
		}},
		{"loan weeks above range", func() (*Resource, error) {
			return NewResource(1, vo.CategoryMusic, "x", Attributes{MaxLoanWeeks: &tooMany})
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := tt.create(); err == nil {
				t.Errorf("NewResource() error = nil, want error")
			}
		})
	}
}

func TestNewResource_QuantityDefaultsToOne(t *testing.T) {
	r, err := NewResource(1, vo.CategoryStudy, "Study Guide", Attributes{Quantity: 0})
	if err != nil {
		t.Fatalf("NewResource() error = %v", err)
	}
	if r.Quantity() != 1 {
		t.Errorf("Quantity() = %d, want default 1", r.Quantity())
	}
}

func TestResource_MarkOnLoan(t *testing.T) {
	r := newTestResource(t)

	if err := r.MarkOnLoan(); err != nil {
		t.Fatalf("MarkOnLoan() error = %v, want nil", err)
	}
	if r.Availability() != vo.AvailabilityOnLoan {
		t.Errorf("Availability() = %v, want ON_LOAN", r.Availability())
	}

	if err := r.MarkOnLoan(); err != ErrResourceNotAvailable {
		t.Errorf("second MarkOnLoan() error = %v, want ErrResourceNotAvailable", err)
	}
}

func TestResource_MarkOnLoan_FromUnavailable(t *testing.T) {
	r := newTestResource(t)
	r.MarkUnavailable()

	if err := r.MarkOnLoan(); err != ErrResourceNotAvailable {
		t.Errorf("MarkOnLoan() error = %v, want ErrResourceNotAvailable", err)
	}
}

func TestResource_AvailabilityRoundTrip(t *testing.T) {
	r := newTestResource(t)

	if err := r.MarkOnLoan(); err != nil {
		t.Fatalf("MarkOnLoan() error = %v", err)
	}
	r.MarkAvailable()
	if !r.IsAvailable() {
		t.Error("IsAvailable() = false after return")
	}
	if err := r.MarkOnLoan(); err != nil {
		t.Errorf("MarkOnLoan() after return error = %v, want nil", err)
	}
}

func TestResource_Update(t *testing.T) {
	r := newTestResource(t)
	sub := vo.SubcategoryBibleStudy

	err := r.Update(vo.CategoryStudy, "Romans Study", Attributes{Subcategory: &sub, Quantity: 2})
	if err != nil {
		t.Fatalf("Update() error = %v, want nil", err)
	}
	if r.Category() != vo.CategoryStudy || r.Title() != "Romans Study" {
		t.Errorf("Update() not applied: category=%v title=%q", r.Category(), r.Title())
	}

	musicSub := vo.SubcategoryHymnal
	if err := r.Update(vo.CategoryStudy, "Romans Study", Attributes{Subcategory: &musicSub}); err == nil {
		t.Error("Update() error = nil, want error for subcategory/category mismatch")
	}
}

func TestResource_SetTagIDs(t *testing.T) {
	r := newTestResource(t)
	r.SetTagIDs([]uint{3, 1, 2})

	got := r.TagIDs()
	if len(got) != 3 {
		t.Fatalf("TagIDs() len = %d, want 3", len(got))
	}

	// mutating the returned slice must not touch the aggregate
	got[0] = 99
	if r.TagIDs()[0] == 99 {
		t.Error("TagIDs() returned the internal slice")
	}
}
