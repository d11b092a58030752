// Package catalog provides domain models for the shared resource catalog:
// lendable resources owned by churches and the district-wide tag vocabulary.
package catalog

import (
	"fmt"
	"time"

	vo "ministryshare/internal/domain/catalog/valueobjects"
)

// Attributes holds the optional descriptive metadata of a resource. Title and
// description carry bilingual (English/Spanish) variants.
type Attributes struct {
	TitleEs        string
	AuthorComposer string
	Publisher      string
	Description    string
	DescriptionEs  string
	Subcategory    *vo.Subcategory
	Format         *vo.Format
	Quantity       int
	MaxLoanWeeks   *int
}

// Resource represents a lendable item owned by exactly one church.
type Resource struct {
	id             uint
	churchID       uint
	category       vo.Category
	title          string
	titleEs        string
	authorComposer string
	publisher      string
	description    string
	descriptionEs  string
	subcategory    *vo.Subcategory
	format         *vo.Format
	quantity       int
	maxLoanWeeks   *int
	availability   vo.AvailabilityStatus
	tagIDs         []uint
	createdAt      time.Time
	updatedAt      time.Time
}

// NewResource creates a new resource in AVAILABLE state.
func NewResource(churchID uint, category vo.Category, title string, attrs Attributes) (*Resource, error) {
	if churchID == 0 {
		return nil, fmt.Errorf("church ID is required")
	}
	if !category.IsValid() {
		return nil, fmt.Errorf("invalid category: %s", category)
	}
	if title == "" {
		return nil, fmt.Errorf("title is required")
	}
	if attrs.Subcategory != nil && !attrs.Subcategory.IsValidFor(category) {
		return nil, fmt.Errorf("subcategory %s is not valid for category %s", *attrs.Subcategory, category)
	}
	if attrs.Format != nil && !attrs.Format.IsValid() {
		return nil, fmt.Errorf("invalid format: %s", *attrs.Format)
	}
	if attrs.Quantity < 1 {
		attrs.Quantity = 1
	}
	if attrs.MaxLoanWeeks != nil && (*attrs.MaxLoanWeeks < 1 || *attrs.MaxLoanWeeks > 52) {
		return nil, fmt.Errorf("max loan weeks must be between 1 and 52")
	}

	now := time.Now()
	return &Resource{
		churchID:       churchID,
		category:       category,
		title:          title,
		titleEs:        attrs.TitleEs,
		authorComposer: attrs.AuthorComposer,
		publisher:      attrs.Publisher,
		description:    attrs.Description,
		descriptionEs:  attrs.DescriptionEs,
		subcategory:    attrs.Subcategory,
		format:         attrs.Format,
		quantity:       attrs.Quantity,
		maxLoanWeeks:   attrs.MaxLoanWeeks,
		availability:   vo.AvailabilityAvailable,
		tagIDs:         []uint{},
		createdAt:      now,
		updatedAt:      now,
	}, nil
}

// ReconstructResource reconstructs a resource from persistence.
func ReconstructResource(
	id uint,
	churchID uint,
	category vo.Category,
	title string,
	attrs Attributes,
	availability vo.AvailabilityStatus,
	tagIDs []uint,
	createdAt, updatedAt time.Time,
) (*Resource, error) {
	if id == 0 {
		return nil, fmt.Errorf("resource ID cannot be zero")
	}
	if churchID == 0 {
		return nil, fmt.Errorf("church ID is required")
	}
	if !category.IsValid() {
		return nil, fmt.Errorf("invalid category: %s", category)
	}
	if title == "" {
		return nil, fmt.Errorf("title is required")
	}
	if !availability.IsValid() {
		return nil, fmt.Errorf("invalid availability status: %s", availability)
	}
	if attrs.Quantity < 1 {
		attrs.Quantity = 1
	}
	if tagIDs == nil {
		tagIDs = []uint{}
	}

	return &Resource{
		id:             id,
		churchID:       churchID,
		category:       category,
		title:          title,
		titleEs:        attrs.TitleEs,
		authorComposer: attrs.AuthorComposer,
		publisher:      attrs.Publisher,
		description:    attrs.Description,
		descriptionEs:  attrs.DescriptionEs,
		subcategory:    attrs.Subcategory,
		format:         attrs.Format,
		quantity:       attrs.Quantity,
		maxLoanWeeks:   attrs.MaxLoanWeeks,
		availability:   availability,
		tagIDs:         tagIDs,
		createdAt:      createdAt,
		updatedAt:      updatedAt,
	}, nil
}

func (r *Resource) ID() uint                            { return r.id }
func (r *Resource) ChurchID() uint                      { return r.churchID }
func (r *Resource) Category() vo.Category               { return r.category }
func (r *Resource) Title() string                       { return r.title }
func (r *Resource) TitleEs() string                     { return r.titleEs }
func (r *Resource) AuthorComposer() string              { return r.authorComposer }
func (r *Resource) Publisher() string                   { return r.publisher }
func (r *Resource) Description() string                 { return r.description }
func (r *Resource) DescriptionEs() string               { return r.descriptionEs }
func (r *Resource) Subcategory() *vo.Subcategory        { return r.subcategory }
func (r *Resource) Format() *vo.Format                  { return r.format }
func (r *Resource) Quantity() int                       { return r.quantity }
func (r *Resource) MaxLoanWeeks() *int                  { return r.maxLoanWeeks }
func (r *Resource) Availability() vo.AvailabilityStatus { return r.availability }
func (r *Resource) CreatedAt() time.Time                { return r.createdAt }
func (r *Resource) UpdatedAt() time.Time                { return r.updatedAt }

func (r *Resource) TagIDs() []uint {
	ids := make([]uint, len(r.tagIDs))
	copy(ids, r.tagIDs)
	return ids
}

// SetID assigns the persistence-generated ID after the first save.
func (r *Resource) SetID(id uint) error {
	if r.id != 0 {
		return fmt.Errorf("resource ID already set")
	}
	if id == 0 {
		return fmt.Errorf("resource ID cannot be zero")
	}
	r.id = id
	return nil
}

// SetTagIDs replaces the tag associations.
func (r *Resource) SetTagIDs(ids []uint) {
	if ids == nil {
		ids = []uint{}
	}
	r.tagIDs = ids
	r.updatedAt = time.Now()
}

// IsAvailable reports whether the resource can currently be requested.
func (r *Resource) IsAvailable() bool {
	return r.availability == vo.AvailabilityAvailable
}

// MarkOnLoan transitions the resource to ON_LOAN. Only an AVAILABLE resource
// can go on loan; this is the guard behind the single-active-loan invariant.
func (r *Resource) MarkOnLoan() error {
	if r.availability != vo.AvailabilityAvailable {
		return ErrResourceNotAvailable
	}
	r.availability = vo.AvailabilityOnLoan
	r.updatedAt = time.Now()
	return nil
}

// MarkAvailable transitions the resource back to AVAILABLE (loan returned or
// resource re-listed).
func (r *Resource) MarkAvailable() {
	r.availability = vo.AvailabilityAvailable
	r.updatedAt = time.Now()
}

// MarkUnavailable takes the resource out of circulation (lost loan or manual
// unlisting).
func (r *Resource) MarkUnavailable() {
	r.availability = vo.AvailabilityUnavailable
	r.updatedAt = time.Now()
}

// Update replaces the descriptive fields of the resource. Category changes
// must keep the subcategory legal.
func (r *Resource) Update(category vo.Category, title string, attrs Attributes) error {
	if !category.IsValid() {
		return fmt.Errorf("invalid category: %s", category)
	}
	if title == "" {
		return fmt.Errorf("title is required")
	}
	if attrs.Subcategory != nil && !attrs.Subcategory.IsValidFor(category) {
		return fmt.Errorf("subcategory %s is not valid for category %s", *attrs.Subcategory, category)
	}
	if attrs.Format != nil && !attrs.Format.IsValid() {
		return fmt.Errorf("invalid format: %s", *attrs.Format)
	}
	if attrs.Quantity < 1 {
		attrs.Quantity = 1
	}
	if attrs.MaxLoanWeeks != nil && (*attrs.MaxLoanWeeks < 1 || *attrs.MaxLoanWeeks > 52) {
		return fmt.Errorf("max loan weeks must be between 1 and 52")
	}

	r.category = category
	r.title = title
	r.titleEs = attrs.TitleEs
	r.authorComposer = attrs.AuthorComposer
	r.publisher = attrs.Publisher
	r.description = attrs.Description
	r.descriptionEs = attrs.DescriptionEs
	r.subcategory = attrs.Subcategory
	r.format = attrs.Format
	r.quantity = attrs.Quantity
	r.maxLoanWeeks = attrs.MaxLoanWeeks
	r.updatedAt = time.Now()
	return nil
}
