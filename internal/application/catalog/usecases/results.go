// Package usecases implements catalog operations: resource CRUD, searching
// and filtering, and the shared tag vocabulary.
package usecases

import (
	"context"
	"time"

	"ministryshare/internal/domain/catalog"
)

// ResourceResult is the API-facing shape of a resource.
type ResourceResult struct {
	ID             uint      `json:"id"`
	ChurchID       uint      `json:"church_id"`
	Category       string    `json:"category"`
	Title          string    `json:"title"`
	TitleEs        string    `json:"title_es,omitempty"`
	AuthorComposer string    `json:"author_composer,omitempty"`
	Publisher      string    `json:"publisher,omitempty"`
	Description    string    `json:"description,omitempty"`
	DescriptionEs  string    `json:"description_es,omitempty"`
	Subcategory    *string   `json:"subcategory,omitempty"`
	Format         *string   `json:"format,omitempty"`
	Quantity       int       `json:"quantity"`
	MaxLoanWeeks   *int      `json:"max_loan_weeks,omitempty"`
	Availability   string    `json:"availability_status"`
	TagIDs         []uint    `json:"tag_ids"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

func toResourceResult(r *catalog.Resource) *ResourceResult {
	result := &ResourceResult{
		ID:             r.ID(),
		ChurchID:       r.ChurchID(),
		Category:       r.Category().String(),
		Title:          r.Title(),
		TitleEs:        r.TitleEs(),
		AuthorComposer: r.AuthorComposer(),
		Publisher:      r.Publisher(),
		Description:    r.Description(),
		DescriptionEs:  r.DescriptionEs(),
		Quantity:       r.Quantity(),
		MaxLoanWeeks:   r.MaxLoanWeeks(),
		Availability:   r.Availability().String(),
		TagIDs:         r.TagIDs(),
		CreatedAt:      r.CreatedAt(),
		UpdatedAt:      r.UpdatedAt(),
	}
	if s := r.Subcategory(); s != nil {
		v := s.String()
		result.Subcategory = &v
	}
	if f := r.Format(); f != nil {
		v := f.String()
		result.Format = &v
	}
	return result
}

// TagResult is the API-facing shape of a tag.
type TagResult struct {
	ID       uint   `json:"id"`
	Name     string `json:"name"`
	NameEs   string `json:"name_es,omitempty"`
	Category string `json:"category"`
}

func toTagResult(t *catalog.Tag) TagResult {
	return TagResult{
		ID:       t.ID(),
		Name:     t.Name(),
		NameEs:   t.NameEs(),
		Category: t.Category().String(),
	}
}

// TransactionManager runs a function inside one database transaction.
type TransactionManager interface {
	RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}
