package mappers

import (
	"ministryshare/internal/domain/catalog"
	vo "ministryshare/internal/domain/catalog/valueobjects"
	"ministryshare/internal/infrastructure/persistence/models"
)

// ResourceMapper handles conversion between Resource domain and model. Tag
// associations live in the join table and are passed alongside the model.
type ResourceMapper interface {
	ToModel(r *catalog.Resource) *models.ResourceModel
	ToDomain(model *models.ResourceModel, tagIDs []uint) (*catalog.Resource, error)
}

type resourceMapperImpl struct{}

// NewResourceMapper creates a new ResourceMapper.
func NewResourceMapper() ResourceMapper {
	return &resourceMapperImpl{}
}

func (m *resourceMapperImpl) ToModel(r *catalog.Resource) *models.ResourceModel {
	var subcategory *string
	if s := r.Subcategory(); s != nil {
		v := s.String()
		subcategory = &v
	}
	var format *string
	if f := r.Format(); f != nil {
		v := f.String()
		format = &v
	}
	return &models.ResourceModel{
		ID:                 r.ID(),
		ChurchID:           r.ChurchID(),
		Category:           r.Category().String(),
		Title:              r.Title(),
		TitleEs:            r.TitleEs(),
		AuthorComposer:     r.AuthorComposer(),
		Publisher:          r.Publisher(),
		Description:        r.Description(),
		DescriptionEs:      r.DescriptionEs(),
		Subcategory:        subcategory,
		Format:             format,
		Quantity:           r.Quantity(),
		MaxLoanWeeks:       r.MaxLoanWeeks(),
		AvailabilityStatus: r.Availability().String(),
		CreatedAt:          r.CreatedAt(),
		UpdatedAt:          r.UpdatedAt(),
	}
}

func (m *resourceMapperImpl) ToDomain(model *models.ResourceModel, tagIDs []uint) (*catalog.Resource, error) {
	var subcategory *vo.Subcategory
	if model.Subcategory != nil {
		v := vo.Subcategory(*model.Subcategory)
		subcategory = &v
	}
	var format *vo.Format
	if model.Format != nil {
		v := vo.Format(*model.Format)
		format = &v
	}
	return catalog.ReconstructResource(
		model.ID,
		model.ChurchID,
		vo.Category(model.Category),
		model.Title,
		catalog.Attributes{
			TitleEs:        model.TitleEs,
			AuthorComposer: model.AuthorComposer,
			Publisher:      model.Publisher,
			Description:    model.Description,
			DescriptionEs:  model.DescriptionEs,
			Subcategory:    subcategory,
			Format:         format,
			Quantity:       model.Quantity,
			MaxLoanWeeks:   model.MaxLoanWeeks,
		},
		vo.AvailabilityStatus(model.AvailabilityStatus),
		tagIDs,
		model.CreatedAt,
		model.UpdatedAt,
	)
}
