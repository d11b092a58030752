// Package mappers converts between domain entities and GORM persistence
// models. ToDomain returns an error when a stored row no longer satisfies the
// domain invariants.
package mappers

import (
	"ministryshare/internal/domain/church"
	"ministryshare/internal/infrastructure/persistence/models"
)

// ChurchMapper handles conversion between Church domain and model.
type ChurchMapper interface {
	ToModel(c *church.Church) *models.ChurchModel
	ToDomain(model *models.ChurchModel) (*church.Church, error)
	ToDomainList(modelList []*models.ChurchModel) ([]*church.Church, error)
}

type churchMapperImpl struct{}

// NewChurchMapper creates a new ChurchMapper.
func NewChurchMapper() ChurchMapper {
	return &churchMapperImpl{}
}

func (m *churchMapperImpl) ToModel(c *church.Church) *models.ChurchModel {
	profile := c.Profile()
	return &models.ChurchModel{
		ID:                 c.ID(),
		Name:               c.Name(),
		NameEs:             profile.NameEs,
		Address:            profile.Address,
		City:               profile.City,
		State:              profile.State,
		Zip:                profile.Zip,
		Phone:              profile.Phone,
		Email:              profile.Email,
		Pastor:             profile.Pastor,
		Website:            profile.Website,
		Description:        profile.Description,
		DescriptionEs:      profile.DescriptionEs,
		RegistrationStatus: c.RegistrationStatus().String(),
		RejectionReason:    c.RejectionReason(),
		IsActive:           c.IsActive(),
		CreatedAt:          c.CreatedAt(),
		UpdatedAt:          c.UpdatedAt(),
	}
}

func (m *churchMapperImpl) ToDomain(model *models.ChurchModel) (*church.Church, error) {
	return church.ReconstructChurch(
		model.ID,
		model.Name,
		church.Profile{
			NameEs:        model.NameEs,
			Address:       model.Address,
			City:          model.City,
			State:         model.State,
			Zip:           model.Zip,
			Phone:         model.Phone,
			Email:         model.Email,
			Pastor:        model.Pastor,
			Website:       model.Website,
			Description:   model.Description,
			DescriptionEs: model.DescriptionEs,
		},
		church.RegistrationStatus(model.RegistrationStatus),
		model.RejectionReason,
		model.IsActive,
		model.CreatedAt,
		model.UpdatedAt,
	)
}

func (m *churchMapperImpl) ToDomainList(modelList []*models.ChurchModel) ([]*church.Church, error) {
	result := make([]*church.Church, 0, len(modelList))
	for _, model := range modelList {
		c, err := m.ToDomain(model)
		if err != nil {
			return nil, err
		}
		result = append(result, c)
	}
	return result, nil
}
