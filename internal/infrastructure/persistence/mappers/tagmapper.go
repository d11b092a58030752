package mappers

import (
	"ministryshare/internal/domain/catalog"
	vo "ministryshare/internal/domain/catalog/valueobjects"
	"ministryshare/internal/infrastructure/persistence/models"
)

// TagMapper handles conversion between Tag domain and model.
type TagMapper interface {
	ToModel(t *catalog.Tag) *models.TagModel
	ToDomain(model *models.TagModel) (*catalog.Tag, error)
	ToDomainList(modelList []*models.TagModel) ([]*catalog.Tag, error)
}

type tagMapperImpl struct{}

// NewTagMapper creates a new TagMapper.
func NewTagMapper() TagMapper {
	return &tagMapperImpl{}
}

func (m *tagMapperImpl) ToModel(t *catalog.Tag) *models.TagModel {
	return &models.TagModel{
		ID:        t.ID(),
		Name:      t.Name(),
		NameEs:    t.NameEs(),
		Category:  t.Category().String(),
		CreatedAt: t.CreatedAt(),
	}
}

func (m *tagMapperImpl) ToDomain(model *models.TagModel) (*catalog.Tag, error) {
	return catalog.ReconstructTag(
		model.ID,
		model.Name,
		model.NameEs,
		vo.TagCategory(model.Category),
		model.CreatedAt,
	)
}

func (m *tagMapperImpl) ToDomainList(modelList []*models.TagModel) ([]*catalog.Tag, error) {
	result := make([]*catalog.Tag, 0, len(modelList))
	for _, model := range modelList {
		t, err := m.ToDomain(model)
		if err != nil {
			return nil, err
		}
		result = append(result, t)
	}
	return result, nil
}
