package mappers

import (
	"encoding/json"
	"fmt"

	"gorm.io/datatypes"

	"ministryshare/internal/domain/activity"
	"ministryshare/internal/infrastructure/persistence/models"
)

// ActivityLogMapper handles conversion between audit Entry domain and model.
type ActivityLogMapper interface {
	ToModel(e *activity.Entry) (*models.ActivityLogModel, error)
	ToDomain(model *models.ActivityLogModel) (*activity.Entry, error)
	ToDomainList(modelList []*models.ActivityLogModel) ([]*activity.Entry, error)
}

type activityLogMapperImpl struct{}

// NewActivityLogMapper creates a new ActivityLogMapper.
func NewActivityLogMapper() ActivityLogMapper {
	return &activityLogMapperImpl{}
}

func (m *activityLogMapperImpl) ToModel(e *activity.Entry) (*models.ActivityLogModel, error) {
	var details datatypes.JSON
	if e.Details() != nil {
		raw, err := json.Marshal(e.Details())
		if err != nil {
			return nil, fmt.Errorf("failed to marshal activity details: %w", err)
		}
		details = datatypes.JSON(raw)
	}
	return &models.ActivityLogModel{
		ID:         e.ID(),
		UserID:     e.UserID(),
		Action:     e.Action(),
		EntityType: e.EntityType(),
		EntityID:   e.EntityID(),
		Details:    details,
		CreatedAt:  e.CreatedAt(),
	}, nil
}

func (m *activityLogMapperImpl) ToDomain(model *models.ActivityLogModel) (*activity.Entry, error) {
	var details map[string]any
	if len(model.Details) > 0 {
		if err := json.Unmarshal(model.Details, &details); err != nil {
			return nil, fmt.Errorf("failed to unmarshal activity details: %w", err)
		}
	}
	return activity.ReconstructEntry(
		model.ID,
		model.UserID,
		model.Action,
		model.EntityType,
		model.EntityID,
		details,
		model.CreatedAt,
	)
}

func (m *activityLogMapperImpl) ToDomainList(modelList []*models.ActivityLogModel) ([]*activity.Entry, error) {
	result := make([]*activity.Entry, 0, len(modelList))
	for _, model := range modelList {
		e, err := m.ToDomain(model)
		if err != nil {
			return nil, err
		}
		result = append(result, e)
	}
	return result, nil
}
