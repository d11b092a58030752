package models

import (
	"time"

	"gorm.io/datatypes"

	"ministryshare/internal/shared/constants"
)

// ActivityLogModel is the persistence model for the append-only audit trail.
type ActivityLogModel struct {
	ID         uint   `gorm:"primarykey"`
	UserID     uint   `gorm:"not null;index:idx_activity_logs_user"`
	Action     string `gorm:"not null;size:50;index:idx_activity_logs_action"`
	EntityType string `gorm:"not null;size:30"`
	EntityID   *uint
	Details    datatypes.JSON
	CreatedAt  time.Time `gorm:"index:idx_activity_logs_created"`
}

func (ActivityLogModel) TableName() string {
	return constants.TableActivityLogs
}
