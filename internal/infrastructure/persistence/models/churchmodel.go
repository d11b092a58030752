package models

import (
	"time"

	"ministryshare/internal/shared/constants"
)

// ChurchModel is the persistence model for churches.
type ChurchModel struct {
	ID                 uint   `gorm:"primarykey"`
	Name               string `gorm:"uniqueIndex;not null;size:200"`
	NameEs             string `gorm:"size:200"`
	Address            string `gorm:"size:255"`
	City               string `gorm:"size:100"`
	State              string `gorm:"size:50"`
	Zip                string `gorm:"size:20"`
	Phone              string `gorm:"size:30"`
	Email              string `gorm:"size:255"`
	Pastor             string `gorm:"size:100"`
	Website            string `gorm:"size:255"`
	Description        string `gorm:"type:text"`
	DescriptionEs      string `gorm:"type:text"`
	RegistrationStatus string `gorm:"not null;default:PENDING;size:20;index:idx_churches_status"`
	RejectionReason    string `gorm:"type:text"`
	IsActive           bool   `gorm:"not null;default:false"`
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

func (ChurchModel) TableName() string {
	return constants.TableChurches
}
