package models

import (
	"time"

	"ministryshare/internal/shared/constants"
)

// ResourceModel is the persistence model for catalog resources.
type ResourceModel struct {
	ID                 uint    `gorm:"primarykey"`
	ChurchID           uint    `gorm:"not null;index:idx_resources_church"`
	Category           string  `gorm:"not null;size:20;index:idx_resources_category"`
	Title              string  `gorm:"not null;size:255;index:idx_resources_title"`
	TitleEs            string  `gorm:"size:255"`
	AuthorComposer     string  `gorm:"size:255"`
	Publisher          string  `gorm:"size:255"`
	Description        string  `gorm:"type:text"`
	DescriptionEs      string  `gorm:"type:text"`
	Subcategory        *string `gorm:"size:50;index:idx_resources_subcategory"`
	Format             *string `gorm:"size:20"`
	Quantity           int     `gorm:"not null;default:1"`
	MaxLoanWeeks       *int
	AvailabilityStatus string `gorm:"not null;default:AVAILABLE;size:20;index:idx_resources_availability"`
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

func (ResourceModel) TableName() string {
	return constants.TableResources
}

// ResourceTagModel is the join table linking resources to tags.
type ResourceTagModel struct {
	ResourceID uint `gorm:"primaryKey;autoIncrement:false"`
	TagID      uint `gorm:"primaryKey;autoIncrement:false;index:idx_resource_tags_tag"`
}

func (ResourceTagModel) TableName() string {
	return constants.TableResourceTags
}
