package models

import (
	"time"

	"ministryshare/internal/shared/constants"
)

// TagModel is the persistence model for the shared tag vocabulary. Name
// uniqueness is enforced case-insensitively at the repository level.
type TagModel struct {
	ID        uint   `gorm:"primarykey"`
	Name      string `gorm:"uniqueIndex;not null;size:100"`
	NameEs    string `gorm:"size:100"`
	Category  string `gorm:"not null;default:BOTH;size:20;index:idx_tags_category"`
	CreatedAt time.Time
}

func (TagModel) TableName() string {
	return constants.TableTags
}
