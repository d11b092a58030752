package catalog

import (
	"fmt"
	"strings"
	"time"

	vo "ministryshare/internal/domain/catalog/valueobjects"
)

// Tag is a district-wide vocabulary entry shared by all churches. Tag names
// are unique case-insensitively.
type Tag struct {
	id        uint
	name      string
	nameEs    string
	category  vo.TagCategory
	createdAt time.Time
}

// NewTag creates a tag. The name is trimmed; uniqueness against existing tags
// is the repository's concern.
func NewTag(name, nameEs string, category vo.TagCategory) (*Tag, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("tag name is required")
	}
	if len(name) > 100 {
		return nil, fmt.Errorf("tag name exceeds 100 characters")
	}
	if !category.IsValid() {
		return nil, fmt.Errorf("invalid tag category: %s", category)
	}
	return &Tag{
		name:      name,
		nameEs:    strings.TrimSpace(nameEs),
		category:  category,
		createdAt: time.Now(),
	}, nil
}

// ReconstructTag reconstructs a tag from persistence.
func ReconstructTag(id uint, name, nameEs string, category vo.TagCategory, createdAt time.Time) (*Tag, error) {
	if id == 0 {
		return nil, fmt.Errorf("tag ID cannot be zero")
	}
	if name == "" {
		return nil, fmt.Errorf("tag name is required")
	}
	if !category.IsValid() {
		return nil, fmt.Errorf("invalid tag category: %s", category)
	}
	return &Tag{
		id:        id,
		name:      name,
		nameEs:    nameEs,
		category:  category,
		createdAt: createdAt,
	}, nil
}

func (t *Tag) ID() uint                 { return t.id }
func (t *Tag) Name() string             { return t.name }
func (t *Tag) NameEs() string           { return t.nameEs }
func (t *Tag) Category() vo.TagCategory { return t.category }
func (t *Tag) CreatedAt() time.Time     { return t.createdAt }

func (t *Tag) SetID(id uint) error {
	if t.id != 0 {
		return fmt.Errorf("tag ID already set")
	}
	if id == 0 {
		return fmt.Errorf("tag ID cannot be zero")
	}
	t.id = id
	return nil
}

// EqualName compares tag names case-insensitively.
func (t *Tag) EqualName(name string) bool {
	return strings.EqualFold(t.name, strings.TrimSpace(name))
}
