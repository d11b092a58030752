package valueobjects

// TagCategory scopes a tag to music resources, study resources, or both.
type TagCategory string

const (
	TagCategoryMusic TagCategory = "MUSIC"
	TagCategoryStudy TagCategory = "STUDY"
	TagCategoryBoth  TagCategory = "BOTH"
)

func (t TagCategory) IsValid() bool {
	return t == TagCategoryMusic || t == TagCategoryStudy || t == TagCategoryBoth
}

func (t TagCategory) String() string {
	return string(t)
}

// AppliesTo reports whether a tag with this category may describe a resource
// of the given category.
func (t TagCategory) AppliesTo(c Category) bool {
	if t == TagCategoryBoth {
		return true
	}
	return string(t) == string(c)
}
