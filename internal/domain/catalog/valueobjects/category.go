package valueobjects

// Category classifies a resource as music or study material.
type Category string

const (
	CategoryMusic Category = "MUSIC"
	CategoryStudy Category = "STUDY"
)

func (c Category) IsValid() bool {
	return c == CategoryMusic || c == CategoryStudy
}

func (c Category) String() string {
	return string(c)
}

// Categories returns all valid categories.
func Categories() []Category {
	return []Category{CategoryMusic, CategoryStudy}
}
