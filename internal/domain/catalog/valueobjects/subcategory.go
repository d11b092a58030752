package valueobjects

// Subcategory refines a resource's category. The legal set depends on the
// resource's category.
type Subcategory string

const (
	// Music subcategories
	SubcategoryHymnal        Subcategory = "HYMNAL"
	SubcategorySheetMusic    Subcategory = "SHEET_MUSIC"
	SubcategoryCantata       Subcategory = "CANTATA"
	SubcategoryHandbell      Subcategory = "HANDBELL"
	SubcategoryChoirAnthem   Subcategory = "CHOIR_ANTHEM"
	SubcategoryAccompaniment Subcategory = "ACCOMPANIMENT"
	SubcategoryInstrument    Subcategory = "INSTRUMENT"
	SubcategoryOtherMusic    Subcategory = "OTHER_MUSIC"

	// Study subcategories
	SubcategoryBibleStudy         Subcategory = "BIBLE_STUDY"
	SubcategoryBook               Subcategory = "BOOK"
	SubcategoryCurriculumKit      Subcategory = "CURRICULUM_KIT"
	SubcategoryDVDVideo           Subcategory = "DVD_VIDEO"
	SubcategoryDevotional         Subcategory = "DEVOTIONAL"
	SubcategoryLeaderGuide        Subcategory = "LEADER_GUIDE"
	SubcategoryYouthCurriculum    Subcategory = "YOUTH_CURRICULUM"
	SubcategoryChildrenCurriculum Subcategory = "CHILDREN_CURRICULUM"
	SubcategoryOtherStudy         Subcategory = "OTHER_STUDY"
)

var musicSubcategories = []Subcategory{
	SubcategoryHymnal,
	SubcategorySheetMusic,
	SubcategoryCantata,
	SubcategoryHandbell,
	SubcategoryChoirAnthem,
	SubcategoryAccompaniment,
	SubcategoryInstrument,
	SubcategoryOtherMusic,
}

var studySubcategories = []Subcategory{
	SubcategoryBibleStudy,
	SubcategoryBook,
	SubcategoryCurriculumKit,
	SubcategoryDVDVideo,
	SubcategoryDevotional,
	SubcategoryLeaderGuide,
	SubcategoryYouthCurriculum,
	SubcategoryChildrenCurriculum,
	SubcategoryOtherStudy,
}

// SubcategoriesFor returns the subcategories legal for the given category.
func SubcategoriesFor(c Category) []Subcategory {
	switch c {
	case CategoryMusic:
		return musicSubcategories
	case CategoryStudy:
		return studySubcategories
	default:
		return nil
	}
}

// IsValidFor reports whether the subcategory belongs to the given category.
func (s Subcategory) IsValidFor(c Category) bool {
	for _, sub := range SubcategoriesFor(c) {
		if sub == s {
			return true
		}
	}
	return false
}

func (s Subcategory) String() string {
	return string(s)
}
