package importer

import (
	"fmt"
	"strconv"
	"strings"

	"ministryshare/internal/domain/catalog"
	vo "ministryshare/internal/domain/catalog/valueobjects"
	"ministryshare/internal/shared/constants"
)

// subcategoryAliases maps common spreadsheet spellings to canonical
// subcategory codes. Keys are already squash-normalized.
var subcategoryAliases = map[string]vo.Subcategory{
	"CHORAL":        vo.SubcategoryChoirAnthem,
	"ANTHEM":        vo.SubcategoryChoirAnthem,
	"CHOIR":         vo.SubcategoryChoirAnthem,
	"BELLS":         vo.SubcategoryHandbell,
	"HANDBELLS":     vo.SubcategoryHandbell,
	"SHEET":         vo.SubcategorySheetMusic,
	"SCORE":         vo.SubcategorySheetMusic,
	"OTHER":         vo.SubcategoryOtherMusic,
	"DVD":           vo.SubcategoryDVDVideo,
	"VIDEO":         vo.SubcategoryDVDVideo,
	"CURRICULUM":    vo.SubcategoryCurriculumKit,
	"KIT":           vo.SubcategoryCurriculumKit,
	"YOUTH":         vo.SubcategoryYouthCurriculum,
	"CHILDREN":      vo.SubcategoryChildrenCurriculum,
	"KIDS":          vo.SubcategoryChildrenCurriculum,
	"STUDY":         vo.SubcategoryBibleStudy,
	"GUIDE":         vo.SubcategoryLeaderGuide,
	"ACCOMPANIMENT": vo.SubcategoryAccompaniment,
}

// formatAliases maps spreadsheet spellings to canonical format codes.
var formatAliases = map[string]vo.Format{
	"SHEET_MUSIC":  vo.FormatSheet,
	"SHEETMUSIC":   vo.FormatSheet,
	"COMPACT_DISC": vo.FormatCD,
	"DVD_VIDEO":    vo.FormatDVD,
	"PDF":          vo.FormatDigital,
	"DOWNLOAD":     vo.FormatDigital,
	"EBOOK":        vo.FormatDigital,
	"HARDCOVER":    vo.FormatBook,
	"PAPERBACK":    vo.FormatBook,
}

// ValidatedRow is the outcome of validating one import row. A row is usable
// when Errors is empty; warnings are informational only.
type ValidatedRow struct {
	Line           int
	Category       vo.Category
	Title          string
	TitleEs        string
	AuthorComposer string
	Publisher      string
	Description    string
	DescriptionEs  string
	Subcategory    *vo.Subcategory
	Format         *vo.Format
	Quantity       int
	MaxLoanWeeks   *int
	TagIDs         []uint
	NewTagNames    []string
	Errors         []string
	Warnings       []string
}

func (v *ValidatedRow) Valid() bool { return len(v.Errors) == 0 }

// TagIndex resolves tag names case-insensitively.
type TagIndex struct {
	byName map[string]*catalog.Tag
}

func NewTagIndex(tags []*catalog.Tag) *TagIndex {
	idx := &TagIndex{byName: make(map[string]*catalog.Tag, len(tags))}
	for _, t := range tags {
		idx.Add(t)
	}
	return idx
}

func (i *TagIndex) Add(t *catalog.Tag) {
	i.byName[strings.ToLower(t.Name())] = t
}

func (i *TagIndex) Lookup(name string) (*catalog.Tag, bool) {
	t, ok := i.byName[strings.ToLower(strings.TrimSpace(name))]
	return t, ok
}

// ValidateRow checks a single row against the catalog vocabulary. It is pure:
// rows are independent and nothing is persisted here.
func ValidateRow(row Row, tags *TagIndex) ValidatedRow {
	v := ValidatedRow{
		Line:           row.Line,
		Title:          row.Values[colTitle],
		TitleEs:        row.Values[colTitleEs],
		AuthorComposer: row.Values[colAuthorComposer],
		Publisher:      row.Values[colPublisher],
		Description:    row.Values[colDescription],
		DescriptionEs:  row.Values[colDescriptionEs],
		Quantity:       constants.DefaultQuantity,
	}

	category := vo.Category(normalizeCode(row.Values[colCategory]))
	switch {
	case row.Values[colCategory] == "":
		v.Errors = append(v.Errors, "category is required")
	case !category.IsValid():
		v.Errors = append(v.Errors, fmt.Sprintf("unknown category %q", row.Values[colCategory]))
	default:
		v.Category = category
	}

	if v.Title == "" {
		v.Errors = append(v.Errors, "title is required")
	}

	if raw := row.Values[colSubcategory]; raw != "" && category.IsValid() {
		sub := normalizeSubcategory(raw)
		if sub.IsValidFor(category) {
			v.Subcategory = &sub
		} else {
			v.Errors = append(v.Errors, fmt.Sprintf("subcategory %q is not valid for category %s", raw, category))
		}
	}

	if raw := row.Values[colFormat]; raw != "" {
		format := normalizeFormat(raw)
		if format.IsValid() {
			v.Format = &format
		} else {
			v.Errors = append(v.Errors, fmt.Sprintf("unknown format %q", raw))
		}
	}

	if raw := row.Values[colQuantity]; raw != "" {
		qty, err := strconv.Atoi(raw)
		if err != nil || qty < 1 {
			v.Errors = append(v.Errors, fmt.Sprintf("quantity %q must be a positive number", raw))
		} else {
			v.Quantity = qty
		}
	}

	if raw := row.Values[colMaxLoanWeeks]; raw != "" {
		weeks, err := strconv.Atoi(raw)
		if err != nil || weeks < 1 || weeks > constants.MaxLoanWeeksLimit {
			v.Errors = append(v.Errors,
				fmt.Sprintf("max loan weeks %q must be between 1 and %d", raw, constants.MaxLoanWeeksLimit))
		} else {
			v.MaxLoanWeeks = &weeks
		}
	}

	v.TagIDs, v.NewTagNames = resolveTags(row.Values[colTags], tags)
	for _, name := range v.NewTagNames {
		v.Warnings = append(v.Warnings, fmt.Sprintf("tag %q does not exist and will be created", name))
	}
	return v
}

// resolveTags splits the tags cell on commas and semicolons and partitions
// the names into known tag IDs and names that need creating. Duplicate names
// within a row collapse case-insensitively.
func resolveTags(cell string, tags *TagIndex) (ids []uint, newNames []string) {
	if cell == "" {
		return nil, nil
	}
	seen := make(map[string]bool)
	for _, name := range strings.FieldsFunc(cell, func(r rune) bool { return r == ',' || r == ';' }) {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		key := strings.ToLower(name)
		if seen[key] {
			continue
		}
		seen[key] = true
		if tag, ok := tags.Lookup(name); ok {
			ids = append(ids, tag.ID())
		} else {
			newNames = append(newNames, name)
		}
	}
	return ids, newNames
}

// normalizeCode uppercases and converts separators to underscores, so
// "Choir Anthem" and "choir-anthem" both become "CHOIR_ANTHEM".
func normalizeCode(s string) string {
	s = strings.ToUpper(strings.TrimSpace(s))
	s = strings.NewReplacer(" ", "_", "-", "_", "/", "_").Replace(s)
	for strings.Contains(s, "__") {
		s = strings.ReplaceAll(s, "__", "_")
	}
	return s
}

func normalizeSubcategory(raw string) vo.Subcategory {
	code := normalizeCode(raw)
	if alias, ok := subcategoryAliases[code]; ok {
		return alias
	}
	return vo.Subcategory(code)
}

func normalizeFormat(raw string) vo.Format {
	code := normalizeCode(raw)
	if alias, ok := formatAliases[code]; ok {
		return alias
	}
	return vo.Format(code)
}
