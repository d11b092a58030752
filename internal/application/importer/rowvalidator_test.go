package importer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ministryshare/internal/domain/catalog"
	vo "ministryshare/internal/domain/catalog/valueobjects"
)

func testTagIndex(t *testing.T) *TagIndex {
	t.Helper()
	christmas, err := catalog.NewTag("Christmas", "Navidad", vo.TagCategoryMusic)
	require.NoError(t, err)
	require.NoError(t, christmas.SetID(1))
	adult, err := catalog.NewTag("Adult", "", vo.TagCategoryBoth)
	require.NoError(t, err)
	require.NoError(t, adult.SetID(2))
	return NewTagIndex([]*catalog.Tag{christmas, adult})
}

func row(values map[string]string) Row {
	return Row{Line: 2, Values: values}
}

func TestValidateRow_MinimalValid(t *testing.T) {
	v := ValidateRow(row(map[string]string{
		colCategory: "MUSIC",
		colTitle:    "Hymnal of Faith",
	}), testTagIndex(t))

	assert.True(t, v.Valid())
	assert.Equal(t, vo.CategoryMusic, v.Category)
	assert.Equal(t, 1, v.Quantity)
	assert.Nil(t, v.MaxLoanWeeks)
}

func TestValidateRow_RequiredFields(t *testing.T) {
	tests := []struct {
		name   string
		values map[string]string
	}{
		{"missing category", map[string]string{colTitle: "Hymnal"}},
		{"unknown category", map[string]string{colCategory: "VIDEO", colTitle: "Hymnal"}},
		{"missing title", map[string]string{colCategory: "MUSIC"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := ValidateRow(row(tt.values), testTagIndex(t))
			assert.False(t, v.Valid())
		})
	}
}

func TestValidateRow_SubcategoryAliases(t *testing.T) {
	tests := []struct {
		raw      string
		category string
		want     vo.Subcategory
	}{
		{"CHORAL", "MUSIC", vo.SubcategoryChoirAnthem},
		{"Anthem", "MUSIC", vo.SubcategoryChoirAnthem},
		{"bells", "MUSIC", vo.SubcategoryHandbell},
		{"Sheet Music", "MUSIC", vo.SubcategorySheetMusic},
		{"Score", "MUSIC", vo.SubcategorySheetMusic},
		{"other", "MUSIC", vo.SubcategoryOtherMusic},
		{"DVD", "STUDY", vo.SubcategoryDVDVideo},
		{"children", "STUDY", vo.SubcategoryChildrenCurriculum},
	}
	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			v := ValidateRow(row(map[string]string{
				colCategory:    tt.category,
				colTitle:       "x",
				colSubcategory: tt.raw,
			}), testTagIndex(t))
			require.True(t, v.Valid(), "errors: %v", v.Errors)
			require.NotNil(t, v.Subcategory)
			assert.Equal(t, tt.want, *v.Subcategory)
		})
	}
}

func TestValidateRow_SubcategoryWrongCategory(t *testing.T) {
	v := ValidateRow(row(map[string]string{
		colCategory:    "STUDY",
		colTitle:       "x",
		colSubcategory: "CANTATA",
	}), testTagIndex(t))

	assert.False(t, v.Valid())
}

func TestValidateRow_FormatAliases(t *testing.T) {
	tests := []struct {
		raw  string
		want vo.Format
	}{
		{"SHEET_MUSIC", vo.FormatSheet},
		{"sheet music", vo.FormatSheet},
		{"PDF", vo.FormatDigital},
		{"paperback", vo.FormatBook},
		{"CD", vo.FormatCD},
	}
	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			v := ValidateRow(row(map[string]string{
				colCategory: "MUSIC",
				colTitle:    "x",
				colFormat:   tt.raw,
			}), testTagIndex(t))
			require.True(t, v.Valid(), "errors: %v", v.Errors)
			require.NotNil(t, v.Format)
			assert.Equal(t, tt.want, *v.Format)
		})
	}
}

func TestValidateRow_NumericBounds(t *testing.T) {
	tests := []struct {
		name   string
		values map[string]string
		valid  bool
	}{
		{"quantity zero", map[string]string{colCategory: "MUSIC", colTitle: "x", colQuantity: "0"}, false},
		{"quantity text", map[string]string{colCategory: "MUSIC", colTitle: "x", colQuantity: "many"}, false},
		{"quantity ok", map[string]string{colCategory: "MUSIC", colTitle: "x", colQuantity: "15"}, true},
		{"weeks too high", map[string]string{colCategory: "MUSIC", colTitle: "x", colMaxLoanWeeks: "53"}, false},
		{"weeks ok", map[string]string{colCategory: "MUSIC", colTitle: "x", colMaxLoanWeeks: "52"}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := ValidateRow(row(tt.values), testTagIndex(t))
			assert.Equal(t, tt.valid, v.Valid(), "errors: %v", v.Errors)
		})
	}
}

func TestValidateRow_TagPartitioning(t *testing.T) {
	v := ValidateRow(row(map[string]string{
		colCategory: "MUSIC",
		colTitle:    "x",
		colTags:     "christmas; Easter, ADULT, easter",
	}), testTagIndex(t))

	require.True(t, v.Valid())
	assert.ElementsMatch(t, []uint{1, 2}, v.TagIDs)
	assert.Equal(t, []string{"Easter"}, v.NewTagNames)
	assert.Len(t, v.Warnings, 1)
}
