package importer

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCSV_HeaderAliases(t *testing.T) {
	input := "Category,Title,Title (Spanish),Composer,Qty,Tags\n" +
		"MUSIC,Night of Miracles,Noche de Milagros,John Peterson,30,Christmas\n"

	rows, err := ParseCSV(strings.NewReader(input))

	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, 2, rows[0].Line)
	assert.Equal(t, "Night of Miracles", rows[0].Values[colTitle])
	assert.Equal(t, "Noche de Milagros", rows[0].Values[colTitleEs])
	assert.Equal(t, "John Peterson", rows[0].Values[colAuthorComposer])
	assert.Equal(t, "30", rows[0].Values[colQuantity])
	assert.Equal(t, "Christmas", rows[0].Values[colTags])
}

func TestParseCSV_UnknownHeadersIgnored(t *testing.T) {
	input := "Category,Title,Shelf Location\nMUSIC,Hymnal,A-3\n"

	rows, err := ParseCSV(strings.NewReader(input))

	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Len(t, rows[0].Values, 2)
}

func TestParseCSV_BlankRowsSkipped(t *testing.T) {
	input := "Category,Title\nMUSIC,Hymnal\n,\nSTUDY,Devotional\n"

	rows, err := ParseCSV(strings.NewReader(input))

	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, 2, rows[0].Line)
	assert.Equal(t, 4, rows[1].Line)
}

func TestParseCSV_ShortRecordsTolerated(t *testing.T) {
	input := "Category,Title,Publisher\nMUSIC,Hymnal\n"

	rows, err := ParseCSV(strings.NewReader(input))

	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "", rows[0].Values[colPublisher])
}

func TestParseCSV_MalformedQuoting(t *testing.T) {
	input := "Category,Title\nMUSIC,\"unterminated\n"

	_, err := ParseCSV(strings.NewReader(input))

	assert.Error(t, err)
}

func TestParse_UnsupportedExtension(t *testing.T) {
	_, err := Parse("catalog.pdf", strings.NewReader("x"))
	assert.Error(t, err)
}

func TestParseXLSX_RoundTripThroughTemplate(t *testing.T) {
	data, err := XLSXTemplate()
	require.NoError(t, err)

	rows, err := Parse("template.xlsx", strings.NewReader(string(data)))

	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "MUSIC", rows[0].Values[colCategory])
	assert.Equal(t, "Night of Miracles", rows[0].Values[colTitle])
	assert.Equal(t, "STUDY", rows[1].Values[colCategory])
}

func TestCSVTemplate_ParsesCleanly(t *testing.T) {
	data, err := CSVTemplate()
	require.NoError(t, err)

	rows, err := ParseCSV(strings.NewReader(string(data)))

	require.NoError(t, err)
	require.Len(t, rows, 2)

	index := NewTagIndex(nil)
	for _, row := range rows {
		v := ValidateRow(row, index)
		assert.Empty(t, v.Errors, "template row %d should validate", row.Line)
	}
}
