// Package importer implements the bulk catalog import pipeline: file parsing,
// per-row validation, tag reconciliation, and batched persistence.
package importer

import (
	"encoding/csv"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"

	"ministryshare/internal/shared/constants"
)

// Row is one data row from an import file, keyed by canonical column name.
// Line is the 1-based position in the source file, header included, so error
// messages point at the line the user sees in their spreadsheet.
type Row struct {
	Line   int
	Values map[string]string
}

// Canonical column names produced by header normalization.
const (
	colCategory       = "category"
	colTitle          = "title"
	colTitleEs        = "title_es"
	colAuthorComposer = "author_composer"
	colPublisher      = "publisher"
	colDescription    = "description"
	colDescriptionEs  = "description_es"
	colSubcategory    = "subcategory"
	colFormat         = "format"
	colQuantity       = "quantity"
	colMaxLoanWeeks   = "max_loan_weeks"
	colTags           = "tags"
)

// headerAliases maps squashed header text (lowercased, non-letters removed)
// to canonical column names. Unknown headers are ignored.
var headerAliases = map[string]string{
	"category":           colCategory,
	"title":              colTitle,
	"titlees":            colTitleEs,
	"titlespanish":       colTitleEs,
	"spanishtitle":       colTitleEs,
	"author":             colAuthorComposer,
	"composer":           colAuthorComposer,
	"authorcomposer":     colAuthorComposer,
	"publisher":          colPublisher,
	"description":        colDescription,
	"descriptiones":      colDescriptionEs,
	"descriptionspanish": colDescriptionEs,
	"spanishdescription": colDescriptionEs,
	"subcategory":        colSubcategory,
	"format":             colFormat,
	"quantity":           colQuantity,
	"qty":                colQuantity,
	"copies":             colQuantity,
	"maxloanweeks":       colMaxLoanWeeks,
	"loanweeks":          colMaxLoanWeeks,
	"tags":               colTags,
	"tag":                colTags,
}

func normalizeHeader(h string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(h) {
		if r >= 'a' && r <= 'z' {
			b.WriteRune(r)
		}
	}
	return headerAliases[b.String()]
}

// Parse reads an import file, dispatching on the filename extension.
// Supported formats are .csv and .xlsx.
func Parse(filename string, r io.Reader) ([]Row, error) {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".csv":
		return ParseCSV(r)
	case ".xlsx":
		return ParseXLSX(r)
	default:
		return nil, fmt.Errorf("unsupported file type %q, expected .csv or .xlsx", filepath.Ext(filename))
	}
}

// ParseCSV reads CSV rows into header-keyed values. The first record is the
// header. Short records are tolerated, missing cells read as empty.
func ParseCSV(r io.Reader) ([]Row, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("failed to read header row: %w", err)
	}
	columns := canonicalColumns(header)

	var rows []Row
	line := 1
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("malformed CSV at line %d: %w", line+1, err)
		}
		line++
		if len(rows) >= constants.ImportMaxRows {
			return nil, fmt.Errorf("import exceeds the %d row limit", constants.ImportMaxRows)
		}
		if row, ok := buildRow(line, columns, record); ok {
			rows = append(rows, row)
		}
	}
	return rows, nil
}

// ParseXLSX reads the first sheet of an Excel workbook. excelize returns all
// cells as display text, which matches the CSV path.
func ParseXLSX(r io.Reader) ([]Row, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("failed to open workbook: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("workbook has no sheets")
	}
	records, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet %q: %w", sheets[0], err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("sheet %q has no header row", sheets[0])
	}
	columns := canonicalColumns(records[0])

	var rows []Row
	for i, record := range records[1:] {
		if len(rows) >= constants.ImportMaxRows {
			return nil, fmt.Errorf("import exceeds the %d row limit", constants.ImportMaxRows)
		}
		if row, ok := buildRow(i+2, columns, record); ok {
			rows = append(rows, row)
		}
	}
	return rows, nil
}

// canonicalColumns maps each header position to its canonical name, or "" for
// headers the importer does not recognize.
func canonicalColumns(header []string) []string {
	columns := make([]string, len(header))
	for i, h := range header {
		columns[i] = normalizeHeader(h)
	}
	return columns
}

// buildRow assembles a row, skipping rows that are entirely blank.
func buildRow(line int, columns, record []string) (Row, bool) {
	values := make(map[string]string, len(columns))
	blank := true
	for i, cell := range record {
		if i >= len(columns) || columns[i] == "" {
			continue
		}
		cell = strings.TrimSpace(cell)
		if cell != "" {
			blank = false
		}
		values[columns[i]] = cell
	}
	if blank {
		return Row{}, false
	}
	return Row{Line: line, Values: values}, true
}
