package importer

import (
	"bytes"
	"encoding/csv"
	"fmt"

	"github.com/xuri/excelize/v2"
)

var templateHeader = []string{
	"Category", "Title", "Title (Spanish)", "Author/Composer", "Publisher",
	"Description", "Subcategory", "Format", "Quantity", "Max Loan Weeks", "Tags",
}

var templateRows = [][]string{
	{
		"MUSIC", "Night of Miracles", "Noche de Milagros", "John W. Peterson",
		"Singspiration", "Christmas cantata for SATB choir", "CANTATA", "SHEET",
		"30", "8", "Christmas; Choir",
	},
	{
		"STUDY", "Experiencing God", "Mi Experiencia con Dios", "Henry Blackaby",
		"Lifeway", "13-week adult Bible study", "BIBLE_STUDY", "BOOK",
		"12", "", "Adult",
	},
}

// CSVTemplate returns a downloadable CSV import template with example rows.
func CSVTemplate() ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.Write(templateHeader); err != nil {
		return nil, fmt.Errorf("failed to write template header: %w", err)
	}
	for _, row := range templateRows {
		if err := w.Write(row); err != nil {
			return nil, fmt.Errorf("failed to write template row: %w", err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("failed to flush template: %w", err)
	}
	return buf.Bytes(), nil
}

// XLSXTemplate returns the same template as an Excel workbook.
func XLSXTemplate() ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	sheet := f.GetSheetName(0)
	if err := f.SetSheetRow(sheet, "A1", &templateHeader); err != nil {
		return nil, fmt.Errorf("failed to write template header: %w", err)
	}
	for i, row := range templateRows {
		cell := fmt.Sprintf("A%d", i+2)
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return nil, fmt.Errorf("failed to write template row: %w", err)
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("failed to encode workbook: %w", err)
	}
	return buf.Bytes(), nil
}
