// Package testsupport builds workbook fixtures for tests.
package testsupport

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/xuri/excelize/v2"
)

// PercentagesRows is a small percentages sheet with two play weeks.
// The header names the marker column "Speelweek" and one row precedes the first marker.
func PercentagesRows() [][]interface{} {
	return [][]interface{}{
		{"Titel", "Perc", "Speelweek", "Code", "Opmerking"},
		{"Voorverkoop", 0.5, 100},
		{nil, nil, "Speelweek 14 jun"},
		{"Avatar: The Way of Water", 0.35, 1200, "X1"},
		{"Inside Out 2", 0.4, 800, "X2"},
		{nil, nil, "Speelweek 21 jun"},
		{"Dune: Part Two", 0.3, 500, "X3"},
		{"Kung Fu Panda 4", 0.25, 300, "X4"},
	}
}

// InvoiceRows is a small invoice export.
func InvoiceRows() [][]interface{} {
	return [][]interface{}{
		{"frm_perc", "master_title_description", "net_rental", "play_week", "ignored"},
		{0.35, "Avatar: The Way of Water", 1200.5, "14-06-2024", "x"},
		{},
		{0.4, "Inside Out 2", 800, "14-06-2024"},
	}
}

// NewWorkbook builds an in-memory workbook with one sheet holding rows.
// Nil values leave the cell blank.
func NewWorkbook(t testing.TB, sheet string, rows [][]interface{}) *excelize.File {
	t.Helper()
	f := excelize.NewFile()
	t.Cleanup(func() { _ = f.Close() })

	if sheet != "Sheet1" {
		if err := f.SetSheetName("Sheet1", sheet); err != nil {
			t.Fatalf("rename sheet: %v", err)
		}
	}
	for r, row := range rows {
		for c, value := range row {
			if value == nil {
				continue
			}
			cell, err := excelize.CoordinatesToCellName(c+1, r+1)
			if err != nil {
				t.Fatalf("cell name: %v", err)
			}
			if err := f.SetCellValue(sheet, cell, value); err != nil {
				t.Fatalf("set %s: %v", cell, err)
			}
		}
	}
	return f
}

// WriteWorkbook saves a one-sheet workbook under t.TempDir and returns its path.
func WriteWorkbook(t testing.TB, sheet string, rows [][]interface{}) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "workbook.xlsx")
	if err := NewWorkbook(t, sheet, rows).SaveAs(path); err != nil {
		t.Fatalf("save workbook: %v", err)
	}
	return path
}

// WorkbookBytes returns a one-sheet workbook as xlsx bytes.
func WorkbookBytes(t testing.TB, sheet string, rows [][]interface{}) []byte {
	t.Helper()
	buf, err := NewWorkbook(t, sheet, rows).WriteToBuffer()
	if err != nil {
		t.Fatalf("write workbook: %v", err)
	}
	return bytes.Clone(buf.Bytes())
}
