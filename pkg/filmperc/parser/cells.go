package parser

import (
	"math"
	"strconv"
	"strings"

	"github.com/filmperc/filmperc-go/pkg/filmperc/models"
	"github.com/xuri/excelize/v2"
)

// ExtractTable reads a sheet into a Table.
// The first row holding any value becomes the header; blank rows above it are skipped.
func ExtractTable(f *excelize.File, sheetName string) (*models.Table, error) {
	rows, err := f.GetRows(sheetName, excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, err
	}
	return BuildTable(rows), nil
}

// BuildTable converts raw sheet rows into a Table padded to a uniform width.
func BuildTable(rows [][]string) *models.Table {
	headerRow, width := dataExtent(rows)
	if headerRow < 0 {
		return &models.Table{}
	}

	table := &models.Table{Rows: make([]models.Row, 0, len(rows)-headerRow)}
	for rowIdx := headerRow; rowIdx < len(rows); rowIdx++ {
		row := rows[rowIdx]
		cells := make([]models.Cell, width)
		for colIdx := 0; colIdx < width && colIdx < len(row); colIdx++ {
			cells[colIdx] = parseValue(row[colIdx])
		}
		table.Rows = append(table.Rows, models.Row{
			R:     rowIdx + 1, // 1-based row index
			Cells: cells,
		})
	}

	table.Header = make([]string, width)
	for i, cell := range table.Rows[0].Cells {
		table.Header[i] = strings.TrimSpace(cell.String())
	}
	return table
}

// parseValue converts a raw cell string into a typed cell.
// Integers and decimals become numbers, "" is empty, anything else stays text.
func parseValue(s string) models.Cell {
	if s == "" {
		return models.Empty()
	}
	if i, err := strconv.ParseInt(s, 10, 64); err == nil {
		return models.Number(float64(i))
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil && !math.IsNaN(f) && !math.IsInf(f, 0) {
		return models.Number(f)
	}
	return models.Text(s)
}
