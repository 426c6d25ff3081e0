package filmperc

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/filmperc/filmperc-go/pkg/filmperc/models"
	"github.com/filmperc/filmperc-go/pkg/filmperc/parser"
	"github.com/xuri/excelize/v2"
)

// LoadTable reads one sheet of an xlsx workbook. An empty sheet name selects
// the first sheet.
func LoadTable(path, sheet string) (*models.Table, error) {
	f, err := openWorkbook(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	table, _, err := readSheet(f, path, sheet)
	return table, err
}

// LoadInvoices reads the invoice lines of a workbook. Every column in cols
// must be present in the header row. Rows without any of those values are skipped.
func LoadInvoices(path, sheet string, cols InvoiceColumns) ([]models.Invoice, error) {
	f, err := openWorkbook(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	table, sheetName, err := readSheet(f, path, sheet)
	if err != nil {
		return nil, err
	}
	if missing := table.MissingColumns(cols.Names()...); len(missing) > 0 {
		return nil, &MissingColumnError{Sheet: sheetName, Column: missing[0]}
	}

	perc, _ := table.Column(cols.Percentage)
	title, _ := table.Column(cols.Title)
	rental, _ := table.Column(cols.NetRental)
	week, _ := table.Column(cols.PlayWeek)

	invoices := make([]models.Invoice, 0, len(table.DataRows()))
	for _, row := range table.DataRows() {
		inv := models.Invoice{
			R:          row.R,
			Percentage: row.Cell(perc),
			Title:      row.Cell(title),
			NetRental:  row.Cell(rental),
			PlayWeek:   row.Cell(week),
		}
		if inv.Percentage.IsEmpty() && inv.Title.IsEmpty() && inv.NetRental.IsEmpty() && inv.PlayWeek.IsEmpty() {
			continue
		}
		invoices = append(invoices, inv)
	}
	return invoices, nil
}

func openWorkbook(path string) (*excelize.File, error) {
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, NewLoadError(path, "", ErrFileNotFound)
		}
		return nil, NewLoadError(path, "", err)
	}
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, NewLoadError(path, "", fmt.Errorf("%w: %v", ErrInvalidFormat, err))
	}
	return f, nil
}

func readSheet(f *excelize.File, path, sheet string) (*models.Table, string, error) {
	if sheet == "" {
		sheets := f.GetSheetList()
		if len(sheets) == 0 {
			return nil, "", NewLoadError(path, "", ErrSheetNotFound)
		}
		sheet = sheets[0]
	}
	if idx, err := f.GetSheetIndex(sheet); err != nil || idx < 0 {
		return nil, sheet, NewLoadError(path, sheet, ErrSheetNotFound)
	}

	table, err := parser.ExtractTable(f, sheet)
	if err != nil {
		return nil, sheet, NewLoadError(path, sheet, err)
	}
	return table, sheet, nil
}
