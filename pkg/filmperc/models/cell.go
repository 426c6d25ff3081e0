// Package models defines data structures for play-week percentage sheets.
package models

import (
	"encoding/json"
	"strconv"
)

// CellKind tags the value held by a Cell.
type CellKind int

const (
	// CellEmpty is an absent or blank cell.
	CellEmpty CellKind = iota
	// CellText holds a string value.
	CellText
	// CellNumber holds a numeric value.
	CellNumber
)

func (k CellKind) String() string {
	switch k {
	case CellText:
		return "text"
	case CellNumber:
		return "number"
	default:
		return "empty"
	}
}

// Cell is a single spreadsheet value.
type Cell struct {
	Kind CellKind
	Text string
	Num  float64
}

// Empty returns an empty cell.
func Empty() Cell { return Cell{} }

// Text returns a text cell.
func Text(s string) Cell { return Cell{Kind: CellText, Text: s} }

// Number returns a numeric cell.
func Number(v float64) Cell { return Cell{Kind: CellNumber, Num: v} }

// IsEmpty reports whether the cell holds no value.
func (c Cell) IsEmpty() bool {
	return c.Kind == CellEmpty
}

// String renders the cell for comparison and display.
// Numbers use the shortest decimal form without an exponent; empty cells render as "".
func (c Cell) String() string {
	switch c.Kind {
	case CellText:
		return c.Text
	case CellNumber:
		return strconv.FormatFloat(c.Num, 'f', -1, 64)
	default:
		return ""
	}
}

// Value returns the cell as a plain Go value: string, float64 or nil.
func (c Cell) Value() interface{} {
	switch c.Kind {
	case CellText:
		return c.Text
	case CellNumber:
		return c.Num
	default:
		return nil
	}
}

// MarshalJSON encodes the cell as its plain value.
func (c Cell) MarshalJSON() ([]byte, error) {
	return json.Marshal(c.Value())
}

// Row is a single sheet row.
type Row struct {
	// R is the row index in the sheet (1-based).
	R int `json:"r"`
	// Cells holds one value per column, padded to the table width.
	Cells []Cell `json:"c"`
}

// Cell returns the cell at column idx, or an empty cell when out of range.
func (r Row) Cell(idx int) Cell {
	if idx < 0 || idx >= len(r.Cells) {
		return Empty()
	}
	return r.Cells[idx]
}
