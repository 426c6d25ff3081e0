package models

import "strings"

// Table represents one parsed sheet.
type Table struct {
	// Header holds the stringified cells of the first sheet row.
	Header []string `json:"header"`
	// Rows contains every sheet row, the header included as Rows[0].
	Rows []Row `json:"rows"`
}

// Width returns the number of columns in the table.
func (t *Table) Width() int {
	w := len(t.Header)
	for _, row := range t.Rows {
		if len(row.Cells) > w {
			w = len(row.Cells)
		}
	}
	return w
}

// Column returns the index of the header named name.
// Header names are compared after trimming surrounding whitespace.
func (t *Table) Column(name string) (int, bool) {
	want := strings.TrimSpace(name)
	for i, h := range t.Header {
		if strings.TrimSpace(h) == want {
			return i, true
		}
	}
	return -1, false
}

// MissingColumns returns the names from required that have no header.
func (t *Table) MissingColumns(required ...string) []string {
	var missing []string
	for _, name := range required {
		if _, ok := t.Column(name); !ok {
			missing = append(missing, name)
		}
	}
	return missing
}

// DataRows returns the rows following the header.
func (t *Table) DataRows() []Row {
	if len(t.Rows) == 0 {
		return nil
	}
	return t.Rows[1:]
}
