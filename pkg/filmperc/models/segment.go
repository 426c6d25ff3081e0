package models

import "fmt"

// Segment is one play week: the label of a marker row and the data rows under it.
type Segment struct {
	Label string `json:"label"`
	Rows  []Row  `json:"rows"`
	// Columns maps each cell position of Rows to its source column.
	// Nil means the rows still carry every source column.
	Columns []int `json:"columns,omitempty"`
}

// SourceColumn returns the table column behind cell position idx.
func (s *Segment) SourceColumn(idx int) int {
	if s.Columns == nil {
		return idx
	}
	if idx < 0 || idx >= len(s.Columns) {
		return -1
	}
	return s.Columns[idx]
}

// Records renders rows as header-keyed maps, one per row.
func (s *Segment) Records(header []string) []map[string]interface{} {
	return records(s.Rows, s.Columns, header)
}

func records(rows []Row, columns []int, header []string) []map[string]interface{} {
	out := make([]map[string]interface{}, 0, len(rows))
	for _, row := range rows {
		rec := make(map[string]interface{}, len(row.Cells))
		for i, cell := range row.Cells {
			src := i
			if columns != nil && i < len(columns) {
				src = columns[i]
			}
			rec[columnName(header, src)] = cell.Value()
		}
		out = append(out, rec)
	}
	return out
}

func columnName(header []string, idx int) string {
	if idx >= 0 && idx < len(header) && header[idx] != "" {
		return header[idx]
	}
	return fmt.Sprintf("column_%d", idx+1)
}
