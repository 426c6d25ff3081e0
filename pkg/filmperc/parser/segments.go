package parser

import (
	"strings"

	"github.com/filmperc/filmperc-go/pkg/filmperc/models"
)

// Segment splits the data rows of a table into play weeks.
// A row whose marker cell is text containing the layout keyword opens a new
// segment labeled with that text; the marker row itself carries no data.
// Rows before the first marker are dropped.
func Segment(table *models.Table, layout models.Layout) []models.Segment {
	var segments []models.Segment
	var current *models.Segment

	for _, row := range table.DataRows() {
		marker := row.Cell(layout.MarkerColumn)
		if isMarker(marker, layout.MarkerKeyword) {
			if current != nil {
				segments = append(segments, *current)
			}
			current = &models.Segment{Label: marker.Text}
			continue
		}
		if current != nil {
			current.Rows = append(current.Rows, row)
		}
	}

	if current != nil {
		segments = append(segments, *current)
	}
	return segments
}

func isMarker(c models.Cell, keyword string) bool {
	return c.Kind == models.CellText && strings.Contains(c.Text, keyword)
}

// CleanSegment drops the columns that are empty in every row of seg, then
// drops the cleaned column at layout.DropColumn when more than DropColumn
// columns are left. seg is not modified.
func CleanSegment(seg models.Segment, layout models.Layout) models.Segment {
	width := 0
	for _, row := range seg.Rows {
		if len(row.Cells) > width {
			width = len(row.Cells)
		}
	}

	keep := make([]int, 0, width)
	for col := 0; col < width; col++ {
		for _, row := range seg.Rows {
			if !row.Cell(col).IsEmpty() {
				keep = append(keep, col)
				break
			}
		}
	}

	if d := layout.DropColumn; d >= 0 && len(keep) > d {
		keep = append(keep[:d:d], keep[d+1:]...)
	}

	out := models.Segment{
		Label:   seg.Label,
		Rows:    make([]models.Row, 0, len(seg.Rows)),
		Columns: make([]int, len(keep)),
	}
	for i, col := range keep {
		out.Columns[i] = seg.SourceColumn(col)
	}
	for _, row := range seg.Rows {
		cells := make([]models.Cell, len(keep))
		for i, col := range keep {
			cells[i] = row.Cell(col)
		}
		out.Rows = append(out.Rows, models.Row{R: row.R, Cells: cells})
	}
	return out
}

// DuplicateLabels returns the labels carried by more than one segment, in
// order of first appearance. Labels have no year, so a sheet spanning several
// years can repeat one.
func DuplicateLabels(segments []models.Segment) []string {
	seen := make(map[string]int, len(segments))
	var dups []string
	for _, seg := range segments {
		seen[seg.Label]++
		if seen[seg.Label] == 2 {
			dups = append(dups, seg.Label)
		}
	}
	return dups
}
