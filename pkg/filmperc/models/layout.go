package models

// Layout fixes where the segmenter and matcher find things in a sheet.
type Layout struct {
	// TitleColumn is the title position within a cleaned segment.
	TitleColumn int `json:"title_column"`
	// MarkerColumn is the position, within a table row, of the play-week marker.
	MarkerColumn int `json:"marker_column"`
	// DropColumn is removed from a cleaned segment when more than DropColumn columns remain.
	// A negative value disables the drop.
	DropColumn int `json:"drop_column"`
	// MarkerKeyword identifies a marker cell.
	MarkerKeyword string `json:"marker_keyword"`
}

// DefaultLayout returns the layout of the "Percentages" sheet.
func DefaultLayout() Layout {
	return Layout{
		TitleColumn:   0,
		MarkerColumn:  2,
		DropColumn:    3,
		MarkerKeyword: "Speelweek",
	}
}
