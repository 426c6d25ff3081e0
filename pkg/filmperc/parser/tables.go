package parser

// dataExtent returns the index of the first row holding a value and the
// number of columns up to the right-most populated cell. first is -1 for a blank sheet.
func dataExtent(rows [][]string) (first, width int) {
	first = -1
	for rowIdx, row := range rows {
		for colIdx := len(row) - 1; colIdx >= 0; colIdx-- {
			if row[colIdx] == "" {
				continue
			}
			if first < 0 {
				first = rowIdx
			}
			if colIdx+1 > width {
				width = colIdx + 1
			}
			break
		}
	}
	return first, width
}
