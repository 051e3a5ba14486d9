package render

import "strings"

// StrHeight returns the number of display lines text occupies: 1 for an
// empty string, else the embedded line-break count plus one.
func StrHeight(text string) int {
	if text == "" {
		return 1
	}
	return strings.Count(text, "\n") + 1
}

// RowHeight returns the vertical footprint of a row. Cells render side by
// side, so the row is as tall as its tallest cell; an empty row is one
// line.
func RowHeight(cells []string) int {
	height := 1
	for _, cell := range cells {
		if h := StrHeight(cell); h > height {
			height = h
		}
	}
	return height
}
