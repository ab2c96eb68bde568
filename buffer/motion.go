package buffer

import "github.com/ked-editor/ked/internal/grapheme"

// Word boundary rules: skip whitespace, then skip non-whitespace. A row edge
// is a hard boundary, so word motion never crosses rows on its own.

// PrevWordBoundary returns the start of the word at or before col in row.
func (b *Buffer) PrevWordBoundary(row, col int) int {
	r := b.Row(row)
	if r == nil {
		return 0
	}
	col = clampInt(col, 0, r.Len())

	i := col
	for i > 0 && grapheme.IsSpace(r.cells[i-1]) {
		i--
	}
	for i > 0 && !grapheme.IsSpace(r.cells[i-1]) {
		i--
	}
	return i
}

// NextWordBoundary returns the end of the word at or after col in row.
func (b *Buffer) NextWordBoundary(row, col int) int {
	r := b.Row(row)
	if r == nil {
		return 0
	}
	col = clampInt(col, 0, r.Len())

	i := col
	for i < r.Len() && grapheme.IsSpace(r.cells[i]) {
		i++
	}
	for i < r.Len() && !grapheme.IsSpace(r.cells[i]) {
		i++
	}
	return i
}
