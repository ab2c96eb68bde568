package buffer

import (
	"strings"

	"github.com/ked-editor/ked/internal/grapheme"
)

// Row is one logical line: grapheme clusters plus a lazily built cache of
// cell metrics (tab-expanded widths and cumulative cell offsets).
//
// The cache is invalidated on every mutation and rebuilt on first metric
// access with the tab stop in effect at that time.
type Row struct {
	cells []string

	// starts[i] is the first screen cell of cluster i; starts[len(cells)]
	// is the total rendered width. Valid only while cacheStop != 0.
	starts    []int
	cacheStop int
}

// NewRow builds a row from line text. The text must not contain newlines.
func NewRow(text string) *Row {
	return &Row{cells: grapheme.Split(text)}
}

// Len returns the number of grapheme clusters in the row.
func (r *Row) Len() int { return len(r.cells) }

// Text returns the row content as a string.
func (r *Row) Text() string { return grapheme.Join(r.cells) }

// Cluster returns the cluster at index i, or "" when out of range.
func (r *Row) Cluster(i int) string {
	if i < 0 || i >= len(r.cells) {
		return ""
	}
	return r.cells[i]
}

// TextRange returns the content of clusters [start, end).
func (r *Row) TextRange(start, end int) string {
	start = clampInt(start, 0, len(r.cells))
	end = clampInt(end, start, len(r.cells))
	return grapheme.Join(r.cells[start:end])
}

func (r *Row) invalidate() {
	r.starts = nil
	r.cacheStop = 0
}

func (r *Row) ensure(tabStop int) {
	if tabStop <= 0 {
		tabStop = 8
	}
	if r.cacheStop == tabStop && r.starts != nil {
		return
	}

	starts := make([]int, len(r.cells)+1)
	col := 0
	for i, c := range r.cells {
		starts[i] = col
		col += grapheme.CellWidth(c, col, tabStop)
	}
	starts[len(r.cells)] = col
	r.starts = starts
	r.cacheStop = tabStop
}

// Width returns the total rendered width of the row in screen cells.
func (r *Row) Width(tabStop int) int {
	r.ensure(tabStop)
	return r.starts[len(r.cells)]
}

// CellForCol returns the screen cell at which cluster col starts.
// col == Len() yields the total width (the end-of-row cell).
func (r *Row) CellForCol(col, tabStop int) int {
	r.ensure(tabStop)
	col = clampInt(col, 0, len(r.cells))
	return r.starts[col]
}

// ColForCell maps a screen cell back to the cluster index occupying it.
// Cells past the end of the row map to Len().
func (r *Row) ColForCell(cell, tabStop int) int {
	r.ensure(tabStop)
	for col := 0; col < len(r.cells); col++ {
		if r.starts[col+1] > cell {
			return col
		}
	}
	return len(r.cells)
}

// ClusterWidth returns the rendered width of cluster col in cells.
func (r *Row) ClusterWidth(col, tabStop int) int {
	r.ensure(tabStop)
	if col < 0 || col >= len(r.cells) {
		return 0
	}
	return r.starts[col+1] - r.starts[col]
}

// Render returns the tab-expanded row text. Tabs become runs of spaces up to
// the next tab stop; all other clusters pass through verbatim.
func (r *Row) Render(tabStop int) string {
	r.ensure(tabStop)
	var sb strings.Builder
	for i, c := range r.cells {
		if c == "\t" {
			sb.WriteString(strings.Repeat(" ", r.starts[i+1]-r.starts[i]))
			continue
		}
		sb.WriteString(c)
	}
	return sb.String()
}

// ColForByte maps a byte offset in Text() to the cluster index containing
// it. Offsets at or past the end map to Len().
func (r *Row) ColForByte(off int) int {
	if off <= 0 {
		return 0
	}
	n := 0
	for i, c := range r.cells {
		if n >= off {
			return i
		}
		n += len(c)
	}
	return len(r.cells)
}

// insertAt inserts cluster before index i and returns the index after the
// inserted content. The seam with the preceding cluster is re-segmented, so a
// combining mark joins its base instead of standing alone.
func (r *Row) insertAt(i int, cluster string) int {
	defer r.invalidate()
	if i == 0 {
		out := make([]string, 0, len(r.cells)+1)
		out = append(out, cluster)
		r.cells = append(out, r.cells...)
		return 1
	}

	merged := grapheme.Split(r.cells[i-1] + cluster)
	out := make([]string, 0, len(r.cells)+len(merged))
	out = append(out, r.cells[:i-1]...)
	out = append(out, merged...)
	out = append(out, r.cells[i:]...)
	r.cells = out
	return i - 1 + len(merged)
}

func (r *Row) deleteAt(i int) {
	r.cells = append(r.cells[:i], r.cells[i+1:]...)
	r.invalidate()
}

// splitAt truncates the row at cluster i and returns the tail as a new row.
func (r *Row) splitAt(i int) *Row {
	tail := &Row{cells: append([]string(nil), r.cells[i:]...)}
	r.cells = r.cells[:i]
	r.invalidate()
	return tail
}

func (r *Row) appendRow(other *Row) {
	r.cells = append(r.cells, other.cells...)
	r.invalidate()
}
