package buffer

import "strings"

// Options configures a Buffer.
type Options struct {
	TabStop      int // default: 8
	HistoryLimit int // default: 1000
}

// Buffer is the document state: an ordered, non-empty sequence of rows.
type Buffer struct {
	rows    []*Row
	version uint64
	dirty   int

	opt  Options
	hist historyState
}

// New builds a buffer from initial lines. nil or empty lines yield a single
// empty row.
func New(lines []string, opt Options) *Buffer {
	if opt.TabStop <= 0 {
		opt.TabStop = 8
	}
	if opt.HistoryLimit == 0 {
		opt.HistoryLimit = 1000
	}

	rows := make([]*Row, 0, len(lines))
	for _, l := range lines {
		rows = append(rows, NewRow(l))
	}
	if len(rows) == 0 {
		rows = append(rows, NewRow(""))
	}
	return &Buffer{rows: rows, opt: opt}
}

// FromText builds a buffer by splitting text on '\n'.
func FromText(text string, opt Options) *Buffer {
	return New(strings.Split(text, "\n"), opt)
}

// TabStop returns the configured tab stop.
func (b *Buffer) TabStop() int { return b.opt.TabStop }

// Version increments on every content mutation.
func (b *Buffer) Version() uint64 { return b.version }

// RowCount returns the number of rows; always at least 1.
func (b *Buffer) RowCount() int { return len(b.rows) }

// Row returns row i, or nil when out of range.
func (b *Buffer) Row(i int) *Row {
	if i < 0 || i >= len(b.rows) {
		return nil
	}
	return b.rows[i]
}

// RowLen returns the cluster length of row i, 0 when out of range.
func (b *Buffer) RowLen(i int) int {
	if i < 0 || i >= len(b.rows) {
		return 0
	}
	return b.rows[i].Len()
}

// Lines returns the row contents as strings, one per row.
func (b *Buffer) Lines() []string {
	out := make([]string, len(b.rows))
	for i, r := range b.rows {
		out[i] = r.Text()
	}
	return out
}

// Text returns the whole document joined with '\n'.
func (b *Buffer) Text() string {
	return strings.Join(b.Lines(), "\n")
}

// CharCount returns the total number of clusters across all rows.
func (b *Buffer) CharCount() int {
	n := 0
	for _, r := range b.rows {
		n += r.Len()
	}
	return n
}

// Dirty reports whether the buffer has unsaved mutations.
func (b *Buffer) Dirty() bool { return b.dirty > 0 }

// MarkClean resets the dirty state, typically after a save.
func (b *Buffer) MarkClean() { b.dirty = 0 }

// Clamp clamps p into current document bounds.
func (b *Buffer) Clamp(p Pos) Pos {
	return ClampPos(p, len(b.rows), b.RowLen)
}

func (b *Buffer) validPos(p Pos) bool {
	return p.Row >= 0 && p.Row < len(b.rows) && p.Col >= 0 && p.Col <= b.rows[p.Row].Len()
}

func (b *Buffer) touch() {
	b.version++
	b.dirty++
}

// InsertChar inserts content at p and returns the position after it. A
// combining mark merges with the cluster before p rather than standing alone.
func (b *Buffer) InsertChar(p Pos, cluster string) (Pos, error) {
	if !b.validPos(p) {
		return p, ErrInvalidPosition
	}
	if cluster == "" {
		return p, nil
	}
	col := b.rows[p.Row].insertAt(p.Col, cluster)
	b.touch()
	return Pos{Row: p.Row, Col: col}, nil
}

// DeleteChar applies backspace semantics at p: it removes the cluster before
// p, or joins with the previous row when p.Col is 0. At the document start it
// is a no-op. The returned position is where the cursor lands.
func (b *Buffer) DeleteChar(p Pos) (Pos, error) {
	if !b.validPos(p) {
		return p, ErrInvalidPosition
	}
	if p.Col > 0 {
		b.rows[p.Row].deleteAt(p.Col - 1)
		b.touch()
		return Pos{Row: p.Row, Col: p.Col - 1}, nil
	}
	if p.Row == 0 {
		return p, nil
	}
	return b.JoinRow(p.Row)
}

// SplitRow splits row p.Row at cluster p.Col. Content after the split point
// moves verbatim to a new row inserted below; splitting at end-of-row yields
// an empty new row.
func (b *Buffer) SplitRow(p Pos) error {
	if !b.validPos(p) {
		return ErrInvalidPosition
	}
	tail := b.rows[p.Row].splitAt(p.Col)
	b.rows = append(b.rows, nil)
	copy(b.rows[p.Row+2:], b.rows[p.Row+1:])
	b.rows[p.Row+1] = tail
	b.touch()
	return nil
}

// JoinRow appends row to the row above it and removes it. The returned
// position is the seam between the two joined halves. Joining row 0 fails.
func (b *Buffer) JoinRow(row int) (Pos, error) {
	if row <= 0 || row >= len(b.rows) {
		return Pos{}, ErrInvalidPosition
	}
	seam := Pos{Row: row - 1, Col: b.rows[row-1].Len()}
	b.rows[row-1].appendRow(b.rows[row])
	b.rows = append(b.rows[:row], b.rows[row+1:]...)
	b.touch()
	return seam, nil
}

// InsertRow inserts a new row built from text at index idx (0..RowCount).
func (b *Buffer) InsertRow(idx int, text string) error {
	if idx < 0 || idx > len(b.rows) {
		return ErrInvalidPosition
	}
	b.rows = append(b.rows, nil)
	copy(b.rows[idx+1:], b.rows[idx:])
	b.rows[idx] = NewRow(text)
	b.touch()
	return nil
}

// RemoveRow deletes row idx. Removing the only row leaves a single empty row
// so the buffer never becomes empty.
func (b *Buffer) RemoveRow(idx int) error {
	if idx < 0 || idx >= len(b.rows) {
		return ErrInvalidPosition
	}
	b.rows = append(b.rows[:idx], b.rows[idx+1:]...)
	if len(b.rows) == 0 {
		b.rows = append(b.rows, NewRow(""))
	}
	b.touch()
	return nil
}
