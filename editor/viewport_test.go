package editor

import (
	"testing"

	"github.com/ked-editor/ked/buffer"
)

func newTestViewport(rows, cols int) *Viewport {
	v := &Viewport{}
	v.SetSize(rows, cols)
	return v
}

func checkInvariants(t *testing.T, v *Viewport, b *buffer.Buffer) {
	t.Helper()
	rows, cols := v.Size()

	if v.RowOff > v.Cursor.Row {
		t.Fatalf("RowOff=%d > cursor row %d", v.RowOff, v.Cursor.Row)
	}
	if rows > 0 && v.Cursor.Row >= v.RowOff+rows {
		t.Fatalf("cursor row %d outside [%d, %d)", v.Cursor.Row, v.RowOff, v.RowOff+rows)
	}
	if cols > 0 {
		cell := v.CursorCell(b)
		if cell < v.ColOff || cell >= v.ColOff+cols {
			t.Fatalf("cursor cell %d outside [%d, %d)", cell, v.ColOff, v.ColOff+cols)
		}
	}
}

func TestViewport_MoveAcrossRowEdges(t *testing.T) {
	b := buffer.New([]string{"ab", "cd"}, buffer.Options{})
	v := newTestViewport(10, 10)

	v.SetCursor(buffer.Pos{Row: 0, Col: 2}, b)
	v.MoveCursor(MotionRight, b)
	if v.Cursor != (buffer.Pos{Row: 1, Col: 0}) {
		t.Fatalf("cursor=%v, want start of next row", v.Cursor)
	}

	v.MoveCursor(MotionLeft, b)
	if v.Cursor != (buffer.Pos{Row: 0, Col: 2}) {
		t.Fatalf("cursor=%v, want end of previous row", v.Cursor)
	}
}

func TestViewport_VerticalMotionSnapsToShorterRow(t *testing.T) {
	b := buffer.New([]string{"abcdef", "ab", "abcdef"}, buffer.Options{})
	v := newTestViewport(10, 10)

	v.SetCursor(buffer.Pos{Row: 0, Col: 5}, b)
	v.MoveCursor(MotionDown, b)
	if v.Cursor != (buffer.Pos{Row: 1, Col: 2}) {
		t.Fatalf("cursor=%v, want clamped to short row end", v.Cursor)
	}

	// The remembered column comes back on the longer row.
	v.MoveCursor(MotionDown, b)
	if v.Cursor != (buffer.Pos{Row: 2, Col: 5}) {
		t.Fatalf("cursor=%v, want remembered column restored", v.Cursor)
	}
}

func TestViewport_VerticalScrollInvariant(t *testing.T) {
	lines := make([]string, 50)
	for i := range lines {
		lines[i] = "line"
	}
	b := buffer.New(lines, buffer.Options{})
	v := newTestViewport(5, 10)

	for i := 0; i < 20; i++ {
		v.MoveCursor(MotionDown, b)
		checkInvariants(t, v, b)
	}
	if v.RowOff != 16 {
		t.Fatalf("RowOff=%d, want %d", v.RowOff, 16)
	}

	v.MoveCursor(MotionDocHome, b)
	checkInvariants(t, v, b)
	if v.RowOff != 0 {
		t.Fatalf("RowOff=%d, want %d after doc home", v.RowOff, 0)
	}
}

func TestViewport_HorizontalScrollWithNarrowScreen(t *testing.T) {
	// Cursor at end of "café" with 3 visible columns: the rendered cursor
	// column is 4, so ColOff must become 2.
	b := buffer.New([]string{"ab", "café"}, buffer.Options{})
	v := newTestViewport(10, 3)

	v.SetCursor(buffer.Pos{Row: 1, Col: 4}, b)
	checkInvariants(t, v, b)
	if v.ColOff != 2 {
		t.Fatalf("ColOff=%d, want %d", v.ColOff, 2)
	}
}

func TestViewport_WideCharScrolling(t *testing.T) {
	b := buffer.New([]string{"漢字漢字"}, buffer.Options{})
	v := newTestViewport(10, 4)

	for i := 0; i < 4; i++ {
		v.MoveCursor(MotionRight, b)
		checkInvariants(t, v, b)
	}
	// Cursor cell is 8; with 4 columns the offset must be at least 5.
	if v.ColOff < 5 {
		t.Fatalf("ColOff=%d, want >= 5", v.ColOff)
	}
}

func TestViewport_PageMotion(t *testing.T) {
	lines := make([]string, 100)
	for i := range lines {
		lines[i] = "x"
	}
	b := buffer.New(lines, buffer.Options{})
	v := newTestViewport(10, 10)

	v.MoveCursor(MotionPageDown, b)
	if v.Cursor.Row != 10 {
		t.Fatalf("row=%d, want %d", v.Cursor.Row, 10)
	}
	checkInvariants(t, v, b)

	v.MoveCursor(MotionPageUp, b)
	if v.Cursor.Row != 0 {
		t.Fatalf("row=%d, want %d", v.Cursor.Row, 0)
	}
	checkInvariants(t, v, b)
}

func TestViewport_WordMotion(t *testing.T) {
	b := buffer.New([]string{"foo bar", "baz"}, buffer.Options{})
	v := newTestViewport(10, 20)

	v.MoveCursor(MotionWordRight, b)
	if v.Cursor != (buffer.Pos{Row: 0, Col: 3}) {
		t.Fatalf("cursor=%v, want end of first word", v.Cursor)
	}
	v.MoveCursor(MotionWordRight, b)
	if v.Cursor != (buffer.Pos{Row: 0, Col: 7}) {
		t.Fatalf("cursor=%v, want end of second word", v.Cursor)
	}
	// At EOL, word-right crosses into the next row.
	v.MoveCursor(MotionWordRight, b)
	if v.Cursor != (buffer.Pos{Row: 1, Col: 3}) {
		t.Fatalf("cursor=%v, want end of word on next row", v.Cursor)
	}

	v.MoveCursor(MotionWordLeft, b)
	if v.Cursor != (buffer.Pos{Row: 1, Col: 0}) {
		t.Fatalf("cursor=%v, want start of word", v.Cursor)
	}
	v.MoveCursor(MotionWordLeft, b)
	if v.Cursor != (buffer.Pos{Row: 0, Col: 4}) {
		t.Fatalf("cursor=%v, want start of previous row's last word", v.Cursor)
	}
}

func TestViewport_EmptyBufferAndZeroSize(t *testing.T) {
	b := buffer.New(nil, buffer.Options{})

	v := newTestViewport(0, 0)
	for _, m := range []Motion{MotionUp, MotionDown, MotionLeft, MotionRight, MotionPageDown, MotionDocEnd} {
		v.MoveCursor(m, b)
	}
	if v.Cursor != (buffer.Pos{}) {
		t.Fatalf("cursor=%v, want origin in empty buffer", v.Cursor)
	}
	if v.RowOff != 0 || v.ColOff != 0 {
		t.Fatalf("offsets=(%d,%d), want (0,0)", v.RowOff, v.ColOff)
	}
}

func TestViewport_ScrollAfterShrink(t *testing.T) {
	lines := make([]string, 30)
	for i := range lines {
		lines[i] = "x"
	}
	b := buffer.New(lines, buffer.Options{})
	v := newTestViewport(20, 10)

	v.SetCursor(buffer.Pos{Row: 19, Col: 0}, b)
	v.SetSize(5, 10)
	v.Scroll(b)
	checkInvariants(t, v, b)
}
