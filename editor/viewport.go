package editor

import "github.com/ked-editor/ked/buffer"

// Motion is a cursor movement command.
type Motion int

const (
	MotionLeft Motion = iota
	MotionRight
	MotionUp
	MotionDown
	MotionWordLeft
	MotionWordRight
	MotionHome
	MotionEnd
	MotionPageUp
	MotionPageDown
	MotionDocHome
	MotionDocEnd
)

// Viewport tracks the cursor and the scroll offsets mapping buffer
// coordinates onto the content area of the screen.
//
// Two invariants hold after every Scroll call:
//   - RowOff <= Cursor.Row < RowOff+rows
//   - ColOff <= cursor cell < ColOff+cols
type Viewport struct {
	Cursor buffer.Pos

	// RowOff is the buffer row shown at the top of the screen; ColOff is
	// the screen cell shown at the left edge.
	RowOff int
	ColOff int

	rows int
	cols int

	// wantCell remembers the cursor's cell column across vertical motion so
	// moving through short rows does not lose the horizontal position.
	wantCell int
}

// SetSize updates the content area bounds. Only the resize path calls this.
func (v *Viewport) SetSize(rows, cols int) {
	if rows < 0 {
		rows = 0
	}
	if cols < 0 {
		cols = 0
	}
	v.rows = rows
	v.cols = cols
}

// Size returns the content area bounds in (rows, cols).
func (v *Viewport) Size() (rows, cols int) { return v.rows, v.cols }

// CursorCell returns the cursor's rendered cell column within its row.
func (v *Viewport) CursorCell(b *buffer.Buffer) int {
	row := b.Row(v.Cursor.Row)
	if row == nil {
		return 0
	}
	return row.CellForCol(v.Cursor.Col, b.TabStop())
}

// ScreenPos returns the cursor's screen coordinates relative to the content
// area origin, after scrolling.
func (v *Viewport) ScreenPos(b *buffer.Buffer) (x, y int) {
	return v.CursorCell(b) - v.ColOff, v.Cursor.Row - v.RowOff
}

// MoveCursor applies a motion, clamping to buffer bounds, and rescrolls.
func (v *Viewport) MoveCursor(m Motion, b *buffer.Buffer) {
	c := b.Clamp(v.Cursor)
	rowLen := b.RowLen(c.Row)

	switch m {
	case MotionLeft:
		if c.Col > 0 {
			c.Col--
		} else if c.Row > 0 {
			c.Row--
			c.Col = b.RowLen(c.Row)
		}
	case MotionRight:
		if c.Col < rowLen {
			c.Col++
		} else if c.Row < b.RowCount()-1 {
			c.Row++
			c.Col = 0
		}
	case MotionUp:
		if c.Row > 0 {
			c.Row--
			c.Col = v.snapCol(c.Row, b)
		}
	case MotionDown:
		if c.Row < b.RowCount()-1 {
			c.Row++
			c.Col = v.snapCol(c.Row, b)
		}
	case MotionWordLeft:
		if c.Col == 0 && c.Row > 0 {
			c.Row--
			c.Col = b.RowLen(c.Row)
		}
		c.Col = b.PrevWordBoundary(c.Row, c.Col)
	case MotionWordRight:
		if c.Col == b.RowLen(c.Row) && c.Row < b.RowCount()-1 {
			c.Row++
			c.Col = 0
		}
		c.Col = b.NextWordBoundary(c.Row, c.Col)
	case MotionHome:
		c.Col = 0
	case MotionEnd:
		c.Col = rowLen
	case MotionPageUp:
		c.Row -= v.rows
		if c.Row < 0 {
			c.Row = 0
		}
		c.Col = v.snapCol(c.Row, b)
	case MotionPageDown:
		c.Row += v.rows
		if c.Row > b.RowCount()-1 {
			c.Row = b.RowCount() - 1
		}
		c.Col = v.snapCol(c.Row, b)
	case MotionDocHome:
		c = buffer.Pos{}
	case MotionDocEnd:
		c.Row = b.RowCount() - 1
		c.Col = b.RowLen(c.Row)
	}

	v.Cursor = b.Clamp(c)

	switch m {
	case MotionUp, MotionDown, MotionPageUp, MotionPageDown:
		// Vertical motion keeps the remembered column.
	default:
		v.rememberCell(b)
	}
	v.Scroll(b)
}

// SetCursor places the cursor (clamped) and rescrolls.
func (v *Viewport) SetCursor(p buffer.Pos, b *buffer.Buffer) {
	v.Cursor = b.Clamp(p)
	v.rememberCell(b)
	v.Scroll(b)
}

func (v *Viewport) rememberCell(b *buffer.Buffer) {
	v.wantCell = v.CursorCell(b)
}

// snapCol maps the remembered cell column onto row, landing on the nearest
// cluster boundary at or before it.
func (v *Viewport) snapCol(row int, b *buffer.Buffer) int {
	r := b.Row(row)
	if r == nil {
		return 0
	}
	return r.ColForCell(v.wantCell, b.TabStop())
}

// Scroll enforces the viewport invariants against the current cursor.
func (v *Viewport) Scroll(b *buffer.Buffer) {
	v.Cursor = b.Clamp(v.Cursor)

	if v.rows > 0 {
		if v.Cursor.Row < v.RowOff {
			v.RowOff = v.Cursor.Row
		}
		if v.Cursor.Row >= v.RowOff+v.rows {
			v.RowOff = v.Cursor.Row - v.rows + 1
		}
	}

	if v.cols > 0 {
		cell := v.CursorCell(b)
		if cell < v.ColOff {
			v.ColOff = cell
		}
		if cell >= v.ColOff+v.cols {
			v.ColOff = cell - v.cols + 1
		}
	}
	if v.RowOff < 0 {
		v.RowOff = 0
	}
	if v.ColOff < 0 {
		v.ColOff = 0
	}
}
