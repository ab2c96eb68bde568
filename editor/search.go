package editor

import (
	"strings"

	"github.com/ked-editor/ked/buffer"
	"github.com/ked-editor/ked/internal/grapheme"
)

type findDir int

const (
	findForward findDir = iota
	findBack
)

// searchState is one incremental search session: the query is matched live
// while the prompt is open, with wrap-around stepping in both directions.
// Canceling restores the cursor and scroll saved at session start.
type searchState struct {
	lastMatch   int // matched row, -1 before the first hit
	dir         findDir
	savedCursor buffer.Pos
	savedRowOff int
	savedColOff int
}

func (e *Editor) startSearch() {
	s := &searchState{
		lastMatch:   -1,
		savedCursor: e.vp.Cursor,
		savedRowOff: e.vp.RowOff,
		savedColOff: e.vp.ColOff,
	}
	e.search = s

	e.startPrompt("Search: ", promptHooks{
		onChange: func(text string) {
			s.lastMatch = -1
			s.dir = findForward
			e.findMatch(text)
		},
		onKey: func(k Key, text string) {
			switch {
			case k.Kind == KeyRight || k.Kind == KeyDown || k == ctrlKey('f') || k == ctrlKey('n'):
				s.dir = findForward
			case k.Kind == KeyLeft || k.Kind == KeyUp || k == ctrlKey('b') || k == ctrlKey('p'):
				s.dir = findBack
			default:
				return
			}
			e.findMatch(text)
		},
		onEnd: func(text string, canceled bool) {
			e.endSearch(text, canceled)
		},
	})
}

// findMatch looks for the query starting at the row after the previous match
// (or at the cursor row for a fresh query), scanning in the session
// direction and wrapping at the buffer ends.
func (e *Editor) findMatch(query string) {
	s := e.search
	e.rend.ClearMatch()
	if s == nil || query == "" {
		return
	}

	rowCount := e.buf.RowCount()
	y := e.vp.Cursor.Row
	if s.lastMatch >= 0 {
		y = nextSearchRow(s.lastMatch, s.dir, rowCount)
	}

	for i := 0; i < rowCount; i++ {
		row := e.buf.Row(y)
		if off := strings.Index(row.Text(), query); off >= 0 {
			start := row.ColForByte(off)
			end := start + grapheme.Count(query)
			s.lastMatch = y
			e.rend.SetMatch(y, start, end)
			e.vp.SetCursor(buffer.Pos{Row: y, Col: start}, e.buf)
			return
		}
		y = nextSearchRow(y, s.dir, rowCount)
	}
	s.lastMatch = -1
}

func (e *Editor) endSearch(query string, canceled bool) {
	s := e.search
	e.search = nil
	e.rend.ClearMatch()
	if s == nil {
		return
	}

	if canceled {
		e.vp.Cursor = e.buf.Clamp(s.savedCursor)
		e.vp.RowOff = s.savedRowOff
		e.vp.ColOff = s.savedColOff
		e.vp.Scroll(e.buf)
		return
	}
	if query == "" {
		return
	}
	if s.lastMatch >= 0 {
		e.SetMessage("Found %q", query)
	} else {
		e.SetMessage("Not found: %q", query)
	}
}

// nextSearchRow steps one row in dir with wrap-around at the buffer ends.
func nextSearchRow(y int, dir findDir, rowCount int) int {
	switch dir {
	case findBack:
		if y == 0 {
			return rowCount - 1
		}
		return y - 1
	default:
		if y == rowCount-1 {
			return 0
		}
		return y + 1
	}
}
