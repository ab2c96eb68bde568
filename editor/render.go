package editor

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	ked "github.com/ked-editor/ked"
	"github.com/ked-editor/ked/buffer"
	"github.com/ked-editor/ked/internal/grapheme"
)

// matchSpan is the search-match overlay: clusters [startCol, endCol) of row
// are drawn in the match style, on top of any highlighter span.
type matchSpan struct {
	row      int
	startCol int
	endCol   int
}

// StatusContext is the chrome input for one draw pass.
type StatusContext struct {
	Filename string
	Dirty    bool
	RowCount int
	Cursor   buffer.Pos

	// Message is the already-TTL-filtered message bar text.
	Message string

	// PromptCursor places the terminal cursor on the message bar at the
	// given cell when >= 0 (used while a prompt is active).
	PromptCursor int
}

// Renderer turns buffer and viewport state into the minimal escape-sequence
// stream that brings the physical screen up to date.
type Renderer struct {
	style Style
	hl    Highlighter

	frame frame
	match *matchSpan
}

// NewRenderer builds a renderer. hl may be nil for unstyled content.
func NewRenderer(style Style, hl Highlighter) *Renderer {
	return &Renderer{style: style, hl: hl}
}

// Invalidate discards the cached frame. The next Draw redraws every row.
func (r *Renderer) Invalidate() { r.frame.valid = false }

// SetMatch sets the search-match overlay and ClearMatch removes it.
func (r *Renderer) SetMatch(row, startCol, endCol int) {
	r.match = &matchSpan{row: row, startCol: startCol, endCol: endCol}
}

func (r *Renderer) ClearMatch() { r.match = nil }

// Draw writes one render pass to w and flushes nothing else: the pass is
// assembled in memory and written in a single call.
func (r *Renderer) Draw(w io.Writer, b *buffer.Buffer, vp *Viewport, sc StatusContext) error {
	rows, cols := vp.Size()
	if len(r.frame.rows) != rows {
		r.frame.reset(rows)
	}

	var out bytes.Buffer
	out.WriteString("\x1b[?25l")

	for y := 0; y < rows; y++ {
		desired := r.renderRow(b, vp, sc, y)
		if r.frame.update(y, desired) {
			fmt.Fprintf(&out, "\x1b[%d;1H\x1b[K%s", y+1, desired)
		}
	}

	status := r.renderStatus(b, sc, cols)
	if r.frame.updateStatus(status) {
		fmt.Fprintf(&out, "\x1b[%d;1H\x1b[K%s", rows+1, status)
	}
	message := r.style.MessageBar.Render(truncateCells(sc.Message, cols, b.TabStop()))
	if r.frame.updateMessage(message) {
		fmt.Fprintf(&out, "\x1b[%d;1H\x1b[K%s", rows+2, message)
	}
	r.frame.valid = true

	if sc.PromptCursor >= 0 {
		fmt.Fprintf(&out, "\x1b[%d;%dH", rows+2, clampInt(sc.PromptCursor, 0, cols-1)+1)
	} else {
		x, y := vp.ScreenPos(b)
		fmt.Fprintf(&out, "\x1b[%d;%dH", clampInt(y, 0, rows-1)+1, clampInt(x, 0, cols-1)+1)
	}
	out.WriteString("\x1b[?25h")

	if _, err := w.Write(out.Bytes()); err != nil {
		return fmt.Errorf("editor: render write: %w", err)
	}
	return nil
}

// renderRow computes the desired styled content of screen row y.
func (r *Renderer) renderRow(b *buffer.Buffer, vp *Viewport, sc StatusContext, y int) string {
	rows, cols := vp.Size()
	if cols <= 0 {
		return ""
	}

	bufRow := vp.RowOff + y
	if bufRow >= b.RowCount() {
		if r.showWelcome(b, sc) && y == rows/3 {
			return r.welcomeLine(cols)
		}
		return r.style.Tilde.Render("~")
	}
	return r.renderContentRow(b, bufRow, vp.ColOff, cols, sc)
}

func (r *Renderer) showWelcome(b *buffer.Buffer, sc StatusContext) bool {
	return sc.Filename == "" && !sc.Dirty &&
		b.RowCount() == 1 && b.RowLen(0) == 0
}

func (r *Renderer) welcomeLine(cols int) string {
	msg := fmt.Sprintf("ked editor -- version %s", ked.Version())
	msg = truncateCells(msg, cols, 8)
	pad := (cols - grapheme.StringWidth(msg, 8)) / 2
	if pad <= 0 {
		return r.style.Welcome.Render(msg)
	}
	return r.style.Tilde.Render("~") + strings.Repeat(" ", pad-1) + r.style.Welcome.Render(msg)
}

// styleClass identifies which style a visible cluster takes, so contiguous
// same-styled clusters render as one segment.
const (
	classText  = -1
	classMatch = -2
)

func (r *Renderer) renderContentRow(b *buffer.Buffer, bufRow, colOff, cols int, sc StatusContext) string {
	row := b.Row(bufRow)
	tabStop := b.TabStop()

	var spans []Span
	if r.hl != nil {
		if got, err := r.hl.HighlightLine(LineContext{
			Row:      bufRow,
			Text:     row.Text(),
			Filename: sc.Filename,
		}); err == nil {
			spans = normalizeSpans(got, row.Len())
		}
	}

	classFor := func(col int) int {
		if r.match != nil && bufRow == r.match.row &&
			col >= r.match.startCol && col < r.match.endCol {
			return classMatch
		}
		for i, sp := range spans {
			if col >= sp.StartCol && col < sp.EndCol {
				return i
			}
		}
		return classText
	}
	styleFor := func(class int) lipgloss.Style {
		switch {
		case class == classMatch:
			return r.style.Match
		case class >= 0:
			return spans[class].Style
		default:
			return r.style.Text
		}
	}

	right := colOff + cols
	var sb strings.Builder
	segClass := classText
	var seg strings.Builder
	flush := func() {
		if seg.Len() > 0 {
			sb.WriteString(styleFor(segClass).Render(seg.String()))
			seg.Reset()
		}
	}

	for col := 0; col < row.Len(); col++ {
		start := row.CellForCol(col, tabStop)
		w := row.ClusterWidth(col, tabStop)
		if start+w <= colOff {
			continue
		}
		if start >= right {
			break
		}

		class := classFor(col)
		if class != segClass {
			flush()
			segClass = class
		}

		cluster := row.Cluster(col)
		switch {
		case cluster == "\t":
			// Tabs render as the spaces needed inside the window.
			from := maxInt(start, colOff)
			to := minInt(start+w, right)
			seg.WriteString(strings.Repeat(" ", to-from))
		case start < colOff || start+w > right:
			// A wide cluster straddling a viewport edge renders as blank
			// padding for its visible cells.
			from := maxInt(start, colOff)
			to := minInt(start+w, right)
			seg.WriteString(strings.Repeat(" ", to-from))
		default:
			seg.WriteString(cluster)
		}
	}
	flush()
	return sb.String()
}

func (r *Renderer) renderStatus(b *buffer.Buffer, sc StatusContext, cols int) string {
	name := sc.Filename
	if name == "" {
		name = "[No Name]"
	}
	modified := ""
	if sc.Dirty {
		modified = " (modified)"
	}

	left := fmt.Sprintf(" %s - %d lines%s", name, sc.RowCount, modified)
	right := fmt.Sprintf("Ln %d, Col %d ", sc.Cursor.Row+1, sc.Cursor.Col+1)

	leftW := grapheme.StringWidth(left, b.TabStop())
	rightW := grapheme.StringWidth(right, b.TabStop())
	gap := cols - leftW - rightW
	if gap < 0 {
		left = truncateCells(left, maxInt(cols-rightW, 0), b.TabStop())
		gap = cols - grapheme.StringWidth(left, b.TabStop()) - rightW
		if gap < 0 {
			right = truncateCells(right, cols, b.TabStop())
			gap = 0
		}
	}
	return r.style.StatusBar.Render(left + strings.Repeat(" ", gap) + right)
}

// truncateCells cuts s at the last cluster boundary that fits in cols cells.
func truncateCells(s string, cols, tabStop int) string {
	if cols <= 0 {
		return ""
	}
	var sb strings.Builder
	col := 0
	for _, c := range grapheme.Split(s) {
		w := grapheme.CellWidth(c, col, tabStop)
		if col+w > cols {
			break
		}
		sb.WriteString(c)
		col += w
	}
	return sb.String()
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
