package editor

import (
	"sort"

	"github.com/charmbracelet/lipgloss"
)

// Span styles the clusters [StartCol, EndCol) of one row, half-open.
type Span struct {
	StartCol int
	EndCol   int
	Style    lipgloss.Style
}

// LineContext carries the inputs a Highlighter may use for one row.
type LineContext struct {
	Row int

	// Text is the row content before tab expansion.
	Text string

	// Filename is the buffer's file name, "" for an unnamed buffer.
	Filename string
}

// Highlighter classifies row text into ordered style spans. Implementations
// must be pure: same inputs, same spans. Returning an error degrades the row
// to unstyled rendering; it never aborts a render pass.
type Highlighter interface {
	HighlightLine(ctx LineContext) ([]Span, error)
}

// normalizeSpans clamps spans into [0, lineLen), sorts them, and drops
// overlaps deterministically (first span wins).
func normalizeSpans(spans []Span, lineLen int) []Span {
	if len(spans) == 0 {
		return nil
	}
	if lineLen < 0 {
		lineLen = 0
	}

	out := make([]Span, 0, len(spans))
	for _, sp := range spans {
		start := clampInt(sp.StartCol, 0, lineLen)
		end := clampInt(sp.EndCol, 0, lineLen)
		if end < start {
			start, end = end, start
		}
		if start == end {
			continue
		}
		out = append(out, Span{StartCol: start, EndCol: end, Style: sp.Style})
	}

	sort.Slice(out, func(i, j int) bool {
		if out[i].StartCol != out[j].StartCol {
			return out[i].StartCol < out[j].StartCol
		}
		return out[i].EndCol < out[j].EndCol
	})

	merged := make([]Span, 0, len(out))
	for _, sp := range out {
		if len(merged) > 0 && sp.StartCol < merged[len(merged)-1].EndCol {
			continue
		}
		merged = append(merged, sp)
	}
	return merged
}

func clampInt(v, min, max int) int {
	if max < min {
		return min
	}
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}
