// Package grapheme provides grapheme-cluster segmentation and terminal cell
// width metrics for buffer and renderer code.
//
// All width functions are pure. Widths are terminal cells: 0 for combining
// and control clusters, 2 for wide East Asian clusters, 1 otherwise. Tabs
// advance to the next multiple of the tab stop and therefore need the
// current visual column to resolve.
package grapheme

import (
	"strings"
	"unicode"

	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"
)

// Split returns grapheme clusters for text in visual order.
func Split(text string) []string {
	if text == "" {
		return nil
	}
	g := uniseg.NewGraphemes(text)
	out := make([]string, 0, len([]rune(text)))
	for g.Next() {
		out = append(out, g.Str())
	}
	return out
}

// Count returns the number of grapheme clusters in text.
func Count(text string) int {
	if text == "" {
		return 0
	}
	g := uniseg.NewGraphemes(text)
	n := 0
	for g.Next() {
		n++
	}
	return n
}

// Join concatenates grapheme clusters into a single string.
func Join(clusters []string) string {
	if len(clusters) == 0 {
		return ""
	}
	var sb strings.Builder
	for _, c := range clusters {
		sb.WriteString(c)
	}
	return sb.String()
}

// IsSpace reports whether all runes in cluster are Unicode whitespace.
func IsSpace(cluster string) bool {
	if cluster == "" {
		return false
	}
	for _, r := range cluster {
		if !unicode.IsSpace(r) {
			return false
		}
	}
	return true
}

// TabAdvance returns the cell width of a tab landing at visualCol.
func TabAdvance(visualCol, tabStop int) int {
	if tabStop <= 0 {
		tabStop = 8
	}
	return tabStop - visualCol%tabStop
}

// CellWidth returns the terminal cell width of a single cluster rendered at
// visualCol. runewidth is the primary oracle; uniseg is consulted when
// runewidth reports zero, which keeps emoji ZWJ sequences at their composed
// width.
func CellWidth(cluster string, visualCol, tabStop int) int {
	if cluster == "\t" {
		return TabAdvance(visualCol, tabStop)
	}

	w := runewidth.StringWidth(cluster)
	if w < 0 {
		w = 0
	}
	if w == 0 {
		if fallback := uniseg.StringWidth(cluster); fallback > 0 {
			w = fallback
		}
	}
	return w
}

// StringWidth returns the total cell width of text starting at column 0.
func StringWidth(text string, tabStop int) int {
	col := 0
	for _, c := range Split(text) {
		col += CellWidth(c, col, tabStop)
	}
	return col
}
