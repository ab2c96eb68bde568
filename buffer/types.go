package buffer

import "errors"

// ErrInvalidPosition reports a buffer coordinate outside the document.
// Operations that return it are no-ops.
var ErrInvalidPosition = errors.New("buffer: invalid position")

// Pos points into the document by (Row, Col) in grapheme clusters.
// Row and Col are 0-based.
type Pos struct {
	Row int
	Col int
}

// ComparePos orders positions in document order.
func ComparePos(a, b Pos) int {
	if a.Row != b.Row {
		if a.Row < b.Row {
			return -1
		}
		return 1
	}
	if a.Col != b.Col {
		if a.Col < b.Col {
			return -1
		}
		return 1
	}
	return 0
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

// ClampPos clamps p into document bounds described by rowCount and rowLen.
// The returned Pos always satisfies 0 <= Row < rowCount (rowCount treated as
// at least 1) and 0 <= Col <= rowLen(Row).
func ClampPos(p Pos, rowCount int, rowLen func(row int) int) Pos {
	if rowCount <= 0 {
		rowCount = 1
	}

	row := clampInt(p.Row, 0, rowCount-1)

	maxCol := 0
	if rowLen != nil {
		maxCol = rowLen(row)
		if maxCol < 0 {
			maxCol = 0
		}
	}
	col := clampInt(p.Col, 0, maxCol)

	return Pos{Row: row, Col: col}
}
