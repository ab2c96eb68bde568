package buffer

import "testing"

func TestRow_CellForCol_TabsAndWideChars(t *testing.T) {
	r := NewRow("a\t漢b")

	cases := []struct {
		col  int
		want int
	}{
		{col: 0, want: 0},  // 'a'
		{col: 1, want: 1},  // tab starts at cell 1
		{col: 2, want: 8},  // tab expands to the next multiple of 8
		{col: 3, want: 10}, // wide char occupies two cells
		{col: 4, want: 11}, // end of row
	}
	for _, tc := range cases {
		if got := r.CellForCol(tc.col, 8); got != tc.want {
			t.Fatalf("CellForCol(%d)=%d, want %d", tc.col, got, tc.want)
		}
	}
}

func TestRow_ColForCell_InverseMapping(t *testing.T) {
	r := NewRow("a\t漢b")

	cases := []struct {
		cell int
		want int
	}{
		{cell: 0, want: 0},
		{cell: 1, want: 1}, // inside tab
		{cell: 7, want: 1}, // still inside tab
		{cell: 8, want: 2},
		{cell: 9, want: 2},  // second cell of wide char
		{cell: 10, want: 3}, // 'b'
		{cell: 99, want: 4}, // past end falls back to row length
	}
	for _, tc := range cases {
		if got := r.ColForCell(tc.cell, 8); got != tc.want {
			t.Fatalf("ColForCell(%d)=%d, want %d", tc.cell, got, tc.want)
		}
	}
}

func TestRow_Render_ExpandsTabs(t *testing.T) {
	r := NewRow("a\tb")
	if got, want := r.Render(8), "a       b"; got != want {
		t.Fatalf("render=%q, want %q", got, want)
	}
	if got, want := r.Render(4), "a   b"; got != want {
		t.Fatalf("render(stop=4)=%q, want %q", got, want)
	}
}

func TestRow_Width_NonNegativeClusterWidths(t *testing.T) {
	r := NewRow("aé漢\t")
	total := 0
	for col := 0; col < r.Len(); col++ {
		w := r.ClusterWidth(col, 8)
		if w < 0 {
			t.Fatalf("cluster %d width=%d, want >= 0", col, w)
		}
		if r.Cluster(col) != "\t" && w > 2 {
			t.Fatalf("cluster %d width=%d, want <= 2", col, w)
		}
		total += w
	}
	if got := r.Width(8); got != total {
		t.Fatalf("width=%d, want sum of cluster widths %d", got, total)
	}
}

func TestRow_CacheInvalidatedByMutation(t *testing.T) {
	r := NewRow("ab")
	if got := r.Width(8); got != 2 {
		t.Fatalf("width=%d, want %d", got, 2)
	}

	r.insertAt(1, "漢")
	if got := r.Width(8); got != 4 {
		t.Fatalf("width after insert=%d, want %d", got, 4)
	}

	r.deleteAt(1)
	if got := r.Width(8); got != 2 {
		t.Fatalf("width after delete=%d, want %d", got, 2)
	}
}

func TestRow_ColForByte(t *testing.T) {
	r := NewRow("aé漢")
	cases := []struct {
		off  int
		want int
	}{
		{off: 0, want: 0},
		{off: 1, want: 1}, // after 'a'
		{off: 3, want: 2}, // after 'é' (2 bytes)
		{off: 6, want: 3}, // after '漢' (3 bytes)
		{off: 99, want: 3},
	}
	for _, tc := range cases {
		if got := r.ColForByte(tc.off); got != tc.want {
			t.Fatalf("ColForByte(%d)=%d, want %d", tc.off, got, tc.want)
		}
	}
}
