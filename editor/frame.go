package editor

// frame is the last-written screen content, one styled string per content
// row plus the two chrome rows. Draw compares desired rows against it and
// skips rows that have not changed.
type frame struct {
	rows    []string
	status  string
	message string
	valid   bool
}

// reset discards all cached content, forcing every row to redraw once.
func (f *frame) reset(rows int) {
	f.rows = make([]string, rows)
	f.status = ""
	f.message = ""
	f.valid = false
}

// update stores the desired content for row i and reports whether it
// differed from the cache.
func (f *frame) update(i int, s string) bool {
	if i < 0 || i >= len(f.rows) {
		return true
	}
	if f.valid && f.rows[i] == s {
		return false
	}
	f.rows[i] = s
	return true
}

func (f *frame) updateStatus(s string) bool {
	if f.valid && f.status == s {
		return false
	}
	f.status = s
	return true
}

func (f *frame) updateMessage(s string) bool {
	if f.valid && f.message == s {
		return false
	}
	f.message = s
	return true
}
