package buffer

type bufferSnapshot struct {
	lines  []string
	cursor Pos
	dirty  int
}

type historyState struct {
	undo []bufferSnapshot
	redo []bufferSnapshot
}

func (b *Buffer) snapshot(cursor Pos) bufferSnapshot {
	return bufferSnapshot{lines: b.Lines(), cursor: cursor, dirty: b.dirty}
}

func (b *Buffer) restore(s bufferSnapshot) Pos {
	rows := make([]*Row, 0, len(s.lines))
	for _, l := range s.lines {
		rows = append(rows, NewRow(l))
	}
	if len(rows) == 0 {
		rows = append(rows, NewRow(""))
	}
	b.rows = rows
	b.dirty = s.dirty
	b.version++
	return b.Clamp(s.cursor)
}

// PushUndo records the current document and cursor so a later Undo can
// restore them. Call it before the first mutation of an editing gesture.
func (b *Buffer) PushUndo(cursor Pos) {
	limit := b.opt.HistoryLimit
	if limit <= 0 {
		return
	}

	b.hist.undo = append(b.hist.undo, b.snapshot(cursor))
	if len(b.hist.undo) > limit {
		b.hist.undo = b.hist.undo[len(b.hist.undo)-limit:]
	}
	b.hist.redo = nil
}

// CanUndo reports whether an Undo would take effect.
func (b *Buffer) CanUndo() bool { return len(b.hist.undo) > 0 }

// CanRedo reports whether a Redo would take effect.
func (b *Buffer) CanRedo() bool { return len(b.hist.redo) > 0 }

// Undo restores the most recently recorded snapshot and returns the cursor
// position saved with it.
func (b *Buffer) Undo(cursor Pos) (Pos, bool) {
	if len(b.hist.undo) == 0 {
		return cursor, false
	}

	i := len(b.hist.undo) - 1
	prev := b.hist.undo[i]
	b.hist.undo = b.hist.undo[:i]
	b.hist.redo = append(b.hist.redo, b.snapshot(cursor))

	return b.restore(prev), true
}

// Redo reverses the most recent Undo.
func (b *Buffer) Redo(cursor Pos) (Pos, bool) {
	if len(b.hist.redo) == 0 {
		return cursor, false
	}

	i := len(b.hist.redo) - 1
	next := b.hist.redo[i]
	b.hist.redo = b.hist.redo[:i]

	if limit := b.opt.HistoryLimit; limit > 0 {
		b.hist.undo = append(b.hist.undo, b.snapshot(cursor))
		if len(b.hist.undo) > limit {
			b.hist.undo = b.hist.undo[len(b.hist.undo)-limit:]
		}
	}

	return b.restore(next), true
}
