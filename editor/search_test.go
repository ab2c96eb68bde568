package editor

import (
	"strings"
	"testing"

	"github.com/ked-editor/ked/buffer"
)

func startFind(t *testing.T, env *testEnv, query string) {
	t.Helper()
	press(env.ed, ctrlKey('f'))
	if env.ed.prompt == nil {
		t.Fatal("Ctrl-F should open the search prompt")
	}
	typeText(env.ed, query)
}

func TestSearch_IncrementalMatchMovesCursor(t *testing.T) {
	env := newTestEditor("", "lorem ipsum", "needle row", "another needle")

	startFind(t, env, "needle")
	if c := env.ed.Viewport().Cursor; c != (buffer.Pos{Row: 1, Col: 0}) {
		t.Fatalf("cursor=%+v, want (1,0)", c)
	}
	if env.ed.rend.match == nil || env.ed.rend.match.row != 1 {
		t.Fatal("match overlay not placed on row 1")
	}

	press(env.ed, Key{Kind: KeyEnter})
	if env.ed.search != nil || env.ed.prompt != nil {
		t.Fatal("accepting the prompt must end the session")
	}
	if env.ed.rend.match != nil {
		t.Fatal("match overlay must clear when the session ends")
	}
	if !strings.Contains(env.ed.msg.text, `Found "needle"`) {
		t.Fatalf("msg=%q, want found notice", env.ed.msg.text)
	}
}

func TestSearch_QueryShrinkRestartsFromCursor(t *testing.T) {
	env := newTestEditor("", "aaa", "ab", "abc")

	startFind(t, env, "ab")
	if c := env.ed.Viewport().Cursor; c.Row != 1 {
		t.Fatalf("cursor row=%d, want 1", c.Row)
	}
	press(env.ed, Key{Kind: KeyDown}) // step to the next hit
	if c := env.ed.Viewport().Cursor; c.Row != 2 {
		t.Fatalf("cursor row=%d, want 2", c.Row)
	}

	// Editing the query resets the session to a fresh scan.
	press(env.ed, Key{Kind: KeyBackspace})
	if c := env.ed.Viewport().Cursor; c.Row != 2 {
		t.Fatalf("cursor row=%d, want first hit at/after the cursor row", c.Row)
	}
	if env.ed.search.lastMatch != 2 {
		t.Fatalf("lastMatch=%d, want 2", env.ed.search.lastMatch)
	}
}

func TestSearch_ForwardSteppingWraps(t *testing.T) {
	env := newTestEditor("", "lorem ipsum", "needle row", "another needle")

	startFind(t, env, "needle")
	press(env.ed, Key{Kind: KeyDown})
	if c := env.ed.Viewport().Cursor; c != (buffer.Pos{Row: 2, Col: 8}) {
		t.Fatalf("cursor=%+v, want (2,8)", c)
	}

	press(env.ed, Key{Kind: KeyDown}) // wraps past the last row
	if c := env.ed.Viewport().Cursor; c != (buffer.Pos{Row: 1, Col: 0}) {
		t.Fatalf("cursor=%+v, want wrap back to (1,0)", c)
	}
}

func TestSearch_BackwardSteppingWraps(t *testing.T) {
	env := newTestEditor("", "lorem ipsum", "needle row", "another needle")

	startFind(t, env, "needle")
	press(env.ed, Key{Kind: KeyUp}) // wraps through row 0 to the end
	if c := env.ed.Viewport().Cursor; c != (buffer.Pos{Row: 2, Col: 8}) {
		t.Fatalf("cursor=%+v, want (2,8)", c)
	}
}

func TestSearch_CtrlChordsStepToo(t *testing.T) {
	env := newTestEditor("", "needle", "needle")

	startFind(t, env, "needle")
	press(env.ed, ctrlKey('n'))
	if c := env.ed.Viewport().Cursor; c.Row != 1 {
		t.Fatalf("cursor row=%d, want 1 after Ctrl-N", c.Row)
	}
	press(env.ed, ctrlKey('p'))
	if c := env.ed.Viewport().Cursor; c.Row != 0 {
		t.Fatalf("cursor row=%d, want 0 after Ctrl-P", c.Row)
	}
}

func TestSearch_CancelRestoresCursorAndScroll(t *testing.T) {
	lines := make([]string, 30)
	for i := range lines {
		lines[i] = "filler"
	}
	lines[0] = "start here"
	lines[25] = "the needle line"
	env := newTestEditor("", lines...)
	env.ed.Viewport().SetCursor(buffer.Pos{Row: 0, Col: 3}, env.ed.Buffer())

	startFind(t, env, "needle")
	if c := env.ed.Viewport().Cursor; c.Row != 25 {
		t.Fatalf("cursor row=%d, want 25 at the match", c.Row)
	}
	if env.ed.Viewport().RowOff == 0 {
		t.Fatal("viewport should have scrolled to the match")
	}

	press(env.ed, Key{Kind: KeyEscape})
	if c := env.ed.Viewport().Cursor; c != (buffer.Pos{Row: 0, Col: 3}) {
		t.Fatalf("cursor=%+v, want restored (0,3)", c)
	}
	if env.ed.Viewport().RowOff != 0 {
		t.Fatalf("RowOff=%d, want restored 0", env.ed.Viewport().RowOff)
	}
	if env.ed.rend.match != nil {
		t.Fatal("match overlay must clear on cancel")
	}
}

func TestSearch_NotFound(t *testing.T) {
	env := newTestEditor("", "lorem ipsum")

	startFind(t, env, "zzz")
	if c := env.ed.Viewport().Cursor; c != (buffer.Pos{}) {
		t.Fatalf("cursor=%+v, want unmoved (0,0)", c)
	}
	press(env.ed, Key{Kind: KeyEnter})
	if !strings.Contains(env.ed.msg.text, `Not found: "zzz"`) {
		t.Fatalf("msg=%q, want not-found notice", env.ed.msg.text)
	}
}

func TestSearch_MatchColUsesClusters(t *testing.T) {
	// "é" occupies two bytes; the match column is the cluster index, not the
	// byte offset.
	env := newTestEditor("", "café bar")

	startFind(t, env, "bar")
	if c := env.ed.Viewport().Cursor; c != (buffer.Pos{Row: 0, Col: 5}) {
		t.Fatalf("cursor=%+v, want (0,5)", c)
	}
	if m := env.ed.rend.match; m == nil || m.startCol != 5 || m.endCol != 8 {
		t.Fatalf("match=%+v, want clusters [5,8) on row 0", m)
	}
}
