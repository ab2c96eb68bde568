package editor

import (
	"context"
	"fmt"
	"io"
	"strings"
	"sync/atomic"
	"time"

	"github.com/ked-editor/ked/buffer"
	"github.com/ked-editor/ked/internal/grapheme"
)

// Editor owns the buffer, viewport, renderer, and input decoder, and runs
// the control loop. All state is mutated from the loop goroutine only.
type Editor struct {
	cfg    Config
	buf    *buffer.Buffer
	vp     *Viewport
	rend   *Renderer
	dec    *Decoder
	keymap Keymap

	filename string
	msg      statusMessage
	prompt   *prompt
	search   *searchState

	quitLeft      int
	resizePending atomic.Bool
}

type statusMessage struct {
	text  string
	setAt time.Time
}

// New builds an Editor from cfg.
func New(cfg Config) *Editor {
	cfg = cfg.withDefaults()
	e := &Editor{
		cfg: cfg,
		buf: buffer.New(cfg.Lines, buffer.Options{
			TabStop:      cfg.TabStop,
			HistoryLimit: cfg.HistoryLimit,
		}),
		vp:       &Viewport{},
		rend:     NewRenderer(cfg.Style, cfg.Highlighter),
		dec:      &Decoder{},
		keymap:   DefaultKeymap(),
		filename: cfg.Filename,
		quitLeft: cfg.QuitConfirm,
	}
	e.applySize()
	return e
}

// Buffer exposes the document, mainly for tests and host integration.
func (e *Editor) Buffer() *buffer.Buffer { return e.buf }

// Viewport exposes the cursor/scroll state.
func (e *Editor) Viewport() *Viewport { return e.vp }

// NotifyResize marks a pending resize. Safe to call from a signal goroutine;
// the flag is consumed at the top of the next loop iteration.
func (e *Editor) NotifyResize() { e.resizePending.Store(true) }

// SetMessage places text on the message bar with the configured TTL.
func (e *Editor) SetMessage(format string, args ...any) {
	e.msg = statusMessage{text: fmt.Sprintf(format, args...), setAt: time.Now()}
}

func (e *Editor) applySize() {
	rows, cols := 0, 0
	if e.cfg.Size != nil {
		rows, cols = e.cfg.Size()
	}
	// Two rows of chrome: status bar and message bar.
	rows -= 2
	if rows < 0 {
		rows = 0
	}
	e.vp.SetSize(rows, cols)
}

func (e *Editor) consumeResize() {
	if !e.resizePending.Swap(false) {
		return
	}
	e.applySize()
	e.vp.Scroll(e.buf)
	e.rend.Invalidate()
}

// Render writes one frame to the configured output.
func (e *Editor) Render() error {
	message := e.msg.text
	promptCursor := -1
	if e.prompt != nil {
		message = e.prompt.line()
		promptCursor = e.prompt.cursorCell(e.buf.TabStop())
	} else if message != "" && time.Since(e.msg.setAt) > e.cfg.MessageTTL {
		message = ""
	}

	return e.rend.Draw(e.cfg.Output, e.buf, e.vp, StatusContext{
		Filename:     e.filename,
		Dirty:        e.buf.Dirty(),
		RowCount:     e.buf.RowCount(),
		Cursor:       e.vp.Cursor,
		Message:      message,
		PromptCursor: promptCursor,
	})
}

// Run drives the control loop until quit, an input/output error, or context
// cancellation. The caller restores terminal state afterward.
func (e *Editor) Run(ctx context.Context) error {
	input := make(chan []byte)
	readErr := make(chan error, 1)
	go func() {
		buf := make([]byte, 256)
		for {
			n, err := e.cfg.Input.Read(buf)
			if n > 0 {
				chunk := make([]byte, n)
				copy(chunk, buf[:n])
				select {
				case input <- chunk:
				case <-ctx.Done():
					return
				}
			}
			if err != nil {
				readErr <- err
				return
			}
		}
	}()

	e.SetMessage("HELP: Ctrl-S save | Ctrl-F find | Ctrl-Q quit")

	for {
		e.consumeResize()
		if err := e.Render(); err != nil {
			return err
		}

		// Prefer already-buffered input so pasted text replays without
		// waiting on the poll timer; still at most one command per turn.
		if k, ok := e.dec.Next(); ok {
			if quit := e.dispatch(k); quit {
				return e.shutdown()
			}
			continue
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case err := <-readErr:
			if err == io.EOF {
				return e.shutdown()
			}
			return fmt.Errorf("editor: input read: %w", err)
		case chunk := <-input:
			e.dec.Feed(chunk)
		case <-time.After(e.cfg.PollInterval):
			// Resolve a dangling escape after the lull.
			if k, ok := e.dec.Flush(); ok {
				if quit := e.dispatch(k); quit {
					return e.shutdown()
				}
			}
		}
	}
}

func (e *Editor) shutdown() error {
	// Leave the screen clean for the shell.
	if _, err := io.WriteString(e.cfg.Output, "\x1b[2J\x1b[H"); err != nil {
		return fmt.Errorf("editor: shutdown write: %w", err)
	}
	return nil
}

// dispatch routes one key. It reports whether the editor should quit.
func (e *Editor) dispatch(k Key) bool {
	if e.prompt != nil {
		e.prompt.handle(k)
		return false
	}

	if cmd, ok := e.keymap[k]; ok {
		return e.runCommand(cmd)
	}

	switch k.Kind {
	case KeyUp:
		e.vp.MoveCursor(MotionUp, e.buf)
	case KeyDown:
		e.vp.MoveCursor(MotionDown, e.buf)
	case KeyLeft:
		e.vp.MoveCursor(MotionLeft, e.buf)
	case KeyRight:
		e.vp.MoveCursor(MotionRight, e.buf)
	case KeyHome:
		e.vp.MoveCursor(MotionHome, e.buf)
	case KeyEnd:
		e.vp.MoveCursor(MotionEnd, e.buf)
	case KeyPageUp:
		e.vp.MoveCursor(MotionPageUp, e.buf)
	case KeyPageDown:
		e.vp.MoveCursor(MotionPageDown, e.buf)
	case KeyWordLeft:
		e.vp.MoveCursor(MotionWordLeft, e.buf)
	case KeyWordRight:
		e.vp.MoveCursor(MotionWordRight, e.buf)
	case KeyDocHome:
		e.vp.MoveCursor(MotionDocHome, e.buf)
	case KeyDocEnd:
		e.vp.MoveCursor(MotionDocEnd, e.buf)
	case KeyEnter:
		e.insertNewline()
	case KeyBackspace:
		e.deleteBackward()
	case KeyDelete:
		e.deleteForward()
	case KeyRune:
		e.insertRune(k.Rune)
	case KeyEscape, KeyCtrl:
		// Unbound chords are dropped.
	}

	if k.Kind != KeyCtrl {
		e.quitLeft = e.cfg.QuitConfirm
	}
	return false
}

func (e *Editor) runCommand(cmd Command) bool {
	if cmd != CmdQuit {
		e.quitLeft = e.cfg.QuitConfirm
	}

	switch cmd {
	case CmdQuit:
		if e.buf.Dirty() && e.quitLeft > 0 {
			e.SetMessage("WARNING: unsaved changes. Press Ctrl-Q %d more time(s) to quit.", e.quitLeft)
			e.quitLeft--
			return false
		}
		return true
	case CmdSave:
		e.save()
	case CmdFind:
		e.startSearch()
	case CmdUndo:
		if p, ok := e.buf.Undo(e.vp.Cursor); ok {
			e.vp.SetCursor(p, e.buf)
		} else {
			e.SetMessage("Nothing to undo")
		}
	case CmdRedo:
		if p, ok := e.buf.Redo(e.vp.Cursor); ok {
			e.vp.SetCursor(p, e.buf)
		} else {
			e.SetMessage("Nothing to redo")
		}
	case CmdCopyLine:
		e.copyLine(false)
	case CmdCutLine:
		e.copyLine(true)
	case CmdPaste:
		e.paste()
	case CmdHome:
		e.vp.MoveCursor(MotionHome, e.buf)
	case CmdEnd:
		e.vp.MoveCursor(MotionEnd, e.buf)
	}
	return false
}

func (e *Editor) insertRune(r rune) {
	e.buf.PushUndo(e.vp.Cursor)
	next, err := e.buf.InsertChar(e.vp.Cursor, string(r))
	if err != nil {
		return
	}
	e.vp.SetCursor(next, e.buf)
}

func (e *Editor) insertNewline() {
	e.buf.PushUndo(e.vp.Cursor)
	if err := e.buf.SplitRow(e.vp.Cursor); err != nil {
		return
	}
	e.vp.SetCursor(buffer.Pos{Row: e.vp.Cursor.Row + 1, Col: 0}, e.buf)
}

func (e *Editor) deleteBackward() {
	if e.vp.Cursor == (buffer.Pos{}) {
		return
	}
	e.buf.PushUndo(e.vp.Cursor)
	next, err := e.buf.DeleteChar(e.vp.Cursor)
	if err != nil {
		return
	}
	e.vp.SetCursor(next, e.buf)
}

func (e *Editor) deleteForward() {
	c := e.vp.Cursor
	if c.Col == e.buf.RowLen(c.Row) && c.Row == e.buf.RowCount()-1 {
		return
	}
	e.vp.MoveCursor(MotionRight, e.buf)
	e.deleteBackward()
}

func (e *Editor) copyLine(cut bool) {
	if e.cfg.Clipboard == nil {
		e.SetMessage("No clipboard available")
		return
	}
	line := e.buf.Row(e.vp.Cursor.Row).Text()
	if err := e.cfg.Clipboard.WriteText(line + "\n"); err != nil {
		e.SetMessage("Clipboard error: %v", err)
		return
	}
	if cut {
		e.buf.PushUndo(e.vp.Cursor)
		if e.buf.RowCount() == 1 {
			// Cutting the only row clears it instead of removing it.
			e.buf.RemoveRow(0)
		} else if err := e.buf.RemoveRow(e.vp.Cursor.Row); err != nil {
			return
		}
		e.vp.SetCursor(buffer.Pos{Row: e.vp.Cursor.Row, Col: 0}, e.buf)
		e.SetMessage("Cut line")
		return
	}
	e.SetMessage("Copied line")
}

func (e *Editor) paste() {
	if e.cfg.Clipboard == nil {
		e.SetMessage("No clipboard available")
		return
	}
	text, err := e.cfg.Clipboard.ReadText()
	if err != nil {
		e.SetMessage("Clipboard error: %v", err)
		return
	}
	if text == "" {
		return
	}

	e.buf.PushUndo(e.vp.Cursor)
	cur := e.vp.Cursor
	parts := strings.Split(strings.TrimSuffix(text, "\n"), "\n")
	for i, part := range parts {
		if i > 0 {
			if err := e.buf.SplitRow(cur); err != nil {
				break
			}
			cur = buffer.Pos{Row: cur.Row + 1, Col: 0}
		}
		for _, cluster := range grapheme.Split(part) {
			next, err := e.buf.InsertChar(cur, cluster)
			if err != nil {
				break
			}
			cur = next
		}
	}
	e.vp.SetCursor(cur, e.buf)
}

func (e *Editor) save() {
	if e.cfg.Store == nil {
		e.SetMessage("No file store configured")
		return
	}
	if e.filename == "" {
		e.startPrompt("Save as: ", promptHooks{
			onEnd: func(text string, canceled bool) {
				if canceled || text == "" {
					e.SetMessage("Save aborted")
					return
				}
				e.filename = text
				e.save()
			},
		})
		return
	}

	n, err := e.cfg.Store.Save(e.filename, e.buf.Lines())
	if err != nil {
		e.SetMessage("Can't save: %v", err)
		return
	}
	e.buf.MarkClean()
	e.SetMessage("%d bytes written to %s", n, e.filename)
}
