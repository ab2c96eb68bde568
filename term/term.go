// Package term wraps the platform terminal: raw mode, size queries, and
// resize notifications. The editor core never touches these directly; it
// receives size and resize events through its Config.
package term

import (
	"fmt"
	"os"
	"os/signal"

	"golang.org/x/sys/unix"
	"golang.org/x/term"
)

// RawMode is a scoped raw-mode guard. Restore must run on every exit path,
// including error paths, so the shell gets its terminal back.
type RawMode struct {
	fd   int
	prev *term.State
}

// MakeRaw switches the terminal on fd into raw mode and returns the guard.
func MakeRaw(fd int) (*RawMode, error) {
	prev, err := term.MakeRaw(fd)
	if err != nil {
		return nil, fmt.Errorf("term: enter raw mode: %w", err)
	}
	return &RawMode{fd: fd, prev: prev}, nil
}

// Restore puts the terminal back into its pre-raw state. Safe to call more
// than once.
func (r *RawMode) Restore() error {
	if r == nil || r.prev == nil {
		return nil
	}
	prev := r.prev
	r.prev = nil
	if err := term.Restore(r.fd, prev); err != nil {
		return fmt.Errorf("term: restore: %w", err)
	}
	return nil
}

// Size returns the terminal dimensions as (rows, cols). A failed query
// reports a zero-size terminal, which the editor treats as nothing visible.
func Size(fd int) (rows, cols int) {
	w, h, err := term.GetSize(fd)
	if err != nil {
		return 0, 0
	}
	return h, w
}

// NotifyResize invokes fn from a dedicated goroutine on every SIGWINCH until
// stop is called. fn must be safe to call from that goroutine; typically it
// only flips a pending flag.
func NotifyResize(fn func()) (stop func()) {
	ch := make(chan os.Signal, 1)
	signal.Notify(ch, unix.SIGWINCH)
	done := make(chan struct{})

	go func() {
		for {
			select {
			case <-ch:
				fn()
			case <-done:
				return
			}
		}
	}()

	return func() {
		signal.Stop(ch)
		close(done)
	}
}
