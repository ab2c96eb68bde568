package editor

import "errors"

// ErrEncoding reports non-UTF-8 bytes in loaded content. Stores must return
// it (wrapped) at load time rather than passing corrupt text through.
var ErrEncoding = errors.New("editor: content is not valid UTF-8")

// FileStore loads and saves documents as ordered line sequences. The editor
// performs no filesystem I/O itself.
type FileStore interface {
	Load(name string) ([]string, error)
	// Save writes lines joined with '\n' and reports the byte count.
	Save(name string, lines []string) (int, error)
}
