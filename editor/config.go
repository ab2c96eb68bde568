package editor

import (
	"io"
	"time"
)

// Config configures an Editor. Zero values get defaults in New.
type Config struct {
	// Filename names the buffer; "" means an unnamed buffer.
	Filename string
	// Lines is the initial content, one entry per row.
	Lines []string

	TabStop      int           // default: 8
	QuitConfirm  int           // extra Ctrl-Q presses needed on a dirty buffer; default: 3
	MessageTTL   time.Duration // status message lifetime; default: 5s
	PollInterval time.Duration // input poll timeout; default: 100ms
	HistoryLimit int           // forwarded to buffer.Options

	Style       Style
	Highlighter Highlighter // nil: unstyled content
	Clipboard   Clipboard   // nil: line clipboard commands disabled
	Store       FileStore   // nil: save commands report an error message

	// Input and Output are the raw terminal streams.
	Input  io.Reader
	Output io.Writer

	// Size queries the terminal dimensions. Called at startup and whenever a
	// resize notification is consumed.
	Size func() (rows, cols int)
}

func (c Config) withDefaults() Config {
	if c.TabStop <= 0 {
		c.TabStop = 8
	}
	if c.QuitConfirm <= 0 {
		c.QuitConfirm = 3
	}
	if c.MessageTTL <= 0 {
		c.MessageTTL = 5 * time.Second
	}
	if c.PollInterval <= 0 {
		c.PollInterval = 100 * time.Millisecond
	}
	return c
}
