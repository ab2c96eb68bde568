package editor

import "github.com/atotto/clipboard"

// Clipboard provides line copy/cut/paste integration.
//
// Errors must not crash the editor; failures surface as status messages.
type Clipboard interface {
	ReadText() (string, error)
	WriteText(s string) error
}

// SystemClipboard is the OS clipboard.
type SystemClipboard struct{}

func (SystemClipboard) ReadText() (string, error) { return clipboard.ReadAll() }

func (SystemClipboard) WriteText(s string) error { return clipboard.WriteAll(s) }
