package editor

import "unicode/utf8"

// KeyKind identifies a decoded key event.
type KeyKind int

const (
	KeyRune KeyKind = iota
	KeyCtrl
	KeyEnter
	KeyBackspace
	KeyEscape
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyHome
	KeyEnd
	KeyPageUp
	KeyPageDown
	KeyDelete
	KeyWordLeft
	KeyWordRight
	KeyDocHome
	KeyDocEnd
)

// Key is one logical key event. Rune is set for KeyRune, Ctrl holds the
// unmasked letter ('a'..'z') for KeyCtrl chords.
type Key struct {
	Kind KeyKind
	Rune rune
	Ctrl byte
}

func ctrlKey(letter byte) Key { return Key{Kind: KeyCtrl, Ctrl: letter} }

// Decoder turns a raw terminal byte stream into Key events.
//
// Bytes arrive in arbitrary chunks via Feed. An escape or UTF-8 sequence cut
// off at the end of a chunk is held in the pending buffer and completed by
// the next Feed instead of being misread. Unrecognized sequences are
// consumed and dropped.
type Decoder struct {
	pending []byte
}

// Feed appends raw bytes read from the terminal.
func (d *Decoder) Feed(p []byte) {
	if len(p) == 0 {
		return
	}
	d.pending = append(d.pending, p...)
}

// Buffered reports whether undecoded bytes are pending.
func (d *Decoder) Buffered() bool { return len(d.pending) > 0 }

// Next decodes the next key event. ok is false when the pending bytes are
// empty or form an incomplete sequence that needs more input.
func (d *Decoder) Next() (Key, bool) {
	for len(d.pending) > 0 {
		k, n, ok := decodeOne(d.pending)
		if !ok {
			// Incomplete sequence: wait for more bytes.
			return Key{}, false
		}
		d.pending = d.pending[n:]
		if n > 0 && k != (Key{Kind: keyNone}) {
			return k, true
		}
	}
	return Key{}, false
}

// Flush resolves pending bytes after an input lull. A lone ESC (or ESC that
// never grew into a recognizable sequence) becomes an Escape key; anything
// else undecodable is dropped.
func (d *Decoder) Flush() (Key, bool) {
	if len(d.pending) == 0 {
		return Key{}, false
	}
	if d.pending[0] == 0x1b {
		d.pending = nil
		return Key{Kind: KeyEscape}, true
	}
	d.pending = nil
	return Key{}, false
}

// keyNone marks a decoded-but-dropped sequence.
const keyNone KeyKind = -1

// decodeOne decodes one key from p. It returns the consumed byte count and
// ok=false when p starts a sequence that is not yet complete.
func decodeOne(p []byte) (Key, int, bool) {
	switch b := p[0]; {
	case b == 0x1b:
		return decodeEscape(p)
	case b == '\r':
		return Key{Kind: KeyEnter}, 1, true
	case b == 0x7f, b == 0x08:
		return Key{Kind: KeyBackspace}, 1, true
	case b == '\t':
		return Key{Kind: KeyRune, Rune: '\t'}, 1, true
	case b < 0x20:
		// Ctrl chords mask the letter with 0x1f; unmask it.
		return ctrlKey(b | 0x60), 1, true
	case b < 0x80:
		return Key{Kind: KeyRune, Rune: rune(b)}, 1, true
	default:
		if !utf8.FullRune(p) {
			if len(p) < utf8.UTFMax {
				return Key{}, 0, false
			}
			// Cannot become valid; drop one byte.
			return Key{Kind: keyNone}, 1, true
		}
		r, n := utf8.DecodeRune(p)
		if r == utf8.RuneError && n == 1 {
			return Key{Kind: keyNone}, 1, true
		}
		return Key{Kind: KeyRune, Rune: r}, n, true
	}
}

func decodeEscape(p []byte) (Key, int, bool) {
	if len(p) < 2 {
		return Key{}, 0, false
	}

	switch p[1] {
	case '[':
		return decodeCSI(p)
	case 'O':
		if len(p) < 3 {
			return Key{}, 0, false
		}
		switch p[2] {
		case 'A':
			return Key{Kind: KeyUp}, 3, true
		case 'B':
			return Key{Kind: KeyDown}, 3, true
		case 'C':
			return Key{Kind: KeyRight}, 3, true
		case 'D':
			return Key{Kind: KeyLeft}, 3, true
		case 'H':
			return Key{Kind: KeyHome}, 3, true
		case 'F':
			return Key{Kind: KeyEnd}, 3, true
		}
		return Key{Kind: keyNone}, 3, true
	case 0x1b:
		// ESC ESC: report one escape, keep the second for the next round.
		return Key{Kind: KeyEscape}, 1, true
	default:
		// Alt-modified key; not bound, drop both bytes.
		return Key{Kind: keyNone}, 2, true
	}
}

func decodeCSI(p []byte) (Key, int, bool) {
	// CSI parameters are 0x20..0x3f; a final byte 0x40..0x7e ends the
	// sequence.
	i := 2
	for ; i < len(p); i++ {
		if p[i] >= 0x40 && p[i] <= 0x7e {
			break
		}
		if p[i] < 0x20 || p[i] > 0x3f {
			// Malformed parameter byte; drop everything up to it.
			return Key{Kind: keyNone}, i, true
		}
	}
	if i == len(p) {
		return Key{}, 0, false
	}

	params := string(p[2:i])
	final := p[i]
	n := i + 1

	switch final {
	case 'A':
		return Key{Kind: KeyUp}, n, true
	case 'B':
		return Key{Kind: KeyDown}, n, true
	case 'C':
		if params == "1;5" || params == "1;3" {
			return Key{Kind: KeyWordRight}, n, true
		}
		return Key{Kind: KeyRight}, n, true
	case 'D':
		if params == "1;5" || params == "1;3" {
			return Key{Kind: KeyWordLeft}, n, true
		}
		return Key{Kind: KeyLeft}, n, true
	case 'H':
		if params == "1;5" {
			return Key{Kind: KeyDocHome}, n, true
		}
		return Key{Kind: KeyHome}, n, true
	case 'F':
		if params == "1;5" {
			return Key{Kind: KeyDocEnd}, n, true
		}
		return Key{Kind: KeyEnd}, n, true
	case '~':
		switch params {
		case "1", "7":
			return Key{Kind: KeyHome}, n, true
		case "4", "8":
			return Key{Kind: KeyEnd}, n, true
		case "3":
			return Key{Kind: KeyDelete}, n, true
		case "5":
			return Key{Kind: KeyPageUp}, n, true
		case "6":
			return Key{Kind: KeyPageDown}, n, true
		}
		return Key{Kind: keyNone}, n, true
	}
	return Key{Kind: keyNone}, n, true
}
