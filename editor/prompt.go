package editor

import "github.com/ked-editor/ked/internal/grapheme"

// promptHooks are the callbacks a prompt owner receives. All are optional.
type promptHooks struct {
	// onChange fires after every edit of the input text.
	onChange func(text string)
	// onKey fires for non-editing keys (arrows and ctrl chords), letting the
	// owner react, e.g. stepping search matches.
	onKey func(k Key, text string)
	// onEnd fires exactly once when the prompt closes.
	onEnd func(text string, canceled bool)
}

// prompt is a modal line editor on the message bar. While active it consumes
// all key events.
type prompt struct {
	owner *Editor
	label string
	input []string // grapheme clusters
	hooks promptHooks
}

func (e *Editor) startPrompt(label string, hooks promptHooks) {
	e.prompt = &prompt{owner: e, label: label, hooks: hooks}
}

func (p *prompt) text() string { return grapheme.Join(p.input) }

func (p *prompt) line() string { return p.label + p.text() }

// cursorCell returns the message-bar cell where the terminal cursor sits.
func (p *prompt) cursorCell(tabStop int) int {
	return grapheme.StringWidth(p.line(), tabStop)
}

func (p *prompt) close(canceled bool) {
	p.owner.prompt = nil
	if p.hooks.onEnd != nil {
		p.hooks.onEnd(p.text(), canceled)
	}
}

func (p *prompt) handle(k Key) {
	switch k.Kind {
	case KeyEnter:
		p.close(false)
	case KeyEscape:
		p.close(true)
	case KeyBackspace:
		if len(p.input) > 0 {
			p.input = p.input[:len(p.input)-1]
			if p.hooks.onChange != nil {
				p.hooks.onChange(p.text())
			}
		}
	case KeyRune:
		if k.Rune == '\t' {
			return
		}
		p.input = append(p.input, string(k.Rune))
		if p.hooks.onChange != nil {
			p.hooks.onChange(p.text())
		}
	default:
		if p.hooks.onKey != nil {
			p.hooks.onKey(k, p.text())
		}
	}
}
