package editor

// Command is a non-motion editing command bound to a key chord.
type Command int

const (
	CmdNone Command = iota
	CmdQuit
	CmdSave
	CmdFind
	CmdUndo
	CmdRedo
	CmdCopyLine
	CmdCutLine
	CmdPaste
	CmdHome
	CmdEnd
)

// Keymap binds key chords to commands. Motions and plain input are handled
// structurally and are not remappable.
type Keymap map[Key]Command

// DefaultKeymap returns the stock bindings.
//
// Ctrl-A/Ctrl-E mirror Home/End for terminals that swallow those keys.
func DefaultKeymap() Keymap {
	return Keymap{
		ctrlKey('q'): CmdQuit,
		ctrlKey('s'): CmdSave,
		ctrlKey('f'): CmdFind,
		ctrlKey('z'): CmdUndo,
		ctrlKey('y'): CmdRedo,
		ctrlKey('c'): CmdCopyLine,
		ctrlKey('x'): CmdCutLine,
		ctrlKey('v'): CmdPaste,
		ctrlKey('a'): CmdHome,
		ctrlKey('e'): CmdEnd,
	}
}
