package game

import "github.com/gdamore/tcell/v2"

// commandForKey maps a tcell key event to a turn Command.
func commandForKey(ev *tcell.EventKey) Command {
	// Named keys.
	switch ev.Key() {
	case tcell.KeyUp:
		return CmdUp
	case tcell.KeyDown:
		return CmdDown
	case tcell.KeyRight:
		return CmdRight
	case tcell.KeyLeft:
		return CmdLeft
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return CmdQuit
	}

	// Rune keys.
	switch ev.Rune() {
	case 'k', 'K':
		return CmdUp
	case 'j', 'J':
		return CmdDown
	case 'l', 'L':
		return CmdRight
	case 'h', 'H':
		return CmdLeft
	case '.':
		return CmdWait
	case 'q', 'Q':
		return CmdQuit
	}
	return CmdNone
}
