package terminal

import (
	"gridsnake/game"

	"github.com/gdamore/tcell/v2"
)

// KeyName names a tcell key event the way the game expects. Runes are
// passed through so the game can decide what they mean.
func KeyName(ev *tcell.EventKey) string {
	switch ev.Key() {
	case tcell.KeyUp:
		return game.KeyArrowUp
	case tcell.KeyDown:
		return game.KeyArrowDown
	case tcell.KeyLeft:
		return game.KeyArrowLeft
	case tcell.KeyRight:
		return game.KeyArrowRight
	case tcell.KeyRune:
		return string(ev.Rune())
	}
	return ""
}

// IsQuit reports whether ev should end the program
func IsQuit(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return true
	case tcell.KeyRune:
		return ev.Rune() == 'q'
	}
	return false
}
