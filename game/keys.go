package game

import "gridsnake/game/types"

// Key names delivered by input sources
const (
	KeyArrowUp    = "ArrowUp"
	KeyArrowDown  = "ArrowDown"
	KeyArrowLeft  = "ArrowLeft"
	KeyArrowRight = "ArrowRight"
	KeyRestart    = "r"
	KeyPause      = "p"
	KeySpace      = " "
)

var keyDirections = map[string]types.Direction{
	KeyArrowUp:    types.Up,
	KeyArrowDown:  types.Down,
	KeyArrowLeft:  types.Left,
	KeyArrowRight: types.Right,
}

// DirectionForKey maps an arrow key name to its direction
func DirectionForKey(key string) (types.Direction, bool) {
	d, ok := keyDirections[key]
	return d, ok
}

// HandleKey routes a key-down event. Arrows queue a direction while the run
// is alive, r restarts a finished run, p or space toggles pause. Anything
// else is ignored.
func (g *Game) HandleKey(key string) {
	if d, ok := DirectionForKey(key); ok {
		if !g.gameOver && !g.loop.Paused() {
			g.QueueDirection(d)
		}
		return
	}
	switch key {
	case KeyRestart, "R":
		if g.gameOver {
			g.Reset()
		}
	case KeyPause, "P", KeySpace:
		if !g.gameOver {
			g.TogglePause()
		}
	}
}
