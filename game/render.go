package game

import (
	"gridsnake/config"
	"gridsnake/game/types"
)

const (
	// StatusBarHeight is the strip below the board holding the status line
	StatusBarHeight = 28
	StatusFontSize  = 16
	statusMargin    = 6
)

// Renderer is the drawing surface a game paints on. Coordinates are pixels
// with the origin at the top-left corner.
type Renderer interface {
	Clear(c types.Color)
	FillRect(x, y, w, h int)
	FillCircle(cx, cy, r int)
	SetFillColor(c types.Color)
	SetStrokeColor(c types.Color)
	SetLineWidth(n int)
	StrokeRect(x, y, w, h int)
	DrawText(text string, x, y, size int)
}

// CanvasSize is the pixel area a renderer needs for cfg
func CanvasSize(cfg config.Config) (width, height int) {
	w, h := cfg.BoardSize()
	return w, h + StatusBarHeight
}

// Render draws the current state. It only reads game state.
func (g *Game) Render() {
	r := g.renderer
	cs := g.cfg.CellSize
	colors := g.cfg.Colors
	boardW, boardH := g.cfg.BoardSize()

	r.Clear(colors.Background)

	r.SetStrokeColor(colors.Border)
	r.SetLineWidth(1)
	r.StrokeRect(0, 0, boardW, boardH)

	for i, p := range g.snake.Body() {
		if i == 0 {
			r.SetFillColor(colors.Head)
		} else if i == 1 {
			r.SetFillColor(colors.Body)
		}
		r.FillRect(p.X*cs, p.Y*cs, cs, cs)
	}

	food := g.food.Position()
	r.SetFillColor(colors.Food)
	r.FillCircle(food.X*cs+cs/2, food.Y*cs+cs/2, cs/2)

	if g.gameOver {
		r.SetFillColor(colors.GameOver)
	} else {
		r.SetFillColor(colors.Text)
	}
	r.DrawText(g.Status(), statusMargin, boardH+statusMargin, StatusFontSize)
}
