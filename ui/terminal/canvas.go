// Package terminal draws games on a character-cell screen. Every board cell
// becomes two terminal columns so the board keeps its aspect ratio.
package terminal

import (
	"gridsnake/game"
	"gridsnake/game/types"

	"github.com/gdamore/tcell/v2"
)

const (
	colsPerCell = 2
	foodRune    = '●'
	// the board starts one column and one row in so its frame fits
	originCol = 1
	originRow = 1
)

// Canvas maps pixel coordinates onto screen cells of cellSize pixels
type Canvas struct {
	screen   tcell.Screen
	cellSize int

	background tcell.Color
	fill       tcell.Color
	stroke     tcell.Color
}

var _ game.Renderer = (*Canvas)(nil)

func NewCanvas(screen tcell.Screen, cellSize int) *Canvas {
	if cellSize <= 0 {
		cellSize = 1
	}
	return &Canvas{
		screen:     screen,
		cellSize:   cellSize,
		background: tcell.ColorBlack,
		fill:       tcell.ColorWhite,
		stroke:     tcell.ColorWhite,
	}
}

func toTcell(c types.Color) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}

// ScreenSize is the number of columns and rows needed for a pixel area,
// frame included
func ScreenSize(width, height, cellSize int) (cols, rows int) {
	return ceilDiv(width, cellSize)*colsPerCell + 2*originCol, ceilDiv(height, cellSize) + 2*originRow
}

func ceilDiv(a, b int) int {
	return (a + b - 1) / b
}

func (c *Canvas) Clear(color types.Color) {
	c.background = toTcell(color)
	c.screen.Fill(' ', tcell.StyleDefault.Background(c.background))
}

func (c *Canvas) FillRect(x, y, w, h int) {
	style := tcell.StyleDefault.Background(c.fill)
	for row := y / c.cellSize; row < ceilDiv(y+h, c.cellSize); row++ {
		for cell := x / c.cellSize; cell < ceilDiv(x+w, c.cellSize); cell++ {
			c.paint(cell, row, ' ', ' ', style)
		}
	}
}

func (c *Canvas) FillCircle(cx, cy, r int) {
	style := tcell.StyleDefault.Foreground(c.fill).Background(c.background)
	c.paint(cx/c.cellSize, cy/c.cellSize, foodRune, ' ', style)
}

func (c *Canvas) SetFillColor(color types.Color) {
	c.fill = toTcell(color)
}

func (c *Canvas) SetStrokeColor(color types.Color) {
	c.stroke = toTcell(color)
}

// SetLineWidth is a no-op: lines are always one character wide
func (c *Canvas) SetLineWidth(int) {}

// StrokeRect frames the cells covered by the rectangle
func (c *Canvas) StrokeRect(x, y, w, h int) {
	style := tcell.StyleDefault.Foreground(c.stroke).Background(c.background)
	left := x/c.cellSize*colsPerCell - 1
	right := ceilDiv(x+w, c.cellSize) * colsPerCell
	top := y/c.cellSize - 1
	bottom := ceilDiv(y+h, c.cellSize)

	for col := left + 1; col < right; col++ {
		c.set(col, top, '─', style)
		c.set(col, bottom, '─', style)
	}
	for row := top + 1; row < bottom; row++ {
		c.set(left, row, '│', style)
		c.set(right, row, '│', style)
	}
	c.set(left, top, '┌', style)
	c.set(right, top, '┐', style)
	c.set(left, bottom, '└', style)
	c.set(right, bottom, '┘', style)
}

// DrawText writes text on the first full row at or below y. Font size is
// ignored.
func (c *Canvas) DrawText(text string, x, y, size int) {
	style := tcell.StyleDefault.Foreground(c.fill).Background(c.background)
	col := x / c.cellSize * colsPerCell
	row := ceilDiv(y, c.cellSize)
	for _, r := range text {
		c.set(col, row, r, style)
		col++
	}
}

// Show flushes drawn content to the terminal
func (c *Canvas) Show() {
	c.screen.Show()
}

func (c *Canvas) paint(cell, row int, left, right rune, style tcell.Style) {
	col := cell * colsPerCell
	c.set(col, row, left, style)
	c.set(col+1, row, right, style)
}

func (c *Canvas) set(col, row int, r rune, style tcell.Style) {
	c.screen.SetContent(col+originCol, row+originRow, r, nil, style)
}
