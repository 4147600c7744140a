package ui

import (
	"gridsnake/game"
	"gridsnake/game/types"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Renderer paints on the current raylib frame. Calls must happen between
// rl.BeginDrawing and rl.EndDrawing.
type Renderer struct {
	fill      rl.Color
	stroke    rl.Color
	lineWidth float32
}

var _ game.Renderer = (*Renderer)(nil)

func NewRenderer() *Renderer {
	return &Renderer{
		fill:      rl.White,
		stroke:    rl.White,
		lineWidth: 1,
	}
}

func toRaylib(c types.Color) rl.Color {
	return rl.Color{R: c.R, G: c.G, B: c.B, A: c.A}
}

func (r *Renderer) Clear(c types.Color) {
	rl.ClearBackground(toRaylib(c))
}

func (r *Renderer) FillRect(x, y, w, h int) {
	rl.DrawRectangle(int32(x), int32(y), int32(w), int32(h), r.fill)
}

func (r *Renderer) FillCircle(cx, cy, radius int) {
	rl.DrawCircle(int32(cx), int32(cy), float32(radius), r.fill)
}

func (r *Renderer) SetFillColor(c types.Color) {
	r.fill = toRaylib(c)
}

func (r *Renderer) SetStrokeColor(c types.Color) {
	r.stroke = toRaylib(c)
}

func (r *Renderer) SetLineWidth(n int) {
	r.lineWidth = float32(n)
}

func (r *Renderer) StrokeRect(x, y, w, h int) {
	rect := rl.Rectangle{X: float32(x), Y: float32(y), Width: float32(w), Height: float32(h)}
	rl.DrawRectangleLinesEx(rect, r.lineWidth, r.stroke)
}

func (r *Renderer) DrawText(text string, x, y, size int) {
	rl.DrawText(text, int32(x), int32(y), int32(size), r.fill)
}

var raylibKeys = map[int32]string{
	rl.KeyUp:    game.KeyArrowUp,
	rl.KeyDown:  game.KeyArrowDown,
	rl.KeyLeft:  game.KeyArrowLeft,
	rl.KeyRight: game.KeyArrowRight,
	rl.KeyR:     game.KeyRestart,
	rl.KeyP:     game.KeyPause,
	rl.KeySpace: game.KeySpace,
}

// RaylibKeyName names a raylib key code the way the game expects, or
// returns "" for keys the game does not use
func RaylibKeyName(key int32) string {
	return raylibKeys[key]
}

// PressedKeys drains raylib's key queue for this frame
func PressedKeys() []string {
	var keys []string
	for key := rl.GetKeyPressed(); key != 0; key = rl.GetKeyPressed() {
		if name := RaylibKeyName(key); name != "" {
			keys = append(keys, name)
		}
	}
	return keys
}
