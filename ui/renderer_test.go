package ui

import (
	"testing"

	"gridsnake/game"
	"gridsnake/game/types"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/stretchr/testify/assert"
)

func TestRaylibKeyName(t *testing.T) {
	assert.Equal(t, game.KeyArrowUp, RaylibKeyName(rl.KeyUp))
	assert.Equal(t, game.KeyArrowDown, RaylibKeyName(rl.KeyDown))
	assert.Equal(t, game.KeyArrowLeft, RaylibKeyName(rl.KeyLeft))
	assert.Equal(t, game.KeyArrowRight, RaylibKeyName(rl.KeyRight))
	assert.Equal(t, game.KeyRestart, RaylibKeyName(rl.KeyR))
	assert.Equal(t, game.KeySpace, RaylibKeyName(rl.KeySpace))
	assert.Empty(t, RaylibKeyName(rl.KeyW))
}

func TestRendererTracksColors(t *testing.T) {
	r := NewRenderer()
	r.SetFillColor(types.RGB(1, 2, 3))
	r.SetStrokeColor(types.Color{R: 4, G: 5, B: 6, A: 7})
	r.SetLineWidth(3)

	assert.Equal(t, rl.Color{R: 1, G: 2, B: 3, A: 255}, r.fill)
	assert.Equal(t, rl.Color{R: 4, G: 5, B: 6, A: 7}, r.stroke)
	assert.Equal(t, float32(3), r.lineWidth)
}
