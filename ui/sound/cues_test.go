package sound

import (
	"testing"

	"gridsnake/game"

	"github.com/stretchr/testify/assert"
)

func TestToneFor(t *testing.T) {
	ate, ok := ToneFor(game.Event{Type: game.EventAte})
	assert.True(t, ok)
	over, ok := ToneFor(game.Event{Type: game.EventGameOver})
	assert.True(t, ok)
	assert.Greater(t, ate.Freq, over.Freq, "eating sounds higher than dying")
	assert.Greater(t, over.Duration, ate.Duration)

	_, ok = ToneFor(game.Event{Type: game.EventType(99)})
	assert.False(t, ok)
}

func TestSilentCuesIgnoreEvents(t *testing.T) {
	var c Cues
	assert.NotPanics(t, func() {
		c.Observe(game.Event{Type: game.EventAte})
		c.Close()
	})

	var nilCues *Cues
	assert.NotPanics(t, func() {
		nilCues.Observe(game.Event{Type: game.EventGameOver})
		nilCues.Close()
	})
}
