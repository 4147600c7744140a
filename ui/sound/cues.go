// Package sound plays short sine tones for game events
package sound

import (
	"time"

	"gridsnake/game"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

const sampleRate = beep.SampleRate(44100)

// Tone is a single beep
type Tone struct {
	Freq     float64
	Duration time.Duration
}

// ToneFor picks the cue for an event
func ToneFor(ev game.Event) (Tone, bool) {
	switch ev.Type {
	case game.EventAte:
		return Tone{Freq: 880, Duration: 50 * time.Millisecond}, true
	case game.EventGameOver:
		return Tone{Freq: 220, Duration: 300 * time.Millisecond}, true
	case game.EventReset:
		return Tone{Freq: 660, Duration: 40 * time.Millisecond}, true
	}
	return Tone{}, false
}

// Cues plays a tone per game event. The zero value is silent.
type Cues struct {
	enabled bool
	logger  *zap.SugaredLogger
}

// NewCues opens the audio device. On failure the returned Cues is silent
// and the error says why.
func NewCues(logger *zap.Logger) (*Cues, error) {
	c := &Cues{logger: zap.NewNop().Sugar()}
	if logger != nil {
		c.logger = logger.Named("sound").Sugar()
	}
	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/10)); err != nil {
		return c, errors.Wrap(err, "init speaker")
	}
	c.enabled = true
	return c, nil
}

// Observe is registered as a game event handler
func (c *Cues) Observe(ev game.Event) {
	if c == nil || !c.enabled {
		return
	}
	tone, ok := ToneFor(ev)
	if !ok {
		return
	}
	sine, err := generators.SineTone(sampleRate, tone.Freq)
	if err != nil {
		c.logger.Warnw("tone", "freq", tone.Freq, "error", err)
		return
	}
	speaker.Play(beep.Take(sampleRate.N(tone.Duration), sine))
}

func (c *Cues) Close() {
	if c == nil || !c.enabled {
		return
	}
	speaker.Close()
	c.enabled = false
}
