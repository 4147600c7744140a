package loop

import (
	"time"

	"go.uber.org/zap"
)

// DefaultMaxDelta caps the simulated time of a single frame so a stalled
// display (backgrounded window, debugger) does not produce a large jump
const DefaultMaxDelta = 100 * time.Millisecond

// Loop drives an update and a render callback once per display frame.
// The update callback receives the clamped time since the previous frame;
// fixed-rate simulation is the callback's business.
type Loop struct {
	sched    Scheduler
	clock    TimeProvider
	maxDelta time.Duration
	logger   *zap.Logger

	update func(dt time.Duration)
	render func()

	running  bool
	paused   bool
	last     time.Time
	frame    FrameID
	hasFrame bool
}

type Option func(*Loop)

func WithClock(clock TimeProvider) Option {
	return func(l *Loop) { l.clock = clock }
}

// WithMaxDelta overrides DefaultMaxDelta; non-positive values are ignored
func WithMaxDelta(d time.Duration) Option {
	return func(l *Loop) {
		if d > 0 {
			l.maxDelta = d
		}
	}
}

func WithLogger(logger *zap.Logger) Option {
	return func(l *Loop) { l.logger = logger }
}

// NewLoop creates a stopped loop on sched
func NewLoop(sched Scheduler, opts ...Option) *Loop {
	l := &Loop{
		sched:    sched,
		clock:    SystemClock{},
		maxDelta: DefaultMaxDelta,
		logger:   zap.NewNop(),
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// OnUpdate registers the simulation callback. A nil callback is skipped.
func (l *Loop) OnUpdate(fn func(dt time.Duration)) {
	l.update = fn
}

// OnRender registers the draw callback. A nil callback is skipped.
func (l *Loop) OnRender(fn func()) {
	l.render = fn
}

// Start begins the frame chain. Calling it on a running loop does nothing.
func (l *Loop) Start() {
	if l.running {
		return
	}
	l.running = true
	l.paused = false
	l.last = l.clock.Now()
	l.schedule()
	l.logger.Debug("loop started")
}

// Stop cancels the pending frame. Safe to call at any time, repeatedly.
func (l *Loop) Stop() {
	if l.hasFrame {
		l.sched.CancelFrame(l.frame)
		l.hasFrame = false
	}
	if l.running {
		l.running = false
		l.logger.Debug("loop stopped")
	}
}

// Pause keeps frames coming but skips both callbacks
func (l *Loop) Pause() {
	if !l.running || l.paused {
		return
	}
	l.paused = true
	l.logger.Debug("loop paused")
}

// Resume re-bases the frame clock so the pause is not simulated
func (l *Loop) Resume() {
	if !l.paused {
		return
	}
	l.paused = false
	l.last = l.clock.Now()
	l.logger.Debug("loop resumed")
}

func (l *Loop) Running() bool {
	return l.running
}

func (l *Loop) Paused() bool {
	return l.paused
}

func (l *Loop) schedule() {
	if !l.running || l.hasFrame {
		return
	}
	l.frame = l.sched.RequestFrame(l.onFrame)
	l.hasFrame = true
}

func (l *Loop) onFrame(now time.Time) {
	l.hasFrame = false
	if !l.running {
		return
	}

	dt := now.Sub(l.last)
	if dt < 0 {
		dt = 0
	}
	if dt > l.maxDelta {
		dt = l.maxDelta
	}
	l.last = now

	if !l.paused {
		if l.update != nil {
			l.update(dt)
		}
		if l.render != nil {
			l.render()
		}
	}

	l.schedule()
}
