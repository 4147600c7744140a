package loop

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recorder struct {
	deltas  []time.Duration
	renders int
}

func newTestLoop(t *testing.T) (*Loop, *FrameQueue, *ManualClock, *recorder) {
	t.Helper()
	q := NewFrameQueue()
	clock := NewManualClock(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC))
	l := NewLoop(q, WithClock(clock))
	rec := &recorder{}
	l.OnUpdate(func(dt time.Duration) { rec.deltas = append(rec.deltas, dt) })
	l.OnRender(func() { rec.renders++ })
	return l, q, clock, rec
}

func TestLoopStartRunsFramesWithDelta(t *testing.T) {
	l, q, clock, rec := newTestLoop(t)
	l.Start()
	require.Equal(t, 1, q.Pending())

	q.Flush(clock.Advance(16 * time.Millisecond))
	q.Flush(clock.Advance(17 * time.Millisecond))

	assert.Equal(t, []time.Duration{16 * time.Millisecond, 17 * time.Millisecond}, rec.deltas)
	assert.Equal(t, 2, rec.renders)
	assert.Equal(t, 1, q.Pending(), "each frame schedules exactly one successor")
}

func TestLoopStartIsIdempotent(t *testing.T) {
	l, q, _, _ := newTestLoop(t)
	l.Start()
	l.Start()
	assert.Equal(t, 1, q.Pending())
	assert.True(t, l.Running())
}

func TestLoopClampsLargeDelta(t *testing.T) {
	l, q, clock, rec := newTestLoop(t)
	l.Start()
	q.Flush(clock.Advance(5 * time.Second))

	require.Len(t, rec.deltas, 1)
	assert.Equal(t, DefaultMaxDelta, rec.deltas[0])
}

func TestLoopCustomMaxDelta(t *testing.T) {
	q := NewFrameQueue()
	clock := NewManualClock(time.Unix(0, 0))
	l := NewLoop(q, WithClock(clock), WithMaxDelta(40*time.Millisecond))
	var got time.Duration
	l.OnUpdate(func(dt time.Duration) { got = dt })
	l.Start()
	q.Flush(clock.Advance(time.Second))
	assert.Equal(t, 40*time.Millisecond, got)
}

func TestLoopPauseSkipsCallbacks(t *testing.T) {
	l, q, clock, rec := newTestLoop(t)
	l.Start()
	q.Flush(clock.Advance(10 * time.Millisecond))

	l.Pause()
	assert.True(t, l.Paused())
	assert.True(t, l.Running(), "a paused loop is still running")
	q.Flush(clock.Advance(10 * time.Millisecond))
	q.Flush(clock.Advance(10 * time.Millisecond))
	assert.Len(t, rec.deltas, 1)
	assert.Equal(t, 1, rec.renders)
	assert.Equal(t, 1, q.Pending(), "frames keep coming while paused")
}

func TestLoopResumeRebasesClock(t *testing.T) {
	l, q, clock, rec := newTestLoop(t)
	l.Start()
	l.Pause()
	clock.Advance(30 * time.Second)
	l.Resume()

	q.Flush(clock.Advance(20 * time.Millisecond))
	require.Len(t, rec.deltas, 1)
	assert.Equal(t, 20*time.Millisecond, rec.deltas[0])
}

func TestLoopStopCancelsPendingFrame(t *testing.T) {
	l, q, clock, rec := newTestLoop(t)
	l.Start()
	l.Stop()
	assert.False(t, l.Running())
	assert.Equal(t, 0, q.Pending())

	q.Flush(clock.Advance(16 * time.Millisecond))
	assert.Empty(t, rec.deltas)

	l.Stop()
	assert.Equal(t, 0, q.Pending())
}

func TestLoopStopBeforeStart(t *testing.T) {
	l, q, _, _ := newTestLoop(t)
	l.Stop()
	l.Stop()
	assert.False(t, l.Running())
	assert.Equal(t, 0, q.Pending())

	l.Start()
	assert.Equal(t, 1, q.Pending())
}

func TestLoopStopFromCallback(t *testing.T) {
	l, q, clock, _ := newTestLoop(t)
	l.OnUpdate(func(time.Duration) { l.Stop() })
	l.Start()
	q.Flush(clock.Advance(16 * time.Millisecond))

	assert.False(t, l.Running())
	assert.Equal(t, 0, q.Pending())
}

func TestLoopRestartFromCallbackKeepsSingleChain(t *testing.T) {
	l, q, clock, _ := newTestLoop(t)
	restarted := false
	l.OnUpdate(func(time.Duration) {
		if !restarted {
			restarted = true
			l.Stop()
			l.Start()
		}
	})
	l.Start()
	q.Flush(clock.Advance(16 * time.Millisecond))
	assert.Equal(t, 1, q.Pending())
}

func TestLoopToleratesMissingCallbacks(t *testing.T) {
	q := NewFrameQueue()
	clock := NewManualClock(time.Unix(0, 0))
	l := NewLoop(q, WithClock(clock))
	l.Start()
	assert.NotPanics(t, func() {
		q.Flush(clock.Advance(16 * time.Millisecond))
	})
	assert.Equal(t, 1, q.Pending())
}

func TestFrameQueueDefersFramesRequestedDuringFlush(t *testing.T) {
	q := NewFrameQueue()
	calls := 0
	var again FrameFunc
	again = func(time.Time) {
		calls++
		q.RequestFrame(again)
	}
	q.RequestFrame(again)

	assert.Equal(t, 1, q.Flush(time.Now()))
	assert.Equal(t, 1, calls)
	assert.Equal(t, 1, q.Pending())
}

func TestFrameQueueCancel(t *testing.T) {
	q := NewFrameQueue()
	ran := map[string]bool{}
	a := q.RequestFrame(func(time.Time) { ran["a"] = true })
	q.RequestFrame(func(time.Time) { ran["b"] = true })
	q.CancelFrame(a)
	q.CancelFrame(FrameID(999))

	assert.Equal(t, 1, q.Flush(time.Now()))
	assert.Equal(t, map[string]bool{"b": true}, ran)
}
