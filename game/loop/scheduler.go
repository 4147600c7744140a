package loop

import (
	"sync"
	"time"
)

// FrameFunc is invoked once per display frame with the frame timestamp
type FrameFunc func(now time.Time)

// FrameID identifies a requested frame so it can be cancelled
type FrameID uint64

// Scheduler is the per-frame driver the loop runs on, modelled on a
// display-synced "request next frame" primitive
type Scheduler interface {
	RequestFrame(fn FrameFunc) FrameID
	CancelFrame(id FrameID)
}

// TimeProvider supplies the clock frame timestamps are measured against
type TimeProvider interface {
	Now() time.Time
}

// SystemClock reads the wall clock
type SystemClock struct{}

func (SystemClock) Now() time.Time {
	return time.Now()
}

// ManualClock is a controllable clock for tests and replays
type ManualClock struct {
	mu  sync.RWMutex
	now time.Time
}

func NewManualClock(start time.Time) *ManualClock {
	return &ManualClock{now: start}
}

func (c *ManualClock) Now() time.Time {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.now
}

// Advance moves the clock forward and returns the new time
func (c *ManualClock) Advance(d time.Duration) time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
	return c.now
}

type pendingFrame struct {
	id FrameID
	fn FrameFunc
}

// FrameQueue is a Scheduler pumped by the owner of the display: each
// Flush runs the frames requested before it started. Frames requested
// while flushing wait for the next Flush. Not safe for concurrent use;
// the frontend's main goroutine owns it.
type FrameQueue struct {
	nextID  FrameID
	pending []pendingFrame
}

func NewFrameQueue() *FrameQueue {
	return &FrameQueue{}
}

func (q *FrameQueue) RequestFrame(fn FrameFunc) FrameID {
	q.nextID++
	q.pending = append(q.pending, pendingFrame{id: q.nextID, fn: fn})
	return q.nextID
}

func (q *FrameQueue) CancelFrame(id FrameID) {
	for i, f := range q.pending {
		if f.id == id {
			q.pending = append(q.pending[:i], q.pending[i+1:]...)
			return
		}
	}
}

// Flush runs due frames and reports how many ran
func (q *FrameQueue) Flush(now time.Time) int {
	due := q.pending
	q.pending = nil
	ran := 0
	for _, f := range due {
		if f.fn == nil {
			continue
		}
		f.fn(now)
		ran++
	}
	return ran
}

// Pending reports how many frames are waiting
func (q *FrameQueue) Pending() int {
	return len(q.pending)
}
