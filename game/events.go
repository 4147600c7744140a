package game

import "gridsnake/game/types"

type EventType int

const (
	EventAte EventType = iota
	EventGameOver
	EventReset
)

func (t EventType) String() string {
	switch t {
	case EventAte:
		return "ate"
	case EventGameOver:
		return "game_over"
	case EventReset:
		return "reset"
	}
	return "unknown"
}

// Event describes something a tick (or a reset) did
type Event struct {
	Type   EventType
	Head   types.Point
	Length int
	Score  int
	// Reason is set for EventGameOver only
	Reason types.CollisionType
}

func (g *Game) dispatch() {
	if len(g.queued) == 0 {
		return
	}
	events := g.queued
	g.queued = nil
	for _, ev := range events {
		for _, fn := range g.handlers {
			fn(ev)
		}
	}
}
