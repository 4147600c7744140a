package entity

import (
	"gridsnake/game/types"

	"golang.org/x/exp/slices"
)

// Snake is the player's creature. The body is stored head first.
// Mutation only happens through Move, Eat, SetDirection and Reset.
type Snake struct {
	body          []types.Point
	direction     types.Direction
	pendingGrowth int
}

// NewSnake spawns a snake with its head at start and the rest of the
// body trailing behind it along the initial direction
func NewSnake(start types.Point) *Snake {
	s := &Snake{}
	s.Reset(start)
	return s
}

// Reset restores the spawn layout at start
func (s *Snake) Reset(start types.Point) {
	back := types.InitialDirection.Opposite().Vector()
	body := make([]types.Point, 0, types.InitialLength)
	p := start
	for i := 0; i < types.InitialLength; i++ {
		body = append(body, p)
		p = p.Add(back)
	}
	s.body = body
	s.direction = types.InitialDirection
	s.pendingGrowth = 0
}

// Body returns a copy of the segments, head first
func (s *Snake) Body() []types.Point {
	return slices.Clone(s.body)
}

func (s *Snake) GetHead() types.Point {
	return s.body[0]
}

func (s *Snake) GetTail() types.Point {
	return s.body[len(s.body)-1]
}

func (s *Snake) Len() int {
	return len(s.body)
}

func (s *Snake) Direction() types.Direction {
	return s.direction
}

func (s *Snake) PendingGrowth() int {
	return s.pendingGrowth
}

// Growing reports whether the next move keeps the tail in place
func (s *Snake) Growing() bool {
	return s.pendingGrowth > 0
}

// SetDirection changes the heading unless dir is the reverse of the
// current one. It reports whether the change was applied.
func (s *Snake) SetDirection(dir types.Direction) bool {
	if !dir.Valid() || dir == s.direction.Opposite() {
		return false
	}
	s.direction = dir
	return true
}

// NextHead is where the head lands on the next move
func (s *Snake) NextHead() types.Point {
	return s.GetHead().Add(s.direction.Vector())
}

// Move advances one cell. It does not validate the destination; callers
// check collisions first.
func (s *Snake) Move() {
	s.body = slices.Insert(s.body, 0, s.NextHead())
	if s.pendingGrowth > 0 {
		s.pendingGrowth--
		return
	}
	s.body = s.body[:len(s.body)-1]
}

// Eat queues one segment of growth for the next move
func (s *Snake) Eat() {
	s.pendingGrowth++
}

// Blocks reports whether p is still covered by the body after the next
// move: every segment but the head, and the tail only while growing.
func (s *Snake) Blocks(p types.Point) bool {
	last := len(s.body)
	if s.pendingGrowth == 0 {
		last--
	}
	for i := 1; i < last; i++ {
		if s.body[i] == p {
			return true
		}
	}
	return false
}

// CheckSelfCollision reports whether the next move runs into the body
func (s *Snake) CheckSelfCollision() bool {
	return s.Blocks(s.NextHead())
}

// CheckBoundaryCollision reports whether the next move leaves a
// width x height board
func (s *Snake) CheckBoundaryCollision(width, height int) bool {
	return !types.Grid{Width: width, Height: height}.Contains(s.NextHead())
}

// ContainsPosition reports whether any segment occupies (x, y)
func (s *Snake) ContainsPosition(x, y int) bool {
	return s.Contains(types.Point{X: x, Y: y})
}

func (s *Snake) Contains(p types.Point) bool {
	return slices.Contains(s.body, p)
}
