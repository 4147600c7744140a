package types

import (
	"fmt"
	"strings"
)

// Point is a cell on the game grid
type Point struct {
	X, Y int
}

// Add returns p shifted by v
func (p Point) Add(v Point) Point {
	return Point{X: p.X + v.X, Y: p.Y + v.Y}
}

func (p Point) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

// Grid represents the game grid dimensions
type Grid struct {
	Width  int
	Height int
}

// Contains reports whether p lies inside [0,Width) x [0,Height)
func (g Grid) Contains(p Point) bool {
	return p.X >= 0 && p.X < g.Width && p.Y >= 0 && p.Y < g.Height
}

// Cells returns the number of cells on the grid
func (g Grid) Cells() int {
	return g.Width * g.Height
}

// Direction is a cardinal heading
type Direction int

const (
	Up Direction = iota
	Right
	Down
	Left
)

// Directions lists every heading in clockwise order
var Directions = [4]Direction{Up, Right, Down, Left}

// Vector returns the unit step for the direction. Y grows downwards.
func (d Direction) Vector() Point {
	switch d {
	case Up:
		return Point{X: 0, Y: -1}
	case Right:
		return Point{X: 1, Y: 0}
	case Down:
		return Point{X: 0, Y: 1}
	case Left:
		return Point{X: -1, Y: 0}
	}
	panic(fmt.Sprintf("types: invalid direction %d", int(d)))
}

// Opposite returns the reverse heading
func (d Direction) Opposite() Direction {
	switch d {
	case Up:
		return Down
	case Down:
		return Up
	case Left:
		return Right
	case Right:
		return Left
	}
	panic(fmt.Sprintf("types: invalid direction %d", int(d)))
}

// TurnLeft returns the heading after a 90 degree counter-clockwise turn
func (d Direction) TurnLeft() Direction {
	return Directions[(int(d)+3)%4]
}

// TurnRight returns the heading after a 90 degree clockwise turn
func (d Direction) TurnRight() Direction {
	return Directions[(int(d)+1)%4]
}

// Valid reports whether d is one of the four headings
func (d Direction) Valid() bool {
	return d >= Up && d <= Left
}

func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Right:
		return "right"
	case Down:
		return "down"
	case Left:
		return "left"
	}
	return fmt.Sprintf("Direction(%d)", int(d))
}

// ParseDirection converts a name such as "up" into a Direction
func ParseDirection(s string) (Direction, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "up":
		return Up, true
	case "right":
		return Right, true
	case "down":
		return Down, true
	case "left":
		return Left, true
	}
	return 0, false
}

// CollisionType represents the type of collision
type CollisionType int

const (
	NoCollision CollisionType = iota
	WallCollision
	SelfCollision
)

func (c CollisionType) String() string {
	switch c {
	case WallCollision:
		return "wall"
	case SelfCollision:
		return "self"
	default:
		return "none"
	}
}

// Spawn layout
const (
	InitialLength    = 3
	InitialDirection = Right
)
