package entity

import (
	"time"

	"gridsnake/game/types"

	"github.com/pkg/errors"
	"golang.org/x/exp/rand"
	"golang.org/x/exp/slices"
)

// ErrBoardFull is returned when every cell is covered by the snake
var ErrBoardFull = errors.New("no free cell left for food")

// Food is the single item on the board
type Food struct {
	position types.Point
	rng      *rand.Rand
}

// NewFood places food at pos. A nil rng falls back to a time-seeded source.
func NewFood(pos types.Point, rng *rand.Rand) *Food {
	if rng == nil {
		rng = rand.New(rand.NewSource(uint64(time.Now().UnixNano())))
	}
	return &Food{position: pos, rng: rng}
}

// SpawnFood creates food at a random cell that the snake does not cover
func SpawnFood(grid types.Grid, body []types.Point, rng *rand.Rand) (*Food, error) {
	f := NewFood(types.Point{}, rng)
	err := f.GenerateRandomPositionAvoidingSnake(grid.Width, grid.Height, body)
	return f, err
}

func (f *Food) Position() types.Point {
	return f.position
}

// GenerateRandomPosition moves the food to a uniformly sampled cell in
// [0,width) x [0,height), ignoring the snake
func (f *Food) GenerateRandomPosition(width, height int) types.Point {
	f.position = types.Point{
		X: f.rng.Intn(width),
		Y: f.rng.Intn(height),
	}
	return f.position
}

// IsValidPosition reports whether the food is off the given body
func (f *Food) IsValidPosition(body []types.Point) bool {
	return !slices.Contains(body, f.position)
}

// GenerateRandomPositionAvoidingSnake resamples until the food is off the
// body. After width*height misses it picks uniformly among the free cells
// instead. ErrBoardFull means there were none and the food stays where the
// last sample put it.
func (f *Food) GenerateRandomPositionAvoidingSnake(width, height int, body []types.Point) error {
	for attempt := 0; attempt < width*height; attempt++ {
		f.GenerateRandomPosition(width, height)
		if f.IsValidPosition(body) {
			return nil
		}
	}

	free := freeCells(types.Grid{Width: width, Height: height}, body)
	if len(free) == 0 {
		return ErrBoardFull
	}
	f.position = free[f.rng.Intn(len(free))]
	return nil
}

// IsConsumedBy reports whether the snake's head sits on the food
func (f *Food) IsConsumedBy(s *Snake) bool {
	return f.position == s.GetHead()
}

// Respawn relocates eaten food
func (f *Food) Respawn(width, height int, body []types.Point) error {
	return f.GenerateRandomPositionAvoidingSnake(width, height, body)
}

func freeCells(grid types.Grid, body []types.Point) []types.Point {
	taken := make(map[types.Point]struct{}, len(body))
	for _, p := range body {
		taken[p] = struct{}{}
	}
	var free []types.Point
	for y := 0; y < grid.Height; y++ {
		for x := 0; x < grid.Width; x++ {
			p := types.Point{X: x, Y: y}
			if _, ok := taken[p]; !ok {
				free = append(free, p)
			}
		}
	}
	return free
}
