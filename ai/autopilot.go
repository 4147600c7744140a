package ai

import (
	"gridsnake/game"
	"gridsnake/game/types"

	"go.uber.org/zap"
	"golang.org/x/exp/rand"
	"golang.org/x/exp/slices"
)

const (
	rewardFood    = 1.0
	rewardCloser  = 0.5
	rewardFarther = -0.3
	rewardDeath   = -1.0
)

// Autopilot steers a game with tabular Q-learning. It learns online from
// the snapshots it is shown each tick and from game-over events.
type Autopilot struct {
	learner *QLearning
	logger  *zap.SugaredLogger

	prev       *State
	prevAction types.Direction
	prevDist   int
	prevScore  int
	prevRun    string
}

type Option func(*Autopilot)

func WithLogger(logger *zap.Logger) Option {
	return func(a *Autopilot) {
		if logger != nil {
			a.logger = logger.Named("autopilot").Sugar()
		}
	}
}

// WithEpsilon sets the exploration rate
func WithEpsilon(epsilon float64) Option {
	return func(a *Autopilot) { a.learner.Epsilon = epsilon }
}

func NewAutopilot(rng *rand.Rand, opts ...Option) *Autopilot {
	a := &Autopilot{
		learner: NewQLearning(rng),
		logger:  zap.NewNop().Sugar(),
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

func (a *Autopilot) Learner() *QLearning {
	return a.learner
}

// Steer rewards the previous choice and picks the next direction
func (a *Autopilot) Steer(s game.Snapshot) (types.Direction, bool) {
	if len(s.Body) == 0 || s.GameOver {
		return s.Direction, false
	}
	state := Sense(s)
	dist := manhattan(s.Head(), s.Food)

	if a.prev != nil && a.prevRun == s.RunID {
		a.learner.Update(*a.prev, a.prevAction, a.reward(dist, s.Score), &state)
	}

	action := a.learner.GetAction(state, SafeDirections(s))
	a.prev = &state
	a.prevAction = action
	a.prevDist = dist
	a.prevScore = s.Score
	a.prevRun = s.RunID
	return action, true
}

// Observe is registered as a game event handler
func (a *Autopilot) Observe(ev game.Event) {
	switch ev.Type {
	case game.EventGameOver:
		if a.prev != nil {
			a.learner.Update(*a.prev, a.prevAction, rewardDeath, nil)
		}
		a.learner.GamesPlayed++
		a.logger.Debugw("episode finished",
			"games", a.learner.GamesPlayed,
			"score", ev.Score,
			"reason", ev.Reason.String(),
			"states", len(a.learner.QTable),
		)
		a.prev = nil
	case game.EventReset:
		a.prev = nil
	}
}

func (a *Autopilot) reward(dist, score int) float64 {
	switch {
	case score > a.prevScore:
		return rewardFood
	case dist < a.prevDist:
		return rewardCloser
	case dist > a.prevDist:
		return rewardFarther
	}
	return 0
}

// Sense reduces a snapshot to the agent's state
func Sense(s game.Snapshot) State {
	head := s.Head()
	state := State{
		RelativeFoodDir: [2]int{sign(s.Food.X - head.X), sign(s.Food.Y - head.Y)},
		Heading:         s.Direction,
	}
	for _, d := range types.Directions {
		state.DangerDirs[d] = blocked(s, head.Add(d.Vector()))
	}
	return state
}

// SafeDirections lists the directions whose next cell is free, nearest to
// the food first. The reverse of the heading is never included.
func SafeDirections(s game.Snapshot) []types.Direction {
	head := s.Head()
	var safe []types.Direction
	for _, d := range types.Directions {
		if d == s.Direction.Opposite() || blocked(s, head.Add(d.Vector())) {
			continue
		}
		safe = append(safe, d)
	}
	slices.SortStableFunc(safe, func(a, b types.Direction) int {
		return manhattan(head.Add(a.Vector()), s.Food) - manhattan(head.Add(b.Vector()), s.Food)
	})
	return safe
}

// blocked mirrors the move rule: walls, and body that is still there after
// the step (the tail moves away unless the snake is growing)
func blocked(s game.Snapshot, p types.Point) bool {
	if !s.Grid.Contains(p) {
		return true
	}
	last := len(s.Body)
	if !s.Growing {
		last--
	}
	for i := 1; i < last; i++ {
		if s.Body[i] == p {
			return true
		}
	}
	return false
}

func manhattan(a, b types.Point) int {
	return abs(a.X-b.X) + abs(a.Y-b.Y)
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

func sign(x int) int {
	switch {
	case x > 0:
		return 1
	case x < 0:
		return -1
	}
	return 0
}
