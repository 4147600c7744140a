package ai

import (
	"math"

	"gridsnake/game/types"

	"golang.org/x/exp/rand"
)

// State is what the agent sees of the board around the head
type State struct {
	RelativeFoodDir [2]int  // sign of food offset from head (x, y)
	DangerDirs      [4]bool // indexed by types.Direction
	Heading         types.Direction
}

// QTable maps a state to the value of each direction
type QTable map[State][4]float64

type QLearning struct {
	QTable       QTable
	LearningRate float64
	Discount     float64
	Epsilon      float64
	TotalReward  float64
	GamesPlayed  int

	rng *rand.Rand
}

func NewQLearning(rng *rand.Rand) *QLearning {
	return &QLearning{
		QTable:       make(QTable),
		LearningRate: 0.1,
		Discount:     0.9,
		Epsilon:      0.1,
		rng:          rng,
	}
}

// GetAction picks among candidates: a random one with probability Epsilon,
// otherwise the one with the highest value. Ties keep the earlier candidate.
func (q *QLearning) GetAction(state State, candidates []types.Direction) types.Direction {
	if len(candidates) == 0 {
		return state.Heading
	}
	if q.Epsilon > 0 && q.rng.Float64() < q.Epsilon {
		return candidates[q.rng.Intn(len(candidates))]
	}
	return q.getBestAction(state, candidates)
}

func (q *QLearning) getBestAction(state State, candidates []types.Direction) types.Direction {
	values := q.QTable[state]
	best := candidates[0]
	bestValue := math.Inf(-1)
	for _, d := range candidates {
		if values[d] > bestValue {
			bestValue = values[d]
			best = d
		}
	}
	return best
}

// Value is the learned value of taking action in state
func (q *QLearning) Value(state State, action types.Direction) float64 {
	return q.QTable[state][action]
}

// Update applies one Q-learning step. A nil next marks a terminal
// transition with no future value.
func (q *QLearning) Update(state State, action types.Direction, reward float64, next *State) {
	future := 0.0
	if next != nil {
		future = math.Inf(-1)
		for _, v := range q.QTable[*next] {
			future = math.Max(future, v)
		}
	}

	values := q.QTable[state]
	current := values[action]
	values[action] = current + q.LearningRate*(reward+q.Discount*future-current)
	q.QTable[state] = values
	q.TotalReward += reward
}
