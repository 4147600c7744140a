package manager

import (
	"sort"
	"time"

	"gridsnake/game/types"

	"github.com/google/uuid"
	"go.uber.org/zap/zapcore"
)

// maxRuns bounds the kept history
const maxRuns = 200

// RunRecord describes one finished run
type RunRecord struct {
	ID        string
	Score     int
	Length    int
	Reason    types.CollisionType
	StartTime time.Time
	EndTime   time.Time
}

func (r RunRecord) Duration() time.Duration {
	return r.EndTime.Sub(r.StartTime)
}

// NewRunID returns an identifier for a new run
func NewRunID() string {
	return uuid.NewString()
}

// StatsManager keeps session scores in memory
type StatsManager struct {
	highScore   int
	gamesPlayed int
	runs        []RunRecord
}

func NewStatsManager() *StatsManager {
	return &StatsManager{
		runs: make([]RunRecord, 0),
	}
}

// AddRun records a finished run, keeping only the most recent maxRuns
func (sm *StatsManager) AddRun(run RunRecord) {
	if run.Score > sm.highScore {
		sm.highScore = run.Score
	}
	sm.gamesPlayed++
	if len(sm.runs) >= maxRuns {
		sm.runs = sm.runs[1:]
	}
	sm.runs = append(sm.runs, run)
}

func (sm *StatsManager) GetHighScore() int {
	return sm.highScore
}

func (sm *StatsManager) GamesPlayed() int {
	return sm.gamesPlayed
}

// GetScoreHistory returns kept scores, oldest first
func (sm *StatsManager) GetScoreHistory() []int {
	scores := make([]int, len(sm.runs))
	for i, r := range sm.runs {
		scores[i] = r.Score
	}
	return scores
}

// GetAverageScore averages the kept runs
func (sm *StatsManager) GetAverageScore() float64 {
	if len(sm.runs) == 0 {
		return 0
	}
	total := 0
	for _, r := range sm.runs {
		total += r.Score
	}
	return float64(total) / float64(len(sm.runs))
}

// GetMedianScore returns the median of the kept runs
func (sm *StatsManager) GetMedianScore() float64 {
	scores := sm.GetScoreHistory()
	if len(scores) == 0 {
		return 0
	}
	sort.Ints(scores)
	mid := len(scores) / 2
	if len(scores)%2 == 0 {
		return float64(scores[mid-1]+scores[mid]) / 2
	}
	return float64(scores[mid])
}

// Runs returns a copy of the kept records
func (sm *StatsManager) Runs() []RunRecord {
	out := make([]RunRecord, len(sm.runs))
	copy(out, sm.runs)
	return out
}

// MarshalLogObject summarises the session for zap.Object
func (sm *StatsManager) MarshalLogObject(enc zapcore.ObjectEncoder) error {
	enc.AddInt("games", sm.gamesPlayed)
	enc.AddInt("best", sm.highScore)
	enc.AddFloat64("average", sm.GetAverageScore())
	enc.AddFloat64("median", sm.GetMedianScore())
	return nil
}
