package game

import (
	"fmt"
	"time"

	"gridsnake/config"
	"gridsnake/game/entity"
	"gridsnake/game/loop"
	"gridsnake/game/manager"
	"gridsnake/game/types"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/zap"
	"golang.org/x/exp/rand"
)

var (
	// ErrNoRenderer aborts construction when there is nothing to draw on
	ErrNoRenderer = errors.New("renderer unavailable")
	// ErrNoScheduler aborts construction when there is no frame driver
	ErrNoScheduler = errors.New("frame scheduler unavailable")
)

// Pilot steers the snake on behalf of a player. It is consulted at the start
// of every tick and may only suggest a direction.
type Pilot interface {
	Steer(s Snapshot) (types.Direction, bool)
}

// Game composes the snake, the food and the frame loop. All state changes
// happen inside the tick; input only records a pending direction.
type Game struct {
	id       string
	cfg      config.Config
	grid     types.Grid
	renderer Renderer
	loop     *loop.Loop
	clock    loop.TimeProvider
	rng      *rand.Rand
	logger   *zap.SugaredLogger

	snake        *entity.Snake
	food         *entity.Food
	collisionMgr *manager.CollisionManager
	stats        *manager.StatsManager
	pilot        Pilot

	handlers []func(Event)
	queued   []Event

	pendingDirection types.Direction
	hasPending       bool
	gameOver         bool
	reason           types.CollisionType
	elapsed          time.Duration
	ticks            int
	runID            string
	runStart         time.Time
}

type Option func(*Game)

func WithLogger(logger *zap.Logger) Option {
	return func(g *Game) {
		if logger != nil {
			g.logger = logger.Named("game").With(zap.String("game", g.id)).Sugar()
		}
	}
}

// WithRand fixes the source used for food placement
func WithRand(rng *rand.Rand) Option {
	return func(g *Game) { g.rng = rng }
}

// WithClock sets the clock for the frame loop and run timestamps
func WithClock(clock loop.TimeProvider) Option {
	return func(g *Game) { g.clock = clock }
}

// WithEventHandler observes game events. Handlers run after the tick that
// produced the event and must not mutate the game.
func WithEventHandler(fn func(Event)) Option {
	return func(g *Game) {
		if fn != nil {
			g.handlers = append(g.handlers, fn)
		}
	}
}

// WithPilot lets an agent steer instead of, or alongside, the keyboard
func WithPilot(p Pilot) Option {
	return func(g *Game) { g.pilot = p }
}

// NewGame validates cfg and builds a stopped game drawing on renderer and
// driven by sched
func NewGame(cfg config.Config, renderer Renderer, sched loop.Scheduler, opts ...Option) (*Game, error) {
	if renderer == nil {
		return nil, ErrNoRenderer
	}
	if sched == nil {
		return nil, ErrNoScheduler
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	g := &Game{
		id:       uuid.NewString(),
		cfg:      cfg,
		grid:     cfg.Grid(),
		renderer: renderer,
		clock:    loop.SystemClock{},
		logger:   zap.NewNop().Sugar(),
		stats:    manager.NewStatsManager(),
	}
	for _, opt := range opts {
		opt(g)
	}
	if g.rng == nil {
		seed := cfg.Seed
		if seed == 0 {
			seed = uint64(time.Now().UnixNano())
		}
		g.rng = rand.New(rand.NewSource(seed))
	}

	g.collisionMgr = manager.NewCollisionManager(g.grid)
	spawn := cfg.Spawn()
	if !g.collisionMgr.ValidateSpawnPosition(spawn) {
		return nil, errors.Wrapf(config.ErrInvalid, "spawn %s does not fit a %dx%d grid", spawn, g.grid.Width, g.grid.Height)
	}
	g.snake = entity.NewSnake(spawn)
	food, err := entity.SpawnFood(g.grid, g.snake.Body(), g.rng)
	if err != nil {
		return nil, errors.Wrap(err, "place food")
	}
	g.food = food

	g.loop = loop.NewLoop(sched,
		loop.WithClock(g.clock),
		loop.WithMaxDelta(cfg.MaxFrameDelta),
		loop.WithLogger(g.logger.Desugar()),
	)
	g.loop.OnUpdate(g.Update)
	g.loop.OnRender(g.Render)

	g.runID = manager.NewRunID()
	g.runStart = g.clock.Now()
	g.logger.Infow("game created",
		"grid", fmt.Sprintf("%dx%d", g.grid.Width, g.grid.Height),
		"tick", cfg.TickInterval,
		"spawn", spawn.String(),
	)
	return g, nil
}

func (g *Game) ID() string {
	return g.id
}

func (g *Game) Config() config.Config {
	return g.cfg
}

// Stats exposes session scores
func (g *Game) Stats() *manager.StatsManager {
	return g.stats
}

func (g *Game) Start() {
	g.loop.Start()
	g.logger.Info("game started")
}

// Stop halts the frame loop. A later Start resumes the same run.
func (g *Game) Stop() {
	g.loop.Stop()
}

func (g *Game) Pause() {
	g.loop.Pause()
}

func (g *Game) Resume() {
	g.loop.Resume()
}

func (g *Game) TogglePause() {
	if g.loop.Paused() {
		g.Resume()
		return
	}
	g.Pause()
}

func (g *Game) Paused() bool {
	return g.loop.Paused()
}

func (g *Game) Running() bool {
	return g.loop.Running()
}

func (g *Game) IsGameOver() bool {
	return g.gameOver
}

// Score counts food eaten this run, including growth not yet applied
func (g *Game) Score() int {
	return g.snake.Len() + g.snake.PendingGrowth() - types.InitialLength
}

// QueueDirection records d for the next tick, replacing any earlier
// unapplied request. Ignored once the run is over.
func (g *Game) QueueDirection(d types.Direction) {
	if g.gameOver || !d.Valid() {
		return
	}
	g.pendingDirection = d
	g.hasPending = true
}

// Update accumulates frame time and ticks once the interval has elapsed
func (g *Game) Update(dt time.Duration) {
	if g.gameOver {
		return
	}
	g.elapsed += dt
	if g.elapsed < g.cfg.TickInterval {
		return
	}
	g.step()
	g.elapsed = 0
}

func (g *Game) step() {
	g.tick()
	g.dispatch()
}

func (g *Game) tick() {
	if g.gameOver {
		return
	}
	if g.pilot != nil {
		if d, ok := g.pilot.Steer(g.Snapshot()); ok {
			g.QueueDirection(d)
		}
	}
	g.applyPendingDirection()

	if reason := g.collisionMgr.CheckMove(g.snake); reason != types.NoCollision {
		g.endRun(reason)
		return
	}

	g.snake.Move()
	g.ticks++

	if g.collisionMgr.IsFoodCollision(g.snake.GetHead(), g.food) {
		g.snake.Eat()
		if err := g.food.Respawn(g.grid.Width, g.grid.Height, g.snake.Body()); err != nil {
			g.logger.Warnw("food respawn", "error", err, "length", g.snake.Len())
		}
		g.logger.Debugw("food eaten", "head", g.snake.GetHead().String(), "next", g.food.Position().String())
		g.queued = append(g.queued, Event{
			Type:   EventAte,
			Head:   g.snake.GetHead(),
			Length: g.snake.Len(),
			Score:  g.Score(),
		})
	}
}

// applyPendingDirection turns the snake unless that would run it straight
// into a wall or into body that stays put this tick
func (g *Game) applyPendingDirection() {
	if !g.hasPending {
		return
	}
	next := g.pendingDirection
	g.hasPending = false

	previous := g.snake.Direction()
	if !g.snake.SetDirection(next) {
		g.logger.Debugw("reversal ignored", "heading", previous.String(), "requested", next.String())
		return
	}
	if g.collisionMgr.CheckMove(g.snake) != types.NoCollision {
		g.snake.SetDirection(previous)
		g.logger.Debugw("unsafe turn reverted", "heading", previous.String(), "requested", next.String())
	}
}

func (g *Game) endRun(reason types.CollisionType) {
	g.gameOver = true
	g.reason = reason
	g.hasPending = false
	g.stats.AddRun(manager.RunRecord{
		ID:        g.runID,
		Score:     g.Score(),
		Length:    g.snake.Len(),
		Reason:    reason,
		StartTime: g.runStart,
		EndTime:   g.clock.Now(),
	})
	g.logger.Infow("game over",
		"reason", reason.String(),
		"length", g.snake.Len(),
		"score", g.Score(),
		"ticks", g.ticks,
	)
	g.queued = append(g.queued, Event{
		Type:   EventGameOver,
		Head:   g.snake.GetHead(),
		Length: g.snake.Len(),
		Score:  g.Score(),
		Reason: reason,
	})
}

// Reset starts a new run with a fresh snake and food
func (g *Game) Reset() {
	g.snake.Reset(g.cfg.Spawn())
	if err := g.food.Respawn(g.grid.Width, g.grid.Height, g.snake.Body()); err != nil {
		g.logger.Warnw("food respawn", "error", err)
	}
	g.gameOver = false
	g.reason = types.NoCollision
	g.hasPending = false
	g.elapsed = 0
	g.ticks = 0
	g.runID = manager.NewRunID()
	g.runStart = g.clock.Now()
	g.logger.Infow("game reset", "run", g.runID)
	g.queued = append(g.queued, Event{Type: EventReset, Head: g.snake.GetHead(), Length: g.snake.Len()})
	g.dispatch()
}

// Status is the one-line summary drawn under the board
func (g *Game) Status() string {
	var s string
	switch {
	case g.gameOver:
		s = fmt.Sprintf("Game Over! Score: %d - press R to restart", g.Score())
	case g.loop.Paused():
		s = fmt.Sprintf("Paused - Score: %d", g.Score())
	default:
		s = fmt.Sprintf("Score: %d", g.Score())
	}
	if best := g.stats.GetHighScore(); best > 0 {
		s += fmt.Sprintf("  Best: %d", best)
	}
	return s
}

// Snapshot is a read-only copy of the current state
type Snapshot struct {
	ID        string
	RunID     string
	Grid      types.Grid
	Body      []types.Point
	Direction types.Direction
	Growing   bool
	Food      types.Point
	GameOver  bool
	Reason    types.CollisionType
	Paused    bool
	Score     int
	HighScore int
	Ticks     int
}

func (g *Game) Snapshot() Snapshot {
	return Snapshot{
		ID:        g.id,
		RunID:     g.runID,
		Grid:      g.grid,
		Body:      g.snake.Body(),
		Direction: g.snake.Direction(),
		Growing:   g.snake.Growing(),
		Food:      g.food.Position(),
		GameOver:  g.gameOver,
		Reason:    g.reason,
		Paused:    g.loop.Paused(),
		Score:     g.Score(),
		HighScore: g.stats.GetHighScore(),
		Ticks:     g.ticks,
	}
}

// Head is the first segment of the snapshot's body
func (s Snapshot) Head() types.Point {
	return s.Body[0]
}
