package config

import (
	"io"
	"os"
	"time"

	"gridsnake/game/types"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// ErrInvalid marks a configuration that cannot host a game
var ErrInvalid = errors.New("invalid config")

// Minimum board that fits the spawn layout plus a first step
const (
	MinGridWidth  = types.InitialLength + 1
	MinGridHeight = 1
)

// Colors used by the per-frame draw sequence
type Colors struct {
	Background types.Color `yaml:"background"`
	Border     types.Color `yaml:"border"`
	Head       types.Color `yaml:"head"`
	Body       types.Color `yaml:"body"`
	Food       types.Color `yaml:"food"`
	Text       types.Color `yaml:"text"`
	GameOver   types.Color `yaml:"game_over"`
}

// Config holds everything a game instance needs at construction
type Config struct {
	CellSize      int           `yaml:"cell_size"`
	GridWidth     int           `yaml:"grid_width"`
	GridHeight    int           `yaml:"grid_height"`
	TickInterval  time.Duration `yaml:"tick_interval"`
	MaxFrameDelta time.Duration `yaml:"max_frame_delta"`
	// Seed for food placement; 0 picks one from the clock
	Seed   uint64 `yaml:"seed"`
	Colors Colors `yaml:"colors"`
}

func Default() Config {
	return Config{
		CellSize:      20,
		GridWidth:     20,
		GridHeight:    15,
		TickInterval:  200 * time.Millisecond,
		MaxFrameDelta: 100 * time.Millisecond,
		Colors: Colors{
			Background: types.RGB(0x1a, 0x1a, 0x2e),
			Border:     types.RGB(0x44, 0x44, 0x55),
			Head:       types.RGB(0x4c, 0xaf, 0x50),
			Body:       types.RGB(0x8b, 0xc3, 0x4a),
			Food:       types.RGB(0xf4, 0x43, 0x36),
			Text:       types.RGB(0xff, 0xff, 0xff),
			GameOver:   types.RGB(0xff, 0x52, 0x52),
		},
	}
}

// Load reads a YAML file over the defaults. Unknown keys are rejected.
func Load(path string) (Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return Config{}, errors.Wrap(err, "open config")
	}
	defer f.Close()
	return Decode(f)
}

// Decode reads YAML from r over the defaults
func Decode(r io.Reader) (Config, error) {
	cfg := Default()
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, errors.Wrap(err, "decode config")
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	switch {
	case c.CellSize <= 0:
		return errors.Wrapf(ErrInvalid, "cell_size %d must be positive", c.CellSize)
	case c.GridWidth < MinGridWidth:
		return errors.Wrapf(ErrInvalid, "grid_width %d is below %d", c.GridWidth, MinGridWidth)
	case c.GridHeight < MinGridHeight:
		return errors.Wrapf(ErrInvalid, "grid_height %d is below %d", c.GridHeight, MinGridHeight)
	case c.TickInterval <= 0:
		return errors.Wrapf(ErrInvalid, "tick_interval %s must be positive", c.TickInterval)
	case c.MaxFrameDelta <= 0:
		return errors.Wrapf(ErrInvalid, "max_frame_delta %s must be positive", c.MaxFrameDelta)
	}
	return nil
}

func (c Config) Grid() types.Grid {
	return types.Grid{Width: c.GridWidth, Height: c.GridHeight}
}

// Spawn is where a fresh snake's head starts
func (c Config) Spawn() types.Point {
	return types.Point{X: c.GridWidth / 2, Y: c.GridHeight / 3}
}

// BoardSize is the board's size in pixels
func (c Config) BoardSize() (width, height int) {
	return c.GridWidth * c.CellSize, c.GridHeight * c.CellSize
}
