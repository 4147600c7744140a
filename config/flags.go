package config

import (
	"flag"
	"time"
)

// Flags are command-line overrides applied on top of a config file
type Flags struct {
	Path   string
	Width  int
	Height int
	Cell   int
	Tick   time.Duration
	Seed   uint64
}

// RegisterFlags binds the shared frontend flags to fs
func RegisterFlags(fs *flag.FlagSet) *Flags {
	f := &Flags{}
	fs.StringVar(&f.Path, "config", "", "YAML config file")
	fs.IntVar(&f.Width, "width", 0, "Grid width in cells")
	fs.IntVar(&f.Height, "height", 0, "Grid height in cells")
	fs.IntVar(&f.Cell, "cell", 0, "Cell size in pixels")
	fs.DurationVar(&f.Tick, "tick", 0, "Time between moves (e.g. 150ms)")
	fs.Uint64Var(&f.Seed, "seed", 0, "Food placement seed, 0 for random")
	return f
}

// Resolve loads the config file, if any, and applies the set flags
func (f *Flags) Resolve() (Config, error) {
	cfg := Default()
	if f.Path != "" {
		loaded, err := Load(f.Path)
		if err != nil {
			return Config{}, err
		}
		cfg = loaded
	}
	if f.Width != 0 {
		cfg.GridWidth = f.Width
	}
	if f.Height != 0 {
		cfg.GridHeight = f.Height
	}
	if f.Cell != 0 {
		cfg.CellSize = f.Cell
	}
	if f.Tick != 0 {
		cfg.TickInterval = f.Tick
	}
	if f.Seed != 0 {
		cfg.Seed = f.Seed
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
