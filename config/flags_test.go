package config

import (
	"flag"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func parse(t *testing.T, args ...string) *Flags {
	t.Helper()
	fs := flag.NewFlagSet("snake", flag.ContinueOnError)
	f := RegisterFlags(fs)
	require.NoError(t, fs.Parse(args))
	return f
}

func TestFlagsDefaults(t *testing.T) {
	cfg, err := parse(t).Resolve()
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestFlagsOverride(t *testing.T) {
	cfg, err := parse(t, "-width", "30", "-height", "12", "-cell", "16", "-tick", "90ms", "-seed", "5").Resolve()
	require.NoError(t, err)
	assert.Equal(t, 30, cfg.GridWidth)
	assert.Equal(t, 12, cfg.GridHeight)
	assert.Equal(t, 16, cfg.CellSize)
	assert.Equal(t, 90*time.Millisecond, cfg.TickInterval)
	assert.Equal(t, uint64(5), cfg.Seed)
}

func TestFlagsOverrideFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "snake.yaml")
	require.NoError(t, os.WriteFile(path, []byte("grid_width: 40\ngrid_height: 20\n"), 0o644))

	cfg, err := parse(t, "-config", path, "-height", "10").Resolve()
	require.NoError(t, err)
	assert.Equal(t, 40, cfg.GridWidth)
	assert.Equal(t, 10, cfg.GridHeight)
}

func TestFlagsInvalid(t *testing.T) {
	_, err := parse(t, "-width", "2").Resolve()
	assert.ErrorIs(t, err, ErrInvalid)

	_, err = parse(t, "-config", filepath.Join(t.TempDir(), "nope.yaml")).Resolve()
	assert.Error(t, err)
}
