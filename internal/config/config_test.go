package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridstar/astar"
	"github.com/katalvlaran/gridstar/grid"
)

func TestDefault_IsValid(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, 20, cfg.Grid.Width)
	assert.Equal(t, 14, cfg.Grid.Height)
	assert.Equal(t, grid.S(2, 3), cfg.Search.Start.State())
	assert.Equal(t, grid.S(18, 12), cfg.Search.Goal.State())
}

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoad_FileOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), DefaultFile)
	data := []byte(`
grid:
  kind: uniform
  width: 5
  height: 4
search:
  start: {x: 0, y: 0}
  goal: {x: 4, y: 3}
render:
  interval: 250ms
`)
	require.NoError(t, os.WriteFile(path, data, 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "uniform", cfg.Grid.Kind)
	assert.Equal(t, 5, cfg.Grid.Width)
	assert.Equal(t, 250*time.Millisecond, cfg.Render.Interval)
	assert.Equal(t, "info", cfg.Log.Level, "untouched sections keep defaults")
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	t.Setenv("GRIDSTAR_SEED", "42")
	t.Setenv("GRIDSTAR_LOG_LEVEL", "debug")
	t.Setenv("GRIDSTAR_WIDTH", "not-a-number")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, int64(42), cfg.Grid.Seed)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, 20, cfg.Grid.Width, "unparsable values are ignored")
}

func TestParse_BadYAML(t *testing.T) {
	_, err := Parse([]byte("grid: [unterminated"))
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrInvalidConfig)
}

func TestValidate_Rejects(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*Config)
	}{
		{"unknown kind", func(c *Config) { c.Grid.Kind = "maze" }},
		{"zero width", func(c *Config) { c.Grid.Width = 0 }},
		{"inverted cost range", func(c *Config) { c.Grid.MinCost, c.Grid.MaxCost = 3, 2 }},
		{"density above one", func(c *Config) { c.Grid.Obstacles = 1.5 }},
		{"negative max steps", func(c *Config) { c.Search.MaxSteps = -1 }},
		{"unknown heuristic", func(c *Config) { c.Search.Heuristic = "euclid" }},
		{"unknown color", func(c *Config) { c.Render.Color = "sometimes" }},
		{"unknown log level", func(c *Config) { c.Log.Level = "trace" }},
		{"empty addr", func(c *Config) { c.Server.Addr = "" }},
		{"start off grid", func(c *Config) { c.Search.Start = Point{X: 20, Y: 0} }},
		{"goal off grid", func(c *Config) { c.Search.Goal = Point{X: 0, Y: 14} }},
		{"negative coordinate", func(c *Config) { c.Search.Goal = Point{X: -1, Y: 0} }},
		{"boulder center off grid", func(c *Config) {
			c.Grid.Kind = "boulder"
			c.Grid.Center = Point{X: 99, Y: 0}
		}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := Default()
			tc.mutate(&cfg)
			assert.ErrorIs(t, cfg.Validate(), ErrInvalidConfig)
		})
	}
}

func TestBuildGrid_Deterministic(t *testing.T) {
	cfg := Default()
	cfg.Grid.Obstacles = 0.3

	a, err := cfg.BuildGrid()
	require.NoError(t, err)
	b, err := cfg.BuildGrid()
	require.NoError(t, err)
	assert.Equal(t, a.Values(), b.Values())
	assert.True(t, a.Passable(cfg.Search.Start.State()))
	assert.True(t, a.Passable(cfg.Search.Goal.State()))
}

func TestNewEngine_AppliesSearchOptions(t *testing.T) {
	cfg := Default()
	cfg.Grid.Kind = "uniform"
	cfg.Grid.Width, cfg.Grid.Height = 3, 3
	cfg.Search.Start = Point{}
	cfg.Search.Goal = Point{X: 2, Y: 2}
	cfg.Search.MaxSteps = 2

	e, err := cfg.NewEngine()
	require.NoError(t, err)
	_, err = e.Run()
	assert.ErrorIs(t, err, astar.ErrStepLimit)
	assert.Equal(t, 2, e.Steps())
}
