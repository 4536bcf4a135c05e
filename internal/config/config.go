// Package config loads gridstar settings from defaults, an optional YAML
// file, GRIDSTAR_* environment variables and command-line overrides, and
// validates the result.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/gridstar/astar"
	"github.com/katalvlaran/gridstar/grid"
	"github.com/katalvlaran/gridstar/gridgen"
)

// ErrInvalidConfig is returned when a loaded configuration fails validation.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// EnvPrefix prefixes every environment override.
const EnvPrefix = "GRIDSTAR_"

// DefaultFile is the file name looked up when no --config flag is given.
const DefaultFile = "gridstar.yaml"

// Config is the complete gridstar configuration.
type Config struct {
	Grid   GridConfig   `yaml:"grid" json:"grid"`
	Search SearchConfig `yaml:"search" json:"search"`
	Render RenderConfig `yaml:"render" json:"render"`
	Log    LogConfig    `yaml:"log" json:"log"`
	Server ServerConfig `yaml:"server" json:"server"`
}

// Point is a grid coordinate in configuration form.
type Point struct {
	X int `yaml:"x" json:"x" validate:"gte=0"`
	Y int `yaml:"y" json:"y" validate:"gte=0"`
}

// State converts p to a grid state.
func (p Point) State() grid.State { return grid.S(p.X, p.Y) }

// GridConfig selects the terrain generator and its parameters.
type GridConfig struct {
	Kind      string  `yaml:"kind" json:"kind" validate:"oneof=uniform random vertical-gradient horizontal-gradient boulder"`
	Width     int     `yaml:"width" json:"width" validate:"min=1,max=1024"`
	Height    int     `yaml:"height" json:"height" validate:"min=1,max=1024"`
	Cost      int     `yaml:"cost" json:"cost" validate:"min=1"`
	MinCost   int     `yaml:"min_cost" json:"min_cost" validate:"min=1"`
	MaxCost   int     `yaml:"max_cost" json:"max_cost" validate:"gtefield=MinCost"`
	Center    Point   `yaml:"center" json:"center"`
	Seed      int64   `yaml:"seed" json:"seed"`
	Obstacles float64 `yaml:"obstacles" json:"obstacles" validate:"gte=0,lte=1"`
}

// SearchConfig holds the endpoints and engine options.
type SearchConfig struct {
	Start           Point  `yaml:"start" json:"start"`
	Goal            Point  `yaml:"goal" json:"goal"`
	Heuristic       string `yaml:"heuristic" json:"heuristic" validate:"oneof=manhattan zero"`
	MaxSteps        int    `yaml:"max_steps" json:"max_steps" validate:"gte=0"`
	StrictEndpoints bool   `yaml:"strict_endpoints" json:"strict_endpoints"`
}

// RenderConfig controls terminal output.
type RenderConfig struct {
	Color     string        `yaml:"color" json:"color" validate:"oneof=auto always never"`
	CellWidth int           `yaml:"cell_width" json:"cell_width" validate:"min=1,max=8"`
	Interval  time.Duration `yaml:"interval" json:"interval" validate:"gte=0"`
}

// LogConfig controls the slog handler.
type LogConfig struct {
	Level  string `yaml:"level" json:"level" validate:"oneof=debug info warn error"`
	Format string `yaml:"format" json:"format" validate:"oneof=text json"`
}

// ServerConfig controls the HTTP API.
type ServerConfig struct {
	Addr        string `yaml:"addr" json:"addr" validate:"required"`
	MaxSessions int    `yaml:"max_sessions" json:"max_sessions" validate:"min=1"`
}

// Default returns the built-in configuration: a 20×14 random grid of
// costs 1..2 searched from (2,3) to (18,12).
func Default() Config {
	return Config{
		Grid: GridConfig{
			Kind:    string(gridgen.KindRandom),
			Width:   20,
			Height:  14,
			Cost:    1,
			MinCost: 1,
			MaxCost: 2,
			Center:  Point{X: 10, Y: 7},
			Seed:    1,
		},
		Search: SearchConfig{
			Start:     Point{X: 2, Y: 3},
			Goal:      Point{X: 18, Y: 12},
			Heuristic: "manhattan",
		},
		Render: RenderConfig{
			Color:     "auto",
			CellWidth: 3,
			Interval:  100 * time.Millisecond,
		},
		Log: LogConfig{
			Level:  "info",
			Format: "text",
		},
		Server: ServerConfig{
			Addr:        ":8080",
			MaxSessions: 64,
		},
	}
}

// Load builds a configuration from defaults, then the YAML file at path
// (skipped when path is empty or the file does not exist), then GRIDSTAR_*
// environment variables. The result is validated.
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		if err := loadFile(path, &cfg); err != nil {
			return Config{}, err
		}
	}
	applyEnv(&cfg, os.LookupEnv)

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Parse decodes YAML data on top of the defaults and validates the result.
func Parse(data []byte) (Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("config: parse: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

func loadFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("config: read %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("config: parse %s: %w", path, err)
	}

	return nil
}

// applyEnv overrides fields from the environment. Unparsable numbers are
// ignored and the previous value kept.
func applyEnv(cfg *Config, lookup func(string) (string, bool)) {
	str := func(name string, dst *string) {
		if v, ok := lookup(EnvPrefix + name); ok && v != "" {
			*dst = v
		}
	}
	num := func(name string, dst *int) {
		if v, ok := lookup(EnvPrefix + name); ok {
			if i, err := strconv.Atoi(v); err == nil {
				*dst = i
			}
		}
	}

	str("KIND", &cfg.Grid.Kind)
	num("WIDTH", &cfg.Grid.Width)
	num("HEIGHT", &cfg.Grid.Height)
	num("MIN_COST", &cfg.Grid.MinCost)
	num("MAX_COST", &cfg.Grid.MaxCost)
	if v, ok := lookup(EnvPrefix + "SEED"); ok {
		if i, err := strconv.ParseInt(v, 10, 64); err == nil {
			cfg.Grid.Seed = i
		}
	}
	if v, ok := lookup(EnvPrefix + "OBSTACLES"); ok {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			cfg.Grid.Obstacles = f
		}
	}

	str("HEURISTIC", &cfg.Search.Heuristic)
	num("MAX_STEPS", &cfg.Search.MaxSteps)
	if v, ok := lookup(EnvPrefix + "STRICT_ENDPOINTS"); ok {
		cfg.Search.StrictEndpoints = v == "true" || v == "1"
	}

	str("COLOR", &cfg.Render.Color)
	if v, ok := lookup(EnvPrefix + "INTERVAL"); ok {
		if d, err := time.ParseDuration(v); err == nil {
			cfg.Render.Interval = d
		}
	}

	str("LOG_LEVEL", &cfg.Log.Level)
	str("LOG_FORMAT", &cfg.Log.Format)
	str("ADDR", &cfg.Server.Addr)
}

var validate = validator.New()

// Validate checks struct tags, then that the endpoints lie on the grid.
func (c Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	return c.validateEndpoints()
}

func (c Config) validateEndpoints() error {
	inside := func(p Point) bool {
		return p.X < c.Grid.Width && p.Y < c.Grid.Height
	}
	if !inside(c.Search.Start) {
		return fmt.Errorf("%w: start %v outside %dx%d grid", ErrInvalidConfig, c.Search.Start.State(), c.Grid.Width, c.Grid.Height)
	}
	if !inside(c.Search.Goal) {
		return fmt.Errorf("%w: goal %v outside %dx%d grid", ErrInvalidConfig, c.Search.Goal.State(), c.Grid.Width, c.Grid.Height)
	}
	if c.Grid.Kind == string(gridgen.KindBoulder) && !inside(c.Grid.Center) {
		return fmt.Errorf("%w: boulder center %v outside grid", ErrInvalidConfig, c.Grid.Center.State())
	}

	return nil
}

// BuildGrid generates the configured terrain. The start and goal cells are
// never turned into obstacles.
func (c Config) BuildGrid() (*grid.Grid, error) {
	spec := gridgen.Spec{
		Kind:    gridgen.Kind(c.Grid.Kind),
		Width:   c.Grid.Width,
		Height:  c.Grid.Height,
		Cost:    c.Grid.Cost,
		MinCost: c.Grid.MinCost,
		MaxCost: c.Grid.MaxCost,
		Center:  c.Grid.Center.State(),
	}
	values, err := gridgen.Build(spec,
		gridgen.WithSeed(c.Grid.Seed),
		gridgen.WithObstacles(c.Grid.Obstacles),
		gridgen.WithClear(c.Search.Start.State(), c.Search.Goal.State()),
	)
	if err != nil {
		return nil, fmt.Errorf("config: build grid: %w", err)
	}

	return grid.New(values)
}

// SearchOptions translates the search section into engine options.
func (c Config) SearchOptions() []astar.Option {
	opts := []astar.Option{astar.WithMaxSteps(c.Search.MaxSteps)}
	if c.Search.Heuristic == "zero" {
		opts = append(opts, astar.WithHeuristic(astar.Zero))
	}
	if c.Search.StrictEndpoints {
		opts = append(opts, astar.WithStrictEndpoints())
	}

	return opts
}

// NewEngine builds the configured grid and an engine over it. extra options
// are applied after the configured ones.
func (c Config) NewEngine(extra ...astar.Option) (*astar.Engine, error) {
	g, err := c.BuildGrid()
	if err != nil {
		return nil, err
	}
	opts := append(c.SearchOptions(), extra...)

	return astar.New(g, c.Search.Start.State(), c.Search.Goal.State(), opts...)
}
