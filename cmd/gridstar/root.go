package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/katalvlaran/gridstar/astar"
	"github.com/katalvlaran/gridstar/internal/config"
	"github.com/katalvlaran/gridstar/internal/logging"
	"github.com/katalvlaran/gridstar/render"
)

// errBadPoint is returned for a --start/--goal value that is not "x,y".
var errBadPoint = errors.New("point must be x,y")

// app is the state shared by every subcommand.
type app struct {
	configPath string
	logLevel   string
	logFormat  string

	// grid and search overrides, applied only when the flag was set
	kind      string
	width     int
	height    int
	seed      int64
	obstacles float64
	start     string
	goal      string
	maxSteps  int
	heuristic string
	color     string

	cfg    config.Config
	logger *slog.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:           "gridstar",
		Short:         "A* search over weighted grids",
		Long:          "gridstar searches for the cheapest 4-connected path across a grid of\nentry costs and shows every step of the search.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.load(cmd)
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&a.configPath, "config", config.DefaultFile, "YAML configuration file")
	pf.StringVar(&a.logLevel, "log-level", "", "log level: debug, info, warn, error")
	pf.StringVar(&a.logFormat, "log-format", "", "log format: text or json")
	pf.StringVar(&a.kind, "kind", "", "terrain: uniform, random, vertical-gradient, horizontal-gradient, boulder")
	pf.IntVar(&a.width, "width", 0, "grid width")
	pf.IntVar(&a.height, "height", 0, "grid height")
	pf.Int64Var(&a.seed, "seed", 0, "terrain RNG seed")
	pf.Float64Var(&a.obstacles, "obstacles", 0, "probability in [0,1] of a cell becoming a wall")
	pf.StringVar(&a.start, "start", "", "start cell as x,y")
	pf.StringVar(&a.goal, "goal", "", "goal cell as x,y")
	pf.IntVar(&a.maxSteps, "max-steps", 0, "stop after this many steps (0: no limit)")
	pf.StringVar(&a.heuristic, "heuristic", "", "heuristic: manhattan or zero")
	pf.StringVar(&a.color, "color", "", "color output: auto, always, never")

	root.AddCommand(newRunCmd(a), newWatchCmd(a), newServeCmd(a))

	return root
}

// load resolves the configuration: defaults, file, environment, then flags.
func (a *app) load(cmd *cobra.Command) error {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err
	}
	if err := a.applyFlags(cmd.Flags(), &cfg); err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	logger, err := logging.New(cmd.ErrOrStderr(), logging.Config{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
	})
	if err != nil {
		return err
	}
	a.cfg = cfg
	a.logger = logger
	a.logger.Debug("configuration loaded",
		slog.String("file", a.configPath),
		slog.String("kind", cfg.Grid.Kind),
		slog.Int("width", cfg.Grid.Width),
		slog.Int("height", cfg.Grid.Height),
		slog.Int64("seed", cfg.Grid.Seed))

	return nil
}

func (a *app) applyFlags(fs *pflag.FlagSet, cfg *config.Config) error {
	set := fs.Changed
	if set("log-level") {
		cfg.Log.Level = a.logLevel
	}
	if set("log-format") {
		cfg.Log.Format = a.logFormat
	}
	if set("kind") {
		cfg.Grid.Kind = a.kind
	}
	if set("width") {
		cfg.Grid.Width = a.width
	}
	if set("height") {
		cfg.Grid.Height = a.height
	}
	if set("seed") {
		cfg.Grid.Seed = a.seed
	}
	if set("obstacles") {
		cfg.Grid.Obstacles = a.obstacles
	}
	if set("max-steps") {
		cfg.Search.MaxSteps = a.maxSteps
	}
	if set("heuristic") {
		cfg.Search.Heuristic = a.heuristic
	}
	if set("color") {
		cfg.Render.Color = a.color
	}
	if set("start") {
		p, err := parsePoint(a.start)
		if err != nil {
			return fmt.Errorf("--start: %w", err)
		}
		cfg.Search.Start = p
	}
	if set("goal") {
		p, err := parsePoint(a.goal)
		if err != nil {
			return fmt.Errorf("--goal: %w", err)
		}
		cfg.Search.Goal = p
	}

	return nil
}

func parsePoint(s string) (config.Point, error) {
	xs, ys, ok := strings.Cut(s, ",")
	if !ok {
		return config.Point{}, fmt.Errorf("%w: %q", errBadPoint, s)
	}
	x, errX := strconv.Atoi(strings.TrimSpace(xs))
	y, errY := strconv.Atoi(strings.TrimSpace(ys))
	if errX != nil || errY != nil {
		return config.Point{}, fmt.Errorf("%w: %q", errBadPoint, s)
	}

	return config.Point{X: x, Y: y}, nil
}

// engine builds the configured engine with the app logger attached.
func (a *app) engine(extra ...astar.Option) (*astar.Engine, error) {
	opts := append([]astar.Option{astar.WithLogger(a.logger)}, extra...)

	return a.cfg.NewEngine(opts...)
}

// renderer builds a renderer for out. Auto color mode resolves to color
// only when out is a terminal and NO_COLOR is unset.
func (a *app) renderer(out io.Writer) *render.Renderer {
	return render.New(out,
		render.WithColorMode(colorMode(render.ColorMode(a.cfg.Render.Color), out)),
		render.WithCellWidth(a.cfg.Render.CellWidth),
	)
}

func colorMode(mode render.ColorMode, out io.Writer) render.ColorMode {
	if mode != render.ColorAuto {
		return mode
	}
	if os.Getenv("NO_COLOR") != "" {
		return render.ColorNever
	}
	f, ok := out.(*os.File)
	if ok && (isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())) {
		return render.ColorAlways
	}

	return render.ColorNever
}
