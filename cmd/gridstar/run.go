package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/gridstar/astar"
	"github.com/katalvlaran/gridstar/dijkstra"
	"github.com/katalvlaran/gridstar/render"
)

// errVerify is returned when --verify finds a cost different from dijkstra's.
var errVerify = errors.New("verification failed")

func newRunCmd(a *app) *cobra.Command {
	var quiet, verify bool

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run a search, printing every iteration and the final path",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.run(cmd, quiet, verify)
		},
	}
	cmd.Flags().BoolVarP(&quiet, "quiet", "q", false, "print only the initial grid and the result")
	cmd.Flags().BoolVar(&verify, "verify", false, "check the result against a dijkstra search")

	return cmd
}

func (a *app) run(cmd *cobra.Command, quiet, verify bool) error {
	out := cmd.OutOrStdout()
	e, err := a.engine()
	if err != nil {
		return err
	}
	r := a.renderer(out)
	if !e.Grid().Reachable(e.Start(), e.Goal()) {
		a.logger.Warn("goal is not reachable from start",
			slog.String("start", e.Start().String()),
			slog.String("goal", e.Goal().String()))
	}

	if err := r.Draw(e); err != nil {
		return err
	}
	terminal, err := a.iterate(cmd, e, r, quiet)
	if verify {
		if vErr := verifyResult(e, terminal); vErr != nil {
			return vErr
		}
		a.logger.Info("verified against dijkstra")
	}
	if err != nil {
		if errors.Is(err, astar.ErrExhausted) {
			fmt.Fprintf(out, "\nno path from %s to %s after %d steps\n", e.Start(), e.Goal(), e.Steps())
		}
		return err
	}

	fmt.Fprintln(out)
	if err := r.DrawPath(e, terminal); err != nil {
		return err
	}
	fmt.Fprintf(out, "\ncost %d, %d cells, %d steps: %v\n",
		terminal.PathCost(), terminal.Depth()+1, e.Steps(), astar.ReconstructPath(terminal))

	return nil
}

// iterate steps e to a terminal outcome, drawing each intermediate frame.
func (a *app) iterate(cmd *cobra.Command, e *astar.Engine, r *render.Renderer, quiet bool) (*astar.Node, error) {
	ctx := cmd.Context()
	out := cmd.OutOrStdout()
	limit := a.cfg.Search.MaxSteps

	for {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if limit > 0 && e.Steps() >= limit {
			return nil, fmt.Errorf("%w: %d", astar.ErrStepLimit, limit)
		}
		n, err := e.ExpandOne()
		if err != nil || n != nil {
			return n, err
		}
		if quiet {
			continue
		}
		if err := drawIteration(out, r, e); err != nil {
			return nil, err
		}
	}
}

func drawIteration(out io.Writer, r *render.Renderer, e *astar.Engine) error {
	if _, err := fmt.Fprintf(out, "\nIteration %d\n", e.Steps()); err != nil {
		return err
	}
	return r.Draw(e)
}

// verifyResult compares the engine outcome with an independent dijkstra
// search over the same grid.
func verifyResult(e *astar.Engine, terminal *astar.Node) error {
	_, want, err := dijkstra.ShortestPath(e.Grid(), e.Start(), e.Goal())
	switch {
	case errors.Is(err, dijkstra.ErrUnreachable):
		if terminal != nil {
			return fmt.Errorf("%w: found cost %d, dijkstra found no path", errVerify, terminal.PathCost())
		}
		return nil
	case err != nil:
		return err
	case terminal == nil:
		if e.Status() == astar.StatusExhausted {
			return fmt.Errorf("%w: exhausted, dijkstra cost %d", errVerify, want)
		}
		return nil
	case int64(terminal.PathCost()) != want:
		return fmt.Errorf("%w: cost %d, dijkstra cost %d", errVerify, terminal.PathCost(), want)
	}
	return nil
}
