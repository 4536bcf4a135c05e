package main

import (
	"errors"
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/gridstar/astar"
	"github.com/katalvlaran/gridstar/internal/tui"
)

func newWatchCmd(a *app) *cobra.Command {
	var interval time.Duration

	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Animate a search in the terminal",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if cmd.Flags().Changed("interval") {
				a.cfg.Render.Interval = interval
			}
			return a.watch(cmd)
		},
	}
	cmd.Flags().DurationVar(&interval, "interval", 0, "delay between steps (0: step with the n key)")

	return cmd
}

func (a *app) watch(cmd *cobra.Command) error {
	e, err := a.engine()
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()

	m, err := tui.Run(e, a.renderer(out), a.cfg.Render.Interval,
		tea.WithContext(cmd.Context()),
		tea.WithOutput(out),
		tea.WithInput(cmd.InOrStdin()),
		tea.WithAltScreen(),
	)
	if err != nil {
		return err
	}

	n, err := m.Result()
	switch {
	case errors.Is(err, astar.ErrExhausted):
		fmt.Fprintf(out, "no path from %s to %s\n", e.Start(), e.Goal())
		return err
	case n != nil:
		fmt.Fprintf(out, "cost %d, %d steps: %v\n", n.PathCost(), e.Steps(), astar.ReconstructPath(n))
	default:
		fmt.Fprintf(out, "stopped after %d steps\n", e.Steps())
	}

	return nil
}
