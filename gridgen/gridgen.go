// SPDX-License-Identifier: MIT
package gridgen

import (
	"fmt"

	"github.com/katalvlaran/gridstar/grid"
)

// Uniform returns a w×h table where every cell costs cost.
func Uniform(w, h, cost int, opts ...Option) ([][]int, error) {
	if cost < 1 {
		return nil, fmt.Errorf("uniform cost=%d: %w", cost, ErrBadCostRange)
	}

	return generate(w, h, opts, func(_, _ int, _ *genConfig) int { return cost })
}

// Random returns a w×h table with costs drawn uniformly from [min, max].
func Random(w, h, min, max int, opts ...Option) ([][]int, error) {
	if min < 1 || max < min {
		return nil, fmt.Errorf("random range [%d,%d]: %w", min, max, ErrBadCostRange)
	}
	span := max - min + 1

	return generate(w, h, opts, func(_, _ int, c *genConfig) int { return min + c.rng.Intn(span) })
}

// VerticalGradient returns a table whose cost is y+1 in every row.
func VerticalGradient(w, h int, opts ...Option) ([][]int, error) {
	return generate(w, h, opts, func(_, y int, _ *genConfig) int { return y + 1 })
}

// HorizontalGradient returns a table whose cost is x+1 in every column.
func HorizontalGradient(w, h int, opts ...Option) ([][]int, error) {
	return generate(w, h, opts, func(x, _ int, _ *genConfig) int { return x + 1 })
}

// Boulder returns a table with a cost peak at (cx, cy):
// cost = 500 / (10 + dx² + dy²), never below 1.
func Boulder(w, h, cx, cy int, opts ...Option) ([][]int, error) {
	return generate(w, h, opts, func(x, y int, _ *genConfig) int {
		dx, dy := x-cx, y-cy
		c := boulderPeak / (boulderSpread + dx*dx + dy*dy)
		if c < 1 {
			c = 1
		}

		return c
	})
}

// Build dispatches on spec.Kind.
func Build(spec Spec, opts ...Option) ([][]int, error) {
	switch spec.Kind {
	case KindUniform:
		return Uniform(spec.Width, spec.Height, spec.Cost, opts...)
	case KindRandom:
		return Random(spec.Width, spec.Height, spec.MinCost, spec.MaxCost, opts...)
	case KindVerticalGradient:
		return VerticalGradient(spec.Width, spec.Height, opts...)
	case KindHorizontalGradient:
		return HorizontalGradient(spec.Width, spec.Height, opts...)
	case KindBoulder:
		return Boulder(spec.Width, spec.Height, spec.Center.X, spec.Center.Y, opts...)
	default:
		return nil, fmt.Errorf("%q: %w", spec.Kind, ErrUnknownKind)
	}
}

// generate fills a w×h table in row-major order, then applies obstacles.
// Cost draws happen before obstacle draws so that adding obstacles never
// changes the underlying terrain for a given seed.
func generate(w, h int, opts []Option, cost func(x, y int, c *genConfig) int) ([][]int, error) {
	// 1) Validate parameters early (fail fast; no partial work).
	if w < 1 || h < 1 {
		return nil, fmt.Errorf("w=%d, h=%d: %w", w, h, ErrBadDimensions)
	}
	cfg := newConfig(opts)

	// 2) Terrain.
	out := make([][]int, h)
	for y := 0; y < h; y++ {
		row := make([]int, w)
		for x := 0; x < w; x++ {
			row[x] = cost(x, y, cfg)
		}
		out[y] = row
	}

	// 3) Obstacles.
	if cfg.obstacles > 0 {
		for y := 0; y < h; y++ {
			for x := 0; x < w; x++ {
				if _, keep := cfg.clear[grid.S(x, y)]; keep {
					continue
				}
				if cfg.rng.Float64() < cfg.obstacles {
					out[y][x] = 0
				}
			}
		}
	}

	return out, nil
}
