// SPDX-License-Identifier: MIT
// Package gridgen produces cost tables for grid.New.
//
// Every constructor returns a [][]int indexed [y][x] with strictly positive
// costs; walls (cost 0) appear only through WithObstacles. Stochastic
// generators draw from an explicit RNG (WithSeed / WithRand) so that a seed
// fully determines the terrain.
//
// Terrain kinds:
//
//	uniform             every cell costs the same
//	random              costs drawn uniformly from [min, max]
//	vertical-gradient   cost grows with the row (y+1)
//	horizontal-gradient cost grows with the column (x+1)
//	boulder             a cost peak around a center that decays with distance
//
// Options constructors validate and panic on meaningless input; generators
// return sentinel errors and never panic.
package gridgen
