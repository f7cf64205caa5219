// Package grid holds the immutable cost map that the crucible search walks.
//
// What:
//
//   - Grid wraps a rectangular [][]int of non-negative traversal costs.
//   - Cost(x, y) reports the price of entering a cell, or false when the
//     coordinate lies outside the grid (such cells are impassable).
//   - Parse builds a Grid from line-oriented text where every character is
//     a single decimal digit.
//
// Why:
//
//   - Path-finding puzzles: heat-loss maps, terrain difficulty, risk levels.
//   - A read-only Grid can be shared by any number of concurrent searches.
//
// Complexity:
//
//   - New, Parse: O(W×H) time and memory.
//   - Cost, InBounds, Index: O(1).
//   - MinCost, MaxCost: O(1), precomputed at construction.
//
// Errors:
//
//   - ErrEmptyGrid: input has no rows or no columns.
//   - ErrNonRectangular: rows have differing lengths.
//   - ErrNegativeCost: a cell holds a negative cost.
//   - ErrInvalidCell: a character of text input is not a decimal digit.
package grid
