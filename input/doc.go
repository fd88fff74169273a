// SPDX-License-Identifier: MIT

// Package input turns raw, user-supplied systems into a validated (A, b) pair
// for the solver package.
//
// Three sources are supported:
//
//   - cell grids ([][]Cell), as typed into a form: ParseCells / ParseMatrix;
//   - YAML or JSON documents ({method, a, b, tolerance, ...}): Decode, Load;
//   - plain text, one augmented row [a_i1 … a_in b_i] per line: ParseText.
//
// Parsing is strict: an empty or non-numeric cell is rejected with
// ErrNonNumeric naming its row and column. Nothing is silently replaced by 0.
package input
