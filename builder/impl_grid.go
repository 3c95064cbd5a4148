// SPDX-License-Identifier: MIT
// Package: pathboard/builder
//
// impl_grid.go - Grid(rows, cols): a 4-neighbourhood lattice.
//
// Contract:
//   - rows ≥ 1 and cols ≥ 1 (else ErrTooFewVertices).
//   - Nodes in row-major order; for each cell the right edge, then the down edge.
//
// Complexity: O(R·C) nodes + O(2·R·C) edges.

package builder

import "fmt"

const (
	methodGrid = "Grid"
	minGridDim = 1
)

// Grid returns a Constructor that lays out an R×C grid centered on the canvas.
func Grid(rows, cols int) Constructor {
	return func(g Target, cfg builderConfig) error {
		if rows < minGridDim || cols < minGridDim {
			return fmt.Errorf("%s: rows=%d, cols=%d (each must be ≥ %d): %w",
				methodGrid, rows, cols, minGridDim, ErrTooFewVertices)
		}

		x0 := cfg.cx - cfg.spacing*float64(cols-1)/2
		y0 := cfg.cy - cfg.spacing*float64(rows-1)/2
		ids := make([][]int, rows)
		for r := 0; r < rows; r++ {
			ids[r] = make([]int, cols)
			for c := 0; c < cols; c++ {
				ids[r][c] = g.AddNode(x0+cfg.spacing*float64(c), y0+cfg.spacing*float64(r)).ID
			}
		}

		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				if c+1 < cols {
					if err := join(g, cfg, methodGrid, ids[r][c], ids[r][c+1]); err != nil {
						return err
					}
				}
				if r+1 < rows {
					if err := join(g, cfg, methodGrid, ids[r][c], ids[r+1][c]); err != nil {
						return err
					}
				}
			}
		}

		return nil
	}
}
