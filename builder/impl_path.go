// SPDX-License-Identifier: MIT
// Package: pathboard/builder
//
// impl_path.go - Path(n): a horizontal chain of n nodes.
//
// Contract:
//   - n ≥ 2 (else ErrTooFewVertices).
//   - Nodes left to right; edges i–(i+1) for i=0..n-2 in increasing order.
//
// Complexity: O(n) nodes + O(n-1) edges.

package builder

import "fmt"

const (
	methodPath   = "Path"
	minPathNodes = 2
)

// Path returns a Constructor that lays out a simple path P_n.
func Path(n int) Constructor {
	return func(g Target, cfg builderConfig) error {
		if n < minPathNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodPath, n, minPathNodes, ErrTooFewVertices)
		}

		ids := placeAll(g, line(n, cfg.cx, cfg.cy, cfg.spacing))
		for i := 1; i < n; i++ {
			if err := join(g, cfg, methodPath, ids[i-1], ids[i]); err != nil {
				return err
			}
		}

		return nil
	}
}
