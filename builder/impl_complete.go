// SPDX-License-Identifier: MIT
// Package: pathboard/builder
//
// impl_complete.go - Complete(n): K_n on a ring.
//
// Contract:
//   - n ≥ 1 (else ErrTooFewVertices).
//   - Edges i–j for 0 ≤ i < j < n in lexicographic order.
//
// Complexity: O(n) nodes + O(n²) edges.

package builder

import "fmt"

const (
	methodComplete   = "Complete"
	minCompleteNodes = 1
)

// Complete returns a Constructor that lays out the complete graph K_n.
func Complete(n int) Constructor {
	return func(g Target, cfg builderConfig) error {
		if n < minCompleteNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodComplete, n, minCompleteNodes, ErrTooFewVertices)
		}

		ids := placeAll(g, ring(n, cfg.cx, cfg.cy, ringRadius(n, cfg.spacing)))
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				if err := join(g, cfg, methodComplete, ids[i], ids[j]); err != nil {
					return err
				}
			}
		}

		return nil
	}
}
