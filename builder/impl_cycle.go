// SPDX-License-Identifier: MIT
// Package: pathboard/builder
//
// impl_cycle.go - Cycle(n): n nodes on a ring, each joined to the next.
//
// Contract:
//   - n ≥ 3 (else ErrTooFewVertices).
//   - Edges i–(i+1) for i=0..n-2, then the closing edge (n-1)–0.
//
// Complexity: O(n) nodes + O(n) edges.

package builder

import "fmt"

const (
	methodCycle   = "Cycle"
	minCycleNodes = 3
)

// Cycle returns a Constructor that lays out the cycle C_n.
func Cycle(n int) Constructor {
	return func(g Target, cfg builderConfig) error {
		if n < minCycleNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodCycle, n, minCycleNodes, ErrTooFewVertices)
		}
		ids := placeAll(g, ring(n, cfg.cx, cfg.cy, ringRadius(n, cfg.spacing)))

		return closeRing(g, cfg, methodCycle, ids)
	}
}

// closeRing joins consecutive ids and then the last back to the first.
func closeRing(g Target, cfg builderConfig, method string, ids []int) error {
	n := len(ids)
	for i := 0; i < n; i++ {
		if err := join(g, cfg, method, ids[i], ids[(i+1)%n]); err != nil {
			return err
		}
	}

	return nil
}
