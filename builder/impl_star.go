// SPDX-License-Identifier: MIT
// Package: pathboard/builder
//
// impl_star.go - Star(n): a hub with n-1 leaves around it.
//
// Contract:
//   - n ≥ 2 (else ErrTooFewVertices).
//   - The hub is created first, so it gets the lowest ID of the preset.
//   - Spokes hub–leaf in leaf order.
//
// Complexity: O(n) nodes + O(n-1) edges.

package builder

import "fmt"

const (
	methodStar   = "Star"
	minStarNodes = 2
)

// Star returns a Constructor that lays out the star S_n.
func Star(n int) Constructor {
	return func(g Target, cfg builderConfig) error {
		if n < minStarNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodStar, n, minStarNodes, ErrTooFewVertices)
		}

		hub := g.AddNode(cfg.cx, cfg.cy).ID
		leaves := placeAll(g, ring(n-1, cfg.cx, cfg.cy, ringRadius(n-1, cfg.spacing)))
		for _, leaf := range leaves {
			if err := join(g, cfg, methodStar, hub, leaf); err != nil {
				return err
			}
		}

		return nil
	}
}
