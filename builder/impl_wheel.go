// SPDX-License-Identifier: MIT
// Package: pathboard/builder
//
// impl_wheel.go - Wheel(n): W_n = C_{n-1} plus a hub joined to every rim node.
//
// Contract:
//   - n ≥ 4 (the rim must be a valid cycle, else ErrTooFewVertices).
//   - Rim nodes first (ring order), then the hub at the center.
//   - Rim edges as in Cycle, then spokes hub–rim in rim order.
//
// Complexity: O(n) nodes + O(2n-2) edges.

package builder

import "fmt"

const (
	methodWheel   = "Wheel"
	minWheelNodes = 4
)

// Wheel returns a Constructor that lays out the wheel W_n.
func Wheel(n int) Constructor {
	return func(g Target, cfg builderConfig) error {
		if n < minWheelNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodWheel, n, minWheelNodes, ErrTooFewVertices)
		}

		rim := placeAll(g, ring(n-1, cfg.cx, cfg.cy, ringRadius(n-1, cfg.spacing)))
		if err := closeRing(g, cfg, methodWheel, rim); err != nil {
			return err
		}

		hub := g.AddNode(cfg.cx, cfg.cy).ID
		for _, r := range rim {
			if err := join(g, cfg, methodWheel, hub, r); err != nil {
				return err
			}
		}

		return nil
	}
}
