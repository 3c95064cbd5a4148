// SPDX-License-Identifier: MIT
// Package: pathboard/builder
//
// layout.go - canvas placement helpers shared by the constructors.

package builder

import (
	"fmt"
	"math"
)

// point is a canvas position.
type point struct{ x, y float64 }

// ringRadius returns the circle radius on which n nodes sit spacing apart.
// The radius never drops below spacing so small rings stay readable.
func ringRadius(n int, spacing float64) float64 {
	r := spacing * float64(n) / (2 * math.Pi)
	if r < spacing {
		return spacing
	}

	return r
}

// ring places n points on a circle around (cx,cy), starting at 12 o'clock, clockwise.
func ring(n int, cx, cy, radius float64) []point {
	pts := make([]point, n)
	for i := 0; i < n; i++ {
		a := -math.Pi/2 + 2*math.Pi*float64(i)/float64(n)
		pts[i] = point{x: cx + radius*math.Cos(a), y: cy + radius*math.Sin(a)}
	}

	return pts
}

// line places n points on a horizontal line centered on (cx,cy).
func line(n int, cx, cy, spacing float64) []point {
	pts := make([]point, n)
	x0 := cx - spacing*float64(n-1)/2
	for i := 0; i < n; i++ {
		pts[i] = point{x: x0 + spacing*float64(i), y: cy}
	}

	return pts
}

// placeAll adds a node per point and returns the assigned IDs in point order.
func placeAll(g Target, pts []point) []int {
	ids := make([]int, len(pts))
	for i, p := range pts {
		ids[i] = g.AddNode(p.x, p.y).ID
	}

	return ids
}

// join adds the edge a–b weighted by cfg, tagging failures with method.
func join(g Target, cfg builderConfig, method string, a, b int) error {
	w := cfg.weight()
	if _, err := g.AddEdge(a, b, w); err != nil {
		return fmt.Errorf("%s: AddEdge(%d–%d, w=%d): %w", method, a, b, w, err)
	}

	return nil
}
