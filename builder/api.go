// SPDX-License-Identifier: MIT
// Package: pathboard/builder
//
// api.go - public entry points for the builder package.
//
// Design contract:
//   - Apply(g, bopts, cons...) resolves cfg once and runs cons in order on an existing graph.
//   - BuildGraph(gopts, bopts, cons...) does the same on a fresh core.Graph.
//   - Topology constructors live in impl_*.go.

package builder

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/pathboard/core"
)

// Target is the mutation surface presets need; *core.Graph satisfies it.
type Target interface {
	AddNode(x, y float64) core.Node
	AddEdge(a, b int, w int64) (core.Edge, error)
}

// Constructor adds one preset shape to g using the resolved configuration.
// Constructors validate parameters before touching g.
type Constructor func(g Target, cfg builderConfig) error

// Apply resolves bopts and runs every constructor against g in order.
// The first error is wrapped with "Apply: %w" and returned; nodes and edges
// added before the failure stay in g.
//
// Complexity: Σ cost of each constructor.
func Apply(g Target, bopts []BuilderOption, cons ...Constructor) error {
	cfg := newBuilderConfig(bopts...)
	for i, fn := range cons {
		if fn == nil {
			return fmt.Errorf("Apply: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(g, cfg); err != nil {
			return fmt.Errorf("Apply: %w", err)
		}
	}

	return nil
}

// BuildGraph creates a core.Graph with gopts and applies cons to it.
func BuildGraph(gopts []core.GraphOption, bopts []BuilderOption, cons ...Constructor) (*core.Graph, error) {
	g := core.NewGraph(gopts...)
	if err := Apply(g, bopts, cons...); err != nil {
		return nil, fmt.Errorf("BuildGraph: %w", err)
	}

	return g, nil
}

// Preset names accepted by Preset.
const (
	PresetPath     = "path"
	PresetCycle    = "cycle"
	PresetStar     = "star"
	PresetWheel    = "wheel"
	PresetGrid     = "grid"
	PresetComplete = "complete"
)

// PresetNames lists the names accepted by Preset, in documentation order.
func PresetNames() []string {
	return []string{PresetPath, PresetCycle, PresetStar, PresetWheel, PresetGrid, PresetComplete}
}

// Preset returns the constructor registered under name. n is the node count;
// for "grid" n is the row count and m the column count, m is ignored otherwise.
func Preset(name string, n, m int) (Constructor, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case PresetPath:
		return Path(n), nil
	case PresetCycle:
		return Cycle(n), nil
	case PresetStar:
		return Star(n), nil
	case PresetWheel:
		return Wheel(n), nil
	case PresetGrid:
		return Grid(n, m), nil
	case PresetComplete:
		return Complete(n), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownPreset, name)
	}
}
