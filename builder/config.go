// SPDX-License-Identifier: MIT
// Package: pathboard/builder
//
// config.go - builderConfig, its defaults and the BuilderOption constructors.

package builder

import (
	"math/rand"
)

// Default layout values, in canvas pixels.
const (
	DefaultCenterX = 400.0
	DefaultCenterY = 300.0
	DefaultSpacing = 90.0
)

// builderConfig is the resolved, immutable configuration handed to constructors.
type builderConfig struct {
	cx, cy   float64 // layout center
	spacing  float64 // distance between adjacent nodes
	rng      *rand.Rand
	weightFn WeightFn
}

// BuilderOption mutates builderConfig during resolution.
type BuilderOption func(*builderConfig)

// newBuilderConfig applies opts over the defaults.
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		cx:       DefaultCenterX,
		cy:       DefaultCenterY,
		spacing:  DefaultSpacing,
		rng:      nil,
		weightFn: DefaultWeightFn,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// weight draws the next edge weight.
func (c builderConfig) weight() int64 {
	return c.weightFn(c.rng)
}

// WithCenter sets the canvas point the preset is centered on.
func WithCenter(x, y float64) BuilderOption {
	return func(c *builderConfig) {
		c.cx, c.cy = x, y
	}
}

// WithSpacing sets the distance between adjacent nodes.
// Panics if d <= 0.
func WithSpacing(d float64) BuilderOption {
	if d <= 0 {
		panic("builder: WithSpacing(d<=0)")
	}

	return func(c *builderConfig) {
		c.spacing = d
	}
}

// WithRand uses r for stochastic weights. Panics if r is nil.
func WithRand(r *rand.Rand) BuilderOption {
	if r == nil {
		panic("builder: WithRand(nil)")
	}

	return func(c *builderConfig) {
		c.rng = r
	}
}

// WithSeed uses a new rand.Rand seeded with seed.
func WithSeed(seed int64) BuilderOption {
	return func(c *builderConfig) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithWeightFn sets the edge weight distribution. Panics if fn is nil.
func WithWeightFn(fn WeightFn) BuilderOption {
	if fn == nil {
		panic("builder: WithWeightFn(nil)")
	}

	return func(c *builderConfig) {
		c.weightFn = fn
	}
}
