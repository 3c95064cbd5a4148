// SPDX-License-Identifier: MIT
// Package: pathboard/builder
//
// weight_fn.go - edge weight distributions.
//
// Contract:
//   - Every WeightFn returns a non-negative integer.
//   - A nil rng never panics: stochastic distributions fall back to their lower bound.

package builder

import (
	"fmt"
	"math/rand"
)

// DefaultEdgeWeight is the weight of preset edges when no distribution is chosen.
const DefaultEdgeWeight int64 = 1

// WeightFn produces one edge weight.
type WeightFn func(rng *rand.Rand) int64

// DefaultWeightFn always returns DefaultEdgeWeight.
func DefaultWeightFn(_ *rand.Rand) int64 {
	return DefaultEdgeWeight
}

// ConstantWeightFn always returns value. Panics if value < 0.
func ConstantWeightFn(value int64) WeightFn {
	if value < 0 {
		panic(fmt.Sprintf("ConstantWeightFn: value must be ≥ 0, got %d", value))
	}

	return func(_ *rand.Rand) int64 {
		return value
	}
}

// UniformWeightFn draws uniformly from [min, max]. Panics unless 0 ≤ min ≤ max.
func UniformWeightFn(min, max int64) WeightFn {
	if min < 0 || max < min {
		panic(fmt.Sprintf("UniformWeightFn: require 0 ≤ min ≤ max, got min=%d, max=%d", min, max))
	}

	return func(rng *rand.Rand) int64 {
		if rng == nil || max == min {
			return min
		}

		return min + rng.Int63n(max-min+1)
	}
}

// WithConstantWeight is shorthand for WithWeightFn(ConstantWeightFn(w)).
func WithConstantWeight(w int64) BuilderOption {
	return WithWeightFn(ConstantWeightFn(w))
}

// WithUniformWeight is shorthand for WithWeightFn(UniformWeightFn(min, max)).
func WithUniformWeight(min, max int64) BuilderOption {
	return WithWeightFn(UniformWeightFn(min, max))
}
