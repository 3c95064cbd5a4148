// SPDX-License-Identifier: MIT
// Package: pathboard/builder
//
// spec.go - declarative preset requests decoded from JSON or YAML.

package builder

import (
	"fmt"
	"math/rand"
	"strings"
	"time"
)

// Size caps applied by Spec.Resolve.
const (
	MaxPresetNodes = 1024
	MaxPresetEdges = 1 << 15
)

// Point is a canvas position.
type Point struct {
	X float64 `json:"x" yaml:"x"`
	Y float64 `json:"y" yaml:"y"`
}

// Spec describes one preset together with its layout and weights.
// Zero values select the defaults: center (400,300), spacing 90, weight 1.
// Weight takes precedence over MinWeight/MaxWeight; a non-zero MaxWeight
// draws weights uniformly from [MinWeight, MaxWeight] using Seed, or a
// time-seeded source when Seed is zero.
type Spec struct {
	Name      string  `json:"name" yaml:"name"`
	N         int     `json:"n" yaml:"n"`
	M         int     `json:"m,omitempty" yaml:"m,omitempty"`
	Center    *Point  `json:"center,omitempty" yaml:"center,omitempty"`
	Spacing   float64 `json:"spacing,omitempty" yaml:"spacing,omitempty"`
	Weight    *int64  `json:"weight,omitempty" yaml:"weight,omitempty"`
	MinWeight int64   `json:"min_weight,omitempty" yaml:"min_weight,omitempty"`
	MaxWeight int64   `json:"max_weight,omitempty" yaml:"max_weight,omitempty"`
	Seed      int64   `json:"seed,omitempty" yaml:"seed,omitempty"`
}

// Resolve validates s and returns the constructor and options it describes.
// Unlike the option constructors it never panics: bad values yield ErrInvalidSpec.
func (s Spec) Resolve() (Constructor, []BuilderOption, error) {
	// 1) Topology.
	con, err := Preset(s.Name, s.N, s.M)
	if err != nil {
		return nil, nil, err
	}
	if err = s.checkSize(); err != nil {
		return nil, nil, err
	}

	// 2) Layout.

	var opts []BuilderOption
	if s.Center != nil {
		opts = append(opts, WithCenter(s.Center.X, s.Center.Y))
	}
	if s.Spacing < 0 {
		return nil, nil, fmt.Errorf("%w: spacing %g", ErrInvalidSpec, s.Spacing)
	}
	if s.Spacing > 0 {
		opts = append(opts, WithSpacing(s.Spacing))
	}

	// 3) Weights.
	switch {
	case s.Weight != nil:
		if *s.Weight < 0 {
			return nil, nil, fmt.Errorf("%w: weight %d", ErrInvalidSpec, *s.Weight)
		}
		opts = append(opts, WithConstantWeight(*s.Weight))
	case s.MaxWeight != 0:
		if s.MinWeight < 0 || s.MaxWeight < s.MinWeight {
			return nil, nil, fmt.Errorf("%w: weight range [%d, %d]", ErrInvalidSpec, s.MinWeight, s.MaxWeight)
		}
		seed := s.Seed
		if seed == 0 {
			seed = time.Now().UnixNano()
		}
		opts = append(opts, WithRand(rand.New(rand.NewSource(seed))), WithUniformWeight(s.MinWeight, s.MaxWeight))
	}

	return con, opts, nil
}

// checkSize rejects presets above MaxPresetNodes nodes or MaxPresetEdges edges.
func (s Spec) checkSize() error {
	if s.N > MaxPresetNodes {
		return fmt.Errorf("%w: n=%d exceeds %d nodes", ErrInvalidSpec, s.N, MaxPresetNodes)
	}
	switch strings.ToLower(strings.TrimSpace(s.Name)) {
	case PresetGrid:
		if s.M > MaxPresetNodes || s.N*s.M > MaxPresetNodes {
			return fmt.Errorf("%w: grid %dx%d exceeds %d nodes", ErrInvalidSpec, s.N, s.M, MaxPresetNodes)
		}
	case PresetComplete:
		if s.N > 1 && s.N*(s.N-1)/2 > MaxPresetEdges {
			return fmt.Errorf("%w: complete n=%d exceeds %d edges", ErrInvalidSpec, s.N, MaxPresetEdges)
		}
	}

	return nil
}
