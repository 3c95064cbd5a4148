// SPDX-License-Identifier: MIT
//
// File: hcl.go
// Role: HCL script decoding.

package script

import (
	"fmt"

	"github.com/hashicorp/hcl/v2/hclsimple"

	"github.com/katalvlaran/pathboard/builder"
)

// hclFile is the top-level structure of an HCL script.
type hclFile struct {
	Name  string     `hcl:"name,optional"`
	Steps []*hclStep `hcl:"step,block"`
}

// hclStep is one labelled step block. The label selects which attributes apply.
type hclStep struct {
	Kind       string   `hcl:"kind,label"`
	Value      *string  `hcl:"value,optional"`
	X          *float64 `hcl:"x,optional"`
	Y          *float64 `hcl:"y,optional"`
	Start      *int     `hcl:"start,optional"`
	Name       *string  `hcl:"name,optional"`
	N          *int     `hcl:"n,optional"`
	M          *int     `hcl:"m,optional"`
	CenterX    *float64 `hcl:"center_x,optional"`
	CenterY    *float64 `hcl:"center_y,optional"`
	Spacing    *float64 `hcl:"spacing,optional"`
	Weight     *int64   `hcl:"weight,optional"`
	MinWeight  *int64   `hcl:"min_weight,optional"`
	MaxWeight  *int64   `hcl:"max_weight,optional"`
	Seed       *int64   `hcl:"seed,optional"`
	AllowError *bool    `hcl:"allow_error,optional"`
}

func parseHCL(filename string, src []byte) (*Script, error) {
	var f hclFile
	if err := hclsimple.Decode(filename, src, nil, &f); err != nil {
		return nil, err
	}

	sc := &Script{Name: f.Name, Steps: make([]Step, 0, len(f.Steps))}
	for i, hs := range f.Steps {
		st, err := hs.step()
		if err != nil {
			return nil, fmt.Errorf("step %d: %w", i+1, err)
		}
		sc.Steps = append(sc.Steps, st)
	}

	return sc, nil
}

// step converts the block into a Step.
func (hs *hclStep) step() (Step, error) {
	var st Step
	if hs.AllowError != nil {
		st.AllowError = *hs.AllowError
	}

	switch Kind(hs.Kind) {
	case KindMode:
		st.Mode = hs.stringValue()
	case KindWeight:
		st.Weight = hs.stringValue()
	case KindDelay:
		st.Delay = hs.stringValue()
	case KindClick:
		if hs.X == nil || hs.Y == nil {
			return st, fmt.Errorf("%w: click needs x and y", ErrBadStep)
		}
		st.Click = &builder.Point{X: *hs.X, Y: *hs.Y}
	case KindRun:
		st.Run = hs.startValue()
	case KindPaths:
		st.Paths = hs.startValue()
	case KindWait:
		st.Wait = true
	case KindReset:
		st.Reset = true
	case KindPreset:
		st.Preset = hs.spec()
	default:
		return st, fmt.Errorf("%w: unknown step %q", ErrBadStep, hs.Kind)
	}

	return st, nil
}

// stringValue returns value, or "" when absent so the step is still well formed.
func (hs *hclStep) stringValue() *string {
	if hs.Value != nil {
		return hs.Value
	}
	empty := ""

	return &empty
}

// startValue returns start, defaulting to node 0.
func (hs *hclStep) startValue() *int {
	if hs.Start != nil {
		return hs.Start
	}
	zero := 0

	return &zero
}

func (hs *hclStep) spec() *builder.Spec {
	sp := &builder.Spec{Weight: hs.Weight}
	if hs.Name != nil {
		sp.Name = *hs.Name
	}
	if hs.N != nil {
		sp.N = *hs.N
	}
	if hs.M != nil {
		sp.M = *hs.M
	}
	if hs.CenterX != nil || hs.CenterY != nil {
		sp.Center = &builder.Point{X: builder.DefaultCenterX, Y: builder.DefaultCenterY}
		if hs.CenterX != nil {
			sp.Center.X = *hs.CenterX
		}
		if hs.CenterY != nil {
			sp.Center.Y = *hs.CenterY
		}
	}
	if hs.Spacing != nil {
		sp.Spacing = *hs.Spacing
	}
	if hs.MinWeight != nil {
		sp.MinWeight = *hs.MinWeight
	}
	if hs.MaxWeight != nil {
		sp.MaxWeight = *hs.MaxWeight
	}
	if hs.Seed != nil {
		sp.Seed = *hs.Seed
	}

	return sp
}
