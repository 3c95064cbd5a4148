// SPDX-License-Identifier: MIT
//
// File: script.go
// Role: Script and Step types, validation and YAML parsing.

// Package script describes scripted editing sessions and replays them.
//
// A script is an ordered list of steps. Each step carries exactly one
// command: mode, weight, click, preset, run, wait, paths, delay or reset.
// Scripts are written in YAML:
//
//	name: triangle
//	steps:
//	  - mode: add_node
//	  - click: {x: 100, y: 100}
//	  - run: 0
//	  - wait: true
//
// or in HCL, one labelled block per step:
//
//	name = "triangle"
//	step "mode" { value = "add_node" }
//	step "click" {
//	  x = 100
//	  y = 100
//	}
//	step "run" { start = 0 }
//	step "wait" {}
package script

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/pathboard/builder"
)

// Sentinel errors returned while loading a script.
var (
	// ErrUnknownFormat indicates a file extension other than .yaml, .yml or .hcl.
	ErrUnknownFormat = errors.New("script: unknown format")

	// ErrBadStep indicates a step that sets zero or several commands, or an
	// unknown HCL step label.
	ErrBadStep = errors.New("script: step must set exactly one command")
)

// Kind names the command of a step.
type Kind string

// Step kinds.
const (
	KindMode   Kind = "mode"
	KindWeight Kind = "weight"
	KindClick  Kind = "click"
	KindPreset Kind = "preset"
	KindRun    Kind = "run"
	KindWait   Kind = "wait"
	KindPaths  Kind = "paths"
	KindDelay  Kind = "delay"
	KindReset  Kind = "reset"
)

// Script is a named list of steps.
type Script struct {
	Name  string `yaml:"name"`
	Steps []Step `yaml:"steps"`
}

// Step is one scripted command. Exactly one field other than AllowError is set.
type Step struct {
	Mode   *string        `yaml:"mode,omitempty"`
	Weight *string        `yaml:"weight,omitempty"`
	Click  *builder.Point `yaml:"click,omitempty"`
	Preset *builder.Spec  `yaml:"preset,omitempty"`
	Run    *int           `yaml:"run,omitempty"`
	Wait   bool           `yaml:"wait,omitempty"`
	Paths  *int           `yaml:"paths,omitempty"`
	Delay  *string        `yaml:"delay,omitempty"`
	Reset  bool           `yaml:"reset,omitempty"`

	// AllowError records a failing command in the report instead of aborting.
	AllowError bool `yaml:"allow_error,omitempty"`
}

// Kind returns the command the step carries, or ErrBadStep.
func (s Step) Kind() (Kind, error) {
	var kinds []Kind
	if s.Mode != nil {
		kinds = append(kinds, KindMode)
	}
	if s.Weight != nil {
		kinds = append(kinds, KindWeight)
	}
	if s.Click != nil {
		kinds = append(kinds, KindClick)
	}
	if s.Preset != nil {
		kinds = append(kinds, KindPreset)
	}
	if s.Run != nil {
		kinds = append(kinds, KindRun)
	}
	if s.Wait {
		kinds = append(kinds, KindWait)
	}
	if s.Paths != nil {
		kinds = append(kinds, KindPaths)
	}
	if s.Delay != nil {
		kinds = append(kinds, KindDelay)
	}
	if s.Reset {
		kinds = append(kinds, KindReset)
	}
	if len(kinds) != 1 {
		return "", fmt.Errorf("%w: found %d", ErrBadStep, len(kinds))
	}

	return kinds[0], nil
}

// Validate checks that every step carries exactly one command.
func (sc *Script) Validate() error {
	for i, st := range sc.Steps {
		if _, err := st.Kind(); err != nil {
			return fmt.Errorf("step %d: %w", i+1, err)
		}
	}

	return nil
}

// Load reads and parses the script at path; the extension selects the format.
func Load(path string) (*Script, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read script %s: %w", path, err)
	}

	return Parse(path, src)
}

// Parse decodes src, using filename's extension to pick YAML or HCL.
func Parse(filename string, src []byte) (*Script, error) {
	var (
		sc  *Script
		err error
	)
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".yaml", ".yml":
		sc, err = parseYAML(src)
	case ".hcl":
		sc, err = parseHCL(filename, src)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, filepath.Ext(filename))
	}
	if err != nil {
		return nil, fmt.Errorf("parse script %s: %w", filename, err)
	}
	if sc.Name == "" {
		sc.Name = strings.TrimSuffix(filepath.Base(filename), filepath.Ext(filename))
	}
	if err := sc.Validate(); err != nil {
		return nil, fmt.Errorf("script %s: %w", sc.Name, err)
	}

	return sc, nil
}

func parseYAML(src []byte) (*Script, error) {
	var sc Script
	if err := yaml.Unmarshal(src, &sc); err != nil {
		return nil, err
	}

	return &sc, nil
}
