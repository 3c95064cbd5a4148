// SPDX-License-Identifier: MIT
// Package: pathboard/builder
//
// errors.go - sentinel errors shared by every constructor.

package builder

import "errors"

// ErrTooFewVertices indicates a size parameter below the constructor's minimum.
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrConstructFailed indicates a structural failure such as a nil constructor.
var ErrConstructFailed = errors.New("builder: construction failed")

// ErrUnknownPreset indicates Preset was given an unrecognised name.
var ErrUnknownPreset = errors.New("builder: unknown preset")

// ErrInvalidSpec indicates a Spec with out-of-range layout or weight fields.
var ErrInvalidSpec = errors.New("builder: invalid preset spec")
