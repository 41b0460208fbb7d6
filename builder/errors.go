// SPDX-License-Identifier: MIT
// Package: attrgraph/builder
//
// errors.go - sentinel errors for the builder package.
//
// Error policy:
//   • Only sentinel variables are exposed; callers use errors.Is.
//   • Constructors attach context with %w ("Path: n=1 < min=2: ...").

package builder

import "errors"

// ErrTooFewNodes indicates a size parameter below the constructor's minimum.
var ErrTooFewNodes = errors.New("builder: parameter too small")

// ErrInvalidProbability indicates a probability outside [0,1].
var ErrInvalidProbability = errors.New("builder: probability out of range")

// ErrNeedRandSource indicates a stochastic constructor ran without WithSeed/WithRand.
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrIDSpaceExhausted indicates the IDFn cannot name every requested node
// (e.g. SymbolIDFn past "Z").
var ErrIDSpaceExhausted = errors.New("builder: id scheme exhausted")

// ErrConstructFailed indicates a programmer error in the build pipeline
// (nil graph, nil constructor).
var ErrConstructFailed = errors.New("builder: construction failed")
