// SPDX-License-Identifier: MIT
// Package: attrgraph/builder
//
// api.go - thin public entry-point for the builder package.
//
// Design contract:
//   - One orchestrator: BuildGraph(gopts, bopts, cons...). Creates g, resolves cfg, runs cons in order.
//   - Factories live in impl_*.go; each returns a Constructor closure.
//   - Functional options (BuilderOption) resolve into a builderConfig passed by value.
//   - Determinism: same inputs/options/seed and constructor order ⇒ identical graphs.

package builder

import (
	"fmt"

	"github.com/katalvlaran/attrgraph/core"
)

// Constructor applies a deterministic graph mutation using the resolved
// builderConfig. Constructors validate parameters before touching g and
// return sentinel errors; they never panic.
type Constructor func(g *core.Graph[string], cfg builderConfig) error

// BuildGraph creates a new core.Graph with graph options gopts, resolves the
// builder configuration from bopts, and applies all constructors in order.
// Any constructor error is wrapped with the context "BuildGraph: %w" and
// returned immediately; no partial cleanup is attempted.
//
// Complexity:
//   - Resolving options: O(len(bopts)).
//   - Applying K constructors: Σ cost of each constructor.
//
// Errors:
//   - Wraps constructor errors via %w; branch with errors.Is against
//     ErrTooFewNodes, ErrInvalidProbability, ErrNeedRandSource, ErrIDSpaceExhausted,
//     ErrConstructFailed.
func BuildGraph(gopts []core.GraphOption[string], bopts []BuilderOption, cons ...Constructor) (*core.Graph[string], error) {
	g := core.NewGraph(gopts...)
	if err := Apply(g, bopts, cons...); err != nil {
		return nil, fmt.Errorf("BuildGraph: %w", err)
	}

	return g, nil
}

// Apply runs constructors against an existing graph. Re-running a constructor
// with the same options is idempotent: nodes and edges merge rather than duplicate.
//
// A panic raised by a user-supplied IDFn, EdgeAttrFn or node attribute function
// is recovered and returned as ErrConstructFailed.
func Apply(g *core.Graph[string], bopts []BuilderOption, cons ...Constructor) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("Apply: recovered %v: %w", r, ErrConstructFailed)
		}
	}()
	if g == nil {
		return fmt.Errorf("Apply: nil graph: %w", ErrConstructFailed)
	}
	cfg := newBuilderConfig(bopts...)

	for i, fn := range cons {
		if fn == nil {
			return fmt.Errorf("nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err = fn(g, cfg); err != nil {
			return err
		}
	}

	return nil
}
