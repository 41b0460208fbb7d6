// SPDX-License-Identifier: MIT
// Package: attrgraph/builder
//
// config.go - internal configuration and deterministic defaults.
//
// Deterministic defaults:
//   • idFn       = DefaultIDFn        ("0","1","2",...)
//   • rng        = nil                (pure/deterministic unless seeded)
//   • edgeAttrFn = nil                (edges carry no attributes)
//   • nodeAttrFn = nil                (nodes carry no attributes)
//   • left/right = "L" / "R"

package builder

import (
	"fmt"
	"math/rand"

	"github.com/katalvlaran/attrgraph/core"
)

// builderConfig aggregates all knobs used by constructors.
// It is passed by VALUE to constructors.
type builderConfig struct {
	// Node ID strategy: index -> ID.
	idFn IDFn
	// RNG for stochastic choices; nil means “no randomness”.
	rng *rand.Rand
	// Per-edge attribute generator; nil leaves edges bare.
	edgeAttrFn EdgeAttrFn
	// Per-node attribute generator; nil leaves nodes bare.
	nodeAttrFn func(idx int) core.Attrs

	// Bipartite ID prefixes (left/right). Empty → defaults resolved below.
	leftPrefix  string
	rightPrefix string
}

const (
	defaultLeftPrefix  = "L"
	defaultRightPrefix = "R"
)

// newBuilderConfig constructs a config with deterministic defaults and applies
// all options in order (last wins).
// Complexity: O(len(opts)) time, O(1) space.
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		idFn:        DefaultIDFn,
		leftPrefix:  defaultLeftPrefix,
		rightPrefix: defaultRightPrefix,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	if cfg.leftPrefix == "" {
		cfg.leftPrefix = defaultLeftPrefix
	}
	if cfg.rightPrefix == "" {
		cfg.rightPrefix = defaultRightPrefix
	}

	return cfg
}

// resolveIDs names indices 0..n-1 without touching any graph. A panicking
// IDFn surfaces as ErrIDSpaceExhausted.
func (cfg builderConfig) resolveIDs(n int) (ids []string, err error) {
	var i int
	defer func() {
		if r := recover(); r != nil {
			ids, err = nil, fmt.Errorf("idFn(%d) of %d: %v: %w", i, n, r, ErrIDSpaceExhausted)
		}
	}()

	ids = make([]string, n)
	for i = 0; i < n; i++ {
		ids[i] = cfg.idFn(i)
	}

	return ids, nil
}

// addNodes inserts n nodes named by cfg.idFn(0..n-1), in index order, with
// cfg.nodeAttrFn attributes when set. All ids are resolved first, so on error
// g is untouched. It returns the ids for reuse by the caller.
func (cfg builderConfig) addNodes(g *core.Graph[string], n int) ([]string, error) {
	ids, err := cfg.resolveIDs(n)
	if err != nil {
		return nil, err
	}
	for i, id := range ids {
		if cfg.nodeAttrFn != nil {
			g.AddNode(id, cfg.nodeAttrFn(i))
		} else {
			g.AddNode(id)
		}
	}

	return ids, nil
}

// addEdge links u and v with cfg.edgeAttrFn attributes when set.
func (cfg builderConfig) addEdge(g *core.Graph[string], u, v string) {
	if cfg.edgeAttrFn != nil {
		g.AddEdge(u, v, cfg.edgeAttrFn(u, v, cfg.rng))

		return
	}
	g.AddEdge(u, v)
}
