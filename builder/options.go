// SPDX-License-Identifier: MIT
// Package: attrgraph/builder
//
// options.go - functional options for the builder package.
//
// Contract:
//   • Options are functional (type BuilderOption func(*builderConfig)).
//   • Option constructors PANIC on meaningless inputs (nil functions);
//     constructors themselves never panic.
//   • Seeding is explicit: WithSeed or WithRand.

package builder

import (
	"math/rand"

	"github.com/google/uuid"

	"github.com/katalvlaran/attrgraph/core"
)

// BuilderOption customizes constructors by mutating a builderConfig.
type BuilderOption func(*builderConfig)

// WithIDScheme sets the node ID generator: idx -> string.
// Panics on nil.
func WithIDScheme(fn IDFn) BuilderOption {
	if fn == nil {
		panic("builder: WithIDScheme(nil)")
	}

	return func(c *builderConfig) { c.idFn = fn }
}

// WithSymbolIDs names nodes "A".."Z".
func WithSymbolIDs() BuilderOption { return WithIDScheme(SymbolIDFn) }

// WithExcelColumnIDs names nodes "A".."Z","AA","AB",...
func WithExcelColumnIDs() BuilderOption { return WithIDScheme(ExcelColumnIDFn) }

// WithPrefixIDs names nodes prefix+"0", prefix+"1", ...
func WithPrefixIDs(prefix string) BuilderOption { return WithIDScheme(PrefixIDFn(prefix)) }

// WithUUIDIDs names nodes with version-5 UUIDs derived from namespace.
func WithUUIDIDs(namespace uuid.UUID) BuilderOption { return WithIDScheme(UUIDIDFn(namespace)) }

// WithRand provides an explicit RNG for stochastic builders. Panics on nil.
func WithRand(r *rand.Rand) BuilderOption {
	if r == nil {
		panic("builder: WithRand(nil)")
	}

	return func(c *builderConfig) { c.rng = r }
}

// WithSeed creates a new *rand.Rand with the given seed.
func WithSeed(seed int64) BuilderOption {
	return func(c *builderConfig) { c.rng = rand.New(rand.NewSource(seed)) }
}

// WithEdgeAttrs sets the per-edge attribute generator. Panics on nil.
func WithEdgeAttrs(fn EdgeAttrFn) BuilderOption {
	if fn == nil {
		panic("builder: WithEdgeAttrs(nil)")
	}

	return func(c *builderConfig) { c.edgeAttrFn = fn }
}

// WithNodeAttrs sets the per-node attribute generator, keyed by node index.
// Panics on nil.
func WithNodeAttrs(fn func(idx int) core.Attrs) BuilderOption {
	if fn == nil {
		panic("builder: WithNodeAttrs(nil)")
	}

	return func(c *builderConfig) { c.nodeAttrFn = fn }
}

// WithPartitionPrefix sets bipartite side labels. Empty values mean “use defaults”.
func WithPartitionPrefix(left, right string) BuilderOption {
	return func(c *builderConfig) { c.leftPrefix, c.rightPrefix = left, right }
}
