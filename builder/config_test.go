// Package builder contains unit tests for the configuration primitives
// (builderConfig and BuilderOption).
package builder

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/attrgraph/core"
)

// TestIDSchemeOptions verifies that ID scheme options are applied in order (last wins).
func TestIDSchemeOptions(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "7", newBuilderConfig().idFn(7))
	assert.Equal(t, "A", newBuilderConfig(WithSymbolIDs()).idFn(0))
	assert.Equal(t, "AB", newBuilderConfig(WithExcelColumnIDs()).idFn(27))
	assert.Equal(t, "n3", newBuilderConfig(WithPrefixIDs("n")).idFn(3))

	cfg := newBuilderConfig(WithSymbolIDs(), WithIDScheme(DefaultIDFn))
	assert.Equal(t, "4", cfg.idFn(4))
}

// TestRandOptions verifies seeding and explicit RNG injection.
func TestRandOptions(t *testing.T) {
	t.Parallel()

	assert.Nil(t, newBuilderConfig().rng)

	a := newBuilderConfig(WithSeed(5))
	b := newBuilderConfig(WithSeed(5))
	require.NotNil(t, a.rng)
	assert.Equal(t, a.rng.Int63(), b.rng.Int63())

	r := rand.New(rand.NewSource(9))
	assert.Same(t, r, newBuilderConfig(WithRand(r)).rng)
}

// TestPartitionPrefix verifies empty prefixes fall back to defaults.
func TestPartitionPrefix(t *testing.T) {
	t.Parallel()

	cfg := newBuilderConfig(WithPartitionPrefix("U", ""))
	assert.Equal(t, "U", cfg.leftPrefix)
	assert.Equal(t, defaultRightPrefix, cfg.rightPrefix)
}

// TestOptionPanics verifies nil-function options fail fast.
func TestOptionPanics(t *testing.T) {
	t.Parallel()

	assert.Panics(t, func() { WithIDScheme(nil) })
	assert.Panics(t, func() { WithRand(nil) })
	assert.Panics(t, func() { WithEdgeAttrs(nil) })
	assert.Panics(t, func() { WithNodeAttrs(nil) })
}

// TestConfigHelpers exercises addNodes/addEdge on a bare graph.
func TestConfigHelpers(t *testing.T) {
	t.Parallel()

	g := core.NewGraph[string]()
	cfg := newBuilderConfig(WithSymbolIDs())
	ids := cfg.addNodes(g, 3)
	assert.Equal(t, []string{"A", "B", "C"}, ids)

	cfg.addEdge(g, "A", "C")
	attrs, err := g.EdgeAttrs("C", "A")
	require.NoError(t, err)
	assert.Empty(t, attrs)
}
