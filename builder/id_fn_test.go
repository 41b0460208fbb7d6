package builder_test

import (
	"math/rand"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/attrgraph/builder"
	"github.com/katalvlaran/attrgraph/core"
)

// TestIDFns verifies each IDFn on valid inputs and panics on invalid ones.
func TestIDFns(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		fn          builder.IDFn
		input       int
		want        string
		shouldPanic bool
	}{
		{"DefaultIDFn_zero", builder.DefaultIDFn, 0, "0", false},
		{"DefaultIDFn_multi", builder.DefaultIDFn, 123, "123", false},
		{"SymbolIDFn_min", builder.SymbolIDFn, 0, "A", false},
		{"SymbolIDFn_max", builder.SymbolIDFn, 25, "Z", false},
		{"SymbolIDFn_over", builder.SymbolIDFn, 26, "", true},
		{"SymbolIDFn_neg", builder.SymbolIDFn, -1, "", true},
		{"Excel_A", builder.ExcelColumnIDFn, 0, "A", false},
		{"Excel_Z", builder.ExcelColumnIDFn, 25, "Z", false},
		{"Excel_AA", builder.ExcelColumnIDFn, 26, "AA", false},
		{"Excel_AZ", builder.ExcelColumnIDFn, 51, "AZ", false},
		{"Excel_BA", builder.ExcelColumnIDFn, 52, "BA", false},
		{"Excel_AAA", builder.ExcelColumnIDFn, 702, "AAA", false},
		{"Excel_neg", builder.ExcelColumnIDFn, -1, "", true},
		{"Prefix", builder.PrefixIDFn("city-"), 4, "city-4", false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			if tc.shouldPanic {
				assert.Panics(t, func() { tc.fn(tc.input) })

				return
			}
			assert.Equal(t, tc.want, tc.fn(tc.input))
		})
	}
}

// TestEdgeAttrFns verifies the bundled attribute generators.
func TestEdgeAttrFns(t *testing.T) {
	t.Parallel()

	uw := builder.UniformWeight("w", 2, 4)
	assert.Equal(t, core.Attrs{"w": 2.0}, uw("a", "b", nil))

	r := rand.New(rand.NewSource(3))
	for i := 0; i < 50; i++ {
		w := uw("a", "b", r)["w"].(float64)
		assert.GreaterOrEqual(t, w, 2.0)
		assert.Less(t, w, 4.0)
	}

	src := core.Attrs{"color": "red"}
	ca := builder.ConstantAttrs(src)
	out := ca("a", "b", nil)
	assert.Equal(t, src, out)
	out["color"] = "blue"
	assert.Equal(t, "red", src["color"])
}

// TestUUIDIDFn verifies name-based UUID ids are stable and namespace-scoped.
func TestUUIDIDFn(t *testing.T) {
	t.Parallel()

	fn := builder.UUIDIDFn(uuid.NameSpaceOID)
	a, b := fn(3), fn(3)
	assert.Equal(t, a, b)
	assert.NotEqual(t, fn(3), fn(4))
	assert.NotEqual(t, a, builder.UUIDIDFn(uuid.NameSpaceURL)(3))

	parsed, err := uuid.Parse(a)
	require.NoError(t, err)
	assert.Equal(t, uuid.Version(5), parsed.Version())

	g, err := builder.BuildGraph(nil,
		[]builder.BuilderOption{builder.WithUUIDIDs(uuid.NameSpaceOID)},
		builder.Path(3),
	)
	require.NoError(t, err)
	assert.True(t, g.HasEdge(fn(0), fn(1)))
}
