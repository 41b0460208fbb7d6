// Package builder: node ID schemes and edge attribute generators.
package builder

import (
	"fmt"
	"math/rand"
	"strconv"

	"github.com/google/uuid"

	"github.com/katalvlaran/attrgraph/core"
)

// IDFn generates a node identifier from its zero-based index.
// It must be pure: the same idx always yields the same id.
type IDFn func(idx int) string

// DefaultIDFn returns the decimal string of idx, e.g. 0→"0", 42→"42".
func DefaultIDFn(idx int) string {
	return strconv.Itoa(idx)
}

// SymbolIDFn returns the uppercase Latin letter for idx in [0..25].
// Panics outside that range.
func SymbolIDFn(idx int) string {
	if idx < 0 || idx > 25 {
		panic(fmt.Sprintf("SymbolIDFn: idx must be in [0,25], got %d", idx))
	}

	return string('A' + rune(idx))
}

// ExcelColumnIDFn returns the spreadsheet column name for idx: 0→"A", 25→"Z", 26→"AA".
// Panics if idx < 0.
func ExcelColumnIDFn(idx int) string {
	if idx < 0 {
		panic(fmt.Sprintf("ExcelColumnIDFn: idx must be ≥ 0, got %d", idx))
	}
	var buf []byte
	for i := idx; i >= 0; i = i/26 - 1 {
		buf = append([]byte{byte('A' + i%26)}, buf...)
	}

	return string(buf)
}

// PrefixIDFn returns an IDFn producing prefix + decimal index ("v0", "v1", ...).
func PrefixIDFn(prefix string) IDFn {
	return func(idx int) string { return prefix + strconv.Itoa(idx) }
}

// UUIDIDFn returns an IDFn producing name-based (SHA-1, version 5) UUIDs of
// the decimal index under namespace. Ids are stable across runs for the same
// namespace, and distinct namespaces give disjoint id sets.
func UUIDIDFn(namespace uuid.UUID) IDFn {
	return func(idx int) string {
		return uuid.NewSHA1(namespace, []byte(strconv.Itoa(idx))).String()
	}
}

// EdgeAttrFn produces the attribute map for edge (u, v). rng is the configured
// source and may be nil for deterministic builds.
type EdgeAttrFn func(u, v string, rng *rand.Rand) core.Attrs

// ConstantAttrs returns an EdgeAttrFn giving every edge a copy of attrs.
func ConstantAttrs(attrs core.Attrs) EdgeAttrFn {
	return func(string, string, *rand.Rand) core.Attrs {
		out := make(core.Attrs, len(attrs))
		for k, v := range attrs {
			out[k] = v
		}

		return out
	}
}

// UniformWeight returns an EdgeAttrFn drawing key ∼ U[lo, hi) from rng.
// With a nil rng the weight is lo.
func UniformWeight(key string, lo, hi float64) EdgeAttrFn {
	return func(_, _ string, rng *rand.Rand) core.Attrs {
		if rng == nil {
			return core.Attrs{key: lo}
		}

		return core.Attrs{key: lo + rng.Float64()*(hi-lo)}
	}
}
