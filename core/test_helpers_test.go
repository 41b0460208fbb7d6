// SPDX-License-Identifier: MIT
// Package core_test contains test fixtures for attrgraph/core.
//
// Purpose:
//   - Provide small, deterministic fixtures shared across core tests.
//   - Keep magic ids and attribute keys out of test bodies.

package core_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/attrgraph/core"
)

// Common node ids used across core tests.
const (
	Node1  = 1
	Node2  = 2
	Node3  = 3
	Node4  = 4
	Node5  = 5
	Node99 = 99
)

// Common string ids used by tests that need string keys.
const (
	NodeA = "A"
	NodeB = "B"
	NodeC = "C"
	NodeX = "X"
)

// Common attribute keys and graph names.
const (
	KeyWeight = "weight"
	KeyColor  = "color"
	KeyLabel  = "label"

	NameDemo = "demo"
)

// Common concurrency sizes (avoid magic numbers in test bodies).
const (
	NConcurrentAdds = 200
	NReaders        = 50
	NRounds         = 100
)

// NewTriangle RETURNS the int graph with edges (1,2),(2,3),(1,3), built in that order.
//
// Notes:
//   - Node insertion order is 1, 2, 3 (created by the first two AddEdge calls).
func NewTriangle() *core.Graph[int] {
	return core.NewGraph(core.WithEdges(
		core.Edge(Node1, Node2),
		core.Edge(Node2, Node3),
		core.Edge(Node1, Node3),
	))
}

// MustNeighbors FAILS the test unless Neighbors(id) succeeds and equals want (order-sensitive).
func MustNeighbors[K comparable](t *testing.T, g *core.Graph[K], id K, want []K) {
	t.Helper()
	got, err := g.Neighbors(id)
	require.NoError(t, err, "Neighbors(%v)", id)
	require.Equal(t, want, got, "Neighbors(%v)", id)
}

// MustSymmetric FAILS the test unless every adjacency entry has a mirror
// with identical attribute content.
func MustSymmetric[K comparable](t *testing.T, g *core.Graph[K]) {
	t.Helper()
	for _, u := range g.Nodes() {
		nbrs, err := g.NeighborsOf(u)
		require.NoError(t, err)
		for v, attrs := range nbrs {
			require.True(t, g.HasEdge(v, u), "mirror of (%v,%v) missing", u, v)
			back, err := g.EdgeAttrs(v, u)
			require.NoError(t, err)
			require.Equal(t, attrs, back, "attrs of (%v,%v) differ from mirror", u, v)
		}
	}
}
