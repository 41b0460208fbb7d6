// SPDX-License-Identifier: MIT
//
// File: api.go
// Role: Graph-level attribute facade (GraphAttrs, Name/SetName, String) and Stats.
// Policy:
//   - "name" is ordinary graph attribute data; Name/SetName are sugar over it.
//   - No topology mutation happens here.

package core

// GraphAttrs returns the live graph-level attribute map.
//
// Behavior highlights:
//   - Writes through the returned map are visible to Name() and String().
//   - The map is never nil.
//
// Complexity:
//   - Time O(1), Space O(1).
func (g *Graph[K]) GraphAttrs() Attrs {
	return g.graph
}

// Name returns the "name" graph attribute, or "" when it is unset or not a string.
func (g *Graph[K]) Name() string {
	s, _ := g.graph[nameKey].(string)

	return s
}

// SetName stores s under the "name" graph attribute.
func (g *Graph[K]) SetName(s string) {
	g.graph[nameKey] = s
}

// String returns the graph name, so fmt verbs print a Graph by name.
func (g *Graph[K]) String() string {
	return g.Name()
}

// GraphStats is a read-only snapshot of catalog sizes.
type GraphStats struct {
	Name          string
	NodeCount     int
	EdgeCount     int
	SelfLoopCount int
}

// Stats produces a snapshot of the graph's name and catalog sizes.
//
// Implementation:
//   - Stage 1: Record name and node count.
//   - Stage 2: Walk adjacency once, counting bucket entries and self-loops.
//
// Returns:
//   - *GraphStats: immutable-by-convention snapshot.
//
// Complexity:
//   - Time O(N), Space O(1).
func (g *Graph[K]) Stats() *GraphStats {
	edges, loops := g.countEdges()

	return &GraphStats{
		Name:          g.Name(),
		NodeCount:     len(g.node),
		EdgeCount:     edges,
		SelfLoopCount: loops,
	}
}
