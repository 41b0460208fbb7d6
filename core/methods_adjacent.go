// File: methods_adjacent.go
// Role: Neighborhood APIs (Neighbors, NeighborsOf).
// Determinism:
//   - Neighbors() returns ids in adjacency insertion order.
//   - NeighborsOf() returns a map; use Neighbors() for an ordered walk.

package core

import "fmt"

// Neighbors returns the ids adjacent to id. A self-loop lists id itself once.
//
// Implementation:
//   - Stage 1: Validate presence (ErrNodeNotFound).
//   - Stage 2: Collect bucket keys and sort them by adjacency insertion sequence.
//
// Returns:
//   - []K: freshly allocated; safe to retain and mutate.
//
// Errors:
//   - ErrNodeNotFound: id is not a node.
//
// Complexity:
//   - Time O(d log d), Space O(d).
func (g *Graph[K]) Neighbors(id K) ([]K, error) {
	if _, ok := g.adj[id]; !ok {
		return nil, fmt.Errorf("Neighbors(%v): %w", id, ErrNodeNotFound)
	}

	return g.bucketOrder(id), nil
}

// NeighborsOf returns the adjacency of id as neighbor id -> edge attributes.
//
// Behavior highlights:
//   - The outer map is a fresh copy: adding or deleting keys in it does not
//     touch the graph.
//   - The Attrs values are the live edge maps and must be treated as read-only;
//     use AddEdge/RemoveEdge to change edges.
//
// Errors:
//   - ErrNodeNotFound: id is not a node.
//
// Complexity:
//   - Time O(d), Space O(d).
func (g *Graph[K]) NeighborsOf(id K) (map[K]Attrs, error) {
	bucket, ok := g.adj[id]
	if !ok {
		return nil, fmt.Errorf("NeighborsOf(%v): %w", id, ErrNodeNotFound)
	}

	out := make(map[K]Attrs, len(bucket))
	var w K
	var rec *adjRecord
	for w, rec = range bucket {
		out[w] = rec.attrs
	}

	return out, nil
}
