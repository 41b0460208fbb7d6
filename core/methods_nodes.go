// File: methods_nodes.go
// Role: Node lifecycle & queries.
//
// Determinism:
//   - Nodes() and All() enumerate ids in insertion order (re-adding keeps position).
//
// Concurrency:
//   - None. Graph has no internal locks; see SyncGraph.
package core

import (
	"fmt"
	"iter"
	"sort"
)

// AddNode inserts id if missing, then merges attrs into its attribute map.
//
// Implementation:
//   - Stage 1: If id is absent, allocate a node record and an empty adjacency bucket.
//   - Stage 2: Overlay every attrs map in order (last write wins per key).
//
// Behavior highlights:
//   - Idempotent for presence: re-adding an existing node never errors and never
//     drops existing attribute keys.
//
// Notes:
//   - K must be hashable at runtime; a Graph[any] fed a slice panics like any Go map.
//
// Complexity:
//   - Time O(1) amortized plus O(len(attrs)), Space O(1).
func (g *Graph[K]) AddNode(id K, attrs ...Attrs) {
	rec := g.ensureNode(id)
	for _, a := range attrs {
		rec.attrs.merge(a)
	}
}

// AddNodesFrom applies AddNode to each spec in order.
// Duplicate ids with differing attributes resolve last-wins per key.
func (g *Graph[K]) AddNodesFrom(specs ...NodeSpec[K]) {
	for _, s := range specs {
		g.AddNode(s.ID, s.Attrs)
	}
}

// AddNodeIDs adds bare node ids in order.
func (g *Graph[K]) AddNodeIDs(ids ...K) {
	for _, id := range ids {
		g.ensureNode(id)
	}
}

// RemoveNode deletes a node and every incident edge.
//
// Implementation:
//   - Stage 1: Verify presence (ErrNodeNotFound).
//   - Stage 2: For every neighbor w, delete id from adj[w].
//   - Stage 3: Delete adj[id] and node[id].
//
// Errors:
//   - ErrNodeNotFound: id is not a node.
//
// Complexity:
//   - Time O(deg(id)), Space O(1).
func (g *Graph[K]) RemoveNode(id K) error {
	bucket, ok := g.adj[id]
	if !ok {
		return fmt.Errorf("RemoveNode(%v): %w", id, ErrNodeNotFound)
	}

	var w K
	for w = range bucket {
		delete(g.adj[w], id) // w == id for a self-loop; bucket is dropped below anyway
	}
	delete(g.adj, id)
	delete(g.node, id)

	return nil
}

// RemoveNodesFrom removes every listed node; absent ids are skipped silently.
func (g *Graph[K]) RemoveNodesFrom(ids ...K) {
	for _, id := range ids {
		_ = g.RemoveNode(id)
	}
}

// HasNode reports whether id is a node.
func (g *Graph[K]) HasNode(id K) bool {
	_, ok := g.node[id]

	return ok
}

// Contains reports whether x is a node of g.
//
// Unlike HasNode it accepts any value and never panics: a value of another
// type, or one whose dynamic type cannot be hashed (a slice stored in an
// interface key, for example), is reported as absent.
func (g *Graph[K]) Contains(x any) (found bool) {
	id, ok := x.(K)
	if !ok {
		return false
	}
	defer func() {
		if recover() != nil {
			found = false
		}
	}()

	return g.HasNode(id)
}

// NodeCount returns the number of nodes. Complexity: O(1).
func (g *Graph[K]) NodeCount() int { return len(g.node) }

// Len is an alias for NodeCount.
func (g *Graph[K]) Len() int { return len(g.node) }

// Nodes returns a snapshot of node ids in insertion order.
//
// Complexity: O(N log N).
func (g *Graph[K]) Nodes() []K {
	ids := make([]K, 0, len(g.node))
	var id K
	for id = range g.node {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return g.node[ids[i]].seq < g.node[ids[j]].seq })

	return ids
}

// All returns a sequence over the node ids present when All is called.
//
// The snapshot is taken eagerly, so the sequence can be ranged over any
// number of times and always yields the same ids. Mutating the graph while
// ranging is allowed but is not reflected in the sequence.
func (g *Graph[K]) All() iter.Seq[K] {
	ids := g.Nodes()

	return func(yield func(K) bool) {
		for _, id := range ids {
			if !yield(id) {
				return
			}
		}
	}
}

// NodeAttrs returns the live attribute map of id.
// Writes through the returned map update the node.
//
// Errors:
//   - ErrNodeNotFound: id is not a node.
func (g *Graph[K]) NodeAttrs(id K) (Attrs, error) {
	rec, ok := g.node[id]
	if !ok {
		return nil, fmt.Errorf("NodeAttrs(%v): %w", id, ErrNodeNotFound)
	}

	return rec.attrs, nil
}

// Degree returns the number of edges incident to id.
// A self-loop contributes 2, following the usual graph-theory convention.
//
// Errors:
//   - ErrNodeNotFound: id is not a node.
func (g *Graph[K]) Degree(id K) (int, error) {
	bucket, ok := g.adj[id]
	if !ok {
		return 0, fmt.Errorf("Degree(%v): %w", id, ErrNodeNotFound)
	}
	deg := len(bucket)
	if _, loop := bucket[id]; loop {
		deg++
	}

	return deg, nil
}

// ensureNode returns the record for id, creating it and its adjacency bucket
// when absent. Invariant: node and adj always share the same key set.
func (g *Graph[K]) ensureNode(id K) *nodeRecord {
	if rec, ok := g.node[id]; ok {
		return rec
	}
	rec := &nodeRecord{seq: g.seq(), attrs: make(Attrs)}
	g.node[id] = rec
	g.adj[id] = make(map[K]*adjRecord)

	return rec
}
