// File: methods_edges.go
// Role: Edge lifecycle & queries: AddEdge/RemoveEdge/HasEdge/EdgeAttrs/Edges/EdgeCount.
// Determinism:
//   - Edges() lists each undirected edge once, ordered by first endpoint
//     (node insertion order) then by the endpoint's adjacency insertion order.
// Invariants kept by every mutation here:
//   - adj[u][v] exists iff adj[v][u] exists, and both share one Attrs map.
//   - at most one record per unordered pair {u,v}.

package core

import (
	"fmt"
	"sort"
)

// AddEdge connects u and v, creating missing endpoints, and merges attrs into
// the edge's attribute map.
//
// Steps:
//  1. Ensure u and v exist as nodes (empty attributes when created here).
//  2. If {u,v} already exists, overlay attrs on the shared map and stop.
//  3. Otherwise allocate one Attrs map, link adj[u][v] and, when u != v, adj[v][u].
//
// A repeated AddEdge(u, v) never creates a parallel edge and never reorders
// the neighbor buckets.
//
// Complexity: O(1) amortized plus O(len(attrs)).
func (g *Graph[K]) AddEdge(u, v K, attrs ...Attrs) {
	g.ensureNode(u)
	g.ensureNode(v)

	if rec, ok := g.adj[u][v]; ok {
		for _, a := range attrs {
			rec.attrs.merge(a)
		}

		return
	}

	shared := make(Attrs)
	for _, a := range attrs {
		shared.merge(a)
	}
	g.adj[u][v] = &adjRecord{seq: g.seq(), attrs: shared}
	if u != v {
		g.adj[v][u] = &adjRecord{seq: g.seq(), attrs: shared}
	}
}

// AddEdgesFrom applies AddEdge to each spec in order.
func (g *Graph[K]) AddEdgesFrom(edges ...EdgeSpec[K]) {
	for _, e := range edges {
		g.AddEdge(e.U, e.V, e.Attrs)
	}
}

// AddPath links consecutive ids: (ids[0],ids[1]), (ids[1],ids[2]), ...
// Every edge receives the same attrs overlay. A single id just adds the node;
// no ids is a no-op.
func (g *Graph[K]) AddPath(ids []K, attrs ...Attrs) {
	if len(ids) == 1 {
		g.ensureNode(ids[0])

		return
	}
	for i := 1; i < len(ids); i++ {
		g.AddEdge(ids[i-1], ids[i], attrs...)
	}
}

// RemoveEdge deletes the edge {u,v}. Both endpoints stay in the graph.
//
// Errors:
//   - ErrEdgeNotFound: no edge joins u and v (including when u is absent).
//
// Complexity: O(1).
func (g *Graph[K]) RemoveEdge(u, v K) error {
	if _, ok := g.adj[u][v]; !ok {
		return fmt.Errorf("RemoveEdge(%v, %v): %w", u, v, ErrEdgeNotFound)
	}
	delete(g.adj[u], v)
	if u != v {
		delete(g.adj[v], u)
	}

	return nil
}

// RemoveEdgesFrom removes every listed edge; absent edges are skipped silently.
func (g *Graph[K]) RemoveEdgesFrom(edges ...EdgeSpec[K]) {
	for _, e := range edges {
		_ = g.RemoveEdge(e.U, e.V)
	}
}

// HasEdge reports whether an edge joins u and v. Absent endpoints yield false.
// Complexity: O(1).
func (g *Graph[K]) HasEdge(u, v K) bool {
	_, ok := g.adj[u][v]

	return ok
}

// EdgeAttrs returns the live attribute map of {u,v}. The same map is seen
// from both ends, so EdgeAttrs(u, v) and EdgeAttrs(v, u) alias.
//
// Errors:
//   - ErrEdgeNotFound: no edge joins u and v.
func (g *Graph[K]) EdgeAttrs(u, v K) (Attrs, error) {
	rec, ok := g.adj[u][v]
	if !ok {
		return nil, fmt.Errorf("EdgeAttrs(%v, %v): %w", u, v, ErrEdgeNotFound)
	}

	return rec.attrs, nil
}

// Edges returns every edge exactly once. Attrs of each spec is the live edge map.
//
// Complexity: O(N log N + E log d) for the ordering passes.
func (g *Graph[K]) Edges() []EdgeSpec[K] {
	out := make([]EdgeSpec[K], 0, g.EdgeCount())
	seen := make(map[K]struct{}, len(g.node))

	var u K
	for _, u = range g.Nodes() {
		for _, v := range g.bucketOrder(u) {
			if _, done := seen[v]; done {
				continue // already emitted from v's side
			}
			out = append(out, EdgeSpec[K]{U: u, V: v, Attrs: g.adj[u][v].attrs})
		}
		seen[u] = struct{}{}
	}

	return out
}

// EdgeCount returns the number of edges (unordered pairs; a self-loop counts once).
//
// Complexity: O(N).
func (g *Graph[K]) EdgeCount() int {
	edges, _ := g.countEdges()

	return edges
}

// countEdges walks the adjacency buckets once and returns the edge count and
// the self-loop count.
func (g *Graph[K]) countEdges() (edges, loops int) {
	var total int
	var id K
	var bucket map[K]*adjRecord
	for id, bucket = range g.adj {
		total += len(bucket)
		if _, ok := bucket[id]; ok {
			loops++
		}
	}

	// every non-loop edge is counted from both ends
	return (total-loops)/2 + loops, loops
}

// bucketOrder returns the neighbor ids of id sorted by adjacency insertion order.
// id must be present.
func (g *Graph[K]) bucketOrder(id K) []K {
	bucket := g.adj[id]
	out := make([]K, 0, len(bucket))
	var w K
	for w = range bucket {
		out = append(out, w)
	}
	sort.Slice(out, func(i, j int) bool { return bucket[out[i]].seq < bucket[out[j]].seq })

	return out
}
