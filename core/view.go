// File: view.go
// Role: Non-mutating graph views (copies of part of the topology).
// Determinism:
//   - Preserves node/edge insertion order of the source.

package core

// Subgraph returns a new Graph induced by ids: the listed nodes that exist in g,
// and every edge of g whose endpoints are both among them. Unknown ids are
// ignored. The input graph is not mutated and shares no maps with the result.
//
// Graph-level attributes are copied so the subgraph keeps the source's name.
//
// Complexity: O(N + E). Concurrency: none; callers serialize as for any read.
func (g *Graph[K]) Subgraph(ids ...K) *Graph[K] {
	out := &Graph[K]{
		graph:   g.graph.clone(),
		node:    make(map[K]*nodeRecord, len(ids)),
		adj:     make(map[K]map[K]*adjRecord, len(ids)),
		nextSeq: g.nextSeq,
	}

	keep := make(map[K]struct{}, len(ids))
	for _, id := range ids {
		rec, ok := g.node[id]
		if !ok {
			continue
		}
		if _, dup := keep[id]; dup {
			continue
		}
		keep[id] = struct{}{}
		out.node[id] = &nodeRecord{seq: rec.seq, attrs: rec.attrs.clone()}
		out.adj[id] = make(map[K]*adjRecord)
	}
	copyEdges(out, g, keep)

	return out
}
