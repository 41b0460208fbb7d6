// File: methods_clone.go
// Role: Cloning and clearing graph instances.
// Determinism:
//   - Clone keeps every insertion sequence, so the clone enumerates nodes,
//     neighbors and edges in the same order as the source.

package core

// Clone returns a deep copy of the Graph: graph attributes, nodes, edges.
//
// Identity:
//   - Every attribute map is shallow-copied (keys copied, values shared).
//   - Each cloned edge gets one new Attrs map shared by its two sides, so the
//     symmetry invariant holds on the clone as well.
//
// Complexity: O(N + E) plus the size of all attribute maps.
func (g *Graph[K]) Clone() *Graph[K] {
	clone := &Graph[K]{
		graph:   g.graph.clone(),
		node:    make(map[K]*nodeRecord, len(g.node)),
		adj:     make(map[K]map[K]*adjRecord, len(g.adj)),
		nextSeq: g.nextSeq,
	}

	var id K
	var rec *nodeRecord
	for id, rec = range g.node {
		clone.node[id] = &nodeRecord{seq: rec.seq, attrs: rec.attrs.clone()}
		clone.adj[id] = make(map[K]*adjRecord, len(g.adj[id]))
	}
	copyEdges(clone, g, nil)

	return clone
}

// Clear removes every node, edge and graph attribute. The insertion counter
// is reset as well.
//
// Complexity: O(1) for map reallocation.
func (g *Graph[K]) Clear() {
	g.graph = make(Attrs)
	g.node = make(map[K]*nodeRecord)
	g.adj = make(map[K]map[K]*adjRecord)
	g.nextSeq = 0
}

// copyEdges copies every edge of src whose endpoints both pass keep (nil keeps
// all) into dst. dst must already hold the endpoint nodes and their buckets.
// Each pair gets a single fresh Attrs map shared by both sides; sequences are kept.
func copyEdges[K comparable](dst, src *Graph[K], keep map[K]struct{}) {
	copied := make(map[*adjRecord]Attrs) // keyed by the source's u-side record

	var u, v K
	var bucket map[K]*adjRecord
	var rec *adjRecord
	for u, bucket = range src.adj {
		if keep != nil {
			if _, ok := keep[u]; !ok {
				continue
			}
		}
		for v, rec = range bucket {
			if keep != nil {
				if _, ok := keep[v]; !ok {
					continue
				}
			}
			// the mirror side may already have produced the shared copy
			attrs, ok := copied[src.adj[v][u]]
			if !ok {
				attrs = rec.attrs.clone()
				copied[rec] = attrs
			}
			dst.adj[u][v] = &adjRecord{seq: rec.seq, attrs: attrs}
		}
	}
}
