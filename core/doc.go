// Package core provides an in-memory, undirected, attributed Graph with a
// small, composable API surface.
//
// The Graph G = (V,E) stores:
//
//   - Nodes keyed by any comparable K, each with an attribute map (Attrs).
//   - Undirected edges, each with one attribute map seen from both endpoints.
//   - Graph-level attributes; the "name" key backs Name/SetName/String.
//   - Self-loops (stored once, adj[u][u]).
//   - No parallel edges: adding an existing edge merges attributes instead.
//
// Why use core.Graph?
//
//   - Generic node ids: ints, strings, structs, or any for mixed keys.
//   - Constant-time edge operations via nested maps: adj[u][v] -> edge attrs.
//   - Deterministic iteration: Nodes(), All(), Neighbors() and Edges() follow
//     insertion order; re-adding a node or edge never moves it.
//   - Clone and Subgraph produce independent copies.
//
// Configuration Options (GraphOption):
//
//	– WithNodes(ids...)           seed bare node ids
//	– WithNodeSpecs(specs...)     seed (id, attrs) pairs
//	– WithEdges(edges...)         seed 2-tuple (Edge) or 3-tuple (EdgeWith) edges
//	– WithGraphAttrs(attrs)       merge graph-level attributes
//	– WithName(name)              set the "name" graph attribute
//
// Seeds are materialised nodes first, then edges, then graph attributes.
//
// Core Methods:
//
//	// Node lifecycle
//	AddNode(id K, attrs ...Attrs)           // O(1), merge on re-add
//	AddNodesFrom(specs ...NodeSpec[K])      // O(n)
//	RemoveNode(id K) error                  // O(deg(id)), drops incident edges
//	HasNode(id K) bool / Contains(x any) bool
//
//	// Edge lifecycle
//	AddEdge(u, v K, attrs ...Attrs)         // O(1), auto-creates endpoints
//	AddPath(ids []K, attrs ...Attrs)        // O(len(ids)), consecutive pairs
//	RemoveEdge(u, v K) error                // O(1), endpoints survive
//	HasEdge(u, v K) bool                    // O(1), false for unknown u
//
//	// Query
//	Neighbors(id K) ([]K, error)            // O(d·log d), insertion order
//	NeighborsOf(id K) (map[K]Attrs, error)  // O(d), edge attrs read-only
//	Nodes() []K / All() iter.Seq[K]         // O(N·log N) snapshot
//	Edges() []EdgeSpec[K]                   // each edge once
//	NodeCount() / Len() / EdgeCount() / Degree(id)
//
// Errors:
//
//	ErrNodeNotFound – missing node (RemoveNode, Neighbors, NeighborsOf, NodeAttrs, Degree)
//	ErrEdgeNotFound – missing edge (RemoveEdge, EdgeAttrs)
//
// Errors are returned wrapped with the failing call; match them with errors.Is
// or IsNotFound.
//
// Concurrency:
//
// Graph does no locking of its own. Share it between goroutines through a
// SyncGraph, or guard it with your own mutex.
package core
