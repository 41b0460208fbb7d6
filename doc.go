// Package attrgraph is an in-memory store for undirected graphs whose nodes,
// edges and the graph itself each carry a free-form attribute map.
//
// What is attrgraph?
//
//	A small, generic library that brings together:
//		• Core primitives: add/remove nodes & edges, merge attributes on re-add
//		• Deterministic enumeration: nodes, neighbors and edges in insertion order
//		• Copies: Clone and induced Subgraph with independent attribute maps
//		• Concurrency: an opt-in RWMutex wrapper (core.SyncGraph)
//		• Fixtures: topology constructors (path, cycle, star, wheel, complete,
//		  complete bipartite, grid, G(n,p)) with pluggable ids and attributes
//		• Interchange: node-link documents in JSON or YAML
//
// Under the hood, everything is organized under three subpackages and a CLI:
//
//	core/           - Graph[K], Attrs, options, NotFound errors, SyncGraph
//	builder/        - BuildGraph/Apply orchestration and Constructor factories
//	codec/          - Export/Import, Encode/Decode (json, yaml)
//	cmd/attrgraph/  - build, stats, neighbors and subgraph from the shell
//
// Quick ASCII example:
//
//	    A───B          g := core.NewGraph(core.WithEdges(
//	    │   │              core.Edge("A", "B"), core.Edge("B", "D"),
//	    C───D              core.Edge("D", "C"), core.Edge("C", "A")))
//
//	represents a square with four nodes and four edges.
//
// See examples/core_way_network.go for a worked road-network walkthrough.
//
//	go get github.com/katalvlaran/attrgraph
package attrgraph
