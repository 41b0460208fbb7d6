// Package core defines the central attributed Graph type and the sentinel
// errors, option and spec types used to build and query it.
//
// Graph keeps three explicit maps, all initialised by NewGraph:
//
//	graph  Attrs                   // graph-level attributes ("name", ...)
//	node   map[K]*nodeRecord       // node id -> node attributes
//	adj    map[K]map[K]*adjRecord  // node id -> neighbor id -> edge attributes
//
// An undirected edge {u,v} lives in adj[u][v] and adj[v][u]; both records point
// at the same Attrs map. A self-loop lives once, in adj[u][u].
//
// Errors:
//
//	ErrNodeNotFound - requested node does not exist.
//	ErrEdgeNotFound - requested edge does not exist.
package core

import (
	"errors"
)

// Sentinel errors for core graph operations.
var (
	// ErrNodeNotFound indicates an operation referenced a non-existent node.
	ErrNodeNotFound = errors.New("core: node not found")

	// ErrEdgeNotFound indicates an operation referenced a non-existent edge.
	ErrEdgeNotFound = errors.New("core: edge not found")
)

// IsNotFound reports whether err is (or wraps) ErrNodeNotFound or ErrEdgeNotFound.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNodeNotFound) || errors.Is(err, ErrEdgeNotFound)
}

// nameKey is the graph attribute that backs Name/SetName.
const nameKey = "name"

// Attrs is an arbitrary key/value attribute map attached to a node, an edge,
// or the graph itself. Values are opaque to the graph: stored, never interpreted.
type Attrs map[string]any

// merge overlays src onto a (last write wins per key).
func (a Attrs) merge(src Attrs) {
	var k string
	var v any
	for k, v = range src {
		a[k] = v
	}
}

// clone returns a shallow copy of a. A nil map clones to an empty, non-nil map.
func (a Attrs) clone() Attrs {
	out := make(Attrs, len(a))
	out.merge(a)

	return out
}

// NodeSpec is a node identifier with an optional attribute map.
// It is the (id, attrs) interchange shape accepted by AddNodesFrom and WithNodeSpecs.
type NodeSpec[K comparable] struct {
	ID    K
	Attrs Attrs
}

// EdgeSpec is an unordered endpoint pair with an optional attribute map.
// A nil Attrs is the 2-tuple form (u, v); a non-nil Attrs is the 3-tuple form.
type EdgeSpec[K comparable] struct {
	U     K
	V     K
	Attrs Attrs
}

// Node builds a NodeSpec without attributes.
func Node[K comparable](id K) NodeSpec[K] { return NodeSpec[K]{ID: id} }

// NodeWith builds a NodeSpec carrying attrs.
func NodeWith[K comparable](id K, attrs Attrs) NodeSpec[K] {
	return NodeSpec[K]{ID: id, Attrs: attrs}
}

// Edge builds an EdgeSpec without attributes.
func Edge[K comparable](u, v K) EdgeSpec[K] { return EdgeSpec[K]{U: u, V: v} }

// EdgeWith builds an EdgeSpec carrying attrs.
func EdgeWith[K comparable](u, v K, attrs Attrs) EdgeSpec[K] {
	return EdgeSpec[K]{U: u, V: v, Attrs: attrs}
}

// nodeRecord is the node catalog entry: its attributes plus the insertion
// sequence that orders Nodes() and All().
type nodeRecord struct {
	seq   uint64
	attrs Attrs
}

// adjRecord is one side of an edge inside a node's adjacency bucket.
// seq orders the bucket; attrs is shared with the mirror record.
type adjRecord struct {
	seq   uint64
	attrs Attrs
}

// GraphOption configures the seed content of a Graph before creation.
type GraphOption[K comparable] func(c *graphConfig[K])

// graphConfig accumulates seeds from options. NewGraph materialises them in a
// fixed order: nodes, then edges, then graph attributes.
type graphConfig[K comparable] struct {
	nodes []NodeSpec[K]
	edges []EdgeSpec[K]
	attrs []Attrs
}

// WithNodes seeds the graph with bare node identifiers.
func WithNodes[K comparable](ids ...K) GraphOption[K] {
	return func(c *graphConfig[K]) {
		for _, id := range ids {
			c.nodes = append(c.nodes, NodeSpec[K]{ID: id})
		}
	}
}

// WithNodeSpecs seeds the graph with (id, attrs) pairs.
func WithNodeSpecs[K comparable](specs ...NodeSpec[K]) GraphOption[K] {
	return func(c *graphConfig[K]) { c.nodes = append(c.nodes, specs...) }
}

// WithEdges seeds the graph with edges; endpoints are created as needed.
func WithEdges[K comparable](edges ...EdgeSpec[K]) GraphOption[K] {
	return func(c *graphConfig[K]) { c.edges = append(c.edges, edges...) }
}

// WithGraphAttrs merges attrs into the graph-level attribute map.
func WithGraphAttrs[K comparable](attrs Attrs) GraphOption[K] {
	return func(c *graphConfig[K]) { c.attrs = append(c.attrs, attrs) }
}

// WithName sets the graph name (the "name" graph attribute).
func WithName[K comparable](name string) GraphOption[K] {
	return func(c *graphConfig[K]) { c.attrs = append(c.attrs, Attrs{nameKey: name}) }
}

// Graph is a mutable undirected graph whose nodes, edges and the graph itself
// carry attribute maps. Self-loops are allowed; parallel edges are not.
//
// Graph does no internal locking. Serialize concurrent use externally, or
// wrap it in a SyncGraph.
type Graph[K comparable] struct {
	graph Attrs
	node  map[K]*nodeRecord
	adj   map[K]map[K]*adjRecord

	// nextSeq is the monotonic insertion counter for nodes and adjacency records.
	nextSeq uint64
}

// NewGraph creates a Graph and applies the seed options.
//
// Seeds are materialised in a fixed order regardless of option order:
// nodes (AddNodesFrom), edges (AddEdgesFrom), graph attributes (merge).
// Options of the same kind accumulate in call order.
//
// Complexity: O(N + E) over the seeds.
func NewGraph[K comparable](opts ...GraphOption[K]) *Graph[K] {
	g := &Graph[K]{
		graph: make(Attrs),
		node:  make(map[K]*nodeRecord),
		adj:   make(map[K]map[K]*adjRecord),
	}

	var cfg graphConfig[K]
	for _, opt := range opts {
		opt(&cfg)
	}

	g.AddNodesFrom(cfg.nodes...)
	g.AddEdgesFrom(cfg.edges...)
	for _, a := range cfg.attrs {
		g.graph.merge(a)
	}

	return g
}

// seq reserves the next insertion sequence number.
func (g *Graph[K]) seq() uint64 {
	g.nextSeq++

	return g.nextSeq
}
