// SPDX-License-Identifier: MIT
// Package: attrgraph/codec
//
// document.go - node-link document model and graph <-> document conversion.

package codec

import "github.com/katalvlaran/attrgraph/core"

// Document is the node-link form of a graph.
type Document[K comparable] struct {
	Graph core.Attrs   `json:"graph,omitempty" yaml:"graph,omitempty"`
	Nodes []NodeDoc[K] `json:"nodes" yaml:"nodes"`
	Links []LinkDoc[K] `json:"links" yaml:"links"`
}

// NodeDoc is one node entry.
type NodeDoc[K comparable] struct {
	ID    K          `json:"id" yaml:"id"`
	Attrs core.Attrs `json:"attrs,omitempty" yaml:"attrs,omitempty"`
}

// LinkDoc is one undirected edge entry; Source/Target order follows Edges().
type LinkDoc[K comparable] struct {
	Source K          `json:"source" yaml:"source"`
	Target K          `json:"target" yaml:"target"`
	Attrs  core.Attrs `json:"attrs,omitempty" yaml:"attrs,omitempty"`
}

// Export snapshots g into a Document. Attribute maps are copied one level
// deep; nested values are shared with g.
// Complexity: O(N log N + E log E).
func Export[K comparable](g *core.Graph[K]) Document[K] {
	doc := Document[K]{
		Graph: copyAttrs(g.GraphAttrs()),
		Nodes: make([]NodeDoc[K], 0, g.NodeCount()),
		Links: make([]LinkDoc[K], 0, g.EdgeCount()),
	}
	for _, id := range g.Nodes() {
		attrs, _ := g.NodeAttrs(id) // id comes from Nodes(), always present
		doc.Nodes = append(doc.Nodes, NodeDoc[K]{ID: id, Attrs: copyAttrs(attrs)})
	}
	for _, e := range g.Edges() {
		doc.Links = append(doc.Links, LinkDoc[K]{Source: e.U, Target: e.V, Attrs: copyAttrs(e.Attrs)})
	}

	return doc
}

// Import builds a new graph from doc: nodes first, then links, then graph
// attributes. Links may name nodes missing from doc.Nodes; those are created
// with empty attributes, exactly as AddEdge does. Repeated entries merge.
func Import[K comparable](doc Document[K]) *core.Graph[K] {
	nodes := make([]core.NodeSpec[K], len(doc.Nodes))
	for i, n := range doc.Nodes {
		nodes[i] = core.NodeWith(n.ID, n.Attrs)
	}
	links := make([]core.EdgeSpec[K], len(doc.Links))
	for i, l := range doc.Links {
		links[i] = core.EdgeWith(l.Source, l.Target, l.Attrs)
	}

	return core.NewGraph(
		core.WithNodeSpecs(nodes...),
		core.WithEdges(links...),
		core.WithGraphAttrs[K](doc.Graph),
	)
}

// copyAttrs returns a shallow copy; empty maps come back nil so omitempty drops them.
func copyAttrs(a core.Attrs) core.Attrs {
	if len(a) == 0 {
		return nil
	}
	out := make(core.Attrs, len(a))
	for k, v := range a {
		out[k] = v
	}

	return out
}
