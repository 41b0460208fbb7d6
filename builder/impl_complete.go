// SPDX-License-Identifier: MIT
// Package: attrgraph/builder
//
// impl_complete.go - Complete(n) and CompleteBipartite(n1, n2) constructors.
//
// Determinism:
//   • Pair order is lexicographic by (i,j), i<j for K_n.
//   • K_{n1,n2} emits (L_i, R_j) with i outer, j inner.

package builder

import (
	"fmt"

	"github.com/katalvlaran/attrgraph/core"
)

const (
	methodComplete          = "Complete"
	methodCompleteBipartite = "CompleteBipartite"
	minCompleteNodes        = 1
	minPartitionNodes       = 1
)

// Complete returns a Constructor that builds the complete simple graph K_n (n ≥ 1).
// Complexity: O(n) nodes + O(n²) edges.
func Complete(n int) Constructor {
	return func(g *core.Graph[string], cfg builderConfig) error {
		if n < minCompleteNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodComplete, n, minCompleteNodes, ErrTooFewNodes)
		}
		ids, err := cfg.addNodes(g, n)
		if err != nil {
			return fmt.Errorf("%s: %w", methodComplete, err)
		}
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				cfg.addEdge(g, ids[i], ids[j])
			}
		}

		return nil
	}
}

// CompleteBipartite returns a Constructor that builds K_{n1,n2} with node ids
// cfg.leftPrefix+i and cfg.rightPrefix+j. Each side is tagged with the node
// attribute "side" = "left" | "right".
// Complexity: O(n1+n2) nodes + O(n1·n2) edges.
func CompleteBipartite(n1, n2 int) Constructor {
	return func(g *core.Graph[string], cfg builderConfig) error {
		if n1 < minPartitionNodes || n2 < minPartitionNodes {
			return fmt.Errorf("%s: n1=%d, n2=%d < min=%d: %w",
				methodCompleteBipartite, n1, n2, minPartitionNodes, ErrTooFewNodes)
		}

		left := make([]string, n1)
		for i := range left {
			left[i] = PrefixIDFn(cfg.leftPrefix)(i)
			g.AddNode(left[i], core.Attrs{"side": "left"})
		}
		right := make([]string, n2)
		for j := range right {
			right[j] = PrefixIDFn(cfg.rightPrefix)(j)
			g.AddNode(right[j], core.Attrs{"side": "right"})
		}

		for _, u := range left {
			for _, v := range right {
				cfg.addEdge(g, u, v)
			}
		}

		return nil
	}
}
