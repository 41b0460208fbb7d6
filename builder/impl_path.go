// SPDX-License-Identifier: MIT
// Package: attrgraph/builder
//
// impl_path.go - Path(n) and Cycle(n) constructors.
//
// Contract:
//   - Nodes are added via cfg.idFn in ascending index order (0..n-1).
//   - Edges are emitted (i-1, i) for i=1..n-1; Cycle closes with (n-1, 0).
//   - Returns only sentinel errors; never panics at runtime.
//   - Ids are resolved before the first AddNode; an exhausted IDFn leaves g untouched.
//
// Complexity:
//   - Time: O(n) nodes + O(n) edges. Space: O(n) for the id slice.

package builder

import (
	"fmt"

	"github.com/katalvlaran/attrgraph/core"
)

const (
	methodPath    = "Path"
	methodCycle   = "Cycle"
	minPathNodes  = 2
	minCycleNodes = 3
)

// Path returns a Constructor that builds a simple path P_n (n ≥ 2).
func Path(n int) Constructor {
	return func(g *core.Graph[string], cfg builderConfig) error {
		if n < minPathNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodPath, n, minPathNodes, ErrTooFewNodes)
		}
		ids, err := cfg.addNodes(g, n)
		if err != nil {
			return fmt.Errorf("%s: %w", methodPath, err)
		}
		for i := 1; i < n; i++ {
			cfg.addEdge(g, ids[i-1], ids[i])
		}

		return nil
	}
}

// Cycle returns a Constructor that builds a simple cycle C_n (n ≥ 3).
func Cycle(n int) Constructor {
	return func(g *core.Graph[string], cfg builderConfig) error {
		if n < minCycleNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodCycle, n, minCycleNodes, ErrTooFewNodes)
		}
		ids, err := cfg.addNodes(g, n)
		if err != nil {
			return fmt.Errorf("%s: %w", methodCycle, err)
		}
		for i := 1; i < n; i++ {
			cfg.addEdge(g, ids[i-1], ids[i])
		}
		cfg.addEdge(g, ids[n-1], ids[0]) // close the ring

		return nil
	}
}
