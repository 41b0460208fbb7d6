// SPDX-License-Identifier: MIT
// Package: attrgraph/builder
//
// impl_star.go - Star(n) and Wheel(n) constructors.
//
// Contract:
//   - The hub has the fixed id Center; the n-1 rim nodes use cfg.idFn(0..n-2).
//   - Star emits spokes (Center, rim_i) in index order.
//   - Wheel emits the rim cycle first, then the spokes.

package builder

import (
	"fmt"

	"github.com/katalvlaran/attrgraph/core"
)

// Center is the hub id used by Star and Wheel.
const Center = "Center"

const (
	methodStar    = "Star"
	methodWheel   = "Wheel"
	minStarNodes  = 2
	minWheelNodes = 4
)

// Star returns a Constructor that builds a star: Center plus n-1 leaves (n ≥ 2).
func Star(n int) Constructor {
	return func(g *core.Graph[string], cfg builderConfig) error {
		if n < minStarNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodStar, n, minStarNodes, ErrTooFewNodes)
		}
		if _, err := cfg.resolveIDs(n - 1); err != nil {
			return fmt.Errorf("%s: %w", methodStar, err)
		}
		g.AddNode(Center)
		leaves, err := cfg.addNodes(g, n-1)
		if err != nil {
			return fmt.Errorf("%s: %w", methodStar, err)
		}
		for _, leaf := range leaves {
			cfg.addEdge(g, Center, leaf)
		}

		return nil
	}
}

// Wheel returns a Constructor that builds W_n: a cycle of n-1 nodes plus Center
// joined to each of them (n ≥ 4).
func Wheel(n int) Constructor {
	return func(g *core.Graph[string], cfg builderConfig) error {
		if n < minWheelNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodWheel, n, minWheelNodes, ErrTooFewNodes)
		}
		rim, err := cfg.resolveIDs(n - 1)
		if err != nil {
			return fmt.Errorf("%s: %w", methodWheel, err)
		}
		if err = Cycle(n-1)(g, cfg); err != nil {
			return fmt.Errorf("%s: %w", methodWheel, err)
		}
		g.AddNode(Center)
		for _, id := range rim {
			cfg.addEdge(g, Center, id)
		}

		return nil
	}
}
