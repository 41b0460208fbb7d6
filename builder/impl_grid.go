// SPDX-License-Identifier: MIT
// Package: attrgraph/builder
//
// impl_grid.go - Grid(rows, cols) constructor.
//
// Contract:
//   - 2D orthogonal grid with 4-neighborhood (right & bottom neighbor per cell).
//   - Node ids use the fixed "r,c" scheme in row-major order; cfg.idFn is not
//     consulted so coordinates stay readable. Every node carries "row" and "col".
//   - Edge order: for each (r,c), Right then Bottom when present.
//
// Complexity:
//   - Time: O(rows·cols) nodes + O(rows·cols) edges. Space: O(1) extra.

package builder

import (
	"fmt"

	"github.com/katalvlaran/attrgraph/core"
)

const (
	methodGrid = "Grid"
	minGridDim = 1
	gridIDFmt  = "%d,%d"
	attrRow    = "row"
	attrCol    = "col"
)

// GridID returns the node id Grid assigns to cell (r, c).
func GridID(r, c int) string { return fmt.Sprintf(gridIDFmt, r, c) }

// Grid returns a Constructor that builds a rows×cols orthogonal grid.
func Grid(rows, cols int) Constructor {
	return func(g *core.Graph[string], cfg builderConfig) error {
		if rows < minGridDim || cols < minGridDim {
			return fmt.Errorf("%s: rows=%d, cols=%d (each must be ≥ %d): %w",
				methodGrid, rows, cols, minGridDim, ErrTooFewNodes)
		}

		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				g.AddNode(GridID(r, c), core.Attrs{attrRow: r, attrCol: c})
			}
		}

		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				u := GridID(r, c)
				if c+1 < cols {
					cfg.addEdge(g, u, GridID(r, c+1))
				}
				if r+1 < rows {
					cfg.addEdge(g, u, GridID(r+1, c))
				}
			}
		}

		return nil
	}
}
