// SPDX-License-Identifier: MIT
// Package: attrgraph/builder
//
// impl_random_sparse.go - RandomSparse(n, p) constructor (Erdős–Rényi G(n,p)).
//
// Contract:
//   - n ≥ 1 (else ErrTooFewNodes); 0 ≤ p ≤ 1 (else ErrInvalidProbability).
//   - cfg.rng is required for 0 < p < 1 (else ErrNeedRandSource);
//     p ∈ {0,1} is deterministic and needs no RNG.
//   - Unordered pairs {i,j}, i<j, are tried in (i asc, j asc) order; no self-loops.
//
// Complexity:
//   - Time: O(n) nodes + O(n²) Bernoulli trials. Space: O(n) ids.

package builder

import (
	"fmt"

	"github.com/katalvlaran/attrgraph/core"
)

const (
	methodRandomSparse   = "RandomSparse"
	minRandomSparseNodes = 1
	probMin              = 0.0
	probMax              = 1.0
)

// RandomSparse returns a Constructor sampling each of the n(n-1)/2 pairs
// independently with probability p.
func RandomSparse(n int, p float64) Constructor {
	return func(g *core.Graph[string], cfg builderConfig) error {
		if n < minRandomSparseNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w",
				methodRandomSparse, n, minRandomSparseNodes, ErrTooFewNodes)
		}
		if p < probMin || p > probMax {
			return fmt.Errorf("%s: p=%.6f not in [%.1f,%.1f]: %w",
				methodRandomSparse, p, probMin, probMax, ErrInvalidProbability)
		}
		if cfg.rng == nil && p > probMin && p < probMax {
			return fmt.Errorf("%s: %w", methodRandomSparse, ErrNeedRandSource)
		}

		ids, err := cfg.addNodes(g, n)
		if err != nil {
			return fmt.Errorf("%s: %w", methodRandomSparse, err)
		}
		if p == probMin {
			return nil
		}

		var keep bool
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				if p == probMax {
					keep = true
				} else {
					keep = cfg.rng.Float64() < p
				}
				if keep {
					cfg.addEdge(g, ids[i], ids[j])
				}
			}
		}

		return nil
	}
}
