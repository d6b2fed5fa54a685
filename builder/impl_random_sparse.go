// SPDX-License-Identifier: MIT
// Package: lagraph/builder
//
// impl_random_sparse.go - RandomSparse(n, p): Erdős–Rényi-like digraph.
//
// Contract:
//   - n ≥ 1 (else ErrTooFewVertices); 0 ≤ p ≤ 1 (else ErrInvalidProbability).
//   - cfg.rng is required for 0 < p < 1 (else ErrNeedRandSource); p ∈ {0,1}
//     is deterministic without an RNG.
//   - Default: one Bernoulli trial per ordered pair (i,j), i asc then j asc;
//     self-loops are tried only when g.Looped().
//   - WithBidirectional: one trial per unordered pair {i<j}, emitting both
//     directions on success.
//
// Determinism: fixed trial order ⇒ identical graphs for a fixed seed.
// Complexity: O(n²) trials.

package builder

import (
	"fmt"

	"github.com/katalvlaran/lagraph/core"
)

const (
	methodRandomSparse      = "RandomSparse"
	minRandomSparseVertices = 1
	probMin                 = 0.0
	probMax                 = 1.0
)

// RandomSparse returns a Constructor that samples a random graph over n
// vertices with independent edge probability p.
func RandomSparse(n int, p float64) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minRandomSparseVertices {
			return tooFew(methodRandomSparse, "n", n, minRandomSparseVertices)
		}
		if p < probMin || p > probMax {
			return fmt.Errorf("%s: p=%.6f not in [%.1f,%.1f]: %w",
				methodRandomSparse, p, probMin, probMax, ErrInvalidProbability)
		}
		if cfg.rng == nil && p > probMin && p < probMax {
			return fmt.Errorf("%s: rng is required: %w", methodRandomSparse, ErrNeedRandSource)
		}
		if err := addVertices(g, cfg, methodRandomSparse, n); err != nil {
			return err
		}

		trial := func() bool {
			if cfg.rng == nil {
				return p == probMax
			}
			return cfg.rng.Float64() < p
		}
		loops := g.Looped()
		for i := 0; i < n; i++ {
			j0 := 0
			if cfg.bidirectional {
				j0 = i + 1
			}
			for j := j0; j < n; j++ {
				if i == j && !loops {
					continue
				}
				if !trial() {
					continue
				}
				if err := link(g, cfg, methodRandomSparse, i, j, true); err != nil {
					return err
				}
			}
		}

		return nil
	}
}
