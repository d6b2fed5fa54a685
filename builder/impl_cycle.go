// SPDX-License-Identifier: MIT
// Package: lagraph/builder
//
// impl_cycle.go - Cycle(n): 0→1→…→n-1→0.
//
// Contract:
//   - n ≥ 3 (else ErrTooFewVertices).
//   - Edges i→(i+1) mod n for i=0..n-1.

package builder

import "github.com/katalvlaran/lagraph/core"

const (
	methodCycle   = "Cycle"
	minCycleNodes = 3
)

// Cycle returns a Constructor that builds the cycle C_n.
func Cycle(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minCycleNodes {
			return tooFew(methodCycle, "n", n, minCycleNodes)
		}
		if err := addVertices(g, cfg, methodCycle, n); err != nil {
			return err
		}
		for i := 0; i < n; i++ {
			if err := link(g, cfg, methodCycle, i, (i+1)%n, true); err != nil {
				return err
			}
		}

		return nil
	}
}
