// SPDX-License-Identifier: MIT
// Package: lagraph/builder
//
// impl_grid.go - Grid(rows, cols): 4-neighborhood lattice.
//
// Contract:
//   - rows ≥ 1, cols ≥ 1 (else ErrTooFewVertices).
//   - Cell (r,c) has index r*cols+c (row-major).
//   - For each cell in row-major order: edge to the right neighbour, then to
//     the neighbour below. The corner 0 reaches (r,c) in r+c hops.
//
// Complexity: O(rows*cols).

package builder

import "github.com/katalvlaran/lagraph/core"

const (
	methodGrid = "Grid"
	minGridDim = 1
)

// Grid returns a Constructor that builds a rows×cols grid.
func Grid(rows, cols int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if rows < minGridDim {
			return tooFew(methodGrid, "rows", rows, minGridDim)
		}
		if cols < minGridDim {
			return tooFew(methodGrid, "cols", cols, minGridDim)
		}
		if err := addVertices(g, cfg, methodGrid, rows*cols); err != nil {
			return err
		}
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				u := r*cols + c
				if c+1 < cols {
					if err := link(g, cfg, methodGrid, u, u+1, true); err != nil {
						return err
					}
				}
				if r+1 < rows {
					if err := link(g, cfg, methodGrid, u, u+cols, true); err != nil {
						return err
					}
				}
			}
		}

		return nil
	}
}
