// SPDX-License-Identifier: MIT
// Package: lagraph/builder
//
// impl_diamond.go - Diamond(): 0→1, 0→2, 1→3, 2→3.
//
// Two equal-length routes from 0 to 3; used to check that a traversal
// picks exactly one predecessor for 3. WithBidirectional is ignored.

package builder

import "github.com/katalvlaran/lagraph/core"

const (
	methodDiamond = "Diamond"
	diamondNodes  = 4
)

var diamondEdges = [...][2]int{{0, 1}, {0, 2}, {1, 3}, {2, 3}}

// Diamond returns a Constructor that builds the 4-vertex diamond.
func Diamond() Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if err := addVertices(g, cfg, methodDiamond, diamondNodes); err != nil {
			return err
		}
		for _, e := range diamondEdges {
			if err := link(g, cfg, methodDiamond, e[0], e[1], false); err != nil {
				return err
			}
		}

		return nil
	}
}
