// SPDX-License-Identifier: MIT

package builder

import (
	"fmt"

	"github.com/katalvlaran/lagraph/core"
)

// addVertices inserts idFn(0..n-1) in index order.
func addVertices(g *core.Graph, cfg builderConfig, method string, n int) error {
	for i := 0; i < n; i++ {
		id := cfg.idFn(i)
		if _, err := g.AddVertex(id); err != nil {
			return fmt.Errorf("%s: AddVertex(%s): %w", method, id, err)
		}
	}

	return nil
}

// link adds i→j with the configured relation, and j→i as well when the
// topology is undirected and the config asks for both directions.
func link(g *core.Graph, cfg builderConfig, method string, i, j int, undirected bool) error {
	u, v := cfg.idFn(i), cfg.idFn(j)
	if _, err := g.AddEdge(u, v, cfg.relation); err != nil {
		return fmt.Errorf("%s: AddEdge(%s→%s): %w", method, u, v, err)
	}
	if undirected && cfg.bidirectional && i != j {
		if _, err := g.AddEdge(v, u, cfg.relation); err != nil {
			return fmt.Errorf("%s: AddEdge(%s→%s): %w", method, v, u, err)
		}
	}

	return nil
}

func tooFew(method, param string, got, floor int) error {
	return fmt.Errorf("%s: %s=%d < min=%d: %w", method, param, got, floor, ErrTooFewVertices)
}
