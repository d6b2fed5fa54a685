package core_test

import (
	"fmt"

	"github.com/katalvlaran/lagraph/core"
)

// ExampleGraph demonstrates typed relationships and their matrices.
func ExampleGraph() {
	g := core.NewGraph()

	// vertices are indexed in insertion order: alice=0, bob=1, carol=2
	_, _ = g.AddEdge("alice", "bob", "KNOWS")
	_, _ = g.AddEdge("bob", "carol", "KNOWS")
	_, _ = g.AddEdge("alice", "carol", "WORKS_WITH")

	knows, _ := g.Adjacency("KNOWS")
	all, _ := g.Adjacency()
	fmt.Println("KNOWS entries:", knows.Nvals())
	fmt.Println("all entries:", all.Nvals())
	fmt.Println("alice→carol via KNOWS?", knows.Has(0, 2))
	fmt.Println("alice→carol via any?", all.Has(0, 2))

	// Output:
	// KNOWS entries: 2
	// all entries: 3
	// alice→carol via KNOWS? false
	// alice→carol via any? true
}

// ExampleGraph_EdgesBetween resolves a matrix entry back to concrete edges.
func ExampleGraph_EdgesBetween() {
	g := core.NewGraph()
	_, _ = g.AddEdge("a", "b", "LIKES")
	_, _ = g.AddEdge("a", "b", "KNOWS")

	es, _ := g.EdgesBetween(0, 1)
	for _, e := range es {
		fmt.Printf("%s %s-[%s]->%s\n", e.ID, e.From, e.Relation, e.To)
	}

	// Output:
	// e2 a-[KNOWS]->b
	// e1 a-[LIKES]->b
}
