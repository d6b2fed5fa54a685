// Package core defines the property Graph, its Vertex and Edge types,
// graph options and sentinel errors.
//
// This file declares Vertex, Edge, Graph, GraphOption, the sentinel errors
// and the NewGraph constructor.
package core

import (
	"errors"
	"sync"
	"sync/atomic"

	"github.com/tidwall/btree"
	"golang.org/x/sync/singleflight"
)

// Sentinel errors for core graph operations.
var (
	// ErrEmptyVertexID indicates that the provided vertex ID is empty.
	ErrEmptyVertexID = errors.New("core: vertex ID is empty")

	// ErrEmptyRelation indicates that an edge was added without a relationship type.
	ErrEmptyRelation = errors.New("core: relation is empty")

	// ErrVertexNotFound indicates an operation referenced a non-existent vertex
	// (by ID or by index).
	ErrVertexNotFound = errors.New("core: vertex not found")

	// ErrEdgeNotFound indicates an operation referenced a non-existent edge.
	ErrEdgeNotFound = errors.New("core: edge not found")

	// ErrLoopNotAllowed indicates a self-loop was attempted when loops are disabled.
	ErrLoopNotAllowed = errors.New("core: self-loop not allowed")

	// ErrMultiEdgeNotAllowed indicates a second edge of the same relation between
	// the same endpoints when multi-edges are disabled.
	ErrMultiEdgeNotAllowed = errors.New("core: multi-edges not allowed")
)

// Vertex represents a node in the graph.
type Vertex struct {
	// ID is the unique identifier for this Vertex.
	ID string

	// Index is the dense position of the vertex: its row and column in every
	// adjacency matrix produced by the Graph.
	Index int
}

// Edge is a directed, typed relationship From→To.
// Edges are immutable once added; pointers returned by the Graph stay valid
// after the edge is removed.
type Edge struct {
	// ID uniquely identifies this edge in the Graph ("e1", "e2", …).
	ID string

	// From is the source vertex ID.
	From string

	// To is the destination vertex ID.
	To string

	// Relation is the relationship type.
	Relation string

	// FromIndex and ToIndex are the dense indices of From and To.
	FromIndex int
	ToIndex   int

	seq uint64 // creation order, breaks ties inside one relation
}

// GraphOption configures behavior of a Graph before creation.
type GraphOption func(g *Graph)

// WithMultiEdges permits parallel edges of the same relation.
func WithMultiEdges() GraphOption {
	return func(g *Graph) { g.allowMulti = true }
}

// WithLoops permits self-loops (edges from a vertex to itself).
func WithLoops() GraphOption {
	return func(g *Graph) { g.allowLoops = true }
}

// Graph is the in-memory property graph.
//
// muVert protects vertices and order; muEdge protects edges, index and
// relations; muCache protects cache. version increments on every mutation
// and keys cache validity.
type Graph struct {
	muVert  sync.RWMutex
	muEdge  sync.RWMutex
	muCache sync.Mutex

	// Configuration flags
	allowMulti bool
	allowLoops bool

	// Vertex catalog
	vertices map[string]*Vertex
	order    []*Vertex // index → vertex

	// Edge catalog
	nextEdgeID uint64                 // atomic edge ID generator
	edges      map[string]*Edge       // edge ID → Edge
	index      *btree.BTreeG[edgeKey] // (from, to, relation, seq) order
	relations  map[string]int         // relation → live edge count

	// Matrix cache
	version atomic.Uint64
	cache   map[string]*Views
	flight  singleflight.Group
}

// NewGraph creates an empty Graph. By default loops and parallel edges of
// one relation are rejected.
// Complexity: O(1)
func NewGraph(opts ...GraphOption) *Graph {
	g := &Graph{
		vertices:  make(map[string]*Vertex),
		edges:     make(map[string]*Edge),
		index:     btree.NewBTreeGOptions(edgeKeyLess, btree.Options{NoLocks: true}),
		relations: make(map[string]int),
		cache:     make(map[string]*Views),
	}
	for _, opt := range opts {
		opt(g)
	}

	return g
}

// Looped reports whether self-loops are allowed.
func (g *Graph) Looped() bool { return g.allowLoops }

// Multigraph reports whether parallel edges of one relation are allowed.
func (g *Graph) Multigraph() bool { return g.allowMulti }
