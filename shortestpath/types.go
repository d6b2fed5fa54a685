package shortestpath

import (
	"errors"
	"strings"

	"github.com/katalvlaran/lagraph/core"
)

// Sentinel errors for path reconstruction and queries.
var (
	// ErrNoPath indicates that no path satisfies the request. It is a normal
	// outcome, not a failure of the inputs.
	ErrNoPath = errors.New("shortestpath: no path")

	// ErrBrokenParentChain indicates a parent vector that does not lead from
	// the destination back to the source in level[dst] hops.
	ErrBrokenParentChain = errors.New("shortestpath: broken parent chain")

	// ErrMissingEdge indicates the edge store returned no edge for a hop
	// recorded in the parent vector.
	ErrMissingEdge = errors.New("shortestpath: no edge for recorded hop")

	// ErrVertexOutOfRange indicates a source or destination outside [0, n).
	ErrVertexOutOfRange = errors.New("shortestpath: vertex out of range")

	// ErrNilGraph indicates a nil *core.Graph.
	ErrNilGraph = errors.New("shortestpath: graph is nil")

	// ErrNilParent indicates a nil parent vector.
	ErrNilParent = errors.New("shortestpath: parent vector is nil")

	// ErrNilStore indicates a nil EdgeStore.
	ErrNilStore = errors.New("shortestpath: edge store is nil")

	// ErrOptionViolation indicates an invalid hop bound or option.
	ErrOptionViolation = errors.New("shortestpath: invalid option supplied")
)

// EdgeStore resolves a matrix entry src→dst back to concrete edges,
// restricted to relations (all relations when none is given).
// *core.Graph implements it.
type EdgeStore interface {
	EdgesBetween(src, dst int, relations ...string) ([]*core.Edge, error)
}

var _ EdgeStore = (*core.Graph)(nil)

// Path is an alternating node/edge sequence from source to destination:
// Edges[i] connects Nodes[i] to Nodes[i+1].
type Path struct {
	Nodes []int
	Edges []*core.Edge
}

// Len returns the number of hops.
func (p *Path) Len() int { return len(p.Edges) }

// String renders the path as "a -[REL]-> b -[REL]-> c". A zero-hop path
// renders as the empty string.
func (p *Path) String() string {
	if len(p.Edges) == 0 {
		return ""
	}
	var sb strings.Builder
	sb.WriteString(p.Edges[0].From)
	for _, e := range p.Edges {
		sb.WriteString(" -[")
		sb.WriteString(e.Relation)
		sb.WriteString("]-> ")
		sb.WriteString(e.To)
	}

	return sb.String()
}
