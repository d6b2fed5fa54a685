// Package bfs provides tunable options, results and error definitions
// for direction-optimizing breadth‐first search over a sparse adjacency matrix.
package bfs

import (
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/lagraph/sparse"
)

// Sentinel errors for BFS execution.
var (
	// ErrMatrixNil is returned if a nil adjacency matrix is passed.
	ErrMatrixNil = errors.New("bfs: adjacency matrix is nil")

	// ErrNonSquare is returned when the adjacency matrix is not n×n.
	ErrNonSquare = errors.New("bfs: adjacency matrix is not square")

	// ErrSourceOutOfRange is returned when the source is outside [0, n).
	ErrSourceOutOfRange = errors.New("bfs: source out of range")

	// ErrDestinationOutOfRange is returned when the destination is outside [0, n).
	ErrDestinationOutOfRange = errors.New("bfs: destination out of range")

	// ErrTransposeShape is returned when the supplied transpose is not n×n.
	ErrTransposeShape = errors.New("bfs: transpose shape mismatch")

	// ErrDegreeShape is returned when the supplied degree vector is not of length n.
	ErrDegreeShape = errors.New("bfs: degree vector length mismatch")

	// ErrNothingTracked is returned when neither levels nor parents are requested.
	ErrNothingTracked = errors.New("bfs: neither level nor parent tracking requested")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("bfs: invalid option supplied")
)

// noDestination marks "no early exit on a destination".
const noDestination = -1

// Option configures BFS behavior via functional arguments.
// If an Option is invalid (e.g. negative max level), it is recorded
// internally and surfaced as ErrOptionViolation when Run is invoked.
type Option func(*Options)

// Options holds the parameters of one traversal.
type Options struct {
	// AT is the transpose of the adjacency matrix. Without it the traversal
	// is push-only.
	AT *sparse.Matrix

	// Degree is the out-degree vector of the adjacency matrix. When nil and
	// AT is set, Run computes it for the duration of the call.
	Degree *sparse.Vector

	// Destination, if ≥ 0, stops the traversal at the level that reaches it.
	Destination int

	// MaxLevel, if > 0, stops the traversal after recording that level.
	// A value of 0 disables the limit.
	MaxLevel int

	// TrackLevel and TrackParent select the outputs.
	TrackLevel  bool
	TrackParent bool

	// Tuning holds the direction heuristic constants.
	Tuning Tuning

	// Workers bounds data-parallel pull steps; ≤ 1 runs sequentially.
	Workers int

	// Logger receives debug entries; defaults to a discarding logger.
	Logger logrus.FieldLogger

	// Metrics, if non-nil, is updated once per traversal.
	Metrics *Metrics

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with:
//   - levels tracked, parents not tracked
//   - no destination and no level limit
//   - DefaultTuning(), sequential pull
//   - a discarding logger and no metrics.
func DefaultOptions() Options {
	return Options{
		Destination: noDestination,
		TrackLevel:  true,
		Tuning:      DefaultTuning(),
		Workers:     1,
		Logger:      discardLogger,
	}
}

// WithTranspose supplies AT, enabling pull steps.
func WithTranspose(AT *sparse.Matrix) Option {
	return func(o *Options) { o.AT = AT }
}

// WithDegree supplies a precomputed out-degree vector of A so Run does not
// derive one. It only matters together with WithTranspose and is only read.
func WithDegree(d *sparse.Vector) Option {
	return func(o *Options) { o.Degree = d }
}

// WithDestination stops the traversal as soon as dst is discovered.
// Negative dst → ErrOptionViolation; dst ≥ n is reported by Run as
// ErrDestinationOutOfRange.
func WithDestination(dst int) Option {
	return func(o *Options) {
		if dst < 0 {
			o.err = fmt.Errorf("%w: destination cannot be negative (%d)", ErrOptionViolation, dst)
			return
		}
		o.Destination = dst
	}
}

// WithMaxLevel stops the traversal after level k is recorded.
//
//	k > 0: limit to k levels
//	k == 0: explicit no limit
//	k < 0: invalid option → ErrOptionViolation
//
// A bound of zero levels (source only) cannot be expressed: 0 is the
// no-limit value. Level 0 holds only the source, so such a caller needs no
// traversal.
func WithMaxLevel(k int) Option {
	return func(o *Options) {
		if k < 0 {
			o.err = fmt.Errorf("%w: max level cannot be negative (%d)", ErrOptionViolation, k)
			return
		}
		o.MaxLevel = k
	}
}

// WithLevel toggles the level vector output.
func WithLevel(on bool) Option {
	return func(o *Options) { o.TrackLevel = on }
}

// WithParent toggles the parent vector output.
func WithParent(on bool) Option {
	return func(o *Options) { o.TrackParent = on }
}

// WithTuning replaces the direction heuristic constants. Invalid values
// surface as ErrOptionViolation.
func WithTuning(t Tuning) Option {
	return func(o *Options) {
		if err := t.Validate(); err != nil {
			o.err = err
			return
		}
		o.Tuning = t
	}
}

// WithWorkers bounds parallelism of pull steps. w < 1 → ErrOptionViolation.
func WithWorkers(w int) Option {
	return func(o *Options) {
		if w < 1 {
			o.err = fmt.Errorf("%w: workers must be ≥ 1 (%d)", ErrOptionViolation, w)
			return
		}
		o.Workers = w
	}
}

// WithLogger sets the debug logger. nil keeps the current one.
func WithLogger(l logrus.FieldLogger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// WithMetrics attaches Prometheus collectors.
func WithMetrics(m *Metrics) Option {
	return func(o *Options) { o.Metrics = m }
}

// Stats summarizes one traversal.
type Stats struct {
	// Levels is the deepest level recorded (0 when only the source was visited).
	Levels int

	// PushLevels and PullLevels count propagation steps by direction.
	PushLevels int
	PullLevels int

	// Switches counts direction changes.
	Switches int

	// Visited is the number of nodes with a recorded level or parent.
	Visited int

	// Reached reports whether the destination was discovered; false when
	// no destination was given.
	Reached bool
}

// Result holds the outcome of a traversal:
//   - Level: level[i] = hop distance from the source, absent if unreachable
//     (nil unless levels were tracked).
//   - Parent: parent[i] = a predecessor of i on some shortest path,
//     parent[src] = src (nil unless parents were tracked).
//
// When several shortest-path predecessors exist, which one is recorded is
// deterministic for a given input but otherwise unspecified.
type Result struct {
	Level  *sparse.Vector
	Parent *sparse.Vector
	Stats  Stats
}

// LevelOf returns the level of node i and whether it was reached.
func (r *Result) LevelOf(i int) (int, bool) {
	if r.Level == nil {
		return 0, false
	}
	x, ok := r.Level.Get(i)

	return int(x), ok
}

// ParentOf returns the recorded predecessor of node i.
func (r *Result) ParentOf(i int) (int, bool) {
	if r.Parent == nil {
		return 0, false
	}
	x, ok := r.Parent.Get(i)

	return int(x), ok
}
