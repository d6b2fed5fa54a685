package bfs

import (
	"errors"
	"fmt"
	"io"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/lagraph/sparse"
)

// propagation directions, also used as metric labels
const (
	dirPush = "push"
	dirPull = "pull"
)

var discardLogger logrus.FieldLogger = func() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)

	return l
}()

// traversal encapsulates the mutable state of one Run call.
type traversal struct {
	A, AT  *sparse.Matrix
	degree *sparse.Vector
	n, src int
	opts   Options
	log    logrus.FieldLogger

	semiring sparse.Semiring
	desc     sparse.Descriptor

	// engine-owned scratch: current frontier and propagation target
	q, next *sparse.Vector
	// outputs; mask aliases whichever one guards revisits
	level, parent, mask *sparse.Vector

	nq, lastNq      int
	edgesUnexplored int64
	doPush          bool
	anyPull         bool
	pushPull        bool
	lastDir         string

	stats Stats
}

// Run performs a breadth-first search over A from src.
//
// Each level either pushes the frontier through A or, when a transpose is
// supplied, may pull through AT for every unvisited node; the choice
// follows the Tuning heuristic. Without WithDegree the out-degree vector is
// computed once per call. Results are identical in
// level values whichever direction is chosen.
//
// Errors: ErrMatrixNil, ErrNonSquare, ErrSourceOutOfRange,
// ErrDestinationOutOfRange, ErrTransposeShape, ErrDegreeShape,
// ErrNothingTracked, ErrOptionViolation, or a wrapped sparse error. On error
// no vectors are returned.
//
// Complexity: O(n + edges examined); push levels cost the frontier's
// out-edges, pull levels the in-edges of unvisited nodes up to the first hit.
func Run(A *sparse.Matrix, src int, opts ...Option) (*Result, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if err := validate(A, src, &o); err != nil {
		return nil, err
	}

	t := &traversal{A: A, AT: o.AT, degree: o.Degree, n: A.Rows(), src: src, opts: o, log: o.Logger}
	defer t.release()

	if err := t.init(); err != nil {
		return nil, err
	}
	if err := t.loop(); err != nil {
		return nil, err
	}
	o.Metrics.observe(t.mode(), t.stats)

	return t.result(), nil
}

func validate(A *sparse.Matrix, src int, o *Options) error {
	if A == nil {
		return ErrMatrixNil
	}
	n := A.Rows()
	if !A.IsSquare() {
		return fmt.Errorf("%w: %dx%d", ErrNonSquare, A.Rows(), A.Cols())
	}
	if src < 0 || src >= n {
		return fmt.Errorf("%w: %d not in [0,%d)", ErrSourceOutOfRange, src, n)
	}
	if o.Destination >= n {
		return fmt.Errorf("%w: %d not in [0,%d)", ErrDestinationOutOfRange, o.Destination, n)
	}
	if o.AT != nil && (o.AT.Rows() != n || o.AT.Cols() != n) {
		return fmt.Errorf("%w: %dx%d, want %dx%d", ErrTransposeShape, o.AT.Rows(), o.AT.Cols(), n, n)
	}
	if o.Degree != nil && o.Degree.Size() != n {
		return fmt.Errorf("%w: %d, want %d", ErrDegreeShape, o.Degree.Size(), n)
	}
	if !o.TrackLevel && !o.TrackParent {
		return ErrNothingTracked
	}

	return nil
}

// init allocates the vectors and seeds level 0 with the source.
func (t *traversal) init() error {
	var err error
	alloc := func() *sparse.Vector {
		if err != nil {
			return nil
		}
		var v *sparse.Vector
		v, err = sparse.NewVector(t.n)
		return v
	}
	t.q, t.next = alloc(), alloc()
	if t.opts.TrackLevel {
		t.level = alloc()
	}
	if t.opts.TrackParent {
		t.parent = alloc()
	}
	if err != nil {
		return fmt.Errorf("bfs: %w", err)
	}

	// parent mode carries node ids through the frontier; level-only mode
	// carries booleans
	var seed []error
	if t.parent != nil {
		t.semiring = sparse.AnySecondI
		t.mask = t.parent
		seed = append(seed, t.parent.Set(t.src, int64(t.src)), t.q.Set(t.src, int64(t.src)))
	} else {
		t.semiring = sparse.LorLand
		t.mask = t.level
		seed = append(seed, t.q.Set(t.src, 1))
	}
	if t.level != nil {
		seed = append(seed, t.level.Set(t.src, 0))
	}
	if err := errors.Join(seed...); err != nil {
		return fmt.Errorf("bfs: seed source %d: %w", t.src, err)
	}

	// a transpose alone enables pull; the degree vector is then derived
	// here and dropped by release
	if t.AT != nil && t.degree == nil {
		if t.degree, err = sparse.RowDegree(t.A); err != nil {
			return fmt.Errorf("bfs: %w", err)
		}
	}

	t.desc = sparse.DescRSC
	t.desc.Workers = t.opts.Workers
	t.nq = 1
	t.edgesUnexplored = int64(t.A.Nvals())
	t.doPush = true
	t.pushPull = t.AT != nil

	return nil
}

func (t *traversal) loop() error {
	if t.opts.Destination == t.src {
		t.stats.Reached = true
		t.finish("destination is source")

		return nil
	}

	reason := "all nodes visited"
	for nvisited, k := 1, 1; nvisited < t.n; nvisited, k = nvisited+t.nq, k+1 {
		if t.pushPull {
			t.selectDirection()
		}
		if err := t.propagate(); err != nil {
			return fmt.Errorf("bfs: level %d: %w", k, err)
		}

		t.lastNq = t.nq
		t.nq = t.q.Nvals()
		if t.nq == 0 {
			reason = "frontier empty"
			break
		}
		if err := t.record(k); err != nil {
			return fmt.Errorf("bfs: level %d: %w", k, err)
		}
		t.stats.Levels = k

		if t.opts.Destination >= 0 && t.q.Has(t.opts.Destination) {
			t.stats.Reached = true
			reason = "destination reached"
			break
		}
		if t.opts.MaxLevel > 0 && k == t.opts.MaxLevel {
			reason = "max level reached"
			break
		}
	}
	t.finish(reason)

	return nil
}

// selectDirection applies the push/pull heuristic for the coming level.
func (t *traversal) selectDirection() {
	tu := t.opts.Tuning
	if t.doPush {
		growing := t.nq > t.lastNq
		switchToPull := false
		switch {
		case t.edgesUnexplored < int64(t.n):
			// almost everything explored: push for the remainder
			t.pushPull = false
		case t.anyPull:
			switchToPull = growing && t.nq > int(float64(t.n)/tu.Beta1)
		default:
			edgesInFrontier := t.degree.SumOver(t.q)
			t.edgesUnexplored -= edgesInFrontier
			switchToPull = growing && edgesInFrontier > int64(float64(t.edgesUnexplored)/tu.Alpha)
		}
		if switchToPull {
			t.doPush = false
		}
	} else {
		shrinking := t.nq < t.lastNq
		if shrinking && t.nq <= int(float64(t.n)/tu.Beta2) {
			t.doPush = true
		}
	}
	t.anyPull = t.anyPull || !t.doPush
}

// propagate computes next⟨¬mask⟩ from q and swaps the two.
func (t *traversal) propagate() error {
	dir := dirPush
	var err error
	if t.doPush {
		err = sparse.VxM(t.next, t.mask, t.desc, t.semiring, t.q, t.A)
		t.stats.PushLevels++
	} else {
		dir = dirPull
		err = sparse.MxV(t.next, t.mask, t.desc, t.semiring, t.AT, t.q)
		t.stats.PullLevels++
	}
	if err != nil {
		return err
	}
	if t.lastDir != "" && t.lastDir != dir {
		t.stats.Switches++
		t.log.WithFields(logrus.Fields{
			"level":            t.stats.Levels + 1,
			"nq":               t.nq,
			"direction":        dir,
			"edges_unexplored": t.edgesUnexplored,
		}).Debug("bfs: direction switch")
	}
	t.lastDir = dir
	t.q, t.next = t.next, t.q

	return nil
}

// record writes parents and levels of the new frontier; both writes are
// write-once.
func (t *traversal) record(k int) error {
	if t.parent != nil {
		if err := t.parent.AssignMasked(t.q, t.q); err != nil {
			return err
		}
	}
	if t.level != nil {
		if err := t.level.AssignScalarMasked(t.q, int64(k)); err != nil {
			return err
		}
	}

	return nil
}

func (t *traversal) finish(reason string) {
	t.stats.Visited = t.mask.Nvals()
	t.log.WithFields(logrus.Fields{
		"source":      t.src,
		"levels":      t.stats.Levels,
		"visited":     t.stats.Visited,
		"push_levels": t.stats.PushLevels,
		"pull_levels": t.stats.PullLevels,
		"reached":     t.stats.Reached,
	}).Debugf("bfs: done, %s", reason)
}

func (t *traversal) mode() string {
	switch {
	case t.level != nil && t.parent != nil:
		return "level+parent"
	case t.parent != nil:
		return "parent"
	default:
		return "level"
	}
}

// result hands the output vectors to the caller.
func (t *traversal) result() *Result {
	r := &Result{Level: t.level, Parent: t.parent, Stats: t.stats}
	t.level, t.parent = nil, nil

	return r
}

// release drops every vector still owned by the traversal; on an error
// path that includes the outputs.
func (t *traversal) release() {
	t.q, t.next, t.degree = nil, nil, nil
	t.level, t.parent, t.mask = nil, nil, nil
}
