package shortestpath

import (
	"fmt"

	"github.com/katalvlaran/lagraph/bfs"
)

// Option configures Find and Reachable.
type Option func(*Options)

// Options holds the query parameters. Invalid values are recorded in err
// and surfaced as ErrOptionViolation.
type Options struct {
	// Relations restricts traversal and edge resolution; empty means all.
	Relations []string

	// MinHops rejects shorter paths. Default 0.
	MinHops int

	// MaxHops bounds traversal depth; 0 means unbounded.
	MaxHops int

	// BFS is applied before the options Find sets itself, so it can tune the
	// traversal (workers, logger, metrics, tuning) but not disable parent
	// tracking.
	BFS []bfs.Option

	err error
}

// DefaultOptions returns every relation, no hop bounds.
func DefaultOptions() Options {
	return Options{}
}

// WithRelations restricts the query to the given relationship types.
func WithRelations(relations ...string) Option {
	return func(o *Options) { o.Relations = append(o.Relations[:0:0], relations...) }
}

// WithMinHops sets the minimum path length. Negative values are rejected.
func WithMinHops(h int) Option {
	return func(o *Options) {
		if h < 0 {
			o.err = fmt.Errorf("%w: minHops cannot be negative (%d)", ErrOptionViolation, h)
			return
		}
		o.MinHops = h
	}
}

// WithMaxHops sets the maximum path length; 0 disables the bound, so a
// zero-hop limit cannot be expressed. Only src itself lies within zero hops;
// WithMaxHops(0) therefore still searches without a bound.
// Negative values are rejected.
func WithMaxHops(h int) Option {
	return func(o *Options) {
		if h < 0 {
			o.err = fmt.Errorf("%w: maxHops cannot be negative (%d)", ErrOptionViolation, h)
			return
		}
		o.MaxHops = h
	}
}

// WithBFSOptions forwards traversal options to bfs.Run.
func WithBFSOptions(opts ...bfs.Option) Option {
	return func(o *Options) { o.BFS = append(o.BFS, opts...) }
}

func buildOptions(opts []Option) (Options, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return o, o.err
	}
	if o.MaxHops > 0 && o.MinHops > o.MaxHops {
		return o, fmt.Errorf("%w: minHops %d > maxHops %d", ErrOptionViolation, o.MinHops, o.MaxHops)
	}

	return o, nil
}
