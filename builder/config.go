// SPDX-License-Identifier: MIT
// Package: lagraph/builder
//
// config.go - internal configuration and deterministic defaults.
//
// Deterministic defaults:
//   • idFn          = DefaultIDFn   ("0","1","2",...)
//   • rng           = nil           (pure/deterministic unless seeded)
//   • relation      = DefaultRelation
//   • bidirectional = false

package builder

import "math/rand"

// DefaultRelation is the relationship type of every emitted edge unless
// WithRelation overrides it.
const DefaultRelation = "RELATED"

// builderConfig aggregates all knobs used by constructors.
// It is passed by VALUE to constructors (immutable to callers).
type builderConfig struct {
	// Vertex ID strategy: index -> ID (deterministic).
	idFn IDFn
	// RNG for stochastic choices; nil means “no randomness”.
	rng *rand.Rand
	// Relationship type stamped on every edge.
	relation string
	// Emit v→u next to every u→v of undirected topologies.
	bidirectional bool
}

// newBuilderConfig constructs a config with deterministic defaults and applies
// all options in order (last wins).
// Complexity: O(len(opts)) time, O(1) space.
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		idFn:     DefaultIDFn,
		relation: DefaultRelation,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}
