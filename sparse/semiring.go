// SPDX-License-Identifier: MIT

// Package sparse - combining operator pairs.
//
// A Semiring (⊕, ⊗) defines how frontier values and matrix entries combine
// during propagation: products a ⊗ b are formed for every contributing inner
// index k and folded with ⊕. Matrix entries are boolean and enter the
// multiply as 1.
//
// Both predefined monoids are terminal: once a row has one contribution its
// value cannot change, which is what lets MxV stop at the first frontier
// neighbour and VxM skip already-written outputs.

package sparse

// Monoid is the additive part of a Semiring.
type Monoid struct {
	// Name identifies the monoid in logs and errors.
	Name string

	// Op folds a new contribution y into the accumulated value x.
	Op func(x, y int64) int64

	// Terminal reports whether x can no longer change under Op.
	// nil means the monoid has no terminal value.
	Terminal func(x int64) bool
}

// Semiring pairs an additive Monoid with a multiply operator.
type Semiring struct {
	// Name identifies the semiring in logs and errors.
	Name string

	// Add folds products for the same output index.
	Add Monoid

	// Multiply forms the product of the left operand a and the right operand b
	// meeting at inner index k (the frontier index that contributes).
	Multiply func(a, b int64, k int) int64
}

func (s Semiring) terminal(x int64) bool {
	return s.Add.Terminal != nil && s.Add.Terminal(x)
}

// LorMonoid is logical OR over {0,1}; 1 is terminal.
var LorMonoid = Monoid{
	Name: "LOR",
	Op: func(x, y int64) int64 {
		if x != 0 || y != 0 {
			return 1
		}

		return 0
	},
	Terminal: func(x int64) bool { return x != 0 },
}

// AnyMonoid keeps whichever value arrived first. Every value is terminal.
var AnyMonoid = Monoid{
	Name:     "ANY",
	Op:       func(x, _ int64) int64 { return x },
	Terminal: func(int64) bool { return true },
}

// LorLand is the reachability semiring: OR of ANDs over boolean values.
var LorLand = Semiring{
	Name: "LOR_LAND",
	Add:  LorMonoid,
	Multiply: func(a, b int64, _ int) int64 {
		if a != 0 && b != 0 {
			return 1
		}

		return 0
	},
}

// AnySecondI is the parent-tracking semiring: the product is the inner index
// k, i.e. the frontier node through which the output was reached, and ANY
// keeps one such predecessor.
var AnySecondI = Semiring{
	Name:     "ANY_SECONDI",
	Add:      AnyMonoid,
	Multiply: func(_, _ int64, k int) int64 { return int64(k) },
}
