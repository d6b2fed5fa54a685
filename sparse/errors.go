// SPDX-License-Identifier: MIT
// Package sparse: sentinel error set.
// Every message is prefixed with "sparse: " for grep-ability. Callers match
// with errors.Is; call sites attach context with fmt.Errorf("...: %w", ErrX).

package sparse

import (
	"errors"
	"fmt"
)

var (
	// ErrNilMatrix is returned when a nil *Matrix is passed to an operation.
	ErrNilMatrix = errors.New("sparse: matrix is nil")

	// ErrNilVector is returned when a required *Vector operand is nil.
	ErrNilVector = errors.New("sparse: vector is nil")

	// ErrOutOfRange indicates that a row, column or vector index is outside
	// the valid bounds of its container.
	ErrOutOfRange = errors.New("sparse: index out of range")

	// ErrInvalidDimensions indicates a negative dimension.
	ErrInvalidDimensions = errors.New("sparse: dimensions must be >= 0")

	// ErrDimensionMismatch indicates incompatible operand sizes, e.g. a frontier
	// whose length differs from the matrix dimension it is multiplied with.
	ErrDimensionMismatch = errors.New("sparse: dimension mismatch")

	// ErrAliasedOperand indicates that the output vector of a kernel is the same
	// object as one of its inputs. Kernels never compute in place.
	ErrAliasedOperand = errors.New("sparse: output aliases an input")

	// ErrAllocation signals that storage for the requested dimension cannot be
	// provided (it exceeds MaxDimension). It is the resource-exhaustion class:
	// callers must treat it as fatal for the current operation.
	ErrAllocation = errors.New("sparse: allocation failed")

	// ErrOverwrite is returned by the write-once assignments when the target
	// already holds an entry at an index selected by the mask.
	ErrOverwrite = errors.New("sparse: entry already present")
)

// opErrorf attaches an operation tag to a sentinel, keeping it matchable.
func opErrorf(op string, err error) error {
	return fmt.Errorf("%s: %w", op, err)
}
