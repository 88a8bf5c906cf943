// SPDX-License-Identifier: MIT
// Package linalg: sentinel error set.
// Constructors return these sentinels wrapped with an operation tag via
// linalgErrorf; callers match them with errors.Is. Arithmetic never returns
// an error: dimension mismatches are type errors and NaN/Inf are plain values.

package linalg

import (
	"errors"
	"fmt"
)

var (
	// ErrBadShape is returned when a dimension type reports a size <= 0.
	ErrBadShape = errors.New("linalg: invalid shape")

	// ErrElementCount is returned when a constructor receives a flat element
	// list whose length differs from the size fixed by the dimension types.
	ErrElementCount = errors.New("linalg: element count mismatch")

	// ErrOutOfRange indicates that an index (row, column or element) is outside
	// valid bounds. Public indexers return this, they do not panic.
	ErrOutOfRange = errors.New("linalg: index out of range")
)

// Operation name constants for unified error wrapping.
const (
	opNewVector = "NewVector"
	opNewMatrix = "NewMatrix"
	opVectorAt  = "Vector.At"
	opMatrixAt  = "Matrix.At"
)

// linalgErrorf wraps err with an operation tag, preserving the sentinel via %w.
// Use only when err != nil.
func linalgErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
