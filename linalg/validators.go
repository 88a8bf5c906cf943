// SPDX-License-Identifier: MIT
// Package: linalg
//
// Purpose:
//  - Single source of truth for construction and index checks.
//  - Return plain sentinel errors (no wrapping) so facades can wrap uniformly.
//
// Note:
//  - Shape compatibility between operands is never validated here: it is
//    encoded in the Dim type parameters and rejected by the compiler.

package linalg

import "fmt"

// validateSize ensures a dimension type reports a positive size.
// Complexity: O(1).
func validateSize(n int) error {
	if n <= 0 {
		return fmt.Errorf("size %d: %w", n, ErrBadShape)
	}

	return nil
}

// validateCount ensures a flat element list has exactly want elements.
// Complexity: O(1).
func validateCount(got, want int) error {
	if got != want {
		return fmt.Errorf("got %d elements, want %d: %w", got, want, ErrElementCount)
	}

	return nil
}

// validateIndex ensures 0 <= i < n.
// Complexity: O(1).
func validateIndex(i, n int) error {
	if i < 0 || i >= n {
		return fmt.Errorf("index %d of %d: %w", i, n, ErrOutOfRange)
	}

	return nil
}
