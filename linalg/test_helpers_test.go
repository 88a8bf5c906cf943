// SPDX-License-Identifier: MIT
// Package linalg_test contains test helpers.
//
// Purpose:
//   • Small deterministic fixtures shared by vector, matrix and property tests.
//   • Keep values small integers where exact float equality is asserted.

package linalg_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/fixdim/linalg"
	"github.com/stretchr/testify/require"
)

// dZero is a dimension type with an invalid (zero) size.
type dZero struct{}

func (dZero) Size() int { return 0 }

// d8 is a caller-declared dimension, proving Dim is open for extension.
type d8 struct{}

func (d8) Size() int { return 8 }

// rotation returns R(θ) built from the column-major list [cos, -sin, sin, cos].
func rotation(theta float32) linalg.Matrix[linalg.D2, linalg.D2] {
	c := float32(math.Cos(float64(theta)))
	s := float32(math.Sin(float64(theta)))

	return linalg.MustMatrix[linalg.D2, linalg.D2](c, -s, s, c)
}

// requireVecEqual FAILS unless got equals want exactly (element-wise).
func requireVecEqual[N linalg.Dim](t testing.TB, want, got linalg.Vector[N]) {
	t.Helper()
	require.Truef(t, got.Equal(want), "want %v, got %v", want, got)
}

// requireMatEqual FAILS unless got equals want exactly (element-wise).
func requireMatEqual[N, M linalg.Dim](t testing.TB, want, got linalg.Matrix[N, M]) {
	t.Helper()
	require.Truef(t, got.Equal(want), "want\n%vgot\n%v", want, got)
}

// mustAt reads m(i,j) or fails the test.
func mustAt[N, M linalg.Dim](t testing.TB, m linalg.Matrix[N, M], i, j int) float32 {
	t.Helper()
	v, err := m.At(i, j)
	require.NoError(t, err)

	return v
}
