// SPDX-License-Identifier: MIT
// Package: linalg
//
// Purpose:
//   - Private flat-slice kernels shared by Vector and Matrix so each operator
//     is written once, regardless of operand shape or ownership.
//   - Reductions and products go through gonum's float32 BLAS (blas32);
//     element-wise scaling stays in plain loops to keep exact IEEE semantics.
//
// Determinism & Performance:
//   - Every kernel allocates exactly one output and never writes to its inputs.
//   - Storage is row-major with Stride == Cols, the layout blas32.General expects.

package linalg

import (
	"strconv"
	"strings"

	"gonum.org/v1/gonum/blas"
	"gonum.org/v1/gonum/blas/blas32"
)

// vec32 views a flat slice as a unit-stride blas32.Vector (no copy).
func vec32(x []float32) blas32.Vector {
	return blas32.Vector{N: len(x), Inc: 1, Data: x}
}

// general32 views a row-major rows×cols slice as a blas32.General (no copy).
func general32(rows, cols int, data []float32) blas32.General {
	return blas32.General{Rows: rows, Cols: cols, Stride: max(1, cols), Data: data}
}

// addScaled returns a fresh slice holding a + alpha*b.
// alpha is ±1 at every call site, so the result is the exact element-wise
// sum or difference.
// Complexity: O(n).
func addScaled(a, b []float32, alpha float32) []float32 {
	out := make([]float32, len(a))
	copy(out, a)
	blas32.Axpy(alpha, vec32(b), vec32(out))

	return out
}

// scaled returns a fresh slice holding a[i]*s.
// Scal is avoided on purpose: it zeroes the vector for s == 0 instead of
// propagating Inf*0 = NaN.
// Complexity: O(n).
func scaled(a []float32, s float32) []float32 {
	out := make([]float32, len(a))
	for i, v := range a {
		out[i] = v * s
	}

	return out
}

// divided returns a fresh slice holding a[i]/s. s == 0 yields ±Inf or NaN.
// Complexity: O(n).
func divided(a []float32, s float32) []float32 {
	out := make([]float32, len(a))
	for i, v := range a {
		out[i] = v / s
	}

	return out
}

// dot returns Σ a[i]*b[i]. len(a) == len(b) is guaranteed by the Dim types.
// Complexity: O(n).
func dot(a, b []float32) float32 {
	return blas32.Dot(vec32(a), vec32(b))
}

// gemv returns y = A*x for a row-major rows×cols A.
// Complexity: O(rows*cols).
func gemv(rows, cols int, a, x []float32) []float32 {
	y := make([]float32, rows)
	if rows == 0 || cols == 0 {
		return y
	}
	blas32.Gemv(blas.NoTrans, 1, general32(rows, cols, a), vec32(x), 0, vec32(y))

	return y
}

// gemm returns C = A*B for a row-major n×k A and k×n B, so C is n×n.
// Column j of C is A times column j of B, one Gemv per column; both columns
// are strided views (Inc n) into the row-major backing slices. Every product
// term is summed, so 0·Inf yields NaN exactly as in gemv.
// Complexity: O(n*n*k).
func gemm(n, k int, a, b []float32) []float32 {
	c := make([]float32, n*n)
	if n == 0 || k == 0 {
		return c
	}
	ga := general32(n, k, a)
	for j := 0; j < n; j++ {
		blas32.Gemv(blas.NoTrans, 1, ga,
			blas32.Vector{N: k, Inc: n, Data: b[j:]},
			0,
			blas32.Vector{N: n, Inc: n, Data: c[j:]},
		)
	}

	return c
}

// transposed returns the row-major cols×rows transpose of a row-major rows×cols slice.
// data[i*cols + j] → out[j*rows + i].
// Complexity: O(rows*cols).
func transposed(rows, cols int, a []float32) []float32 {
	out := make([]float32, len(a))
	var i, j, base int
	for i = 0; i < rows; i++ {
		base = i * cols
		for j = 0; j < cols; j++ {
			out[j*rows+i] = a[base+j]
		}
	}

	return out
}

// allPairs reports whether pred holds for every (a[i], b[i]).
// Complexity: O(n), short-circuits on the first failure.
func allPairs(a, b []float32, pred func(x, y float32) bool) bool {
	for i := range a {
		if !pred(a[i], b[i]) {
			return false
		}
	}

	return true
}

// Element predicates used by the relational methods.
func eq(x, y float32) bool { return x == y }
func lt(x, y float32) bool { return x < y }
func le(x, y float32) bool { return x <= y }
func gt(x, y float32) bool { return x > y }
func ge(x, y float32) bool { return x >= y }

// closeTo returns a predicate for |x-y| <= tol. Exactly equal values
// (including matching infinities) always pass.
func closeTo(tol float32) func(x, y float32) bool {
	return func(x, y float32) bool {
		if x == y {
			return true
		}
		d := x - y
		if d < 0 {
			d = -d
		}

		return d <= tol
	}
}

// formatRow writes "[a, b, c]" using the shortest float32 representation.
func formatRow(sb *strings.Builder, row []float32) {
	sb.WriteByte('[')
	for j, v := range row {
		if j > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(strconv.FormatFloat(float64(v), 'g', -1, 32))
	}
	sb.WriteByte(']')
}
