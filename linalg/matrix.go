// SPDX-License-Identifier: MIT

package linalg

import (
	"slices"
	"strings"
)

// Matrix is an immutable N×M matrix of float32 values (N rows, M columns).
//
// Constructors take column-major input; storage is row-major with stride M,
// the layout of blas32.General. Both dimensions are part of the type, so
// operand compatibility is checked by the compiler.
//
// The zero value is the N×M zero matrix.
type Matrix[N, M Dim] struct {
	data []float32 // row-major, len == N*M; nil for the zero value
}

// MatrixOperand is accepted on the right-hand side of every Matrix operator.
// It is satisfied by both Matrix[N, M] and *Matrix[N, M]. A nil *Matrix panics.
type MatrixOperand[N, M Dim] interface {
	matrix() Matrix[N, M]
}

func (m Matrix[N, M]) matrix() Matrix[N, M] { return m }

// NewMatrix builds a Matrix[N, M] from exactly N*M elements in column-major
// order: the first N elements fill column 0, the next N fill column 1, and so on.
//
// Errors:
//   - ErrBadShape     if N.Size() <= 0 or M.Size() <= 0.
//   - ErrElementCount if len(colMajor) != N*M. No partial value is returned.
//
// Complexity: O(N*M).
func NewMatrix[N, M Dim](colMajor ...float32) (Matrix[N, M], error) {
	rows, cols := sizeOf[N](), sizeOf[M]()
	if err := validateSize(rows); err != nil {
		return Matrix[N, M]{}, linalgErrorf(opNewMatrix, err)
	}
	if err := validateSize(cols); err != nil {
		return Matrix[N, M]{}, linalgErrorf(opNewMatrix, err)
	}
	if err := validateCount(len(colMajor), rows*cols); err != nil {
		return Matrix[N, M]{}, linalgErrorf(opNewMatrix, err)
	}

	// A column-major N×M list is the row-major layout of the M×N transpose.
	return Matrix[N, M]{data: transposed(cols, rows, colMajor)}, nil
}

// MustMatrix is like NewMatrix but panics on a construction error.
func MustMatrix[N, M Dim](colMajor ...float32) Matrix[N, M] {
	m, err := NewMatrix[N, M](colMajor...)
	if err != nil {
		panic(err)
	}

	return m
}

// ZeroMatrix returns the N×M zero matrix with its storage allocated.
func ZeroMatrix[N, M Dim]() Matrix[N, M] {
	return Matrix[N, M]{data: make([]float32, max(sizeOf[N](), 0)*max(sizeOf[M](), 0))}
}

// Identity returns the N×N identity matrix.
// Complexity: O(N²).
func Identity[N Dim]() Matrix[N, N] {
	id := ZeroMatrix[N, N]()
	n := sizeOf[N]()
	for i := 0; i < n; i++ {
		id.data[i*n+i] = 1
	}

	return id
}

// elems returns the row-major backing slice, materialising zeros for the
// zero value. Callers must not write to the result.
func (m Matrix[N, M]) elems() []float32 {
	if m.data == nil {
		return make([]float32, max(sizeOf[N](), 0)*max(sizeOf[M](), 0))
	}

	return m.data
}

// Rows returns N.
func (m Matrix[N, M]) Rows() int { return sizeOf[N]() }

// Cols returns M.
func (m Matrix[N, M]) Cols() int { return sizeOf[M]() }

// At returns the element at (row, col), or ErrOutOfRange.
func (m Matrix[N, M]) At(row, col int) (float32, error) {
	if err := validateIndex(row, m.Rows()); err != nil {
		return 0, linalgErrorf(opMatrixAt, err)
	}
	if err := validateIndex(col, m.Cols()); err != nil {
		return 0, linalgErrorf(opMatrixAt, err)
	}

	return m.elems()[row*m.Cols()+col], nil
}

// ColMajor returns a copy of the elements in column-major order, the same
// layout NewMatrix accepts.
func (m Matrix[N, M]) ColMajor() []float32 {
	return transposed(m.Rows(), m.Cols(), m.elems())
}

// Clone returns an independent copy of m.
func (m Matrix[N, M]) Clone() Matrix[N, M] {
	return Matrix[N, M]{data: slices.Clone(m.elems())}
}

// Transpose returns mᵀ: out[j][i] = m[i][j].
// Complexity: O(N*M).
func (m Matrix[N, M]) Transpose() Matrix[M, N] {
	return Matrix[M, N]{data: transposed(m.Rows(), m.Cols(), m.elems())}
}

// Add returns m + o element-wise.
func (m Matrix[N, M]) Add(o MatrixOperand[N, M]) Matrix[N, M] {
	return Matrix[N, M]{data: addScaled(m.elems(), o.matrix().elems(), 1)}
}

// Sub returns m - o element-wise.
func (m Matrix[N, M]) Sub(o MatrixOperand[N, M]) Matrix[N, M] {
	return Matrix[N, M]{data: addScaled(m.elems(), o.matrix().elems(), -1)}
}

// Scale returns s*m. NaN and Inf propagate.
func (m Matrix[N, M]) Scale(s float32) Matrix[N, M] {
	return Matrix[N, M]{data: scaled(m.elems(), s)}
}

// Div returns m/s. Division by zero yields ±Inf or NaN.
func (m Matrix[N, M]) Div(s float32) Matrix[N, M] {
	return Matrix[N, M]{data: divided(m.elems(), s)}
}

// MulVec applies m as a linear map: r[i] = Σ_j m[i][j]*v[j].
// Complexity: O(N*M).
func (m Matrix[N, M]) MulVec(v VectorOperand[M]) Vector[N] {
	return Vector[N]{data: gemv(m.Rows(), m.Cols(), m.elems(), v.vector().elems())}
}

// Mul returns the product m*o. The right operand must be M×N, so the
// product is always square (N×N); general rectangular products are not
// part of this algebra.
//
// Every term of each sum is evaluated, so 0·Inf yields NaN as in MulVec.
// Complexity: O(N²*M).
func (m Matrix[N, M]) Mul(o MatrixOperand[M, N]) Matrix[N, N] {
	return Matrix[N, N]{data: gemm(m.Rows(), m.Cols(), m.elems(), o.matrix().elems())}
}

// Equal reports exact element-wise equality (no epsilon; NaN != NaN).
func (m Matrix[N, M]) Equal(o MatrixOperand[N, M]) bool {
	return allPairs(m.elems(), o.matrix().elems(), eq)
}

// AllClose reports whether |m[i][j]-o[i][j]| <= tol for every element.
func (m Matrix[N, M]) AllClose(o MatrixOperand[N, M], tol float32) bool {
	return allPairs(m.elems(), o.matrix().elems(), closeTo(tol))
}

// Less reports whether m[i][j] < o[i][j] for every element.
func (m Matrix[N, M]) Less(o MatrixOperand[N, M]) bool {
	return allPairs(m.elems(), o.matrix().elems(), lt)
}

// LessEqual reports whether m[i][j] <= o[i][j] for every element.
func (m Matrix[N, M]) LessEqual(o MatrixOperand[N, M]) bool {
	return allPairs(m.elems(), o.matrix().elems(), le)
}

// Greater reports whether m[i][j] > o[i][j] for every element.
func (m Matrix[N, M]) Greater(o MatrixOperand[N, M]) bool {
	return allPairs(m.elems(), o.matrix().elems(), gt)
}

// GreaterEqual reports whether m[i][j] >= o[i][j] for every element.
func (m Matrix[N, M]) GreaterEqual(o MatrixOperand[N, M]) bool {
	return allPairs(m.elems(), o.matrix().elems(), ge)
}

// String implements fmt.Stringer, one bracketed row per line.
func (m Matrix[N, M]) String() string {
	var sb strings.Builder
	rows, cols := m.Rows(), m.Cols()
	data := m.elems()
	for i := 0; i < rows; i++ {
		formatRow(&sb, data[i*cols:(i+1)*cols])
		sb.WriteByte('\n')
	}

	return sb.String()
}
