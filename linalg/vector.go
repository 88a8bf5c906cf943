// SPDX-License-Identifier: MIT

package linalg

import (
	"slices"
	"strings"
)

// Vector is an immutable column vector of N float32 elements.
//
// The length is part of the type: Vector[D2] and Vector[D3] cannot be mixed,
// so no operator ever needs a runtime shape check. Operators return fresh
// values and never write to their operands, so sharing a Vector by plain
// assignment is safe.
//
// The zero value is the all-zero vector of length N.
type Vector[N Dim] struct {
	data []float32 // len == N.Size(); nil for the zero value
}

// VectorOperand is accepted on the right-hand side of every Vector operator.
// It is satisfied by both Vector[N] and *Vector[N], so call sites never care
// whether they hold a value or a pointer to one. A nil *Vector panics.
type VectorOperand[N Dim] interface {
	vector() Vector[N]
}

func (v Vector[N]) vector() Vector[N] { return v }

// NewVector builds a Vector[N] from exactly N elements. The input is copied.
//
// Errors:
//   - ErrBadShape     if N.Size() <= 0.
//   - ErrElementCount if len(elems) != N.Size(). No partial value is returned.
//
// Complexity: O(N).
func NewVector[N Dim](elems ...float32) (Vector[N], error) {
	n := sizeOf[N]()
	if err := validateSize(n); err != nil {
		return Vector[N]{}, linalgErrorf(opNewVector, err)
	}
	if err := validateCount(len(elems), n); err != nil {
		return Vector[N]{}, linalgErrorf(opNewVector, err)
	}

	return Vector[N]{data: slices.Clone(elems)}, nil
}

// MustVector is like NewVector but panics on a construction error.
// Use it for literals whose length is known to be right.
func MustVector[N Dim](elems ...float32) Vector[N] {
	v, err := NewVector[N](elems...)
	if err != nil {
		panic(err)
	}

	return v
}

// ZeroVector returns the all-zero Vector[N] with its storage allocated.
func ZeroVector[N Dim]() Vector[N] {
	return Vector[N]{data: make([]float32, max(sizeOf[N](), 0))}
}

// elems returns the backing slice, materialising zeros for the zero value.
// Callers must not write to the result.
func (v Vector[N]) elems() []float32 {
	if v.data == nil {
		return make([]float32, max(sizeOf[N](), 0))
	}

	return v.data
}

// Len returns N.
func (v Vector[N]) Len() int { return sizeOf[N]() }

// At returns element i, or ErrOutOfRange.
func (v Vector[N]) At(i int) (float32, error) {
	if err := validateIndex(i, v.Len()); err != nil {
		return 0, linalgErrorf(opVectorAt, err)
	}

	return v.elems()[i], nil
}

// Elems returns a copy of the elements in index order.
func (v Vector[N]) Elems() []float32 { return slices.Clone(v.elems()) }

// Clone returns an independent copy of v.
func (v Vector[N]) Clone() Vector[N] { return Vector[N]{data: v.Elems()} }

// Transpose reinterprets the column vector as a 1×N row matrix.
// Nothing is recomputed: a 1×N row-major matrix has the vector's layout.
func (v Vector[N]) Transpose() Matrix[D1, N] {
	return Matrix[D1, N]{data: v.Elems()}
}

// Add returns v + o element-wise.
func (v Vector[N]) Add(o VectorOperand[N]) Vector[N] {
	return Vector[N]{data: addScaled(v.elems(), o.vector().elems(), 1)}
}

// Sub returns v - o element-wise.
func (v Vector[N]) Sub(o VectorOperand[N]) Vector[N] {
	return Vector[N]{data: addScaled(v.elems(), o.vector().elems(), -1)}
}

// Scale returns s*v. NaN and Inf propagate.
func (v Vector[N]) Scale(s float32) Vector[N] {
	return Vector[N]{data: scaled(v.elems(), s)}
}

// Div returns v/s. Division by zero is not rejected and yields ±Inf or NaN.
func (v Vector[N]) Div(s float32) Vector[N] {
	return Vector[N]{data: divided(v.elems(), s)}
}

// Dot returns Σ v[i]*o[i].
func (v Vector[N]) Dot(o VectorOperand[N]) float32 {
	return dot(v.elems(), o.vector().elems())
}

// Cross returns the three-dimensional cross product a × b.
// It is only defined for D3; other lengths do not type-check.
func Cross(a, b VectorOperand[D3]) Vector[D3] {
	x, y := a.vector().elems(), b.vector().elems()

	// explicit conversions round each product, so no fused multiply-add
	return Vector[D3]{data: []float32{
		float32(x[1]*y[2]) - float32(x[2]*y[1]),
		float32(x[2]*y[0]) - float32(x[0]*y[2]),
		float32(x[0]*y[1]) - float32(x[1]*y[0]),
	}}
}

// Equal reports exact element-wise equality (no epsilon; NaN != NaN).
func (v Vector[N]) Equal(o VectorOperand[N]) bool {
	return allPairs(v.elems(), o.vector().elems(), eq)
}

// AllClose reports whether |v[i]-o[i]| <= tol for every element.
func (v Vector[N]) AllClose(o VectorOperand[N], tol float32) bool {
	return allPairs(v.elems(), o.vector().elems(), closeTo(tol))
}

// Less reports whether v[i] < o[i] for every i.
func (v Vector[N]) Less(o VectorOperand[N]) bool {
	return allPairs(v.elems(), o.vector().elems(), lt)
}

// LessEqual reports whether v[i] <= o[i] for every i.
func (v Vector[N]) LessEqual(o VectorOperand[N]) bool {
	return allPairs(v.elems(), o.vector().elems(), le)
}

// Greater reports whether v[i] > o[i] for every i.
func (v Vector[N]) Greater(o VectorOperand[N]) bool {
	return allPairs(v.elems(), o.vector().elems(), gt)
}

// GreaterEqual reports whether v[i] >= o[i] for every i.
func (v Vector[N]) GreaterEqual(o VectorOperand[N]) bool {
	return allPairs(v.elems(), o.vector().elems(), ge)
}

// String implements fmt.Stringer, e.g. "[2, 0]".
func (v Vector[N]) String() string {
	var sb strings.Builder
	formatRow(&sb, v.elems())

	return sb.String()
}
