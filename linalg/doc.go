// Package linalg provides fixed-dimension float32 vectors and matrices whose
// sizes are part of their types.
//
// What & Why:
//
//	Small numeric code (transforms, rotations, physics steps) keeps doing the
//	same few operations on 2-, 3- and 4-element values. Checking shapes at
//	runtime for every call is noise; here the shape lives in the type, so
//	Vector[D2].Add(Vector[D3]) simply does not compile.
//
// Types:
//
//	Dim            – phantom dimension parameter; D1…D6 provided, add your own.
//	Vector[N]      – column vector of N elements.
//	Matrix[N, M]   – N rows × M columns, built from column-major input.
//
// Operators (all pure, all return fresh values):
//
//	v.Add(w) v.Sub(w) v.Scale(s) v.Div(s) v.Dot(w) Cross(a, b) v.Transpose()
//	m.Add(n) m.Sub(n) m.Scale(s) m.Div(s) m.Transpose()
//	m.MulVec(v)  Matrix[N, M] × Vector[M]    → Vector[N]
//	m.Mul(n)     Matrix[N, M] × Matrix[M, N] → Matrix[N, N]
//
// The right operand of every binary operator may be a value or a pointer;
// the left operand may be either too, since all methods have value receivers.
//
// Comparisons:
//
//	Equal is exact float equality. Less, LessEqual, Greater and GreaterEqual
//	hold only when the relation holds for every element pair. AllClose
//	compares within an absolute tolerance.
//
// Errors:
//
//	Only construction can fail: NewVector/NewMatrix return ErrElementCount
//	or ErrBadShape; MustVector/MustMatrix panic with the same error.
//	Division by zero and other IEEE exceptional results are plain values.
//
// Complexity:
//
//	Element-wise ops and MulVec are O(N*M); Mul is O(N²*M). Dot, MulVec and
//	Mul run on gonum's float32 BLAS (blas32).
//
// Quick example:
//
//	m := linalg.MustMatrix[linalg.D2, linalg.D2](2, 0, 0, 2)
//	v := linalg.MustVector[linalg.D2](1, 0)
//	fmt.Println(m.MulVec(v)) // [2, 0]
package linalg
