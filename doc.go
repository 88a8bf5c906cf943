// Package fixdim bundles two small building blocks for numeric and concurrent
// Go code.
//
// What is inside?
//
//	linalg/: float32 Vector[N] and Matrix[N, M] whose sizes are type
//	         parameters, so shape mismatches fail at compile time:
//	           • element-wise Add, Sub, Scale, Div
//	           • Dot, Cross (3-D only), Transpose
//	           • Matrix×Vector and square Matrix×Matrix on gonum blas32
//	           • exact Equal, all-pairs Less/Greater, AllClose
//	shared/: Ptr[T], a mutex-guarded cell that many goroutines can Set and
//	         Snapshot without data races; snapshots are independent copies.
//
// The two packages are independent and compose only in caller code, e.g. a
// shared.Ptr[linalg.Matrix[linalg.D3, linalg.D3]] holding a live transform.
//
// Quick example:
//
//	m := linalg.MustMatrix[linalg.D2, linalg.D2](2, 0, 0, 2)
//	v := linalg.MustVector[linalg.D2](1, 0)
//	cell := shared.New(m.MulVec(v))
//	fmt.Println(cell.Snapshot()) // [2, 0]
//
// See examples/matvec_demo.go for a runnable driver.
//
//	go get github.com/katalvlaran/fixdim
package fixdim
