// SPDX-License-Identifier: MIT

package linalg_test

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/fixdim/linalg"
)

// ExampleMatrix_MulVec applies 2·I to the unit vector e₀.
func ExampleMatrix_MulVec() {
	m := linalg.MustMatrix[linalg.D2, linalg.D2](
		2, 0, // column 0
		0, 2, // column 1
	)
	v := linalg.MustVector[linalg.D2](1, 0)

	fmt.Println(m.MulVec(v))
	// Output:
	// [2, 0]
}

// ExampleMatrix_Mul multiplies a 2×3 by a 3×2 matrix; the product is square.
func ExampleMatrix_Mul() {
	a := linalg.MustMatrix[linalg.D2, linalg.D3](1, 2, 3, 4, 5, 6)
	b := linalg.MustMatrix[linalg.D3, linalg.D2](1, 2, 3, 4, 5, 6)

	fmt.Print(a.Mul(b))
	// Output:
	// [22, 49]
	// [28, 64]
}

// ExampleCross shows the right-hand rule on the unit axes.
func ExampleCross() {
	x := linalg.MustVector[linalg.D3](1, 0, 0)
	y := linalg.MustVector[linalg.D3](0, 1, 0)

	fmt.Println(linalg.Cross(x, y))
	// Output:
	// [0, 0, 1]
}

// ExampleNewVector shows the construction-length error.
func ExampleNewVector() {
	_, err := linalg.NewVector[linalg.D3](1, 2)
	fmt.Println(errors.Is(err, linalg.ErrElementCount))
	fmt.Println(err)
	// Output:
	// true
	// NewVector: got 2 elements, want 3: linalg: element count mismatch
}

// ExampleVector_Transpose reshapes a column vector into a 1×N row matrix.
func ExampleVector_Transpose() {
	v := linalg.MustVector[linalg.D3](1, 2, 3)
	row := v.Transpose()

	fmt.Println(row.Rows(), row.Cols())
	fmt.Print(row)
	// Output:
	// 1 3
	// [1, 2, 3]
}
