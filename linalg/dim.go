// SPDX-License-Identifier: MIT

package linalg

// Dim is a dimension parameter. Go generics have no integer type parameters,
// so sizes travel as phantom types: the zero value of a Dim reports its size.
//
// Two Dim types are compatible only if they are the same type, so a
// Vector[D2] never mixes with a Vector[D3] even though both are float32
// slices underneath. Callers may declare their own:
//
//	type D9 struct{}
//
//	func (D9) Size() int { return 9 }
type Dim interface {
	// Size returns the number of elements along this dimension.
	// It must be a constant for the type and is called on the zero value.
	Size() int
}

// D1 is the dimension of size 1 (row count of a transposed vector).
type D1 struct{}

// D2 is the dimension of size 2.
type D2 struct{}

// D3 is the dimension of size 3. Cross is defined only over D3.
type D3 struct{}

// D4 is the dimension of size 4.
type D4 struct{}

// D5 is the dimension of size 5.
type D5 struct{}

// D6 is the dimension of size 6.
type D6 struct{}

func (D1) Size() int { return 1 }
func (D2) Size() int { return 2 }
func (D3) Size() int { return 3 }
func (D4) Size() int { return 4 }
func (D5) Size() int { return 5 }
func (D6) Size() int { return 6 }

// sizeOf returns the size carried by the dimension type N.
func sizeOf[N Dim]() int {
	var n N
	return n.Size()
}
