package ndarray

import (
	"golang.org/x/exp/constraints"

	"github.com/nda-go/nda/internal/shape"
)

// Numeric bounds the element types accepted by Zeros, Ones, and Sum:
// the standard-library generalization of the teacher's hand-written
// DType constraint for element types that support arithmetic.
type Numeric interface {
	constraints.Integer | constraints.Float
}

// Zeros constructs an Array over s filled with T's zero value.
func Zeros[T Numeric](s shape.Shape) *Array[T] {
	var zero T
	return NewFill(s, zero)
}

// Ones constructs an Array over s filled with 1.
func Ones[T Numeric](s shape.Shape) *Array[T] {
	return NewFill(s, T(1))
}

// Sum adds every addressed cell of a in traversal order.
func Sum[T Numeric](a Indexable[T]) T {
	var total T
	shape.ForAllIndices(a.Shape(), func(idx ...int) {
		total += a.Get(idx...)
	})
	return total
}
