package ndarray

import (
	"fmt"

	"github.com/nda-go/nda/internal/shape"
)

// Array is an owning container: a shape and a storage buffer of
// shape.FlatExtent() elements. For a sparse shape (Size() < FlatExtent())
// only the addressed cells are ever constructed or destroyed; the
// remaining storage slots are inert backing memory, never read through
// the public API.
type Array[T any] struct {
	shape shape.Shape
	data  []T
}

// storageOffset maps an index tuple to a position within a storage
// buffer sized s.FlatExtent(). Offset is measured from index 0 per
// spec.md §4.2, so it must be shifted by s.FlatMin() (which may be
// negative, or positive for a dim whose min is positive) to land inside
// [0, s.FlatExtent()).
func storageOffset(s shape.Shape, idx ...int) int {
	return s.Offset(idx...) - s.FlatMin()
}

// New default-constructs an Array over s: every addressed cell is
// value-initialized (its Lifecycle.OnConstruct is invoked if T implements
// it), matching the teacher's zero-value-then-hook pattern.
func New[T any](s shape.Shape) *Array[T] {
	a := &Array[T]{shape: s, data: make([]T, s.FlatExtent())}
	shape.ForAllIndices(s, func(idx ...int) {
		constructElem(&a.data[storageOffset(s, idx...)])
	})
	return a
}

// NewFill constructs an Array over s, copy-constructing v into every
// addressed cell. Per spec.md §8.2, the source value v is itself
// destroyed once the call returns, matching the original's by-value
// fill-constructor argument going out of scope.
func NewFill[T any](s shape.Shape, v T) *Array[T] {
	a := &Array[T]{shape: s, data: make([]T, s.FlatExtent())}
	shape.ForAllIndices(s, func(idx ...int) {
		copyElem(&a.data[storageOffset(s, idx...)], v)
	})
	destroyElem(&v)
	return a
}

// Shape returns the array's shape.
func (a *Array[T]) Shape() shape.Shape { return a.shape }

// Size returns the number of addressed (in-domain) cells.
func (a *Array[T]) Size() int { return a.shape.Size() }

// Empty reports whether the array owns no storage (post-construction
// default, or after Clear/Move-from).
func (a *Array[T]) Empty() bool { return a.data == nil }

// Data returns the raw backing storage, including any unaddressed slack
// for sparse shapes. Analogous to the teacher's RawTensor.Data().
func (a *Array[T]) Data() []T { return a.data }

// At returns a pointer to the element at the given index.
func (a *Array[T]) At(idx ...int) *T {
	return &a.data[storageOffset(a.shape, idx...)]
}

// Get returns the element at the given index.
func (a *Array[T]) Get(idx ...int) T { return *a.At(idx...) }

// Set assigns the element at the given index.
func (a *Array[T]) Set(v T, idx ...int) {
	copyElem(a.At(idx...), v)
}

// Assign reallocates storage only if newShape's FlatExtent exceeds the
// array's current capacity, then copy-assigns v into every cell newShape
// addresses. Cells outside the addressed set are left untouched.
func (a *Array[T]) Assign(newShape shape.Shape, v T) {
	need := newShape.FlatExtent()
	if len(a.data) < need {
		a.data = make([]T, need)
	}
	a.shape = newShape
	shape.ForAllIndices(newShape, func(idx ...int) {
		copyElem(&a.data[storageOffset(newShape, idx...)], v)
	})
}

// Clone deep-copies every addressed cell into a new Array with the same
// shape.
func (a *Array[T]) Clone() *Array[T] {
	out := &Array[T]{shape: a.shape, data: make([]T, len(a.data))}
	shape.ForAllIndices(a.shape, func(idx ...int) {
		off := storageOffset(a.shape, idx...)
		copyElem(&out.data[off], a.data[off])
	})
	return out
}

// MoveFrom transfers dst's storage from src by pointer swap: dst takes
// over src's buffer and shape, and src becomes empty with its rank
// preserved (no element is copied or constructed). Mirrors the
// teacher's RawTensor.Clone/Release ownership-transfer idiom, adapted
// since Go has no destructive move assignment of its own.
func (dst *Array[T]) MoveFrom(src *Array[T]) {
	dst.shape = src.shape
	dst.data = src.data
	src.shape = emptyLike(src.shape)
	src.data = nil
}

// Clear destroys every addressed cell (invoking DestroyLifecycle.OnDestroy
// where implemented) and releases storage, leaving the array empty with
// its rank preserved.
func (a *Array[T]) Clear() {
	shape.ForAllIndices(a.shape, func(idx ...int) {
		destroyElem(&a.data[storageOffset(a.shape, idx...)])
	})
	a.shape = emptyLike(a.shape)
	a.data = nil
}

func emptyLike(s shape.Shape) shape.Shape {
	dims := make([]shape.Dim, s.Rank())
	for i := range dims {
		dims[i] = shape.NewDimFull(0, 0, 0)
	}
	return shape.New(dims...)
}

// Ref downgrades the Array to a non-owning ArrayView over the same
// storage.
func (a *Array[T]) Ref() *ArrayView[T] {
	return &ArrayView[T]{data: a.data, shape: a.shape}
}

// View returns a non-owning ArrayView over a with one IndexSpec per dim:
// Single fixes that axis (reducing rank by one), All keeps the dim
// unchanged, and Range crops to a subinterval (same rank).
func (a *Array[T]) View(specs ...IndexSpec) *ArrayView[T] {
	data, s := viewWith(a.data, a.shape, specs)
	return &ArrayView[T]{data: data, shape: s}
}

// String returns a human-readable summary of the array.
func (a *Array[T]) String() string {
	return fmt.Sprintf("Array%v", a.shape)
}
