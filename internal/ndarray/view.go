package ndarray

import (
	"fmt"
	"unsafe"

	"github.com/nda-go/nda/internal/shape"
)

// SpecKind tags an IndexSpec with how it addresses one dim of a View call.
type SpecKind uint8

const (
	// SpecSingle fixes the dim to one index, dropping it from the result.
	SpecSingle SpecKind = iota
	// SpecAll passes the dim through unchanged.
	SpecAll
	// SpecRange crops the dim to a subinterval, keeping the dim.
	SpecRange
)

// IndexSpec describes how View treats one dim: fix it (At), pass it
// through (All), or crop it to a subinterval (Slice).
type IndexSpec struct {
	kind   SpecKind
	index  int
	lo     int
	extent int
}

// At fixes a dim to a single index, dropping it from the result's rank.
func At(i int) IndexSpec { return IndexSpec{kind: SpecSingle, index: i} }

// All passes a dim through unchanged.
var All = IndexSpec{kind: SpecAll}

// Slice crops a dim to [lo, lo+extent), keeping the dim at the cropped
// bounds and the original stride.
func Slice(lo, extent int) IndexSpec {
	return IndexSpec{kind: SpecRange, lo: lo, extent: extent}
}

// ArrayView is a non-owning window over another Array's or ArrayView's
// storage: same element buffer, a shape possibly cropped or reduced in
// rank.
type ArrayView[T any] struct {
	data  []T
	shape shape.Shape
}

// Shape returns the view's shape.
func (v *ArrayView[T]) Shape() shape.Shape { return v.shape }

// Empty reports whether the view addresses no storage.
func (v *ArrayView[T]) Empty() bool { return len(v.data) == 0 }

// At returns a pointer to the element at the given index.
func (v *ArrayView[T]) At(idx ...int) *T {
	return &v.data[storageOffset(v.shape, idx...)]
}

// Get returns the element at the given index.
func (v *ArrayView[T]) Get(idx ...int) T { return *v.At(idx...) }

// Set assigns the element at the given index.
func (v *ArrayView[T]) Set(val T, idx ...int) {
	copyElem(v.At(idx...), val)
}

// View narrows v further: one IndexSpec per dim of v's current shape.
func (v *ArrayView[T]) View(specs ...IndexSpec) *ArrayView[T] {
	data, s := viewWith(v.data, v.shape, specs)
	return &ArrayView[T]{data: data, shape: s}
}

// viewWith applies specs (one per dim of s) against data/s, returning the
// re-based storage slice and the resulting shape.
//
// data is addressed as storageOffset(s, idx) = s.Offset(idx)-s.FlatMin(),
// so producing the sub-slice for the new shape s' takes more than folding
// in stride*index for a Single spec: every dim's Offset contribution is
// unaffected by min, but the *storage* position of s''s own index 0 is
// s'.FlatMin() away from s.FlatMin(). Given fixedSum, the sum of
// stride*index over the Single specs (the fixed dims' raw Offset
// contribution), the old-array absolute offset of s'(idx) is
// fixedSum+s'.Offset(idx), so the needed shift into data is:
//
//	baseOffset = s'.FlatMin() + fixedSum - s.FlatMin()
//
// A Range spec keeps its dim at the cropped [lo, lo+extent) bounds with
// the same stride, contributing its own FlatMin to s'. An All spec
// passes the dim through unchanged.
func viewWith[T any](data []T, s shape.Shape, specs []IndexSpec) ([]T, shape.Shape) {
	if len(specs) != s.Rank() {
		panic(fmt.Sprintf("ndarray: expected %d index specs, got %d", s.Rank(), len(specs)))
	}
	fixedSum := 0
	out := make([]shape.Dim, 0, s.Rank())
	for k, spec := range specs {
		d := s.Dim(k)
		switch spec.kind {
		case SpecSingle:
			if !d.IsInRange(spec.index) {
				panic(fmt.Sprintf("ndarray: index %d out of range for dim %v", spec.index, d))
			}
			fixedSum += d.Stride() * spec.index
		case SpecRange:
			if !d.IsIntervalInRange(spec.lo, spec.extent) {
				panic(fmt.Sprintf("ndarray: range [%d,%d) out of range for dim %v", spec.lo, spec.lo+spec.extent, d))
			}
			out = append(out, shape.NewDimFull(spec.lo, spec.extent, d.Stride()))
		case SpecAll:
			out = append(out, d)
		}
	}
	newShape := shape.New(out...)
	baseOffset := newShape.FlatMin() + fixedSum - s.FlatMin()
	return data[baseOffset:], newShape
}

// Reinterpret reinterprets v's storage as element type U, panicking if U
// and T differ in size. Mirrors the teacher's raw-buffer
// reinterpretation helpers: the shape (and therefore every stride and
// extent) is carried over unchanged, only the element type changes.
func Reinterpret[U, T any](v *ArrayView[T]) *ArrayView[U] {
	var t T
	var u U
	if unsafe.Sizeof(t) != unsafe.Sizeof(u) {
		panic(fmt.Sprintf("ndarray: cannot reinterpret element of size %d as element of size %d", unsafe.Sizeof(t), unsafe.Sizeof(u)))
	}
	if len(v.data) == 0 {
		return &ArrayView[U]{shape: v.shape}
	}
	//nolint:gosec // size-checked reinterpretation of the same backing storage
	data := unsafe.Slice((*U)(unsafe.Pointer(&v.data[0])), len(v.data))
	return &ArrayView[U]{data: data, shape: v.shape}
}
