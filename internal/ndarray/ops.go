package ndarray

import (
	"errors"
	"fmt"

	"github.com/nda-go/nda/internal/shape"
)

// ErrOutOfRange is returned when a destination shape is not fully
// contained in a source shape's domain.
var ErrOutOfRange = errors.New("ndarray: out of range")

// Indexable is the minimal surface Copy, Move, Fill, Generate, and Equal
// need: both Array and ArrayView satisfy it.
type Indexable[T any] interface {
	Shape() shape.Shape
	Get(idx ...int) T
	Set(v T, idx ...int)
}

// covers reports whether dst's domain is an axis-aligned sub-rectangle of
// src's: every dim's [min, min+extent) interval of dst must fall inside
// the corresponding dim of src.
func covers(src, dst shape.Shape) bool {
	if src.Rank() != dst.Rank() {
		return false
	}
	for i := 0; i < dst.Rank(); i++ {
		d := dst.Dim(i)
		if !src.Dim(i).IsIntervalInRange(d.Min(), d.Extent()) {
			return false
		}
	}
	return true
}

// Copy assigns dst[idx] = src[idx] for every idx in dst's domain. It
// fails with ErrOutOfRange if dst's domain is not fully contained in
// src's.
func Copy[T any](src, dst Indexable[T]) error {
	if !covers(src.Shape(), dst.Shape()) {
		return fmt.Errorf("%w: dst shape %v not covered by src shape %v", ErrOutOfRange, dst.Shape(), src.Shape())
	}
	shape.ForAllIndices(dst.Shape(), func(idx ...int) {
		dst.Set(src.Get(idx...), idx...)
	})
	return nil
}

// Move is Copy followed by zeroing every cell Copy read from src.
func Move[T any](src, dst Indexable[T]) error {
	if err := Copy(src, dst); err != nil {
		return err
	}
	var zero T
	shape.ForAllIndices(dst.Shape(), func(idx ...int) {
		src.Set(zero, idx...)
	})
	return nil
}

// Fill assigns v to every cell in dst's domain.
func Fill[T any](dst Indexable[T], v T) {
	shape.ForAllIndices(dst.Shape(), func(idx ...int) {
		dst.Set(v, idx...)
	})
}

// Generate assigns fn() to every cell in dst's domain, called once per
// cell in traversal order.
func Generate[T any](dst Indexable[T], fn func() T) {
	shape.ForAllIndices(dst.Shape(), func(idx ...int) {
		dst.Set(fn(), idx...)
	})
}

// Equal reports whether a and b have the same shape extents and agree at
// every index.
func Equal[T comparable](a, b Indexable[T]) bool {
	as, bs := a.Shape(), b.Shape()
	if as.Rank() != bs.Rank() {
		return false
	}
	for i := 0; i < as.Rank(); i++ {
		if as.Dim(i).Extent() != bs.Dim(i).Extent() {
			return false
		}
	}
	equal := true
	shape.ForAllIndices(as, func(idx ...int) {
		if a.Get(idx...) != b.Get(idx...) {
			equal = false
		}
	})
	return equal
}
