// Package ndarray provides the public API for owning and non-owning
// multidimensional array containers built on the shape package.
//
// # Overview
//
// Array[T] owns its storage; ArrayView[T] is a non-owning window into
// another Array's or ArrayView's storage, produced by View. Both satisfy
// Indexable[T], the common surface Copy, Move, Fill, Generate, and Equal
// operate over.
//
// # Basic Usage
//
//	s := shape.New(shape.NewDim(3), shape.NewDim(4))
//	resolved := shape.New(shape.Resolve(s.Dims())...)
//	a := ndarray.NewFill(resolved, 0.0)
//	row := a.View(ndarray.At(1), ndarray.All)
//
// # Lifecycle Hooks
//
// Element types may implement Lifecycle, CopyLifecycle, or
// DestroyLifecycle to observe construction, copy, and destruction.
// Array's constructors and Clear invoke these hooks only on the cells a
// shape's Size() actually addresses, never on the backing storage slack
// a sparse shape's FlatExtent() allocates but never touches.
package ndarray
