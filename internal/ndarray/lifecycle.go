// Package ndarray implements the owning Array and non-owning ArrayView
// containers backing the public ndarray package: construction, fill,
// assignment, cropping/slicing, reinterpretation, and the free copy/move/
// fill/generate/equal algorithms over them.
package ndarray

// Lifecycle lets an element type observe default construction. Array's
// default constructor (New) invokes it on every addressed cell the way
// the original library's value-initialization invokes a type's default
// constructor; ordinary element types don't implement it and pay nothing.
type Lifecycle interface {
	OnConstruct()
}

// CopyLifecycle lets an element type observe copy-construction/copy-assign.
type CopyLifecycle interface {
	OnCopy()
}

// DestroyLifecycle lets an element type observe destruction.
type DestroyLifecycle interface {
	OnDestroy()
}

func constructElem[T any](p *T) {
	if lc, ok := any(p).(Lifecycle); ok {
		lc.OnConstruct()
	}
}

func copyElem[T any](dst *T, src T) {
	*dst = src
	if lc, ok := any(dst).(CopyLifecycle); ok {
		lc.OnCopy()
	}
}

func destroyElem[T any](p *T) {
	if lc, ok := any(p).(DestroyLifecycle); ok {
		lc.OnDestroy()
	}
	var zero T
	*p = zero
}
