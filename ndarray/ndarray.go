package ndarray

import (
	"github.com/nda-go/nda/internal/ndarray"
	"github.com/nda-go/nda/shape"
)

// Numeric bounds the element types accepted by Zeros, Ones, and Sum.
type Numeric = ndarray.Numeric

// Lifecycle lets an element type observe default construction.
type Lifecycle = ndarray.Lifecycle

// CopyLifecycle lets an element type observe copy-construction/assign.
type CopyLifecycle = ndarray.CopyLifecycle

// DestroyLifecycle lets an element type observe destruction.
type DestroyLifecycle = ndarray.DestroyLifecycle

// Array is an owning multidimensional array container.
type Array[T any] = ndarray.Array[T]

// ArrayView is a non-owning window over another array's storage.
type ArrayView[T any] = ndarray.ArrayView[T]

// IndexSpec describes how View treats one dim of the source shape.
type IndexSpec = ndarray.IndexSpec

// SpecKind tags an IndexSpec with how it addresses its dim.
type SpecKind = ndarray.SpecKind

// ErrOutOfRange is returned by Copy and Move when the destination shape
// is not fully contained in the source shape's domain.
var ErrOutOfRange = ndarray.ErrOutOfRange

// Indexable is the minimal surface Copy, Move, Fill, Generate, and Equal
// require.
type Indexable[T any] = ndarray.Indexable[T]

// All passes a dim through a View call unchanged.
var All = ndarray.All

// At fixes a dim to a single index, dropping it from the View result.
func At(i int) IndexSpec { return ndarray.At(i) }

// Slice crops a dim to [lo, lo+extent), keeping the dim.
func Slice(lo, extent int) IndexSpec { return ndarray.Slice(lo, extent) }

// New default-constructs an Array over s.
func New[T any](s shape.Shape) *Array[T] { return ndarray.New[T](s) }

// NewFill constructs an Array over s, copying v into every addressed
// cell.
func NewFill[T any](s shape.Shape, v T) *Array[T] { return ndarray.NewFill(s, v) }

// Zeros constructs an Array over s filled with T's zero value.
func Zeros[T Numeric](s shape.Shape) *Array[T] { return ndarray.Zeros[T](s) }

// Ones constructs an Array over s filled with 1.
func Ones[T Numeric](s shape.Shape) *Array[T] { return ndarray.Ones[T](s) }

// Sum adds every addressed cell of a in traversal order.
func Sum[T Numeric](a Indexable[T]) T { return ndarray.Sum[T](a) }

// Reinterpret reinterprets v's storage as element type U, panicking if U
// and T differ in size.
func Reinterpret[U, T any](v *ArrayView[T]) *ArrayView[U] { return ndarray.Reinterpret[U](v) }

// Copy assigns dst[idx] = src[idx] for every idx in dst's domain,
// failing with ErrOutOfRange if dst is not fully contained in src.
func Copy[T any](src, dst Indexable[T]) error { return ndarray.Copy[T](src, dst) }

// Move is Copy followed by zeroing every cell Copy read from src.
func Move[T any](src, dst Indexable[T]) error { return ndarray.Move[T](src, dst) }

// Fill assigns v to every cell in dst's domain.
func Fill[T any](dst Indexable[T], v T) { ndarray.Fill[T](dst, v) }

// Generate assigns fn() to every cell in dst's domain, in traversal
// order.
func Generate[T any](dst Indexable[T], fn func() T) { ndarray.Generate[T](dst, fn) }

// Equal reports whether a and b have the same shape extents and agree
// at every index.
func Equal[T comparable](a, b Indexable[T]) bool { return ndarray.Equal[T](a, b) }
