package shape

import (
	"github.com/nda-go/nda/internal/shape"
)

// Dynamic marks a Dim field supplied at runtime rather than fixed at
// construction.
const Dynamic = shape.Dynamic

// Kind tags a Dim with its specialization.
type Kind = shape.Kind

// Dim kinds.
const (
	Generic   Kind = shape.Generic
	Dense     Kind = shape.Dense
	Broadcast Kind = shape.Broadcast
)

// Dim is a single-dimension descriptor.
type Dim = shape.Dim

// Interval is a [min, min+extent) range used for bounds checks and
// cropping.
type Interval = shape.Interval

// Shape is an ordered tuple of Dims with a fixed rank.
type Shape = shape.Shape

// ErrIncompatibleShape is returned by ConvertShape when a statically
// required field of the target pattern disagrees with the shape being
// converted.
var ErrIncompatibleShape = shape.ErrIncompatibleShape

// NewDim constructs a dim spanning [0, extent) with an unresolved stride.
func NewDim(extent int) Dim { return shape.NewDim(extent) }

// NewDimMin constructs a dim spanning [min, min+extent) with an
// unresolved stride.
func NewDimMin(min, extent int) Dim { return shape.NewDimMin(min, extent) }

// NewDimFull constructs a dim with every field pinned.
func NewDimFull(min, extent, stride int) Dim { return shape.NewDimFull(min, extent, stride) }

// NewDenseDim constructs a dim whose stride is statically 1.
func NewDenseDim(min, extent int) Dim { return shape.NewDenseDim(min, extent) }

// NewBroadcastDim constructs a dim whose stride is statically 0; every
// index is considered in range regardless of min/extent.
func NewBroadcastDim(extent int) Dim { return shape.NewBroadcastDim(extent) }

// NewInterval constructs an Interval.
func NewInterval(min, extent int) Interval { return shape.NewInterval(min, extent) }

// Clamp returns i clamped into d's [Min, Max].
func Clamp(i int, d Dim) int { return shape.Clamp(i, d) }

// New constructs a Shape from the given dims.
func New(dims ...Dim) Shape { return shape.New(dims...) }

// Resolve assigns a stride to every dim whose stride is still Dynamic,
// using the smallest stride that keeps addressing injective against the
// dims already resolved, breaking ties by ascending original index.
func Resolve(dims []Dim) []Dim { return shape.Resolve(dims) }

// DynamicOptimizeShape fuses adjacent dims that form one contiguous
// stride run and folds extent-1 dims' contributions into the remaining
// dims' min, without changing the shape's addressed domain.
func DynamicOptimizeShape(s Shape) Shape { return shape.DynamicOptimizeShape(s) }

// MakeCompact clears every statically-unfixed dim's stride and
// re-resolves, producing the smallest dense packing consistent with the
// shape's extents.
func MakeCompact(s Shape) Shape { return shape.MakeCompact(s) }

// Transpose returns a shape whose dim k equals s.Dim(perm[k]). perm must
// be a permutation of [0, s.Rank()).
func Transpose(s Shape, perm []int) Shape { return shape.Transpose(s, perm) }

// Reorder returns a shape of rank len(perm) selecting those dims from s.
// Unlike Transpose, perm need not cover every dim of s.
func Reorder(s Shape, perm []int) Shape { return shape.Reorder(s, perm) }

// InversePermutation returns the permutation q such that
// Transpose(Transpose(s, perm), q) == s.
func InversePermutation(perm []int) []int { return shape.InversePermutation(perm) }

// ConvertShape converts a to the field pattern described by target.
func ConvertShape(a, target Shape) (Shape, error) { return shape.ConvertShape(a, target) }

// IsCompatible reports whether a can be converted to target's pattern.
func IsCompatible(a, target Shape) bool { return shape.IsCompatible(a, target) }

// ForAllIndices enumerates every index tuple in s's domain exactly once,
// innermost dim first, invoking f with the indices as separate
// arguments.
func ForAllIndices(s Shape, f func(idx ...int)) { shape.ForAllIndices(s, f) }

// ForAllIndicesOrder is ForAllIndices with an explicit loop nesting
// order: order[0] is innermost, order[len(order)-1] outermost.
func ForAllIndicesOrder(s Shape, order []int, f func(idx ...int)) {
	shape.ForAllIndicesOrder(s, order, f)
}

// ForEachIndex is ForAllIndices but passes a single index-tuple slice.
func ForEachIndex(s Shape, f func(idx []int)) { shape.ForEachIndex(s, f) }

// ForEachIndexOrder is ForAllIndicesOrder but passes a single
// index-tuple slice.
func ForEachIndexOrder(s Shape, order []int, f func(idx []int)) {
	shape.ForEachIndexOrder(s, order, f)
}
