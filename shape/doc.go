// Package shape provides the public API for describing the index space
// and memory layout of multidimensional arrays.
//
// # Overview
//
// A Shape is an ordered tuple of Dims. Each Dim describes a range of
// valid indices (min, extent) and the linear-offset increment (stride)
// one step along that dim contributes. Shapes are immutable value types:
// every transformation (Resolve, DynamicOptimizeShape, Transpose, ...)
// returns a new Shape rather than mutating the receiver.
//
// # Basic Usage
//
//	s := shape.New(shape.NewDim(3), shape.NewDim(4))
//	resolved := shape.New(shape.Resolve(s.Dims())...)
//	off := resolved.Offset(1, 2)
//
// # Auto Stride Resolution
//
// Dims constructed with NewDim or NewDimMin carry an unresolved
// (Dynamic) stride. Resolve assigns each of them the smallest stride
// that keeps the whole shape's addressing injective, in ascending-index
// order among ties — the same "first fit" packing a dense row-major or
// column-major shape would use, generalized to mixed fixed/unresolved
// dims.
//
// # Compaction And Optimization
//
// DynamicOptimizeShape fuses adjacent dims that form one contiguous run
// and extracts constant offsets out of extent-1 dims, without changing
// what the shape addresses. MakeCompact goes further: it clears every
// statically-unfixed dim's stride and re-resolves, producing the
// smallest possible dense packing.
package shape
