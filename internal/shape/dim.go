// Package shape implements the dimension and shape algebra backing the
// public shape package: per-dimension descriptors, stride resolution,
// shape optimization, transposition, and index-space traversal.
package shape

import "fmt"

// Dynamic marks a Dim field whose value is supplied at runtime rather
// than fixed at construction. It is a reserved sentinel, never a
// legitimate min, extent, or stride.
const Dynamic = -1 << 62

// Kind tags a Dim with its specialization. Dense and Broadcast dims pin
// their stride statically; Generic dims carry whatever stride they were
// constructed or resolved with.
type Kind uint8

const (
	// Generic is an ordinary dim whose stride may still be Dynamic.
	Generic Kind = iota
	// Dense is a dim whose stride is statically fixed to 1.
	Dense
	// Broadcast is a dim whose stride is statically fixed to 0 and whose
	// indexing is always considered in range regardless of extent.
	Broadcast
)

// Dim is a single-dimension descriptor: a domain of extent consecutive
// integers starting at min, and the linear-offset increment (stride) per
// unit step along it.
type Dim struct {
	kind   Kind
	min    int
	extent int
	stride int
}

// NewDim constructs a dim spanning [0, extent) with an unresolved stride.
func NewDim(extent int) Dim {
	return Dim{min: 0, extent: extent, stride: Dynamic}
}

// NewDimMin constructs a dim spanning [min, min+extent) with an
// unresolved stride.
func NewDimMin(min, extent int) Dim {
	return Dim{min: min, extent: extent, stride: Dynamic}
}

// NewDimFull constructs a dim with every field pinned.
func NewDimFull(min, extent, stride int) Dim {
	return Dim{min: min, extent: extent, stride: stride}
}

// NewDenseDim constructs a dim whose stride is statically 1.
func NewDenseDim(min, extent int) Dim {
	return Dim{kind: Dense, min: min, extent: extent, stride: 1}
}

// NewBroadcastDim constructs a dim whose stride is statically 0; every
// index is considered in range regardless of min/extent.
func NewBroadcastDim(extent int) Dim {
	return Dim{kind: Broadcast, min: 0, extent: extent, stride: 0}
}

// Kind returns the dim's specialization.
func (d Dim) Kind() Kind { return d.kind }

// Min returns the dim's minimum index.
func (d Dim) Min() int { return d.min }

// Extent returns the number of valid indices in the dim.
func (d Dim) Extent() int { return d.extent }

// Stride returns the dim's linear-offset increment per unit index step.
func (d Dim) Stride() int {
	switch d.kind {
	case Dense:
		return 1
	case Broadcast:
		return 0
	default:
		return d.stride
	}
}

// Max returns the largest valid index, min+extent-1.
func (d Dim) Max() int { return d.min + d.extent - 1 }

// IsResolved reports whether the dim's stride is known (statically fixed
// by its Kind, or already assigned for a Generic dim).
func (d Dim) IsResolved() bool {
	return d.kind != Generic || d.stride != Dynamic
}

// IsInRange reports whether i lies within [min, max]. Broadcast dims are
// always in range.
func (d Dim) IsInRange(i int) bool {
	if d.kind == Broadcast {
		return true
	}
	return i >= d.min && i <= d.Max()
}

// IsIntervalInRange reports whether the half-open interval [lo, lo+extent)
// lies entirely within [min, max].
func (d Dim) IsIntervalInRange(lo, extent int) bool {
	if d.kind == Broadcast {
		return true
	}
	if extent <= 0 {
		return true
	}
	return d.IsInRange(lo) && d.IsInRange(lo+extent-1)
}

// Clamp returns i clamped into [d.Min(), d.Max()].
func Clamp(i int, d Dim) int {
	if d.kind == Broadcast {
		return i
	}
	if i < d.min {
		return d.min
	}
	if m := d.Max(); i > m {
		return m
	}
	return i
}

// FlatMin returns the smallest offset this dim can contribute.
func (d Dim) FlatMin() int {
	s := d.Stride()
	if s >= 0 {
		return s * d.min
	}
	return s * d.Max()
}

// FlatMax returns the largest offset this dim can contribute.
func (d Dim) FlatMax() int {
	s := d.Stride()
	if s >= 0 {
		return s * d.Max()
	}
	return s * d.min
}

// WithStride returns a copy of d with its stride set to stride. Dims
// whose Kind statically fixes the stride (Dense, Broadcast) are returned
// unchanged, since there is nothing to resolve.
func (d Dim) WithStride(stride int) Dim {
	if d.kind != Generic {
		return d
	}
	d.stride = stride
	return d
}

// String returns a human-readable representation of the dim.
func (d Dim) String() string {
	return fmt.Sprintf("{min:%d, extent:%d, stride:%d}", d.min, d.extent, d.Stride())
}

func absInt(i int) int {
	if i < 0 {
		return -i
	}
	return i
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
