package shape

// Interval is a dim without a stride: a half-open-style domain
// [min, min+extent). Used as a cropping argument and as the type of
// whole-dimension queries.
type Interval struct {
	min    int
	extent int
}

// NewInterval constructs an Interval spanning [min, min+extent).
func NewInterval(min, extent int) Interval {
	return Interval{min: min, extent: extent}
}

// Min returns the interval's minimum index.
func (iv Interval) Min() int { return iv.min }

// Extent returns the interval's length.
func (iv Interval) Extent() int { return iv.extent }

// Max returns the interval's largest index, min+extent-1.
func (iv Interval) Max() int { return iv.min + iv.extent - 1 }
