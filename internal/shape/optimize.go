package shape

import "sort"

// entry is a working copy of a nontrivial dim used while optimizing: its
// stride, extent, and min, tracked separately from Dim so the offset
// constant can be peeled off and re-deposited independently.
type entry struct {
	stride, extent, min int
}

// DynamicOptimizeShape produces an equivalent shape minimizing the number
// of distinct index-varying dims, preserving the set of reachable offsets
// and their multiplicities.
//
//  1. Dims with extent == 1 contribute only stride*min; that contribution
//     is pulled out into a running offset constant and the dim dropped.
//  2. The remaining dims are sorted by ascending |stride|.
//  3. Adjacent dims whose strides chain exactly (next.stride ==
//     cur.stride*cur.extent) are fused into one dim carrying the smaller
//     stride and the product extent.
//  4. The fused dims are re-emitted, followed by enough Dim(0,1,span)
//     placeholders to preserve rank, where span is the largest
//     |stride|*extent among the fused dims. The single
//     leading (smallest-stride) dim absorbs the accumulated offset
//     constant into its min.
func DynamicOptimizeShape(s Shape) Shape {
	rank := s.Rank()
	offsetConst := 0

	var nontrivial []entry
	for _, d := range s.Dims() {
		if d.Extent() == 1 {
			offsetConst += d.Stride() * d.Min()
			continue
		}
		nontrivial = append(nontrivial, entry{d.Stride(), d.Extent(), d.Min()})
	}
	sort.Slice(nontrivial, func(i, j int) bool {
		return absInt(nontrivial[i].stride) < absInt(nontrivial[j].stride)
	})

	var fused []entry
	for _, e := range nontrivial {
		if n := len(fused); n > 0 {
			last := &fused[n-1]
			if absInt(e.stride) == absInt(last.stride)*last.extent {
				offsetConst += last.min*last.stride + e.min*e.stride
				last.extent *= e.extent
				last.min = 0
				continue
			}
		}
		offsetConst += e.min * e.stride
		fused = append(fused, entry{e.stride, e.extent, 0})
	}

	span := 1
	for _, e := range fused {
		if s := absInt(e.stride) * e.extent; s > span {
			span = s
		}
	}

	result := make([]Dim, 0, rank)
	if len(fused) > 0 {
		fused[0].min = offsetConst / fused[0].stride
		for _, e := range fused {
			result = append(result, NewDimFull(e.min, e.extent, e.stride))
		}
	}
	for len(result) < rank {
		min := 0
		if len(result) == 0 {
			min = offsetConst
		}
		result = append(result, NewDimFull(min, 1, span))
	}
	return New(result...)
}

// MakeCompact returns a shape identical to s in every min/extent field,
// with strides reassigned so the result is compact. Dims whose stride is
// statically fixed (Dense, Broadcast) retain it; all others have their
// stride cleared and reassigned per Resolve.
func MakeCompact(s Shape) Shape {
	dims := s.Dims()
	cleared := make([]Dim, len(dims))
	for i, d := range dims {
		if d.Kind() != Generic {
			cleared[i] = d
			continue
		}
		cleared[i] = NewDimMin(d.Min(), d.Extent())
	}
	return New(Resolve(cleared)...)
}
