package shape

import "sort"

// link is one entry in the "known strides" chain resolve maintains: a
// stride already assigned (statically or by an earlier resolve step) and
// the extent of the dim occupying it.
type link struct {
	stride, extent int
}

// Resolve fills in every still-unresolved stride in dims and returns the
// result. Dims whose stride is already known — statically fixed (Dense,
// Broadcast) or an already-assigned Generic stride — are left untouched
// and treated as already occupying the offset space; unresolved dims are
// assigned strides one at a time, always picking whichever unresolved dim
// can take the smallest stride without overlapping an occupied interval,
// tie-breaking by ascending original index.
func Resolve(dims []Dim) []Dim {
	out := make([]Dim, len(dims))
	copy(out, dims)

	var chain []link
	var pending []int
	for i, d := range out {
		switch {
		case d.IsResolved():
			chain = append(chain, link{absInt(d.Stride()), maxInt(1, d.Extent())})
		case d.Extent() == 0:
			// An empty dim never affects indexing; its stride is assigned
			// conventionally rather than competed for.
			out[i] = d.WithStride(1)
			chain = append(chain, link{1, 1})
		default:
			pending = append(pending, i)
		}
	}
	sortChain(chain)

	for len(pending) > 0 {
		bestPos, bestIdx, bestStride := -1, -1, 0
		for pos, i := range pending {
			s := firstFitStride(chain, maxInt(1, out[i].Extent()))
			if bestIdx == -1 || s < bestStride {
				bestPos, bestIdx, bestStride = pos, i, s
			}
		}
		out[bestIdx] = out[bestIdx].WithStride(bestStride)
		chain = insertChain(chain, link{bestStride, maxInt(1, out[bestIdx].Extent())})
		pending = append(pending[:bestPos], pending[bestPos+1:]...)
	}
	return out
}

// firstFitStride finds the smallest stride s >= 1 such that the
// half-open interval [s, s*extent) does not overlap any interval already
// occupied by chain (a link occupies [stride, stride*extent)).
func firstFitStride(chain []link, extent int) int {
	lo := 1
	for _, k := range chain {
		if lo*extent <= k.stride {
			return lo
		}
		if span := k.stride * k.extent; span > lo {
			lo = span
		}
	}
	return lo
}

func sortChain(chain []link) {
	sort.Slice(chain, func(i, j int) bool { return chain[i].stride < chain[j].stride })
}

func insertChain(chain []link, l link) []link {
	chain = append(chain, l)
	sortChain(chain)
	return chain
}
