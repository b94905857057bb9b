package shape

import "fmt"

// Transpose returns a shape whose dim k equals s.Dim(perm[k]). perm must
// be a permutation of [0, s.Rank()). Neither strides nor storage are
// touched — this is a pure index permutation.
func Transpose(s Shape, perm []int) Shape {
	if len(perm) != s.Rank() {
		panic(fmt.Sprintf("shape: transpose permutation length %d does not match rank %d", len(perm), s.Rank()))
	}
	return reorder(s, perm)
}

// Reorder returns a shape of rank len(perm) selecting those dims from s.
// Unlike Transpose, perm need not cover every dim of s.
func Reorder(s Shape, perm []int) Shape {
	return reorder(s, perm)
}

func reorder(s Shape, perm []int) Shape {
	out := make([]Dim, len(perm))
	for k, p := range perm {
		out[k] = s.Dim(p)
	}
	return New(out...)
}

// InversePermutation returns the permutation q such that
// Transpose(Transpose(s, perm), q) == s.
func InversePermutation(perm []int) []int {
	inv := make([]int, len(perm))
	for k, p := range perm {
		inv[p] = k
	}
	return inv
}
