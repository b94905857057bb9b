package shape

import "testing"

// TestDynamicOptimizeShape pins original_source/test/shape.cpp's
// shape_optimize cases a, c, d: three-dim shapes where all three dims
// fuse, none fuse, or two of three fuse.
func TestDynamicOptimizeShape(t *testing.T) {
	tests := []struct {
		name string
		in   []Dim
		want []Dim
	}{
		{
			"fuse all three",
			[]Dim{NewDimFull(0, 5, 21), NewDimFull(0, 7, 3), NewDimFull(5, 3, 1)},
			[]Dim{NewDimFull(5, 105, 1), NewDimFull(0, 1, 105), NewDimFull(0, 1, 105)},
		},
		{
			"no fusion possible",
			[]Dim{NewDimFull(0, 5, 40), NewDimFull(0, 7, 3), NewDimFull(0, 2, 1)},
			[]Dim{NewDimFull(0, 2, 1), NewDimFull(0, 7, 3), NewDimFull(0, 5, 40)},
		},
		{
			"fuse two of three",
			[]Dim{NewDimFull(0, 5, 28), NewDimFull(0, 7, 4), NewDimFull(0, 3, 1)},
			[]Dim{NewDimFull(0, 3, 1), NewDimFull(0, 35, 4), NewDimFull(0, 1, 140)},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := DynamicOptimizeShape(New(tt.in...))
			assertEqualShape(t, New(tt.want...), got, tt.name)
		})
	}
}

// TestDynamicOptimizeShapeNonzeroMin pins shape_optimize's case b: a
// nonzero-min three-dim shape where all three dims still fuse, with the
// accumulated offset landing in the fused dim's min.
func TestDynamicOptimizeShapeNonzeroMin(t *testing.T) {
	in := []Dim{NewDimFull(0, 5, 42), NewDimFull(3, 7, 6), NewDimFull(0, 3, 2)}
	want := []Dim{NewDimFull(9, 105, 2), NewDimFull(0, 1, 210), NewDimFull(0, 1, 210)}
	got := DynamicOptimizeShape(New(in...))
	assertEqualShape(t, New(want...), got, "nonzero-min fuse")
}

// TestDynamicOptimizeShapeReorderInvariant pins shape_optimize's cases e
// and e2: a rank-10 shape with extents 1..10 and densely resolved
// strides optimizes down to one dim of extent 10! and nine extent-1
// placeholders, regardless of the order its dims were declared in.
func TestDynamicOptimizeShapeReorderInvariant(t *testing.T) {
	dims := make([]Dim, 10)
	for i := range dims {
		dims[i] = NewDim(i + 1)
	}
	e := New(Resolve(dims)...)

	want := make([]Dim, 10)
	want[0] = NewDimFull(0, 3628800, 1)
	for i := 1; i < 10; i++ {
		want[i] = NewDimFull(0, 1, 3628800)
	}
	assertEqualShape(t, New(want...), DynamicOptimizeShape(e), "e")

	e2 := Reorder(e, []int{9, 5, 3, 7, 2, 8, 4, 6, 0, 1})
	assertEqualShape(t, New(want...), DynamicOptimizeShape(e2), "e2")
}

// TestDynamicOptimizeShapeTwoDimMinEdges pins shape_optimize's cases f
// and g: two unresolved dims whose second dim has a nonzero min, once
// with the first dim's min also zero and once nonzero.
func TestDynamicOptimizeShapeTwoDimMinEdges(t *testing.T) {
	f := New(Resolve([]Dim{NewDimMin(0, 2), NewDimMin(1, 2)})...)
	wantF := []Dim{NewDimFull(2, 4, 1), NewDimFull(0, 1, 4)}
	assertEqualShape(t, New(wantF...), DynamicOptimizeShape(f), "f")

	g := New(Resolve([]Dim{NewDimMin(1, 2), NewDimMin(1, 2)})...)
	wantG := []Dim{NewDimFull(3, 4, 1), NewDimFull(0, 1, 4)}
	assertEqualShape(t, New(wantG...), DynamicOptimizeShape(g), "g")
}

func TestMakeCompact(t *testing.T) {
	s := New(NewDimFull(3, 5, 8), NewDimFull(1, 4, 1))
	got := MakeCompact(s)
	want := New(NewDimFull(3, 5, 1), NewDimFull(1, 4, 5))
	assertEqualShape(t, want, got, "make_compact")
	if !got.IsCompact() {
		t.Error("make_compact result is not compact")
	}
	if !got.IsOneToOne() {
		t.Error("make_compact result is not one-to-one")
	}
}
