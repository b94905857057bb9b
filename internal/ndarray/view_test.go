package ndarray

import (
	"math"
	"testing"
)

// TestReinterpretFloatBits pins the float-bit-pattern seed scenario: an
// int array filled with float32(8.0)'s bit pattern, reinterpreted as
// float32, reads back as 8.0 at every index.
func TestReinterpretFloatBits(t *testing.T) {
	s := denseShape(4, 5, 6)
	bits := int32(math.Float32bits(8.0))
	a := NewFill(s, bits)
	view := Reinterpret[float32](a.Ref())
	for i := 0; i < 4; i++ {
		for j := 0; j < 5; j++ {
			for k := 0; k < 6; k++ {
				if got := view.Get(i, j, k); got != 8.0 {
					t.Errorf("view.Get(%d,%d,%d) = %v, want 8.0", i, j, k, got)
				}
			}
		}
	}
}

// TestReinterpretSizeMismatchPanics guards the size check: reinterpreting
// to a differently-sized element type must panic rather than silently
// misreading storage.
func TestReinterpretSizeMismatchPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic reinterpreting int32 storage as int64")
		}
	}()
	s := denseShape(3)
	a := NewFill(s, int32(1))
	Reinterpret[int64](a.Ref())
}

// TestReinterpretEmptyView covers the degenerate zero-extent source: no
// backing storage to reinterpret, but the shape still carries over.
func TestReinterpretEmptyView(t *testing.T) {
	s := denseShape(0)
	a := New[int32](s)
	view := Reinterpret[float32](a.Ref())
	if !view.Empty() {
		t.Error("reinterpreting an empty view should stay empty")
	}
	if view.Shape().Rank() != s.Rank() {
		t.Errorf("reinterpret changed rank: got %d, want %d", view.Shape().Rank(), s.Rank())
	}
}
