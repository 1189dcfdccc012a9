package etc

import (
	"slices"
	"strconv"
	"testing"
)

func TestSelect(t *testing.T) {
	tests := []struct {
		seq     Sequence
		order   int
		window  []uint32
		count   int
		indices []int
	}{
		{Sequence{1, 2, 1, 2, 2, 1, 2, 1}, 2, []uint32{1, 2}, 3, []int{0, 2, 5}},
		{Sequence{1, 1, 2, 2, 1, 1, 2, 2}, 2, []uint32{1, 1}, 2, []int{0, 4}},
		{Sequence{2, 1, 1, 1, 1, 2}, 2, []uint32{1, 1}, 2, []int{1, 3}},
		{Sequence{1, 2, 3, 1, 2, 3, 1, 2}, 3, []uint32{1, 2, 3}, 2, []int{0, 3}},
		{Sequence{1, 1, 1, 1, 1, 2, 1}, 3, []uint32{1, 1, 1}, 1, []int{0}},
		{Sequence{1, 2, 3, 4, 5, 6, 7}, 3, []uint32{1, 2, 3}, 1, []int{0}},
		// Periodic overlap: (1,2,1) at 0 and 2 share a position.
		{Sequence{1, 2, 1, 2, 1}, 3, []uint32{1, 2, 1}, 1, []int{0}},
	}
	for _, tt := range tests {
		f := Select(tt.seq, Mask(tt.seq, tt.order), tt.order)
		if !slices.Equal(f.Window, tt.window) || f.Count != tt.count || !slices.Equal(f.Indices, tt.indices) {
			t.Fatalf("Select(%v, %d) = %v x%d at %v, want %v x%d at %v",
				tt.seq, tt.order, f.Window, f.Count, f.Indices, tt.window, tt.count, tt.indices)
		}
		if f.Degenerate() != (tt.count == 1) {
			t.Fatalf("Degenerate() = %v for count %d", f.Degenerate(), f.Count)
		}
	}
}

func TestSelectTieBreak(t *testing.T) {
	// (3,4) and (1,2) both occur twice; (3,4) occurs first.
	seq := Sequence{3, 4, 1, 2, 3, 4, 1, 2}
	f := Select(seq, Mask(seq, 2), 2)
	if !slices.Equal(f.Window, []uint32{3, 4}) {
		t.Fatalf("tie not resolved to earliest window: %v", f.Window)
	}
}

func TestSelectWindowIsCopy(t *testing.T) {
	seq := Sequence{1, 2, 1, 2}
	f := Select(seq, Mask(seq, 2), 2)
	f.Window[0] = 99
	if seq[0] != 1 {
		t.Fatalf("Select returned a window aliasing the sequence")
	}
}

func TestSelectShort(t *testing.T) {
	if f := Select(Sequence{1}, nil, 2); f.Count != 0 || f.Window != nil {
		t.Fatalf("expected empty result, got %+v", f)
	}
}

func BenchmarkSelect(b *testing.B) {
	seq := make(Sequence, 1<<14)
	for i := range seq {
		seq[i] = uint32(1 + (i*7+i/3)%5)
	}
	for _, order := range []int{2, 4} {
		mask := Mask(seq, order)
		b.Run("order"+strconv.Itoa(order), func(b *testing.B) {
			b.ReportAllocs()
			for b.Loop() {
				_ = Select(seq, mask, order)
			}
		})
	}
}
