package etc

import (
	"slices"
	"testing"
)

func TestSubstitute(t *testing.T) {
	tests := []struct {
		seq     Sequence
		indices []int
		order   int
		value   uint32
		want    Sequence
	}{
		{Sequence{1, 2, 1, 2, 2, 1, 2, 1}, []int{0, 2, 5}, 2, 3, Sequence{3, 3, 2, 3, 1}},
		{Sequence{1, 2, 3, 1, 2, 3, 1, 2}, []int{0, 3}, 3, 4, Sequence{4, 4, 1, 2}},
		{Sequence{1, 2, 3}, nil, 2, 4, Sequence{1, 2, 3}},
		{Sequence{1, 2, 3}, []int{0}, 3, 4, Sequence{4}},
		// Overlapping and out-of-range indices are ignored.
		{Sequence{1, 1, 1, 1}, []int{0, 1, 2}, 2, 2, Sequence{2, 2}},
		{Sequence{1, 2, 3}, []int{2}, 2, 4, Sequence{1, 2, 3}},
	}
	for _, tt := range tests {
		in := tt.seq.Clone()
		got := Substitute(tt.seq, tt.indices, tt.order, tt.value)
		if !slices.Equal(got, tt.want) {
			t.Fatalf("Substitute(%v, %v, %d, %d) = %v, want %v",
				tt.seq, tt.indices, tt.order, tt.value, got, tt.want)
		}
		if !slices.Equal(in, tt.seq) {
			t.Fatalf("Substitute modified its input")
		}
	}
}

func TestSubstitutePairs(t *testing.T) {
	tests := []struct {
		seq  Sequence
		a, b uint32
		want Sequence
	}{
		{Sequence{1, 2, 1, 2, 2, 1, 2, 1}, 1, 2, Sequence{3, 3, 2, 3, 1}},
		{Sequence{1, 1, 1, 1, 1}, 1, 1, Sequence{3, 3, 1}},
		{Sequence{2, 1, 1, 1, 1, 2}, 1, 1, Sequence{2, 3, 3, 2}},
		{Sequence{1}, 1, 2, Sequence{1}},
	}
	for _, tt := range tests {
		got := substitutePairs(tt.seq, tt.a, tt.b, 3)
		if !slices.Equal(got, tt.want) {
			t.Fatalf("substitutePairs(%v, %d, %d) = %v, want %v", tt.seq, tt.a, tt.b, got, tt.want)
		}
	}
}

// The pair scan must agree with Substitute fed by Select on every input.
func TestSubstitutePairsMatchesGeneral(t *testing.T) {
	seqs := []Sequence{
		{1, 2, 1, 2, 2, 1, 2, 1},
		{2, 1, 1, 1, 1, 2},
		{1, 1, 1, 1, 1, 1, 1},
		{1, 1, 2, 2, 1, 1, 2, 2},
		{3, 1, 2, 3, 1, 2, 3},
	}
	for _, seq := range seqs {
		f := Select(seq, Mask(seq, 2), 2)
		v := seq.Max() + 1
		a := Substitute(seq, f.Indices, 2, v)
		b := substitutePairs(seq, f.Window[0], f.Window[1], v)
		if !slices.Equal(a, b) {
			t.Fatalf("%v: general %v, pairs %v", seq, a, b)
		}
	}
}

func TestSubstituteFirst(t *testing.T) {
	seq := Sequence{1, 2, 3, 4, 5}
	got := substituteFirst(seq, 3, 6)
	if !slices.Equal(got, Sequence{6, 4, 5}) {
		t.Fatalf("got %v", got)
	}
	if !slices.Equal(seq, Sequence{1, 2, 3, 4, 5}) {
		t.Fatalf("substituteFirst modified its input")
	}
}
