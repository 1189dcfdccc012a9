package etc

import (
	"errors"
	"testing"
)

func TestDistance(t *testing.T) {
	a := Sequence{1, 2, 1, 2, 2, 1, 2, 1}
	b := Sequence{1, 1, 2, 2, 1, 1, 2, 2}
	d, err := Distance(a, b, DefaultOptions())
	if err != nil {
		t.Fatalf("distance: %v", err)
	}
	if d != 4 {
		t.Fatalf("Distance = %v, want 4", d)
	}
	r, err := Distance(b, a, DefaultOptions())
	if err != nil {
		t.Fatalf("distance: %v", err)
	}
	if r != d {
		t.Fatalf("not symmetric: %v != %v", d, r)
	}

	c := Sequence{1, 2, 3, 4}
	if d, err := Distance(c, c, DefaultOptions()); err != nil || d != 0 {
		t.Fatalf("Distance(c, c) = %v, %v", d, err)
	}
	if a[0] != 1 || b[0] != 1 || len(a) != 8 {
		t.Fatalf("Distance modified its operands")
	}
}

func TestDistanceErrors(t *testing.T) {
	_, err := Distance(Sequence{1}, Sequence{0}, DefaultOptions())
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}
