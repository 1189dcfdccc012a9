package etc

import (
	"errors"
	"fmt"
)

// ErrConstant is returned by OneStep and OneStep2D when there is nothing
// left to substitute.
var ErrConstant = errors.New("etc: sequence is constant")

// FrequentPair is the jointly chosen window of a paired step, split back
// into its x and y components.
type FrequentPair struct {
	X, Y    Window
	Count   int
	Indices []int
}

// Degenerate reports whether every eligible joint window was unique.
func (f FrequentPair) Degenerate() bool { return f.Count == 1 }

// OneStep runs a single NSRWS step on seq and returns the shortened
// sequence with the window that was substituted. seq is not modified.
func OneStep(seq Sequence, order int) (Sequence, Frequent, error) {
	order, err := validOrder(order)
	if err != nil {
		return nil, Frequent{}, err
	}
	if err := seq.Validate(); err != nil {
		return nil, Frequent{}, err
	}
	if seq.Constant() {
		return nil, Frequent{}, ErrConstant
	}
	if len(seq) < order {
		return nil, Frequent{}, fmt.Errorf("%w: length %d, order %d", ErrTooShort, len(seq), order)
	}
	out, f := step(seq, order)
	return out, f, nil
}

// OneStep2D runs a single joint NSRWS step on the equal-length pair x, y.
func OneStep2D(x, y Sequence, order int) (Sequence, Sequence, FrequentPair, error) {
	order, err := validOrder(order)
	if err != nil {
		return nil, nil, FrequentPair{}, err
	}
	if err := validatePair(x, y); err != nil {
		return nil, nil, FrequentPair{}, err
	}
	w := newPairWalker(x, y)
	if w.joint.Constant() {
		return nil, nil, FrequentPair{}, ErrConstant
	}
	if len(x) < order {
		return nil, nil, FrequentPair{}, fmt.Errorf("%w: length %d, order %d", ErrTooShort, len(x), order)
	}
	f := w.advance(order)
	return w.x, w.y, f, nil
}

// step runs mask, select and substitute once. The caller guarantees seq is
// not constant and at least order long.
func step(seq Sequence, order int) (Sequence, Frequent) {
	f := Select(seq, Mask(seq, order), order)
	value := seq.Max() + 1
	switch {
	case f.Degenerate():
		return substituteFirst(seq, order, value), f
	case order == 2:
		return substitutePairs(seq, f.Window[0], f.Window[1], value), f
	default:
		return Substitute(seq, f.Indices, order, value), f
	}
}
