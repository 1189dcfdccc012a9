package etc

import "fmt"

// Compute2D estimates the joint Effort-To-Compress of the equal-length
// sequences x and y. Windows are compared jointly: two windows are equal
// only when both their x and y components match position by position.
// Each step substitutes x and y in lockstep, with 1+max(x) and 1+max(y),
// so the two always keep the same length.
//
// The run ends when the joint sequence is constant (x and y both constant)
// or shorter than the order.
func Compute2D(x, y Sequence, opts Options) (Result, error) {
	order, err := validOrder(opts.Order)
	if err != nil {
		return Result{}, err
	}
	if err := validatePair(x, y); err != nil {
		return Result{}, err
	}
	w := newPairWalker(x, y)
	if len(x) < order && !w.joint.Constant() {
		return Result{}, fmt.Errorf("%w: length %d, order %d", ErrTooShort, len(x), order)
	}
	opts.Order = order
	etc, traj := run(w, opts)
	return Result{ETC: etc, NETC: normalize(etc, len(x)), Trajectory: traj}, nil
}

func validatePair(x, y Sequence) error {
	if len(x) != len(y) {
		return fmt.Errorf("%w: %d != %d", ErrLengthMismatch, len(x), len(y))
	}
	if err := x.Validate(); err != nil {
		return fmt.Errorf("x: %w", err)
	}
	if err := y.Validate(); err != nil {
		return fmt.Errorf("y: %w", err)
	}
	return nil
}

// jointLane numbers each distinct (x[i], y[i]) pair by first appearance,
// starting at 1. Equal joint ids mean equal symbols in both sequences.
func jointLane(x, y Sequence) Sequence {
	var (
		ids   = make(map[uint64]uint32, len(x))
		joint = make(Sequence, len(x))
	)
	for i := range x {
		k := uint64(x[i])<<32 | uint64(y[i])
		id, ok := ids[k]
		if !ok {
			id = uint32(len(ids) + 1)
			ids[k] = id
		}
		joint[i] = id
	}
	return joint
}

// pairWalker walks two sequences together. Selection runs on the joint
// lane; x and y only follow the substitutions.
type pairWalker struct {
	x, y, joint Sequence
}

func newPairWalker(x, y Sequence) *pairWalker {
	return &pairWalker{x: x.Clone(), y: y.Clone(), joint: jointLane(x, y)}
}

func (w *pairWalker) size() int { return len(w.joint) }

func (w *pairWalker) done(order int) bool {
	return len(w.joint) < order || w.joint.Constant()
}

func (w *pairWalker) advance(order int) FrequentPair {
	f := Select(w.joint, Mask(w.joint, order), order)
	at := f.Indices[0]
	fp := FrequentPair{
		X:       Window(append([]uint32(nil), w.x[at:at+order]...)),
		Y:       Window(append([]uint32(nil), w.y[at:at+order]...)),
		Count:   f.Count,
		Indices: f.Indices,
	}
	var (
		vx = w.x.Max() + 1
		vy = w.y.Max() + 1
		vj = w.joint.Max() + 1
	)
	if f.Degenerate() {
		w.x = substituteFirst(w.x, order, vx)
		w.y = substituteFirst(w.y, order, vy)
		w.joint = substituteFirst(w.joint, order, vj)
		return fp
	}
	w.x = Substitute(w.x, f.Indices, order, vx)
	w.y = Substitute(w.y, f.Indices, order, vy)
	w.joint = Substitute(w.joint, f.Indices, order, vj)
	return fp
}

func (w *pairWalker) observe(s *Step) {
	s.Length = len(w.joint)
	s.Entropy = Entropy(w.x)
	s.EntropyY = Entropy(w.y)
}
