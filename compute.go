package etc

import (
	"fmt"
	"time"
)

// Options controls a Compute or Compute2D run. The zero value is usable and
// means order 2 with every step simulated.
type Options struct {
	// Order is the window size. Zero means 2.
	Order int
	// Truncate stops simulating once every window is unique and adds the
	// remaining steps in closed form. The result is identical either way.
	Truncate bool
	// Verbose records a Trajectory with one Step per simulated step.
	Verbose bool
	// Tail is how many extra steps a verbose truncated run simulates after
	// the sequence turns degenerate, so the trajectory shows a few points of
	// the unique-window regime before the closed form takes over.
	Tail int
}

// DefaultOptions returns the fastest settings: pairs, truncated, no trajectory.
func DefaultOptions() Options {
	return Options{Order: 2, Truncate: true}
}

// Result is the outcome of one ETC computation.
type Result struct {
	ETC        int         // substitution steps to reach a constant sequence
	NETC       float64     // ETC / (initial length - 1)
	Trajectory *Trajectory // nil unless Options.Verbose
}

// Compute estimates the Effort-To-Compress of seq: the number of NSRWS
// steps needed to reduce it to a constant sequence (or to one shorter than
// the window order).
//
// A constant sequence has ETC 0. A non-constant sequence shorter than the
// order cannot be reduced and yields ErrTooShort.
func Compute(seq Sequence, opts Options) (Result, error) {
	order, err := validOrder(opts.Order)
	if err != nil {
		return Result{}, err
	}
	if err := seq.Validate(); err != nil {
		return Result{}, err
	}
	if len(seq) < order && !seq.Constant() {
		return Result{}, fmt.Errorf("%w: length %d, order %d", ErrTooShort, len(seq), order)
	}
	opts.Order = order
	w := &seqWalker{seq: seq.Clone()}
	etc, traj := run(w, opts)
	return Result{ETC: etc, NETC: normalize(etc, len(seq)), Trajectory: traj}, nil
}

// state is where the iteration stands.
type state uint8

const (
	running    state = iota
	degenerate       // every eligible window is unique
	terminal         // constant, or shorter than the order
)

// walker is one NSRWS computation in progress, single or paired.
type walker interface {
	size() int
	done(order int) bool
	// advance performs one step in place and reports what was substituted.
	advance(order int) FrequentPair
	// observe fills in the length and entropy of the current sequence.
	observe(s *Step)
}

// run drives w until it is terminal and returns the step count, with the
// trajectory when opts.Verbose is set.
func run(w walker, opts Options) (int, *Trajectory) {
	var (
		order = opts.Order
		traj  *Trajectory
		etc   int
		st    = running
		tail  int
	)
	if opts.Verbose {
		_, paired := w.(*pairWalker)
		traj = &Trajectory{Paired: paired}
		s := Step{}
		w.observe(&s)
		traj.Steps = append(traj.Steps, s)
	}

	for st != terminal {
		if w.done(order) {
			st = terminal
			continue
		}
		if st == degenerate && opts.Truncate {
			if tail == 0 {
				etc += remaining(w.size(), order)
				st = terminal
				continue
			}
			tail--
		}

		start := time.Now()
		f := w.advance(order)
		elapsed := time.Since(start)
		etc++

		if st == running && f.Degenerate() {
			st = degenerate
			if opts.Verbose {
				tail = max(opts.Tail, 0)
			}
		}
		if traj != nil {
			s := Step{Step: etc, Window: f.X, Count: f.Count, Elapsed: elapsed}
			if traj.Paired {
				s.WindowY = f.Y
			}
			w.observe(&s)
			traj.Steps = append(traj.Steps, s)
		}
	}
	return etc, traj
}

// remaining is the number of steps left once every window is unique. Each
// step then collapses the leading window, shrinking the sequence by
// order-1, until fewer than order symbols remain.
func remaining(length, order int) int {
	if length%(order-1) != 0 {
		return length / (order - 1)
	}
	return length/(order-1) - 1
}

func normalize(etc, length int) float64 {
	if length <= 1 {
		return 0
	}
	return float64(etc) / float64(length-1)
}

// seqWalker walks a single sequence.
type seqWalker struct {
	seq Sequence
}

func (w *seqWalker) size() int { return len(w.seq) }

func (w *seqWalker) done(order int) bool {
	return len(w.seq) < order || w.seq.Constant()
}

func (w *seqWalker) advance(order int) FrequentPair {
	var f Frequent
	w.seq, f = step(w.seq, order)
	return FrequentPair{X: f.Window, Count: f.Count, Indices: f.Indices}
}

func (w *seqWalker) observe(s *Step) {
	s.Length = len(w.seq)
	s.Entropy = Entropy(w.seq)
}
