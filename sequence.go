package etc

import (
	"errors"
	"fmt"
	"math"
)

// Sentinel errors returned (wrapped) by the constructors and drivers.
var (
	ErrInvalidInput   = errors.New("etc: invalid input")
	ErrLengthMismatch = errors.New("etc: sequences differ in length")
	ErrTooShort       = errors.New("etc: sequence shorter than order")
	ErrOrder          = errors.New("etc: order must be at least 2")
	ErrOverflow       = errors.New("etc: symbol values may overflow uint32")
)

// InputError reports the position and value that made an input unusable.
type InputError struct {
	Index int
	Value string // the offending value as written in the input
	Err   error
}

func (e *InputError) Error() string {
	return fmt.Sprintf("%v: value %s at index %d", e.Err, e.Value, e.Index)
}

func (e *InputError) Unwrap() error { return e.Err }

// Integer is the set of element types Cast accepts.
type Integer interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr
}

// Sequence is a discrete symbolic sequence. Symbols are >= 1; zero is
// reserved. A Sequence handed to this package is never written to.
type Sequence []uint32

// Cast copies in into a new Sequence, rejecting empty input, zero or
// negative values, values that do not fit in 32 bits, and inputs whose
// symbol allocation could run past math.MaxUint32.
func Cast[T Integer](in []T) (Sequence, error) {
	if len(in) == 0 {
		return nil, fmt.Errorf("%w: empty sequence", ErrInvalidInput)
	}
	out := make(Sequence, len(in))
	for i, v := range in {
		// Compare as signed first so negative values of signed types are caught.
		if v <= 0 {
			return nil, &InputError{Index: i, Value: fmt.Sprint(v), Err: ErrInvalidInput}
		}
		if uint64(v) > math.MaxUint32 {
			return nil, &InputError{Index: i, Value: fmt.Sprint(v), Err: ErrInvalidInput}
		}
		out[i] = uint32(v)
	}
	if err := checkHeadroom(out); err != nil {
		return nil, err
	}
	return out, nil
}

// CastPair casts two parallel inputs and checks they are the same length.
func CastPair[T Integer](x, y []T) (Sequence, Sequence, error) {
	if len(x) != len(y) {
		return nil, nil, fmt.Errorf("%w: %d != %d", ErrLengthMismatch, len(x), len(y))
	}
	sx, err := Cast(x)
	if err != nil {
		return nil, nil, fmt.Errorf("x: %w", err)
	}
	sy, err := Cast(y)
	if err != nil {
		return nil, nil, fmt.Errorf("y: %w", err)
	}
	return sx, sy, nil
}

// Validate checks an existing Sequence against the same rules as Cast.
func (s Sequence) Validate() error {
	if len(s) == 0 {
		return fmt.Errorf("%w: empty sequence", ErrInvalidInput)
	}
	for i, v := range s {
		if v == 0 {
			return &InputError{Index: i, Value: "0", Err: ErrInvalidInput}
		}
	}
	return checkHeadroom(s)
}

// Clone returns a copy of s backed by new memory.
func (s Sequence) Clone() Sequence {
	if s == nil {
		return nil
	}
	out := make(Sequence, len(s))
	copy(out, s)
	return out
}

// Max returns the largest symbol in s, or 0 for an empty sequence.
func (s Sequence) Max() uint32 {
	var m uint32
	for _, v := range s {
		m = max(m, v)
	}
	return m
}

// Constant reports whether every symbol in s is the same.
func (s Sequence) Constant() bool {
	for i := 1; i < len(s); i++ {
		if s[i] != s[0] {
			return false
		}
	}
	return true
}

// checkHeadroom rejects inputs where up to len-1 fresh symbols above the
// current maximum would not fit in a uint32.
func checkHeadroom(s Sequence) error {
	if uint64(s.Max())+uint64(len(s)-1) > math.MaxUint32 {
		return fmt.Errorf("%w: max symbol %d with length %d", ErrOverflow, s.Max(), len(s))
	}
	return nil
}

func validOrder(order int) (int, error) {
	if order == 0 {
		return 2, nil
	}
	if order < 2 {
		return 0, fmt.Errorf("%w: got %d", ErrOrder, order)
	}
	return order, nil
}
