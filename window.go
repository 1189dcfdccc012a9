package etc

import (
	"encoding/binary"
	"iter"
	"strconv"
	"strings"
)

// Window is a run of order consecutive symbols taken from a Sequence.
type Window []uint32

// String returns the symbols of w separated by single spaces.
func (w Window) String() string {
	var b strings.Builder
	for i, v := range w {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(strconv.FormatUint(uint64(v), 10))
	}
	return b.String()
}

// Windows yields the len(seq)-order+1 overlapping windows of seq in order.
// Each yielded Window aliases seq and must not be retained past the call.
func Windows(seq Sequence, order int) iter.Seq2[int, Window] {
	return func(yield func(int, Window) bool) {
		for i := 0; i+order <= len(seq); i++ {
			if !yield(i, Window(seq[i:i+order:i+order])) {
				return
			}
		}
	}
}

// numWindows is the number of overlapping windows of the given order.
func numWindows(n, order int) int { return max(n-order+1, 0) }

// pairKey packs the pair starting at seq[i] into one comparable word.
// Layout: high 32 bits first symbol, low 32 bits second symbol.
func pairKey(seq []uint32, i int) uint64 {
	return uint64(seq[i])<<32 | uint64(seq[i+1])
}

// windowKey packs the window starting at seq[i] into buf and returns it.
// The caller converts it to a string for map lookup; lookups with
// m[string(b)] do not allocate.
func windowKey(buf []byte, seq []uint32, i, order int) []byte {
	buf = buf[:0]
	for _, v := range seq[i : i+order] {
		buf = binary.LittleEndian.AppendUint32(buf, v)
	}
	return buf
}

// equalWindows reports whether the windows at i and j are identical.
func equalWindows(seq []uint32, i, j, order int) bool {
	for k := range order {
		if seq[i+k] != seq[j+k] {
			return false
		}
	}
	return true
}
