package etc

import (
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Entropy returns the Shannon entropy, in bits, of the symbol frequencies
// of seq. An empty or constant sequence has entropy 0.
func Entropy(seq Sequence) float64 {
	if len(seq) == 0 {
		return 0
	}
	// Frequencies are kept in first-seen order so the floating point sum,
	// and therefore the result, does not depend on map iteration order.
	var (
		slot = make(map[uint32]int, 16)
		p    = make([]float64, 0, 16)
	)
	for _, v := range seq {
		s, ok := slot[v]
		if !ok {
			s = len(p)
			slot[v] = s
			p = append(p, 0)
		}
		p[s]++
	}
	if len(p) == 1 {
		return 0
	}
	floats.Scale(1/float64(len(seq)), p)
	return stat.Entropy(p) / math.Ln2
}
