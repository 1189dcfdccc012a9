// Package lz76 computes the Lempel-Ziv (1976) complexity of a symbolic
// sequence, the number of distinct phrases found by an exhaustive
// left-to-right parse. It serves as a cheap baseline next to ETC.
package lz76

import (
	"math"

	"github.com/axiomhq/etc"
)

// Complexity returns the LZ76 phrase count of seq using the Kaspar-Schuster
// scan. Constant sequences, including a single symbol, have complexity 2.
func Complexity(seq etc.Sequence) int {
	n := len(seq)
	switch {
	case n == 0:
		return 0
	case seq.Constant():
		return 2
	}
	var (
		c    = 1 // phrases found
		l    = 1 // start of the current phrase
		i    = 0 // candidate start of an earlier copy
		k    = 1 // length of the current match
		kmax = 1 // longest match for the current phrase
	)
	for {
		if seq[i+k-1] == seq[l+k-1] {
			k++
			if l+k > n {
				c++
				break
			}
			continue
		}
		kmax = max(kmax, k)
		i++
		if i < l {
			k = 1
			continue
		}
		// No earlier copy extends further: close the phrase.
		c++
		l += kmax
		if l+1 > n {
			break
		}
		i, k, kmax = 0, 1, 1
	}
	return c
}

// Normalized scales Complexity by n / log_b(n), where b is the alphabet
// size, so that random sequences approach 1.
func Normalized(seq etc.Sequence) float64 {
	n := len(seq)
	distinct := make(map[uint32]struct{})
	for _, v := range seq {
		distinct[v] = struct{}{}
	}
	b := len(distinct)
	if n < 2 || b < 2 {
		return 0
	}
	return float64(Complexity(seq)) * math.Log(float64(n)) / math.Log(float64(b)) / float64(n)
}
