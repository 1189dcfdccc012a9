package etc

import "fmt"

// Distance is the ETC dissimilarity of a and b:
//
//	0.5 * (ETC(a+b) + ETC(b+a) - ETC(a) - ETC(b))
//
// where a+b is concatenation. Both orders of concatenation are used so the
// measure is symmetric. opts.Verbose is ignored.
func Distance(a, b Sequence, opts Options) (float64, error) {
	opts.Verbose = false
	var (
		ab = append(a.Clone(), b...)
		ba = append(b.Clone(), a...)
	)
	etcs := make([]int, 4)
	for i, s := range []Sequence{a, b, ab, ba} {
		r, err := Compute(s, opts)
		if err != nil {
			return 0, fmt.Errorf("etc: distance operand %d: %w", i, err)
		}
		etcs[i] = r.ETC
	}
	return 0.5 * float64(etcs[2]+etcs[3]-etcs[0]-etcs[1]), nil
}
