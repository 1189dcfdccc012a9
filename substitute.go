package etc

// Substitute returns a new sequence in which the window of the given order
// starting at each index in indices is collapsed into value: the window's
// first element becomes value and the other order-1 elements are dropped.
// All other elements are copied in order. seq is not modified.
//
// indices must be ascending; an index that overlaps the previous window or
// runs past the end of seq is ignored.
func Substitute(seq Sequence, indices []int, order int, value uint32) Sequence {
	out := make(Sequence, 0, max(len(seq)-len(indices)*(order-1), 0))
	pos := 0
	for _, i := range indices {
		if i < pos || i+order > len(seq) {
			continue
		}
		out = append(out, seq[pos:i]...)
		out = append(out, value)
		pos = i + order
	}
	return append(out, seq[pos:]...)
}

// substitutePairs is the order 2 path: it scans seq for the pair (a, b)
// and collapses every non-overlapping occurrence, leftmost first, without
// needing the occurrence list.
func substitutePairs(seq Sequence, a, b, value uint32) Sequence {
	out := make(Sequence, 0, len(seq))
	i := 0
	for i < len(seq)-1 {
		if seq[i] == a && seq[i+1] == b {
			out = append(out, value)
			i += 2
			continue
		}
		out = append(out, seq[i])
		i++
	}
	if i == len(seq)-1 {
		out = append(out, seq[i])
	}
	return out
}

// substituteFirst handles a degenerate step: every window is unique and the
// first one (index 0) is chosen, which leaves [value] + seq[order:].
func substituteFirst(seq Sequence, order int, value uint32) Sequence {
	out := make(Sequence, len(seq)-order+1)
	copy(out[1:], seq[order:])
	out[0] = value
	return out
}
