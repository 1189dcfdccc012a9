package etc

// Frequent describes the window chosen for substitution in one step.
type Frequent struct {
	Window  Window // copy of the chosen window
	Count   int    // accepted, mutually non-overlapping occurrences
	Indices []int  // start index of every accepted occurrence, ascending
}

// Degenerate reports whether every eligible window was unique, which is
// the point from which the remaining effort has a closed form.
func (f Frequent) Degenerate() bool { return f.Count == 1 }

// Select returns the most frequent masked-in window of seq. Ties go to the
// window whose first occurrence comes earliest. mask must come from Mask
// for the same seq and order; a nil mask selects over every window.
func Select(seq Sequence, mask []bool, order int) Frequent {
	n := numWindows(len(seq), order)
	if n == 0 {
		return Frequent{}
	}
	var first int
	if order == 2 {
		first = selectPairs(seq, mask, n)
	} else {
		first = selectWindows(seq, mask, order, n)
	}
	return collect(seq, mask, order, first)
}

// selectPairs counts masked-in pairs and returns where the winning pair
// first occurs.
func selectPairs(seq []uint32, mask []bool, n int) int {
	c := newCounters[uint64](n)
	for i := range n {
		if mask != nil && !mask[i] {
			continue
		}
		c.inc(pairKey(seq, i), i, 2)
	}
	s, _ := c.best()
	return c.first[s]
}

func selectWindows(seq []uint32, mask []bool, order, n int) int {
	var (
		c   = newCounters[string](n)
		buf = make([]byte, 0, 4*order)
	)
	for i := range n {
		if mask != nil && !mask[i] {
			continue
		}
		buf = windowKey(buf, seq, i, order)
		if s, ok := c.slot[string(buf)]; ok {
			// Existing key: count without allocating a new string.
			if i-c.last[s] >= order {
				c.count[s]++
				c.last[s] = i
			}
			continue
		}
		c.inc(string(buf), i, order)
	}
	s, _ := c.best()
	return c.first[s]
}

// collect gathers the accepted occurrences of the window starting at
// first, applying the same mask and overlap rule the counters used.
func collect(seq []uint32, mask []bool, order, first int) Frequent {
	f := Frequent{Window: Window(append([]uint32(nil), seq[first:first+order]...))}
	last := -order
	for i := first; i+order <= len(seq); i++ {
		if mask != nil && !mask[i] {
			continue
		}
		if i-last < order || !equalWindows(seq, i, first, order) {
			continue
		}
		f.Indices = append(f.Indices, i)
		last = i
	}
	f.Count = len(f.Indices)
	return f
}
