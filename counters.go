package etc

// counters tallies window occurrences in first-seen order.
//
// Each distinct window gets a slot the first time it is seen; slots are
// numbered in scan order, so iterating slots (not the map) gives the
// first-seen order that the selection tie-break relies on. For every slot
// it also remembers where the last accepted occurrence started, so that an
// occurrence overlapping the previous accepted copy of the same window is
// not counted.
type counters[K comparable] struct {
	slot  map[K]int // window key -> slot
	count []int     // slot -> accepted occurrences
	first []int     // slot -> start index of first occurrence
	last  []int     // slot -> start index of last accepted occurrence
}

func newCounters[K comparable](hint int) *counters[K] {
	return &counters[K]{
		slot:  make(map[K]int, hint),
		count: make([]int, 0, hint),
		first: make([]int, 0, hint),
		last:  make([]int, 0, hint),
	}
}

// inc records an occurrence of key starting at index i. Occurrences closer
// than order to the previous accepted one are ignored.
func (c *counters[K]) inc(key K, i, order int) {
	s, ok := c.slot[key]
	if !ok {
		c.slot[key] = len(c.count)
		c.count = append(c.count, 1)
		c.first = append(c.first, i)
		c.last = append(c.last, i)
		return
	}
	if i-c.last[s] < order {
		return
	}
	c.count[s]++
	c.last[s] = i
}

// best returns the slot with the highest count. Ties resolve to the lowest
// slot, i.e. the window seen first.
func (c *counters[K]) best() (slot int, count int) {
	slot = -1
	for s, n := range c.count {
		if n > count {
			slot, count = s, n
		}
	}
	return slot, count
}
