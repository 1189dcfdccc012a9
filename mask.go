package etc

// Mask returns the overlap mask of seq for windows of the given order.
// mask[i] is false when window i repeats, by direct overlap, the window
// retained before it in a run of identical windows. Retained copies of a
// window never share a position of seq.
//
// The mask has len(seq)-order+1 entries and mask[0] is always true. It is
// nil when seq is shorter than order.
func Mask(seq Sequence, order int) []bool {
	if order < 2 || len(seq) < order {
		return nil
	}
	mask := make([]bool, numWindows(len(seq), order))
	if order == 2 {
		fillMaskPairs(seq, mask)
	} else {
		fillMaskWindows(seq, order, mask)
	}
	return mask
}

// MaskPair is Mask over the joint sequence of (x[i], y[i]) symbols: a
// window repeats only when both its x and y components repeat.
func MaskPair(x, y Sequence, order int) []bool {
	if len(x) != len(y) {
		return nil
	}
	return Mask(jointLane(x, y), order)
}

// fillMaskPairs writes the order 2 mask. Equal neighbouring pairs mask the
// right one and the scan jumps past it, so a run of k identical pairs keeps
// every second pair starting from the first.
func fillMaskPairs(seq []uint32, mask []bool) {
	mask[0] = true
	for i := 0; i < len(mask)-1; {
		if seq[i] == seq[i+1] && seq[i+1] == seq[i+2] {
			mask[i+1] = false
			if i+2 < len(mask) {
				mask[i+2] = true
			}
			i += 2
			continue
		}
		mask[i+1] = true
		i++
	}
}

// fillMaskWindows writes the mask for any order >= 2.
//
// Window i equals window i-1 exactly when seq[i-1:i+order] is constant, so
// runs of identical overlapping windows are runs of one repeated symbol.
// Within such a run the first window is kept and then every order-th one;
// anything closer to the last kept window would share a position with it.
func fillMaskWindows(seq []uint32, order int, mask []bool) {
	mask[0] = true
	// start is where the constant stretch ending at seq[i+order-1] begins.
	start := 0
	for p := 1; p < order; p++ {
		if seq[p] != seq[p-1] {
			start = p
		}
	}
	kept := 0
	for i := 1; i < len(mask); i++ {
		p := i + order - 1
		if seq[p] != seq[p-1] {
			start = p
		}
		if start <= i-1 && i-kept < order {
			mask[i] = false
			continue
		}
		mask[i] = true
		kept = i
	}
}
