// Package etc estimates the complexity of symbolic sequences by their
// Effort-To-Compress (ETC).
//
// # Overview
//
// ETC counts how many rounds of Non-Sequential Recursive Window Substitution
// (NSRWS) it takes to collapse a sequence into a constant one. Each round
// finds the most frequent window of order consecutive symbols, replaces
// every non-overlapping occurrence with a fresh symbol (one larger than the
// current maximum), and repeats. Sequences with more structure compress in
// fewer rounds relative to their length. The pair case (order 2) is also
// known as NSRPS.
//
// # When to Use ETC
//
// ETC is suited to:
//   - Short, noisy symbolic series (binned physiological or sensor data)
//   - Comparing complexity across sequences of the same length (NETC)
//   - Joint complexity of two aligned series (Compute2D), as an input to
//     causality or distance measures (Distance)
//
// # When NOT to Use ETC
//
// ETC is not a good fit for:
//   - Very long sequences where each O(n) round adds up (consider LZ76 in
//     package lz76 as a cheaper baseline)
//   - Continuous data that has not been binned into symbols
//
// # Basic Usage
//
//	seq, err := etc.Cast([]int{1, 2, 1, 2, 2, 1, 2, 1})
//	if err != nil {
//	    return err
//	}
//	res, err := etc.Compute(seq, etc.DefaultOptions())
//	fmt.Println(res.ETC, res.NETC)
//
//	// Record every step and dump it as CSV
//	res, _ = etc.Compute(seq, etc.Options{Order: 2, Verbose: true})
//	res.Trajectory.WriteTo(os.Stdout)
//
// # Symbols
//
// Symbols are uint32 values >= 1; zero is reserved. Text and other alphabets
// are recoded first (see package recode). Inputs are copied on entry and
// never modified, so one Sequence may be shared by concurrent calls.
//
// # Truncation
//
// Once every window in the sequence is unique, each further round removes
// order-1 symbols from the front and nothing else changes, so the rest of
// the count has a closed form. With Options.Truncate the computation stops
// there. Truncated and full runs always return the same ETC.
//
// # Performance Characteristics
//
// One round: O(n) time and memory for mask, count and substitution.
// A full run: at most n-1 rounds; truncation usually cuts most of them.
package etc
