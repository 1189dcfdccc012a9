package batch

import (
	"errors"
	"fmt"

	"github.com/montanaflynn/stats"
)

// ErrNoResults is returned by Summarize when every outcome failed.
var ErrNoResults = errors.New("batch: no successful outcomes")

// Summary describes the distribution of ETC and NETC over the successful
// outcomes of a batch.
type Summary struct {
	Jobs, Failed int

	MeanETC, MedianETC, StdDevETC float64
	MinETC, MaxETC                float64

	MeanNETC, MedianNETC, StdDevNETC float64
}

// Summarize computes a Summary over outcomes. Failed outcomes are counted
// and otherwise ignored.
func Summarize(outcomes []Outcome) (Summary, error) {
	s := Summary{Jobs: len(outcomes)}
	var etcs, netcs stats.Float64Data
	for _, o := range outcomes {
		if o.Err != nil {
			s.Failed++
			continue
		}
		etcs = append(etcs, float64(o.Result.ETC))
		netcs = append(netcs, o.Result.NETC)
	}
	if len(etcs) == 0 {
		return s, ErrNoResults
	}

	var err error
	for _, f := range []struct {
		dst  *float64
		data stats.Float64Data
		fn   func(stats.Float64Data) (float64, error)
	}{
		{&s.MeanETC, etcs, stats.Mean},
		{&s.MedianETC, etcs, stats.Median},
		{&s.StdDevETC, etcs, stats.StandardDeviation},
		{&s.MinETC, etcs, stats.Min},
		{&s.MaxETC, etcs, stats.Max},
		{&s.MeanNETC, netcs, stats.Mean},
		{&s.MedianNETC, netcs, stats.Median},
		{&s.StdDevNETC, netcs, stats.StandardDeviation},
	} {
		if *f.dst, err = f.fn(f.data); err != nil {
			return s, fmt.Errorf("batch: summary: %w", err)
		}
	}
	return s, nil
}
