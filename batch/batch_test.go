package batch

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/axiomhq/etc"
)

func TestRun(t *testing.T) {
	jobs := []Job{
		{Name: "mixed", X: etc.Sequence{1, 2, 1, 2, 2, 1, 2, 1}},
		{Name: "distinct", X: etc.Sequence{1, 2, 3, 4, 5, 6, 7}},
		{Name: "bad", X: etc.Sequence{1, 0}},
		{Name: "joint", X: etc.Sequence{1, 2, 1, 2, 2, 1}, Y: etc.Sequence{1, 1, 2, 2, 1, 1}},
		{Name: "mismatch", X: etc.Sequence{1, 2}, Y: etc.Sequence{1}},
	}
	report, err := Run(context.Background(), jobs, Config{Workers: 2, Options: etc.DefaultOptions()})
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, report.RunID)
	require.Len(t, report.Outcomes, len(jobs))

	want := []int{5, 6, -1, 5, -1}
	for i, o := range report.Outcomes {
		assert.Equal(t, i, o.Index)
		assert.Equal(t, jobs[i].Name, o.Name)
		if want[i] < 0 {
			assert.Error(t, o.Err, o.Name)
			continue
		}
		require.NoError(t, o.Err, o.Name)
		assert.Equal(t, want[i], o.Result.ETC, o.Name)
	}
	assert.ErrorIs(t, report.Outcomes[2].Err, etc.ErrInvalidInput)
	assert.ErrorIs(t, report.Outcomes[4].Err, etc.ErrLengthMismatch)
	assert.True(t, report.Outcomes[3].Joint)
}

func TestRunMatchesSerial(t *testing.T) {
	var seqs []etc.Sequence
	for n := 3; n < 40; n++ {
		s := make(etc.Sequence, n)
		for i := range s {
			s[i] = uint32(1 + (i*i+n)%3)
		}
		seqs = append(seqs, s)
	}
	opts := etc.Options{Order: 3}
	got, err := Map(context.Background(), seqs, 4, opts)
	require.NoError(t, err)
	for i, s := range seqs {
		want, err := etc.Compute(s, opts)
		require.NoError(t, err)
		assert.Equal(t, want.ETC, got[i].ETC, "sequence %d", i)
	}
}

func TestRunErrors(t *testing.T) {
	_, err := Run(context.Background(), nil, Config{})
	assert.ErrorIs(t, err, ErrNoJobs)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = Run(ctx, []Job{{X: etc.Sequence{1, 2}}}, Config{})
	assert.ErrorIs(t, err, context.Canceled)

	_, err = Map(context.Background(), []etc.Sequence{{1, 2}, {0}}, 1, etc.Options{})
	assert.ErrorIs(t, err, etc.ErrInvalidInput)
}

func TestSummarize(t *testing.T) {
	outcomes := []Outcome{
		{Result: etc.Result{ETC: 2, NETC: 0.5}},
		{Result: etc.Result{ETC: 4, NETC: 1}},
		{Err: etc.ErrTooShort},
		{Result: etc.Result{ETC: 6, NETC: 0.75}},
	}
	s, err := Summarize(outcomes)
	require.NoError(t, err)
	assert.Equal(t, 4, s.Jobs)
	assert.Equal(t, 1, s.Failed)
	assert.InDelta(t, 4, s.MeanETC, 1e-12)
	assert.InDelta(t, 4, s.MedianETC, 1e-12)
	assert.InDelta(t, 2, s.MinETC, 1e-12)
	assert.InDelta(t, 6, s.MaxETC, 1e-12)
	// Population standard deviation of 2, 4, 6.
	assert.InDelta(t, 1.632993161855452, s.StdDevETC, 1e-9)
	assert.InDelta(t, 0.75, s.MeanNETC, 1e-12)
	assert.InDelta(t, 0.75, s.MedianNETC, 1e-12)

	_, err = Summarize([]Outcome{{Err: etc.ErrTooShort}})
	assert.ErrorIs(t, err, ErrNoResults)
}
