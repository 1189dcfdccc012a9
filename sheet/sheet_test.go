package sheet

import (
	"bytes"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/axiomhq/etc"
	"github.com/axiomhq/etc/batch"
)

func TestWriteTrajectory(t *testing.T) {
	seq := etc.Sequence{1, 2, 1, 2, 2, 1, 2, 1}
	res, err := etc.Compute(seq, etc.Options{Order: 2, Verbose: true})
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, WriteTrajectory(&buf, res.Trajectory))

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows(trajectorySheet)
	require.NoError(t, err)
	require.Len(t, rows, len(res.Trajectory.Steps)+1)
	assert.Equal(t, res.Trajectory.Header(), rows[0])
	assert.Equal(t, []string{"0", "8", "1"}, rows[1][:3])
	assert.Equal(t, "1 2", rows[2][3])
	assert.Equal(t, "3", rows[2][4])
}

func TestWriteReport(t *testing.T) {
	r := &batch.Report{
		RunID: uuid.New(),
		Outcomes: []batch.Outcome{
			{Index: 0, Name: "ok", Length: 8, Result: etc.Result{ETC: 5, NETC: 5.0 / 7}, Elapsed: time.Millisecond},
			{Index: 1, Name: "bad", Length: 2, Joint: true, Err: errors.New("boom")},
		},
	}
	var buf bytes.Buffer
	require.NoError(t, WriteReport(&buf, r))

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows(reportSheet)
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, ReportHeader, rows[0])
	assert.Equal(t, "ok", rows[1][1])
	assert.Equal(t, "5", rows[1][4])
	assert.Equal(t, "TRUE", rows[2][3])
	assert.Equal(t, "boom", rows[2][7])
	assert.Empty(t, rows[2][4])

	props, err := f.GetDocProps()
	require.NoError(t, err)
	assert.Equal(t, r.RunID.String(), props.Identifier)
}
