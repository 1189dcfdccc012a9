// Package sheet writes ETC trajectories and batch reports as XLSX
// workbooks.
package sheet

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"github.com/axiomhq/etc"
	"github.com/axiomhq/etc/batch"
)

const (
	trajectorySheet = "trajectory"
	reportSheet     = "report"
)

// ReportHeader is the header row written by WriteReport.
var ReportHeader = []string{"index", "name", "length", "joint", "etc", "netc", "seconds", "error"}

// WriteTrajectory writes t to w as a single-sheet workbook with the same
// columns as Trajectory.WriteTo. Numbers are stored as numbers.
func WriteTrajectory(w io.Writer, t *etc.Trajectory) error {
	f := excelize.NewFile()
	defer f.Close()
	if err := f.SetSheetName("Sheet1", trajectorySheet); err != nil {
		return err
	}
	if err := setRow(f, trajectorySheet, 1, toAny(t.Header())); err != nil {
		return err
	}
	for i, s := range t.Steps {
		if err := setRow(f, trajectorySheet, i+2, stepRow(s, t.Paired)); err != nil {
			return err
		}
	}
	if _, err := f.WriteTo(w); err != nil {
		return fmt.Errorf("sheet: %w", err)
	}
	return nil
}

// WriteReport writes one row per batch outcome. Failed jobs keep their row
// with the error text and empty result columns.
func WriteReport(w io.Writer, r *batch.Report) error {
	f := excelize.NewFile()
	defer f.Close()
	if err := f.SetSheetName("Sheet1", reportSheet); err != nil {
		return err
	}
	if err := setRow(f, reportSheet, 1, toAny(ReportHeader)); err != nil {
		return err
	}
	for i, o := range r.Outcomes {
		row := []any{o.Index, o.Name, o.Length, o.Joint, nil, nil, o.Elapsed.Seconds(), nil}
		if o.Err != nil {
			row[7] = o.Err.Error()
		} else {
			row[4], row[5] = o.Result.ETC, o.Result.NETC
		}
		if err := setRow(f, reportSheet, i+2, row); err != nil {
			return err
		}
	}
	if err := f.SetDocProps(&excelize.DocProperties{
		Title:       "ETC batch report",
		Identifier:  r.RunID.String(),
		Description: fmt.Sprintf("%d jobs in %s", len(r.Outcomes), r.Elapsed),
	}); err != nil {
		return err
	}
	if _, err := f.WriteTo(w); err != nil {
		return fmt.Errorf("sheet: %w", err)
	}
	return nil
}

func setRow(f *excelize.File, sheet string, row int, values []any) error {
	cell, err := excelize.CoordinatesToCellName(1, row)
	if err != nil {
		return err
	}
	return f.SetSheetRow(sheet, cell, &values)
}

// stepRow mirrors Trajectory.Rows with typed cells. Step 0 leaves the
// count and time cells empty.
func stepRow(s etc.Step, paired bool) []any {
	var count, elapsed any
	if s.Step > 0 {
		count, elapsed = s.Count, s.Elapsed.Seconds()
	}
	if paired {
		return []any{s.Step, s.Length, s.Entropy, s.EntropyY,
			s.Window.String(), s.WindowY.String(), count, elapsed}
	}
	return []any{s.Step, s.Length, s.Entropy, s.Window.String(), count, elapsed}
}

func toAny(ss []string) []any {
	out := make([]any, len(ss))
	for i, s := range ss {
		out[i] = s
	}
	return out
}
