package main

import (
	"bufio"
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/axiomhq/etc/batch"
	"github.com/axiomhq/etc/recode"
	"github.com/axiomhq/etc/sheet"
)

func newBatchCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "batch FILE",
		Short: "Compute ETC for every line of FILE in parallel",
		Long: `batch reads one sequence per non-empty line. A line of the form
"X | Y" is a joint job over the two sequences X and Y. Lines starting
with # are ignored. The report has one row per job, in input order.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := a.readInput(cmd, args[0])
			if err != nil {
				return err
			}
			jobs, err := parseJobs(data, a.cfg.Recode)
			if err != nil {
				return err
			}
			report, err := batch.Run(cmd.Context(), jobs, batch.Config{
				Workers: a.cfg.Workers,
				Options: a.cfg.Options(),
				Logger:  a.log,
			})
			if err != nil {
				return err
			}
			if sum, err := batch.Summarize(report.Outcomes); err == nil {
				a.log.Info("summary", "jobs", sum.Jobs, "failed", sum.Failed,
					"mean_etc", sum.MeanETC, "median_etc", sum.MedianETC,
					"stddev_etc", sum.StdDevETC, "mean_netc", sum.MeanNETC)
			} else {
				a.log.Warn("summary unavailable", "error", err)
			}
			return a.writeReport(cmd, report)
		},
	}
	cmd.Flags().Int("workers", 0, "concurrent jobs (0 means GOMAXPROCS)")
	return cmd
}

// parseJobs splits data into one job per line. Jobs are named by line number.
func parseJobs(data []byte, recoder string) ([]batch.Job, error) {
	decode, err := recode.ByName(recoder)
	if err != nil {
		return nil, err
	}
	var (
		jobs []batch.Job
		sc   = bufio.NewScanner(bytes.NewReader(data))
		line int
	)
	sc.Buffer(make([]byte, 0, 64*1024), 64*1024*1024)
	for sc.Scan() {
		line++
		text := strings.TrimSpace(sc.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}
		job := batch.Job{Name: "line " + strconv.Itoa(line)}
		xs, ys, joint := strings.Cut(text, "|")
		if job.X, err = decode(strings.TrimSpace(xs)); err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		if joint {
			if job.Y, err = decode(strings.TrimSpace(ys)); err != nil {
				return nil, fmt.Errorf("line %d: %w", line, err)
			}
		}
		jobs = append(jobs, job)
	}
	return jobs, sc.Err()
}

func (a *app) writeReport(cmd *cobra.Command, r *batch.Report) error {
	if a.out == "" && a.cfg.Format == "xlsx" {
		return fmt.Errorf("--format xlsx needs --out")
	}
	w, closeOut, err := a.output(cmd)
	if err != nil {
		return err
	}
	if a.cfg.Format == "xlsx" {
		err = sheet.WriteReport(w, r)
	} else {
		err = writeReportCSV(w, r)
	}
	if err != nil {
		_ = closeOut()
		return err
	}
	return closeOut()
}

func writeReportCSV(w io.Writer, r *batch.Report) error {
	enc := csv.NewWriter(w)
	if err := enc.Write(sheet.ReportHeader); err != nil {
		return err
	}
	for _, o := range r.Outcomes {
		row := []string{
			strconv.Itoa(o.Index), o.Name, strconv.Itoa(o.Length),
			strconv.FormatBool(o.Joint), "", "",
			strconv.FormatFloat(o.Elapsed.Seconds(), 'g', -1, 64), "",
		}
		if o.Err != nil {
			row[7] = o.Err.Error()
		} else {
			row[4] = strconv.Itoa(o.Result.ETC)
			row[5] = strconv.FormatFloat(o.Result.NETC, 'g', -1, 64)
		}
		if err := enc.Write(row); err != nil {
			return err
		}
	}
	enc.Flush()
	return enc.Error()
}
