package etc

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"slices"
	"strconv"
	"strings"
	"time"
)

// Step is one row of a Trajectory. Step 0 describes the input before any
// substitution and has no window and a zero count.
type Step struct {
	Step     int
	Length   int
	Entropy  float64 // bits; of x for a paired run
	EntropyY float64 // bits; paired runs only
	Window   Window  // substituted window; x component for a paired run
	WindowY  Window  // paired runs only
	Count    int
	Elapsed  time.Duration
}

// Trajectory is the step-by-step record of a verbose run.
// Steps are appended in order and never rewritten.
type Trajectory struct {
	Paired bool
	Steps  []Step
}

// ErrBadHeader indicates a serialized trajectory has unexpected columns.
var ErrBadHeader = errors.New("etc: unrecognized trajectory header")

var (
	singleHeader = []string{"step", "length", "entropy", "window", "count", "time"}
	pairedHeader = []string{"step", "length", "entropy_x", "entropy_y", "window_x", "window_y", "count", "time"}
)

// Header returns the column names used by WriteTo.
func (t *Trajectory) Header() []string {
	if t.Paired {
		return slices.Clone(pairedHeader)
	}
	return slices.Clone(singleHeader)
}

// Rows renders every step as strings, in Header order. Step 0 leaves the
// window, count and time columns empty.
func (t *Trajectory) Rows() [][]string {
	rows := make([][]string, 0, len(t.Steps))
	for _, s := range t.Steps {
		var (
			count, elapsed string
			step           = strconv.Itoa(s.Step)
			length         = strconv.Itoa(s.Length)
		)
		if s.Step > 0 {
			count = strconv.Itoa(s.Count)
			elapsed = strconv.FormatFloat(s.Elapsed.Seconds(), 'g', -1, 64)
		}
		if t.Paired {
			rows = append(rows, []string{step, length,
				formatFloat(s.Entropy), formatFloat(s.EntropyY),
				s.Window.String(), s.WindowY.String(),
				count, elapsed})
			continue
		}
		rows = append(rows, []string{step, length,
			formatFloat(s.Entropy), s.Window.String(), count, elapsed})
	}
	return rows
}

// WriteTo serializes t to w as CSV: a header row, then one row per step.
// Windows are written as space separated symbols.
func (t *Trajectory) WriteTo(w io.Writer) (int64, error) {
	cw := &countingWriter{w: w}
	enc := csv.NewWriter(cw)
	if err := enc.Write(t.Header()); err != nil {
		return cw.n, err
	}
	if err := enc.WriteAll(t.Rows()); err != nil {
		return cw.n, err
	}
	return cw.n, nil
}

// ReadFrom replaces t with the trajectory serialized in r by WriteTo.
func (t *Trajectory) ReadFrom(r io.Reader) (int64, error) {
	cr := &countingReader{r: r}
	records, err := csv.NewReader(cr).ReadAll()
	if err != nil {
		return cr.n, err
	}
	if len(records) == 0 {
		return cr.n, fmt.Errorf("%w: empty input", ErrBadHeader)
	}
	var paired bool
	switch {
	case slices.Equal(records[0], singleHeader):
	case slices.Equal(records[0], pairedHeader):
		paired = true
	default:
		return cr.n, fmt.Errorf("%w: %q", ErrBadHeader, records[0])
	}
	out := Trajectory{Paired: paired, Steps: make([]Step, 0, len(records)-1)}
	for line, rec := range records[1:] {
		s, err := parseStep(rec, paired)
		if err != nil {
			return cr.n, fmt.Errorf("etc: trajectory row %d: %w", line+1, err)
		}
		out.Steps = append(out.Steps, s)
	}
	*t = out
	return cr.n, nil
}

// MarshalText implements encoding.TextMarshaler.
func (t *Trajectory) MarshalText() ([]byte, error) {
	var buf bytes.Buffer
	if _, err := t.WriteTo(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (t *Trajectory) UnmarshalText(data []byte) error {
	_, err := t.ReadFrom(bytes.NewReader(data))
	return err
}

func parseStep(rec []string, paired bool) (Step, error) {
	var (
		s   Step
		err error
	)
	// Column positions after the shared step/length prefix.
	entropy, window, count, elapsed := 2, 3, 4, 5
	if paired {
		window, count, elapsed = 4, 6, 7
	}
	if s.Step, err = strconv.Atoi(rec[0]); err != nil {
		return s, err
	}
	if s.Length, err = strconv.Atoi(rec[1]); err != nil {
		return s, err
	}
	if s.Entropy, err = strconv.ParseFloat(rec[entropy], 64); err != nil {
		return s, err
	}
	if s.Window, err = parseWindow(rec[window]); err != nil {
		return s, err
	}
	if paired {
		if s.EntropyY, err = strconv.ParseFloat(rec[3], 64); err != nil {
			return s, err
		}
		if s.WindowY, err = parseWindow(rec[5]); err != nil {
			return s, err
		}
	}
	if rec[count] != "" {
		if s.Count, err = strconv.Atoi(rec[count]); err != nil {
			return s, err
		}
	}
	if rec[elapsed] != "" {
		secs, err := strconv.ParseFloat(rec[elapsed], 64)
		if err != nil {
			return s, err
		}
		s.Elapsed = time.Duration(math.Round(secs * float64(time.Second)))
	}
	return s, nil
}

func formatFloat(f float64) string { return strconv.FormatFloat(f, 'g', -1, 64) }

func parseWindow(s string) (Window, error) {
	if s == "" {
		return nil, nil
	}
	fields := strings.Fields(s)
	w := make(Window, len(fields))
	for i, f := range fields {
		v, err := strconv.ParseUint(f, 10, 32)
		if err != nil {
			return nil, err
		}
		w[i] = uint32(v)
	}
	return w, nil
}

type countingWriter struct {
	w io.Writer
	n int64
}

func (c *countingWriter) Write(p []byte) (int, error) {
	n, err := c.w.Write(p)
	c.n += int64(n)
	return n, err
}

type countingReader struct {
	r io.Reader
	n int64
}

func (c *countingReader) Read(p []byte) (int, error) {
	n, err := c.r.Read(p)
	c.n += int64(n)
	return n, err
}
