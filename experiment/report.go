// SPDX-License-Identifier: MIT

package experiment

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"text/tabwriter"
	"time"
)

// Report is the full outcome of Runner.Run.
type Report struct {
	RunID     string
	Config    Config
	Trials    []Trial   // ordered by Trial.Index
	Summaries []Summary // one per entry of Config.Sizes, same order
	Started   time.Time
	Elapsed   time.Duration
}

var trialHeader = []string{
	"run_id", "index", "n", "seed", "rc", "low", "high", "evaluations", "degenerate", "acceptance", "elapsed_ms",
}

var summaryHeader = []string{
	"run_id", "n", "count", "mean", "stddev", "min", "p05", "median", "p95", "max",
}

func ftoa(v float64) string { return strconv.FormatFloat(v, 'g', -1, 64) }

// WriteTrialsCSV writes one row per trial.
func (r *Report) WriteTrialsCSV(w io.Writer) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(trialHeader); err != nil {
		return err
	}
	for _, t := range r.Trials {
		row := []string{
			r.RunID,
			strconv.Itoa(t.Index),
			strconv.Itoa(t.Size),
			strconv.FormatInt(t.Seed, 10),
			ftoa(t.Radius),
			ftoa(t.Low),
			ftoa(t.High),
			strconv.Itoa(t.Evaluations),
			strconv.FormatBool(t.Degenerate),
			ftoa(t.Acceptance),
			ftoa(float64(t.Elapsed.Microseconds()) / 1000),
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()

	return cw.Error()
}

// WriteSummaryCSV writes one row per network size.
func (r *Report) WriteSummaryCSV(w io.Writer) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(summaryHeader); err != nil {
		return err
	}
	for _, s := range r.Summaries {
		row := []string{
			r.RunID,
			strconv.Itoa(s.Size),
			strconv.Itoa(s.Count),
			ftoa(s.Mean),
			ftoa(s.StdDev),
			ftoa(s.Min),
			ftoa(s.P05),
			ftoa(s.Median),
			ftoa(s.P95),
			ftoa(s.Max),
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()

	return cw.Error()
}

// WriteTable renders the summaries as an aligned text table.
func (r *Report) WriteTable(w io.Writer) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintln(tw, "n\tcount\tmean\tstddev\tmin\tp05\tmedian\tp95\tmax\t")
	for _, s := range r.Summaries {
		fmt.Fprintf(tw, "%d\t%d\t%.4f\t%.4f\t%.4f\t%.4f\t%.4f\t%.4f\t%.4f\t\n",
			s.Size, s.Count, s.Mean, s.StdDev, s.Min, s.P05, s.Median, s.P95, s.Max)
	}

	return tw.Flush()
}
