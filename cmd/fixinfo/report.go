package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"text/tabwriter"

	"github.com/gocarina/gocsv"

	"github.com/cwbudde/algo-fix32/measure/accuracy"
)

type results struct {
	order     []string
	invSqrt   *accuracy.InvSqrtReport
	roundTrip *accuracy.RoundTripReport
	atan2     *accuracy.Atan2Report
}

func runOperations(ops []string, opts []accuracy.Option, logger *slog.Logger) (*results, error) {
	res := &results{order: ops}

	for _, op := range ops {
		logger.Debug("running sweep", "op", op)

		switch op {
		case "invsqrt":
			rep, err := accuracy.InvSqrtSweep(opts...)
			if err != nil {
				return nil, fmt.Errorf("invsqrt sweep: %w", err)
			}
			res.invSqrt = &rep
		case "roundtrip":
			rep, err := accuracy.RoundTripSweep(opts...)
			if err != nil {
				return nil, fmt.Errorf("roundtrip sweep: %w", err)
			}
			res.roundTrip = &rep
		case "atan2":
			rep, err := accuracy.Atan2Sweep(opts...)
			if err != nil {
				return nil, fmt.Errorf("atan2 sweep: %w", err)
			}
			res.atan2 = &rep
		}
	}

	return res, nil
}

func (r *results) samples() []accuracy.Sample {
	var out []accuracy.Sample
	for _, op := range r.order {
		switch op {
		case "invsqrt":
			out = append(out, r.invSqrt.Samples...)
		case "roundtrip":
			out = append(out, r.roundTrip.Samples...)
		case "atan2":
			out = append(out, r.atan2.Samples...)
		}
	}
	return out
}

func printSummary(w io.Writer, r *results) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	if _, err := fmt.Fprintf(tw, "Operation\tPoints\tMax Error\tMean Error\tStd Dev\tNotes\n"); err != nil {
		return fmt.Errorf("writing output header: %w", err)
	}
	if _, err := fmt.Fprintf(tw, "---------\t------\t---------\t----------\t-------\t-----\n"); err != nil {
		return fmt.Errorf("writing output header: %w", err)
	}

	for _, op := range r.order {
		var (
			st    accuracy.Stats
			notes string
		)

		switch op {
		case "invsqrt":
			st = r.invSqrt.Error
			notes = fmt.Sprintf("iters=%d scale=%d fast-sqrt max=%.3g",
				r.invSqrt.Iterations, r.invSqrt.Scale, r.invSqrt.Baseline.Max)
		case "roundtrip":
			st = r.roundTrip.Error
			notes = fmt.Sprintf("scale=%d rounding=%s", r.roundTrip.Scale, r.roundTrip.Rounding)
		case "atan2":
			st = r.atan2.Error
			notes = fmt.Sprintf("radians radius=%.0f bias=%.2g dominant harmonic=%d",
				r.atan2.Radius, r.atan2.Bias, r.atan2.Dominant)
		}

		if _, err := fmt.Fprintf(tw, "%s\t%d\t%.4g\t%.4g\t%.4g\t%s\n",
			op, st.Count, st.Max, st.Mean, st.StdDev, notes); err != nil {
			return fmt.Errorf("writing output row: %w", err)
		}
	}

	if err := tw.Flush(); err != nil {
		return fmt.Errorf("flushing output: %w", err)
	}

	return nil
}

func printHarmonics(w io.Writer, rep *accuracy.Atan2Report) error {
	if _, err := fmt.Fprintf(w, "\natan2 error harmonics (radians)\n"); err != nil {
		return fmt.Errorf("writing harmonics header: %w", err)
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	if _, err := fmt.Fprintf(tw, "Harmonic\tAmplitude\n--------\t---------\n"); err != nil {
		return fmt.Errorf("writing harmonics header: %w", err)
	}

	// Bin 0 is the bias, already in the summary.
	for k := 1; k < len(rep.Harmonics); k++ {
		if _, err := fmt.Fprintf(tw, "%d\t%.4g\n", k, rep.Harmonics[k]); err != nil {
			return fmt.Errorf("writing harmonics row: %w", err)
		}
	}

	if err := tw.Flush(); err != nil {
		return fmt.Errorf("flushing output: %w", err)
	}

	return nil
}

// writeCSV writes samples to path, or to stdout when path is "-".
func writeCSV(path string, stdout io.Writer, samples []accuracy.Sample) (err error) {
	out := stdout
	if path != "-" {
		f, err := os.Create(path)
		if err != nil {
			return fmt.Errorf("creating %s: %w", path, err)
		}
		defer func() {
			if cerr := f.Close(); cerr != nil && err == nil {
				err = fmt.Errorf("closing %s: %w", path, cerr)
			}
		}()
		out = f
	}

	if err := gocsv.Marshal(samples, out); err != nil {
		return fmt.Errorf("writing samples: %w", err)
	}

	return nil
}
