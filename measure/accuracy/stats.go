package accuracy

import (
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Stats summarises a set of non-negative error magnitudes.
type Stats struct {
	Count  int
	Max    float64
	Mean   float64
	StdDev float64
}

// summarize requires at least two errors.
func summarize(errs []float64) Stats {
	mean, std := stat.MeanStdDev(errs, nil)

	return Stats{
		Count:  len(errs),
		Max:    floats.Max(errs),
		Mean:   mean,
		StdDev: std,
	}
}

// Sample is one evaluated input. Unused coordinates are zero.
type Sample struct {
	Op       string  `csv:"op"`
	X        float64 `csv:"x"`
	Y        float64 `csv:"y"`
	Got      float64 `csv:"got"`
	Want     float64 `csv:"want"`
	Err      float64 `csv:"error"`
	Baseline float64 `csv:"baseline_error"`
}
