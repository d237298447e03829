package accuracy

import (
	"math"

	approx "github.com/meko-christian/algo-approx"

	"github.com/cwbudde/algo-fix32/fix32"
	"github.com/cwbudde/algo-fix32/internal/sweep"
)

// InvSqrtReport holds the relative error of fix32.InvSqrtN over a mantissa
// sweep, next to a float64 fast-sqrt baseline evaluated on the same inputs.
type InvSqrtReport struct {
	Iterations int
	Scale      int
	Error      Stats
	Baseline   Stats
	Samples    []Sample
}

// InvSqrtSweep evaluates InvSqrtN on Config.Points raw inputs evenly
// spaced over [2^30, 2^32), read at Config.Scale. At the default scale of
// 30 this covers the real interval [1, 4), one full period of the
// even-exponent normalisation.
func InvSqrtSweep(opts ...Option) (InvSqrtReport, error) {
	cfg, err := NewConfig(opts...)
	if err != nil {
		return InvSqrtReport{}, err
	}

	inputs := sweep.Mantissa(cfg.Points)
	errs := make([]float64, len(inputs))
	base := make([]float64, len(inputs))

	var samples []Sample
	if cfg.KeepSamples {
		samples = make([]Sample, 0, len(inputs))
	}

	for i, v := range inputs {
		x := fix32.ToFloat64(int64(v), cfg.Scale)
		want := 1 / math.Sqrt(x)

		m, s := fix32.InvSqrtN(v, cfg.Scale, cfg.Iterations)
		got := fix32.ToFloat64(int64(m), s)

		errs[i] = math.Abs(got-want) / want
		base[i] = math.Abs(1/approx.FastSqrt(x)-want) / want

		if cfg.KeepSamples {
			samples = append(samples, Sample{
				Op:       "invsqrt",
				X:        x,
				Got:      got,
				Want:     want,
				Err:      errs[i],
				Baseline: base[i],
			})
		}
	}

	return InvSqrtReport{
		Iterations: cfg.Iterations,
		Scale:      cfg.Scale,
		Error:      summarize(errs),
		Baseline:   summarize(base),
		Samples:    samples,
	}, nil
}
