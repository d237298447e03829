package accuracy

import (
	"math"

	"github.com/cwbudde/algo-fix32/fix32"
	"github.com/cwbudde/algo-fix32/internal/sweep"
)

// RoundTripReport holds the relative error of squaring InvSqrt with Mul,
// which should give the reciprocal of the input.
type RoundTripReport struct {
	Scale    int
	Rounding fix32.RoundingMode
	Error    Stats
	Samples  []Sample
}

// RoundTripSweep squares InvSqrtN(v, Config.Scale) with a Multiplier
// rounding by Config.Rounding and compares the result to 2^Scale/v over a
// geometric sweep of raw inputs from 256 to 2^32-1 with density
// Config.Shift.
func RoundTripSweep(opts ...Option) (RoundTripReport, error) {
	cfg, err := NewConfig(opts...)
	if err != nil {
		return RoundTripReport{}, err
	}

	inputs := sweep.Geometric(roundTripFloor, math.MaxUint32, cfg.Shift)
	errs := make([]float64, len(inputs))

	var samples []Sample
	if cfg.KeepSamples {
		samples = make([]Sample, 0, len(inputs))
	}

	mul := fix32.NewMultiplier(fix32.WithRounding(cfg.Rounding))
	for i, v := range inputs {
		m, s := fix32.InvSqrtN(v, cfg.Scale, cfg.Iterations)
		sq := mul.Mul(int32(m), int32(m), 32)

		got := fix32.ToFloat64(int64(sq), 2*s-32)
		want := math.Ldexp(1, cfg.Scale) / float64(v)
		errs[i] = math.Abs(got-want) / want

		if cfg.KeepSamples {
			samples = append(samples, Sample{
				Op:   "roundtrip",
				X:    fix32.ToFloat64(int64(v), cfg.Scale),
				Got:  got,
				Want: want,
				Err:  errs[i],
			})
		}
	}

	return RoundTripReport{
		Scale:    cfg.Scale,
		Rounding: cfg.Rounding,
		Error:    summarize(errs),
		Samples:  samples,
	}, nil
}
