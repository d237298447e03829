package accuracy

import (
	"fmt"
	"math"

	algofft "github.com/MeKo-Christian/algo-fft"
	"github.com/cwbudde/algo-vecmath"
	"gonum.org/v1/gonum/stat"

	"github.com/cwbudde/algo-fix32/fix32"
	"github.com/cwbudde/algo-fix32/internal/sweep"
)

// Atan2Report holds the absolute angle error of fix32.Atan2 over a full
// circle, in radians.
type Atan2Report struct {
	Radius float64
	Error  Stats
	// Bias is the mean signed error.
	Bias float64
	// Harmonics[k] is the amplitude of the k-th harmonic of the signed
	// error over one revolution, for k = 0..Config.Harmonics.
	Harmonics []float64
	// Dominant is the index of the strongest harmonic above DC, searched
	// over all harmonics up to Nyquist.
	Dominant int
	Samples  []Sample
}

// Atan2Sweep evaluates Atan2 at Config.Points angles evenly spaced on a
// circle of raw radius Config.Radius, starting at -pi. The inputs are
// passed at scale 28; the result does not depend on the scale. The error
// spectrum is computed with a complex FFT of length Config.Points, so
// powers of two are the safe choice.
func Atan2Sweep(opts ...Option) (Atan2Report, error) {
	cfg, err := NewConfig(opts...)
	if err != nil {
		return Atan2Report{}, err
	}

	xs, ys, angles := sweep.Circle(cfg.Points, cfg.Radius)
	signed := make([]float64, len(xs))
	errs := make([]float64, len(xs))

	var samples []Sample
	if cfg.KeepSamples {
		samples = make([]Sample, 0, len(xs))
	}

	for i := range xs {
		got := fix32.ToFloat64(int64(fix32.Atan2(ys[i], xs[i], fix32.AngleScale)), fix32.AngleScale)
		signed[i] = math.Remainder(got-angles[i], 2*math.Pi)
		errs[i] = math.Abs(signed[i])

		if cfg.KeepSamples {
			samples = append(samples, Sample{
				Op:   "atan2",
				X:    float64(xs[i]),
				Y:    float64(ys[i]),
				Got:  got,
				Want: angles[i],
				Err:  errs[i],
			})
		}
	}

	mag, err := harmonicAmplitudes(signed)
	if err != nil {
		return Atan2Report{}, fmt.Errorf("accuracy: error spectrum: %w", err)
	}

	dominant := 1
	for k := 2; k < len(mag); k++ {
		if mag[k] > mag[dominant] {
			dominant = k
		}
	}

	n := cfg.Harmonics + 1
	if n > len(mag) {
		n = len(mag)
	}

	return Atan2Report{
		Radius:    cfg.Radius,
		Error:     summarize(errs),
		Bias:      stat.Mean(signed, nil),
		Harmonics: append([]float64(nil), mag[:n]...),
		Dominant:  dominant,
		Samples:   samples,
	}, nil
}

// harmonicAmplitudes returns the single-sided amplitude spectrum of a real
// periodic sequence, bins 0..len/2. Bin 0 holds the magnitude of the mean.
func harmonicAmplitudes(signal []float64) ([]float64, error) {
	n := len(signal)

	plan, err := algofft.NewPlan64(n)
	if err != nil {
		return nil, err
	}

	in := make([]complex128, n)
	for i, v := range signal {
		in[i] = complex(v, 0)
	}

	out := make([]complex128, n)
	if err := plan.Forward(out, in); err != nil {
		return nil, err
	}

	bins := n/2 + 1
	re := make([]float64, bins)
	im := make([]float64, bins)
	for k := range bins {
		re[k] = real(out[k])
		im[k] = imag(out[k])
	}

	mag := make([]float64, bins)
	vecmath.Magnitude(mag, re, im)

	// Scale to amplitudes: DC and Nyquist are not mirrored.
	for k := range mag {
		if k == 0 || (n%2 == 0 && k == n/2) {
			mag[k] /= float64(n)
		} else {
			mag[k] *= 2 / float64(n)
		}
	}

	return mag, nil
}
