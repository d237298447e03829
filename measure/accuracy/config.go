package accuracy

import (
	"fmt"

	"github.com/cwbudde/algo-fix32/fix32"
)

const (
	defaultPoints    = 4096
	defaultScale     = 30
	defaultRadius    = 1 << 28
	defaultShift     = 6
	defaultHarmonics = 16

	// Below this raw magnitude the round trip loses precision to the
	// truncated squaring, not to the approximation.
	roundTripFloor = 256
)

// Config holds sweep parameters shared by all sweeps.
type Config struct {
	// Points is the number of samples in the InvSqrt and Atan2 sweeps.
	Points int
	// Iterations is the Newton iteration count passed to InvSqrtN.
	Iterations int
	// Scale is the input scale of the InvSqrt and round-trip sweeps.
	Scale int
	// Radius is the raw radius of the Atan2 circle.
	Radius float64
	// Shift sets the density of the round-trip geometric sweep:
	// neighbouring inputs differ by about 2^-Shift.
	Shift uint
	// Harmonics is the number of error harmonics reported by Atan2Sweep.
	Harmonics int
	// Rounding is the mode of the round-trip squaring multiply.
	Rounding fix32.RoundingMode
	// KeepSamples retains every evaluated sample in the report.
	KeepSamples bool
}

// Option mutates a Config.
type Option func(*Config)

// DefaultConfig returns the configuration used when no options are given.
func DefaultConfig() Config {
	return Config{
		Points:     defaultPoints,
		Iterations: fix32.DefaultNewtonIterations,
		Scale:      defaultScale,
		Radius:     defaultRadius,
		Shift:      defaultShift,
		Harmonics:  defaultHarmonics,
	}
}

// WithPoints sets the number of sweep points.
func WithPoints(n int) Option {
	return func(c *Config) { c.Points = n }
}

// WithIterations sets the Newton iteration count.
func WithIterations(n int) Option {
	return func(c *Config) { c.Iterations = n }
}

// WithScale sets the input scale.
func WithScale(scale int) Option {
	return func(c *Config) { c.Scale = scale }
}

// WithRadius sets the raw Atan2 circle radius.
func WithRadius(r float64) Option {
	return func(c *Config) { c.Radius = r }
}

// WithShift sets the round-trip sweep density.
func WithShift(shift uint) Option {
	return func(c *Config) { c.Shift = shift }
}

// WithHarmonics sets the number of reported error harmonics.
func WithHarmonics(n int) Option {
	return func(c *Config) { c.Harmonics = n }
}

// WithRounding sets the rounding mode of the round-trip multiply.
func WithRounding(mode fix32.RoundingMode) Option {
	return func(c *Config) { c.Rounding = mode }
}

// WithSamples keeps per-sample records in the report.
func WithSamples() Option {
	return func(c *Config) { c.KeepSamples = true }
}

// NewConfig applies opts on top of DefaultConfig and validates the result.
func NewConfig(opts ...Option) (Config, error) {
	cfg := DefaultConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Validate reports the first invalid field.
func (c Config) Validate() error {
	switch {
	case c.Points < 2:
		return fmt.Errorf("accuracy: points must be at least 2, got %d", c.Points)
	case c.Iterations < 0:
		return fmt.Errorf("accuracy: iterations must be non-negative, got %d", c.Iterations)
	case c.Scale < -30 || c.Scale > 62:
		return fmt.Errorf("accuracy: scale %d out of range [-30, 62]", c.Scale)
	case !(c.Radius >= 1 && c.Radius <= 1<<31-1):
		return fmt.Errorf("accuracy: radius %g out of range [1, 2^31-1]", c.Radius)
	case c.Shift > 24:
		return fmt.Errorf("accuracy: shift %d out of range [0, 24]", c.Shift)
	case c.Rounding < fix32.RoundHalfAwayFromZero || c.Rounding > fix32.RoundHalfTowardZero:
		return fmt.Errorf("accuracy: unknown rounding mode %d", int(c.Rounding))
	case c.Harmonics < 0:
		return fmt.Errorf("accuracy: harmonics must be non-negative, got %d", c.Harmonics)
	}

	return nil
}
