package disp

import (
	"io"

	"github.com/sirupsen/logrus"
)

// Config holds the search settings of a Solver.
type Config struct {
	// Modes is the number of modes to compute; mode 0 is the fundamental.
	Modes int

	// Step is the phase-velocity grid spacing of the root search. It
	// should be small compared with the spacing of neighbouring modes.
	Step float64

	// Logger receives debug entries about truncated modes.
	Logger logrus.FieldLogger
}

// Option mutates a Config.
type Option func(*Config)

// DefaultConfig returns the fundamental mode with a 0.005 velocity step.
func DefaultConfig() Config {
	return Config{
		Modes:  1,
		Step:   0.005,
		Logger: discardLogger(),
	}
}

// WithModes sets the number of modes.
func WithModes(modes int) Option {
	return func(cfg *Config) {
		cfg.Modes = modes
	}
}

// WithStep sets the phase-velocity search step.
func WithStep(step float64) Option {
	return func(cfg *Config) {
		cfg.Step = step
	}
}

// WithLogger sets the logger. A nil logger is ignored.
func WithLogger(logger logrus.FieldLogger) Option {
	return func(cfg *Config) {
		if logger != nil {
			cfg.Logger = logger
		}
	}
}

// ApplyOptions applies zero or more options to the default config.
func ApplyOptions(opts ...Option) Config {
	cfg := DefaultConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return cfg
}

// Validate reports whether the config can drive a search.
func (c Config) Validate() error {
	if c.Modes < 1 {
		return ErrInvalidModes
	}

	if !(c.Step > 0) {
		return ErrInvalidStep
	}

	return nil
}

func discardLogger() logrus.FieldLogger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}
