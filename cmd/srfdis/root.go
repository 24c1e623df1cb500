package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/cwbudde/algo-surf/disp"
)

// settings are the command options after flags, environment and the
// optional settings file are merged.
type settings struct {
	Modes    int     `mapstructure:"modes"`
	Step     float64 `mapstructure:"step"`
	Format   string  `mapstructure:"format"`
	Output   string  `mapstructure:"output"`
	Workers  int     `mapstructure:"workers"`
	LogLevel string  `mapstructure:"log-level"`
	Verbose  bool    `mapstructure:"verbose"`
}

func newRootCmd() *cobra.Command {
	v := viper.New()

	cmd := &cobra.Command{
		Use:   "srfdis [flags] model.yaml [model.yaml ...]",
		Short: "Rayleigh-wave dispersion curves of layered models",
		Long: `srfdis solves the Rayleigh-wave period equation of one or more layered
elastic models and prints the phase velocity of every mode at every period.
A zero velocity marks a period at which a higher mode has no root.`,
		Args:          cobra.MinimumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	flags := cmd.Flags()
	flags.String("config", "", "settings file (yaml, json or toml)")
	flags.Int("modes", 1, "number of modes, 1 is the fundamental mode only")
	flags.Float64("step", 0.005, "phase-velocity search step")
	flags.String("format", "table", "output format: table, csv, yaml")
	flags.StringP("output", "o", "-", "output file, - for stdout")
	flags.Int("workers", 0, "models solved at once, 0 for no limit")
	flags.String("log-level", "info", "log level: debug, info, warn, error")
	flags.BoolP("verbose", "v", false, "debug logging when the log level is info")

	_ = v.BindPFlags(flags)
	v.SetEnvPrefix("SRFDIS")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		cfg, err := loadSettings(v)
		if err != nil {
			return err
		}

		logger := setupLogger(cfg, cmd.ErrOrStderr())

		if err := run(cmd, cfg, args, logger); err != nil {
			logger.WithError(err).Error("srfdis failed")
			return err
		}

		return nil
	}

	return cmd
}

func loadSettings(v *viper.Viper) (settings, error) {
	if path := v.GetString("config"); path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return settings{}, fmt.Errorf("read settings %s: %w", path, err)
		}
	}

	var cfg settings
	if err := v.Unmarshal(&cfg); err != nil {
		return settings{}, fmt.Errorf("decode settings: %w", err)
	}

	return cfg, nil
}

func run(cmd *cobra.Command, cfg settings, files []string, logger *logrus.Logger) error {
	write, err := writerFor(cfg.Format)
	if err != nil {
		return err
	}

	solver, err := disp.NewSolver(
		disp.WithModes(cfg.Modes),
		disp.WithStep(cfg.Step),
		disp.WithLogger(logger),
	)
	if err != nil {
		return err
	}

	jobs := make([]disp.Job, 0, len(files))
	for _, path := range files {
		job, err := loadModelFile(path)
		if err != nil {
			return err
		}

		logger.WithField("model", job.Name).
			WithField("layers", job.Model.Layers()).
			WithField("periods", len(job.Periods)).
			Debug("model loaded")

		jobs = append(jobs, job)
	}

	curves, err := solver.SolveBatch(cmd.Context(), jobs, cfg.Workers)
	if err != nil {
		return err
	}

	results := make([]result, len(jobs))
	for i, job := range jobs {
		results[i] = result{Name: job.Name, Curve: curves[i]}

		for m := range curves[i].Modes() {
			if n := curves[i].Resolved(m); n < len(job.Periods) {
				logger.WithField("model", job.Name).
					WithField("mode", m).
					Infof("mode resolved at %d of %d periods", n, len(job.Periods))
			}
		}
	}

	out, closeOut, err := openOutput(cmd.OutOrStdout(), cfg.Output)
	if err != nil {
		return err
	}

	if err := write(out, results); err != nil {
		_ = closeOut()
		return err
	}

	return closeOut()
}

func openOutput(stdout io.Writer, path string) (io.Writer, func() error, error) {
	if path == "" || path == "-" {
		return stdout, func() error { return nil }, nil
	}

	f, err := os.Create(path)
	if err != nil {
		return nil, nil, fmt.Errorf("create output: %w", err)
	}

	return f, f.Close, nil
}
