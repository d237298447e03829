// Command fixinfo prints the accuracy of the fix32 approximations.
//
// Usage:
//
//	fixinfo [flags] [operation ...]
//
// Without arguments it runs the operations listed in the configuration
// (by default all of them).
//
// Examples:
//
//	fixinfo
//	fixinfo -iters 1 invsqrt
//	fixinfo -radius 16777216 -points 1024 atan2
//	fixinfo -csv samples.csv roundtrip
//	fixinfo -config sweep.yaml -v
//	fixinfo -list
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/zeebo/errs"

	"github.com/cwbudde/algo-fix32/fix32"
	"github.com/cwbudde/algo-fix32/internal/cpu"
	"github.com/cwbudde/algo-fix32/measure/accuracy"
)

// Error is the class of all errors returned by fixinfo.
var Error = errs.Class("fixinfo")

type operation struct {
	name string
	desc string
}

var operations = []operation{
	{"invsqrt", "relative error of InvSqrt over the mantissa range [1, 4)"},
	{"roundtrip", "relative error of InvSqrt squared against the reciprocal"},
	{"atan2", "absolute angle error of Atan2 over a full circle"},
}

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string, stdout, stderr io.Writer) (err error) {
	defer Error.WrapP(&err)

	fs := flag.NewFlagSet("fixinfo", flag.ContinueOnError)
	fs.SetOutput(stderr)

	configPath := fs.String("config", "", "YAML config merged over the built-in defaults")
	points := fs.Int("points", 0, "sweep points for invsqrt and atan2")
	iters := fs.Int("iters", 0, "Newton iterations for InvSqrt")
	scale := fs.Int("scale", 0, "input scale for invsqrt and roundtrip")
	radius := fs.Float64("radius", 0, "raw circle radius for atan2")
	rounding := fs.String("rounding", "", "rounding mode of the roundtrip multiply (RHAZ, RHU, RHD, RHTZ)")
	csvPath := fs.String("csv", "", "write every sample as CSV to this file (- for stdout)")
	dumpConfig := fs.String("dump-config", "", "write the effective configuration as YAML to this file")
	verbose := fs.Bool("v", false, "debug logging")
	logJSON := fs.Bool("log-json", false, "log as JSON")
	list := fs.Bool("list", false, "list available operations")
	fs.Usage = func() {
		_, _ = fmt.Fprintf(stderr, "Usage: fixinfo [flags] [operation ...]\n\n")
		_, _ = fmt.Fprintf(stderr, "Prints the accuracy of the fixed-point approximations.\n\n")
		_, _ = fmt.Fprintf(stderr, "Flags:\n")
		fs.PrintDefaults()
		_, _ = fmt.Fprintf(stderr, "\nExamples:\n")
		_, _ = fmt.Fprintf(stderr, "  fixinfo -iters 1 invsqrt\n")
		_, _ = fmt.Fprintf(stderr, "  fixinfo -radius 16777216 -points 1024 atan2\n")
		_, _ = fmt.Fprintf(stderr, "  fixinfo -csv samples.csv roundtrip\n")
	}

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}

	if *list {
		return printList(stdout)
	}

	cfg, err := Load(*configPath)
	if err != nil {
		return err
	}

	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "points":
			cfg.Points = *points
		case "iters":
			cfg.Iterations = *iters
		case "scale":
			cfg.Scale = *scale
		case "radius":
			cfg.Radius = *radius
		case "rounding":
			cfg.Rounding = *rounding
		case "log-json":
			cfg.Log.JSON = *logJSON
		}
	})
	if *verbose {
		cfg.Log.Level = "debug"
	}

	logger, err := newLogger(cfg, stderr)
	if err != nil {
		return err
	}

	if *dumpConfig != "" {
		if err := cfg.WriteYAML(*dumpConfig); err != nil {
			return err
		}
		logger.Info("config written", "path", *dumpConfig)
	}

	names := fs.Args()
	if len(names) == 0 {
		names = cfg.Ops
	}

	ops, err := resolveOperations(names)
	if err != nil {
		return err
	}

	opts, err := cfg.options()
	if err != nil {
		return err
	}
	if *csvPath != "" {
		opts = append(opts, accuracy.WithSamples())
	}

	features := cpu.DetectFeatures()
	logger.Debug("sweep configuration",
		"config", *configPath,
		"points", cfg.Points,
		"iterations", cfg.Iterations,
		"scale", cfg.Scale,
		"radius", cfg.Radius,
		"rounding", cfg.Rounding,
		"bitscan", fix32.BackendName(),
		"arch", features.Architecture,
		"lzcnt", features.HasLZCNT,
	)

	// Keep CSV on stdout clean.
	tables := stdout
	if *csvPath == "-" {
		tables = stderr
	}

	res, err := runOperations(ops, opts, logger)
	if err != nil {
		return err
	}

	if err := printSummary(tables, res); err != nil {
		return err
	}

	if res.atan2 != nil && len(res.atan2.Harmonics) > 1 {
		if err := printHarmonics(tables, res.atan2); err != nil {
			return err
		}
	}

	if *csvPath != "" {
		if err := writeCSV(*csvPath, stdout, res.samples()); err != nil {
			return err
		}
		logger.Info("samples written", "path", *csvPath, "count", len(res.samples()))
	}

	return nil
}

func newLogger(cfg *Config, w io.Writer) (*slog.Logger, error) {
	level, err := cfg.logLevel()
	if err != nil {
		return nil, err
	}

	hopts := &slog.HandlerOptions{Level: level}
	if cfg.Log.JSON {
		return slog.New(slog.NewJSONHandler(w, hopts)), nil
	}

	return slog.New(slog.NewTextHandler(w, hopts)), nil
}

func printList(w io.Writer) error {
	for _, op := range operations {
		if _, err := fmt.Fprintf(w, "%-10s %s\n", op.name, op.desc); err != nil {
			return err
		}
	}
	return nil
}

func resolveOperations(names []string) ([]string, error) {
	known := make(map[string]bool, len(operations))
	for _, op := range operations {
		known[op.name] = true
	}

	seen := make(map[string]bool, len(names))
	var result []string
	for _, name := range names {
		name = strings.ToLower(strings.TrimSpace(name))
		if !known[name] {
			return nil, Error.New("unknown operation %q (use -list to see available)", name)
		}
		if seen[name] {
			continue
		}
		seen[name] = true
		result = append(result, name)
	}

	if len(result) == 0 {
		return nil, Error.New("no operations selected")
	}

	return result, nil
}
