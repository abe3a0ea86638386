// Package main provides the CLI entry point for sciencefair.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/ukaji3/sciencefair-go/pkg/sciencefair"
	"github.com/ukaji3/sciencefair-go/pkg/sciencefair/output"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// errReported makes the command exit with status 1 after the failure was already printed.
var errReported = errors.New("failure already reported")

func main() {
	os.Exit(execute(os.Args[1:], os.Stdout, os.Stderr))
}

// execute runs the CLI and returns the process exit status.
func execute(args []string, stdout, stderr io.Writer) int {
	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintln(stderr, "Error:", err)
		return 1
	}

	rootCmd := newRootCmd(cfg)
	rootCmd.SetArgs(args)
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)

	if err := rootCmd.Execute(); err != nil {
		if !errors.Is(err, errReported) {
			fmt.Fprintln(stderr, "Error:", err)
		}
		return 1
	}
	return 0
}

func newRootCmd(cfg config) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "sciencefair [input.xlsx]",
		Short: "Validate a science fair judging roster",
		Long: `sciencefair checks every row of a judging roster workbook: name and project
must be present, both judge scores must be numbers from 0 to 10, and a
recorded average must match the judges' mean rounded to one decimal.
The exit status is 1 when any row fails.`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 1 {
				cfg.Input = args[0]
			}
			return run(cmd, cfg)
		},
	}

	rootCmd.Flags().StringVar(&cfg.Sheet, "sheet", cfg.Sheet, "Worksheet to validate (default: first sheet)")
	rootCmd.Flags().StringVarP(&cfg.Format, "format", "f", cfg.Format, "Output format: text, json, yaml")
	rootCmd.Flags().BoolVarP(&cfg.Verbose, "verbose", "v", cfg.Verbose, "Enable debug logging on stderr")

	return rootCmd
}

func run(cmd *cobra.Command, cfg config) error {
	format, err := output.ParseFormat(cfg.Format)
	if err != nil {
		return err
	}

	logger := newLogger(cfg.Verbose, cmd.ErrOrStderr())
	defer func() { _ = logger.Sync() }()

	report, err := sciencefair.Validate(cfg.Input, sciencefair.Options{
		Sheet:  cfg.Sheet,
		Logger: logger,
	})
	if err != nil {
		fmt.Fprintln(cmd.ErrOrStderr(), "Error reading Excel file:", err)
		return errReported
	}

	if err := output.Write(cmd.OutOrStdout(), report, format); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}
	if !report.AllValid {
		return errReported
	}
	return nil
}

// newLogger builds a JSON logger on w. Only warnings are shown unless verbose is set.
func newLogger(verbose bool, w io.Writer) *zap.Logger {
	level := zapcore.WarnLevel
	if verbose {
		level = zapcore.DebugLevel
	}
	encoder := zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig())
	core := zapcore.NewCore(encoder, zapcore.AddSync(w), zap.NewAtomicLevelAt(level))
	return zap.New(core)
}
