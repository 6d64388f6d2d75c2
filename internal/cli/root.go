// SPDX-License-Identifier: MIT

// Package cli implements the polyrecon command: it reads each JSON file,
// runs the reconstruction and renders the result. It alone decides process
// exit codes and user-facing messages.
package cli

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/polyrecon/internal/config"
	"github.com/katalvlaran/polyrecon/internal/jsoninput"
	"github.com/katalvlaran/polyrecon/internal/logging"
	"github.com/katalvlaran/polyrecon/reconstruct"
)

// fileError carries the exit code of the first failing file.
type fileError struct {
	code int
	err  error
}

func (e *fileError) Error() string { return e.err.Error() }
func (e *fileError) Unwrap() error { return e.err }

// NewRootCommand builds the polyrecon command writing results to stdout and
// logs to stderr.
func NewRootCommand(stdout, stderr io.Writer) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "polyrecon [flags] FILE...",
		Short: "Reconstruct a polynomial and its secret from encoded samples",
		Long: `polyrecon reads JSON documents of encoded (x, y) samples, decodes the
y-values from their bases, and prints the value at x=0 (the secret) together
with the coefficients of the degree k-1 polynomial through the first k samples.`,
		Args:          cobra.MinimumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	config.RegisterFlags(cmd.Flags())

	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		v, err := config.New(cmd.Flags())
		if err != nil {
			return err
		}
		cfg, err := config.Load(v)
		if err != nil {
			return err
		}
		logger, err := logging.New(stderr, cfg.LogLevel)
		if err != nil {
			return err
		}
		defer func() { _ = logger.Sync() }()

		return runFiles(cmd.OutOrStdout(), logging.Module(logger, "reconstruct"), cfg, args)
	}

	return cmd
}

// runFiles processes every file, logging failures and continuing; the
// returned error carries the exit code of the first failure.
func runFiles(out io.Writer, log *zap.Logger, cfg config.Config, files []string) error {
	var first *fileError
	opts := cfg.Options()
	for _, file := range files {
		res, err := runFile(file, opts)
		if err != nil {
			log.Error("reconstruction failed", zap.String("file", file), zap.Error(err))
			if first == nil {
				first = &fileError{code: ExitCode(err), err: fmt.Errorf("%s: %w", file, err)}
			}

			continue
		}

		log.Debug("reconstructed",
			zap.String("file", file),
			zap.Int("samples", res.Samples),
			zap.Int("k", len(res.Coefficients)),
			zap.Stringer("scope", res.Scope),
		)
		if !res.Consistent {
			log.Warn("secret differs from constant coefficient",
				zap.String("file", file),
				zap.Int64("secret", res.Secret),
				zap.Int64("constant", res.Coefficients[0]),
			)
		}
		if len(res.Mismatched) > 0 {
			log.Warn("samples not reproduced by polynomial",
				zap.String("file", file),
				zap.Int64s("x", res.Mismatched),
			)
		}

		if err = render(out, cfg.Output, newReport(file, res)); err != nil {
			return err
		}
	}
	if first != nil {
		return first
	}

	return nil
}

func runFile(file string, opts []reconstruct.Option) (reconstruct.Result, error) {
	in, err := jsoninput.ReadFile(file)
	if err != nil {
		return reconstruct.Result{}, err
	}

	return reconstruct.Reconstruct(in, opts...)
}

// Execute runs the command with args and returns the process exit code.
func Execute(args []string, stdout, stderr io.Writer) int {
	cmd := NewRootCommand(stdout, stderr)
	cmd.SetArgs(args)
	err := cmd.Execute()
	if err == nil {
		return ExitOK
	}

	var fe *fileError
	if errors.As(err, &fe) {
		fmt.Fprintln(stderr, "error:", fe.err)

		return fe.code
	}
	fmt.Fprintln(stderr, "error:", err)

	return ExitUsage
}
