// Package commands contains the jackgen CLI command definitions.
package commands

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/usestring/jackgen/internal/config"
	"github.com/usestring/jackgen/internal/logging"
)

// Exit codes returned by Execute.
const (
	ExitOK    = 0
	ExitError = 1
	ExitUsage = 2
)

// usageError marks errors caused by how the command was invoked.
// Execute prints the command usage after them.
type usageError struct {
	err error
}

func (e *usageError) Error() string { return e.err.Error() }
func (e *usageError) Unwrap() error { return e.err }

func usageErrorf(format string, args ...any) error {
	return &usageError{err: fmt.Errorf(format, args...)}
}

// app carries state shared by all subcommands of one invocation.
type app struct {
	cfg      *config.Config
	logLevel string
	logger   *slog.Logger
	cleanup  func() error
}

// setupLogging builds the logger for a command. Logs go to stderr (or
// LOG_FILE) so stdout stays free for command output.
func (a *app) setupLogging(cmd *cobra.Command, defaultLevel string) error {
	level := defaultLevel
	if a.logLevel != "" {
		level = a.logLevel
	}
	logger, cleanup, err := logging.New(logging.Config{
		Level:      level,
		Format:     a.cfg.LogFormat,
		FilePath:   a.cfg.LogFile,
		Writer:     cmd.ErrOrStderr(),
		MaxSizeMB:  a.cfg.LogMaxSizeMB,
		MaxBackups: a.cfg.LogMaxBackups,
		MaxAgeDays: a.cfg.LogMaxAgeDays,
		Compress:   a.cfg.LogCompress,
	})
	if err != nil {
		return fmt.Errorf("failed to setup logging: %w", err)
	}
	a.logger = logger
	a.cleanup = cleanup
	return nil
}

func (a *app) close() {
	if a.cleanup != nil {
		_ = a.cleanup()
		a.cleanup = nil
	}
}

// NewRootCmd creates and returns the root command for the CLI.
// A nil cfg loads the configuration from the environment.
func NewRootCmd(cfg *config.Config) *cobra.Command {
	if cfg == nil {
		cfg = config.Load()
	}
	a := &app{cfg: cfg}

	rootCmd := &cobra.Command{
		Use:   "jackgen",
		Short: "Generate Jackson-annotated Java classes from JSON",
		Long: `jackgen reads a JSON document, infers the classes needed to represent it
and writes one Jackson-annotated Java source file per class.

Nested objects become classes named after their key, arrays of objects
become List<X> with X the singular of the key, and ISO dates and times map
to java.time types.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rootCmd.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		return &usageError{err: err}
	})

	rootCmd.PersistentFlags().StringVar(&a.logLevel, "log-level", "", "Log level: debug, info, warn, error (default: warn, or LOG_LEVEL for serve)")

	rootCmd.AddCommand(newGenerateCmd(a))
	rootCmd.AddCommand(newInspectCmd(a))
	rootCmd.AddCommand(newServeCmd(a))

	return rootCmd
}

// Execute runs the CLI with args and returns the process exit code.
// Errors are printed to stderr; usage errors are followed by the usage of
// the failing command.
func Execute(ctx context.Context, cfg *config.Config, args []string, stdout, stderr io.Writer) int {
	rootCmd := NewRootCmd(cfg)
	rootCmd.SetArgs(args)
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)

	cmd, err := rootCmd.ExecuteContextC(ctx)
	if err == nil {
		return ExitOK
	}

	fmt.Fprintf(stderr, "Error: %v\n", err)
	var uerr *usageError
	if errors.As(err, &uerr) {
		if cmd == nil {
			cmd = rootCmd
		}
		fmt.Fprintln(stderr)
		fmt.Fprint(stderr, cmd.UsageString())
		return ExitUsage
	}
	return ExitError
}
