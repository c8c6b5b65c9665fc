package commands

import (
	"context"
	"errors"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/usestring/jackgen/pkg/mcpsrv"
)

func newServeCmd(a *app) *cobra.Command {
	var pkg string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the jackgen MCP server on stdio",
		Long: `Run an MCP server on stdin/stdout exposing the generator as the tools
jackgen_infer_classes, jackgen_generate_classes and jackgen_validate_sample.

Logs go to stderr or LOG_FILE; see the environment variables in
internal/config for the available settings.`,
		Example: `  # Register with an MCP client
  jackgen serve

  # Debug logging to a file
  LOG_FILE=/tmp/jackgen.log jackgen serve --log-level debug`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := []mcpsrv.Option{mcpsrv.WithConfig(a.cfg)}
			if a.logLevel != "" {
				opts = append(opts, mcpsrv.WithLogLevel(a.logLevel))
			}
			if pkg != "" {
				opts = append(opts, mcpsrv.WithPackage(pkg))
			}

			server, err := mcpsrv.NewServer(opts...)
			if err != nil {
				return err
			}
			defer server.Close()

			slog.Info("starting jackgen MCP server on stdio")
			if err := server.Run(cmd.Context()); err != nil && !errors.Is(err, context.Canceled) {
				return err
			}
			slog.Info("server stopped")
			return nil
		},
	}

	cmd.Flags().StringVarP(&pkg, "package", "p", "", "Default Java package for tool calls that name none")

	return cmd
}
