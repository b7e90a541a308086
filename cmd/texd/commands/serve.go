package commands

import (
	"context"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.trai.ch/zerr"

	"go.trai.ch/texd/internal/adapters/config"
	"go.trai.ch/texd/internal/adapters/logger"
	"go.trai.ch/texd/internal/adapters/macros"
	"go.trai.ch/texd/internal/adapters/raster"
	"go.trai.ch/texd/internal/adapters/typeset"
	"go.trai.ch/texd/internal/adapters/workspace"
	"go.trai.ch/texd/internal/app"
	"go.trai.ch/texd/internal/core/domain"
)

func (c *CLI) newServeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve render requests on stdin/stdout",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			configPath, err := cmd.Flags().GetString("config")
			if err != nil {
				return err
			}
			cfg, err := config.Load(configPath)
			if err != nil {
				return err
			}
			if preamble, _ := cmd.Flags().GetString("preamble"); preamble != "" {
				cfg.Preamble = preamble
			}
			return runServe(cmd.Context(), cfg, os.Stdin, os.Stdout)
		},
	}

	cmd.Flags().String("preamble", "", "Path to a LaTeX preamble with macro definitions")

	return cmd
}

// runServe performs the fatal-on-failure startup sequence and hands the
// streams to the app. Everything after this point survives per-request
// failures.
func runServe(ctx context.Context, cfg *config.Config, in io.Reader, out io.Writer) error {
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	log := logger.New()

	userMacros := map[string]domain.Macro{}
	if cfg.Preamble != "" {
		doc, err := os.ReadFile(cfg.Preamble) //nolint:gosec // path is provided by user
		if err != nil {
			return zerr.Wrap(err, "failed to read preamble")
		}
		userMacros, err = macros.NewParser().Parse(string(doc))
		if err != nil {
			return zerr.Wrap(err, "failed to parse preamble")
		}
	}

	ws, err := workspace.New()
	if err != nil {
		return err
	}

	a := app.New(
		typeset.New(cfg.Typesetter, userMacros),
		raster.New(cfg.Rasterizer),
		ws,
		log,
		out,
	)

	log.Info("texd serving on stdin")
	return a.Serve(ctx, in)
}
