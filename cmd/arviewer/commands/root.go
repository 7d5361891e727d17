package commands

import (
	"context"
	"os"
	"os/signal"
	"time"

	"github.com/spf13/cobra"

	"arviewer/internal/app"
	"arviewer/internal/telemetry"
)

var (
	cfg      app.Config
	wire     *app.Wire
	shutdown func(context.Context) error

	baseURL     string
	logLevel    string
	textTimeout time.Duration
)

// Execute runs the CLI with os.Args until it finishes or is interrupted.
func Execute() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	return newRoot().ExecuteContext(ctx)
}

func newRoot() *cobra.Command {
	root := &cobra.Command{
		Use:          "arviewer",
		Short:        "AR product viewer core",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			var err error
			cfg, err = app.LoadConfig()
			if err != nil {
				return err
			}
			flags := cmd.Flags()
			if flags.Changed("base") {
				cfg.BaseURL = baseURL
			}
			if flags.Changed("log-level") {
				cfg.LogLevel = logLevel
			}
			if flags.Changed("timeout") {
				cfg.LocalizationTimeout = textTimeout
			}

			shutdown, err = telemetry.Setup(cmd.Context(), "arviewer", cfg.OTelEndpoint, cfg.OTelEnabled)
			if err != nil {
				return err
			}
			wire, err = app.NewWire(cfg, nil, nil)
			return err
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			if shutdown == nil {
				return nil
			}
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			return shutdown(ctx)
		},
	}

	root.PersistentFlags().StringVar(&baseURL, "base", "", "asset base URL (default $ARVIEWER_BASE_URL)")
	root.PersistentFlags().StringVar(&logLevel, "log-level", "", "debug, info, warn or error (default $ARVIEWER_LOG_LEVEL)")
	root.PersistentFlags().DurationVar(&textTimeout, "timeout", 0, "localization timeout (default $ARVIEWER_LOCALIZATION_TIMEOUT)")

	root.AddCommand(resolveCmd(), modelsCmd(), simulateCmd())
	return root
}
