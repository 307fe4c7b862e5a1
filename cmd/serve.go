package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/shaharia-lab/contactmail/internal/api"
	"github.com/shaharia-lab/contactmail/internal/build"
	"github.com/shaharia-lab/contactmail/internal/config"
	"github.com/shaharia-lab/contactmail/internal/logger"
	"github.com/shaharia-lab/contactmail/internal/server"
)

// NewServeCmd returns the "serve" subcommand that starts the HTTP server.
func NewServeCmd(cfg *config.AppConfig) *cobra.Command {
	var port int

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP server",
		Long: `Start the HTTP server exposing POST /contact, GET /health and GET /metrics.
The same handler as "invoke" runs behind POST /contact.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			// CLI flags override env config.
			if cmd.Flags().Changed("port") {
				cfg.Port = port
			}
			return runServe(cmd.Context(), cfg)
		},
	}

	cmd.Flags().IntVar(&port, "port", cfg.Port, "HTTP server port (overrides PORT env var)")
	return cmd
}

func runServe(parent context.Context, cfg *config.AppConfig) error {
	ctx, cancel := signal.NotifyContext(parent, os.Interrupt, syscall.SIGTERM)
	defer cancel()

	sysLogger, closer, err := logger.FromConfig(cfg.LogFile, cfg.SlogLevel())
	if err != nil {
		return fmt.Errorf("initializing logger: %w", err)
	}
	defer func() { _ = closer.Close() }()

	sysLogger.Info("contactmail starting",
		slog.Int("port", cfg.Port),
		slog.String("smtp_host", cfg.SMTPHost),
		slog.Bool("contact_email_set", cfg.ContactEmail != ""),
		slog.String("version", build.Version),
		slog.String("commit", build.CommitSHA),
		slog.String("build_date", build.BuildDate),
	)

	metrics := api.NewMetrics()
	apiSrv := api.New(newContactHandler(cfg, sysLogger), metrics, sysLogger)
	srv := server.New(apiSrv, metrics, server.Options{
		Port:           cfg.Port,
		AllowedOrigins: cfg.AllowedOrigins(),
	}, sysLogger)

	return srv.Run(ctx)
}
