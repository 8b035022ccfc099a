package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/KirkDiggler/fitna/internal/app"
	"github.com/KirkDiggler/fitna/internal/config"
	"github.com/KirkDiggler/fitna/internal/handlers/api"
	"github.com/KirkDiggler/fitna/internal/logging"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cobra.CheckErr(newCmd(&config.Config{}).ExecuteContext(ctx))
}

func newCmd(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "fitna-server",
		Short: "HTTP API for the fitna party game.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := config.LoadDotEnv(); err != nil {
				return err
			}
			if err := config.ApplyEnv(cmd.Flags()); err != nil {
				return err
			}
			if err := cfg.ValidateServer(); err != nil {
				return err
			}
			return serve(cmd.Context(), cfg)
		},
	}

	config.RegisterFlags(cmd.Flags(), cfg)
	config.RegisterServerFlags(cmd.Flags(), cfg)

	cmd.CompletionOptions.HiddenDefaultCmd = true
	cmd.SetHelpCommand(&cobra.Command{Hidden: true})

	cmd.SilenceErrors = true
	cmd.SilenceUsage = true

	return cmd
}

func serve(ctx context.Context, cfg *config.Config) error {
	logger := logging.NewLogger(cfg.Debug).Named("server")
	defer func() { _ = logger.Sync() }()

	if !cfg.Debug {
		gin.SetMode(gin.ReleaseMode)
	}

	a, err := app.New(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer func() {
		if err := a.Close(); err != nil {
			logger.Warnw("failed to close store", "error", err)
		}
	}()

	handler, err := api.New(&api.Config{
		GameService:    a.Game,
		Logger:         logger,
		SessionSecret:  cfg.SessionSecret,
		PublicURL:      cfg.PublicURL,
		AllowedOrigins: cfg.AllowedOrigins,
		RequestTimeout: cfg.RequestTimeout,
		SecureCookie:   strings.HasPrefix(cfg.PublicURL, "https://"),
	})
	if err != nil {
		return err
	}

	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           handler.Handler(),
		IdleTimeout:       10 * time.Minute,
		ReadHeaderTimeout: cfg.RequestTimeout,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logger.Infow("listening", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()

		logger.Info("shutting down")
		return srv.Shutdown(shutdownCtx)
	})

	return g.Wait()
}
