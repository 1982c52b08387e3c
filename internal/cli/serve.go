package cli

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/saulo-duarte/clubhouse/internal/config"
	"github.com/saulo-duarte/clubhouse/internal/container"
)

func NewServeCommand(rootOpts *RootOptions) *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd.Context(), serveConfig(rootOpts, addr))
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "listen address (defaults to HTTP_ADDRESS)")
	return cmd
}

// serveConfig applies the command line over the environment and switches the
// logger to LOG_FORMAT, since the server's logs are collected like the API's.
func serveConfig(rootOpts *RootOptions, addr string) config.Config {
	cfg := config.Load()
	cfg.DataDir = rootOpts.DataDir
	cfg.LogLevel = rootOpts.LogLevel
	if addr != "" {
		cfg.HTTPAddress = addr
	}
	config.InitLogger(cfg.LogLevel, cfg.LogFormat)
	return cfg
}

func runServe(ctx context.Context, cfg config.Config) error {
	c, err := container.New(cfg)
	if err != nil {
		return err
	}

	server := &http.Server{
		Addr:              cfg.HTTPAddress,
		Handler:           c.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		config.Logger.WithField("addr", cfg.HTTPAddress).Info("clubhouse api listening")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		config.Logger.WithError(err).Warn("graceful shutdown failed")
		return err
	}
	config.Logger.Info("clubhouse api stopped")
	return nil
}
