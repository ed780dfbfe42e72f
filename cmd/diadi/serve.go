package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/alfredjeanlab/diadi/internal/server"
)

var serveCmd = &cobra.Command{
	Use:     "serve",
	Short:   "Start the board HTTP server",
	GroupID: "system",
	Args:    cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

		addr, _ := cmd.Flags().GetString("addr")
		if addr == "" {
			addr = cfg.Server.HTTPAddr
		}

		boardServer, err := server.NewBoardServer(cfg.Routes, cfg.Display.Variant, logger)
		if err != nil {
			return err
		}
		httpServer := &http.Server{
			Addr:              addr,
			Handler:           boardServer.NewHTTPHandler(cfg.Server.AuthToken),
			ReadHeaderTimeout: 10 * time.Second,
		}

		errCh := make(chan error, 1)
		go func() {
			logger.Info("HTTP server listening", "addr", addr, "auth", cfg.Server.AuthToken != "")
			if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
				errCh <- err
			}
			close(errCh)
		}()

		// Wait for SIGINT or SIGTERM, or a listener failure.
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		defer signal.Stop(sigCh)
		select {
		case sig := <-sigCh:
			logger.Info("received signal, shutting down", "signal", sig)
		case err, ok := <-errCh:
			if ok {
				logger.Error("HTTP server error", "err", err)
				return err
			}
		}

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			logger.Error("HTTP server shutdown error", "err", err)
		}
		logger.Info("shutdown complete")
		return nil
	},
}

func init() {
	serveCmd.Flags().String("addr", "", "listen address (overrides config and DIADI_HTTP_ADDR)")
}
