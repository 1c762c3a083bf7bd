// Command ticketd serves the order ticket tool: the editor shell, the
// order pass-through API, and the printable ticket page.
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/rdawsonsdp/appsheet/internal/appsheet"
	"github.com/rdawsonsdp/appsheet/internal/config"
	"github.com/rdawsonsdp/appsheet/internal/server"
	"github.com/rdawsonsdp/appsheet/internal/templatestore"
)

func main() {
	log, err := zap.NewProduction()
	if err != nil {
		os.Exit(1)
	}
	defer log.Sync()

	if err := run(log); err != nil {
		log.Fatal("ticketd failed", zap.Error(err))
	}
}

func run(log *zap.Logger) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	opts := []server.Option{
		server.WithLogger(log),
		server.WithStore(templatestore.NewFileStore(cfg.TemplatePath)),
		server.WithAllowedOrigins(cfg.AllowedOrigins),
	}
	if cfg.HasBackend() {
		client := appsheet.New(cfg.AppSheetAppID, cfg.AppSheetAccessKey,
			appsheet.WithBaseURL(cfg.AppSheetBaseURL))
		opts = append(opts, server.WithOrdersSource(client, cfg.AppSheetTable))
	} else {
		log.Warn("no backend credentials configured, serving the sample order")
	}

	srv, err := server.New(opts...)
	if err != nil {
		return err
	}

	httpServer := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           srv,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("listening", zap.String("addr", cfg.Addr()))
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return err
	case sig := <-stop:
		log.Info("shutting down", zap.String("signal", sig.String()))
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return httpServer.Shutdown(ctx)
}
