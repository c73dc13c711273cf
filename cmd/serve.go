package cmd

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jkarvonen/cinescope/internal/api"
	"github.com/jkarvonen/cinescope/internal/config"
)

// ServeCmd represents the serve command
type ServeCmd struct {
	Listen string `short:"l" help:"Address to listen on (overrides LISTEN_ADDR)"`
}

func (s *ServeCmd) Run() error {
	addr := s.Listen
	if addr == "" {
		addr = config.ListenAddr
	}

	handler := api.NewHandler(newService())
	server := &http.Server{
		Addr:         addr,
		Handler:      api.SetupRoutes(handler),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		slog.Info("API server listening", "addr", addr, "offline", config.Offline)
		if err := server.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return err
	case sig := <-stop:
		slog.Info("Shutting down", "signal", sig)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return server.Shutdown(ctx)
}
