package common

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"
)

// ShutdownHook runs after a termination signal and before the server stops
// accepting connections. Errors are logged and shutdown continues.
type ShutdownHook func(ctx context.Context) error

// TimeoutConfig holds server and shutdown related timeouts.
type TimeoutConfig struct {
	ReadHeader time.Duration
	Read       time.Duration
	Write      time.Duration
	Idle       time.Duration
	Shutdown   time.Duration
	Hook       time.Duration
}

// NewServerWithTimeouts attaches timeout settings to an existing *http.Server or creates a new one if nil.
func NewServerWithTimeouts(base *http.Server, cfg TimeoutConfig) *http.Server {
	if base == nil {
		base = &http.Server{}
	}
	base.ReadHeaderTimeout = cfg.ReadHeader
	base.ReadTimeout = cfg.Read
	base.WriteTimeout = cfg.Write
	base.IdleTimeout = cfg.Idle
	return base
}

// RunServerWithShutdown serves until ctx is cancelled or SIGINT/SIGTERM is
// received, then runs hooks in order and shuts the server down within
// cfg.Shutdown.
func RunServerWithShutdown(ctx context.Context, server *http.Server, name string, cfg TimeoutConfig, hooks ...ShutdownHook) error {
	if cfg.Hook <= 0 {
		cfg.Hook = 5 * time.Second
	}
	if cfg.Shutdown <= 0 {
		cfg.Shutdown = 15 * time.Second
	}

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	serveErr := make(chan error, 1)
	go func() {
		log.Printf("starting %s on %s", name, server.Addr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	select {
	case err := <-serveErr:
		if err != nil {
			return err
		}
	case <-ctx.Done():
		log.Printf("shutdown signal received for %s", name)
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Shutdown)
	defer cancel()

	for i, h := range hooks {
		if h == nil {
			continue
		}
		hCtx, hCancel := context.WithTimeout(shutdownCtx, cfg.Hook)
		if err := h(hCtx); err != nil {
			log.Printf("shutdown hook %d failed: %v", i, err)
		}
		hCancel()
	}

	if err := server.Shutdown(shutdownCtx); err != nil {
		return err
	}
	log.Printf("%s shutdown complete", name)
	return nil
}
