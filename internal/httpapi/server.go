package httpapi

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"

	log "github.com/sirupsen/logrus"

	"github.com/cloudsoda/go-hresult/internal/config"
)

// Serve listens on cfg.Addr and serves the API until ctx is done, then shuts down within
// cfg.ShutdownTimeout.
func Serve(ctx context.Context, cfg config.ServerConfig, l *log.Logger) error {
	ln, err := net.Listen("tcp", cfg.Addr)
	if err != nil {
		return fmt.Errorf("listen on %s: %w", cfg.Addr, err)
	}
	return serveListener(ctx, ln, cfg, l)
}

func serveListener(ctx context.Context, ln net.Listener, cfg config.ServerConfig, l *log.Logger) error {
	srv := &http.Server{
		Handler:      NewRouter(cfg, l),
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		l.WithField("addr", ln.Addr().String()).Info("lookup service listening")
		errCh <- srv.Serve(ln)
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	l.Info("shutting down lookup service")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	if err := <-errCh; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
