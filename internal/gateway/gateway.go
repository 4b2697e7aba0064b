package gateway

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"
)

const defaultShutdownTimeout = 15 * time.Second

// Run serves until SIGINT/SIGTERM, then drains in-flight requests.
func (g *Gateway) Run() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		g.l.Infof(ctx, "Started gateway on :%d, forwarding to %s", g.port, g.server.baseURL)
		errCh <- g.e.Start(fmt.Sprintf(":%d", g.port))
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	timeout := g.shutdownTimeout
	if timeout <= 0 {
		timeout = defaultShutdownTimeout
	}
	shutdownCtx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	g.l.Infof(shutdownCtx, "Shutting down gateway (timeout %s)", timeout)
	if err := g.e.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}
