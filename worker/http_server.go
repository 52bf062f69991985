package worker

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"time"
)

// HTTPServer serves Handler on Addr and shuts down gracefully when its context ends.
type HTTPServer struct {
	Addr            string
	Handler         http.Handler
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	ShutdownTimeout time.Duration

	// Listener, when set, is used instead of listening on Addr.
	Listener net.Listener
}

func (w *HTTPServer) Start(ctx context.Context) error {
	if w.ShutdownTimeout <= 0 {
		w.ShutdownTimeout = 10 * time.Second
	}
	srv := &http.Server{
		Addr:         w.Addr,
		Handler:      w.Handler,
		ReadTimeout:  w.ReadTimeout,
		WriteTimeout: w.WriteTimeout,
	}

	ln := w.Listener
	if ln == nil {
		var err error
		ln, err = net.Listen("tcp", w.Addr)
		if err != nil {
			return fmt.Errorf("http-server: listen %s: %w", w.Addr, err)
		}
	}
	slog.Info("http-server: listening", "addr", ln.Addr().String())

	errc := make(chan error, 1)
	go func() {
		if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errc <- err
		}
		close(errc)
	}()

	select {
	case err, ok := <-errc:
		if ok {
			return fmt.Errorf("http-server: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), w.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		slog.Error("http-server: shutdown", "error", err)
		return err
	}
	slog.Info("http-server: stopped")
	return nil
}
