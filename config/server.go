package config

import (
	"context"
	"errors"
	"net/http"

	"github.com/sirupsen/logrus"
)

// Serve runs an HTTP server until ctx is cancelled, then drains in-flight
// requests before returning.
func Serve(ctx context.Context, name, addr string, handler http.Handler) error {
	srv := &http.Server{Addr: addr, Handler: handler}

	errCh := make(chan error, 1)
	go func() {
		logrus.Infof("%s starting on %s", name, addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	logrus.Infof("%s shutting down", name)
	if err := srv.Shutdown(context.Background()); err != nil {
		return err
	}
	if err := <-errCh; !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
