package srv

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/sandevgo/tuskmem/pkg/log"
)

type Service interface {
	Start(ctx context.Context) error
	Shutdown(ctx context.Context) error
}

// Run starts every service and blocks until ctx is cancelled or one of them
// fails to start. Services are then shut down in reverse order, each bounded
// by shutdownTimeout.
func Run(ctx context.Context, services []Service, shutdownTimeout time.Duration) error {
	logger := log.FromCtx(ctx)
	errCh := make(chan error, len(services))

	for _, service := range services {
		go func(service Service) {
			if err := service.Start(ctx); err != nil {
				errCh <- fmt.Errorf("%T failed to start: %w", service, err)
			}
		}(service)
	}

	var runErr error
	select {
	case <-ctx.Done():
		logger.Info().Msg("shutting down")
	case runErr = <-errCh:
		logger.Error().Err(runErr).Msg("service stopped unexpectedly")
	}

	// ctx may already be cancelled, shutdown gets its own deadline
	shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), shutdownTimeout)
	defer cancel()

	return errors.Join(runErr, ShutdownServices(shutdownCtx, services))
}

// ShutdownServices stops services last-to-first and collects their errors.
func ShutdownServices(ctx context.Context, services []Service) error {
	var errs []error
	for i := len(services) - 1; i >= 0; i-- {
		if err := services[i].Shutdown(ctx); err != nil {
			log.FromCtx(ctx).Error().Err(err).Msgf("%T failed to shutdown", services[i])
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
