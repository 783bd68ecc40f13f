package client

import (
	"context"
	"errors"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-form-sync/internal/config"
	"github.com/MKhiriev/go-form-sync/internal/logger"
	"github.com/MKhiriev/go-form-sync/internal/server"
	"github.com/MKhiriev/go-form-sync/internal/service"
	"github.com/MKhiriev/go-form-sync/internal/workers"
)

// App is the long-running synchronization client. It performs one catalog
// pass on startup, then keeps the catalog current through the recurring sync
// job and the optional local trigger endpoint until the process is signalled
// to stop.
type App struct {
	services      *service.Services
	triggerServer server.Server
	cfg           config.ClientWorkers
	logger        *logger.Logger
}

// NewApp wires the client runtime. triggerServer may be nil when the trigger
// endpoint is disabled.
func NewApp(services *service.Services, triggerServer server.Server, cfg config.ClientWorkers, logger *logger.Logger) (*App, error) {
	if services == nil {
		return nil, errors.New("services are required")
	}

	return &App{
		services:      services,
		triggerServer: triggerServer,
		cfg:           cfg,
		logger:        logger,
	}, nil
}

func (a *App) Run() error {
	ctx, stop := signal.NotifyContext(
		context.Background(),
		syscall.SIGTERM,
		syscall.SIGINT,
		syscall.SIGQUIT,
	)
	defer stop()

	// first pass on startup; a failed pass leaves the catalog marked out of
	// sync and the recurring job retries on its own schedule
	if err := a.services.Manager.SyncNow(ctx); err != nil {
		a.logger.Warn().Err(err).Msg("initial sync failed")
	}

	a.buildWorkers(ctx).Run()

	<-ctx.Done()
	a.logger.Info().Msg("shutdown signal received")

	a.services.Job.Stop()
	if a.triggerServer != nil {
		a.triggerServer.Shutdown()
	}

	a.logger.Info().Msg("client shut down gracefully")

	return nil
}

func (a *App) buildWorkers(ctx context.Context) *workers.Workers {
	all := []workers.Worker{
		workers.NewSyncJobWorker(ctx, a.services.Job, a.cfg.SyncInterval),
	}
	if a.triggerServer != nil {
		all = append(all, workers.NewTriggerServerWorker(a.triggerServer))
	}

	return workers.NewWorkers(all...)
}
