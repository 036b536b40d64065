package bootstrap

import (
	"bytes"
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/openmf/fieldops/config"
	"github.com/openmf/fieldops/internal/adapters/fineract"
	"github.com/openmf/fieldops/internal/core"
	"github.com/openmf/fieldops/internal/data"
	"github.com/openmf/fieldops/internal/observability/statsd"
	"github.com/openmf/fieldops/internal/presenter"
	"github.com/openmf/fieldops/internal/service"
	"github.com/openmf/fieldops/internal/tui"
)

// ServiceContainer holds the long-lived dependencies shared by the binaries.
type ServiceContainer struct {
	Config  config.AppConfig
	DB      *sql.DB
	Stores  data.Stores
	Gateway *fineract.Client
	// Reports serves report parameter lists through the parameter cache.
	Reports  core.ReportGateway
	Metrics  *statsd.Client
	Sync     *service.SyncService
	Recorder *service.PathRecorder
	Runner   *service.ReportRunner
	Logger   *slog.Logger

	closers []func() error
}

// NewServices connects the store, the cache and the gateway and builds the
// services on top of them. Call Close when done.
func NewServices(ctx context.Context, cfg config.AppConfig, logger *slog.Logger) (*ServiceContainer, error) {
	if logger == nil {
		logger = slog.Default()
	}
	c := &ServiceContainer{Config: cfg, Logger: logger}

	metrics, err := NewMetrics(cfg.Observability, logger)
	if err != nil {
		return nil, err
	}
	c.Metrics = metrics
	c.closers = append(c.closers, metrics.Close)

	db, err := ConnectStore(ctx, cfg.Store, logger)
	if err != nil {
		return nil, errors.Join(err, c.Close())
	}
	c.DB = db
	c.closers = append(c.closers, db.Close)
	c.Stores = data.NewStores(db, nil)

	gw, err := NewGateway(cfg.Gateway, metrics, logger)
	if err != nil {
		return nil, errors.Join(err, c.Close())
	}
	c.Gateway = gw

	cache, closeCache := NewCacheRepository(ctx, cfg.Cache, logger)
	c.closers = append(c.closers, closeCache)
	c.Reports = core.NewParameterCacheService(core.ParameterCacheServiceOptions{
		Reports: gw,
		Cache:   cache,
		Config:  core.ParameterCacheConfig{TTL: cfg.Cache.TTL},
		Logger:  logger,
	})

	c.Sync, err = service.NewSyncService(service.SyncServiceOptions{
		Gateway: gw,
		Stores: service.SyncStores{
			Centers: c.Stores.Centers,
			Groups:  c.Stores.Groups,
			Clients: c.Stores.Clients,
		},
		Logger:  logger,
		Metrics: metrics,
	})
	if err != nil {
		return nil, errors.Join(err, c.Close())
	}
	c.Recorder = service.NewPathRecorder(service.PathRecorderOptions{
		Tracking:       gw,
		UserID:         cfg.Tracking.UserID,
		SampleInterval: cfg.Tracking.SampleInterval,
		Logger:         logger,
	})
	c.Runner = service.NewReportRunner(service.ReportRunnerOptions{Reports: c.Reports, Logger: logger})
	return c, nil
}

// Close releases everything NewServices opened, newest first.
func (c *ServiceContainer) Close() error {
	var errs []error
	for i := len(c.closers) - 1; i >= 0; i-- {
		if err := c.closers[i](); err != nil {
			errs = append(errs, err)
		}
	}
	c.closers = nil
	return errors.Join(errs...)
}

// NewApp builds the presenters over the container and the terminal UI on
// top of them.
func NewApp(ctx context.Context, c *ServiceContainer) *tui.App {
	poster := tui.NewPoster()
	list := presenter.ListConfig{PageSize: c.Config.Gateway.PageSize}

	centersCfg := list
	centersCfg.Screen = "centers"
	clientsCfg := list
	clientsCfg.Screen = "clients"

	opts := tui.Options{
		Poster: poster,
		Centers: presenter.NewCenterListPresenter(presenter.CenterListPresenterOptions{
			Centers: c.Gateway,
			Store:   c.Stores.Centers,
			Poster:  poster,
			Config:  centersCfg,
			Logger:  c.Logger,
			Metrics: c.Metrics,
		}),
		Clients: presenter.NewClientListPresenter(presenter.ClientListPresenterOptions{
			Clients: c.Gateway,
			Store:   c.Stores.Clients,
			Poster:  poster,
			Config:  clientsCfg,
			Logger:  c.Logger,
			Metrics: c.Metrics,
		}),
		Tracking: presenter.NewPathTrackingPresenter(presenter.PathTrackingPresenterOptions{
			Tracking: c.Gateway,
			Poster:   poster,
			Logger:   c.Logger,
		}),
		ReportList: presenter.NewReportListPresenter(presenter.ReportListPresenterOptions{
			Reports: c.Reports,
			Poster:  poster,
			Logger:  c.Logger,
		}),
		ReportDetail: presenter.NewReportDetailPresenter(presenter.ReportDetailPresenterOptions{
			Reports: c.Reports,
			Poster:  poster,
			Logger:  c.Logger,
		}),
		Sync:     c.Sync,
		Recorder: c.Recorder,
		UserID:   c.Config.Tracking.UserID,
	}
	if path := c.Config.Tracking.ReplayFile; path != "" {
		opts.NewSource = ReplayFileSource(path)
	}
	return tui.New(ctx, opts)
}

// ReplayFileSource returns a factory that reads path afresh for every
// recording session.
func ReplayFileSource(path string) func() (service.LocationSource, error) {
	return func() (service.LocationSource, error) {
		raw, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read replay file: %w", err)
		}
		return service.NewReplaySource(bytes.NewReader(raw)), nil
	}
}
