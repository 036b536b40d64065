// Package service holds the workflows that sit between the screens or the
// admin CLI and the ports: synchronising entities into the local store,
// recording tracking sessions and running reports.
package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/openmf/fieldops/internal/core"
	"github.com/openmf/fieldops/internal/domain/model"
	"github.com/openmf/fieldops/internal/observability/metrics"
	"github.com/openmf/fieldops/internal/observability/statsd"
)

// SyncGateway is the part of the remote API a sync needs.
type SyncGateway interface {
	core.CenterGateway
	core.GroupGateway
}

// SyncStores are the local stores a sync writes to.
type SyncStores struct {
	Centers core.CenterStore
	Groups  core.GroupStore
	Clients core.ClientStore
}

// SyncConfig tunes a sync run.
type SyncConfig struct {
	// Parallelism caps concurrent entity syncs. Defaults to 4.
	Parallelism int
}

// SyncServiceOptions groups dependencies for SyncService.
type SyncServiceOptions struct {
	Gateway SyncGateway // Required
	Stores  SyncStores  // Required: all three stores
	Config  SyncConfig
	Logger  *slog.Logger // Optional
	Metrics statsd.Sink  // Optional
}

// SyncService copies selected entities and their members into the local store.
type SyncService struct {
	gateway     SyncGateway
	stores      SyncStores
	parallelism int
	logger      *slog.Logger
	metrics     statsd.Sink
	now         func() time.Time
}

// NewSyncService constructs a new SyncService.
func NewSyncService(opts SyncServiceOptions) (*SyncService, error) {
	if opts.Gateway == nil {
		return nil, errors.New("SyncGateway is required")
	}
	if opts.Stores.Centers == nil || opts.Stores.Groups == nil || opts.Stores.Clients == nil {
		return nil, errors.New("center, group and client stores are required")
	}
	parallelism := opts.Config.Parallelism
	if parallelism <= 0 {
		parallelism = 4
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &SyncService{
		gateway:     opts.Gateway,
		stores:      opts.Stores,
		parallelism: parallelism,
		logger:      logger.With("component", "sync_service"),
		metrics:     opts.Metrics,
		now:         time.Now,
	}, nil
}

// SyncItem is the outcome of one selected entity.
type SyncItem struct {
	Type model.EntityType
	ID   int64
	Name string
	// Groups and Clients count the members stored alongside a center or group.
	Groups  int
	Clients int
	Err     error
}

// SyncProgress is reported after every finished item. It may be delivered
// from several goroutines at once.
type SyncProgress func(done, total int, item SyncItem)

// SyncReport summarises a sync run. Items are in selection order.
type SyncReport struct {
	BatchID  uuid.UUID
	Started  time.Time
	Duration time.Duration
	Items    []SyncItem
}

// Failed returns the items that could not be synchronised.
func (r *SyncReport) Failed() []SyncItem {
	var out []SyncItem
	for _, it := range r.Items {
		if it.Err != nil {
			out = append(out, it)
		}
	}
	return out
}

// Synced returns the number of items stored without error.
func (r *SyncReport) Synced() int {
	return len(r.Items) - len(r.Failed())
}

// Err joins the item failures, or returns nil.
func (r *SyncReport) Err() error {
	var errs []error
	for _, it := range r.Failed() {
		errs = append(errs, fmt.Errorf("%s %d: %w", it.Type, it.ID, it.Err))
	}
	return errors.Join(errs...)
}

// SyncCenters stores each center with its groups and their client members.
// A failing center does not stop the others; the returned error is only
// set when ctx ends the run early.
func (s *SyncService) SyncCenters(ctx context.Context, centers []model.Center, progress SyncProgress) (*SyncReport, error) {
	return s.run(ctx, model.EntityCenter, len(centers), progress, func(ctx context.Context, i int) SyncItem {
		c := centers[i]
		item := SyncItem{Type: model.EntityCenter, ID: c.ID, Name: c.DisplayName()}
		item.Err = s.syncCenter(ctx, &item)
		return item
	})
}

// SyncCenterIDs syncs centers known only by ID.
func (s *SyncService) SyncCenterIDs(ctx context.Context, ids []int64, progress SyncProgress) (*SyncReport, error) {
	centers := make([]model.Center, len(ids))
	for i, id := range ids {
		centers[i] = model.Center{ID: id}
	}
	return s.SyncCenters(ctx, centers, progress)
}

// SyncGroupIDs stores each group with its client members.
func (s *SyncService) SyncGroupIDs(ctx context.Context, ids []int64, progress SyncProgress) (*SyncReport, error) {
	return s.run(ctx, model.EntityGroup, len(ids), progress, func(ctx context.Context, i int) SyncItem {
		item := SyncItem{Type: model.EntityGroup, ID: ids[i]}
		g, err := s.gateway.GroupWithAssociations(ctx, ids[i])
		if err != nil {
			item.Err = fmt.Errorf("fetch group: %w", err)
			return item
		}
		item.Name = g.DisplayName()
		item.Clients, item.Err = s.storeGroup(ctx, g.Group, g.ClientMembers)
		return item
	})
}

// SyncClients stores the given clients as they are.
func (s *SyncService) SyncClients(ctx context.Context, clients []model.Client, progress SyncProgress) (*SyncReport, error) {
	return s.run(ctx, model.EntityClient, len(clients), progress, func(ctx context.Context, i int) SyncItem {
		c := clients[i]
		item := SyncItem{Type: model.EntityClient, ID: c.ID, Name: c.DisplayName()}
		if err := s.stores.Clients.Save(ctx, c); err != nil {
			item.Err = fmt.Errorf("store client: %w", err)
		}
		return item
	})
}

func (s *SyncService) syncCenter(ctx context.Context, item *SyncItem) error {
	center, err := s.gateway.CenterWithAssociations(ctx, item.ID)
	if err != nil {
		return fmt.Errorf("fetch center: %w", err)
	}
	if item.Name == "" {
		item.Name = center.DisplayName()
	}
	if err := s.stores.Centers.Save(ctx, center.Center); err != nil {
		return fmt.Errorf("store center: %w", err)
	}
	for _, member := range center.GroupMembers {
		g, err := s.gateway.GroupWithAssociations(ctx, member.ID)
		if err != nil {
			return fmt.Errorf("fetch group %d: %w", member.ID, err)
		}
		if g.CenterID == 0 {
			g.CenterID = item.ID
		}
		n, err := s.storeGroup(ctx, g.Group, g.ClientMembers)
		if err != nil {
			return err
		}
		item.Groups++
		item.Clients += n
	}
	return nil
}

func (s *SyncService) storeGroup(ctx context.Context, g model.Group, members []model.Client) (int, error) {
	if err := s.stores.Groups.Save(ctx, g); err != nil {
		return 0, fmt.Errorf("store group %d: %w", g.ID, err)
	}
	if len(members) == 0 {
		return 0, nil
	}
	for i := range members {
		members[i].GroupID = g.ID
	}
	if err := s.stores.Clients.SaveAll(ctx, members); err != nil {
		return 0, fmt.Errorf("store clients of group %d: %w", g.ID, err)
	}
	return len(members), nil
}

// run fans work out over at most parallelism goroutines. Item failures are
// recorded, never returned.
func (s *SyncService) run(
	ctx context.Context,
	kind model.EntityType,
	total int,
	progress SyncProgress,
	work func(ctx context.Context, i int) SyncItem,
) (*SyncReport, error) {
	report := &SyncReport{BatchID: uuid.New(), Started: s.now(), Items: make([]SyncItem, total)}
	logger := s.logger.With("batch_id", report.BatchID.String(), "entity", string(kind))
	logger.Info("sync started", "count", total)

	var (
		mu   sync.Mutex
		done int
	)
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.parallelism)
	for i := range total {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			start := time.Now()
			item := work(gctx, i)
			metrics.EmitSync(s.metrics, metrics.SyncResult{
				EntityType: string(kind),
				Duration:   time.Since(start),
				Err:        item.Err,
			})
			if item.Err != nil {
				logger.Warn("entity sync failed", "id", item.ID, "error", item.Err)
			}
			report.Items[i] = item

			mu.Lock()
			done++
			n := done
			mu.Unlock()
			if progress != nil {
				progress(n, total, item)
			}
			return nil
		})
	}
	err := g.Wait()
	report.Duration = s.now().Sub(report.Started)
	if err != nil {
		return report, fmt.Errorf("sync %s: %w", kind, err)
	}
	logger.Info("sync finished", "synced", report.Synced(), "failed", len(report.Failed()), "duration", report.Duration)
	return report, nil
}
