package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"showdown-stats/internal/api"
	"showdown-stats/internal/config"
	"showdown-stats/internal/constants"
	"showdown-stats/internal/domain"

	gonanoid "github.com/matoous/go-nanoid/v2"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"
)

// SnapshotService owns the loaded stats. It fetches the index and the
// latest period on startup, serves immutable snapshots from an in-memory
// cache, and re-fetches index+latest on a ticker. Past periods load lazily
// on first request and are never evicted: published monthly files do not
// change.
type SnapshotService struct {
	client  *api.StatsClient
	logger  zerolog.Logger
	refresh time.Duration

	mu        sync.RWMutex
	index     *domain.Index
	snapshots map[string]*domain.Snapshot

	cancel context.CancelFunc
	group  *errgroup.Group
}

func NewSnapshotService(client *api.StatsClient, cfg *config.Config, logger zerolog.Logger) *SnapshotService {
	refresh := cfg.RefreshInterval
	if refresh < constants.MinRefreshInterval {
		refresh = constants.MinRefreshInterval
	}
	return &SnapshotService{
		client:    client,
		logger:    logger,
		refresh:   refresh,
		snapshots: make(map[string]*domain.Snapshot),
	}
}

// Load performs the startup sequence: index first, then the latest period.
// The two fetches are sequential; nothing is served until both succeed.
func (s *SnapshotService) Load(ctx context.Context) error {
	loadID, err := gonanoid.New()
	if err != nil {
		return fmt.Errorf("failed to generate load id: %w", err)
	}
	logger := s.logger.With().Str("load_id", loadID).Logger()

	idxCtx, idxCancel := context.WithTimeout(ctx, constants.IndexFetchTimeout)
	defer idxCancel()

	index, err := s.client.GetIndex(idxCtx)
	if err != nil {
		logger.Error().Err(err).Msg("failed to fetch index")
		return err
	}
	logger.Info().Str("latest", index.Latest).Int("periods", len(index.Periods)).Msg("index loaded")

	dataCtx, dataCancel := context.WithTimeout(ctx, constants.DataFetchTimeout)
	defer dataCancel()

	snap, err := s.client.GetSnapshot(dataCtx, index.Latest)
	if err != nil {
		logger.Error().Err(err).Str("period", index.Latest).Msg("failed to fetch latest period")
		return err
	}
	snap.LoadID = loadID
	snap.LoadedAt = time.Now()

	s.mu.Lock()
	s.index = index
	s.snapshots[snap.Period] = snap
	s.mu.Unlock()

	logger.Info().
		Str("period", snap.Period).
		Int("formats", len(snap.Formats)).
		Int("total_battles", snap.TotalBattles).
		Msg("snapshot loaded")
	return nil
}

// Index returns the loaded period index.
func (s *SnapshotService) Index() (*domain.Index, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.index == nil {
		return nil, fmt.Errorf("%w: index not loaded", domain.ErrIndexFetch)
	}
	return s.index, nil
}

// Snapshot returns the snapshot for a period, loading it on first request.
// An empty period means the latest one.
func (s *SnapshotService) Snapshot(ctx context.Context, period string) (*domain.Snapshot, error) {
	s.mu.RLock()
	index := s.index
	s.mu.RUnlock()
	if index == nil {
		return nil, fmt.Errorf("%w: index not loaded", domain.ErrIndexFetch)
	}

	if period == "" {
		period = index.Latest
	} else if !contains(index.Periods, period) {
		return nil, fmt.Errorf("%w: %s", domain.ErrUnknownPeriod, period)
	}

	s.mu.RLock()
	snap, ok := s.snapshots[period]
	s.mu.RUnlock()
	if ok {
		return snap, nil
	}

	loadID, err := gonanoid.New()
	if err != nil {
		return nil, fmt.Errorf("failed to generate load id: %w", err)
	}

	fetchCtx, cancel := context.WithTimeout(ctx, constants.DataFetchTimeout)
	defer cancel()

	snap, err = s.client.GetSnapshot(fetchCtx, period)
	if err != nil {
		s.logger.Error().Err(err).Str("period", period).Msg("failed to fetch period")
		return nil, err
	}
	snap.LoadID = loadID
	snap.LoadedAt = time.Now()

	s.mu.Lock()
	s.snapshots[period] = snap
	s.mu.Unlock()

	s.logger.Info().
		Str("load_id", loadID).
		Str("period", period).
		Int("formats", len(snap.Formats)).
		Msg("period loaded on demand")
	return snap, nil
}

// FormatDetail looks up one format in a period's snapshot for the detail
// view. Unknown names map to ErrFormatNotFound.
func (s *SnapshotService) FormatDetail(ctx context.Context, period, name string) (domain.Format, *domain.Snapshot, error) {
	snap, err := s.Snapshot(ctx, period)
	if err != nil {
		return domain.Format{}, nil, err
	}
	for _, f := range snap.Formats {
		if f.Name == name {
			return f, snap, nil
		}
	}
	return domain.Format{}, snap, fmt.Errorf("%w: %q in %s", domain.ErrFormatNotFound, name, snap.Period)
}

// Status reports the latest loaded snapshot for health checks.
func (s *SnapshotService) Status() (period, loadID string, loadedAt time.Time, ok bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.index == nil {
		return "", "", time.Time{}, false
	}
	snap, found := s.snapshots[s.index.Latest]
	if !found {
		return "", "", time.Time{}, false
	}
	return snap.Period, snap.LoadID, snap.LoadedAt, true
}

// StartRefresher re-runs Load on a ticker until StopRefresher. A failed
// refresh keeps the previous snapshot and waits for the next tick.
func (s *SnapshotService) StartRefresher() {
	ctx, cancel := context.WithCancel(context.Background())
	s.cancel = cancel

	g := new(errgroup.Group)
	s.group = g
	g.Go(func() error {
		ticker := time.NewTicker(s.refresh)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return nil
			case <-ticker.C:
				if err := s.Load(ctx); err != nil {
					s.logger.Warn().Err(err).Msg("background refresh failed, keeping previous snapshot")
				}
			}
		}
	})
}

func (s *SnapshotService) StopRefresher() {
	if s.cancel == nil {
		return
	}
	s.cancel()
	if err := s.group.Wait(); err != nil {
		s.logger.Error().Err(err).Msg("refresher exited with error")
	}
}

func contains(list []string, v string) bool {
	for _, s := range list {
		if s == v {
			return true
		}
	}
	return false
}
