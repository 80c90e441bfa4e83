// Package source owns dataset acquisition: remote fetch, TTL-gated snapshot
// cache, and the local sample fallback. The engines downstream only ever see
// "a table is available" plus an optional user-facing notice about where it
// came from.
package source

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/trontec/extras-atlas/pkg/models/store"
	"github.com/trontec/extras-atlas/pkg/store/csvfile"
	"github.com/trontec/extras-atlas/pkg/store/duckdb/snapshot"
)

// Fetcher fetches the raw table from the remote source.
type Fetcher interface {
	Fetch(ctx context.Context, spreadsheetID, worksheet string) (store.Table, error)
}

// Loader resolves the current table: fresh snapshot first, then remote fetch,
// then stale snapshot, then the local sample file. The cache holds raw data
// only and lives entirely outside the transformation core.
type Loader struct {
	cfg     *Config
	fetcher Fetcher
	cache   snapshot.Store
	now     func() time.Time
}

// Option tweaks a Loader.
type Option func(*Loader)

// WithClock overrides the loader's clock, for tests.
func WithClock(now func() time.Time) Option {
	return func(l *Loader) { l.now = now }
}

// NewLoader wires a loader. fetcher and cache may be nil: a nil fetcher skips
// straight to the sample file, a nil cache disables snapshotting.
func NewLoader(cfg *Config, fetcher Fetcher, cache snapshot.Store, opts ...Option) *Loader {
	l := &Loader{cfg: cfg, fetcher: fetcher, cache: cache, now: time.Now}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

const sourceName = "sheets"

// Load returns the current table and a notice string for the UI. The notice
// is empty when live data was served; otherwise it explains the fallback.
// An error is returned only when every source failed.
func (l *Loader) Load(ctx context.Context) (store.Table, string, error) {
	logger := zerolog.Ctx(ctx)

	cached := l.cachedSnapshot(ctx)
	if cached != nil && l.now().Sub(cached.FetchedAt) < l.cfg.CacheTTL {
		return cached.Table, "", nil
	}

	if l.fetcher != nil && l.cfg.SpreadsheetID != "" && l.cfg.Worksheet != "" {
		t, err := l.fetcher.Fetch(ctx, l.cfg.SpreadsheetID, l.cfg.Worksheet)
		if err == nil {
			l.saveSnapshot(ctx, t)
			return t, "", nil
		}
		logger.Warn().Err(err).Msg("remote fetch failed")

		if cached != nil {
			return cached.Table, "Remote source unavailable; showing cached data from " +
				cached.FetchedAt.Format("2006-01-02 15:04"), nil
		}

		t, csvErr := csvfile.Load(l.cfg.SamplePath)
		if csvErr != nil {
			return store.Table{}, "", csvErr
		}
		return t, "Failed to read the remote spreadsheet: " + err.Error(), nil
	}

	if cached != nil {
		return cached.Table, "", nil
	}

	t, err := csvfile.Load(l.cfg.SamplePath)
	if err != nil {
		return store.Table{}, "", err
	}
	return t, "Using local sample data", nil
}

func (l *Loader) cachedSnapshot(ctx context.Context) *store.Snapshot {
	if l.cache == nil {
		return nil
	}
	snap, err := l.cache.Latest(ctx, sourceName)
	if err != nil {
		zerolog.Ctx(ctx).Warn().Err(err).Msg("snapshot lookup failed")
		return nil
	}
	return snap
}

func (l *Loader) saveSnapshot(ctx context.Context, t store.Table) {
	if l.cache == nil {
		return
	}
	if err := l.cache.Save(ctx, sourceName, t, l.now()); err != nil {
		zerolog.Ctx(ctx).Warn().Err(err).Msg("snapshot save failed")
	}
}
