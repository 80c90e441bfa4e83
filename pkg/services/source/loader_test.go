package source

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trontec/extras-atlas/pkg/models/store"
)

type fakeFetcher struct {
	table store.Table
	err   error
	calls int
}

func (f *fakeFetcher) Fetch(_ context.Context, _, _ string) (store.Table, error) {
	f.calls++
	return f.table, f.err
}

type memoryCache struct {
	snap    *store.Snapshot
	saveErr error
}

func (m *memoryCache) Save(_ context.Context, source string, t store.Table, fetchedAt time.Time) error {
	if m.saveErr != nil {
		return m.saveErr
	}
	m.snap = &store.Snapshot{Source: source, FetchedAt: fetchedAt, Table: t}
	return nil
}

func (m *memoryCache) Latest(_ context.Context, _ string) (*store.Snapshot, error) {
	return m.snap, nil
}

func remoteTable() store.Table {
	return store.Table{Columns: []string{"Data", "Valor"}, Rows: [][]string{{"05/01/2025", "100"}}}
}

func writeSample(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "sample.csv")
	require.NoError(t, os.WriteFile(path, []byte("Data,Valor\n01/01/2025,1\n"), 0o644))
	return path
}

func testConfig(samplePath string) *Config {
	return &Config{
		SpreadsheetID: "sheet-id",
		Worksheet:     "Planilha1",
		SamplePath:    samplePath,
		CacheTTL:      5 * time.Minute,
	}
}

func TestLoaderServesFreshCache(t *testing.T) {
	now := time.Date(2025, 1, 15, 12, 0, 0, 0, time.UTC)
	fetcher := &fakeFetcher{table: remoteTable()}
	cache := &memoryCache{snap: &store.Snapshot{
		Source:    "sheets",
		FetchedAt: now.Add(-time.Minute),
		Table:     remoteTable(),
	}}

	l := NewLoader(testConfig(writeSample(t)), fetcher, cache, WithClock(func() time.Time { return now }))
	table, notice, err := l.Load(context.Background())
	require.NoError(t, err)

	assert.Equal(t, remoteTable(), table)
	assert.Empty(t, notice)
	assert.Zero(t, fetcher.calls, "fresh cache short-circuits the fetch")
}

func TestLoaderFetchesWhenCacheStale(t *testing.T) {
	now := time.Date(2025, 1, 15, 12, 0, 0, 0, time.UTC)
	fetcher := &fakeFetcher{table: remoteTable()}
	cache := &memoryCache{snap: &store.Snapshot{
		Source:    "sheets",
		FetchedAt: now.Add(-10 * time.Minute),
		Table:     store.Table{Columns: []string{"old"}},
	}}

	l := NewLoader(testConfig(writeSample(t)), fetcher, cache, WithClock(func() time.Time { return now }))
	table, notice, err := l.Load(context.Background())
	require.NoError(t, err)

	assert.Equal(t, remoteTable(), table)
	assert.Empty(t, notice)
	assert.Equal(t, 1, fetcher.calls)

	t.Run("snapshot refreshed", func(t *testing.T) {
		require.NotNil(t, cache.snap)
		assert.Equal(t, now, cache.snap.FetchedAt)
		assert.Equal(t, remoteTable(), cache.snap.Table)
	})
}

func TestLoaderFallsBackToStaleCache(t *testing.T) {
	now := time.Date(2025, 1, 15, 12, 0, 0, 0, time.UTC)
	fetcher := &fakeFetcher{err: errors.New("api quota exceeded")}
	stale := store.Table{Columns: []string{"Data"}, Rows: [][]string{{"x"}}}
	cache := &memoryCache{snap: &store.Snapshot{
		Source:    "sheets",
		FetchedAt: now.Add(-time.Hour),
		Table:     stale,
	}}

	l := NewLoader(testConfig(writeSample(t)), fetcher, cache, WithClock(func() time.Time { return now }))
	table, notice, err := l.Load(context.Background())
	require.NoError(t, err)

	assert.Equal(t, stale, table)
	assert.Contains(t, notice, "cached data")
}

func TestLoaderFallsBackToSample(t *testing.T) {
	fetcher := &fakeFetcher{err: errors.New("boom")}

	l := NewLoader(testConfig(writeSample(t)), fetcher, nil)
	table, notice, err := l.Load(context.Background())
	require.NoError(t, err)

	assert.Equal(t, []string{"Data", "Valor"}, table.Columns)
	assert.Contains(t, notice, "boom")
}

func TestLoaderNoFetcherUsesSample(t *testing.T) {
	l := NewLoader(testConfig(writeSample(t)), nil, nil)
	table, notice, err := l.Load(context.Background())
	require.NoError(t, err)

	require.Len(t, table.Rows, 1)
	assert.Equal(t, "Using local sample data", notice)
}

func TestLoaderEverySourceFailed(t *testing.T) {
	cfg := testConfig(filepath.Join(t.TempDir(), "missing.csv"))
	fetcher := &fakeFetcher{err: errors.New("boom")}

	l := NewLoader(cfg, fetcher, nil)
	_, _, err := l.Load(context.Background())
	assert.Error(t, err)
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	assert.Equal(t, 5*time.Minute, cfg.CacheTTL)
	assert.Equal(t, "data/sample.csv", cfg.SamplePath)
	assert.NotEmpty(t, cfg.DBPath)
}

func TestLoadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := "spreadsheet_id: abc123\nworksheet: Planilha1\ncache_ttl: 10m\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "abc123", cfg.SpreadsheetID)
	assert.Equal(t, "Planilha1", cfg.Worksheet)
	assert.Equal(t, 10*time.Minute, cfg.CacheTTL)
	assert.Equal(t, "data/sample.csv", cfg.SamplePath, "defaults fill omitted fields")

	t.Run("missing file", func(t *testing.T) {
		_, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yaml"))
		assert.Error(t, err)
	})
}
