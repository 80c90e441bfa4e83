package snapshot

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/trontec/extras-atlas/pkg/models/store"
)

// Store persists the last raw table fetched per source, so restarts and
// transient source failures can serve the previous snapshot. Only the raw
// table is cached here; computed aggregates are never persisted.
type Store interface {
	Save(ctx context.Context, source string, t store.Table, fetchedAt time.Time) error
	Latest(ctx context.Context, source string) (*store.Snapshot, error)
}

type snapshotStore struct {
	db *sql.DB
}

func NewStore(db *sql.DB) (Store, error) {
	if db == nil {
		return nil, fmt.Errorf("database connection is nil")
	}
	return &snapshotStore{db: db}, nil
}

func (s *snapshotStore) Save(ctx context.Context, source string, t store.Table, fetchedAt time.Time) error {
	columns, err := json.Marshal(t.Columns)
	if err != nil {
		return fmt.Errorf("marshal columns: %w", err)
	}
	rows, err := json.Marshal(t.Rows)
	if err != nil {
		return fmt.Errorf("marshal rows: %w", err)
	}

	if _, err := s.db.ExecContext(ctx, `DELETE FROM snapshots WHERE source = ?`, source); err != nil {
		return fmt.Errorf("clear snapshot: %w", err)
	}

	_, err = s.db.ExecContext(ctx,
		`INSERT INTO snapshots (source, fetched_at, columns, rows) VALUES (?, ?, ?, ?)`,
		source, fetchedAt, columns, rows,
	)
	if err != nil {
		return fmt.Errorf("insert snapshot: %w", err)
	}
	return nil
}

func (s *snapshotStore) Latest(ctx context.Context, source string) (*store.Snapshot, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT fetched_at, columns, rows FROM snapshots WHERE source = ?`, source)

	var fetchedAt time.Time
	var columns, rows []byte
	if err := row.Scan(&fetchedAt, &columns, &rows); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("query snapshot: %w", err)
	}

	snap := &store.Snapshot{Source: source, FetchedAt: fetchedAt}
	if err := json.Unmarshal(columns, &snap.Table.Columns); err != nil {
		return nil, fmt.Errorf("unmarshal columns: %w", err)
	}
	if err := json.Unmarshal(rows, &snap.Table.Rows); err != nil {
		return nil, fmt.Errorf("unmarshal rows: %w", err)
	}
	return snap, nil
}
