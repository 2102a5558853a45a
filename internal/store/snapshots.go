package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"momentum/internal/momentum"
)

// #region save

// SaveSnapshot upserts the snapshot for its date. The last fully-recomputed
// writer wins; there is no merge.
func (s *Store) SaveSnapshot(ctx context.Context, snap momentum.Snapshot) error {
	breakdownJSON, err := json.Marshal(snap.Breakdown)
	if err != nil {
		return fmt.Errorf("marshal breakdown: %w", err)
	}
	_, err = s.db.ExecContext(ctx,
		`INSERT INTO momentum_snapshots (date, snapshot_id, score, breakdown_json, computed_at)
		 VALUES (?, ?, ?, ?, ?)
		 ON CONFLICT(date) DO UPDATE SET snapshot_id = excluded.snapshot_id,
		 score = excluded.score, breakdown_json = excluded.breakdown_json,
		 computed_at = excluded.computed_at`,
		snap.Date, snap.ID, snap.Score, string(breakdownJSON),
		snap.ComputedAt.Format(time.RFC3339Nano),
	)
	if err != nil {
		return fmt.Errorf("upsert snapshot %s: %w", snap.Date, err)
	}
	return nil
}

// #endregion

// #region read

// GetSnapshot reads the stored snapshot for a date.
func (s *Store) GetSnapshot(ctx context.Context, date string) (momentum.Snapshot, bool, error) {
	var snap momentum.Snapshot
	var breakdownJSON, computed string
	err := s.db.QueryRowContext(ctx,
		`SELECT snapshot_id, date, score, breakdown_json, computed_at
		 FROM momentum_snapshots WHERE date = ?`, date,
	).Scan(&snap.ID, &snap.Date, &snap.Score, &breakdownJSON, &computed)
	if errors.Is(err, sql.ErrNoRows) {
		return momentum.Snapshot{}, false, nil
	}
	if err != nil {
		return momentum.Snapshot{}, false, fmt.Errorf("get snapshot %s: %w", date, err)
	}
	if err := json.Unmarshal([]byte(breakdownJSON), &snap.Breakdown); err != nil {
		return momentum.Snapshot{}, false, fmt.Errorf("unmarshal breakdown: %w", err)
	}
	snap.ComputedAt = parseTime(computed)
	return snap, true, nil
}

// ListSnapshots returns the most recent snapshots, newest first.
func (s *Store) ListSnapshots(ctx context.Context, limit int) ([]momentum.Snapshot, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT snapshot_id, date, score, breakdown_json, computed_at
		 FROM momentum_snapshots ORDER BY date DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("list snapshots: %w", err)
	}
	defer rows.Close()

	var snaps []momentum.Snapshot
	for rows.Next() {
		var snap momentum.Snapshot
		var breakdownJSON, computed string
		if err := rows.Scan(&snap.ID, &snap.Date, &snap.Score, &breakdownJSON, &computed); err != nil {
			return nil, fmt.Errorf("scan snapshot: %w", err)
		}
		if err := json.Unmarshal([]byte(breakdownJSON), &snap.Breakdown); err != nil {
			return nil, fmt.Errorf("unmarshal breakdown: %w", err)
		}
		snap.ComputedAt = parseTime(computed)
		snaps = append(snaps, snap)
	}
	return snaps, rows.Err()
}

// #endregion

// #region helpers

func parseTime(s string) time.Time {
	t, _ := time.Parse(time.RFC3339Nano, s)
	return t
}

// #endregion
