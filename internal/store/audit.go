package store

import (
	"context"
	"fmt"
)

// #region record

// RecordIntent appends one row to the intent audit trail. The trail is
// append-only; routing decisions are never rewritten.
func (s *Store) RecordIntent(ctx context.Context, e AuditEntry) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO intent_audit (transcript, domain, confidence, decision, reason, created_at)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		e.Transcript, e.Domain, e.Confidence, e.Decision, e.Reason, now(),
	)
	if err != nil {
		return fmt.Errorf("record intent: %w", err)
	}
	return nil
}

// #endregion

// #region read

// RecentIntents returns the newest audit rows, most recent first.
func (s *Store) RecentIntents(ctx context.Context, limit int) ([]AuditEntry, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT transcript, domain, confidence, decision, COALESCE(reason, ''), created_at
		 FROM intent_audit ORDER BY id DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("recent intents: %w", err)
	}
	defer rows.Close()

	var entries []AuditEntry
	for rows.Next() {
		var e AuditEntry
		var created string
		if err := rows.Scan(&e.Transcript, &e.Domain, &e.Confidence, &e.Decision, &e.Reason, &created); err != nil {
			return nil, fmt.Errorf("scan audit row: %w", err)
		}
		e.CreatedAt = parseTime(created)
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// #endregion
