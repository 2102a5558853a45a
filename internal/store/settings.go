package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"momentum/internal/momentum"
)

// #region read

// Settings reads the stored user settings. A fresh database falls back to
// defaults without writing them.
func (s *Store) Settings(ctx context.Context) (momentum.Settings, error) {
	var raw string
	err := s.db.QueryRowContext(ctx,
		`SELECT settings_json FROM user_settings WHERE id = 1`,
	).Scan(&raw)
	if errors.Is(err, sql.ErrNoRows) {
		return momentum.DefaultSettings(), nil
	}
	if err != nil {
		return momentum.Settings{}, fmt.Errorf("read settings: %w", err)
	}
	var settings momentum.Settings
	if err := json.Unmarshal([]byte(raw), &settings); err != nil {
		return momentum.Settings{}, fmt.Errorf("unmarshal settings: %w", err)
	}
	return settings, nil
}

// #endregion

// #region write

// SaveSettings replaces the user settings row.
func (s *Store) SaveSettings(ctx context.Context, settings momentum.Settings) error {
	raw, err := json.Marshal(settings)
	if err != nil {
		return fmt.Errorf("marshal settings: %w", err)
	}
	_, err = s.db.ExecContext(ctx,
		`INSERT INTO user_settings (id, settings_json) VALUES (1, ?)
		 ON CONFLICT(id) DO UPDATE SET settings_json = excluded.settings_json`,
		string(raw),
	)
	if err != nil {
		return fmt.Errorf("save settings: %w", err)
	}
	return nil
}

// #endregion
