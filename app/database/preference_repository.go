package database

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"log/slog"
)

const preferencesKey = "user-preferences"

var _ PreferenceRepository = (*PreferenceRepo)(nil)

// PreferenceRepo handles database operations for the user preference
// record. It is the sole writer; writes happen on every mutation.
type PreferenceRepo struct {
	db *DB
}

func NewPreferenceRepository(db *DB) *PreferenceRepo {
	return &PreferenceRepo{db: db}
}

// Get returns the persisted preference record, falling back to defaults
// when no record exists or the stored value does not parse.
func (r *PreferenceRepo) Get() (Preferences, error) {
	var value string
	err := r.db.QueryRow("SELECT value FROM preferences WHERE key = ?", preferencesKey).Scan(&value)
	if err == sql.ErrNoRows {
		return DefaultPreferences(), nil
	}
	if err != nil {
		return Preferences{}, fmt.Errorf("failed to read preferences: %w", err)
	}

	var prefs Preferences
	if err := json.Unmarshal([]byte(value), &prefs); err != nil {
		slog.Warn("Corrupt preference record, using defaults", "error", err)
		return DefaultPreferences(), nil
	}

	if prefs.Categories == nil {
		prefs.Categories = []string{}
	}
	if prefs.Sources == nil {
		prefs.Sources = []string{}
	}

	return prefs, nil
}

func (r *PreferenceRepo) Set(prefs Preferences) error {
	value, err := json.Marshal(prefs)
	if err != nil {
		return fmt.Errorf("failed to marshal preferences: %w", err)
	}

	_, err = r.db.Exec(`
		INSERT INTO preferences (key, value, updated_at) VALUES (?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT (key) DO UPDATE SET
			value = excluded.value,
			updated_at = CURRENT_TIMESTAMP
	`, preferencesKey, string(value))

	if err != nil {
		return fmt.Errorf("failed to store preferences: %w", err)
	}

	return nil
}
