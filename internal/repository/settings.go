package repository

import (
	"context"
	"database/sql"
	"errors"
)

type SettingsRepository struct {
	db *sql.DB
}

func NewSettingsRepository(db *sql.DB) *SettingsRepository {
	return &SettingsRepository{db}
}

// GetSetting returns the stored value, or "" when the key was never written.
func (r *SettingsRepository) GetSetting(ctx context.Context, key string) (string, error) {
	var value string

	query := "SELECT value FROM settings WHERE `key` = ?"
	err := r.db.QueryRowContext(ctx, query, key).Scan(&value)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", nil
		}
		return "", err
	}

	return value, nil
}

func (r *SettingsRepository) SetSetting(ctx context.Context, key, value string) error {
	query := "INSERT INTO settings (`key`, value) VALUES (?, ?) ON DUPLICATE KEY UPDATE value = VALUES(value)"
	_, err := r.db.ExecContext(ctx, query, key, value)
	if err != nil {
		return err
	}
	return nil
}
