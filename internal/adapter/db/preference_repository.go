package db

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"

	"progresstracker/internal/core/ports"
)

const getPreferencesQuery = `
SELECT payload FROM preferences WHERE owner_id = ?;
`

const upsertPreferencesQuery = `
INSERT INTO preferences (owner_id, payload)
VALUES (?, ?)
ON DUPLICATE KEY UPDATE payload = VALUES(payload);
`

type PreferenceRepository struct {
	db *sqlx.DB
}

var _ ports.PreferenceRepository = (*PreferenceRepository)(nil)

func NewPreferenceRepository(db *sqlx.DB) *PreferenceRepository {
	return &PreferenceRepository{db: db}
}

func (r *PreferenceRepository) Get(ctx context.Context, ownerID string) ([]byte, error) {
	var payload []byte
	if err := r.db.GetContext(ctx, &payload, getPreferencesQuery, ownerID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return payload, nil
}

func (r *PreferenceRepository) Put(ctx context.Context, ownerID string, blob []byte) error {
	_, err := r.db.ExecContext(ctx, upsertPreferencesQuery, ownerID, blob)
	return err
}
