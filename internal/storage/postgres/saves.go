package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/dmolchanov/magequest/internal/storage"
)

// SaveRepository persists game snapshots as jsonb blobs keyed by slot.
type SaveRepository struct {
	db *pgxpool.Pool
}

var _ storage.SaveStore = (*SaveRepository)(nil)

// NewSaveRepository creates a SaveRepository backed by the given pool.
//
// Precondition: db must be a valid, open connection pool.
func NewSaveRepository(db *pgxpool.Pool) *SaveRepository {
	return &SaveRepository{db: db}
}

// SaveGame upserts the slot's snapshot.
//
// Postcondition: A subsequent LoadGame on the slot returns this snapshot.
func (r *SaveRepository) SaveGame(ctx context.Context, slot string, data *storage.SaveData) error {
	raw, err := storage.EncodeSave(data)
	if err != nil {
		return fmt.Errorf("encoding save: %w", err)
	}
	_, err = r.db.Exec(ctx,
		`INSERT INTO saves (slot, data)
		 VALUES ($1, $2)
		 ON CONFLICT (slot) DO UPDATE SET data = EXCLUDED.data, updated_at = NOW()`,
		slot, raw,
	)
	if err != nil {
		return fmt.Errorf("upserting save: %w", err)
	}
	return nil
}

// LoadGame returns the slot's snapshot.
//
// Postcondition: Returns the decoded snapshot, or storage.ErrNotFound when
// the slot is absent or its blob does not decode.
func (r *SaveRepository) LoadGame(ctx context.Context, slot string) (*storage.SaveData, error) {
	var raw []byte
	err := r.db.QueryRow(ctx,
		`SELECT data FROM saves WHERE slot = $1`, slot,
	).Scan(&raw)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, storage.ErrNotFound
		}
		return nil, fmt.Errorf("querying save: %w", err)
	}
	data, err := storage.DecodeSave(raw)
	if err != nil {
		return nil, storage.ErrNotFound
	}
	return data, nil
}

// ClearSave removes the slot. Clearing an absent slot is not an error.
func (r *SaveRepository) ClearSave(ctx context.Context, slot string) error {
	if _, err := r.db.Exec(ctx, `DELETE FROM saves WHERE slot = $1`, slot); err != nil {
		return fmt.Errorf("deleting save: %w", err)
	}
	return nil
}
