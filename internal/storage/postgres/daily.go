package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/dmolchanov/magequest/internal/game/daily"
	"github.com/dmolchanov/magequest/internal/storage"
)

// DailyRepository persists per-slot daily quest boards as jsonb blobs.
type DailyRepository struct {
	db *pgxpool.Pool
}

var _ storage.DailyStore = (*DailyRepository)(nil)

// NewDailyRepository creates a DailyRepository backed by the given pool.
//
// Precondition: db must be a valid, open connection pool.
func NewDailyRepository(db *pgxpool.Pool) *DailyRepository {
	return &DailyRepository{db: db}
}

// SaveDaily upserts the slot's board.
func (r *DailyRepository) SaveDaily(ctx context.Context, slot string, data *daily.Data) error {
	raw, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("encoding daily board: %w", err)
	}
	_, err = r.db.Exec(ctx,
		`INSERT INTO daily_boards (slot, data)
		 VALUES ($1, $2)
		 ON CONFLICT (slot) DO UPDATE SET data = EXCLUDED.data`,
		slot, raw,
	)
	if err != nil {
		return fmt.Errorf("upserting daily board: %w", err)
	}
	return nil
}

// LoadDaily returns the slot's board, storage.ErrNotFound when absent or
// unreadable.
func (r *DailyRepository) LoadDaily(ctx context.Context, slot string) (*daily.Data, error) {
	var raw []byte
	err := r.db.QueryRow(ctx,
		`SELECT data FROM daily_boards WHERE slot = $1`, slot,
	).Scan(&raw)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, storage.ErrNotFound
		}
		return nil, fmt.Errorf("querying daily board: %w", err)
	}
	var data daily.Data
	if err := json.Unmarshal(raw, &data); err != nil {
		return nil, storage.ErrNotFound
	}
	return &data, nil
}
