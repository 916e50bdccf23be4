package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/dmolchanov/magequest/internal/storage"
)

// LeaderboardRepository persists the shared ranking in a row table keyed
// by player name.
type LeaderboardRepository struct {
	db *pgxpool.Pool
}

var _ storage.LeaderboardStore = (*LeaderboardRepository)(nil)

// NewLeaderboardRepository creates a LeaderboardRepository backed by the
// given pool.
//
// Precondition: db must be a valid, open connection pool.
func NewLeaderboardRepository(db *pgxpool.Pool) *LeaderboardRepository {
	return &LeaderboardRepository{db: db}
}

// Upsert inserts or replaces the entry with the same name and evicts
// rows beyond the top storage.MaxLeaderboardEntries.
//
// Postcondition: The table holds at most MaxLeaderboardEntries rows.
func (r *LeaderboardRepository) Upsert(ctx context.Context, entry storage.LeaderboardEntry) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO leaderboard (name, level, gold, wins, class, saved_at)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 ON CONFLICT (name) DO UPDATE SET
			level = EXCLUDED.level,
			gold = EXCLUDED.gold,
			wins = EXCLUDED.wins,
			class = EXCLUDED.class,
			saved_at = EXCLUDED.saved_at`,
		entry.Name, entry.Level, entry.Gold, entry.Wins, entry.Class, entry.SavedAt,
	)
	if err != nil {
		return fmt.Errorf("upserting leaderboard entry: %w", err)
	}

	_, err = r.db.Exec(ctx,
		`DELETE FROM leaderboard WHERE name NOT IN (
			SELECT name FROM leaderboard ORDER BY level DESC, gold DESC LIMIT $1
		 )`,
		storage.MaxLeaderboardEntries,
	)
	if err != nil {
		return fmt.Errorf("trimming leaderboard: %w", err)
	}
	return nil
}

// Top returns up to limit entries ordered by level descending, gold
// descending.
func (r *LeaderboardRepository) Top(ctx context.Context, limit int) ([]storage.LeaderboardEntry, error) {
	rows, err := r.db.Query(ctx,
		`SELECT name, level, gold, wins, class, saved_at
		 FROM leaderboard
		 ORDER BY level DESC, gold DESC
		 LIMIT $1`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("querying leaderboard: %w", err)
	}
	defer rows.Close()

	var out []storage.LeaderboardEntry
	for rows.Next() {
		var e storage.LeaderboardEntry
		if err := rows.Scan(&e.Name, &e.Level, &e.Gold, &e.Wins, &e.Class, &e.SavedAt); err != nil {
			return nil, fmt.Errorf("scanning leaderboard entry: %w", err)
		}
		out = append(out, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating leaderboard: %w", err)
	}
	return out, nil
}
