package tipcache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/vitalink/wellness-backend/internal/domain/dailytips"
)

// PostgresStore implements dailytips.Cache on top of the daily_tip_sets
// table. The UNIQUE (user_id, window_start) index is what enforces the
// single-entry invariant under concurrent writers; ON CONFLICT DO NOTHING
// plus a re-read resolves the losing side.
//
// Schema:
//
//	CREATE TABLE daily_tip_sets (
//	    id           BIGSERIAL PRIMARY KEY,
//	    user_id      BIGINT      NOT NULL,
//	    window_start TIMESTAMPTZ NOT NULL,
//	    window_end   TIMESTAMPTZ NOT NULL,
//	    payload      JSONB       NOT NULL,
//	    created_at   TIMESTAMPTZ NOT NULL DEFAULT now(),
//	    UNIQUE (user_id, window_start)
//	);
type PostgresStore struct {
	pool *pgxpool.Pool
}

// NewPostgresStore constructs the store.
func NewPostgresStore(pool *pgxpool.Pool) *PostgresStore {
	return &PostgresStore{pool: pool}
}

// Lookup fetches the entry whose window contains the given instant.
func (s *PostgresStore) Lookup(ctx context.Context, userID int64, at time.Time) (dailytips.CachedTipSet, bool, error) {
	rows, err := s.pool.Query(ctx, `
		SELECT user_id, window_start, window_end, payload, created_at
		FROM daily_tip_sets
		WHERE user_id = $1 AND window_start <= $2 AND window_end >= $2
		LIMIT 1
	`, userID, at)
	if err != nil {
		return dailytips.CachedTipSet{}, false, err
	}
	defer rows.Close()
	if !rows.Next() {
		return dailytips.CachedTipSet{}, false, rows.Err()
	}
	entry, err := scanTipSet(rows)
	if err != nil {
		return dailytips.CachedTipSet{}, false, err
	}
	return entry, true, rows.Err()
}

// Store inserts the entry, deferring to an existing row for the same
// (user, window start) when a concurrent writer got there first.
func (s *PostgresStore) Store(ctx context.Context, userID int64, window dailytips.DayWindow, tips dailytips.TipsByCategory) (dailytips.CachedTipSet, error) {
	payload, err := json.Marshal(tips)
	if err != nil {
		return dailytips.CachedTipSet{}, err
	}

	rows, err := s.pool.Query(ctx, `
		INSERT INTO daily_tip_sets (user_id, window_start, window_end, payload)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (user_id, window_start) DO NOTHING
		RETURNING user_id, window_start, window_end, payload, created_at
	`, userID, window.Start, window.End, payload)
	if err != nil {
		return dailytips.CachedTipSet{}, err
	}
	defer rows.Close()
	if rows.Next() {
		entry, err := scanTipSet(rows)
		if err != nil {
			return dailytips.CachedTipSet{}, err
		}
		return entry, rows.Err()
	}
	if err := rows.Err(); err != nil {
		return dailytips.CachedTipSet{}, err
	}
	rows.Close()

	// Lost the race: return the winning entry.
	return s.readExisting(ctx, userID, window.Start)
}

func (s *PostgresStore) readExisting(ctx context.Context, userID int64, windowStart time.Time) (dailytips.CachedTipSet, error) {
	rows, err := s.pool.Query(ctx, `
		SELECT user_id, window_start, window_end, payload, created_at
		FROM daily_tip_sets
		WHERE user_id = $1 AND window_start = $2
		LIMIT 1
	`, userID, windowStart)
	if err != nil {
		return dailytips.CachedTipSet{}, err
	}
	defer rows.Close()
	if !rows.Next() {
		if err := rows.Err(); err != nil {
			return dailytips.CachedTipSet{}, err
		}
		return dailytips.CachedTipSet{}, pgx.ErrNoRows
	}
	return scanTipSet(rows)
}

// PurgeExpired deletes entries whose window has fully elapsed.
func (s *PostgresStore) PurgeExpired(ctx context.Context, before time.Time) (int64, error) {
	tag, err := s.pool.Exec(ctx, `
		DELETE FROM daily_tip_sets
		WHERE window_end < $1
	`, before)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanTipSet(row rowScanner) (dailytips.CachedTipSet, error) {
	var (
		entry   dailytips.CachedTipSet
		payload []byte
	)
	if err := row.Scan(&entry.UserID, &entry.Window.Start, &entry.Window.End, &payload, &entry.CreatedAt); err != nil {
		return dailytips.CachedTipSet{}, err
	}
	if err := json.Unmarshal(payload, &entry.Tips); err != nil {
		return dailytips.CachedTipSet{}, err
	}
	return entry, nil
}

var _ dailytips.Cache = (*PostgresStore)(nil)
