// Package userdir lists the user population owned by the account subsystem.
// The batch job is its only consumer.
package userdir

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/vitalink/wellness-backend/internal/domain/dailytips"
)

// PostgresDirectory implements dailytips.UserDirectory using pgx.
type PostgresDirectory struct {
	pool *pgxpool.Pool
}

// NewPostgresDirectory constructs the directory.
func NewPostgresDirectory(pool *pgxpool.Pool) *PostgresDirectory {
	return &PostgresDirectory{pool: pool}
}

// AllUserIDs returns every known user id.
func (d *PostgresDirectory) AllUserIDs(ctx context.Context) ([]int64, error) {
	rows, err := d.pool.Query(ctx, `SELECT id FROM users ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var ids []int64
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}

var _ dailytips.UserDirectory = (*PostgresDirectory)(nil)
