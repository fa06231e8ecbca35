// Package vitalsrepo reads vascular test results recorded by the testing
// subsystem. Only the latest snapshot per user is ever consumed here.
package vitalsrepo

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/vitalink/wellness-backend/internal/domain/vitals"
)

// PostgresRepository implements vitals.SnapshotSource using pgx.
type PostgresRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresRepository constructs the repository.
func NewPostgresRepository(pool *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{pool: pool}
}

// LatestFor fetches the most recently observed test for a user.
func (r *PostgresRepository) LatestFor(ctx context.Context, userID int64) (vitals.Snapshot, bool, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT user_id, risk_level, score, heart_rate, blood_pressure, spo2, vascular_risk, observed_at
		FROM vascular_tests
		WHERE user_id = $1
		ORDER BY observed_at DESC, id DESC
		LIMIT 1
	`, userID)
	if err != nil {
		return vitals.Snapshot{}, false, err
	}
	defer rows.Close()
	if !rows.Next() {
		return vitals.Snapshot{}, false, rows.Err()
	}

	var (
		snapshot vitals.Snapshot
		rawRisk  string
	)
	if err := rows.Scan(
		&snapshot.UserID,
		&rawRisk,
		&snapshot.Score,
		&snapshot.HeartRate,
		&snapshot.BloodPressure,
		&snapshot.SpO2,
		&snapshot.VascularRisk,
		&snapshot.ObservedAt,
	); err != nil {
		return vitals.Snapshot{}, false, err
	}
	snapshot.RiskLevel = vitals.ParseRiskLevel(rawRisk)
	return snapshot, true, rows.Err()
}

var _ vitals.SnapshotSource = (*PostgresRepository)(nil)
