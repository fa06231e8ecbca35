package vitalsrepo

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/vitalink/wellness-backend/internal/domain/vitals"
)

func TestLatestForReturnsMostRecentSnapshot(t *testing.T) {
	repo := NewMemoryRepository()
	base := time.Date(2024, time.March, 10, 9, 0, 0, 0, time.UTC)

	repo.Record(vitals.Snapshot{UserID: 1, RiskLevel: vitals.RiskLow, ObservedAt: base})
	repo.Record(vitals.Snapshot{UserID: 1, RiskLevel: vitals.RiskHigh, ObservedAt: base.Add(48 * time.Hour)})
	repo.Record(vitals.Snapshot{UserID: 1, RiskLevel: vitals.RiskModerate, ObservedAt: base.Add(24 * time.Hour)})

	snapshot, found, err := repo.LatestFor(context.Background(), 1)
	require.NoError(t, err)
	require.True(t, found)
	require.Equal(t, vitals.RiskHigh, snapshot.RiskLevel)
}

func TestLatestForUnknownUser(t *testing.T) {
	repo := NewMemoryRepository()

	_, found, err := repo.LatestFor(context.Background(), 99)
	require.NoError(t, err)
	require.False(t, found)
}
