// Package vitals exposes the read model of the vascular test recording
// subsystem. This service never writes tests; it only consumes the latest
// snapshot per user when generating recommendations.
package vitals

import (
	"context"
	"strings"
	"time"
)

// RiskLevel classifies a vascular test result.
type RiskLevel string

const (
	RiskLow      RiskLevel = "LOW"
	RiskModerate RiskLevel = "MODERATE"
	RiskHigh     RiskLevel = "HIGH"
)

// ParseRiskLevel normalizes the stored risk string. Unknown values are kept
// as-is so they can be logged; callers treat them like an absent level.
func ParseRiskLevel(raw string) RiskLevel {
	normalized := RiskLevel(strings.ToUpper(strings.TrimSpace(raw)))
	return normalized
}

// Known reports whether the level is one of the catalog-backed values.
func (r RiskLevel) Known() bool {
	switch r {
	case RiskLow, RiskModerate, RiskHigh:
		return true
	}
	return false
}

// Snapshot is the most recently observed test for a user at read time.
type Snapshot struct {
	UserID        int64
	RiskLevel     RiskLevel
	Score         float64
	HeartRate     int
	BloodPressure string
	SpO2          float64
	VascularRisk  float64
	ObservedAt    time.Time
}

// SnapshotSource supplies the latest snapshot for a user.
type SnapshotSource interface {
	LatestFor(ctx context.Context, userID int64) (Snapshot, bool, error)
}
