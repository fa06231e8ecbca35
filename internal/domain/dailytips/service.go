// Package dailytips implements the windowed daily recommendation cache: one
// bounded, categorized tip set per user per 06:00-anchored day, generated by
// an external completion tier with a deterministic catalog fallback.
package dailytips

import (
	"context"
	"log/slog"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/vitalink/wellness-backend/internal/domain/vitals"
	apperrors "github.com/vitalink/wellness-backend/pkg/errors"
)

// Service exposes the daily tip operations consumed by the HTTP layer and
// the job scheduler.
type Service interface {
	GetDailyTips(ctx context.Context, userID int64) (TipsByCategory, error)
	PregenerateAll(ctx context.Context) (BatchSummary, error)
	Cleanup(ctx context.Context) (int64, error)
	RecommendationsFor(ctx context.Context, userID int64) ([]Tip, error)
	RecommendationsByRisk(risk vitals.RiskLevel) []Tip
}

// Config holds runtime knobs for the daily tips domain.
type Config struct {
	// BatchConcurrency bounds parallel per-user generation in the batch run.
	BatchConcurrency int
}

type service struct {
	cfg       Config
	cache     Cache
	snapshots vitals.SnapshotSource
	users     UserDirectory
	generator Generator
	logger    *slog.Logger
	now       func() time.Time
}

// NewService wires up the daily tips domain. A nil generator means the
// external tier is unconfigured; every generation then uses the catalog.
func NewService(cfg Config, cache Cache, snapshots vitals.SnapshotSource, users UserDirectory, generator Generator, logger *slog.Logger) Service {
	if cfg.BatchConcurrency <= 0 {
		cfg.BatchConcurrency = 4
	}
	return &service{
		cfg:       cfg,
		cache:     cache,
		snapshots: snapshots,
		users:     users,
		generator: generator,
		logger:    logger.With("component", "dailytips.service"),
		now:       time.Now,
	}
}

// GetDailyTips returns the cached tip set for the caller's current day
// window, generating and persisting one on a miss. Within one window,
// repeated calls return the payload of the first successful store verbatim.
func (s *service) GetDailyTips(ctx context.Context, userID int64) (TipsByCategory, error) {
	now := s.now()

	cached, found, err := s.cache.Lookup(ctx, userID, now)
	if err != nil {
		s.logger.Warn("cache lookup failed, regenerating", "user_id", userID, "error", err)
	} else if found {
		return cached.Tips, nil
	}

	snapshot, found, err := s.snapshots.LatestFor(ctx, userID)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.CodePersistenceError, "snapshot lookup failed", err)
	}
	if !found {
		return nil, apperrors.Wrap(apperrors.CodeNotFound, "no vascular test recorded for user", nil)
	}

	window := WindowFor(now)
	tips := s.generate(ctx, snapshot, window)

	stored, err := s.cache.Store(ctx, userID, window, tips)
	if err != nil {
		// A failed persist degrades to "generate again next call".
		s.logger.Error("tip cache store failed", "user_id", userID, "error", err)
		return tips, nil
	}
	return stored.Tips, nil
}

// generate runs the external tier when configured and falls back to the
// deterministic catalog on any failure. It never returns an error.
func (s *service) generate(ctx context.Context, snapshot vitals.Snapshot, window DayWindow) TipsByCategory {
	if s.generator == nil {
		s.logger.Debug("external tier unconfigured, using catalog", "user_id", snapshot.UserID)
		return FallbackFor(snapshot.RiskLevel)
	}
	tips, err := s.generator.Generate(ctx, snapshot, window)
	if err != nil {
		s.logger.Warn("external generation failed, using catalog",
			"user_id", snapshot.UserID, "risk_level", snapshot.RiskLevel, "error", err)
		return FallbackFor(snapshot.RiskLevel)
	}
	return tips
}

// PregenerateAll warms the cache for the whole user population. Each user is
// handled independently; one failure never aborts the run.
func (s *service) PregenerateAll(ctx context.Context) (BatchSummary, error) {
	summary := BatchSummary{RunID: uuid.NewString()}
	started := s.now()

	userIDs, err := s.users.AllUserIDs(ctx)
	if err != nil {
		return summary, apperrors.Wrap(apperrors.CodePersistenceError, "user listing failed", err)
	}
	summary.Total = len(userIDs)

	var (
		generated, skippedCached, skippedNoSnapshot, failed counter
	)

	group, groupCtx := errgroup.WithContext(ctx)
	group.SetLimit(s.cfg.BatchConcurrency)
	for _, userID := range userIDs {
		group.Go(func() error {
			switch s.pregenerateOne(groupCtx, userID) {
			case outcomeGenerated:
				generated.inc()
			case outcomeSkippedCached:
				skippedCached.inc()
			case outcomeSkippedNoSnapshot:
				skippedNoSnapshot.inc()
			case outcomeFailed:
				failed.inc()
			}
			return nil
		})
	}
	_ = group.Wait()

	summary.Generated = generated.value()
	summary.SkippedCached = skippedCached.value()
	summary.SkippedNoSnapshot = skippedNoSnapshot.value()
	summary.Failed = failed.value()

	s.logger.Info("daily tips pregeneration finished",
		"run_id", summary.RunID,
		"total", summary.Total,
		"generated", summary.Generated,
		"skipped_cached", summary.SkippedCached,
		"skipped_no_snapshot", summary.SkippedNoSnapshot,
		"failed", summary.Failed,
		"duration_ms", time.Since(started).Milliseconds(),
	)
	return summary, nil
}

type counter struct {
	n atomic.Int64
}

func (c *counter) inc() {
	c.n.Add(1)
}

func (c *counter) value() int {
	return int(c.n.Load())
}

type batchOutcome int

const (
	outcomeGenerated batchOutcome = iota
	outcomeSkippedCached
	outcomeSkippedNoSnapshot
	outcomeFailed
)

func (s *service) pregenerateOne(ctx context.Context, userID int64) batchOutcome {
	now := s.now()

	_, found, err := s.cache.Lookup(ctx, userID, now)
	if err != nil {
		s.logger.Error("batch cache lookup failed", "user_id", userID, "error", err)
		return outcomeFailed
	}
	if found {
		return outcomeSkippedCached
	}

	snapshot, found, err := s.snapshots.LatestFor(ctx, userID)
	if err != nil {
		s.logger.Error("batch snapshot lookup failed", "user_id", userID, "error", err)
		return outcomeFailed
	}
	if !found {
		return outcomeSkippedNoSnapshot
	}

	window := WindowFor(now)
	tips := s.generate(ctx, snapshot, window)
	if _, err := s.cache.Store(ctx, userID, window, tips); err != nil {
		s.logger.Error("batch tip store failed", "user_id", userID, "error", err)
		return outcomeFailed
	}
	return outcomeGenerated
}

// Cleanup removes every cache entry whose window has fully elapsed.
func (s *service) Cleanup(ctx context.Context) (int64, error) {
	purged, err := s.cache.PurgeExpired(ctx, s.now())
	if err != nil {
		return 0, apperrors.Wrap(apperrors.CodePersistenceError, "tip cache purge failed", err)
	}
	if purged > 0 {
		s.logger.Info("expired tip sets purged", "count", purged)
	}
	return purged, nil
}

// RecommendationsFor returns the non-personalized catalog list matching the
// user's latest risk level. No snapshot or no risk level yields an empty
// list, matching the behavior of the on-device recommendations screen.
func (s *service) RecommendationsFor(ctx context.Context, userID int64) ([]Tip, error) {
	snapshot, found, err := s.snapshots.LatestFor(ctx, userID)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.CodePersistenceError, "snapshot lookup failed", err)
	}
	if !found {
		return []Tip{}, nil
	}
	return s.RecommendationsByRisk(snapshot.RiskLevel), nil
}

// RecommendationsByRisk exposes the catalog list for one risk level.
func (s *service) RecommendationsByRisk(risk vitals.RiskLevel) []Tip {
	return ByRiskLevel(risk)
}
