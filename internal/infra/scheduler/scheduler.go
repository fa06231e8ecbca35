package scheduler

import (
	"context"
	"log/slog"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/vitalink/wellness-backend/internal/domain/dailytips"
	"github.com/vitalink/wellness-backend/internal/infra/config"
)

// Scheduler runs the daily pregeneration and cleanup jobs on cron schedules.
type Scheduler struct {
	cron    *cron.Cron
	svc     dailytips.Service
	cfg     config.SchedulerConfig
	logger  *slog.Logger
	timeout time.Duration
}

// New builds a scheduler from config. Jobs are registered but not started.
func New(cfg config.SchedulerConfig, svc dailytips.Service, logger *slog.Logger) (*Scheduler, error) {
	loc := time.Local
	if cfg.Timezone != "" && cfg.Timezone != "Local" {
		parsed, err := time.LoadLocation(cfg.Timezone)
		if err != nil {
			return nil, err
		}
		loc = parsed
	}

	s := &Scheduler{
		svc:     svc,
		cfg:     cfg,
		logger:  logger.With("component", "scheduler"),
		timeout: 30 * time.Minute,
	}
	s.cron = cron.New(
		cron.WithLocation(loc),
		cron.WithChain(cron.Recover(cron.PrintfLogger(cronLogAdapter{s.logger}))),
	)

	if _, err := s.cron.AddFunc(cfg.PregenerateSpec, s.runPregenerate); err != nil {
		return nil, err
	}
	if _, err := s.cron.AddFunc(cfg.CleanupSpec, s.runCleanup); err != nil {
		return nil, err
	}
	return s, nil
}

// Start begins executing the registered jobs. No-op when disabled.
func (s *Scheduler) Start() {
	if !s.cfg.Enabled {
		s.logger.Info("scheduler disabled")
		return
	}
	s.cron.Start()
	s.logger.Info("scheduler started", "pregenerate", s.cfg.PregenerateSpec, "cleanup", s.cfg.CleanupSpec)
}

// Stop halts the scheduler and waits for in-flight jobs to finish.
func (s *Scheduler) Stop(ctx context.Context) {
	done := s.cron.Stop().Done()
	select {
	case <-done:
	case <-ctx.Done():
		s.logger.Warn("scheduler stop timed out with jobs still running")
	}
}

func (s *Scheduler) runPregenerate() {
	ctx, cancel := context.WithTimeout(context.Background(), s.timeout)
	defer cancel()

	summary, err := s.svc.PregenerateAll(ctx)
	if err != nil {
		s.logger.Error("scheduled pregeneration failed", "error", err)
		return
	}
	s.logger.Info("scheduled pregeneration finished",
		"run_id", summary.RunID,
		"total", summary.Total,
		"generated", summary.Generated,
		"skipped_cached", summary.SkippedCached,
		"skipped_no_snapshot", summary.SkippedNoSnapshot,
		"failed", summary.Failed,
	)
}

func (s *Scheduler) runCleanup() {
	ctx, cancel := context.WithTimeout(context.Background(), s.timeout)
	defer cancel()

	removed, err := s.svc.Cleanup(ctx)
	if err != nil {
		s.logger.Error("scheduled cleanup failed", "error", err)
		return
	}
	s.logger.Info("scheduled cleanup finished", "removed", removed)
}

// cronLogAdapter routes cron's panic recovery output into slog.
type cronLogAdapter struct {
	logger *slog.Logger
}

func (a cronLogAdapter) Printf(format string, args ...interface{}) {
	a.logger.Error("cron job panicked", "detail", format, "args", args)
}
