package scheduler

import (
	"context"
	"log/slog"
	"time"

	"github.com/robfig/cron/v3"

	"artemisops/internal/domain"
)

// Syncer defines the interface for sync operations.
type Syncer interface {
	Sync(ctx context.Context) (*domain.SyncResult, error)
}

type Scheduler struct {
	syncer   Syncer
	interval time.Duration
	timeout  time.Duration
	logger   *slog.Logger
}

func NewScheduler(syncer Syncer, interval, timeout time.Duration, logger *slog.Logger) *Scheduler {
	if timeout <= 0 {
		timeout = 5 * time.Minute
	}
	return &Scheduler{
		syncer:   syncer,
		interval: interval,
		timeout:  timeout,
		logger:   logger.With("component", "scheduler"),
	}
}

// Start runs one sync immediately and then every interval until ctx is
// cancelled. A run still in progress when the next one is due causes the
// next one to be skipped.
func (s *Scheduler) Start(ctx context.Context) error {
	cronLogger := cron.PrintfLogger(slog.NewLogLogger(s.logger.Handler(), slog.LevelWarn))
	c := cron.New(cron.WithLogger(cronLogger))

	// Recover must wrap the job inside SkipIfStillRunning, otherwise a panic
	// keeps the run token and every later run is skipped.
	job := cron.NewChain(
		cron.SkipIfStillRunning(cronLogger),
		cron.Recover(cronLogger),
	).Then(cron.FuncJob(func() { s.runSync(ctx) }))

	s.logger.Info("scheduler started", "interval", s.interval)

	job.Run()

	c.Schedule(cron.Every(s.interval), job)
	c.Start()

	<-ctx.Done()
	<-c.Stop().Done()

	s.logger.Info("scheduler stopped")
	return ctx.Err()
}

func (s *Scheduler) runSync(ctx context.Context) {
	if ctx.Err() != nil {
		return
	}

	syncCtx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	result, err := s.syncer.Sync(syncCtx)
	if err != nil {
		s.logger.Error("sync failed", "error", err)
		return
	}
	if len(result.Errors) > 0 {
		s.logger.Warn("sync finished with errors", "errors", len(result.Errors))
	}
}
