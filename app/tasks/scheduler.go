package tasks

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/robfig/cron/v3"
)

// JobRefreshNews names the periodic cache refresh job.
const JobRefreshNews = "refresh-news"

const jobTimeout = 5 * time.Minute

// Refresher is the unit of work the scheduler drives.
type Refresher interface {
	Refresh(ctx context.Context) error
}

// Scheduler runs the named refresh job on a fixed interval and exposes a
// best-effort on-demand trigger. Overlap is prevented by the job wrapper,
// not by locking in the refresh code: a tick or trigger that arrives while
// a run is still in flight is skipped.
type Scheduler struct {
	cron      *cron.Cron
	refresher Refresher
	interval  time.Duration
	job       cron.Job
}

func NewScheduler(refresher Refresher, interval time.Duration) *Scheduler {
	logger := &cronLogger{}

	s := &Scheduler{
		cron:      cron.New(cron.WithChain(cron.Recover(logger))),
		refresher: refresher,
		interval:  interval,
	}
	s.job = cron.NewChain(cron.SkipIfStillRunning(logger)).Then(cron.FuncJob(s.runRefresh))

	return s
}

// Start registers the refresh job and begins the interval schedule, with
// one eager run so the cache is populated at process start.
func (s *Scheduler) Start() error {
	spec := fmt.Sprintf("@every %s", s.interval)
	if _, err := s.cron.AddJob(spec, s.job); err != nil {
		return fmt.Errorf("failed to schedule %s: %w", JobRefreshNews, err)
	}

	s.cron.Start()
	slog.Info("Scheduler started", "job", JobRefreshNews, "interval", s.interval.String())

	go s.job.Run()

	return nil
}

// Stop halts the schedule and waits for a running job to finish.
func (s *Scheduler) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
	slog.Info("Scheduler stopped")
}

// TriggerRefresh schedules one out-of-band run, used after a moderation
// action so the removal is reflected without waiting a full interval.
// Best-effort: if a run is already in flight the trigger is dropped.
func (s *Scheduler) TriggerRefresh() {
	slog.Info("Out-of-band refresh triggered", "job", JobRefreshNews)
	go s.job.Run()
}

func (s *Scheduler) runRefresh() {
	ctx, cancel := context.WithTimeout(context.Background(), jobTimeout)
	defer cancel()

	start := time.Now()
	if err := s.refresher.Refresh(ctx); err != nil {
		slog.Error("Job failed", "job", JobRefreshNews, "duration", time.Since(start).String(), "error", err)
		return
	}
	slog.Debug("Job completed", "job", JobRefreshNews, "duration", time.Since(start).String())
}

// cronLogger adapts the cron logging callbacks to slog.
type cronLogger struct{}

func (l *cronLogger) Info(msg string, keysAndValues ...interface{}) {
	slog.Debug(msg, keysAndValues...)
}

func (l *cronLogger) Error(err error, msg string, keysAndValues ...interface{}) {
	slog.Error(msg, append(keysAndValues, "error", err)...)
}
