// Package task runs periodic maintenance jobs.
package task

import (
	"fmt"
	"log/slog"

	"github.com/robfig/cron/v3"

	"knowledge-base/internal/logger"
)

// Scheduler owns the cron instance and the jobs registered on it.
type Scheduler struct {
	cron   *cron.Cron
	logger *slog.Logger
}

// NewScheduler creates a scheduler whose specs include a seconds field.
// Overlapping runs of one job are delayed, not run concurrently.
func NewScheduler() *Scheduler {
	l := logger.GetLogger().With(slog.String("system", "cron"))
	c := cron.New(
		cron.WithSeconds(),
		cron.WithChain(
			NewPanicRecoveryWrapper(l),
			NewLoggingWrapper(l),
			cron.DelayIfStillRunning(cron.DiscardLogger),
		),
	)
	return &Scheduler{cron: c, logger: l}
}

// Register adds a job under a six-field cron spec.
func (s *Scheduler) Register(spec string, job cron.Job) error {
	if _, err := s.cron.AddJob(spec, job); err != nil {
		return fmt.Errorf("register %s: %w", getJobName(job), err)
	}
	s.logger.Info("Registered periodic job",
		slog.String("job_name", getJobName(job)),
		slog.String("schedule", spec))
	return nil
}

// Start runs the scheduler in the background.
func (s *Scheduler) Start() {
	s.logger.Info("Cron scheduler started")
	s.cron.Start()
}

// Stop waits for running jobs to finish.
func (s *Scheduler) Stop() {
	s.logger.Info("Stopping cron scheduler")
	<-s.cron.Stop().Done()
	s.logger.Info("Cron scheduler stopped")
}
