package task

import (
	"context"
	"log/slog"
	"time"

	"knowledge-base/internal/logger"
	"knowledge-base/internal/metrics"
)

const sweepTimeout = 5 * time.Minute

// TempSweeper removes old upload dirs.
type TempSweeper interface {
	SweepTemp(ctx context.Context, keep int) (int, error)
}

// SweepAttachmentsJob deletes all but the newest upload dirs.
type SweepAttachmentsJob struct {
	store TempSweeper
	keep  int
}

// NewSweepAttachmentsJob creates the job.
func NewSweepAttachmentsJob(store TempSweeper, keep int) *SweepAttachmentsJob {
	return &SweepAttachmentsJob{store: store, keep: keep}
}

func (j *SweepAttachmentsJob) Run() {
	ctx, cancel := context.WithTimeout(context.Background(), sweepTimeout)
	defer cancel()

	removed, err := j.store.SweepTemp(ctx, j.keep)
	if err != nil {
		logger.Error("Attachment sweep failed", slog.String("error", err.Error()))
		metrics.ScheduledJobRuns.WithLabelValues(j.Name(), "error").Inc()
		return
	}
	metrics.ScheduledJobRuns.WithLabelValues(j.Name(), "success").Inc()
	logger.Info("Attachment sweep finished", slog.Int("removed", removed), slog.Int("kept", j.keep))
}

func (j *SweepAttachmentsJob) Name() string {
	return "SweepAttachmentsJob"
}
