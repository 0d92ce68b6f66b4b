package worker

import (
	"context"
	"fmt"
	"sync"
	"time"

	"noticeboard-backend/services"
	"noticeboard-backend/utils/logger"

	"github.com/robfig/cron"
)

// refreshTimeout bounds one snapshot recompute
const refreshTimeout = 30 * time.Second

// SnapshotWorker recomputes the analytics snapshot on a cron schedule so the
// dashboard endpoints serve cached aggregates instead of rescanning the
// collections on every request.
type SnapshotWorker struct {
	analytics services.AnalyticsServiceInterface
	schedule  string
	cronJob   *cron.Cron
	logger    logger.Logger

	mu        sync.Mutex
	isRunning bool
}

func NewSnapshotWorker(analytics services.AnalyticsServiceInterface, schedule string, log logger.Logger) *SnapshotWorker {
	return &SnapshotWorker{
		analytics: analytics,
		schedule:  schedule,
		cronJob:   cron.New(),
		logger:    log,
	}
}

// Start runs one refresh immediately, then keeps refreshing on the schedule.
// Returns an error when the worker is already running or the schedule is
// malformed.
func (w *SnapshotWorker) Start() error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.isRunning {
		return fmt.Errorf("snapshot worker is already running")
	}

	if err := w.cronJob.AddFunc(w.schedule, w.refresh); err != nil {
		return fmt.Errorf("invalid snapshot schedule %q: %w", w.schedule, err)
	}

	w.refresh()
	w.cronJob.Start()
	w.isRunning = true

	w.logger.Infof("Snapshot worker started with schedule: %s", w.schedule)
	return nil
}

// Stop halts the schedule. In-flight refreshes are not interrupted; robfig's
// cron has no way to wait for a running job.
func (w *SnapshotWorker) Stop() {
	w.mu.Lock()
	defer w.mu.Unlock()

	if !w.isRunning {
		return
	}
	w.cronJob.Stop()
	w.isRunning = false
	w.logger.Info("Snapshot worker stopped")
}

func (w *SnapshotWorker) refresh() {
	ctx, cancel := context.WithTimeout(context.Background(), refreshTimeout)
	defer cancel()

	if err := w.analytics.Refresh(ctx); err != nil {
		w.logger.Errorf("Snapshot refresh failed: %v", err)
	}
}
