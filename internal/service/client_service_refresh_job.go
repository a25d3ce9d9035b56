package service

import (
	"context"
	"sync"
	"time"
)

type clientRefreshJob struct {
	refresh func(ctx context.Context)

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewClientRefreshJob creates a job that calls refresh once per Schedule. The
// job is idle until Schedule is called.
func NewClientRefreshJob(refresh func(ctx context.Context)) ClientRefreshJob {
	return &clientRefreshJob{refresh: refresh}
}

// Schedule implements ClientRefreshJob. The previous refresh is cancelled but
// not awaited, so refresh may reschedule the job from its own goroutine.
func (j *clientRefreshJob) Schedule(ctx context.Context, at time.Time) {
	j.mu.Lock()
	if j.cancel != nil {
		j.cancel()
	}
	jobCtx, cancel := context.WithCancel(ctx)
	j.cancel = cancel
	j.wg.Add(1)
	j.mu.Unlock()

	delay := max(time.Until(at), 0)

	go func() {
		defer j.wg.Done()
		t := time.NewTimer(delay)
		defer t.Stop()

		select {
		case <-jobCtx.Done():
			return
		case <-t.C:
			j.refresh(jobCtx)
		}
	}()
}

// Cancel implements ClientRefreshJob.
func (j *clientRefreshJob) Cancel() {
	j.mu.Lock()
	cancel := j.cancel
	j.cancel = nil
	j.mu.Unlock()

	if cancel != nil {
		cancel()
	}
}

// Stop implements ClientRefreshJob. Safe to call when nothing is scheduled.
func (j *clientRefreshJob) Stop() {
	j.Cancel()
	j.wg.Wait()
}
