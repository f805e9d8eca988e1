package service

import (
	"context"
	"sync"
	"time"
)

// syncJob calls run on a ticker until stopped. Start replaces a running
// ticker, which is how a new interval takes effect.
type syncJob struct {
	run        func(ctx context.Context)
	runAtStart bool

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

func newSyncJob(run func(ctx context.Context), runAtStart bool) *syncJob {
	return &syncJob{run: run, runAtStart: runAtStart}
}

// Start stops any previously running ticker, then launches a goroutine that
// calls run every interval. A non-positive interval falls back to
// [DefaultSyncInterval]. The goroutine exits when ctx is cancelled or Stop is
// called.
func (j *syncJob) Start(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		interval = DefaultSyncInterval
	}

	j.Stop()

	j.mu.Lock()
	jobCtx, cancel := context.WithCancel(ctx)
	j.cancel = cancel
	j.wg.Add(1)
	j.mu.Unlock()

	go func() {
		defer j.wg.Done()
		t := time.NewTicker(interval)
		defer t.Stop()

		if j.runAtStart {
			j.run(jobCtx)
		}

		for {
			select {
			case <-jobCtx.Done():
				return
			case <-t.C:
				j.run(jobCtx)
			}
		}
	}()
}

// Stop cancels the ticker goroutine and blocks until it has exited. Safe to
// call when the job is not running.
func (j *syncJob) Stop() {
	j.mu.Lock()
	cancel := j.cancel
	j.cancel = nil
	j.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	j.wg.Wait()
}

// Running reports whether a ticker is active.
func (j *syncJob) Running() bool {
	j.mu.Lock()
	defer j.mu.Unlock()
	return j.cancel != nil
}
