// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 AgroDesk Contributors

package workers

import (
	"context"
	"sync"
	"time"
)

// TickerWorker runs a task repeatedly at a fixed interval until stopped.
// Run spawns the loop in its own goroutine; Stop cancels the task's context
// and waits for the loop to exit.
type TickerWorker struct {
	interval time.Duration
	task     func(ctx context.Context)

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

func NewTickerWorker(interval time.Duration, task func(ctx context.Context)) *TickerWorker {
	return &TickerWorker{interval: interval, task: task}
}

// Run starts the periodic loop. Calling Run on an already running worker is
// a no-op.
func (t *TickerWorker) Run() {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.cancel != nil {
		return
	}

	ctx, cancel := context.WithCancel(context.Background())
	t.cancel = cancel

	t.wg.Add(1)
	go func() {
		defer t.wg.Done()

		ticker := time.NewTicker(t.interval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				t.task(ctx)
			}
		}
	}()
}

// Stop cancels the loop and blocks until the worker goroutine has exited.
// Stopping a worker that never ran is a no-op.
func (t *TickerWorker) Stop() {
	t.mu.Lock()
	cancel := t.cancel
	t.cancel = nil
	t.mu.Unlock()

	if cancel == nil {
		return
	}
	cancel()
	t.wg.Wait()
}
