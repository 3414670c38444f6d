// Package schedule runs recurring maintenance tasks: the daily sales
// stats snapshot and the pending-sale sweep that reports gateway orders
// stuck without confirmation.
package schedule

import (
	"context"
	"sync"
	"time"

	"github.com/sengaryogesh394-ai/digiaddaworld/pkg/logger"
)

// Task is a named recurring job.
type Task struct {
	Name     string
	Interval time.Duration
	Run      func(ctx context.Context) error
}

// Scheduler executes registered tasks at their configured intervals.
type Scheduler struct {
	mu    sync.Mutex
	tasks []Task
}

// New creates an empty scheduler.
func New() *Scheduler {
	return &Scheduler{}
}

// Every registers fn to run at the given interval.
func (s *Scheduler) Every(interval time.Duration, name string, fn func(ctx context.Context) error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tasks = append(s.tasks, Task{Name: name, Interval: interval, Run: fn})
}

// Daily registers fn to run once every 24 hours.
func (s *Scheduler) Daily(name string, fn func(ctx context.Context) error) {
	s.Every(24*time.Hour, name, fn)
}

// Start launches one goroutine per task. Each task also runs once
// immediately so a freshly booted server has current snapshots.
// All goroutines stop when ctx is cancelled.
func (s *Scheduler) Start(ctx context.Context) {
	s.mu.Lock()
	tasks := make([]Task, len(s.tasks))
	copy(tasks, s.tasks)
	s.mu.Unlock()

	for _, t := range tasks {
		go s.loop(ctx, t)
	}
	logger.Info("schedule: started", "tasks", len(tasks))
}

func (s *Scheduler) loop(ctx context.Context, t Task) {
	run := func() {
		start := time.Now()
		if err := t.Run(ctx); err != nil {
			logger.Error("schedule: task failed", "task", t.Name, "error", err)
			return
		}
		logger.Debug("schedule: task done", "task", t.Name, "took", time.Since(start))
	}

	run()

	ticker := time.NewTicker(t.Interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			run()
		}
	}
}
