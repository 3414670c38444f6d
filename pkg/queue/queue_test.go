package queue

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var processed atomic.Int32

type countingJob struct {
	Delta int32 `json:"delta"`
}

func (j countingJob) Handle() error {
	processed.Add(j.Delta)
	return nil
}

type failingJob struct{}

func (j failingJob) Handle() error { return errors.New("boom") }

func newTestManager() *Manager {
	return &Manager{
		registry: map[string]func() Job{},
		maxRetry: 1,
		driver:   NewMemoryDriver(),
	}
}

func TestDispatchAndProcess(t *testing.T) {
	m := newTestManager()
	m.registry["queue.countingJob"] = func() Job { return &countingJob{} }

	processed.Store(0)
	require.NoError(t, m.push(countingJob{Delta: 5}))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go m.work(ctx)

	assert.Eventually(t, func() bool {
		return processed.Load() == 5
	}, 2*time.Second, 10*time.Millisecond)
}

func TestFailedJobIsRecorded(t *testing.T) {
	m := newTestManager()
	m.registry["queue.failingJob"] = func() Job { return &failingJob{} }

	require.NoError(t, m.push(failingJob{}))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go m.work(ctx)

	assert.Eventually(t, func() bool {
		m.mu.RLock()
		defer m.mu.RUnlock()
		return len(m.failed) == 1
	}, 5*time.Second, 20*time.Millisecond)

	m.mu.RLock()
	defer m.mu.RUnlock()
	assert.EqualError(t, m.failed[0].Err, "boom")
	assert.Equal(t, 1, m.failed[0].Attempts)
}

func TestUnregisteredJobIsDropped(t *testing.T) {
	m := newTestManager()

	require.NoError(t, m.push(countingJob{Delta: 1}))

	processed.Store(0)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go m.work(ctx)

	time.Sleep(100 * time.Millisecond)
	assert.Zero(t, processed.Load())
}

func TestMemoryDriverPopRespectsContext(t *testing.T) {
	d := NewMemoryDriver()

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	_, err := d.Pop(ctx)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}
