package workerpool

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSubmitRunsTasks(t *testing.T) {
	p := New(3, 10)
	defer p.Close()

	var counter atomic.Int32
	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		err := p.Submit(context.Background(), func() {
			counter.Add(1)
			wg.Done()
		})
		require.NoError(t, err)
	}
	wg.Wait()

	assert.Equal(t, int32(20), counter.Load())
}

func TestRunReturnsTaskError(t *testing.T) {
	p := New(1, 1)
	defer p.Close()

	wantErr := errors.New("upstream unavailable")
	err := p.Run(context.Background(), func() error { return wantErr })
	assert.ErrorIs(t, err, wantErr)

	err = p.Run(context.Background(), func() error { return nil })
	assert.NoError(t, err)
}

func TestSubmitAfterClose(t *testing.T) {
	p := New(1, 1)
	p.Close()

	err := p.Submit(context.Background(), func() {})
	assert.ErrorIs(t, err, ErrClosed)
}

func TestSubmitHonorsContext(t *testing.T) {
	p := New(1, 0)
	defer p.Close()

	block := make(chan struct{})
	require.NoError(t, p.Submit(context.Background(), func() { <-block }))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	err := p.Submit(ctx, func() {})
	assert.ErrorIs(t, err, context.Canceled)

	close(block)
}
