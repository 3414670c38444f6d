package event

import (
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFireCallsListenersInOrder(t *testing.T) {
	Reset()
	defer Reset()

	var got []int
	Listen("test.ordered", func(interface{}) { got = append(got, 1) })
	Listen("test.ordered", func(interface{}) { got = append(got, 2) })

	Fire("test.ordered", nil)
	assert.Equal(t, []int{1, 2}, got)
}

func TestFireAsyncWithFlush(t *testing.T) {
	Reset()
	defer Reset()

	var counter atomic.Int32
	Listen("test.async", func(payload interface{}) {
		counter.Add(payload.(int32))
	})

	FireAsync("test.async", int32(3))
	FireAsync("test.async", int32(4))
	Flush()

	assert.Equal(t, int32(7), counter.Load())
}

func TestPanickingListenerDoesNotPropagate(t *testing.T) {
	Reset()
	defer Reset()

	var reached bool
	Listen("test.panic", func(interface{}) { panic("listener bug") })
	Listen("test.panic", func(interface{}) { reached = true })

	assert.NotPanics(t, func() { Fire("test.panic", nil) })
	assert.True(t, reached)
}

func TestFireWithoutListenersIsNoop(t *testing.T) {
	Reset()
	defer Reset()

	assert.NotPanics(t, func() {
		Fire("test.nobody", nil)
		FireAsync("test.nobody", nil)
		Flush()
	})
}
