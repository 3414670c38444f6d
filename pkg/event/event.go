// Package event is a lightweight in-process event bus. The storefront
// fires domain events (order.created, payment.confirmed) and listeners
// react: the websocket admin feed, the mail job dispatcher, the audit log.
package event

import (
	"sync"

	"github.com/sengaryogesh394-ai/digiaddaworld/pkg/logger"
)

// Listener handles a fired event. payload is event specific.
type Listener func(payload interface{})

type bus struct {
	mu        sync.RWMutex
	listeners map[string][]Listener
	wg        sync.WaitGroup
}

var defaultBus = &bus{listeners: map[string][]Listener{}}

// Listen registers a listener for the named event.
func Listen(name string, l Listener) {
	defaultBus.mu.Lock()
	defer defaultBus.mu.Unlock()
	defaultBus.listeners[name] = append(defaultBus.listeners[name], l)
}

// Fire calls all listeners for name synchronously, in registration order.
// A panicking listener is recovered and logged so the caller is unaffected.
func Fire(name string, payload interface{}) {
	defaultBus.mu.RLock()
	ls := defaultBus.listeners[name]
	defaultBus.mu.RUnlock()

	for _, l := range ls {
		safeCall(name, l, payload)
	}
}

// FireAsync calls all listeners for name in a single background goroutine.
// Use Flush in tests to wait for in-flight async events.
func FireAsync(name string, payload interface{}) {
	defaultBus.mu.RLock()
	ls := defaultBus.listeners[name]
	defaultBus.mu.RUnlock()

	if len(ls) == 0 {
		return
	}

	defaultBus.wg.Add(1)
	go func() {
		defer defaultBus.wg.Done()
		for _, l := range ls {
			safeCall(name, l, payload)
		}
	}()
}

// Flush blocks until all async listeners have finished.
func Flush() {
	defaultBus.wg.Wait()
}

// Reset removes all listeners. Intended for tests.
func Reset() {
	defaultBus.mu.Lock()
	defer defaultBus.mu.Unlock()
	defaultBus.listeners = map[string][]Listener{}
}

func safeCall(name string, l Listener, payload interface{}) {
	defer func() {
		if rec := recover(); rec != nil {
			logger.Error("event: listener panicked", "event", name, "panic", rec)
		}
	}()
	l(payload)
}
