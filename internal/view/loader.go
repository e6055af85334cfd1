package view

import (
	"context"
	"errors"
	"sync"
	"time"
)

// State is the lifecycle of one simulated generation.
type State string

const (
	StatePending State = "pending"
	StateReady   State = "ready"
	StateAbsent  State = "absent"
)

var ErrLoaderStopped = errors.New("loader stopped before completion")

// Result is a snapshot of a loader. Value is only meaningful when State is ready.
type Result[T any] struct {
	State State
	Value T
}

// Loader produces a value once, after a fixed delay. A stopped loader ignores
// the timer if it fires late, so nothing is written after Stop returns.
type Loader[T any] struct {
	mu      sync.Mutex
	state   State
	value   T
	stopped bool
	timer   *time.Timer
	done    chan struct{}
}

// NewLoader schedules produce to run after delay. When produce reports false
// the loader settles as absent.
func NewLoader[T any](delay time.Duration, produce func() (T, bool)) *Loader[T] {
	l := &Loader[T]{state: StatePending, done: make(chan struct{})}
	l.mu.Lock()
	l.timer = time.AfterFunc(delay, func() { l.complete(produce) })
	l.mu.Unlock()
	return l
}

func (l *Loader[T]) complete(produce func() (T, bool)) {
	l.mu.Lock()
	if l.stopped || l.state != StatePending {
		l.mu.Unlock()
		return
	}
	l.mu.Unlock()

	v, ok := produce()

	l.mu.Lock()
	defer l.mu.Unlock()
	if l.stopped {
		return
	}
	if ok {
		l.value = v
		l.state = StateReady
	} else {
		l.state = StateAbsent
	}
	close(l.done)
}

// Result returns the current state without blocking.
func (l *Loader[T]) Result() Result[T] {
	l.mu.Lock()
	defer l.mu.Unlock()
	return Result[T]{State: l.state, Value: l.value}
}

// Await blocks until the loader settles, ctx ends or the loader is stopped.
func (l *Loader[T]) Await(ctx context.Context) (Result[T], error) {
	select {
	case <-l.done:
		l.mu.Lock()
		defer l.mu.Unlock()
		if l.stopped && l.state == StatePending {
			return Result[T]{State: StatePending}, ErrLoaderStopped
		}
		return Result[T]{State: l.state, Value: l.value}, nil
	case <-ctx.Done():
		return l.Result(), ctx.Err()
	}
}

// Stop cancels a pending generation. It reports whether the loader was still
// pending; a settled loader keeps its result.
func (l *Loader[T]) Stop() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.stopped {
		return false
	}
	l.stopped = true
	l.timer.Stop()
	if l.state != StatePending {
		return false
	}
	close(l.done)
	return true
}
