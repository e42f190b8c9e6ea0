package observer

import (
	"context"
	"sync"

	"github.com/saylorsolutions/sigs"
	"github.com/saylorsolutions/sigs/internal/syncx"
)

// Observer receives a new value from a [Subject] when it changes.
type Observer[T any] func(newVal T)

// Subject is a value that may be observed for changes.
type Subject[T any] interface {
	Get() T
	// Set queues a change, returning false if the Subject's context is already done and the change was dropped.
	// True only means the change was queued: if the context is cancelled before it's applied, then it's discarded.
	Set(newVal T) bool
	// Observe registers obs to be called with every applied change.
	// Disconnecting the returned connection stops notifications to obs.
	Observe(obs Observer[T]) *sigs.Connection
	// Changed exposes the change signal, so other signals may be connected to it.
	Changed() *sigs.Interface[T]
}

// NewSubject creates a [Subject] implementation with a context for cancellation.
// Once the context is cancelled, the [Subject] will no longer propagate changes.
func NewSubject[T any](ctx context.Context, val T) Subject[T] {
	sub := &subject[T]{
		done:    ctx.Done(),
		changes: make(chan T, 1),
		value:   val,
	}
	go sub.processChanges()
	return sub
}

type subject[T any] struct {
	done    <-chan struct{}
	changes chan T

	mux     sync.RWMutex
	value   T
	changed sigs.Signal[T]
}

// processChanges applies changes in the order they were queued.
// The value is updated before observers are called, so observers may call Get.
// Changes still queued when the context is done are discarded.
func (s *subject[T]) processChanges() {
	for {
		select {
		case <-s.done:
			return
		case val := <-s.changes:
			select {
			case <-s.done:
				return
			default:
			}
			syncx.LockFunc(&s.mux, func() {
				s.value = val
			})
			s.changed.Invoke(val)
		}
	}
}

func (s *subject[T]) Get() T {
	return syncx.RLockFuncT(&s.mux, func() T {
		return s.value
	})
}

func (s *subject[T]) Set(newVal T) bool {
	select {
	case <-s.done:
		return false
	default:
	}
	select {
	case <-s.done:
		return false
	case s.changes <- newVal:
		return true
	}
}

func (s *subject[T]) Observe(obs Observer[T]) *sigs.Connection {
	if obs == nil {
		return nil
	}
	return s.changed.Connect(obs)
}

func (s *subject[T]) Changed() *sigs.Interface[T] {
	return s.changed.Interface()
}
