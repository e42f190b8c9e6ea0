package mapper

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"sync"

	"github.com/saylorsolutions/sigs"
)

var (
	ErrUnknownSignal = errors.New("unknown signal")
	ErrSignalType    = errors.New("unexpected signal type")
)

// Option configures a [Mapper].
type Option func(*Mapper)

// WithLogger sets the logger used to report changes to the [Mapper] at debug level.
// Nothing is logged by default.
func WithLogger(logger *slog.Logger) Option {
	return func(m *Mapper) {
		if logger != nil {
			m.log = logger
		}
	}
}

// Mapper is a concurrency safe set of signals keyed by name.
// Each name maps to exactly one signal, which may be of any type in the sigs package.
type Mapper struct {
	log *slog.Logger

	mux     sync.RWMutex
	signals map[string]sigs.Registry
}

// New creates an empty [Mapper].
func New(opts ...Option) *Mapper {
	m := &Mapper{
		log:     slog.New(discardHandler{}),
		signals: map[string]sigs.Registry{},
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// AddSignal registers an existing signal under key.
// False is returned if key is already in use, or sig is nil.
func AddSignal(m *Mapper, key string, sig sigs.Registry) bool {
	if sig == nil {
		return false
	}
	return m.add(key, sig)
}

// Add creates a new [sigs.Signal] under key.
// False is returned if key is already in use.
func Add[A any](m *Mapper, key string) bool {
	return m.add(key, sigs.New[A]())
}

// AddReturn creates a new [sigs.ReturnSignal] under key.
// False is returned if key is already in use.
func AddReturn[A, R any](m *Mapper, key string) bool {
	return m.add(key, sigs.NewReturn[A, R]())
}

func (m *Mapper) add(key string, sig sigs.Registry) bool {
	m.mux.Lock()
	defer m.mux.Unlock()
	if _, ok := m.signals[key]; ok {
		m.log.Debug("Signal key already in use", "key", key)
		return false
	}
	m.signals[key] = sig
	m.log.Debug("Added signal", "key", key, "type", fmt.Sprintf("%T", sig))
	return true
}

func (m *Mapper) get(key string) (sigs.Registry, bool) {
	m.mux.RLock()
	defer m.mux.RUnlock()
	sig, ok := m.signals[key]
	return sig, ok
}

func lookup[T any](m *Mapper, key string) (T, error) {
	var mt T
	sig, ok := m.get(key)
	if !ok {
		return mt, fmt.Errorf("%w: '%s'", ErrUnknownSignal, key)
	}
	typed, ok := sig.(T)
	if !ok {
		return mt, fmt.Errorf("%w: '%s' is %T, not %T", ErrSignalType, key, sig, mt)
	}
	return typed, nil
}

// Signal returns the [sigs.Signal] under key, or nil if it's not found or has a different type.
func Signal[A any](m *Mapper, key string) *sigs.Signal[A] {
	sig, err := lookup[*sigs.Signal[A]](m, key)
	if err != nil {
		return nil
	}
	return sig
}

// ReturnSignal returns the [sigs.ReturnSignal] under key, or nil if it's not found or has a different type.
func ReturnSignal[A, R any](m *Mapper, key string) *sigs.ReturnSignal[A, R] {
	sig, err := lookup[*sigs.ReturnSignal[A, R]](m, key)
	if err != nil {
		return nil
	}
	return sig
}

// Interface returns the [sigs.Interface] of the signal under key, or nil if it's not found or has a different type.
func Interface[A any](m *Mapper, key string) *sigs.Interface[A] {
	sig := Signal[A](m, key)
	if sig == nil {
		return nil
	}
	return sig.Interface()
}

// ReturnInterface returns the [sigs.ReturnInterface] of the signal under key, or nil if it's not found or has a different type.
func ReturnInterface[A, R any](m *Mapper, key string) *sigs.ReturnInterface[A, R] {
	sig := ReturnSignal[A, R](m, key)
	if sig == nil {
		return nil
	}
	return sig.Interface()
}

// Invoke invokes the [sigs.Signal] under key with args.
// An error wrapping [ErrUnknownSignal] or [ErrSignalType] is returned if the signal can't be found.
func Invoke[A any](m *Mapper, key string, args A) error {
	sig, err := lookup[*sigs.Signal[A]](m, key)
	if err != nil {
		return err
	}
	sig.Invoke(args)
	return nil
}

// InvokeReduce invokes the [sigs.ReturnSignal] under key with args, passing each returned value to reducer.
// An error wrapping [ErrUnknownSignal] or [ErrSignalType] is returned if the signal can't be found.
func InvokeReduce[A, R any](m *Mapper, key string, reducer func(R), args A) error {
	sig, err := lookup[*sigs.ReturnSignal[A, R]](m, key)
	if err != nil {
		return err
	}
	sig.InvokeReduce(reducer, args)
	return nil
}

// Get returns the signal under key without its type.
func (m *Mapper) Get(key string) (sigs.Registry, bool) {
	return m.get(key)
}

// Remove removes the signal under key, returning false if it wasn't found.
// The signal itself is left as is, so connections to it still work if it's used elsewhere.
func (m *Mapper) Remove(key string) bool {
	m.mux.Lock()
	defer m.mux.Unlock()
	if _, ok := m.signals[key]; !ok {
		return false
	}
	delete(m.signals, key)
	m.log.Debug("Removed signal", "key", key)
	return true
}

// Size returns the number of signals.
func (m *Mapper) Size() int {
	m.mux.RLock()
	defer m.mux.RUnlock()
	return len(m.signals)
}

// Empty is the same as checking whether [Mapper.Size] is zero.
func (m *Mapper) Empty() bool {
	return m.Size() == 0
}

// Clear removes every signal.
func (m *Mapper) Clear() {
	m.mux.Lock()
	defer m.mux.Unlock()
	n := len(m.signals)
	clear(m.signals)
	m.log.Debug("Cleared signals", "count", n)
}

// Keys returns the keys of all signals in sorted order.
func (m *Mapper) Keys() []string {
	m.mux.RLock()
	defer m.mux.RUnlock()
	keys := make([]string, 0, len(m.signals))
	for k := range m.signals {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}

var _ slog.Handler = discardHandler{}

// discardHandler drops every record.
type discardHandler struct{}

func (discardHandler) Enabled(context.Context, slog.Level) bool { return false }

func (discardHandler) Handle(context.Context, slog.Record) error { return nil }

func (d discardHandler) WithAttrs([]slog.Attr) slog.Handler { return d }

func (d discardHandler) WithGroup(string) slog.Handler { return d }
