package sigs

import "sync"

type options struct {
	newLocker func() sync.Locker
	blocked   bool
}

// Option configures a signal created with [New] or [NewReturn].
type Option func(*options)

// WithLocker replaces the default [sync.Mutex] guarding a signal's entries.
// The function is called once for the new signal, and again for each [Signal.Clone], so every signal gets its own lock.
//
// The lock is held while slots are invoked, so it must not be shared with another signal in the same dispatch tree.
func WithLocker(newLocker func() sync.Locker) Option {
	return func(o *options) {
		o.newLocker = newLocker
	}
}

// StartBlocked creates the signal in a blocked state.
func StartBlocked() Option {
	return func(o *options) {
		o.blocked = true
	}
}
