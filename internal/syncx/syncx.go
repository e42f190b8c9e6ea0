package syncx

import (
	"sync"
	"sync/atomic"
)

func LockFunc(mux sync.Locker, fn func()) {
	mux.Lock()
	defer mux.Unlock()
	fn()
}

func LockFuncT[T any](mux sync.Locker, fn func() T) T {
	mux.Lock()
	defer mux.Unlock()
	return fn()
}

type RLocker interface {
	RLock()
	RUnlock()
}

func RLockFuncT[T any](mux RLocker, fn func() T) T {
	mux.RLock()
	defer mux.RUnlock()
	return fn()
}

var lastIdentity atomic.Uint64

// Identity is a lazily assigned, process-unique number.
// The zero value is ready to use, and is assigned on the first call to [Identity.Get].
type Identity struct {
	id atomic.Uint64
}

// Get returns the identity, assigning one if needed.
// Concurrent first calls all observe the same value.
func (i *Identity) Get() uint64 {
	if id := i.id.Load(); id != 0 {
		return id
	}
	i.id.CompareAndSwap(0, lastIdentity.Add(1))
	return i.id.Load()
}

// Ordered is a [sync.Locker] with an [Identity] that decides acquisition order when two of them must be held together.
type Ordered interface {
	sync.Locker
	Identity() uint64
}

// LockPairFunc locks a and b in ascending identity order, runs fn, then unlocks both.
// Two goroutines locking the same pair in opposite argument order can't deadlock each other.
// If a and b have the same identity, then only a is locked.
func LockPairFunc(a, b Ordered, fn func()) {
	aID, bID := a.Identity(), b.Identity()
	if aID == bID {
		LockFunc(a, fn)
		return
	}
	first, second := a, b
	if bID < aID {
		first, second = b, a
	}
	first.Lock()
	defer first.Unlock()
	second.Lock()
	defer second.Unlock()
	fn()
}
