package syncx

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

type testOrdered struct {
	sync.Mutex
	ident Identity
}

func (o *testOrdered) Identity() uint64 {
	return o.ident.Get()
}

func TestIdentity_Get(t *testing.T) {
	var (
		a, b Identity
		wg   sync.WaitGroup
		seen = make([]uint64, 8)
	)
	for i := range seen {
		wg.Add(1)
		go func() {
			defer wg.Done()
			seen[i] = a.Get()
		}()
	}
	wg.Wait()
	for _, id := range seen {
		assert.Equal(t, seen[0], id, "All goroutines should observe the same identity")
	}
	assert.NotZero(t, a.Get())
	assert.NotEqual(t, a.Get(), b.Get())
}

func TestLockFuncT(t *testing.T) {
	var mux sync.Mutex
	assert.Equal(t, 5, LockFuncT(&mux, func() int {
		return 5
	}))
	assert.True(t, mux.TryLock(), "Lock should have been released")
}

func TestRLockFuncT(t *testing.T) {
	var mux sync.RWMutex
	got := RLockFuncT(&mux, func() string {
		assert.False(t, mux.TryLock(), "Write lock should be excluded while read locked")
		return "value"
	})
	assert.Equal(t, "value", got)
	assert.True(t, mux.TryLock())
	mux.Unlock()
}

func TestLockPairFunc_OppositeOrder(t *testing.T) {
	var (
		a, b    = new(testOrdered), new(testOrdered)
		wg      sync.WaitGroup
		counter int
	)
	for i := 0; i < 100; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			LockPairFunc(a, b, func() { counter++ })
		}()
		go func() {
			defer wg.Done()
			LockPairFunc(b, a, func() { counter++ })
		}()
	}
	done := make(chan struct{})
	go func() {
		defer close(done)
		wg.Wait()
	}()
	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("Locking pairs in opposite order deadlocked")
	}
	assert.Equal(t, 200, counter)
}

func TestLockPairFunc_Same(t *testing.T) {
	a := new(testOrdered)
	called := false
	LockPairFunc(a, a, func() {
		called = true
	})
	assert.True(t, called)
	assert.True(t, a.TryLock(), "Lock should have been released")
}
