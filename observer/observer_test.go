package observer

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/saylorsolutions/sigs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSubject_Set(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	sub := NewSubject(ctx, 5)
	assert.Equal(t, 5, sub.Get())
	assert.True(t, sub.Set(10))
	assert.Eventually(t, func() bool {
		return sub.Get() == 10
	}, time.Second, 10*time.Millisecond)
}

func TestSubject_Observe(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	sub := NewSubject(ctx, 5)
	assert.Equal(t, 5, sub.Get())

	var (
		wg          sync.WaitGroup
		receivedVal int
	)
	wg.Add(1)
	conn := sub.Observe(func(newVal int) {
		defer wg.Done()
		receivedVal = newVal
	})
	require.True(t, conn.Connected())
	sub.Set(10)
	wg.Wait()
	assert.Equal(t, 10, receivedVal)

	wg.Add(1)
	sub.Set(15)
	wg.Wait()
	assert.Equal(t, 15, receivedVal)
}

func TestSubject_Observe_GetInObserver(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	sub := NewSubject(ctx, "a")

	seen := make(chan string, 1)
	sub.Observe(func(string) {
		seen <- sub.Get()
	})
	sub.Set("b")
	select {
	case val := <-seen:
		assert.Equal(t, "b", val)
	case <-time.After(time.Second):
		t.Fatal("Observer was not called")
	}
}

func TestSubject_Observe_Disconnect(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	sub := NewSubject(ctx, 0)

	var (
		mux      sync.Mutex
		received []int
	)
	record := func(val int) {
		mux.Lock()
		defer mux.Unlock()
		received = append(received, val)
	}
	conn := sub.Observe(record)
	done := make(chan struct{}, 2)
	sub.Observe(func(int) { done <- struct{}{} })

	sub.Set(1)
	<-done
	conn.Disconnect()
	sub.Set(2)
	<-done

	mux.Lock()
	defer mux.Unlock()
	assert.Equal(t, []int{1}, received)
}

func TestSubject_Changed(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	sub := NewSubject(ctx, 0)

	forward := sigs.New[int]()
	got := make(chan int, 1)
	forward.Connect(func(val int) { got <- val })
	sub.Changed().ConnectSignal(forward)

	sub.Set(3)
	select {
	case val := <-got:
		assert.Equal(t, 3, val)
	case <-time.After(time.Second):
		t.Fatal("Forwarded signal was not invoked")
	}
}

func TestSubject_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	sub := NewSubject(ctx, 5)
	cancel()
	assert.False(t, sub.Set(10), "Set after cancellation should be dropped")
	assert.Equal(t, 5, sub.Get())
}

func TestSubject_Observe_Nil(t *testing.T) {
	sub := NewSubject(context.Background(), 0)
	assert.Nil(t, sub.Observe(nil))
}

func TestSubject_Set_CancelledWhileQueued(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	sub := NewSubject(ctx, 0)

	applying := make(chan struct{})
	release := make(chan struct{})
	sub.Observe(func(val int) {
		if val == 1 {
			close(applying)
			<-release
		}
	})

	require.True(t, sub.Set(1))
	<-applying
	assert.True(t, sub.Set(2), "Queued changes report true")
	cancel()
	close(release)

	assert.Never(t, func() bool {
		return sub.Get() == 2
	}, 100*time.Millisecond, 10*time.Millisecond, "Changes queued when the context is cancelled are discarded")
	assert.Equal(t, 1, sub.Get())
	assert.False(t, sub.Set(3))
}
