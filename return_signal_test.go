package sigs

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestReturnSignal_InvokeReduce(t *testing.T) {
	var s ReturnSignal[None, int]
	s.Connect(func(None) int { return 1 })
	s.Connect(func(None) int { return 2 })
	s.Connect(func(None) int { return 3 })

	sum := 0
	s.InvokeReduce(func(val int) { sum += val }, None{})
	assert.Equal(t, 1+2+3, sum)
}

func TestReturnSignal_InvokeReduce_Tree(t *testing.T) {
	var a, b ReturnSignal[None, int]
	b.Connect(func(None) int { return 2 })
	b.Connect(func(None) int { return 3 })
	a.Connect(func(None) int { return 1 })
	a.ConnectSignal(&b)
	a.Connect(func(None) int { return 4 })

	sum := 0
	a.InvokeReduce(func(val int) { sum += val }, None{})
	assert.Equal(t, 10, sum)
	assert.Equal(t, []int{1, 2, 3, 4}, a.Collect(None{}), "Values should arrive depth first in registration order")
}

func TestReturnSignal_InvokeReduce_Nested(t *testing.T) {
	var s, s2, s3 ReturnSignal[None, int]
	s3.Connect(func(None) int { return 1 })
	s2.Connect(func(None) int { return 2 })
	s2.Connect(func(None) int { return 3 })
	s.ConnectSignal(&s2)
	s.ConnectSignal(&s3)
	s.Connect(func(None) int { return 4 })

	assert.Equal(t, []int{2, 3, 1, 4}, s.Collect(None{}))
}

func TestReturnSignal_InvokeReduce_Blocked(t *testing.T) {
	var s, sub ReturnSignal[None, int]
	s.Connect(func(None) int { return 1 })
	sub.Connect(func(None) int { return 5 })
	s.ConnectSignal(&sub)

	s.SetBlocked(true)
	calls := 0
	s.InvokeReduce(func(int) { calls++ }, None{})
	assert.Equal(t, 0, calls)

	s.SetBlocked(false)
	sub.SetBlocked(true)
	assert.Equal(t, []int{1}, s.Collect(None{}))
}

func TestReturnSignal_SharedArgument(t *testing.T) {
	var (
		s   ReturnSignal[string, int]
		res string
	)
	fn := func(str string) int {
		res += str
		return 1
	}
	s.Connect(fn)
	s.Connect(fn)
	s.Connect(fn)

	sum := 0
	s.InvokeReduce(func(val int) { sum += val }, "test")
	assert.Equal(t, "testtesttest", res)
	assert.Equal(t, 3, sum)
}

func TestReturnSignal_Invoke(t *testing.T) {
	var (
		s     ReturnSignal[None, int]
		calls int
	)
	s.Connect(func(None) int {
		calls++
		return calls
	})
	s.Invoke(None{})
	s.InvokeReduce(nil, None{})
	assert.Equal(t, 2, calls)
}

func TestReturnSignal_Lifecycle(t *testing.T) {
	s := NewReturn[int, int](StartBlocked())
	assert.True(t, s.Blocked())
	assert.True(t, s.SetBlocked(false))

	double := s.Connect(func(i int) int { return i * 2 })
	s.Connect(func(i int) int { return i * 3 })
	assert.Equal(t, []int{4, 6}, s.Collect(2))

	s.Disconnect(double)
	assert.Equal(t, []int{6}, s.Collect(2))

	cp := s.Clone()
	assert.Equal(t, []int{6}, cp.Collect(2))

	var other ReturnSignal[int, int]
	other.CopyFrom(s)
	assert.Equal(t, 1, other.Size())

	var moved ReturnSignal[int, int]
	moved.MoveFrom(&other)
	assert.True(t, other.Empty())
	assert.Equal(t, []int{6}, moved.Collect(2))

	sub := NewReturn[int, int]()
	sub.Connect(func(i int) int { return i })
	moved.ConnectSignal(sub)
	assert.Equal(t, []int{6, 2}, moved.Collect(2))
	moved.DisconnectSignal(sub)
	assert.Equal(t, []int{6}, moved.Collect(2))

	moved.Clear()
	assert.True(t, moved.Empty())
	assert.Nil(t, moved.Collect(2))
}
