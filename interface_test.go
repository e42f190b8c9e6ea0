package sigs

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInterface_Connect(t *testing.T) {
	var (
		s Signal[*int]
		i int
	)
	iface := s.Interface()
	iface.Connect(addOne)
	iface.Connect(addOne)
	iface.Connect(func(i *int) { *i++ })

	s.Invoke(&i)
	assert.Equal(t, 3, i)
}

func TestInterface_Disconnect(t *testing.T) {
	var (
		s Signal[*int]
		i int
	)
	conn := s.Connect(addOne)
	s.Interface().Disconnect(conn)
	s.Invoke(&i)
	assert.Equal(t, 0, i)
}

func TestInterface_Disconnect_NilDoesNotClear(t *testing.T) {
	var s Signal[None]
	s.Connect(func(None) {})
	s.Interface().Disconnect(nil)
	assert.Equal(t, 1, s.Size())
}

func TestInterface_DisconnectSignal(t *testing.T) {
	var (
		s1, s2 Signal[*int]
		i      int
	)
	s1.Connect(addOne)
	s2.Interface().ConnectSignal(&s1)
	s2.Invoke(&i)
	assert.Equal(t, 1, i)

	s2.Interface().DisconnectSignal(&s1)
	s2.Invoke(&i)
	assert.Equal(t, 1, i)
}

func TestReturnInterface(t *testing.T) {
	var s, sub ReturnSignal[None, int]
	iface := s.Interface()
	conn := iface.Connect(func(None) int { return 1 })
	iface.ConnectSignal(&sub)
	sub.Connect(func(None) int { return 2 })
	assert.Equal(t, []int{1, 2}, s.Collect(None{}))

	iface.Disconnect(nil)
	assert.Equal(t, 2, s.Size())
	iface.Disconnect(conn)
	iface.DisconnectSignal(&sub)
	assert.True(t, s.Empty())
}
