package sigs

// ReturnSignal is a [Signal] whose slots return a value of type R.
// Return values are passed to a reducer with [ReturnSignal.InvokeReduce], including values from connected signals.
//
// The zero value is an empty, unblocked signal that's ready to use.
// A ReturnSignal must not be copied after first use, use [ReturnSignal.Clone] or [ReturnSignal.CopyFrom] instead.
type ReturnSignal[A, R any] struct {
	core core[func(A) R]
}

// NewReturn creates a [ReturnSignal] with the given options.
func NewReturn[A, R any](opts ...Option) *ReturnSignal[A, R] {
	s := new(ReturnSignal[A, R])
	s.core.init(opts)
	return s
}

// Connect is the same as [Signal.Connect].
func (s *ReturnSignal[A, R]) Connect(slot func(A) R) *Connection {
	return s.core.connectSlot(slot, slot == nil, false)
}

// ConnectPinned is the same as [Signal.ConnectPinned].
func (s *ReturnSignal[A, R]) ConnectPinned(slot func(A) R) *Connection {
	return s.core.connectSlot(slot, slot == nil, true)
}

// Owns is the same as [Signal.Owns].
func (s *ReturnSignal[A, R]) Owns(conn *Connection) bool {
	return s.core.owns(conn)
}

// ConnectSignal is the same as [Signal.ConnectSignal].
// Values returned by slots of other are passed to the reducer given to [ReturnSignal.InvokeReduce] on s.
func (s *ReturnSignal[A, R]) ConnectSignal(other *ReturnSignal[A, R]) *Connection {
	if other == nil {
		return s.core.connectSub(nil)
	}
	return s.core.connectSub(&other.core)
}

// Disconnect is the same as [Signal.Disconnect].
func (s *ReturnSignal[A, R]) Disconnect(conn *Connection) {
	s.core.disconnect(conn)
}

// DisconnectSignal is the same as [Signal.DisconnectSignal].
func (s *ReturnSignal[A, R]) DisconnectSignal(other *ReturnSignal[A, R]) {
	if other == nil {
		return
	}
	s.core.disconnectSub(&other.core)
}

// Clear is the same as [Signal.Clear].
func (s *ReturnSignal[A, R]) Clear() {
	s.core.clear()
}

// Invoke calls every slot like [Signal.Invoke], discarding return values.
func (s *ReturnSignal[A, R]) Invoke(args A) {
	s.core.walk(func(slot func(A) R) {
		slot(args)
	})
}

// InvokeReduce calls every slot like [Signal.Invoke], passing each returned value to reducer as it's returned.
// Values from connected signals are passed to the same reducer, so reducer sees every slot in the tree depth first, in registration order.
// The reducer is not called at all if s is blocked.
func (s *ReturnSignal[A, R]) InvokeReduce(reducer func(R), args A) {
	if reducer == nil {
		s.Invoke(args)
		return
	}
	s.core.walk(func(slot func(A) R) {
		reducer(slot(args))
	})
}

// Collect invokes the signal and returns every value in the order [ReturnSignal.InvokeReduce] would see them.
func (s *ReturnSignal[A, R]) Collect(args A) []R {
	var results []R
	s.InvokeReduce(func(val R) {
		results = append(results, val)
	}, args)
	return results
}

// Size is the same as [Signal.Size].
func (s *ReturnSignal[A, R]) Size() int {
	return s.core.size()
}

// Empty is the same as [Signal.Empty].
func (s *ReturnSignal[A, R]) Empty() bool {
	return s.core.size() == 0
}

// Blocked is the same as [Signal.Blocked].
func (s *ReturnSignal[A, R]) Blocked() bool {
	return s.core.isBlocked()
}

// SetBlocked is the same as [Signal.SetBlocked].
func (s *ReturnSignal[A, R]) SetBlocked(blocked bool) bool {
	return s.core.setBlocked(blocked)
}

// Clone is the same as [Signal.Clone].
func (s *ReturnSignal[A, R]) Clone() *ReturnSignal[A, R] {
	cp := new(ReturnSignal[A, R])
	s.core.cloneTo(&cp.core)
	return cp
}

// CopyFrom is the same as [Signal.CopyFrom].
func (s *ReturnSignal[A, R]) CopyFrom(src *ReturnSignal[A, R]) {
	if src == nil {
		return
	}
	s.core.copyFrom(&src.core)
}

// MoveFrom is the same as [Signal.MoveFrom].
func (s *ReturnSignal[A, R]) MoveFrom(src *ReturnSignal[A, R]) {
	if src == nil {
		return
	}
	s.core.moveFrom(&src.core)
}

// Interface returns a facade that can connect and disconnect, but not invoke or clear.
func (s *ReturnSignal[A, R]) Interface() *ReturnInterface[A, R] {
	return &ReturnInterface[A, R]{sig: s}
}
