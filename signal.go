package sigs

// None is the argument type of a signal with no parameters.
type None = struct{}

// Blockable is a signal that can be blocked, which is all a [Blocker] needs.
type Blockable interface {
	// Blocked reports whether the signal is currently blocked.
	Blocked() bool
	// SetBlocked sets the blocked state, returning the previous state.
	SetBlocked(blocked bool) bool
}

// Registry is the type-erased view of any signal in this package.
type Registry interface {
	Blockable
	Size() int
	Empty() bool
	Clear()
}

var (
	_ Registry = (*Signal[None])(nil)
	_ Registry = (*ReturnSignal[None, int])(nil)
)

// Signal is an ordered set of slots accepting an argument of type A, invoked together with [Signal.Invoke].
// Other signals of the same type may be connected too, and are invoked in turn at their position.
//
// The zero value is an empty, unblocked signal that's ready to use.
// A Signal must not be copied after first use, use [Signal.Clone] or [Signal.CopyFrom] instead.
type Signal[A any] struct {
	core core[func(A)]
}

// New creates a [Signal] with the given options.
func New[A any](opts ...Option) *Signal[A] {
	s := new(Signal[A])
	s.core.init(opts)
	return s
}

// Connect adds a slot that will be called after every slot already connected.
// Connecting the same function twice will call it twice, and each connection is disconnected independently.
//
// A nil slot is a programming error.
// It panics unless assertions are disabled, in which case nothing is connected and a nil [Connection] is returned.
func (s *Signal[A]) Connect(slot func(A)) *Connection {
	return s.core.connectSlot(slot, slot == nil, false)
}

// ConnectPinned is the same as [Signal.Connect], but the slot stays with s.
// [Signal.Clone] and [Signal.CopyFrom] don't copy a pinned slot, while [Signal.MoveFrom] moves it like any other entry.
func (s *Signal[A]) ConnectPinned(slot func(A)) *Connection {
	return s.core.connectSlot(slot, slot == nil, true)
}

// Owns reports whether conn refers to an entry of s at this moment.
// Connections follow their entries through [Signal.MoveFrom], so this is false for the source of a move.
func (s *Signal[A]) Owns(conn *Connection) bool {
	return s.core.owns(conn)
}

// ConnectSignal adds other as an entry of this signal, so invoking s will invoke other with the same argument.
// Connected signals must form a tree or a DAG, a cycle will deadlock when invoked.
//
// Connecting a signal to itself is a programming error.
// It panics unless assertions are disabled, in which case nothing is connected and a nil [Connection] is returned.
func (s *Signal[A]) ConnectSignal(other *Signal[A]) *Connection {
	if other == nil {
		return s.core.connectSub(nil)
	}
	return s.core.connectSub(&other.core)
}

// Disconnect removes the entry for conn if it belongs to this signal.
// This does nothing if the entry was already removed.
// Passing a nil [Connection] removes every entry, just like [Signal.Clear].
func (s *Signal[A]) Disconnect(conn *Connection) {
	s.core.disconnect(conn)
}

// DisconnectSignal removes every entry referencing other, leaving slots and other signals in place.
func (s *Signal[A]) DisconnectSignal(other *Signal[A]) {
	if other == nil {
		return
	}
	s.core.disconnectSub(&other.core)
}

// Clear removes every entry.
// Outstanding connections are invalidated without being run, so disconnecting them later does nothing.
func (s *Signal[A]) Clear() {
	s.core.clear()
}

// Invoke calls each connected slot with args in the order they were connected, and invokes connected signals in place.
// If the signal is blocked, then nothing is called, including connected signals.
//
// The signal's lock is held until every slot returns, so concurrent invocations never interleave.
// Slots must not connect, disconnect, or invoke the signal that's calling them, or they'll deadlock.
// A panic in a slot propagates to the caller, and the remaining slots aren't called.
func (s *Signal[A]) Invoke(args A) {
	s.core.walk(func(slot func(A)) {
		slot(args)
	})
}

// Size returns the number of entries, counting a connected signal as one.
// This may be out of date by the time it's returned if other goroutines are changing the signal.
func (s *Signal[A]) Size() int {
	return s.core.size()
}

// Empty is the same as checking whether [Signal.Size] is zero.
func (s *Signal[A]) Empty() bool {
	return s.core.size() == 0
}

// Blocked reports whether invocation is currently suppressed.
func (s *Signal[A]) Blocked() bool {
	return s.core.isBlocked()
}

// SetBlocked changes whether invocation is suppressed, returning the previous state.
// This takes effect on the next call to [Signal.Invoke], not one that's already running.
func (s *Signal[A]) SetBlocked(blocked bool) bool {
	return s.core.setBlocked(blocked)
}

// Clone creates a new [Signal] with the same slots, connected signals, and blocked state.
// The clone's entries have their own connections, so disconnecting from one signal doesn't affect the other.
// Entries added to the clone can only be removed with [Signal.Clear] or [Signal.DisconnectSignal].
func (s *Signal[A]) Clone() *Signal[A] {
	cp := new(Signal[A])
	s.core.cloneTo(&cp.core)
	return cp
}

// CopyFrom replaces the entries and blocked state of s with a clone of src's.
// Connections previously returned by s are invalidated.
// Both signals are locked in a fixed global order, so concurrent CopyFrom calls in opposite directions won't deadlock.
func (s *Signal[A]) CopyFrom(src *Signal[A]) {
	if src == nil {
		return
	}
	s.core.copyFrom(&src.core)
}

// MoveFrom transfers the entries and blocked state of src to s, leaving src empty and unblocked.
// Connections previously returned by s are invalidated, while connections returned by src now refer to s.
// Signals that had src connected still refer to src.
func (s *Signal[A]) MoveFrom(src *Signal[A]) {
	if src == nil {
		return
	}
	s.core.moveFrom(&src.core)
}

// Interface returns a facade that can connect and disconnect, but not invoke or clear.
func (s *Signal[A]) Interface() *Interface[A] {
	return &Interface[A]{sig: s}
}
