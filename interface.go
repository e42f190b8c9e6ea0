package sigs

// Interface exposes only the subscription side of a [Signal].
// It's intended to be returned from a type that owns a signal, so callers can subscribe without being able to invoke or clear it.
type Interface[A any] struct {
	sig *Signal[A]
}

func (i *Interface[A]) Connect(slot func(A)) *Connection {
	return i.sig.Connect(slot)
}

func (i *Interface[A]) ConnectSignal(other *Signal[A]) *Connection {
	return i.sig.ConnectSignal(other)
}

// Disconnect removes the entry for conn.
// Unlike [Signal.Disconnect], a nil [Connection] does nothing.
func (i *Interface[A]) Disconnect(conn *Connection) {
	if conn == nil {
		return
	}
	i.sig.Disconnect(conn)
}

func (i *Interface[A]) DisconnectSignal(other *Signal[A]) {
	i.sig.DisconnectSignal(other)
}

// ReturnInterface is the [Interface] of a [ReturnSignal].
type ReturnInterface[A, R any] struct {
	sig *ReturnSignal[A, R]
}

func (i *ReturnInterface[A, R]) Connect(slot func(A) R) *Connection {
	return i.sig.Connect(slot)
}

func (i *ReturnInterface[A, R]) ConnectSignal(other *ReturnSignal[A, R]) *Connection {
	return i.sig.ConnectSignal(other)
}

// Disconnect removes the entry for conn.
// Unlike [ReturnSignal.Disconnect], a nil [Connection] does nothing.
func (i *ReturnInterface[A, R]) Disconnect(conn *Connection) {
	if conn == nil {
		return
	}
	i.sig.Disconnect(conn)
}

func (i *ReturnInterface[A, R]) DisconnectSignal(other *ReturnSignal[A, R]) {
	i.sig.DisconnectSignal(other)
}
