package sigs

import "sync"

// slotKey addresses one cell of a signal's entry slab.
// The generation is bumped each time the cell is freed, so a key held by a stale [Connection] never matches a reused cell.
type slotKey struct {
	index uint32
	gen   uint32
}

// owner is the registry side of a [Connection].
type owner interface {
	release(conn *Connection, key slotKey)
}

// Connection is the handle returned when a slot or signal is connected to a signal.
// It may be shared freely and used from any goroutine.
//
// A nil *Connection is valid, and behaves like a handle that's already disconnected.
type Connection struct {
	mux   sync.Mutex
	owner owner
	key   slotKey
}

// Disconnect removes the entry this handle was returned for.
// Only the first call has any effect, and calling it after the entry was removed by other means, like [Signal.Clear], does nothing.
//
// Calling Disconnect from a slot while its own signal is being invoked will deadlock.
func (c *Connection) Disconnect() {
	if c == nil {
		return
	}
	c.mux.Lock()
	o, key := c.owner, c.key
	c.owner = nil
	c.mux.Unlock()
	if o != nil {
		o.release(c, key)
	}
}

// Connected reports whether the handle still refers to a connected entry.
// This is a snapshot, and may be stale by the time it's returned if other goroutines are changing the signal.
func (c *Connection) Connected() bool {
	if c == nil {
		return false
	}
	c.mux.Lock()
	defer c.mux.Unlock()
	return c.owner != nil
}

func (c *Connection) bind(o owner, key slotKey) {
	c.mux.Lock()
	defer c.mux.Unlock()
	c.owner = o
	c.key = key
}

// detach clears the handle without releasing anything, if it still points to o at key.
func (c *Connection) detach(o owner, key slotKey) {
	if c == nil {
		return
	}
	c.mux.Lock()
	defer c.mux.Unlock()
	if c.owner == o && c.key == key {
		c.owner = nil
	}
}

func (c *Connection) keyFor(o owner) (slotKey, bool) {
	c.mux.Lock()
	defer c.mux.Unlock()
	if c.owner == nil || c.owner != o {
		return slotKey{}, false
	}
	return c.key, true
}

// move re-points the handle from one registry to another.
// The assign function is only called, under the handle's lock, if the handle still points to from at fromKey.
// False is returned if the handle was disconnected concurrently.
func (c *Connection) move(from owner, fromKey slotKey, to owner, assign func() slotKey) bool {
	c.mux.Lock()
	defer c.mux.Unlock()
	if c.owner != from || c.key != fromKey {
		return false
	}
	c.owner = to
	c.key = assign()
	return true
}
