package sigs

import (
	"slices"
	"sync"
	"sync/atomic"

	"github.com/saylorsolutions/sigs/internal/assert"
	"github.com/saylorsolutions/sigs/internal/syncx"
)

// entry is either a slot or a reference to another signal with the same slot type, never both.
// A pinned entry stays with its signal, and is left out of clones and copies.
type entry[S any] struct {
	slot   S
	sub    *core[S]
	conn   *Connection
	pinned bool
}

type cell[S any] struct {
	gen   uint32
	live  bool
	entry entry[S]
}

var (
	_ owner         = (*core[func()])(nil)
	_ syncx.Ordered = (*core[func()])(nil)
)

// core is the registry engine shared by [Signal] and [ReturnSignal].
// Entries live in a slab of cells, and order lists live cell indexes in registration order.
//
// The zero value is ready to use.
type core[S any] struct {
	mux       sync.Mutex
	locker    sync.Locker
	newLocker func() sync.Locker
	ident     syncx.Identity
	blocked   atomic.Bool

	cells []cell[S]
	free  []uint32
	order []uint32
}

func (c *core[S]) init(opts []Option) {
	var conf options
	for _, opt := range opts {
		opt(&conf)
	}
	if conf.newLocker != nil {
		c.newLocker = conf.newLocker
		c.locker = conf.newLocker()
	}
	c.blocked.Store(conf.blocked)
}

func (c *core[S]) Lock() {
	if c.locker != nil {
		c.locker.Lock()
		return
	}
	c.mux.Lock()
}

func (c *core[S]) Unlock() {
	if c.locker != nil {
		c.locker.Unlock()
		return
	}
	c.mux.Unlock()
}

func (c *core[S]) Identity() uint64 {
	return c.ident.Get()
}

// insert expects the lock to be held.
func (c *core[S]) insert(e entry[S]) slotKey {
	var idx uint32
	if n := len(c.free); n > 0 {
		idx = c.free[n-1]
		c.free = c.free[:n-1]
	} else {
		idx = uint32(len(c.cells))
		c.cells = append(c.cells, cell[S]{})
	}
	cl := &c.cells[idx]
	cl.live = true
	cl.entry = e
	c.order = append(c.order, idx)
	return slotKey{index: idx, gen: cl.gen}
}

// position returns the index in order of the entry at key, or -1.
// Expects the lock to be held.
func (c *core[S]) position(key slotKey) int {
	if int(key.index) >= len(c.cells) {
		return -1
	}
	cl := c.cells[key.index]
	if !cl.live || cl.gen != key.gen {
		return -1
	}
	return slices.Index(c.order, key.index)
}

// removeAt frees the cell at order position pos and detaches its handle.
// Expects the lock to be held.
func (c *core[S]) removeAt(pos int) {
	idx := c.order[pos]
	key := slotKey{index: idx, gen: c.cells[idx].gen}
	c.order = slices.Delete(c.order, pos, pos+1)
	c.freeCell(idx).detach(c, key)
}

// freeCell releases a cell for reuse, returning the handle that was stored in it.
func (c *core[S]) freeCell(idx uint32) *Connection {
	cl := &c.cells[idx]
	conn := cl.entry.conn
	cl.entry = entry[S]{}
	cl.live = false
	cl.gen++
	c.free = append(c.free, idx)
	return conn
}

// removeFunc removes every entry matching pred, preserving the order of the others.
// Expects the lock to be held.
func (c *core[S]) removeFunc(pred func(e entry[S]) bool) {
	for pos := 0; pos < len(c.order); {
		if pred(c.cells[c.order[pos]].entry) {
			c.removeAt(pos)
			continue
		}
		pos++
	}
}

// clearLocked expects the lock to be held.
func (c *core[S]) clearLocked() {
	for _, idx := range c.order {
		gen := c.cells[idx].gen
		c.freeCell(idx).detach(c, slotKey{index: idx, gen: gen})
	}
	c.order = c.order[:0]
}

func (c *core[S]) release(conn *Connection, key slotKey) {
	syncx.LockFunc(c, func() {
		pos := c.position(key)
		if pos < 0 || c.cells[key.index].entry.conn != conn {
			return
		}
		c.removeAt(pos)
	})
}

func (c *core[S]) connect(e entry[S]) *Connection {
	conn := new(Connection)
	e.conn = conn
	syncx.LockFunc(c, func() {
		conn.bind(c, c.insert(e))
	})
	return conn
}

func (c *core[S]) connectSlot(slot S, isNil, pinned bool) *Connection {
	if !assert.True("connected slot is not nil", !isNil) {
		return nil
	}
	return c.connect(entry[S]{slot: slot, pinned: pinned})
}

func (c *core[S]) connectSub(sub *core[S]) *Connection {
	if !assert.True("connected signal is not nil", sub != nil) {
		return nil
	}
	if !assert.True("signal is not connected to itself", sub != c) {
		return nil
	}
	return c.connect(entry[S]{sub: sub})
}

func (c *core[S]) disconnect(conn *Connection) {
	if conn == nil {
		c.clear()
		return
	}
	syncx.LockFunc(c, func() {
		key, ok := conn.keyFor(c)
		if !ok {
			return
		}
		if pos := c.position(key); pos >= 0 {
			c.removeAt(pos)
		}
	})
}

func (c *core[S]) disconnectSub(sub *core[S]) {
	if sub == nil {
		return
	}
	if !assert.True("disconnecting from self has no effect", sub != c) {
		return
	}
	syncx.LockFunc(c, func() {
		c.removeFunc(func(e entry[S]) bool {
			return e.sub == sub
		})
	})
}

// owns reports whether conn currently refers to an entry of c.
func (c *core[S]) owns(conn *Connection) bool {
	if conn == nil {
		return false
	}
	return syncx.LockFuncT(c, func() bool {
		key, ok := conn.keyFor(c)
		return ok && c.position(key) >= 0
	})
}

func (c *core[S]) clear() {
	syncx.LockFunc(c, c.clearLocked)
}

func (c *core[S]) size() int {
	return syncx.LockFuncT(c, func() int {
		return len(c.order)
	})
}

func (c *core[S]) setBlocked(blocked bool) bool {
	return c.blocked.Swap(blocked)
}

func (c *core[S]) isBlocked() bool {
	return c.blocked.Load()
}

// walk calls visit with every slot in the dispatch tree rooted at c, depth first in registration order.
// Nothing is visited if c is blocked, and blocked sub-signals are skipped along with everything below them.
// The lock of every signal on the current path is held while its entries are visited.
func (c *core[S]) walk(visit func(slot S)) {
	if c.blocked.Load() {
		return
	}
	c.Lock()
	defer c.Unlock()
	for _, idx := range c.order {
		e := c.cells[idx].entry
		if e.sub != nil {
			e.sub.walk(visit)
			continue
		}
		visit(e.slot)
	}
}

// entries copies the slot and sub-signal of each entry that isn't pinned, without handles.
// Expects the lock to be held.
func (c *core[S]) entries() []entry[S] {
	snapshot := make([]entry[S], 0, len(c.order))
	for _, idx := range c.order {
		e := c.cells[idx].entry
		if e.pinned {
			continue
		}
		snapshot = append(snapshot, entry[S]{slot: e.slot, sub: e.sub})
	}
	return snapshot
}

// fill inserts copies of entries with fresh handles.
// Expects the lock to be held.
func (c *core[S]) fill(entries []entry[S]) {
	for _, e := range entries {
		if !assert.True("copied signal does not reference its destination", e.sub != c) {
			continue
		}
		conn := new(Connection)
		e.conn = conn
		conn.bind(c, c.insert(e))
	}
}

// cloneTo populates cp, which must be a new zero value that's not yet shared.
func (c *core[S]) cloneTo(cp *core[S]) {
	cp.newLocker = c.newLocker
	if c.newLocker != nil {
		cp.locker = c.newLocker()
	}
	syncx.LockFunc(c, func() {
		cp.fill(c.entries())
		cp.blocked.Store(c.blocked.Load())
	})
}

func (c *core[S]) copyFrom(src *core[S]) {
	if src == nil || src == c {
		return
	}
	syncx.LockPairFunc(c, src, func() {
		c.clearLocked()
		c.fill(src.entries())
		c.blocked.Store(src.blocked.Load())
	})
}

func (c *core[S]) moveFrom(src *core[S]) {
	if src == nil || src == c {
		return
	}
	syncx.LockPairFunc(c, src, func() {
		c.clearLocked()
		for _, idx := range src.order {
			e := src.cells[idx].entry
			if !assert.True("moved signal does not reference its destination", e.sub != c) {
				e.conn.detach(src, slotKey{index: idx, gen: src.cells[idx].gen})
				continue
			}
			e.conn.move(src, slotKey{index: idx, gen: src.cells[idx].gen}, c, func() slotKey {
				return c.insert(e)
			})
		}
		src.cells, src.free, src.order = nil, nil, nil
		c.blocked.Store(src.blocked.Swap(false))
	})
}
