package sigs

import "github.com/saylorsolutions/sigs/internal/assert"

// Blocker blocks a signal until it's released, then restores the blocked state the signal had before.
// This makes nested blocking safe, since an inner Blocker restores the blocked state set by an outer one.
//
//	b := sigs.Block(sig)
//	defer b.Release()
//
// A Blocker should be owned by a single goroutine, it's not safe for concurrent use.
// The zero value is detached from any signal, and its methods do nothing.
type Blocker struct {
	target   Blockable
	previous bool
	armed    bool
}

// Block blocks target and returns a [Blocker] that will restore its previous state.
// A nil target is a programming error, and will panic unless assertions are disabled.
func Block(target Blockable) *Blocker {
	b := new(Blocker)
	if !assert.True("blocker target is not nil", target != nil) {
		return b
	}
	b.target = target
	b.Reblock()
	return b
}

// Reblock blocks the target again after [Blocker.Unblock], recording the state it has at this moment.
// While this Blocker is still blocking, Reblock does nothing and keeps the state recorded earlier, rather than re-capturing the target's current state, which this Blocker set to blocked itself.
func (b *Blocker) Reblock() {
	if b.target == nil || b.armed {
		return
	}
	b.previous = b.target.SetBlocked(true)
	b.armed = true
}

// Unblock restores the state recorded by [Block] or [Blocker.Reblock] without waiting for [Blocker.Release].
// Calling it again does nothing until the target is blocked again.
func (b *Blocker) Unblock() {
	if b.target == nil || !b.armed {
		return
	}
	b.target.SetBlocked(b.previous)
	b.armed = false
}

// Blocking reports whether this Blocker currently holds its target blocked.
func (b *Blocker) Blocking() bool {
	return b.armed
}

// Release unblocks the target if needed, and detaches from it.
// This is usually deferred right after calling [Block], and is safe to call more than once.
func (b *Blocker) Release() {
	b.Unblock()
	b.target = nil
}

// Move transfers the target and recorded state to a new Blocker, leaving b detached.
// Nothing about the target's blocked state changes.
func (b *Blocker) Move() *Blocker {
	moved := &Blocker{
		target:   b.target,
		previous: b.previous,
		armed:    b.armed,
	}
	b.target = nil
	b.armed = false
	return moved
}

// Assign takes over the target and recorded state of src, leaving src detached.
//
// If b was blocking a different signal, then that signal is unblocked first.
// If both block the same signal, then it stays blocked throughout, and b will restore it to unblocked if either Blocker would have.
func (b *Blocker) Assign(src *Blocker) {
	if src == b {
		return
	}
	if src == nil {
		b.Release()
		return
	}
	if b.target != src.target {
		b.Unblock()
		b.target, b.previous, b.armed = src.target, src.previous, src.armed
	} else {
		switch {
		case b.armed && src.armed:
			b.previous = b.previous && src.previous
		case src.armed:
			b.previous = src.previous
			b.armed = true
		}
	}
	src.target = nil
	src.armed = false
}
