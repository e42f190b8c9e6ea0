/*
Package sigs provides typed, thread-safe signals: ordered sets of slots that are invoked together as one event.

# Signals and Slots

A [Signal] holds slots of type func(A), and a [ReturnSignal] holds slots of type func(A) R.
Go doesn't have variadic type parameters, so a signal takes one argument type.
Use [None] for signals without arguments, and a struct (or a pointer to one) for more than one.

	var clicked sigs.Signal[sigs.None]
	conn := clicked.Connect(func(sigs.None) {
		fmt.Println("clicked")
	})
	clicked.Invoke(sigs.None{})
	conn.Disconnect()

Slots are called in the order they were connected.
Each call to Connect returns a new [Connection], even for the same function, and disconnecting one leaves the others in place.
Connections can be disconnected from the handle itself or with [Signal.Disconnect], and both are safe to repeat.
Once a signal is cleared, all of its outstanding connections are inert.

Methods can be connected with method values, or with [Bind] when a method expression is more convenient.

# Dispatch Trees

A signal can be connected to another signal of the same type with [Signal.ConnectSignal].
Invoking the outer signal invokes the inner one at its position in the outer signal's entries.
Connected signals should form a tree (or at least a DAG), since a cycle will deadlock the first time it's invoked.
Connecting a signal to itself is caught by an assertion.

A [ReturnSignal] can fold return values with [ReturnSignal.InvokeReduce].
The reducer receives every value in the tree, depth first, in registration order.
Only a ReturnSignal has InvokeReduce, so passing a reducer to a signal without return values doesn't compile.

# Locking

Each signal has one lock guarding its entries, and it's held while slots run.
This means concurrent invocations of one signal never interleave, and that a slot must not connect, disconnect, or invoke the signal that's calling it.
Doing that will deadlock, and it's not detected.

The blocked state is atomic, and it's checked before the lock is taken.
Blocking a signal from another goroutine affects the next invocation, not one that's already running.
[Block] returns a [Blocker] that restores the previous state when released, which makes nested blocking safe.

# Sharing a Signal

A type that owns a signal can return [Signal.Interface] to let callers connect and disconnect without being able to invoke or clear it.
The mapper package in this module can manage many signals by name.

# Assertions

Programming errors like connecting a nil slot or connecting a signal to itself panic through assertions.
Building with the 'noassert' tag removes the panics, and these operations are rejected instead, returning a nil [Connection].
*/
package sigs
