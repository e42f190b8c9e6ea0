/*
Package assert provides panicking assertions for programming errors in signal wiring, like connecting a signal to itself.

Assertions panic with the caller's location by default.
Building with the 'noassert' tag removes the panic, and every assertion only reports its result, so callers can reject the operation instead.

The Disable and Enable functions flip the same behavior at runtime, which is mostly useful in tests.
*/
package assert
