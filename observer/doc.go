// Package observer provides an observable value whose changes are fanned out through a [sigs.Signal].
package observer
