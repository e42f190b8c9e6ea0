//go:build !noassert

package assert

import (
	"fmt"
	"runtime"
	"sync/atomic"
)

var disabled atomic.Bool

// Disable will stop assertions from panicking globally.
// This is concurrency safe, but affects every goroutine that uses assertions.
func Disable() {
	disabled.Store(true)
}

// Enable re-enables panicking assertions if Disable was called previously.
func Enable() {
	disabled.Store(false)
}

// Enabled reports whether a failed assertion will panic.
func Enabled() bool {
	return !disabled.Load()
}

func getCallerDetails() string {
	_, file, line, ok := runtime.Caller(2)
	if !ok {
		return "unknown"
	}
	return fmt.Sprintf("'%s#%d'", file, line)
}

// True will panic with the label and the location of the caller if result is not true.
// The result is returned so the caller can reject the operation when assertions are disabled.
func True(label string, result bool) bool {
	if result || disabled.Load() {
		return result
	}
	panic(fmt.Sprintf("assertion '%s' failed at %s", label, getCallerDetails()))
}
