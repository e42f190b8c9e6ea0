//go:build noassert

package assert

func Disable() {
	// No op
}

func Enable() {
	// No op
}

func Enabled() bool {
	return false
}

func True(_ string, result bool) bool {
	return result
}
