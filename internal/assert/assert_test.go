//go:build !noassert

package assert_test

import (
	"strings"
	"testing"

	"github.com/saylorsolutions/sigs/internal/assert"
	testify "github.com/stretchr/testify/assert"
)

func TestTrue(t *testing.T) {
	testify.NotPanics(t, func() {
		testify.True(t, assert.True("true", true))
	})
}

func TestTrue_Fails(t *testing.T) {
	defer func() {
		r := recover()
		if r == nil {
			t.Fatal("Should have panicked")
		}
		msg, ok := r.(string)
		testify.True(t, ok)
		testify.True(t, strings.HasPrefix(msg, "assertion 'false value'"), "Unexpected panic message: %s", msg)
		testify.Contains(t, msg, "assert_test.go")
	}()
	assert.True("false value", false)
}

func TestDisable(t *testing.T) {
	assert.Disable()
	t.Cleanup(func() {
		assert.Enable()
	})
	testify.False(t, assert.Enabled())
	testify.NotPanics(t, func() {
		testify.False(t, assert.True("false", false), "The result should still be returned while disabled")
	})
}
