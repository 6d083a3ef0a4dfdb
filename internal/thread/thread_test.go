package thread

import (
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCurrent_StableOnLockedGoroutine(t *testing.T) {
	runtime.LockOSThread()
	defer runtime.UnlockOSThread()

	first := Current()
	assert.NotZero(t, first)
	assert.Equal(t, first, Current())
	assert.Equal(t, first, OS{}.Current())
}

func TestIDString(t *testing.T) {
	assert.Equal(t, "4242", ID(4242).String())
}
