package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHandleCrashRunsCleanup(t *testing.T) {
	var cleaned bool
	var code int
	prev := crashExit
	SetCrashCleanup(func() { cleaned = true })
	crashExit = func(c int) { code = c }
	t.Cleanup(func() {
		SetCrashCleanup(nil)
		crashExit = prev
	})

	HandleCrash(nil)
	assert.False(t, cleaned)

	HandleCrash("boom")
	assert.True(t, cleaned)
	assert.Equal(t, 1, code)
}

func TestGoRecoversPanics(t *testing.T) {
	prev := crashExit
	done := make(chan int, 1)
	crashExit = func(c int) { done <- c }
	t.Cleanup(func() { crashExit = prev })

	Go(func() { panic("worker") })
	assert.Equal(t, 1, <-done)
}
