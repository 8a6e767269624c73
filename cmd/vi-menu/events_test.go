package main

import (
	"bytes"
	"log"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/vi-menu/engine"
	"github.com/lixenwraith/vi-menu/parameter"
)

type idleHost struct{}

func (idleHost) Update(time.Duration) error { return nil }
func (idleHost) Draw()                      {}

func TestPostEvent_LogsDroppedEvent(t *testing.T) {
	restoreLogger(t)
	var buf bytes.Buffer
	log.SetOutput(&buf)
	log.SetFlags(0)

	loop := engine.NewLoop(idleHost{}, engine.NewPausableClock(nil))
	ev := tcell.NewEventResize(80, 24)

	for range parameter.EventQueueSize {
		postEvent(loop, ev, func() {})
	}
	assert.Empty(t, buf.String(), "queue has room for every event")

	postEvent(loop, ev, func() {})
	require.Contains(t, buf.String(), "[main] event *tcell.EventResize dropped")
	assert.Contains(t, buf.String(), engine.ErrQueueFull.Error())
}
