package ecs

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type pingEvent struct{ n int }

func (e pingEvent) Type() EventType { return "ping" }

func TestEventManagerDispatchOrder(t *testing.T) {
	em := NewEventManager()
	var got []string

	em.Subscribe("ping", func(e Event) { got = append(got, "first") })
	second := em.Subscribe("ping", func(e Event) { got = append(got, "second") })
	em.Subscribe("pong", func(e Event) { got = append(got, "pong") })

	em.Emit(pingEvent{n: 1})
	assert.Equal(t, []string{"first", "second"}, got)

	em.Unsubscribe("ping", second)
	em.Emit(pingEvent{n: 2})
	assert.Equal(t, []string{"first", "second", "first"}, got)
}

func TestEventManagerNilIsSilent(t *testing.T) {
	var em *EventManager
	assert.NotPanics(t, func() { em.Emit(pingEvent{}) })
}

func TestEventManagerUnsubscribeUnknown(t *testing.T) {
	em := NewEventManager()
	assert.NotPanics(t, func() { em.Unsubscribe("ping", 42) })
}
