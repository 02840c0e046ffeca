package ecs

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type pingEvent struct{}

func (pingEvent) Type() EventType { return "ping" }

func TestEventManager_SubscribeUnsubscribe(t *testing.T) {
	em := NewEventManager()
	var first, second int
	id := em.Subscribe("ping", func(Event) { first++ })
	em.Subscribe("ping", func(Event) { second++ })

	em.Emit(pingEvent{})
	em.Unsubscribe("ping", id)
	em.Emit(pingEvent{})

	assert.Equal(t, 1, first)
	assert.Equal(t, 2, second)
}

type countingSystem struct {
	order *[]string
	name  string
}

func (s countingSystem) Update(_ *World, _ float64) {
	*s.order = append(*s.order, s.name)
}

func TestWorld_SystemsRunInOrder(t *testing.T) {
	w := NewWorld()
	var order []string
	w.AddSystem(countingSystem{order: &order, name: "physics"})
	w.AddSystem(countingSystem{order: &order, name: "collision"})
	w.AddSystem(countingSystem{order: &order, name: "player"})

	w.Update(0.016)
	assert.Equal(t, []string{"physics", "collision", "player"}, order)
}

func TestWorld_CreateEntityIsStaged(t *testing.T) {
	w := NewWorld()
	e := w.CreateEntity("player")
	assert.Nil(t, w.Entities.First("player"))

	w.Flush()
	assert.Same(t, e, w.Entities.First("player"))
}
