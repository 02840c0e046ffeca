package ecs

// World is the context object handed to systems: the entity store, the
// ordered system pipeline and the event bus.
type World struct {
	Entities *EntityManager
	// Systems run in registration order
	systems []System
	// Event manager for system communication
	eventManager *EventManager
}

// NewWorld creates a new ECS world
func NewWorld() *World {
	return &World{
		Entities:     NewEntityManager(),
		systems:      make([]System, 0),
		eventManager: NewEventManager(),
	}
}

// CreateEntity creates a new entity and stages it for insertion. It is not
// visible to queries until the next flush.
func (w *World) CreateEntity(tags ...string) *Entity {
	entity := NewEntity()
	for _, tag := range tags {
		entity.AddTag(tag)
	}
	w.Entities.Add(entity)
	return entity
}

// Flush applies staged entity changes
func (w *World) Flush() (added, removed int) {
	return w.Entities.Flush()
}

// Query is a shorthand for w.Entities.Query
func (w *World) Query(ids ...ComponentID) []*Entity {
	return w.Entities.Query(ids...)
}

// AddSystem appends a system to the pipeline
func (w *World) AddSystem(system System) {
	w.systems = append(w.systems, system)
}

// Update runs every system once, in order
func (w *World) Update(dt float64) {
	for _, system := range w.systems {
		system.Update(w, dt)
	}
}

// GetSystems returns all systems registered in the world
func (w *World) GetSystems() []System {
	return w.systems
}

// GetEventManager returns the world's event manager
func (w *World) GetEventManager() *EventManager {
	return w.eventManager
}

// EmitEvent is a convenience method to emit an event
func (w *World) EmitEvent(event Event) {
	w.eventManager.Emit(event)
}

// Close drops all entities, systems and subscriptions
func (w *World) Close() {
	w.Entities.Clear()
	w.systems = nil
	w.eventManager.Clear()
}
