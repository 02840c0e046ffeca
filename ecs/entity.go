package ecs

import "sync/atomic"

// EntityID is a unique identifier for an entity
type EntityID uint64

var nextEntityID uint64 = 0

// NewEntityID generates a new unique entity ID
func NewEntityID() EntityID {
	return EntityID(atomic.AddUint64(&nextEntityID, 1))
}

// Entity represents a game object in the ECS architecture
type Entity struct {
	ID EntityID
	// Tags can be used for quick identification (e.g., "player", "obstacle")
	Tags map[string]bool
	// Active entities take part in queries
	Active bool
	// PendingDestroy marks the entity for removal at the next flush
	PendingDestroy bool

	components [MaxComponents]Component
	mask       componentMask
}

// NewEntity creates a new active entity
func NewEntity() *Entity {
	return &Entity{
		ID:     NewEntityID(),
		Tags:   make(map[string]bool),
		Active: true,
	}
}

// AddComponent attaches a component to the entity. A component of the same
// kind already present is replaced.
func (e *Entity) AddComponent(id ComponentID, component Component) *Entity {
	if id >= MaxComponents || component == nil {
		return e
	}
	e.components[id] = component
	e.mask.set(id)
	return e
}

// GetComponent retrieves a component from the entity
func (e *Entity) GetComponent(id ComponentID) (Component, bool) {
	if id >= MaxComponents || !e.mask.has(id) {
		return nil, false
	}
	return e.components[id], true
}

// HasComponent checks if the entity has a specific component
func (e *Entity) HasComponent(id ComponentID) bool {
	return id < MaxComponents && e.mask.has(id)
}

// HasComponents checks if the entity has every listed component
func (e *Entity) HasComponents(ids ...ComponentID) bool {
	mask, ok := maskOf(ids)
	return ok && e.mask.contains(mask)
}

// RemoveComponent removes a component from the entity
func (e *Entity) RemoveComponent(id ComponentID) {
	if id >= MaxComponents {
		return
	}
	e.components[id] = nil
	e.mask.unset(id)
}

// AddTag adds a tag to the entity. Use EntityManager.TagEntity for entities
// that are already stored so the tag index stays consistent.
func (e *Entity) AddTag(tag string) *Entity {
	e.Tags[tag] = true
	return e
}

// HasTag checks if the entity has a specific tag
func (e *Entity) HasTag(tag string) bool {
	return e.Tags[tag]
}

// RemoveTag removes a tag from the entity
func (e *Entity) RemoveTag(tag string) {
	delete(e.Tags, tag)
}

// Destroy marks the entity for removal during the next flush
func (e *Entity) Destroy() {
	e.PendingDestroy = true
}

// Alive reports whether the entity is visible to queries
func (e *Entity) Alive() bool {
	return e.Active && !e.PendingDestroy
}
