package ecs

// EntityManager owns all entities. Additions and removals are staged and only
// become visible to queries after Flush.
type EntityManager struct {
	// Primary store in insertion order
	entities []*Entity
	index    map[EntityID]*Entity
	// Tag-based entity lookup, kept consistent with the primary store
	entityTags map[string][]*Entity

	toAdd    []*Entity
	toRemove map[EntityID]bool
}

// NewEntityManager creates an empty entity manager
func NewEntityManager() *EntityManager {
	return &EntityManager{
		entities:   make([]*Entity, 0, 256),
		index:      make(map[EntityID]*Entity),
		entityTags: make(map[string][]*Entity),
		toRemove:   make(map[EntityID]bool),
	}
}

// Add stages an entity for insertion at the next flush
func (m *EntityManager) Add(entity *Entity) {
	if entity == nil {
		return
	}
	m.toAdd = append(m.toAdd, entity)
}

// Remove stages an entity for removal at the next flush
func (m *EntityManager) Remove(entity *Entity) {
	if entity == nil {
		return
	}
	m.toRemove[entity.ID] = true
}

// Flush applies staged additions, collects entities marked PendingDestroy and
// applies all staged removals. It returns how many entities entered and left
// the store.
func (m *EntityManager) Flush() (added, removed int) {
	for _, entity := range m.toAdd {
		if _, exists := m.index[entity.ID]; exists {
			continue
		}
		m.entities = append(m.entities, entity)
		m.index[entity.ID] = entity
		for tag := range entity.Tags {
			m.entityTags[tag] = append(m.entityTags[tag], entity)
		}
		added++
	}
	clear(m.toAdd)
	m.toAdd = m.toAdd[:0]

	for _, entity := range m.entities {
		if entity.PendingDestroy {
			m.toRemove[entity.ID] = true
		}
	}
	if len(m.toRemove) == 0 {
		return added, 0
	}

	kept := m.entities[:0]
	for _, entity := range m.entities {
		if m.toRemove[entity.ID] {
			delete(m.index, entity.ID)
			removed++
			continue
		}
		kept = append(kept, entity)
	}
	clear(m.entities[len(kept):])
	m.entities = kept

	for tag, bucket := range m.entityTags {
		keptTagged := bucket[:0]
		for _, entity := range bucket {
			if !m.toRemove[entity.ID] {
				keptTagged = append(keptTagged, entity)
			}
		}
		clear(bucket[len(keptTagged):])
		if len(keptTagged) == 0 {
			delete(m.entityTags, tag)
		} else {
			m.entityTags[tag] = keptTagged
		}
	}
	clear(m.toRemove)

	return added, removed
}

// Query returns a snapshot of the live entities owning every requested
// component kind. Unknown kinds yield an empty result.
func (m *EntityManager) Query(ids ...ComponentID) []*Entity {
	mask, ok := maskOf(ids)
	if !ok {
		return nil
	}

	result := make([]*Entity, 0)
	for _, entity := range m.entities {
		if entity.Alive() && entity.mask.contains(mask) {
			result = append(result, entity)
		}
	}
	return result
}

// QueryByTag returns a snapshot of the stored entities carrying a tag
func (m *EntityManager) QueryByTag(tag string) []*Entity {
	bucket := m.entityTags[tag]
	result := make([]*Entity, len(bucket))
	copy(result, bucket)
	return result
}

// First returns the first live entity with the given tag, or nil
func (m *EntityManager) First(tag string) *Entity {
	for _, entity := range m.entityTags[tag] {
		if entity.Alive() {
			return entity
		}
	}
	return nil
}

// TagEntity adds a tag to an entity and updates the tag lookup when the
// entity is already stored
func (m *EntityManager) TagEntity(entity *Entity, tag string) {
	if entity.HasTag(tag) {
		return
	}
	entity.AddTag(tag)
	if _, stored := m.index[entity.ID]; stored {
		m.entityTags[tag] = append(m.entityTags[tag], entity)
	}
}

// Get returns a stored entity by ID
func (m *EntityManager) Get(id EntityID) *Entity {
	return m.index[id]
}

// All returns a snapshot of the primary store
func (m *EntityManager) All() []*Entity {
	result := make([]*Entity, len(m.entities))
	copy(result, m.entities)
	return result
}

// Len returns the number of stored entities
func (m *EntityManager) Len() int {
	return len(m.entities)
}

// Pending returns the number of staged additions and removals
func (m *EntityManager) Pending() (adds, removes int) {
	return len(m.toAdd), len(m.toRemove)
}

// Clear drops every entity, staged or stored
func (m *EntityManager) Clear() {
	m.entities = m.entities[:0]
	m.index = make(map[EntityID]*Entity)
	m.entityTags = make(map[string][]*Entity)
	m.toAdd = m.toAdd[:0]
	m.toRemove = make(map[EntityID]bool)
}
