package ecs

// ComponentID is a unique identifier for component types
type ComponentID uint8

// MaxComponents bounds the component table carried by every entity.
// Component kinds are a closed enumeration below this value.
const MaxComponents = 16

// Component is the base interface for all components
type Component interface{}

// componentMask records which component slots of an entity are filled
type componentMask uint32

func (m componentMask) has(id ComponentID) bool {
	return m&(1<<id) != 0
}

func (m *componentMask) set(id ComponentID) {
	*m |= 1 << id
}

func (m *componentMask) unset(id ComponentID) {
	*m &^= 1 << id
}

// contains reports whether every bit of sub is also set in m
func (m componentMask) contains(sub componentMask) bool {
	return m&sub == sub
}

// maskOf builds a mask for a set of component IDs. ok is false when any ID is
// outside the known range.
func maskOf(ids []ComponentID) (mask componentMask, ok bool) {
	for _, id := range ids {
		if id >= MaxComponents {
			return 0, false
		}
		mask.set(id)
	}
	return mask, true
}
