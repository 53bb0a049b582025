package ecs

import (
	"sync/atomic"

	"github.com/zyedidia/generic/mapset"
)

// EntityID is a unique identifier for an entity
type EntityID uint64

var nextEntityID uint64 = 0

// NewEntityID generates a new unique entity ID
func NewEntityID() EntityID {
	return EntityID(atomic.AddUint64(&nextEntityID, 1))
}

// Entity is a handle for a bag of components, e.g. the explored room graph
// or the viewer camera
type Entity struct {
	ID   EntityID
	Tags mapset.Set[string]
}

// NewEntity creates a new entity
func NewEntity() *Entity {
	return &Entity{
		ID:   NewEntityID(),
		Tags: mapset.New[string](),
	}
}

// AddTag adds a tag to the entity
func (e *Entity) AddTag(tag string) {
	e.Tags.Put(tag)
}

// HasTag checks if the entity has a specific tag
func (e *Entity) HasTag(tag string) bool {
	return e.Tags.Has(tag)
}
