package ecs

import "github.com/zyedidia/generic/mapset"

// World holds the viewer's entities, their components and the systems
// that run over them each frame
type World struct {
	entities   map[EntityID]*Entity
	components map[EntityID]ComponentMap
	systems    []System
	// Tag-based entity lookup for quick access
	entityTags map[string]mapset.Set[EntityID]
	// Event manager for system communication
	eventManager *EventManager
}

// NewWorld creates an empty world with its own event manager
func NewWorld() *World {
	return &World{
		entities:     make(map[EntityID]*Entity),
		components:   make(map[EntityID]ComponentMap),
		systems:      make([]System, 0),
		entityTags:   make(map[string]mapset.Set[EntityID]),
		eventManager: NewEventManager(),
	}
}

// CreateEntity creates a new entity and adds it to the world
func (w *World) CreateEntity() *Entity {
	entity := NewEntity()
	w.entities[entity.ID] = entity
	w.components[entity.ID] = make(ComponentMap)
	return entity
}

// AddComponent adds a component to an entity. Unknown entities are ignored.
func (w *World) AddComponent(entityID EntityID, componentID ComponentID, component Component) {
	componentMap, exists := w.components[entityID]
	if !exists {
		return
	}
	componentMap[componentID] = component
}

// GetComponent retrieves a component from an entity
func (w *World) GetComponent(entityID EntityID, componentID ComponentID) (Component, bool) {
	if componentMap, exists := w.components[entityID]; exists {
		component, exists := componentMap[componentID]
		return component, exists
	}
	return nil, false
}

// AddSystem adds a system to the world
func (w *World) AddSystem(system System) {
	w.systems = append(w.systems, system)
}

// Update runs every system in registration order
func (w *World) Update(dt float64) {
	for _, system := range w.systems {
		system.Update(w, dt)
	}
}

// TagEntity adds a tag to an entity and updates the tag lookup
func (w *World) TagEntity(entityID EntityID, tag string) {
	entity, exists := w.entities[entityID]
	if !exists {
		return
	}

	entity.AddTag(tag)

	if _, exists := w.entityTags[tag]; !exists {
		w.entityTags[tag] = mapset.New[EntityID]()
	}
	w.entityTags[tag].Put(entityID)
}

// GetEntitiesWithTag returns all entities with a specific tag
func (w *World) GetEntitiesWithTag(tag string) []*Entity {
	entities := make([]*Entity, 0)

	if tagged, exists := w.entityTags[tag]; exists {
		tagged.Each(func(entityID EntityID) {
			if entity, ok := w.entities[entityID]; ok {
				entities = append(entities, entity)
			}
		})
	}

	return entities
}

// FirstComponentWithTag returns componentID of any entity tagged with tag.
// The viewer keeps one graph and one camera, so any is the only one.
func (w *World) FirstComponentWithTag(tag string, componentID ComponentID) (Component, bool) {
	for _, entity := range w.GetEntitiesWithTag(tag) {
		if component, exists := w.GetComponent(entity.ID, componentID); exists {
			return component, true
		}
	}
	return nil, false
}

// GetEventManager returns the world's event manager
func (w *World) GetEventManager() *EventManager {
	return w.eventManager
}

// EmitEvent is a convenience method to emit an event
func (w *World) EmitEvent(event Event) {
	w.eventManager.Emit(event)
}
