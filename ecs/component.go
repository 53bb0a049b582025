package ecs

// ComponentID is a unique identifier for component types
type ComponentID uint

// Component is any piece of data attached to an entity
type Component interface{}

// ComponentMap stores components by their type ID
type ComponentMap map[ComponentID]Component
