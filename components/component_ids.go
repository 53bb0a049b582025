package components

import (
	"ebiten-rooms/ecs"
)

// Component IDs used by the viewer
const (
	RoomGraph ecs.ComponentID = iota // The explored room graph
	Camera                           // Camera component for viewport management
)

// Entity tags
const (
	TagGraph  = "graph"
	TagCamera = "camera"
)
