package components

import (
	"ebiten-rooms/ecs"
	"ebiten-rooms/generation"
)

// RoomGraphComponent holds the room graph being explored
type RoomGraphComponent struct {
	Graph *generation.RoomGraph
	Moves int // Successful moves between rooms
}

// NewRoomGraphComponent wraps a generated graph
func NewRoomGraphComponent(graph *generation.RoomGraph) *RoomGraphComponent {
	return &RoomGraphComponent{Graph: graph}
}

// CameraComponent tracks the viewport position in tiles
type CameraComponent struct {
	X, Y   int          // Top-left tile shown in the viewport
	Target ecs.EntityID // Entity carrying the RoomGraphComponent to follow
}

// NewCameraComponent creates a new camera component that follows the specified graph entity
func NewCameraComponent(target ecs.EntityID) *CameraComponent {
	return &CameraComponent{
		X:      0,
		Y:      0,
		Target: target,
	}
}
