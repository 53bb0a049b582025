package systems

import (
	"ebiten-rooms/ecs"
	"ebiten-rooms/generation"
)

// Event type constants
const (
	EventCameraUpdate ecs.EventType = "camera_update"
	EventMoveBlocked  ecs.EventType = "move_blocked"
)

// CameraUpdateEvent is emitted when the camera position changes
type CameraUpdateEvent struct {
	CameraID  ecs.EntityID // ID of the camera entity
	X         int          // New X position, in tiles
	Y         int          // New Y position, in tiles
	TargetID  ecs.EntityID // ID of the graph entity the camera is following
	ViewportW int          // Viewport width in tiles
	ViewportH int          // Viewport height in tiles
}

// Type returns the event type
func (e CameraUpdateEvent) Type() ecs.EventType {
	return EventCameraUpdate
}

// MoveBlockedEvent is emitted when the viewer tries to leave a room through
// a wall that has no usable door
type MoveBlockedEvent struct {
	Coords    generation.RoomCoords
	Direction generation.Direction
	Sealed    bool // The wall has a door but it is sealed
}

// Type returns the event type
func (e MoveBlockedEvent) Type() ecs.EventType {
	return EventMoveBlocked
}
