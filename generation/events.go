package generation

import "ebiten-rooms/ecs"

// Room graph event types
const (
	EventRoomDiscovered ecs.EventType = "room_discovered"
	EventDoorSealed     ecs.EventType = "door_sealed"
	EventRoomEntered    ecs.EventType = "room_entered"
)

// RoomDiscoveredEvent is emitted when a new room is created behind a door
type RoomDiscoveredEvent struct {
	Coords     RoomCoords
	From       RoomCoords
	Direction  Direction // Wall of From the room was carved through
	RoomType   RoomType
	Biome      Biome
	Discovered int // Rooms discovered so far, origin included
}

// Type returns the event type
func (e RoomDiscoveredEvent) Type() ecs.EventType {
	return EventRoomDiscovered
}

// DoorSealedEvent is emitted when a door is permanently closed
type DoorSealedEvent struct {
	Coords    RoomCoords
	Direction Direction
	Reason    string
}

// Type returns the event type
func (e DoorSealedEvent) Type() ecs.EventType {
	return EventDoorSealed
}

// RoomEnteredEvent is emitted when the current room changes
type RoomEnteredEvent struct {
	From      RoomCoords
	To        RoomCoords
	Direction Direction
	FirstTime bool
}

// Type returns the event type
func (e RoomEnteredEvent) Type() ecs.EventType {
	return EventRoomEntered
}
