package generation

import (
	"fmt"
	"sort"

	"ebiten-rooms/ecs"
)

// OriginCoords is the grid slot of the starting room
var OriginCoords = RoomCoords{X: 0, Y: 0}

// RoomGraph owns every discovered room and is the only place where rooms,
// doors and corridors are created. It is driven from the game loop and is
// not safe for concurrent use.
type RoomGraph struct {
	config    GraphConfig
	worldSeed uint64
	rooms     map[RoomCoords]*Room
	current   RoomCoords

	roomsDiscovered int
	roomsSinceBoss  int
	bossPlaced      bool

	events     *ecs.EventManager
	logMessage func(string) // Function for logging messages
}

// NewRoomGraph creates a graph with the default configuration
func NewRoomGraph(worldSeed uint64) *RoomGraph {
	return NewRoomGraphWithConfig(worldSeed, DefaultGraphConfig(), nil, nil)
}

// NewRoomGraphWithConfig creates the origin room and generates the horizon
// around it. events and logFunc may be nil.
func NewRoomGraphWithConfig(worldSeed uint64, config GraphConfig, events *ecs.EventManager, logFunc func(string)) *RoomGraph {
	g := &RoomGraph{
		config:     config.normalize(),
		worldSeed:  worldSeed,
		rooms:      make(map[RoomCoords]*Room),
		current:    OriginCoords,
		events:     events,
		logMessage: logFunc,
	}

	g.createOrigin()
	g.EnsureNeighborsGenerated(OriginCoords, g.config.HorizonRadius)

	return g
}

// createOrigin places the starting room centred on tile (0,0) with a
// single exit to the north
func (g *RoomGraph) createOrigin() {
	size := g.config.OriginRoomSize
	bounds := TileRect{X: -size / 2, Y: -size / 2, Width: size, Height: size}

	origin := newRoom(OriginCoords, RoomNormal, biomeFor(g.worldSeed, OriginCoords),
		MakeRoomSeed(g.worldSeed, OriginCoords, SaltPlacement), bounds)
	origin.visited = true
	origin.doorsInit = true
	origin.addDoor(Doorway{
		Direction:      North,
		Offset:         (size - g.config.DoorWidth) / 2,
		Width:          g.config.DoorWidth,
		CorridorLength: (g.config.MinCorridorLength + g.config.MaxCorridorLength) / 2,
		Target:         OriginCoords.Neighbor(North),
	})

	g.rooms[OriginCoords] = origin
	g.roomsDiscovered = 1

	g.logf("Origin room %v created with seed %d", bounds, g.worldSeed)
}

// WorldSeed returns the seed the graph was built from
func (g *RoomGraph) WorldSeed() uint64 { return g.worldSeed }

// Config returns the effective generator settings
func (g *RoomGraph) Config() GraphConfig { return g.config }

// RoomsDiscovered returns how many rooms exist, origin included
func (g *RoomGraph) RoomsDiscovered() int { return g.roomsDiscovered }

// RoomsSinceBoss returns how many rooms were created since the last boss room
func (g *RoomGraph) RoomsSinceBoss() int { return g.roomsSinceBoss }

// BossPlaced reports whether a boss room has been generated
func (g *RoomGraph) BossPlaced() bool { return g.bossPlaced }

// CurrentCoords returns the slot of the room the player is in
func (g *RoomGraph) CurrentCoords() RoomCoords { return g.current }

// CurrentRoom returns the room the player is in
func (g *RoomGraph) CurrentRoom() *Room {
	return g.Room(g.current)
}

// Room returns the room at coords. Asking for a slot that has no room is a
// programmer error; use TryGetRoom when existence is not known.
func (g *RoomGraph) Room(coords RoomCoords) *Room {
	room, exists := g.rooms[coords]
	if !exists {
		panic(fmt.Sprintf("generation: no room at %v", coords))
	}
	return room
}

// TryGetRoom returns the room at coords if one has been generated
func (g *RoomGraph) TryGetRoom(coords RoomCoords) (*Room, bool) {
	room, exists := g.rooms[coords]
	return room, exists
}

// RoomCount returns the number of discovered rooms
func (g *RoomGraph) RoomCount() int {
	return len(g.rooms)
}

// Rooms returns every discovered room ordered by row, then column
func (g *RoomGraph) Rooms() []*Room {
	rooms := make([]*Room, 0, len(g.rooms))
	for _, room := range g.rooms {
		rooms = append(rooms, room)
	}
	sort.Slice(rooms, func(i, j int) bool {
		a, b := rooms[i].coords, rooms[j].coords
		if a.Y != b.Y {
			return a.Y < b.Y
		}
		return a.X < b.X
	})
	return rooms
}

// MoveToNeighbor crosses the current room's door on the given wall.
// It returns false, leaving the graph untouched apart from sealing, when
// there is no door, the door is sealed or the room behind it cannot be built.
func (g *RoomGraph) MoveToNeighbor(dir Direction) bool {
	from := g.current
	room := g.rooms[from]

	door, exists := room.Door(dir)
	if !exists || door.Sealed {
		return false
	}
	if !door.TargetGenerated && !g.TryGenerateDoorTarget(from, dir) {
		return false
	}

	target := g.rooms[door.Target]
	firstTime := !target.visited
	target.visited = true
	g.current = target.coords

	g.events.Emit(RoomEnteredEvent{
		From:      from,
		To:        target.coords,
		Direction: dir,
		FirstTime: firstTime,
	})
	g.logf("Entered %s room %v through the %s door", target.roomType, target.coords, dir)

	g.EnsureNeighborsGenerated(target.coords, g.config.HorizonRadius)
	return true
}

// TryGenerateDoorTarget makes sure the room behind the door on the given
// wall exists and that the corridor between the two is final. A door that
// cannot be connected is sealed for good.
func (g *RoomGraph) TryGenerateDoorTarget(coords RoomCoords, dir Direction) bool {
	room, exists := g.rooms[coords]
	if !exists {
		return false
	}
	door := room.doorPtr(dir)
	if door == nil || door.Sealed {
		return false
	}
	if door.TargetGenerated {
		return true
	}

	if neighbor, exists := g.rooms[door.Target]; exists {
		return g.reconcile(room, dir, neighbor)
	}

	if g.placeRoom(room, dir, 0) {
		return true
	}

	g.seal(room, dir, "no free space for a room")
	return false
}

// recordDiscovery updates the counters that drive room type weighting
func (g *RoomGraph) recordDiscovery(roomType RoomType) {
	g.roomsDiscovered++
	if roomType == RoomBoss {
		g.bossPlaced = true
		g.roomsSinceBoss = 0
		return
	}
	g.roomsSinceBoss++
}

// seal permanently closes a door
func (g *RoomGraph) seal(room *Room, dir Direction, reason string) {
	door := room.doorPtr(dir)
	if door == nil || door.Sealed {
		return
	}
	door.Sealed = true
	door.TargetGenerated = false
	door.Corridor = TileRect{}

	g.events.Emit(DoorSealedEvent{Coords: room.coords, Direction: dir, Reason: reason})
	g.logf("Sealed %s door of %v: %s", dir, room.coords, reason)
}

func (g *RoomGraph) logf(format string, args ...interface{}) {
	if g.logMessage != nil {
		g.logMessage(fmt.Sprintf(format, args...))
	}
}
