package generation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ebiten-rooms/ecs"
)

// newBareGraph returns a graph with no rooms so tests can lay out the
// exact situation they need
func newBareGraph(seed uint64) *RoomGraph {
	return &RoomGraph{
		config:    DefaultGraphConfig().normalize(),
		worldSeed: seed,
		rooms:     make(map[RoomCoords]*Room),
	}
}

func (g *RoomGraph) putRoom(coords RoomCoords, roomType RoomType, bounds TileRect) *Room {
	room := newRoom(coords, roomType, BiomeCatacombs, MakeRoomSeed(g.worldSeed, coords, SaltPlacement), bounds)
	g.rooms[coords] = room
	return room
}

func TestPlaceRoomBehindDoor(t *testing.T) {
	g := newBareGraph(3)
	origin := g.putRoom(OriginCoords, RoomNormal, TileRect{X: 0, Y: 0, Width: 12, Height: 12})
	origin.addDoor(Doorway{Direction: North, Offset: 4, Width: 3, Target: OriginCoords.Neighbor(North)})

	require.True(t, g.TryGenerateDoorTarget(OriginCoords, North))

	room, exists := g.TryGetRoom(RoomCoords{X: 0, Y: -1})
	require.True(t, exists)
	require.Len(t, room.Doors(), 1, "a new room starts with its entrance only")

	entrance, ok := room.EntranceDirection()
	require.True(t, ok)
	assert.Equal(t, South, entrance)
	assert.False(t, room.DoorsInitialized())
	assert.False(t, room.Visited())

	out, _ := origin.Door(North)
	back, _ := room.Door(South)
	assert.True(t, out.TargetGenerated)
	assert.True(t, back.TargetGenerated)
	assert.Equal(t, out.Corridor, back.Corridor)
	assert.Equal(t, out.Offset, back.Offset)
	assert.Equal(t, out.CorridorLength, back.CorridorLength)
	assert.Equal(t, OriginCoords, back.Target)

	bounds := room.TileBounds()
	assert.Equal(t, 0, bounds.X, "rooms joined north/south share their left edge")
	assert.Equal(t, 0-out.CorridorLength, bounds.Bottom())
	assert.Equal(t, TileRect{X: 4, Y: -out.CorridorLength, Width: 3, Height: out.CorridorLength}, out.Corridor)
	assert.GreaterOrEqual(t, out.CorridorLength, g.config.MinCorridorLength)
	assert.LessOrEqual(t, out.CorridorLength, g.config.MaxCorridorLength)

	assert.Equal(t, 1, g.RoomsDiscovered(), "only the placed room is counted")
}

func TestPlaceRoomIsSeededByTarget(t *testing.T) {
	build := func() TileRect {
		g := newBareGraph(77)
		origin := g.putRoom(OriginCoords, RoomNormal, TileRect{X: 0, Y: 0, Width: 12, Height: 12})
		origin.addDoor(Doorway{Direction: East, Offset: 2, Width: 3, Target: OriginCoords.Neighbor(East)})
		require.True(t, g.TryGenerateDoorTarget(OriginCoords, East))
		return g.Room(RoomCoords{X: 1, Y: 0}).TileBounds()
	}

	assert.Equal(t, build(), build())
}

func TestPlaceRoomSealsWhenBlocked(t *testing.T) {
	events := ecs.NewEventManager()
	var sealed []DoorSealedEvent
	events.Subscribe(EventDoorSealed, func(e ecs.Event) {
		sealed = append(sealed, e.(DoorSealedEvent))
	})

	g := newBareGraph(3)
	g.events = events
	origin := g.putRoom(OriginCoords, RoomNormal, TileRect{X: 0, Y: 0, Width: 12, Height: 12})
	origin.addDoor(Doorway{Direction: North, Offset: 4, Width: 3, Target: OriginCoords.Neighbor(North)})

	// A huge hall right above the origin leaves no room for anything
	g.putRoom(RoomCoords{X: 9, Y: 9}, RoomNormal, TileRect{X: -60, Y: -80, Width: 140, Height: 79})

	assert.False(t, g.TryGenerateDoorTarget(OriginCoords, North))

	door, _ := origin.Door(North)
	assert.True(t, door.Sealed)
	assert.False(t, door.TargetGenerated)
	assert.True(t, door.Corridor.Empty())
	_, exists := g.TryGetRoom(RoomCoords{X: 0, Y: -1})
	assert.False(t, exists)

	require.Len(t, sealed, 1)
	assert.Equal(t, OriginCoords, sealed[0].Coords)
	assert.Equal(t, North, sealed[0].Direction)

	// Sealing is final
	assert.False(t, g.TryGenerateDoorTarget(OriginCoords, North))
	assert.Len(t, sealed, 1)
}

func TestReconcileWithoutDoorBackSeals(t *testing.T) {
	g := newBareGraph(1)
	a := g.putRoom(OriginCoords, RoomNormal, TileRect{X: 0, Y: 0, Width: 10, Height: 10})
	b := g.putRoom(RoomCoords{X: 0, Y: -1}, RoomNormal, TileRect{X: 0, Y: -15, Width: 10, Height: 10})
	a.addDoor(Doorway{Direction: North, Offset: 3, Width: 3, Target: b.Coords()})

	assert.False(t, g.TryGenerateDoorTarget(a.Coords(), North))
	door, _ := a.Door(North)
	assert.True(t, door.Sealed)
	assert.Empty(t, b.Doors(), "the neighbor is left alone")
}

func TestReconcileWithSealedDoorBackSeals(t *testing.T) {
	g := newBareGraph(1)
	a := g.putRoom(OriginCoords, RoomNormal, TileRect{X: 0, Y: 0, Width: 10, Height: 10})
	b := g.putRoom(RoomCoords{X: 0, Y: -1}, RoomNormal, TileRect{X: 0, Y: -15, Width: 10, Height: 10})
	a.addDoor(Doorway{Direction: North, Offset: 3, Width: 3, Target: b.Coords()})
	b.addDoor(Doorway{Direction: South, Offset: 3, Width: 3, Target: a.Coords(), Sealed: true})

	assert.False(t, g.TryGenerateDoorTarget(a.Coords(), North))
	door, _ := a.Door(North)
	assert.True(t, door.Sealed)
}

func TestReconcileComputesSharedCorridor(t *testing.T) {
	g := newBareGraph(1)
	a := g.putRoom(OriginCoords, RoomNormal, TileRect{X: 0, Y: 0, Width: 10, Height: 10})
	b := g.putRoom(RoomCoords{X: 0, Y: -1}, RoomNormal, TileRect{X: 0, Y: -15, Width: 10, Height: 10})
	a.addDoor(Doorway{Direction: North, Offset: 1, Width: 3, Target: b.Coords()})
	b.addDoor(Doorway{Direction: South, Offset: 5, Width: 3, Target: a.Coords()})

	require.True(t, g.TryGenerateDoorTarget(a.Coords(), North))

	want := TileRect{X: 5, Y: -5, Width: 3, Height: 5}
	out, _ := a.Door(North)
	back, _ := b.Door(South)
	assert.Equal(t, 5, out.Offset, "offset is copied from the neighbor")
	for _, door := range []Doorway{out, back} {
		assert.Equal(t, want, door.Corridor)
		assert.Equal(t, 5, door.CorridorLength)
		assert.True(t, door.TargetGenerated)
		assert.False(t, door.Sealed)
	}
}

func TestReconcileMirrorsFinishedCorridor(t *testing.T) {
	g := newBareGraph(1)
	a := g.putRoom(OriginCoords, RoomNormal, TileRect{X: 0, Y: 0, Width: 10, Height: 10})
	b := g.putRoom(RoomCoords{X: 1, Y: 0}, RoomNormal, TileRect{X: 14, Y: 0, Width: 10, Height: 10})
	corridor := TileRect{X: 10, Y: 2, Width: 4, Height: 3}
	a.addDoor(Doorway{Direction: East, Width: 3, Target: b.Coords()})
	b.addDoor(Doorway{Direction: West, Offset: 2, Width: 3, CorridorLength: 4, Target: a.Coords(),
		Corridor: corridor, TargetGenerated: true})

	require.True(t, g.TryGenerateDoorTarget(a.Coords(), East))
	out, _ := a.Door(East)
	assert.Equal(t, corridor, out.Corridor)
	assert.Equal(t, 2, out.Offset)
	assert.Equal(t, 4, out.CorridorLength)
	assert.True(t, out.TargetGenerated)
}

func TestReconcileMisalignedRoomsSealsBothSides(t *testing.T) {
	g := newBareGraph(1)
	a := g.putRoom(OriginCoords, RoomNormal, TileRect{X: 0, Y: 0, Width: 10, Height: 10})
	b := g.putRoom(RoomCoords{X: 1, Y: 0}, RoomNormal, TileRect{X: 16, Y: 4, Width: 10, Height: 10})
	a.addDoor(Doorway{Direction: East, Offset: 2, Width: 3, Target: b.Coords()})
	b.addDoor(Doorway{Direction: West, Offset: 2, Width: 3, Target: a.Coords()})

	assert.False(t, g.TryGenerateDoorTarget(a.Coords(), East))
	out, _ := a.Door(East)
	back, _ := b.Door(West)
	assert.True(t, out.Sealed)
	assert.True(t, back.Sealed)
}

func TestReconcileTouchingRoomsSeal(t *testing.T) {
	g := newBareGraph(1)
	a := g.putRoom(OriginCoords, RoomNormal, TileRect{X: 0, Y: 0, Width: 10, Height: 10})
	b := g.putRoom(RoomCoords{X: 0, Y: 1}, RoomNormal, TileRect{X: 0, Y: 10, Width: 10, Height: 10})
	a.addDoor(Doorway{Direction: South, Offset: 2, Width: 3, Target: b.Coords()})
	b.addDoor(Doorway{Direction: North, Offset: 2, Width: 3, Target: a.Coords()})

	assert.False(t, g.TryGenerateDoorTarget(a.Coords(), South), "no gap means no corridor")
}

func TestCorridorHelpers(t *testing.T) {
	origin := TileRect{X: 0, Y: 0, Width: 10, Height: 8}

	assert.Equal(t, TileRect{X: 2, Y: -4, Width: 3, Height: 4}, corridorFromDoor(origin, North, 2, 3, 4))
	assert.Equal(t, TileRect{X: 2, Y: 8, Width: 3, Height: 4}, corridorFromDoor(origin, South, 2, 3, 4))
	assert.Equal(t, TileRect{X: 10, Y: 1, Width: 4, Height: 3}, corridorFromDoor(origin, East, 1, 3, 4))
	assert.Equal(t, TileRect{X: -4, Y: 1, Width: 4, Height: 3}, corridorFromDoor(origin, West, 1, 3, 4))

	assert.Equal(t, TileRect{X: 0, Y: -10, Width: 6, Height: 6}, neighborBounds(origin, North, 4, 6, 6))
	assert.Equal(t, TileRect{X: 0, Y: 12, Width: 6, Height: 6}, neighborBounds(origin, South, 4, 6, 6))
	assert.Equal(t, TileRect{X: 14, Y: 0, Width: 6, Height: 6}, neighborBounds(origin, East, 4, 6, 6))
	assert.Equal(t, TileRect{X: -10, Y: 0, Width: 6, Height: 6}, neighborBounds(origin, West, 4, 6, 6))

	for _, dir := range AllDirections {
		neighbor := neighborBounds(origin, dir, 5, 10, 8)
		fromDoor := corridorFromDoor(origin, dir, 2, 3, 5)
		between, ok := corridorBetween(origin, neighbor, dir, 2, 3)
		require.True(t, ok, "%s", dir)
		assert.Equal(t, fromDoor, between, "%s", dir)
		assert.False(t, Intersects(fromDoor, origin))
		assert.False(t, Intersects(fromDoor, neighbor))
	}
}
