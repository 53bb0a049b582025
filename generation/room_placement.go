package generation

// Rooms joined by a door share the door offset, so their top-left corners
// line up along the wall: rooms stacked north/south share X, rooms side by
// side east/west share Y.

// placeRoom tries to build the room behind origin's door on wall dir.
// fixedLength pins the corridor length; zero lets every attempt draw one.
// The door's offset is never changed. On success both rooms carry the same
// door and corridor geometry.
func (g *RoomGraph) placeRoom(origin *Room, dir Direction, fixedLength int) bool {
	door := origin.doorPtr(dir)
	if door == nil {
		return false
	}
	target := door.Target
	if _, exists := g.rooms[target]; exists {
		return false
	}

	// Same slot, same starting state
	rng := newSeededRand(MakeRoomSeed(g.worldSeed, target, SaltPlacement))
	weights := g.config.RoomTypeWeights(g.roomsSinceBoss, g.bossPlaced)
	lengthSpan := g.config.MaxCorridorLength - g.config.MinCorridorLength + 1

	for attempt := 0; attempt < g.config.MaxPlacementAttempts; attempt++ {
		roomType := PickRoomType(rng, weights)
		width, height := g.config.roomSize(rng, roomType)

		length := fixedLength
		if length == 0 {
			length = g.config.MinCorridorLength + rng.Intn(lengthSpan)
		}
		length = g.config.clampCorridorLength(length)

		wall := width
		if !dir.Vertical() {
			wall = height
		}
		if !offsetFits(wall, door.Offset, door.Width, g.config.DoorInset) {
			continue
		}

		bounds := neighborBounds(origin.layout.Bounds, dir, length, width, height)
		corridor := corridorFromDoor(origin.layout.Bounds, dir, door.Offset, door.Width, length)
		if !g.roomClear(bounds) || !g.corridorClear(corridor) {
			continue
		}

		door.CorridorLength = length
		door.Corridor = corridor
		door.TargetGenerated = true

		room := newRoom(target, roomType, biomeFor(g.worldSeed, target),
			MakeRoomSeed(g.worldSeed, target, SaltPlacement), bounds)
		room.hasEntrance = true
		room.entrance = dir.Opposite()
		room.addDoor(Doorway{
			Direction:       dir.Opposite(),
			Offset:          door.Offset,
			Width:           door.Width,
			CorridorLength:  length,
			Target:          origin.coords,
			Corridor:        corridor,
			TargetGenerated: true,
		})

		g.rooms[target] = room
		g.recordDiscovery(roomType)

		g.events.Emit(RoomDiscoveredEvent{
			Coords:     target,
			From:       origin.coords,
			Direction:  dir,
			RoomType:   roomType,
			Biome:      room.biome,
			Discovered: g.roomsDiscovered,
		})
		g.logf("Discovered %s room %v (%s) after %d attempt(s)", roomType, target, room.biome, attempt+1)
		return true
	}

	return false
}

// reconcile connects origin's door on wall dir to a room that already
// exists in the target slot. Connections must be mutual: when the neighbor
// has no open door back, origin's door is sealed too.
func (g *RoomGraph) reconcile(origin *Room, dir Direction, neighbor *Room) bool {
	back := neighbor.doorPtr(dir.Opposite())
	if back == nil || back.Sealed {
		g.seal(origin, dir, "neighbor has no door back")
		return false
	}

	door := origin.doorPtr(dir)
	door.Offset = back.Offset
	door.Width = back.Width

	if back.TargetGenerated {
		door.CorridorLength = back.CorridorLength
		door.Corridor = back.Corridor
		door.TargetGenerated = true
		return true
	}

	corridor, ok := corridorBetween(origin.layout.Bounds, neighbor.layout.Bounds, dir, door.Offset, door.Width)
	if !ok ||
		!origin.fitsDoor(dir, door.Offset, door.Width, g.config.DoorInset) ||
		!neighbor.fitsDoor(dir.Opposite(), back.Offset, back.Width, g.config.DoorInset) ||
		!g.corridorClear(corridor) {
		g.seal(origin, dir, "corridor to neighbor is blocked")
		g.seal(neighbor, dir.Opposite(), "corridor to neighbor is blocked")
		return false
	}

	length := corridor.Height
	if !dir.Vertical() {
		length = corridor.Width
	}
	for _, d := range []*Doorway{door, back} {
		d.CorridorLength = length
		d.Corridor = corridor
		d.TargetGenerated = true
	}

	g.logf("Connected %v and %v through %v", origin.coords, neighbor.coords, corridor)
	return true
}

// roomClear reports whether a room footprint keeps its distance from every
// room and stays off every corridor
func (g *RoomGraph) roomClear(bounds TileRect) bool {
	for _, room := range g.rooms {
		if Intersects(bounds, room.layout.Bounds.Expand(g.config.RoomSpacing)) {
			return false
		}
		for _, door := range room.layout.Doors {
			if Intersects(bounds, door.Corridor) {
				return false
			}
		}
	}
	return true
}

// corridorClear reports whether a corridor crosses no room and no other corridor
func (g *RoomGraph) corridorClear(corridor TileRect) bool {
	if corridor.Empty() {
		return false
	}
	for _, room := range g.rooms {
		if Intersects(corridor, room.layout.Bounds) {
			return false
		}
		for _, door := range room.layout.Doors {
			if Intersects(corridor, door.Corridor) {
				return false
			}
		}
	}
	return true
}

// neighborBounds positions a width x height room length tiles beyond the
// wall dir of origin, corner-aligned with it
func neighborBounds(origin TileRect, dir Direction, length, width, height int) TileRect {
	switch dir {
	case North:
		return TileRect{X: origin.X, Y: origin.Y - length - height, Width: width, Height: height}
	case South:
		return TileRect{X: origin.X, Y: origin.Bottom() + length, Width: width, Height: height}
	case East:
		return TileRect{X: origin.Right() + length, Y: origin.Y, Width: width, Height: height}
	default:
		return TileRect{X: origin.X - length - width, Y: origin.Y, Width: width, Height: height}
	}
}

// corridorFromDoor returns the corridor leaving origin through a door
func corridorFromDoor(origin TileRect, dir Direction, offset, width, length int) TileRect {
	switch dir {
	case North:
		return TileRect{X: origin.X + offset, Y: origin.Y - length, Width: width, Height: length}
	case South:
		return TileRect{X: origin.X + offset, Y: origin.Bottom(), Width: width, Height: length}
	case East:
		return TileRect{X: origin.Right(), Y: origin.Y + offset, Width: length, Height: width}
	default:
		return TileRect{X: origin.X - length, Y: origin.Y + offset, Width: length, Height: width}
	}
}

// corridorBetween computes the corridor joining two existing rooms through
// doors at the same offset. It fails when the doors do not line up or the
// rooms leave no gap between them.
func corridorBetween(origin, neighbor TileRect, dir Direction, offset, width int) (TileRect, bool) {
	var corridor TileRect
	switch dir {
	case North:
		if origin.X != neighbor.X {
			return TileRect{}, false
		}
		corridor = TileRect{X: origin.X + offset, Y: neighbor.Bottom(), Width: width, Height: origin.Y - neighbor.Bottom()}
	case South:
		if origin.X != neighbor.X {
			return TileRect{}, false
		}
		corridor = TileRect{X: origin.X + offset, Y: origin.Bottom(), Width: width, Height: neighbor.Y - origin.Bottom()}
	case East:
		if origin.Y != neighbor.Y {
			return TileRect{}, false
		}
		corridor = TileRect{X: origin.Right(), Y: origin.Y + offset, Width: neighbor.X - origin.Right(), Height: width}
	default:
		if origin.Y != neighbor.Y {
			return TileRect{}, false
		}
		corridor = TileRect{X: neighbor.Right(), Y: origin.Y + offset, Width: origin.X - neighbor.Right(), Height: width}
	}

	if corridor.Empty() {
		return TileRect{}, false
	}
	return corridor, true
}
