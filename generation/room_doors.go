package generation

import (
	"math"
	"math/rand"
	"sort"
)

// ConfigureDoors runs the one-time wall-filling pass of a room: doors that
// neighbors already point at are mirrored, then new doors are carved until
// the room has TargetOpenDoors open doors or every wall has been tried.
// Boss rooms never get extra doors.
func (g *RoomGraph) ConfigureDoors(coords RoomCoords) {
	room, exists := g.rooms[coords]
	if !exists || room.doorsInit {
		return
	}
	room.doorsInit = true

	entrance, hasEntrance := room.EntranceDirection()

	// Mirror doors that existing neighbors already point at us
	for _, dir := range AllDirections {
		if hasEntrance && dir == entrance {
			continue
		}
		if room.doorPtr(dir) != nil {
			continue
		}
		neighbor, exists := g.rooms[coords.Neighbor(dir)]
		if !exists {
			continue
		}
		back := neighbor.doorPtr(dir.Opposite())
		if back == nil || back.Sealed {
			continue
		}
		room.addDoor(Doorway{
			Direction:      dir,
			Offset:         back.Offset,
			Width:          back.Width,
			CorridorLength: back.CorridorLength,
			Target:         neighbor.coords,
		})
		g.TryGenerateDoorTarget(coords, dir)
	}

	if room.roomType == RoomBoss {
		return
	}

	rng := newSeededRand(MakeRoomSeed(g.worldSeed, coords, SaltDoors))
	blend := rng.Float64()
	anchor := g.anchorOffset(room)

	dirs := AllDirections
	rng.Shuffle(len(dirs), func(i, j int) {
		dirs[i], dirs[j] = dirs[j], dirs[i]
	})

	for _, dir := range dirs {
		if room.OpenDoorCount() >= g.config.TargetOpenDoors {
			break
		}
		if room.doorPtr(dir) != nil {
			continue
		}
		// Any neighbor left here has no open door back to us
		if _, exists := g.rooms[coords.Neighbor(dir)]; exists {
			continue
		}

		offsets := g.rankOffsets(rng, room.layout.wallLength(dir), anchor, blend)
		if len(offsets) == 0 {
			continue
		}
		lengths := g.rankLengths(rng)

		g.carveDoor(room, dir, offsets, lengths)
	}
}

// carveDoor adds a door on wall dir and tries every offset and corridor
// length combination until a room fits behind it. The door is sealed when
// none does.
func (g *RoomGraph) carveDoor(room *Room, dir Direction, offsets, lengths []int) bool {
	room.addDoor(Doorway{
		Direction: dir,
		Width:     g.config.DoorWidth,
		Target:    room.coords.Neighbor(dir),
	})

	for _, offset := range offsets {
		for _, length := range lengths {
			door := room.doorPtr(dir)
			door.Offset = offset
			door.CorridorLength = length
			if g.placeRoom(room, dir, length) {
				return true
			}
		}
	}

	g.seal(room, dir, "no room fits behind the wall")
	return false
}

// anchorOffset is the offset new doors gravitate to: the entrance door's,
// or the first door's for rooms without an entrance
func (g *RoomGraph) anchorOffset(room *Room) int {
	if entrance, ok := room.EntranceDirection(); ok {
		if door := room.doorPtr(entrance); door != nil {
			return door.Offset
		}
	}
	if len(room.layout.Doors) > 0 {
		return room.layout.Doors[0].Offset
	}
	return (room.layout.WidthTiles - g.config.DoorWidth) / 2
}

// rankOffsets orders every valid door offset on a wall. Each offset is
// scored by a blend of its distance from the anchor and random jitter;
// blend 1 means pure distance, blend 0 pure jitter.
func (g *RoomGraph) rankOffsets(rng *rand.Rand, wallLength, anchor int, blend float64) []int {
	lo := g.config.DoorInset
	hi := wallLength - g.config.DoorWidth - g.config.DoorInset
	if hi < lo {
		return nil
	}

	if anchor < lo {
		anchor = lo
	}
	if anchor > hi {
		anchor = hi
	}
	span := float64(hi - lo)
	if span == 0 {
		span = 1
	}

	type scored struct {
		offset int
		score  float64
	}
	candidates := make([]scored, 0, hi-lo+1)
	for offset := lo; offset <= hi; offset++ {
		distance := math.Abs(float64(offset-anchor)) / span
		candidates = append(candidates, scored{
			offset: offset,
			score:  blend*distance + (1-blend)*rng.Float64(),
		})
	}
	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].score < candidates[j].score
	})

	offsets := make([]int, len(candidates))
	for i, c := range candidates {
		offsets[i] = c.offset
	}
	return offsets
}

// rankLengths orders corridor lengths from longest to shortest, with a
// little jitter so neighboring lengths sometimes swap places
func (g *RoomGraph) rankLengths(rng *rand.Rand) []int {
	lengths := g.config.corridorLengths()
	scores := make(map[int]float64, len(lengths))
	for _, l := range lengths {
		scores[l] = float64(l) + rng.Float64()*g.config.LengthJitter
	}
	sort.SliceStable(lengths, func(i, j int) bool {
		return scores[lengths[i]] > scores[lengths[j]]
	})
	return lengths
}
