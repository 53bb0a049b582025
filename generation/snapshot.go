package generation

import (
	"encoding/json"
	"fmt"

	"github.com/invopop/jsonschema"
)

// RectSnapshot is the JSON form of a TileRect
type RectSnapshot struct {
	X      int `json:"x"`
	Y      int `json:"y"`
	Width  int `json:"width"`
	Height int `json:"height"`
}

// CoordsSnapshot is the JSON form of a RoomCoords
type CoordsSnapshot struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// DoorSnapshot is the JSON form of a Doorway
type DoorSnapshot struct {
	Direction       string         `json:"direction" jsonschema:"enum=north,enum=south,enum=east,enum=west"`
	Offset          int            `json:"offset"`
	Width           int            `json:"width"`
	CorridorLength  int            `json:"corridor_length"`
	Target          CoordsSnapshot `json:"target"`
	Corridor        RectSnapshot   `json:"corridor"`
	TargetGenerated bool           `json:"target_generated"`
	Sealed          bool           `json:"sealed"`
}

// RoomSnapshot is the read-only view of a room handed to tooling
type RoomSnapshot struct {
	Coords           CoordsSnapshot `json:"coords"`
	Type             string         `json:"type" jsonschema:"enum=normal,enum=forge,enum=shop,enum=chest,enum=boss"`
	Biome            string         `json:"biome"`
	Seed             uint64         `json:"seed"`
	Bounds           RectSnapshot   `json:"bounds"`
	Visited          bool           `json:"visited"`
	DoorsInitialized bool           `json:"doors_initialized"`
	Entrance         string         `json:"entrance,omitempty"`
	Doors            []DoorSnapshot `json:"doors"`
}

// GraphSnapshot captures the whole discovered graph
type GraphSnapshot struct {
	WorldSeed       uint64         `json:"world_seed"`
	Current         CoordsSnapshot `json:"current"`
	RoomsDiscovered int            `json:"rooms_discovered"`
	BossPlaced      bool           `json:"boss_placed"`
	Rooms           []RoomSnapshot `json:"rooms"`
}

func rectSnapshot(r TileRect) RectSnapshot {
	return RectSnapshot{X: r.X, Y: r.Y, Width: r.Width, Height: r.Height}
}

func coordsSnapshot(c RoomCoords) CoordsSnapshot {
	return CoordsSnapshot{X: c.X, Y: c.Y}
}

// Snapshot copies the graph into its JSON form. Rooms are ordered as in Rooms().
func (g *RoomGraph) Snapshot() GraphSnapshot {
	snapshot := GraphSnapshot{
		WorldSeed:       g.worldSeed,
		Current:         coordsSnapshot(g.current),
		RoomsDiscovered: g.roomsDiscovered,
		BossPlaced:      g.bossPlaced,
	}

	for _, room := range g.Rooms() {
		rs := RoomSnapshot{
			Coords:           coordsSnapshot(room.coords),
			Type:             room.roomType.String(),
			Biome:            room.biome.String(),
			Seed:             room.seed,
			Bounds:           rectSnapshot(room.layout.Bounds),
			Visited:          room.visited,
			DoorsInitialized: room.doorsInit,
			Doors:            make([]DoorSnapshot, 0, len(room.layout.Doors)),
		}
		if entrance, ok := room.EntranceDirection(); ok {
			rs.Entrance = entrance.String()
		}
		for _, door := range room.layout.Doors {
			rs.Doors = append(rs.Doors, DoorSnapshot{
				Direction:       door.Direction.String(),
				Offset:          door.Offset,
				Width:           door.Width,
				CorridorLength:  door.CorridorLength,
				Target:          coordsSnapshot(door.Target),
				Corridor:        rectSnapshot(door.Corridor),
				TargetGenerated: door.TargetGenerated,
				Sealed:          door.Sealed,
			})
		}
		snapshot.Rooms = append(snapshot.Rooms, rs)
	}

	return snapshot
}

// MarshalSnapshot renders the graph snapshot as indented JSON
func (g *RoomGraph) MarshalSnapshot() ([]byte, error) {
	data, err := json.MarshalIndent(g.Snapshot(), "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal room graph snapshot: %w", err)
	}
	return data, nil
}

// SnapshotSchema returns the JSON schema describing GraphSnapshot
func SnapshotSchema() ([]byte, error) {
	reflector := jsonschema.Reflector{
		AllowAdditionalProperties: false,
	}
	schema := reflector.Reflect(new(GraphSnapshot))
	schema.Title = "Room graph snapshot"
	schema.Description = "Rooms, doors and corridors discovered for one world seed"
	data, err := json.MarshalIndent(schema, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal snapshot schema: %w", err)
	}
	return data, nil
}
