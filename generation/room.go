package generation

// Doorway is an opening in one wall of a room
type Doorway struct {
	Direction       Direction
	Offset          int        // Tiles along the wall from the room's top-left corner
	Width           int        // Door width in tiles
	CorridorLength  int        // Tiles of corridor between the two rooms
	Target          RoomCoords // Grid slot the door leads to
	Corridor        TileRect   // Shared corridor footprint, empty until finalized
	TargetGenerated bool       // Neighbor exists and the corridor is final
	Sealed          bool       // No passable connection, permanently
}

// Open reports whether the door can still lead somewhere
func (d Doorway) Open() bool {
	return !d.Sealed
}

// Span returns the tiles the door occupies on the wall of a room with the
// given bounds, as a one-tile-thick rectangle just outside the wall
func (d Doorway) Span(bounds TileRect) TileRect {
	switch d.Direction {
	case North:
		return TileRect{X: bounds.X + d.Offset, Y: bounds.Y - 1, Width: d.Width, Height: 1}
	case South:
		return TileRect{X: bounds.X + d.Offset, Y: bounds.Bottom(), Width: d.Width, Height: 1}
	case East:
		return TileRect{X: bounds.Right(), Y: bounds.Y + d.Offset, Width: 1, Height: d.Width}
	default:
		return TileRect{X: bounds.X - 1, Y: bounds.Y + d.Offset, Width: 1, Height: d.Width}
	}
}

// RoomLayout holds the mutable geometry of a room
type RoomLayout struct {
	WidthTiles  int
	HeightTiles int
	Bounds      TileRect
	Doors       []Doorway
}

// wallLength returns the number of tiles along the wall facing dir
func (l RoomLayout) wallLength(dir Direction) int {
	if dir.Vertical() {
		return l.WidthTiles
	}
	return l.HeightTiles
}

// Room is a node of the room graph. Its coordinates and seed data never
// change; only the graph manager grows its door list and flips its flags.
type Room struct {
	coords    RoomCoords
	roomType  RoomType
	biome     Biome
	seed      uint64
	layout    RoomLayout
	visited   bool
	doorsInit bool

	hasEntrance bool
	entrance    Direction

	chest *ChestState
	shop  *ShopState
	forge *ForgeState
}

func newRoom(coords RoomCoords, roomType RoomType, biome Biome, seed uint64, bounds TileRect) *Room {
	return &Room{
		coords:   coords,
		roomType: roomType,
		biome:    biome,
		seed:     seed,
		layout: RoomLayout{
			WidthTiles:  bounds.Width,
			HeightTiles: bounds.Height,
			Bounds:      bounds,
		},
	}
}

// Coords returns the room's grid slot
func (r *Room) Coords() RoomCoords { return r.coords }

// Type returns the room type
func (r *Room) Type() RoomType { return r.roomType }

// Biome returns the room biome
func (r *Room) Biome() Biome { return r.biome }

// Seed returns the deterministic seed of the room's slot
func (r *Room) Seed() uint64 { return r.seed }

// TileBounds returns the room footprint in tiles
func (r *Room) TileBounds() TileRect { return r.layout.Bounds }

// Visited reports whether the player has entered the room
func (r *Room) Visited() bool { return r.visited }

// DoorsInitialized reports whether the wall-filling pass has run
func (r *Room) DoorsInitialized() bool { return r.doorsInit }

// EntranceDirection returns the wall the room was first reached through.
// The origin room has none.
func (r *Room) EntranceDirection() (Direction, bool) {
	return r.entrance, r.hasEntrance
}

// Layout returns a copy of the room's layout
func (r *Room) Layout() RoomLayout {
	layout := r.layout
	layout.Doors = r.Doors()
	return layout
}

// Doors returns a copy of the door list in insertion order
func (r *Room) Doors() []Doorway {
	doors := make([]Doorway, len(r.layout.Doors))
	copy(doors, r.layout.Doors)
	return doors
}

// Door returns the door on the given wall, if any
func (r *Room) Door(dir Direction) (Doorway, bool) {
	if door := r.doorPtr(dir); door != nil {
		return *door, true
	}
	return Doorway{}, false
}

// OpenDoorCount returns the number of doors that are not sealed
func (r *Room) OpenDoorCount() int {
	count := 0
	for _, door := range r.layout.Doors {
		if door.Open() {
			count++
		}
	}
	return count
}

// doorPtr gives the graph manager in-place access to a door
func (r *Room) doorPtr(dir Direction) *Doorway {
	for i := range r.layout.Doors {
		if r.layout.Doors[i].Direction == dir {
			return &r.layout.Doors[i]
		}
	}
	return nil
}

// addDoor appends a door, or returns the existing one on that wall
func (r *Room) addDoor(door Doorway) *Doorway {
	if existing := r.doorPtr(door.Direction); existing != nil {
		return existing
	}
	r.layout.Doors = append(r.layout.Doors, door)
	return &r.layout.Doors[len(r.layout.Doors)-1]
}

// fitsDoor reports whether a door of the given width at offset leaves at
// least inset wall tiles on both sides
func (r *Room) fitsDoor(dir Direction, offset, width, inset int) bool {
	return offsetFits(r.layout.wallLength(dir), offset, width, inset)
}

func offsetFits(wallLength, offset, width, inset int) bool {
	return offset >= inset && offset+width+inset <= wallLength
}
