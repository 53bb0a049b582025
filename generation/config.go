package generation

// GraphConfig defines the tunables of the room graph generator
type GraphConfig struct {
	HorizonRadius        int // Door hops around the current room that must be generated
	MaxPlacementAttempts int // Attempts per door before it is sealed
	DoorWidth            int // Width of every door in tiles
	DoorInset            int // Minimum wall tiles between a door and a corner
	RoomSpacing          int // Minimum gap kept between two rooms
	MinCorridorLength    int // Shortest corridor in tiles
	MaxCorridorLength    int // Longest corridor in tiles
	LengthJitter         float64
	TargetOpenDoors      int // Open doors the wall-filling pass aims for
	OriginRoomSize       int // Width and height of the starting room

	NormalRoomMinSize  int
	NormalRoomMaxSize  int
	SpecialRoomSize    int // Shop, forge and chest rooms
	BossRoomSize       int
	ForgeWeight        int
	ShopWeight         int
	ChestWeight        int
	NormalBossWeight   int // Share split between normal and boss rooms
	BossRampStart      int // Rooms without a boss before the boss weight starts growing
	BossRampStep       int // Boss weight added per further room
	BossRampMax        int
}

// DefaultGraphConfig returns the generator settings used by the game
func DefaultGraphConfig() GraphConfig {
	return GraphConfig{
		HorizonRadius:        2,
		MaxPlacementAttempts: 12,
		DoorWidth:            3,
		DoorInset:            1,
		RoomSpacing:          2,
		MinCorridorLength:    3,
		MaxCorridorLength:    8,
		LengthJitter:         1.5,
		TargetOpenDoors:      4,
		OriginRoomSize:       12,

		NormalRoomMinSize: 10,
		NormalRoomMaxSize: 20,
		SpecialRoomSize:   8,
		BossRoomSize:      12,
		ForgeWeight:       5,
		ShopWeight:        5,
		ChestWeight:       10,
		NormalBossWeight:  80,
		BossRampStart:     6,
		BossRampStep:      4,
		BossRampMax:       40,
	}
}

// normalize fills in values a caller left at zero and clamps the rest
// into a range the placement code can work with
func (c GraphConfig) normalize() GraphConfig {
	def := DefaultGraphConfig()
	if c.MaxPlacementAttempts <= 0 {
		c.MaxPlacementAttempts = def.MaxPlacementAttempts
	}
	if c.DoorWidth <= 0 {
		c.DoorWidth = def.DoorWidth
	}
	if c.DoorInset < 0 {
		c.DoorInset = 0
	}
	if c.RoomSpacing < 0 {
		c.RoomSpacing = 0
	}
	if c.MinCorridorLength <= c.RoomSpacing {
		c.MinCorridorLength = c.RoomSpacing + 1
	}
	if c.MaxCorridorLength < c.MinCorridorLength {
		c.MaxCorridorLength = c.MinCorridorLength
	}
	if c.TargetOpenDoors <= 0 || c.TargetOpenDoors > len(AllDirections) {
		c.TargetOpenDoors = len(AllDirections)
	}
	minWall := c.DoorWidth + 2*c.DoorInset
	if c.OriginRoomSize < minWall {
		c.OriginRoomSize = minWall
	}
	if c.NormalRoomMinSize <= 0 {
		c.NormalRoomMinSize = def.NormalRoomMinSize
	}
	if c.NormalRoomMaxSize < c.NormalRoomMinSize {
		c.NormalRoomMaxSize = c.NormalRoomMinSize
	}
	if c.SpecialRoomSize <= 0 {
		c.SpecialRoomSize = def.SpecialRoomSize
	}
	if c.BossRoomSize <= 0 {
		c.BossRoomSize = def.BossRoomSize
	}
	return c
}

// corridorLengths lists every allowed corridor length, shortest first
func (c GraphConfig) corridorLengths() []int {
	lengths := make([]int, 0, c.MaxCorridorLength-c.MinCorridorLength+1)
	for l := c.MinCorridorLength; l <= c.MaxCorridorLength; l++ {
		lengths = append(lengths, l)
	}
	return lengths
}

// clampCorridorLength forces a length into the allowed range
func (c GraphConfig) clampCorridorLength(length int) int {
	if length < c.MinCorridorLength {
		return c.MinCorridorLength
	}
	if length > c.MaxCorridorLength {
		return c.MaxCorridorLength
	}
	return length
}
