package generation

import "math/rand"

// RoomType decides a room's size and what gameplay it hosts
type RoomType int

const (
	RoomNormal RoomType = iota
	RoomForge
	RoomShop
	RoomChest
	RoomBoss
)

func (t RoomType) String() string {
	switch t {
	case RoomNormal:
		return "normal"
	case RoomForge:
		return "forge"
	case RoomShop:
		return "shop"
	case RoomChest:
		return "chest"
	case RoomBoss:
		return "boss"
	default:
		return "unknown"
	}
}

// Biome is the visual and thematic flavour of a room
type Biome int

const (
	BiomeCatacombs Biome = iota
	BiomeCaverns
	BiomeFoundry
	BiomeOvergrowth
	BiomeFlooded

	biomeCount
)

func (b Biome) String() string {
	switch b {
	case BiomeCatacombs:
		return "catacombs"
	case BiomeCaverns:
		return "caverns"
	case BiomeFoundry:
		return "foundry"
	case BiomeOvergrowth:
		return "overgrowth"
	case BiomeFlooded:
		return "flooded"
	default:
		return "unknown"
	}
}

// biomeFor picks the biome of a slot from its own salted seed so that it
// never depends on exploration order
func biomeFor(worldSeed uint64, coords RoomCoords) Biome {
	return Biome(MakeRoomSeed(worldSeed, coords, SaltBiome) % uint64(biomeCount))
}

// roomSize returns the tile dimensions of a freshly drawn room of the given type
func (c GraphConfig) roomSize(rng *rand.Rand, roomType RoomType) (int, int) {
	switch roomType {
	case RoomShop, RoomForge, RoomChest:
		return c.SpecialRoomSize, c.SpecialRoomSize
	case RoomBoss:
		return c.BossRoomSize, c.BossRoomSize
	default:
		span := c.NormalRoomMaxSize - c.NormalRoomMinSize + 1
		width := c.NormalRoomMinSize + rng.Intn(span)
		height := c.NormalRoomMinSize + rng.Intn(span)
		return width, height
	}
}

// TypeWeights is the discrete distribution PickRoomType draws from
type TypeWeights struct {
	Normal, Forge, Shop, Chest, Boss int
}

// Total returns the sum of all weights
func (w TypeWeights) Total() int {
	return w.Normal + w.Forge + w.Shop + w.Chest + w.Boss
}

// RoomTypeWeights computes the type distribution for the current
// generation history. Before the first boss the boss share ramps up with
// every room discovered without one; afterwards it drops to zero.
func (c GraphConfig) RoomTypeWeights(roomsSinceBoss int, bossPlaced bool) TypeWeights {
	boss := 0
	if !bossPlaced && roomsSinceBoss >= c.BossRampStart {
		boss = (roomsSinceBoss - c.BossRampStart + 1) * c.BossRampStep
		if boss > c.BossRampMax {
			boss = c.BossRampMax
		}
		if boss > c.NormalBossWeight {
			boss = c.NormalBossWeight
		}
	}

	return TypeWeights{
		Normal: c.NormalBossWeight - boss,
		Forge:  c.ForgeWeight,
		Shop:   c.ShopWeight,
		Chest:  c.ChestWeight,
		Boss:   boss,
	}
}

// PickRoomType draws a weighted room type
func PickRoomType(rng *rand.Rand, weights TypeWeights) RoomType {
	total := weights.Total()
	if total <= 0 {
		return RoomNormal
	}

	roll := rng.Intn(total)
	for _, entry := range []struct {
		roomType RoomType
		weight   int
	}{
		{RoomNormal, weights.Normal},
		{RoomForge, weights.Forge},
		{RoomShop, weights.Shop},
		{RoomChest, weights.Chest},
		{RoomBoss, weights.Boss},
	} {
		if roll < entry.weight {
			return entry.roomType
		}
		roll -= entry.weight
	}

	return RoomNormal
}
