package generation

import (
	"math/bits"
	"math/rand"
)

// Salts decorrelate the random streams drawn for one coordinate
const (
	SaltPlacement uint64 = 0
	SaltDoors     uint64 = 1
	SaltBiome     uint64 = 2
)

const goldenGamma = 0x9e3779b97f4a7c15

// combineSeed folds v into h. Every step depends on rotations of the
// running hash, so the order of inputs matters.
func combineSeed(h, v uint64) uint64 {
	h ^= v + goldenGamma + bits.RotateLeft64(h, 6) + bits.RotateLeft64(h, -2)
	return bits.RotateLeft64(h, 27) * 0x94d049bb133111eb
}

// finalizeSeed is the splitmix64 output mix
func finalizeSeed(h uint64) uint64 {
	h ^= h >> 30
	h *= 0xbf58476d1ce4e5b9
	h ^= h >> 27
	h *= 0x94d049bb133111eb
	h ^= h >> 31
	return h
}

// MakeRoomSeed derives the deterministic seed of a room slot from the
// world seed, its coordinates and a salt
func MakeRoomSeed(worldSeed uint64, coords RoomCoords, salt uint64) uint64 {
	h := finalizeSeed(worldSeed)
	h = combineSeed(h, uint64(int64(coords.X)))
	h = combineSeed(h, uint64(int64(coords.Y)))
	h = combineSeed(h, salt)
	return finalizeSeed(h)
}

// newSeededRand creates a math/rand generator for a 64-bit seed
func newSeededRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewSource(int64(seed)))
}
