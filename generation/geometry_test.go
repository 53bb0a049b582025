package generation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIntersects(t *testing.T) {
	base := TileRect{X: 0, Y: 0, Width: 10, Height: 10}

	for _, tc := range []struct {
		name  string
		other TileRect
		want  bool
	}{
		{"overlapping", TileRect{X: 5, Y: 5, Width: 10, Height: 10}, true},
		{"contained", TileRect{X: 2, Y: 2, Width: 3, Height: 3}, true},
		{"same", base, true},
		{"touching right edge", TileRect{X: 10, Y: 0, Width: 5, Height: 10}, false},
		{"touching bottom edge", TileRect{X: 0, Y: 10, Width: 10, Height: 5}, false},
		{"touching corner", TileRect{X: 10, Y: 10, Width: 2, Height: 2}, false},
		{"disjoint", TileRect{X: 30, Y: -30, Width: 4, Height: 4}, false},
		{"zero width inside", TileRect{X: 5, Y: 5, Width: 0, Height: 3}, false},
		{"zero rect", TileRect{}, false},
		{"one tile overlap", TileRect{X: 9, Y: 9, Width: 5, Height: 5}, true},
	} {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, Intersects(base, tc.other))
			assert.Equal(t, tc.want, Intersects(tc.other, base), "symmetric")
		})
	}
}

func TestTileRectHelpers(t *testing.T) {
	r := TileRect{X: -3, Y: 4, Width: 6, Height: 2}
	assert.Equal(t, 3, r.Right())
	assert.Equal(t, 6, r.Bottom())
	assert.False(t, r.Empty())
	assert.True(t, TileRect{Width: 3}.Empty())
	assert.Equal(t, TileRect{X: -5, Y: 2, Width: 10, Height: 6}, r.Expand(2))

	cx, cy := r.Center()
	assert.Equal(t, 0, cx)
	assert.Equal(t, 5, cy)
}

func TestDirectionMappings(t *testing.T) {
	assert.Equal(t, RoomCoords{0, -1}, ToOffset(North))
	assert.Equal(t, RoomCoords{0, 1}, ToOffset(South))
	assert.Equal(t, RoomCoords{1, 0}, ToOffset(East))
	assert.Equal(t, RoomCoords{-1, 0}, ToOffset(West))

	for _, dir := range AllDirections {
		assert.Equal(t, dir, Opposite(Opposite(dir)), "opposite is an involution for %s", dir)
		assert.NotEqual(t, dir, Opposite(dir))

		back := dir.ToOffset().Add(dir.Opposite().ToOffset())
		assert.Equal(t, RoomCoords{}, back, "offsets of %s and its opposite cancel", dir)
	}

	assert.Equal(t, RoomCoords{3, 4}, RoomCoords{3, 5}.Neighbor(North))
	assert.True(t, North.Vertical())
	assert.False(t, West.Vertical())
}
