package generation

import "fmt"

// RoomCoords identifies a room's slot on the infinite room grid
type RoomCoords struct {
	X, Y int
}

// Add returns the coordinate offset by other
func (c RoomCoords) Add(other RoomCoords) RoomCoords {
	return RoomCoords{X: c.X + other.X, Y: c.Y + other.Y}
}

// Neighbor returns the grid slot one step away in the given direction
func (c RoomCoords) Neighbor(dir Direction) RoomCoords {
	return c.Add(dir.ToOffset())
}

func (c RoomCoords) String() string {
	return fmt.Sprintf("(%d,%d)", c.X, c.Y)
}

// TileRect is an axis-aligned rectangle in tile units.
// A zero-area rect means "no corridor" or "not computed yet".
type TileRect struct {
	X, Y          int
	Width, Height int
}

// Right returns the first tile column past the rectangle
func (r TileRect) Right() int {
	return r.X + r.Width
}

// Bottom returns the first tile row past the rectangle
func (r TileRect) Bottom() int {
	return r.Y + r.Height
}

// Empty reports whether the rectangle covers no tiles
func (r TileRect) Empty() bool {
	return r.Width <= 0 || r.Height <= 0
}

// Expand grows the rectangle by margin tiles on every side
func (r TileRect) Expand(margin int) TileRect {
	return TileRect{
		X:      r.X - margin,
		Y:      r.Y - margin,
		Width:  r.Width + 2*margin,
		Height: r.Height + 2*margin,
	}
}

// Center returns the middle tile of the rectangle
func (r TileRect) Center() (int, int) {
	return r.X + r.Width/2, r.Y + r.Height/2
}

func (r TileRect) String() string {
	return fmt.Sprintf("[%d,%d %dx%d]", r.X, r.Y, r.Width, r.Height)
}

// Intersects reports whether two rectangles overlap.
// Rectangles that only share an edge do not intersect.
func Intersects(a, b TileRect) bool {
	if a.Empty() || b.Empty() {
		return false
	}
	return a.X < b.Right() && b.X < a.Right() &&
		a.Y < b.Bottom() && b.Y < a.Bottom()
}
