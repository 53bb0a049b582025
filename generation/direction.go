package generation

// Direction names one of the four walls of a room
type Direction int

const (
	North Direction = iota
	South
	East
	West
)

// AllDirections lists the walls in their canonical order
var AllDirections = [4]Direction{North, South, East, West}

// Opposite returns the wall facing this one across a corridor
func (d Direction) Opposite() Direction {
	switch d {
	case North:
		return South
	case South:
		return North
	case East:
		return West
	default:
		return East
	}
}

// ToOffset maps a direction to a unit step on the room grid
func (d Direction) ToOffset() RoomCoords {
	switch d {
	case North:
		return RoomCoords{X: 0, Y: -1}
	case South:
		return RoomCoords{X: 0, Y: 1}
	case East:
		return RoomCoords{X: 1, Y: 0}
	default:
		return RoomCoords{X: -1, Y: 0}
	}
}

// Vertical reports whether the wall runs horizontally, i.e. corridors
// leaving through it travel along the Y axis
func (d Direction) Vertical() bool {
	return d == North || d == South
}

func (d Direction) String() string {
	switch d {
	case North:
		return "north"
	case South:
		return "south"
	case East:
		return "east"
	case West:
		return "west"
	default:
		return "unknown"
	}
}

// Opposite is the function form of Direction.Opposite
func Opposite(d Direction) Direction {
	return d.Opposite()
}

// ToOffset is the function form of Direction.ToOffset
func ToOffset(d Direction) RoomCoords {
	return d.ToOffset()
}
