package systems

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"ebiten-rooms/components"
	"ebiten-rooms/ecs"
	"ebiten-rooms/generation"
)

// arrowKeys maps each arrow key to the wall it walks through
var arrowKeys = map[ebiten.Key]generation.Direction{
	ebiten.KeyArrowUp:    generation.North,
	ebiten.KeyArrowDown:  generation.South,
	ebiten.KeyArrowRight: generation.East,
	ebiten.KeyArrowLeft:  generation.West,
}

// RoomGraphSystem moves the viewer between rooms of the graph
type RoomGraphSystem struct {
}

// NewRoomGraphSystem creates a new room graph system
func NewRoomGraphSystem() *RoomGraphSystem {
	return &RoomGraphSystem{}
}

// Update reads the arrow keys and walks through the matching door
func (s *RoomGraphSystem) Update(world *ecs.World, dt float64) {
	for key, dir := range arrowKeys {
		if inpututil.IsKeyJustPressed(key) {
			s.Move(world, dir)
			return
		}
	}
}

// Move crosses the current room's door on wall dir. A refused move is
// reported with a MoveBlockedEvent.
func (s *RoomGraphSystem) Move(world *ecs.World, dir generation.Direction) bool {
	comp, exists := world.FirstComponentWithTag(components.TagGraph, components.RoomGraph)
	if !exists {
		return false
	}
	graphComp := comp.(*components.RoomGraphComponent)
	graph := graphComp.Graph

	from := graph.CurrentCoords()
	if graph.MoveToNeighbor(dir) {
		graphComp.Moves++
		return true
	}

	door, hasDoor := graph.CurrentRoom().Door(dir)
	world.EmitEvent(MoveBlockedEvent{
		Coords:    from,
		Direction: dir,
		Sealed:    hasDoor && door.Sealed,
	})
	return false
}
