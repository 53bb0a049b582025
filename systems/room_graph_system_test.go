package systems

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ebiten-rooms/components"
	"ebiten-rooms/ecs"
	"ebiten-rooms/generation"
)

// newViewerWorld builds a world holding a graph and a camera following it
func newViewerWorld(t *testing.T, seed uint64) (*ecs.World, *components.RoomGraphComponent, *components.CameraComponent) {
	t.Helper()

	world := ecs.NewWorld()
	graph := generation.NewRoomGraphWithConfig(seed, generation.DefaultGraphConfig(), world.GetEventManager(), nil)

	graphEntity := world.CreateEntity()
	graphComp := components.NewRoomGraphComponent(graph)
	world.AddComponent(graphEntity.ID, components.RoomGraph, graphComp)
	world.TagEntity(graphEntity.ID, components.TagGraph)

	cameraEntity := world.CreateEntity()
	camera := components.NewCameraComponent(graphEntity.ID)
	world.AddComponent(cameraEntity.ID, components.Camera, camera)
	world.TagEntity(cameraEntity.ID, components.TagCamera)

	return world, graphComp, camera
}

func TestMoveThroughOpenDoor(t *testing.T) {
	world, graphComp, _ := newViewerWorld(t, 11)
	var entered []generation.RoomEnteredEvent
	world.GetEventManager().Subscribe(generation.EventRoomEntered, func(e ecs.Event) {
		entered = append(entered, e.(generation.RoomEnteredEvent))
	})

	system := NewRoomGraphSystem()
	require.True(t, system.Move(world, generation.North))

	assert.Equal(t, 1, graphComp.Moves)
	assert.Equal(t, generation.RoomCoords{X: 0, Y: -1}, graphComp.Graph.CurrentCoords())
	require.Len(t, entered, 1)
	assert.True(t, entered[0].FirstTime)

	require.True(t, system.Move(world, generation.South))
	assert.Equal(t, generation.OriginCoords, graphComp.Graph.CurrentCoords())
	assert.Equal(t, 2, graphComp.Moves)
}

func TestMoveIntoWallIsBlocked(t *testing.T) {
	world, graphComp, _ := newViewerWorld(t, 11)
	var blocked []MoveBlockedEvent
	world.GetEventManager().Subscribe(EventMoveBlocked, func(e ecs.Event) {
		blocked = append(blocked, e.(MoveBlockedEvent))
	})

	// The origin only has a north door
	assert.False(t, NewRoomGraphSystem().Move(world, generation.South))

	assert.Zero(t, graphComp.Moves)
	assert.Equal(t, generation.OriginCoords, graphComp.Graph.CurrentCoords())
	require.Len(t, blocked, 1)
	assert.Equal(t, generation.South, blocked[0].Direction)
	assert.False(t, blocked[0].Sealed)
}

func TestMoveWithoutGraph(t *testing.T) {
	assert.False(t, NewRoomGraphSystem().Move(ecs.NewWorld(), generation.North))
}
