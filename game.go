package main

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"ebiten-rooms/components"
	"ebiten-rooms/config"
	"ebiten-rooms/ecs"
	"ebiten-rooms/generation"
	"ebiten-rooms/systems"
)

// Game implements ebiten.Game interface.
type Game struct {
	world           *ecs.World
	graph           *generation.RoomGraph
	renderSystem    *systems.RenderSystem
	roomGraphSystem *systems.RoomGraphSystem
	cameraSystem    *systems.CameraSystem
}

// NewGame builds the viewer around a freshly generated room graph
func NewGame(seed uint64, graphConfig generation.GraphConfig) *Game {
	world := ecs.NewWorld()

	// The log must listen before the graph exists so the first discoveries show up
	systems.GetMessageLog().SubscribeToGraphEvents(world.GetEventManager())

	graph := generation.NewRoomGraphWithConfig(
		seed,
		graphConfig,
		world.GetEventManager(),
		systems.GetMessageLog().Add, // Pass the logging function
	)

	roomGraphSystem := systems.NewRoomGraphSystem()
	cameraSystem := systems.NewCameraSystem()
	renderSystem := systems.NewRenderSystem()

	// Input first so the camera sees this frame's move
	world.AddSystem(roomGraphSystem)
	world.AddSystem(cameraSystem)

	game := &Game{
		world:           world,
		graph:           graph,
		renderSystem:    renderSystem,
		roomGraphSystem: roomGraphSystem,
		cameraSystem:    cameraSystem,
	}
	game.initialize()

	return game
}

// initialize creates the graph and camera entities
func (g *Game) initialize() {
	graphEntity := g.world.CreateEntity()
	g.world.AddComponent(graphEntity.ID, components.RoomGraph, components.NewRoomGraphComponent(g.graph))
	g.world.TagEntity(graphEntity.ID, components.TagGraph)

	cameraEntity := g.world.CreateEntity()
	g.world.AddComponent(cameraEntity.ID, components.Camera, components.NewCameraComponent(graphEntity.ID))
	g.world.TagEntity(cameraEntity.ID, components.TagCamera)

	systems.GetMessageLog().AddColored(fmt.Sprintf("World seed %d: %d rooms around the origin",
		g.graph.WorldSeed(), g.graph.RoomCount()), systems.MessageTypeEnvironment)
	systems.GetMessageLog().AddColored("Use arrow keys to move between rooms.", systems.MessageTypeNormal)
}

// Update updates the game state.
func (g *Game) Update() error {
	// Toggle generator trace lines with F1 key
	if inpututil.IsKeyJustPressed(ebiten.KeyF1) {
		g.renderSystem.ToggleTrace()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}

	g.world.Update(1.0 / 60.0) // passing approximate dt value

	return nil
}

// Draw draws the game screen.
func (g *Game) Draw(screen *ebiten.Image) {
	g.renderSystem.Draw(g.world, screen)

	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("FPS: %.1f", ebiten.ActualFPS()),
		config.WindowWidth-80, config.HUDMargin)
}

// Layout implements ebiten.Game's Layout.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.GetScreenDimensions()
}
