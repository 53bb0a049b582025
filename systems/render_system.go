package systems

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"ebiten-rooms/components"
	"ebiten-rooms/config"
	"ebiten-rooms/ecs"
	"ebiten-rooms/generation"
)

var (
	corridorColor    = color.RGBA{90, 90, 90, 255}
	openDoorColor    = color.RGBA{230, 230, 230, 255}
	pendingDoorColor = color.RGBA{120, 220, 120, 255}
	sealedDoorColor  = color.RGBA{220, 40, 40, 255}
	currentRoomColor = color.RGBA{255, 255, 255, 255}
	hudColor         = color.RGBA{20, 20, 28, 255}
)

// roomColor returns the fill colour of a room. Unvisited rooms are dimmed.
func roomColor(roomType generation.RoomType, visited bool) color.RGBA {
	var c color.RGBA
	switch roomType {
	case generation.RoomForge:
		c = color.RGBA{200, 110, 40, 255}
	case generation.RoomShop:
		c = color.RGBA{60, 150, 200, 255}
	case generation.RoomChest:
		c = color.RGBA{210, 180, 50, 255}
	case generation.RoomBoss:
		c = color.RGBA{150, 30, 90, 255}
	default:
		c = color.RGBA{70, 90, 110, 255}
	}
	if !visited {
		c.R, c.G, c.B = c.R/2, c.G/2, c.B/2
	}
	return c
}

// doorColor returns the colour of a door span
func doorColor(door generation.Doorway) color.RGBA {
	switch {
	case door.Sealed:
		return sealedDoorColor
	case door.TargetGenerated:
		return openDoorColor
	default:
		return pendingDoorColor
	}
}

// RenderSystem draws the room graph and the HUD
type RenderSystem struct {
	showTrace bool // Include generator trace lines in the message panel
}

// NewRenderSystem creates a new rendering system
func NewRenderSystem() *RenderSystem {
	return &RenderSystem{}
}

// ToggleTrace shows or hides generator trace lines
func (s *RenderSystem) ToggleTrace() {
	s.showTrace = !s.showTrace
}

// IsTraceVisible reports whether trace lines are shown
func (s *RenderSystem) IsTraceVisible() bool {
	return s.showTrace
}

// Draw renders the graph around the camera followed by the HUD
func (s *RenderSystem) Draw(world *ecs.World, screen *ebiten.Image) {
	screen.Fill(color.RGBA{0, 0, 0, 255})

	cameraComp, hasCamera := world.FirstComponentWithTag(components.TagCamera, components.Camera)
	graphComp, hasGraph := world.FirstComponentWithTag(components.TagGraph, components.RoomGraph)
	if !hasCamera || !hasGraph {
		ebitenutil.DebugPrint(screen, "No room graph loaded")
		return
	}
	camera := cameraComp.(*components.CameraComponent)
	graph := graphComp.(*components.RoomGraphComponent)

	s.drawGraph(screen, camera, graph.Graph)
	s.drawStatusPanel(screen, graph)
	s.drawMessagesPanel(screen)
}

// drawGraph draws corridors first, then rooms and their doors
func (s *RenderSystem) drawGraph(screen *ebiten.Image, camera *components.CameraComponent, graph *generation.RoomGraph) {
	rooms := graph.Rooms()

	for _, room := range rooms {
		for _, door := range room.Doors() {
			if door.TargetGenerated && IsVisible(camera, door.Corridor) {
				s.fillRect(screen, camera, door.Corridor, corridorColor)
			}
		}
	}

	current := graph.CurrentCoords()
	for _, room := range rooms {
		bounds := room.TileBounds()
		if !IsVisible(camera, bounds.Expand(1)) {
			continue
		}

		s.fillRect(screen, camera, bounds, roomColor(room.Type(), room.Visited()))
		if room.Coords() == current {
			x, y := WorldToScreen(camera, bounds.X, bounds.Y)
			vector.StrokeRect(screen, x, y, float32(bounds.Width*config.TileSize),
				float32(bounds.Height*config.TileSize), 2, currentRoomColor, false)
		}

		for _, door := range room.Doors() {
			s.fillRect(screen, camera, door.Span(bounds), doorColor(door))
		}
	}
}

// fillRect draws a tile rectangle in screen space
func (s *RenderSystem) fillRect(screen *ebiten.Image, camera *components.CameraComponent, rect generation.TileRect, clr color.Color) {
	x, y := WorldToScreen(camera, rect.X, rect.Y)
	vector.DrawFilledRect(screen, x, y, float32(rect.Width*config.TileSize), float32(rect.Height*config.TileSize), clr, false)
}

// drawStatusPanel prints the current room and graph counters
func (s *RenderSystem) drawStatusPanel(screen *ebiten.Image, graphComp *components.RoomGraphComponent) {
	graph := graphComp.Graph
	room := graph.CurrentRoom()

	boss := "not yet"
	if graph.BossPlaced() {
		boss = "placed"
	}

	lines := []string{
		fmt.Sprintf("Seed %d  Room %v  %s / %s", graph.WorldSeed(), room.Coords(), room.Type(), room.Biome()),
		fmt.Sprintf("Rooms %d  Since boss %d  Boss %s  Moves %d",
			graph.RoomsDiscovered(), graph.RoomsSinceBoss(), boss, graphComp.Moves),
		"Arrows: move  F1: trace",
	}
	for i, line := range lines {
		ebitenutil.DebugPrintAt(screen, line, config.HUDMargin, config.HUDMargin+i*config.HUDLineHeight)
	}
}

// drawMessagesPanel draws the message log along the bottom of the window
func (s *RenderSystem) drawMessagesPanel(screen *ebiten.Image) {
	top := config.ViewHeight * config.TileSize
	vector.DrawFilledRect(screen, 0, float32(top), float32(config.WindowWidth),
		float32(config.WindowHeight-top), hudColor, false)

	ebitenutil.DebugPrintAt(screen, "MESSAGE LOG", config.HUDMargin, top+config.HUDMargin/2)

	messages := GetMessageLog().RecentMessages(config.HUDMessageLines, s.showTrace)
	for i, msg := range messages {
		y := top + (i+1)*config.HUDLineHeight + config.HUDMargin/2
		// ebitenutil text is white only, so a swatch carries the message colour
		vector.DrawFilledRect(screen, float32(config.HUDMargin), float32(y+4), 6, 6, msg.GetColor(), false)
		ebitenutil.DebugPrintAt(screen, msg.Text, config.HUDMargin+12, y)
	}
}
