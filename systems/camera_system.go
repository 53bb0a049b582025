package systems

import (
	"ebiten-rooms/components"
	"ebiten-rooms/config"
	"ebiten-rooms/ecs"
	"ebiten-rooms/generation"
)

// CameraSystem keeps the viewport centred on the current room
type CameraSystem struct {
}

// NewCameraSystem creates a new camera system
func NewCameraSystem() *CameraSystem {
	return &CameraSystem{}
}

// Update moves every camera onto the current room of the graph it follows
func (s *CameraSystem) Update(world *ecs.World, dt float64) {
	for _, cameraEntity := range world.GetEntitiesWithTag(components.TagCamera) {
		cameraComp, exists := world.GetComponent(cameraEntity.ID, components.Camera)
		if !exists {
			continue
		}
		camera := cameraComp.(*components.CameraComponent)

		graphComp, exists := world.GetComponent(camera.Target, components.RoomGraph)
		if !exists {
			continue
		}
		graph := graphComp.(*components.RoomGraphComponent).Graph

		oldX, oldY := camera.X, camera.Y
		camera.X, camera.Y = CenterOn(graph.CurrentRoom().TileBounds(), config.ViewWidth, config.ViewHeight)

		// If the camera position changed, emit an event
		if oldX != camera.X || oldY != camera.Y {
			world.EmitEvent(CameraUpdateEvent{
				CameraID:  cameraEntity.ID,
				X:         camera.X,
				Y:         camera.Y,
				TargetID:  camera.Target,
				ViewportW: config.ViewWidth,
				ViewportH: config.ViewHeight,
			})
		}
	}
}

// CenterOn returns the top-left tile of a viewWidth x viewHeight viewport
// centred on bounds
func CenterOn(bounds generation.TileRect, viewWidth, viewHeight int) (int, int) {
	cx, cy := bounds.Center()
	return cx - viewWidth/2, cy - viewHeight/2
}

// WorldToScreen converts a tile position to pixel coordinates for a camera
func WorldToScreen(camera *components.CameraComponent, tileX, tileY int) (float32, float32) {
	return float32((tileX - camera.X) * config.TileSize), float32((tileY - camera.Y) * config.TileSize)
}

// IsVisible reports whether any part of rect falls inside the camera's view
func IsVisible(camera *components.CameraComponent, rect generation.TileRect) bool {
	view := generation.TileRect{X: camera.X, Y: camera.Y, Width: config.ViewWidth, Height: config.ViewHeight}
	return generation.Intersects(view, rect)
}
