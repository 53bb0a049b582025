package config

// Screen layout configuration
const (
	// Pixels drawn per map tile
	TileSize = 4

	// Window dimensions in pixels
	WindowWidth  = 1024
	WindowHeight = 768

	// HUD
	HUDLineHeight   = 16
	HUDMessageLines = 6
	HUDMargin       = 8

	// Map viewport, in tiles
	ViewWidth  = WindowWidth / TileSize
	ViewHeight = (WindowHeight - (HUDMessageLines+2)*HUDLineHeight) / TileSize
)

// GetScreenDimensions returns the screen dimensions in pixels
func GetScreenDimensions() (width, height int) {
	return WindowWidth, WindowHeight
}

// GetWindowSize returns the recommended window size (may be different from actual screen dimensions)
func GetWindowSize() (width, height int) {
	return WindowWidth, WindowHeight
}
