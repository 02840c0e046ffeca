package config

// Screen layout configuration
const (
	// Logical screen size in world units (1 unit = 1 pixel)
	ScreenWidth  = 800
	ScreenHeight = 600

	// Where the camera holds the player horizontally
	PlayerScreenX = 160

	// HUD layout
	HUDMargin     = 12
	HUDLineHeight = 16
	ToastLines    = 4
)

// GetScreenDimensions returns the screen dimensions in pixels
func GetScreenDimensions() (width, height int) {
	return ScreenWidth, ScreenHeight
}

// GetWindowSize returns the recommended window size (may be different from actual screen dimensions)
func GetWindowSize() (width, height int) {
	return 1024, 768
}
