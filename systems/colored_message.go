package systems

import (
	"image/color"
)

// MessageType selects the color of a toast
type MessageType int

const (
	// MessageTypeNormal is for plain notices (light gray)
	MessageTypeNormal MessageType = iota
	// MessageTypeScore is for score and pickup notices (gold)
	MessageTypeScore
	// MessageTypeDamage is for hits (red)
	MessageTypeDamage
	// MessageTypeArt is for painted walls (pink)
	MessageTypeArt
	// MessageTypeAchievement is for unlocks (bright yellow)
	MessageTypeAchievement
	// MessageTypeSystem is for pause and game over (purple)
	MessageTypeSystem
)

// ColoredMessage stores a message with its associated color
type ColoredMessage struct {
	Text string
	Type MessageType
	TTL  float64 // Seconds left on screen
}

// GetColor returns the color for the message based on its type
func (cm ColoredMessage) GetColor() color.RGBA {
	switch cm.Type {
	case MessageTypeScore:
		return color.RGBA{218, 165, 32, 255} // Gold
	case MessageTypeDamage:
		return color.RGBA{255, 100, 100, 255} // Red
	case MessageTypeArt:
		return color.RGBA{255, 64, 160, 255} // Pink
	case MessageTypeAchievement:
		return color.RGBA{255, 255, 0, 255} // Bright Yellow
	case MessageTypeSystem:
		return color.RGBA{186, 85, 211, 255} // Medium Orchid (Purple)
	default:
		return color.RGBA{200, 200, 200, 255} // Light Gray (default)
	}
}
