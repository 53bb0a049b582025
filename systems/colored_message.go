package systems

import (
	"image/color"

	"ebiten-rooms/generation"
)

// MessageType defines different types of messages that can appear in the log
type MessageType int

const (
	// MessageTypeNormal is for movement between rooms (white/gray)
	MessageTypeNormal MessageType = iota
	// MessageTypeEnvironment is for newly discovered plain rooms (gold)
	MessageTypeEnvironment
	// MessageTypeBlocked is for sealed doors and refused moves (red)
	MessageTypeBlocked
	// MessageTypeFeature is for shops, forges and chests (blue)
	MessageTypeFeature
	// MessageTypeAlert is for the boss room (bright yellow)
	MessageTypeAlert
	// MessageTypeSystem is for generator trace output, shown in debug mode only (purple)
	MessageTypeSystem
)

// ColoredMessage stores a message with its associated color
type ColoredMessage struct {
	Text string
	Type MessageType
}

// GetColor returns the color for the message based on its type
func (cm ColoredMessage) GetColor() color.RGBA {
	switch cm.Type {
	case MessageTypeEnvironment:
		return color.RGBA{218, 165, 32, 255} // Gold
	case MessageTypeBlocked:
		return color.RGBA{255, 100, 100, 255} // Red
	case MessageTypeFeature:
		return color.RGBA{100, 149, 237, 255} // Cornflower Blue
	case MessageTypeAlert:
		return color.RGBA{255, 255, 0, 255} // Bright Yellow
	case MessageTypeSystem:
		return color.RGBA{186, 85, 211, 255} // Medium Orchid (Purple)
	default:
		return color.RGBA{200, 200, 200, 255} // Light Gray (default)
	}
}

// messageTypeForRoom picks the log colour announcing a room of this type
func messageTypeForRoom(roomType generation.RoomType) MessageType {
	switch roomType {
	case generation.RoomBoss:
		return MessageTypeAlert
	case generation.RoomShop, generation.RoomForge, generation.RoomChest:
		return MessageTypeFeature
	default:
		return MessageTypeEnvironment
	}
}
