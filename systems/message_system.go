package systems

import (
	"fmt"

	"ebiten-rooms/ecs"
	"ebiten-rooms/generation"
)

// MessageLog stores viewer messages
type MessageLog struct {
	Messages    []ColoredMessage
	MaxMessages int
}

// Global message log instance (singleton)
var globalMessageLog *MessageLog

// GetMessageLog returns the global message log instance
func GetMessageLog() *MessageLog {
	if globalMessageLog == nil {
		globalMessageLog = NewMessageLog()
	}
	return globalMessageLog
}

// NewMessageLog creates a new message log
func NewMessageLog() *MessageLog {
	return &MessageLog{
		Messages:    []ColoredMessage{},
		MaxMessages: 100, // Store the last 100 messages
	}
}

// Add records a generator trace line. It matches the logFunc signature the
// room graph takes.
func (ml *MessageLog) Add(message string) {
	ml.AddColored(message, MessageTypeSystem)
}

// AddColored adds a message of the given type to the log
func (ml *MessageLog) AddColored(message string, msgType MessageType) {
	ml.Messages = append(ml.Messages, ColoredMessage{Text: message, Type: msgType})

	// Truncate if we have too many messages
	if len(ml.Messages) > ml.MaxMessages {
		ml.Messages = ml.Messages[len(ml.Messages)-ml.MaxMessages:]
	}
}

// RecentMessages gets up to n messages, newest first. Generator trace lines
// are skipped unless withSystem is set.
func (ml *MessageLog) RecentMessages(n int, withSystem bool) []ColoredMessage {
	result := make([]ColoredMessage, 0, n)
	for i := len(ml.Messages) - 1; i >= 0 && len(result) < n; i-- {
		msg := ml.Messages[i]
		if msg.Type == MessageTypeSystem && !withSystem {
			continue
		}
		result = append(result, msg)
	}
	return result
}

// Clear clears all messages
func (ml *MessageLog) Clear() {
	ml.Messages = []ColoredMessage{}
}

// SubscribeToGraphEvents turns room graph and viewer events into log lines
func (ml *MessageLog) SubscribeToGraphEvents(events *ecs.EventManager) {
	events.Subscribe(generation.EventRoomDiscovered, func(e ecs.Event) {
		ev := e.(generation.RoomDiscoveredEvent)
		ml.AddColored(fmt.Sprintf("A %s room lies %s of %v, deep in the %s",
			ev.RoomType, ev.Direction, ev.From, ev.Biome), messageTypeForRoom(ev.RoomType))
	})

	events.Subscribe(generation.EventDoorSealed, func(e ecs.Event) {
		ev := e.(generation.DoorSealedEvent)
		ml.AddColored(fmt.Sprintf("The %s door of %v crumbles shut", ev.Direction, ev.Coords), MessageTypeBlocked)
	})

	events.Subscribe(generation.EventRoomEntered, func(e ecs.Event) {
		ev := e.(generation.RoomEnteredEvent)
		if ev.FirstTime {
			ml.AddColored(fmt.Sprintf("You head %s into %v", ev.Direction, ev.To), MessageTypeNormal)
			return
		}
		ml.AddColored(fmt.Sprintf("You return to %v", ev.To), MessageTypeNormal)
	})

	events.Subscribe(EventMoveBlocked, func(e ecs.Event) {
		ev := e.(MoveBlockedEvent)
		if ev.Sealed {
			ml.AddColored(fmt.Sprintf("The %s door is sealed", ev.Direction), MessageTypeBlocked)
			return
		}
		ml.AddColored(fmt.Sprintf("There is no way %s", ev.Direction), MessageTypeBlocked)
	})
}
