package ecs

// EventType identifies different types of events
type EventType string

// Event interface that all events must implement
type Event interface {
	Type() EventType
}

// EventHandler is a function that processes events
type EventHandler func(Event)

// SubscriptionID identifies one registered handler so it can be removed again
type SubscriptionID uint64

type subscription struct {
	id      SubscriptionID
	handler EventHandler
}

// EventManager manages event subscriptions and dispatches.
// A nil *EventManager accepts emits and drops them.
type EventManager struct {
	subscribers map[EventType][]subscription
	nextID      SubscriptionID
}

// NewEventManager creates a new event manager
func NewEventManager() *EventManager {
	return &EventManager{
		subscribers: make(map[EventType][]subscription),
	}
}

// Subscribe registers a handler for a specific event type
func (em *EventManager) Subscribe(eventType EventType, handler EventHandler) SubscriptionID {
	em.nextID++
	em.subscribers[eventType] = append(em.subscribers[eventType], subscription{id: em.nextID, handler: handler})
	return em.nextID
}

// Unsubscribe removes the handler registered under id
func (em *EventManager) Unsubscribe(eventType EventType, id SubscriptionID) {
	subs, exists := em.subscribers[eventType]
	if !exists {
		return
	}

	kept := subs[:0]
	for _, sub := range subs {
		if sub.id != id {
			kept = append(kept, sub)
		}
	}

	if len(kept) == 0 {
		delete(em.subscribers, eventType)
	} else {
		em.subscribers[eventType] = kept
	}
}

// Emit dispatches an event to all subscribed handlers in subscription order
func (em *EventManager) Emit(event Event) {
	if em == nil {
		return
	}
	for _, sub := range em.subscribers[event.Type()] {
		sub.handler(event)
	}
}
