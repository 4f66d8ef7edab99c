package game

import (
	"sync"
	"time"

	"github.com/lox/holdem/internal/deck"
)

// EventType identifies a game domain event.
type EventType string

const (
	EventTypeHandStart    EventType = "hand_start"
	EventTypePlayerAction EventType = "player_action"
	EventTypeStreetDealt  EventType = "street_dealt"
	EventTypeHandResolved EventType = "hand_resolved"
)

func (et EventType) String() string {
	return string(et)
}

// Event is any event published by the engine during a hand.
type Event interface {
	EventType() EventType
	Timestamp() time.Time
}

// Subscriber receives events synchronously as they are published.
type Subscriber interface {
	OnEvent(Event)
}

// EventBus fans events out to subscribers. Publishing is synchronous and
// happens inside the engine's mutating calls, so subscribers must not call
// back into the service.
type EventBus struct {
	mu   sync.RWMutex
	subs []Subscriber
}

// NewEventBus creates an empty event bus.
func NewEventBus() *EventBus {
	return &EventBus{}
}

// Subscribe registers a subscriber for all future events.
func (b *EventBus) Subscribe(s Subscriber) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.subs = append(b.subs, s)
}

// Publish delivers the event to every subscriber in registration order.
func (b *EventBus) Publish(e Event) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	for _, s := range b.subs {
		s.OnEvent(e)
	}
}

// HandStartEvent is published once blinds are posted and hole cards dealt.
type HandStartEvent struct {
	Seats      []int
	DealerSeat int
	SmallBlind int
	BigBlind   int
	ts         time.Time
}

func (e HandStartEvent) EventType() EventType { return EventTypeHandStart }
func (e HandStartEvent) Timestamp() time.Time { return e.ts }

// PlayerActionEvent is published after an action has been applied.
type PlayerActionEvent struct {
	Seat     int
	Action   Action
	Amount   int
	Phase    Phase
	PotAfter int
	ts       time.Time
}

func (e PlayerActionEvent) EventType() EventType { return EventTypePlayerAction }
func (e PlayerActionEvent) Timestamp() time.Time { return e.ts }

// StreetDealtEvent is published when community cards hit the board.
type StreetDealtEvent struct {
	Phase      Phase
	Board      []deck.Card
	ActionSeat int
	ts         time.Time
}

func (e StreetDealtEvent) EventType() EventType { return EventTypeStreetDealt }
func (e StreetDealtEvent) Timestamp() time.Time { return e.ts }

// HandResolvedEvent is published when winners have been determined, whether
// at showdown or because everyone else folded.
type HandResolvedEvent struct {
	Winners []Winner
	Pot     int
	ts      time.Time
}

func (e HandResolvedEvent) EventType() EventType { return EventTypeHandResolved }
func (e HandResolvedEvent) Timestamp() time.Time { return e.ts }
