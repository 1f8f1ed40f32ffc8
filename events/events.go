package events

import (
	"context"
	"sync"
	"time"

	"mainevent/models"

	log "github.com/sirupsen/logrus"
)

// EventType represents different types of events in the system
type EventType string

const (
	EventTypeEventCreated EventType = "event_created"
	EventTypeBetSubmitted EventType = "bet_submitted"
	EventTypeWinnersPaid  EventType = "winners_paid"
	EventTypePaid         EventType = "paid"
)

// AllEventTypes lists every event type published by the ledger
var AllEventTypes = []EventType{
	EventTypeEventCreated,
	EventTypeBetSubmitted,
	EventTypeWinnersPaid,
	EventTypePaid,
}

// Event is the base interface for all events
type Event interface {
	Type() EventType
}

// EventCreatedEvent is published when the authority creates an event
type EventCreatedEvent struct {
	EventID   int64
	EventName string
	EventDate time.Time
	Fighter1  models.Fighter
	Fighter2  models.Fighter
	CreatedBy string
}

func (e EventCreatedEvent) Type() EventType {
	return EventTypeEventCreated
}

// BetSubmittedEvent carries the amount staked by this call, not the running total
type BetSubmittedEvent struct {
	From      string
	EventID   int64
	FighterID int
	Amount    int64
}

func (e BetSubmittedEvent) Type() EventType {
	return EventTypeBetSubmitted
}

// WinnersPaidEvent summarizes every transfer made by one settlement
type WinnersPaidEvent struct {
	EventID          int64
	WinningFighterID int
	Payouts          []models.Payout
	TotalDisbursed   int64
}

func (e WinnersPaidEvent) Type() EventType {
	return EventTypeWinnersPaid
}

// PaidEvent represents value deposited directly into custody
type PaidEvent struct {
	From  string
	Value int64
}

func (e PaidEvent) Type() EventType {
	return EventTypePaid
}

// Handler is a function that handles events
type Handler func(ctx context.Context, event Event)

// Bus manages event subscriptions and dispatching
type Bus struct {
	mu       sync.RWMutex
	handlers map[EventType][]Handler
}

// NewBus creates a new event bus
func NewBus() *Bus {
	return &Bus{
		handlers: make(map[EventType][]Handler),
	}
}

// Subscribe adds a handler for a specific event type
func (b *Bus) Subscribe(eventType EventType, handler Handler) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.handlers[eventType] = append(b.handlers[eventType], handler)

	log.WithFields(log.Fields{
		"eventType":    eventType,
		"handlerCount": len(b.handlers[eventType]),
	}).Debug("Subscribed handler to event type")
}

// SubscribeAll adds the same handler for every ledger event type
func (b *Bus) SubscribeAll(handler Handler) {
	for _, eventType := range AllEventTypes {
		b.Subscribe(eventType, handler)
	}
}

// Emit publishes an event to all registered handlers.
// Handlers run on their own goroutines; a panicking handler is logged and dropped.
func (b *Bus) Emit(ctx context.Context, event Event) {
	b.mu.RLock()
	handlers := make([]Handler, len(b.handlers[event.Type()]))
	copy(handlers, b.handlers[event.Type()])
	b.mu.RUnlock()

	log.WithFields(log.Fields{
		"eventType":    event.Type(),
		"handlerCount": len(handlers),
	}).Debug("Emitting event to handlers")

	for i, handler := range handlers {
		go func(h Handler, handlerIndex int) {
			defer func() {
				if r := recover(); r != nil {
					log.WithFields(log.Fields{
						"eventType":    event.Type(),
						"handlerIndex": handlerIndex,
						"panic":        r,
					}).Error("Event handler panicked")
				}
			}()
			h(ctx, event)
		}(handler, i)
	}
}

// TransactionalBus holds events raised inside a unit of work until it commits.
type TransactionalBus struct {
	real    *Bus
	pending []Event
}

func NewTransactionalBus(real *Bus) *TransactionalBus {
	return &TransactionalBus{real: real}
}

func (b *TransactionalBus) Publish(e Event) {
	b.pending = append(b.pending, e)
}

// Pending returns the events queued so far
func (b *TransactionalBus) Pending() []Event {
	out := make([]Event, len(b.pending))
	copy(out, b.pending)
	return out
}

// Flush is called after a successful commit.
// Emission uses a background context since the transaction context may already be done.
func (b *TransactionalBus) Flush() {
	log.WithField("pendingEventCount", len(b.pending)).Debug("Flushing pending events")

	if b.real != nil {
		for _, ev := range b.pending {
			b.real.Emit(context.Background(), ev)
		}
	}
	b.pending = nil
}

// Discard drops pending events after a rollback
func (b *TransactionalBus) Discard() {
	b.pending = nil
}
