package events

import (
	"context"
	"sync"
	"testing"
	"time"

	"mainevent/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEventDelivery(t *testing.T) {
	mainBus := NewBus()
	transactionalBus := NewTransactionalBus(mainBus)

	received := make(chan BetSubmittedEvent, 1)
	mainBus.Subscribe(EventTypeBetSubmitted, func(ctx context.Context, event Event) {
		if bet, ok := event.(BetSubmittedEvent); ok {
			received <- bet
		} else {
			t.Errorf("Expected BetSubmittedEvent, got %T", event)
		}
	})

	testEvent := BetSubmittedEvent{
		From:      "123456",
		EventID:   1,
		FighterID: models.FighterOne,
		Amount:    3000,
	}
	transactionalBus.Publish(testEvent)

	select {
	case <-received:
		t.Fatal("Event delivered before flush")
	case <-time.After(50 * time.Millisecond):
	}

	transactionalBus.Flush()

	select {
	case got := <-received:
		assert.Equal(t, testEvent, got)
	case <-time.After(2 * time.Second):
		t.Fatal("Event was not received within timeout")
	}
	assert.Empty(t, transactionalBus.Pending())
}

func TestMultipleEventsDelivery(t *testing.T) {
	mainBus := NewBus()
	transactionalBus := NewTransactionalBus(mainBus)

	var mu sync.Mutex
	var wg sync.WaitGroup
	wg.Add(3)
	seen := make(map[string]int64)

	mainBus.Subscribe(EventTypePaid, func(ctx context.Context, event Event) {
		defer wg.Done()
		paid := event.(PaidEvent)
		mu.Lock()
		seen[paid.From] = paid.Value
		mu.Unlock()
	})

	transactionalBus.Publish(PaidEvent{From: "a", Value: 100})
	transactionalBus.Publish(PaidEvent{From: "b", Value: 200})
	transactionalBus.Publish(PaidEvent{From: "c", Value: 300})
	require.Len(t, transactionalBus.Pending(), 3)

	transactionalBus.Flush()
	wg.Wait()

	// Order may vary since handlers run on goroutines
	assert.Equal(t, map[string]int64{"a": 100, "b": 200, "c": 300}, seen)
}

func TestTransactionalBusDiscard(t *testing.T) {
	mainBus := NewBus()
	transactionalBus := NewTransactionalBus(mainBus)

	eventReceived := make(chan bool, 1)
	mainBus.Subscribe(EventTypeWinnersPaid, func(ctx context.Context, event Event) {
		eventReceived <- true
	})

	transactionalBus.Publish(WinnersPaidEvent{EventID: 1, WinningFighterID: models.FighterOne, TotalDisbursed: 7500})
	transactionalBus.Discard()
	transactionalBus.Flush()

	select {
	case <-eventReceived:
		t.Fatal("Event was received despite being discarded")
	case <-time.After(100 * time.Millisecond):
	}
}

func TestSubscribeAll(t *testing.T) {
	bus := NewBus()

	var wg sync.WaitGroup
	wg.Add(len(AllEventTypes))
	var mu sync.Mutex
	types := make(map[EventType]bool)

	bus.SubscribeAll(func(ctx context.Context, event Event) {
		defer wg.Done()
		mu.Lock()
		types[event.Type()] = true
		mu.Unlock()
	})

	ctx := context.Background()
	bus.Emit(ctx, EventCreatedEvent{EventID: 1})
	bus.Emit(ctx, BetSubmittedEvent{EventID: 1})
	bus.Emit(ctx, WinnersPaidEvent{EventID: 1})
	bus.Emit(ctx, PaidEvent{From: "x"})
	wg.Wait()

	for _, eventType := range AllEventTypes {
		assert.True(t, types[eventType], "missing %s", eventType)
	}
}

func TestPanickingHandlerDoesNotStopOthers(t *testing.T) {
	bus := NewBus()
	done := make(chan struct{})

	bus.Subscribe(EventTypePaid, func(ctx context.Context, event Event) {
		panic("boom")
	})
	bus.Subscribe(EventTypePaid, func(ctx context.Context, event Event) {
		close(done)
	})

	bus.Emit(context.Background(), PaidEvent{From: "x", Value: 1})

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("Second handler was not called")
	}
}
