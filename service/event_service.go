package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"mainevent/events"
	"mainevent/models"

	log "github.com/sirupsen/logrus"
)

type eventService struct {
	uowFactory UnitOfWorkFactory
	guard      *AuthorizationGuard
}

// NewEventService creates a new event service
func NewEventService(uowFactory UnitOfWorkFactory, guard *AuthorizationGuard) EventService {
	return &eventService{
		uowFactory: uowFactory,
		guard:      guard,
	}
}

// CreateEvent publishes a new head-to-head event
func (s *eventService) CreateEvent(ctx context.Context, name1 string, odds1 int64, name2 string, odds2 int64, eventName string, eventDate time.Time, caller string) (int64, error) {
	if err := s.guard.Authorize(caller); err != nil {
		return 0, err
	}
	if odds1 == 0 || odds2 == 0 {
		return 0, ErrInvalidOdds
	}

	name1 = strings.TrimSpace(name1)
	name2 = strings.TrimSpace(name2)
	eventName = strings.TrimSpace(eventName)
	if name1 == "" || name2 == "" || eventName == "" {
		return 0, ErrInvalidName
	}

	uow := s.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return 0, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer uow.Rollback()

	event := &models.Event{
		EventName: eventName,
		EventDate: eventDate,
		Fighter1:  models.Fighter{ID: models.FighterOne, Name: name1, Odds: odds1},
		Fighter2:  models.Fighter{ID: models.FighterTwo, Name: name2, Odds: odds2},
		Winner:    models.NoWinner,
		CreatedBy: caller,
	}
	if err := uow.EventRepository().Create(ctx, event); err != nil {
		return 0, fmt.Errorf("failed to create event: %w", err)
	}

	uow.EventBus().Publish(events.EventCreatedEvent{
		EventID:   event.ID,
		EventName: event.EventName,
		EventDate: event.EventDate,
		Fighter1:  event.Fighter1,
		Fighter2:  event.Fighter2,
		CreatedBy: caller,
	})

	if err := uow.Commit(); err != nil {
		return 0, fmt.Errorf("failed to commit transaction: %w", err)
	}

	log.WithFields(log.Fields{
		"eventID":   event.ID,
		"eventName": event.EventName,
		"fighter1":  name1,
		"fighter2":  name2,
	}).Info("Event created")

	return event.ID, nil
}

// GetMostRecentEvent returns the event with the highest id
func (s *eventService) GetMostRecentEvent(ctx context.Context) (*models.Event, error) {
	uow := s.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer uow.Rollback()

	event, err := uow.EventRepository().GetMostRecent(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get most recent event: %w", err)
	}
	if event == nil {
		return nil, ErrNoEventsExist
	}

	if err := uow.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}
	return event, nil
}

// GetFightersForMostRecentEvent returns both fighters of the most recent event
func (s *eventService) GetFightersForMostRecentEvent(ctx context.Context) (models.Fighter, models.Fighter, error) {
	event, err := s.GetMostRecentEvent(ctx)
	if err != nil {
		return models.Fighter{}, models.Fighter{}, err
	}
	return event.Fighter1, event.Fighter2, nil
}

// GetEvent returns an event by id
func (s *eventService) GetEvent(ctx context.Context, eventID int64) (*models.Event, error) {
	uow := s.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer uow.Rollback()

	event, err := loadEvent(ctx, uow, eventID)
	if err != nil {
		return nil, err
	}

	if err := uow.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}
	return event, nil
}

// loadEvent resolves an event inside an open unit of work
func loadEvent(ctx context.Context, uow UnitOfWork, eventID int64) (*models.Event, error) {
	event, err := uow.EventRepository().GetByID(ctx, eventID)
	if err != nil {
		return nil, fmt.Errorf("failed to get event %d: %w", eventID, err)
	}
	if event == nil {
		return nil, ErrEventNotFound
	}
	return event, nil
}
