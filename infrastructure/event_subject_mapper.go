package infrastructure

import (
	"fmt"

	"mainevent/events"
)

// EventSubjectMapper maps ledger notifications to NATS subjects
type EventSubjectMapper struct{}

// NewEventSubjectMapper creates a new event subject mapper
func NewEventSubjectMapper() *EventSubjectMapper {
	return &EventSubjectMapper{}
}

var subjectsByType = map[events.EventType]string{
	events.EventTypeEventCreated: "mainevent.events.created",
	events.EventTypeBetSubmitted: "mainevent.bets.submitted",
	events.EventTypeWinnersPaid:  "mainevent.settlement.winners_paid",
	events.EventTypePaid:         "mainevent.custody.paid",
}

// MapEventToSubject converts an event to its NATS subject
func (m *EventSubjectMapper) MapEventToSubject(event events.Event) string {
	if subject, ok := subjectsByType[event.Type()]; ok {
		return subject
	}
	return fmt.Sprintf("mainevent.unknown.%s", event.Type())
}

// MapSubjectToEventType converts a NATS subject back to an event type
func (m *EventSubjectMapper) MapSubjectToEventType(subject string) events.EventType {
	for eventType, s := range subjectsByType {
		if s == subject {
			return eventType
		}
	}
	return events.EventType(subject)
}

// GetAllSubjects returns every subject the ledger publishes to, in AllEventTypes order
func (m *EventSubjectMapper) GetAllSubjects() []string {
	subjects := make([]string, 0, len(events.AllEventTypes))
	for _, eventType := range events.AllEventTypes {
		subjects = append(subjects, subjectsByType[eventType])
	}
	return subjects
}
