package cache

import (
	"context"

	"mainevent/models"

	log "github.com/sirupsen/logrus"
)

// EventSource loads events on a cache miss
type EventSource interface {
	GetEvent(ctx context.Context, eventID int64) (*models.Event, error)
}

// ReadThrough serves events from the cache and falls back to the source.
// Only settled events are cached since they can no longer change.
// Cache errors are logged and never fail the read.
type ReadThrough struct {
	cache  *EventCache
	source EventSource
}

// NewReadThrough creates a read-through event reader
func NewReadThrough(cache *EventCache, source EventSource) *ReadThrough {
	return &ReadThrough{cache: cache, source: source}
}

// GetEvent returns an event by id
func (r *ReadThrough) GetEvent(ctx context.Context, eventID int64) (*models.Event, error) {
	event, ok, err := r.cache.GetEvent(ctx, eventID)
	if err != nil {
		log.WithError(err).WithField("eventID", eventID).Warn("Event cache read failed")
	}
	if ok {
		return event, nil
	}

	event, err = r.source.GetEvent(ctx, eventID)
	if err != nil {
		return nil, err
	}

	if !event.IsSettled() {
		return event, nil
	}
	if err := r.cache.SetEvent(ctx, event); err != nil {
		log.WithError(err).WithField("eventID", eventID).Warn("Event cache write failed")
	}
	return event, nil
}
