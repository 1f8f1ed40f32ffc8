package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"

	"mainevent/events"
	"mainevent/models"

	"github.com/redis/go-redis/v9"
	log "github.com/sirupsen/logrus"
)

const keyPrefix = "mainevent:event:"

// ConnectRedis opens a client and checks the server is reachable
func ConnectRedis(ctx context.Context, addr string) (*redis.Client, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr: addr,
	})

	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("failed to ping redis at %s: %w", addr, err)
	}
	return rdb, nil
}

// EventCache stores event cards by id
type EventCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewEventCache creates a cache whose entries expire after ttl
func NewEventCache(client *redis.Client, ttl time.Duration) *EventCache {
	return &EventCache{client: client, ttl: ttl}
}

func eventKey(id int64) string {
	return keyPrefix + strconv.FormatInt(id, 10)
}

// GetEvent returns the cached event and whether it was present
func (c *EventCache) GetEvent(ctx context.Context, id int64) (*models.Event, bool, error) {
	data, err := c.client.Get(ctx, eventKey(id)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("failed to read event %d from cache: %w", id, err)
	}

	var event models.Event
	if err := json.Unmarshal(data, &event); err != nil {
		return nil, false, fmt.Errorf("failed to decode cached event %d: %w", id, err)
	}
	return &event, true, nil
}

// SetEvent caches an event
func (c *EventCache) SetEvent(ctx context.Context, event *models.Event) error {
	data, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to encode event %d: %w", event.ID, err)
	}
	if err := c.client.Set(ctx, eventKey(event.ID), data, c.ttl).Err(); err != nil {
		return fmt.Errorf("failed to cache event %d: %w", event.ID, err)
	}
	return nil
}

// Invalidate drops a cached event
func (c *EventCache) Invalidate(ctx context.Context, id int64) error {
	if err := c.client.Del(ctx, eventKey(id)).Err(); err != nil {
		return fmt.Errorf("failed to invalidate event %d: %w", id, err)
	}
	return nil
}

// Attach drops settled events from the cache as settlements commit
func (c *EventCache) Attach(bus *events.Bus) {
	bus.Subscribe(events.EventTypeWinnersPaid, func(ctx context.Context, event events.Event) {
		paid, ok := event.(events.WinnersPaidEvent)
		if !ok {
			return
		}
		if err := c.Invalidate(ctx, paid.EventID); err != nil {
			log.WithFields(log.Fields{
				"eventID": paid.EventID,
				"error":   err,
			}).Warn("Failed to invalidate settled event")
		}
	})
}
