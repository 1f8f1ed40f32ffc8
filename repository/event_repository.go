package repository

import (
	"context"
	"errors"
	"fmt"

	"mainevent/database"
	"mainevent/models"

	"github.com/jackc/pgx/v5"
)

const eventColumns = `
	id, event_name, event_date,
	fighter1_name, fighter1_odds, fighter2_name, fighter2_odds,
	winner, created_by, created_at, settled_at
`

// EventRepository implements the EventRepository interface
type EventRepository struct {
	q queryable
}

// NewEventRepository creates a new event repository
func NewEventRepository(db *database.DB) *EventRepository {
	return &EventRepository{q: db.Pool}
}

func newEventRepositoryWithTx(tx queryable) *EventRepository {
	return &EventRepository{q: tx}
}

// Create inserts an event with the next dense id.
// Callers hold the ledger lock, so max(id)+1 cannot race.
func (r *EventRepository) Create(ctx context.Context, event *models.Event) error {
	query := `
		INSERT INTO events (
			id, event_name, event_date,
			fighter1_name, fighter1_odds, fighter2_name, fighter2_odds,
			winner, created_by
		)
		SELECT COALESCE(MAX(id), 0) + 1,
			$1::TEXT, $2::TIMESTAMPTZ,
			$3::TEXT, $4::BIGINT, $5::TEXT, $6::BIGINT,
			$7::SMALLINT, $8::TEXT
		FROM events
		RETURNING id, created_at
	`

	err := r.q.QueryRow(ctx, query,
		event.EventName,
		event.EventDate,
		event.Fighter1.Name,
		event.Fighter1.Odds,
		event.Fighter2.Name,
		event.Fighter2.Odds,
		event.Winner,
		event.CreatedBy,
	).Scan(&event.ID, &event.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to create event: %w", err)
	}

	return nil
}

// GetByID retrieves an event by id
func (r *EventRepository) GetByID(ctx context.Context, id int64) (*models.Event, error) {
	query := `SELECT ` + eventColumns + ` FROM events WHERE id = $1`

	event, err := scanEvent(r.q.QueryRow(ctx, query, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get event %d: %w", id, err)
	}
	return event, nil
}

// GetMostRecent returns the event with the highest id
func (r *EventRepository) GetMostRecent(ctx context.Context) (*models.Event, error) {
	query := `SELECT ` + eventColumns + ` FROM events ORDER BY id DESC LIMIT 1`

	event, err := scanEvent(r.q.QueryRow(ctx, query))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get most recent event: %w", err)
	}
	return event, nil
}

// SetWinner records the winner of an unsettled event
func (r *EventRepository) SetWinner(ctx context.Context, id int64, winner int) error {
	query := `
		UPDATE events
		SET winner = $1, settled_at = NOW()
		WHERE id = $2 AND winner = 0
	`

	result, err := r.q.Exec(ctx, query, winner, id)
	if err != nil {
		return fmt.Errorf("failed to set winner for event %d: %w", id, err)
	}
	if result.RowsAffected() == 0 {
		return fmt.Errorf("event %d not found or already settled", id)
	}
	return nil
}

func scanEvent(row pgx.Row) (*models.Event, error) {
	var event models.Event
	var winner int16
	err := row.Scan(
		&event.ID,
		&event.EventName,
		&event.EventDate,
		&event.Fighter1.Name,
		&event.Fighter1.Odds,
		&event.Fighter2.Name,
		&event.Fighter2.Odds,
		&winner,
		&event.CreatedBy,
		&event.CreatedAt,
		&event.SettledAt,
	)
	if err != nil {
		return nil, err
	}

	event.Fighter1.ID = models.FighterOne
	event.Fighter2.ID = models.FighterTwo
	event.Winner = int(winner)
	return &event, nil
}
