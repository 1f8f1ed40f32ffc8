package repository

import (
	"context"
	"errors"
	"fmt"

	"mainevent/database"
	"mainevent/models"

	"github.com/jackc/pgx/v5"
)

// BetRepository implements the BetRepository interface
type BetRepository struct {
	q queryable
}

// NewBetRepository creates a new bet repository
func NewBetRepository(db *database.DB) *BetRepository {
	return &BetRepository{q: db.Pool}
}

func newBetRepositoryWithTx(tx queryable) *BetRepository {
	return &BetRepository{q: tx}
}

// Get returns a bettor's position on an event
func (r *BetRepository) Get(ctx context.Context, eventID int64, bettor string) (*models.Bet, error) {
	query := `
		SELECT event_id, bettor, fighter_id, amount, payout, created_at, updated_at
		FROM bets
		WHERE event_id = $1 AND bettor = $2
	`

	bet, err := scanBet(r.q.QueryRow(ctx, query, eventID, bettor))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get bet for %s on event %d: %w", bettor, eventID, err)
	}
	return bet, nil
}

// Save upserts a position. The insertion sequence is kept on update.
func (r *BetRepository) Save(ctx context.Context, bet *models.Bet) error {
	query := `
		INSERT INTO bets (event_id, bettor, fighter_id, amount, payout)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (event_id, bettor) DO UPDATE
		SET fighter_id = EXCLUDED.fighter_id,
			amount = EXCLUDED.amount,
			payout = EXCLUDED.payout,
			updated_at = NOW()
		RETURNING created_at, updated_at
	`

	err := r.q.QueryRow(ctx, query,
		bet.EventID,
		bet.Bettor,
		bet.FighterID,
		bet.Amount,
		bet.Payout,
	).Scan(&bet.CreatedAt, &bet.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to save bet for %s on event %d: %w", bet.Bettor, bet.EventID, err)
	}
	return nil
}

// ListByEvent returns every position on an event in insertion order
func (r *BetRepository) ListByEvent(ctx context.Context, eventID int64) ([]*models.Bet, error) {
	query := `
		SELECT event_id, bettor, fighter_id, amount, payout, created_at, updated_at
		FROM bets
		WHERE event_id = $1
		ORDER BY seq ASC
	`

	rows, err := r.q.Query(ctx, query, eventID)
	if err != nil {
		return nil, fmt.Errorf("failed to list bets for event %d: %w", eventID, err)
	}
	defer rows.Close()

	bets := make([]*models.Bet, 0)
	for rows.Next() {
		bet, err := scanBet(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan bet: %w", err)
		}
		bets = append(bets, bet)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate bets: %w", err)
	}
	return bets, nil
}

// OpenStakesExcluding sums open stakes on unsettled events other than eventID
func (r *BetRepository) OpenStakesExcluding(ctx context.Context, eventID int64) (int64, error) {
	query := `
		SELECT COALESCE(SUM(b.amount), 0)::BIGINT
		FROM bets b
		JOIN events e ON e.id = b.event_id
		WHERE b.event_id <> $1 AND e.winner = 0
	`

	var total int64
	if err := r.q.QueryRow(ctx, query, eventID).Scan(&total); err != nil {
		return 0, fmt.Errorf("failed to sum open stakes excluding event %d: %w", eventID, err)
	}
	return total, nil
}

func scanBet(row pgx.Row) (*models.Bet, error) {
	var bet models.Bet
	var fighterID int16
	err := row.Scan(
		&bet.EventID,
		&bet.Bettor,
		&fighterID,
		&bet.Amount,
		&bet.Payout,
		&bet.CreatedAt,
		&bet.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	bet.FighterID = int(fighterID)
	return &bet, nil
}
