package repository

import (
	"context"
	"fmt"

	"mainevent/database"
	"mainevent/models"
)

// CustodyRepository implements the CustodyRepository interface over custody_ledger
type CustodyRepository struct {
	q queryable
}

// NewCustodyRepository creates a new custody repository
func NewCustodyRepository(db *database.DB) *CustodyRepository {
	return &CustodyRepository{q: db.Pool}
}

func newCustodyRepositoryWithTx(tx queryable) *CustodyRepository {
	return &CustodyRepository{q: tx}
}

// Balance sums the ledger
func (r *CustodyRepository) Balance(ctx context.Context) (int64, error) {
	var balance int64
	err := r.q.QueryRow(ctx, `SELECT COALESCE(SUM(amount), 0)::BIGINT FROM custody_ledger`).Scan(&balance)
	if err != nil {
		return 0, fmt.Errorf("failed to get custody balance: %w", err)
	}
	return balance, nil
}

// Record appends an entry. EventID 0 is stored as NULL.
func (r *CustodyRepository) Record(ctx context.Context, entry *models.CustodyEntry) error {
	var eventID *int64
	if entry.EventID != 0 {
		eventID = &entry.EventID
	}

	query := `
		INSERT INTO custody_ledger (kind, identity, event_id, amount)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at
	`

	err := r.q.QueryRow(ctx, query,
		string(entry.Kind),
		entry.Identity,
		eventID,
		entry.Amount,
	).Scan(&entry.ID, &entry.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to record custody %s entry: %w", entry.Kind, err)
	}
	return nil
}

// ListRecent returns up to limit entries, newest first
func (r *CustodyRepository) ListRecent(ctx context.Context, limit int) ([]*models.CustodyEntry, error) {
	if limit <= 0 {
		return []*models.CustodyEntry{}, nil
	}

	query := `
		SELECT id, kind, identity, event_id, amount, created_at
		FROM custody_ledger
		ORDER BY id DESC
		LIMIT $1
	`

	rows, err := r.q.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list custody entries: %w", err)
	}
	defer rows.Close()

	entries := make([]*models.CustodyEntry, 0, limit)
	for rows.Next() {
		var entry models.CustodyEntry
		var kind string
		var eventID *int64
		if err := rows.Scan(&entry.ID, &kind, &entry.Identity, &eventID, &entry.Amount, &entry.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan custody entry: %w", err)
		}
		entry.Kind = models.CustodyEntryKind(kind)
		if eventID != nil {
			entry.EventID = *eventID
		}
		entries = append(entries, &entry)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate custody entries: %w", err)
	}
	return entries, nil
}
