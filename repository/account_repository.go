package repository

import (
	"context"
	"errors"
	"fmt"

	"mainevent/database"
	"mainevent/service"

	"github.com/jackc/pgx/v5"
)

// AccountRepository implements the AccountRepository interface over the wallets table
type AccountRepository struct {
	q queryable
}

// NewAccountRepository creates a new account repository
func NewAccountRepository(db *database.DB) *AccountRepository {
	return &AccountRepository{q: db.Pool}
}

func newAccountRepositoryWithTx(tx queryable) *AccountRepository {
	return &AccountRepository{q: tx}
}

// GetBalance returns the wallet balance, zero if the wallet does not exist
func (r *AccountRepository) GetBalance(ctx context.Context, identity string) (int64, error) {
	var balance int64
	err := r.q.QueryRow(ctx, `SELECT balance FROM wallets WHERE identity = $1`, identity).Scan(&balance)
	if errors.Is(err, pgx.ErrNoRows) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("failed to get balance for %s: %w", identity, err)
	}
	return balance, nil
}

// Credit adds amount to a wallet, creating it on first use
func (r *AccountRepository) Credit(ctx context.Context, identity string, amount int64) error {
	query := `
		INSERT INTO wallets (identity, balance)
		VALUES ($1, $2)
		ON CONFLICT (identity) DO UPDATE
		SET balance = wallets.balance + EXCLUDED.balance,
			updated_at = NOW()
	`

	if _, err := r.q.Exec(ctx, query, identity, amount); err != nil {
		return fmt.Errorf("failed to credit %s: %w", identity, err)
	}
	return nil
}

// Debit removes amount from a wallet
func (r *AccountRepository) Debit(ctx context.Context, identity string, amount int64) error {
	query := `
		UPDATE wallets
		SET balance = balance - $2, updated_at = NOW()
		WHERE identity = $1 AND balance >= $2
	`

	result, err := r.q.Exec(ctx, query, identity, amount)
	if err != nil {
		return fmt.Errorf("failed to debit %s: %w", identity, err)
	}
	if result.RowsAffected() == 0 {
		return service.ErrInsufficientFunds
	}
	return nil
}
