package service

import (
	"context"
	"fmt"

	"mainevent/events"
	"mainevent/models"

	log "github.com/sirupsen/logrus"
)

const defaultCustodyHistoryLimit = 20

type custodyService struct {
	uowFactory UnitOfWorkFactory
	guard      *AuthorizationGuard
}

// NewCustodyService creates a new custody service
func NewCustodyService(uowFactory UnitOfWorkFactory, guard *AuthorizationGuard) CustodyService {
	return &custodyService{
		uowFactory: uowFactory,
		guard:      guard,
	}
}

// Deposit moves value from the caller's wallet straight into custody
func (s *custodyService) Deposit(ctx context.Context, from string, value int64) error {
	if value <= 0 {
		return ErrAmountMustBePositive
	}

	uow := s.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer uow.Rollback()

	balance, err := uow.AccountRepository().GetBalance(ctx, from)
	if err != nil {
		return fmt.Errorf("failed to get wallet balance: %w", err)
	}
	if balance < value {
		return ErrInsufficientFunds
	}

	custody, err := uow.CustodyRepository().Balance(ctx)
	if err != nil {
		return fmt.Errorf("failed to get custody balance: %w", err)
	}
	if _, err := addChecked(custody, value); err != nil {
		return err
	}

	if err := uow.AccountRepository().Debit(ctx, from, value); err != nil {
		return fmt.Errorf("failed to debit wallet: %w", err)
	}
	if err := uow.CustodyRepository().Record(ctx, &models.CustodyEntry{
		Kind:     models.CustodyEntryDeposit,
		Identity: from,
		Amount:   value,
	}); err != nil {
		return fmt.Errorf("failed to record deposit: %w", err)
	}

	uow.EventBus().Publish(events.PaidEvent{From: from, Value: value})

	if err := uow.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	log.WithFields(log.Fields{
		"from":  from,
		"value": value,
	}).Info("Deposit received")
	return nil
}

// CustodyBalance returns the value currently held by the ledger
func (s *custodyService) CustodyBalance(ctx context.Context) (int64, error) {
	uow := s.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return 0, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer uow.Rollback()

	balance, err := uow.CustodyRepository().Balance(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to get custody balance: %w", err)
	}

	if err := uow.Commit(); err != nil {
		return 0, fmt.Errorf("failed to commit transaction: %w", err)
	}
	return balance, nil
}

// WalletBalance returns an identity's wallet balance
func (s *custodyService) WalletBalance(ctx context.Context, identity string) (int64, error) {
	uow := s.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return 0, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer uow.Rollback()

	balance, err := uow.AccountRepository().GetBalance(ctx, identity)
	if err != nil {
		return 0, fmt.Errorf("failed to get wallet balance: %w", err)
	}

	if err := uow.Commit(); err != nil {
		return 0, fmt.Errorf("failed to commit transaction: %w", err)
	}
	return balance, nil
}

// Fund credits a wallet on behalf of the authority
func (s *custodyService) Fund(ctx context.Context, identity string, amount int64, caller string) error {
	if err := s.guard.Authorize(caller); err != nil {
		return err
	}
	if amount <= 0 {
		return ErrAmountMustBePositive
	}

	uow := s.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer uow.Rollback()

	balance, err := uow.AccountRepository().GetBalance(ctx, identity)
	if err != nil {
		return fmt.Errorf("failed to get wallet balance: %w", err)
	}
	if _, err := addChecked(balance, amount); err != nil {
		return err
	}

	if err := uow.AccountRepository().Credit(ctx, identity, amount); err != nil {
		return fmt.Errorf("failed to credit wallet: %w", err)
	}

	if err := uow.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	log.WithFields(log.Fields{
		"identity": identity,
		"amount":   amount,
	}).Info("Wallet funded")
	return nil
}

// CustodyHistory returns the newest custody entries first
func (s *custodyService) CustodyHistory(ctx context.Context, limit int) ([]*models.CustodyEntry, error) {
	if limit <= 0 {
		limit = defaultCustodyHistoryLimit
	}

	uow := s.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer uow.Rollback()

	entries, err := uow.CustodyRepository().ListRecent(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list custody entries: %w", err)
	}

	if err := uow.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}
	return entries, nil
}
