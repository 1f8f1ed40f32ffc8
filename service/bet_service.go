package service

import (
	"context"
	"fmt"

	"mainevent/events"
	"mainevent/models"

	log "github.com/sirupsen/logrus"
)

type betService struct {
	uowFactory UnitOfWorkFactory
}

// NewBetService creates a new bet ledger service
func NewBetService(uowFactory UnitOfWorkFactory) BetService {
	return &betService{uowFactory: uowFactory}
}

// PlaceBet stakes amount on a fighter. A bettor holds at most one position per event:
// stakes on the same fighter accumulate, stakes on the other fighter are rejected.
func (s *betService) PlaceBet(ctx context.Context, eventID int64, fighterID int, amount int64, bettor string) (int64, error) {
	uow := s.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return 0, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer uow.Rollback()

	event, err := loadEvent(ctx, uow, eventID)
	if err != nil {
		return 0, err
	}
	if _, ok := event.Fighter(fighterID); !ok {
		return 0, ErrFighterNotFound
	}
	if event.IsSettled() {
		return 0, ErrEventAlreadySettled
	}
	if amount <= 0 {
		return 0, ErrAmountMustBePositive
	}

	bet, err := uow.BetRepository().Get(ctx, eventID, bettor)
	if err != nil {
		return 0, fmt.Errorf("failed to get bet: %w", err)
	}
	if bet != nil && bet.HasPosition() && bet.FighterID != fighterID {
		return 0, ErrConflictingBet
	}

	if bet == nil {
		bet = &models.Bet{EventID: eventID, Bettor: bettor}
	}
	newTotal, err := addChecked(bet.Amount, amount)
	if err != nil {
		return 0, err
	}

	// The stake must be received before the ledger accepts it
	balance, err := uow.AccountRepository().GetBalance(ctx, bettor)
	if err != nil {
		return 0, fmt.Errorf("failed to get wallet balance: %w", err)
	}
	if balance < amount {
		return 0, ErrInsufficientFunds
	}
	if err := uow.AccountRepository().Debit(ctx, bettor, amount); err != nil {
		return 0, fmt.Errorf("failed to debit wallet: %w", err)
	}
	if err := uow.CustodyRepository().Record(ctx, &models.CustodyEntry{
		Kind:     models.CustodyEntryStake,
		Identity: bettor,
		EventID:  eventID,
		Amount:   amount,
	}); err != nil {
		return 0, fmt.Errorf("failed to record stake: %w", err)
	}

	bet.FighterID = fighterID
	bet.Amount = newTotal
	if err := uow.BetRepository().Save(ctx, bet); err != nil {
		return 0, fmt.Errorf("failed to save bet: %w", err)
	}

	uow.EventBus().Publish(events.BetSubmittedEvent{
		From:      bettor,
		EventID:   eventID,
		FighterID: fighterID,
		Amount:    amount,
	})

	if err := uow.Commit(); err != nil {
		return 0, fmt.Errorf("failed to commit transaction: %w", err)
	}

	log.WithFields(log.Fields{
		"eventID":   eventID,
		"bettor":    bettor,
		"fighterID": fighterID,
		"amount":    amount,
		"total":     newTotal,
	}).Info("Bet placed")

	return newTotal, nil
}

// GetBet returns the bettor's position on an event
func (s *betService) GetBet(ctx context.Context, eventID int64, bettor string) (*models.Bet, error) {
	uow := s.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer uow.Rollback()

	if _, err := loadEvent(ctx, uow, eventID); err != nil {
		return nil, err
	}

	bet, err := uow.BetRepository().Get(ctx, eventID, bettor)
	if err != nil {
		return nil, fmt.Errorf("failed to get bet: %w", err)
	}
	if bet == nil {
		bet = &models.Bet{EventID: eventID, Bettor: bettor}
	}

	if err := uow.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}
	return bet, nil
}
