package service

import (
	"context"
	"fmt"

	"mainevent/events"
	"mainevent/models"

	log "github.com/sirupsen/logrus"
)

type settlementService struct {
	uowFactory UnitOfWorkFactory
	guard      *AuthorizationGuard
}

// NewSettlementService creates a new settlement service
func NewSettlementService(uowFactory UnitOfWorkFactory, guard *AuthorizationGuard) SettlementService {
	return &settlementService{
		uowFactory: uowFactory,
		guard:      guard,
	}
}

// PayWinners declares the winner of an event and pays every bettor who backed it.
// Positions on the losing fighter are forfeited to custody. The whole settlement
// commits or none of it does, and an event can only be settled once.
func (s *settlementService) PayWinners(ctx context.Context, eventID int64, winningFighterID int, caller string) (*models.SettlementResult, error) {
	if err := s.guard.Authorize(caller); err != nil {
		return nil, err
	}

	uow := s.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer uow.Rollback()

	event, err := loadEvent(ctx, uow, eventID)
	if err != nil {
		return nil, err
	}
	winner, ok := event.Fighter(winningFighterID)
	if !ok {
		return nil, ErrFighterNotFound
	}
	if event.IsSettled() {
		return nil, ErrEventAlreadySettled
	}

	bets, err := uow.BetRepository().ListByEvent(ctx, eventID)
	if err != nil {
		return nil, fmt.Errorf("failed to list bets: %w", err)
	}

	result, err := computeSettlement(eventID, winner, bets)
	if err != nil {
		return nil, err
	}

	custody, err := uow.CustodyRepository().Balance(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get custody balance: %w", err)
	}
	// Stakes still open on other events stay reserved for their own settlement.
	reserved, err := uow.BetRepository().OpenStakesExcluding(ctx, eventID)
	if err != nil {
		return nil, fmt.Errorf("failed to sum open stakes: %w", err)
	}
	if custody-reserved < result.TotalDisbursed {
		log.WithFields(log.Fields{
			"eventID":  eventID,
			"custody":  custody,
			"reserved": reserved,
			"required": result.TotalDisbursed,
		}).Error("Custody cannot cover settlement")
		return nil, ErrInsufficientFunds
	}

	if err := uow.EventRepository().SetWinner(ctx, eventID, winningFighterID); err != nil {
		return nil, fmt.Errorf("failed to set winner: %w", err)
	}

	for i, bet := range bets {
		line := result.Payouts[i]
		if line.Amount > 0 {
			if err := uow.CustodyRepository().Record(ctx, &models.CustodyEntry{
				Kind:     models.CustodyEntryPayout,
				Identity: bet.Bettor,
				EventID:  eventID,
				Amount:   -line.Amount,
			}); err != nil {
				return nil, fmt.Errorf("failed to record payout for %s: %w", bet.Bettor, err)
			}
			if err := uow.AccountRepository().Credit(ctx, bet.Bettor, line.Amount); err != nil {
				return nil, fmt.Errorf("failed to credit %s: %w", bet.Bettor, err)
			}
		}

		bet.Amount = 0
		bet.Payout = line.Amount
		if err := uow.BetRepository().Save(ctx, bet); err != nil {
			return nil, fmt.Errorf("failed to clear bet for %s: %w", bet.Bettor, err)
		}
	}

	uow.EventBus().Publish(events.WinnersPaidEvent{
		EventID:          eventID,
		WinningFighterID: winningFighterID,
		Payouts:          result.Payouts,
		TotalDisbursed:   result.TotalDisbursed,
	})

	if err := uow.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}

	log.WithFields(log.Fields{
		"eventID":        eventID,
		"winner":         winningFighterID,
		"positions":      len(bets),
		"winners":        len(result.Winners()),
		"totalDisbursed": result.TotalDisbursed,
	}).Info("Winners paid")

	return result, nil
}

// computeSettlement prices every position without touching state.
// Payout lines follow the order of bets.
func computeSettlement(eventID int64, winner models.Fighter, bets []*models.Bet) (*models.SettlementResult, error) {
	result := &models.SettlementResult{
		EventID:          eventID,
		WinningFighterID: winner.ID,
		Payouts:          make([]models.Payout, 0, len(bets)),
	}

	for _, bet := range bets {
		line := models.Payout{
			Bettor:    bet.Bettor,
			FighterID: bet.FighterID,
			Stake:     bet.Amount,
		}
		if bet.FighterID == winner.ID && bet.Amount > 0 {
			payout, err := CalculatePayout(bet.Amount, winner.Odds)
			if err != nil {
				return nil, err
			}
			total, err := addChecked(result.TotalDisbursed, payout)
			if err != nil {
				return nil, err
			}
			line.Amount = payout
			result.TotalDisbursed = total
		}
		result.Payouts = append(result.Payouts, line)
	}

	return result, nil
}
