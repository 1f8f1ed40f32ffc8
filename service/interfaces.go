package service

import (
	"context"
	"time"

	"mainevent/events"
	"mainevent/models"
)

// EventRepository defines the interface for event data access
type EventRepository interface {
	// Create stores a new event and assigns it the next dense id
	Create(ctx context.Context, event *models.Event) error

	// GetByID retrieves an event by id, returning nil if it does not exist
	GetByID(ctx context.Context, id int64) (*models.Event, error)

	// GetMostRecent returns the event with the highest id, or nil if there are none
	GetMostRecent(ctx context.Context) (*models.Event, error)

	// SetWinner records the winning fighter for an unsettled event
	SetWinner(ctx context.Context, id int64, winner int) error
}

// BetRepository defines the interface for the bet ledger
type BetRepository interface {
	// Get returns the bettor's position on an event, or nil if there is none
	Get(ctx context.Context, eventID int64, bettor string) (*models.Bet, error)

	// Save inserts or updates a position
	Save(ctx context.Context, bet *models.Bet) error

	// ListByEvent returns every position on an event in insertion order
	ListByEvent(ctx context.Context, eventID int64) ([]*models.Bet, error)

	// OpenStakesExcluding sums open stakes on every event except eventID
	OpenStakesExcluding(ctx context.Context, eventID int64) (int64, error)
}

// AccountRepository defines the interface for bettor wallets
type AccountRepository interface {
	// GetBalance returns the wallet balance, zero for unknown identities
	GetBalance(ctx context.Context, identity string) (int64, error)

	// Credit adds to a wallet, creating it if needed
	Credit(ctx context.Context, identity string, amount int64) error

	// Debit deducts from a wallet, failing with ErrInsufficientFunds if the balance is short
	Debit(ctx context.Context, identity string, amount int64) error
}

// CustodyRepository defines the interface for value held by the ledger
type CustodyRepository interface {
	// Balance returns the sum of all custody entries
	Balance(ctx context.Context) (int64, error)

	// Record appends a custody entry
	Record(ctx context.Context, entry *models.CustodyEntry) error

	// ListRecent returns the newest entries first
	ListRecent(ctx context.Context, limit int) ([]*models.CustodyEntry, error)
}

// EventPublisher defines the interface for publishing events
type EventPublisher interface {
	Publish(event events.Event)
}

// UnitOfWork scopes repositories to one serialized transaction
type UnitOfWork interface {
	Begin(ctx context.Context) error
	Commit() error
	Rollback() error

	EventRepository() EventRepository
	BetRepository() BetRepository
	AccountRepository() AccountRepository
	CustodyRepository() CustodyRepository
	EventBus() EventPublisher
}

// UnitOfWorkFactory creates units of work
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

// EventService is the event store
type EventService interface {
	// CreateEvent publishes a new head-to-head event. Authority only.
	CreateEvent(ctx context.Context, name1 string, odds1 int64, name2 string, odds2 int64, eventName string, eventDate time.Time, caller string) (int64, error)

	// GetMostRecentEvent returns the event with the highest id
	GetMostRecentEvent(ctx context.Context) (*models.Event, error)

	// GetFightersForMostRecentEvent returns both fighters of the most recent event
	GetFightersForMostRecentEvent(ctx context.Context) (models.Fighter, models.Fighter, error)

	// GetEvent returns an event by id
	GetEvent(ctx context.Context, eventID int64) (*models.Event, error)
}

// BetService is the bet ledger
type BetService interface {
	// PlaceBet stakes amount on a fighter and returns the bettor's new total on the event
	PlaceBet(ctx context.Context, eventID int64, fighterID int, amount int64, bettor string) (int64, error)

	// GetBet returns the bettor's position, a zero-amount bet if there is none
	GetBet(ctx context.Context, eventID int64, bettor string) (*models.Bet, error)
}

// SettlementService pays out events
type SettlementService interface {
	// PayWinners declares the winner and disburses every winning position. Authority only.
	PayWinners(ctx context.Context, eventID int64, winningFighterID int, caller string) (*models.SettlementResult, error)
}

// CustodyService handles value entering custody outside of bets
type CustodyService interface {
	// Deposit moves value from the caller's wallet into custody
	Deposit(ctx context.Context, from string, value int64) error

	// CustodyBalance returns the value currently held by the ledger
	CustodyBalance(ctx context.Context) (int64, error)

	// WalletBalance returns an identity's wallet balance
	WalletBalance(ctx context.Context, identity string) (int64, error)

	// Fund credits a wallet. Authority only.
	Fund(ctx context.Context, identity string, amount int64, caller string) error

	// CustodyHistory returns the newest custody entries first
	CustodyHistory(ctx context.Context, limit int) ([]*models.CustodyEntry, error)
}
