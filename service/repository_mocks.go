package service

import (
	"context"

	"mainevent/events"
	"mainevent/models"

	"github.com/stretchr/testify/mock"
)

// MockEventRepository is a mock implementation of EventRepository
type MockEventRepository struct {
	mock.Mock
}

func (m *MockEventRepository) Create(ctx context.Context, event *models.Event) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}

func (m *MockEventRepository) GetByID(ctx context.Context, id int64) (*models.Event, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Event), args.Error(1)
}

func (m *MockEventRepository) GetMostRecent(ctx context.Context) (*models.Event, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Event), args.Error(1)
}

func (m *MockEventRepository) SetWinner(ctx context.Context, id int64, winner int) error {
	args := m.Called(ctx, id, winner)
	return args.Error(0)
}

// MockBetRepository is a mock implementation of BetRepository
type MockBetRepository struct {
	mock.Mock
}

func (m *MockBetRepository) Get(ctx context.Context, eventID int64, bettor string) (*models.Bet, error) {
	args := m.Called(ctx, eventID, bettor)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Bet), args.Error(1)
}

func (m *MockBetRepository) Save(ctx context.Context, bet *models.Bet) error {
	args := m.Called(ctx, bet)
	return args.Error(0)
}

func (m *MockBetRepository) ListByEvent(ctx context.Context, eventID int64) ([]*models.Bet, error) {
	args := m.Called(ctx, eventID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Bet), args.Error(1)
}

func (m *MockBetRepository) OpenStakesExcluding(ctx context.Context, eventID int64) (int64, error) {
	args := m.Called(ctx, eventID)
	return args.Get(0).(int64), args.Error(1)
}

// MockAccountRepository is a mock implementation of AccountRepository
type MockAccountRepository struct {
	mock.Mock
}

func (m *MockAccountRepository) GetBalance(ctx context.Context, identity string) (int64, error) {
	args := m.Called(ctx, identity)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockAccountRepository) Credit(ctx context.Context, identity string, amount int64) error {
	args := m.Called(ctx, identity, amount)
	return args.Error(0)
}

func (m *MockAccountRepository) Debit(ctx context.Context, identity string, amount int64) error {
	args := m.Called(ctx, identity, amount)
	return args.Error(0)
}

// MockCustodyRepository is a mock implementation of CustodyRepository
type MockCustodyRepository struct {
	mock.Mock
}

func (m *MockCustodyRepository) Balance(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockCustodyRepository) Record(ctx context.Context, entry *models.CustodyEntry) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}

func (m *MockCustodyRepository) ListRecent(ctx context.Context, limit int) ([]*models.CustodyEntry, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.CustodyEntry), args.Error(1)
}

// MockEventPublisher is a mock implementation of EventPublisher
type MockEventPublisher struct {
	mock.Mock
}

func (m *MockEventPublisher) Publish(event events.Event) {
	m.Called(event)
}

// MockUnitOfWork is a mock implementation of UnitOfWork
type MockUnitOfWork struct {
	mock.Mock
	eventRepo   EventRepository
	betRepo     BetRepository
	accountRepo AccountRepository
	custodyRepo CustodyRepository
	eventBus    EventPublisher
}

// SetRepositories wires the repositories handed out by the mock
func (m *MockUnitOfWork) SetRepositories(eventRepo EventRepository, betRepo BetRepository, accountRepo AccountRepository, custodyRepo CustodyRepository) {
	m.eventRepo = eventRepo
	m.betRepo = betRepo
	m.accountRepo = accountRepo
	m.custodyRepo = custodyRepo
}

// SetEventBus wires the publisher handed out by the mock
func (m *MockUnitOfWork) SetEventBus(bus EventPublisher) {
	m.eventBus = bus
}

func (m *MockUnitOfWork) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUnitOfWork) Commit() error {
	args := m.Called()
	return args.Error(0)
}

func (m *MockUnitOfWork) Rollback() error {
	args := m.Called()
	return args.Error(0)
}

func (m *MockUnitOfWork) EventRepository() EventRepository {
	return m.eventRepo
}

func (m *MockUnitOfWork) BetRepository() BetRepository {
	return m.betRepo
}

func (m *MockUnitOfWork) AccountRepository() AccountRepository {
	return m.accountRepo
}

func (m *MockUnitOfWork) CustodyRepository() CustodyRepository {
	return m.custodyRepo
}

func (m *MockUnitOfWork) EventBus() EventPublisher {
	return m.eventBus
}

// MockUnitOfWorkFactory is a mock implementation of UnitOfWorkFactory
type MockUnitOfWorkFactory struct {
	mock.Mock
}

func (m *MockUnitOfWorkFactory) Create() UnitOfWork {
	args := m.Called()
	return args.Get(0).(UnitOfWork)
}
