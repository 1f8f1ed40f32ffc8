package service

import (
	"testing"
	"time"

	"mainevent/models"

	"github.com/stretchr/testify/mock"
)

const (
	testAuthority = "100000000000000001"
	testBettor    = "200000000000000002"
)

type testMocks struct {
	factory   *MockUnitOfWorkFactory
	uow       *MockUnitOfWork
	events    *MockEventRepository
	bets      *MockBetRepository
	accounts  *MockAccountRepository
	custody   *MockCustodyRepository
	publisher *MockEventPublisher
}

func newTestMocks() *testMocks {
	m := &testMocks{
		factory:   new(MockUnitOfWorkFactory),
		uow:       new(MockUnitOfWork),
		events:    new(MockEventRepository),
		bets:      new(MockBetRepository),
		accounts:  new(MockAccountRepository),
		custody:   new(MockCustodyRepository),
		publisher: new(MockEventPublisher),
	}
	m.uow.SetRepositories(m.events, m.bets, m.accounts, m.custody)
	m.uow.SetEventBus(m.publisher)
	m.factory.On("Create").Return(m.uow)
	return m
}

func (m *testMocks) all() []interface{} {
	return []interface{}{m.factory, m.uow, m.events, m.bets, m.accounts, m.custody, m.publisher}
}

func createTestGuard() *AuthorizationGuard {
	return NewAuthorizationGuard(testAuthority)
}

func createTestEvent(id int64, odds1, odds2 int64) *models.Event {
	return &models.Event{
		ID:        id,
		EventName: "Main Event",
		EventDate: time.Date(2026, 3, 7, 3, 0, 0, 0, time.UTC),
		Fighter1:  models.Fighter{ID: models.FighterOne, Name: "Fighter A", Odds: odds1},
		Fighter2:  models.Fighter{ID: models.FighterTwo, Name: "Fighter B", Odds: odds2},
		Winner:    models.NoWinner,
		CreatedBy: testAuthority,
	}
}

func createTestBet(eventID int64, bettor string, fighterID int, amount int64) *models.Bet {
	return &models.Bet{
		EventID:   eventID,
		Bettor:    bettor,
		FighterID: fighterID,
		Amount:    amount,
	}
}

// Mock helper functions

// setupBasicTransactionMocks expects a unit of work that begins and is always rolled back on exit.
// Tests for successful operations also call expectCommit.
func setupBasicTransactionMocks(mockUoW *MockUnitOfWork) {
	mockUoW.On("Begin", mock.Anything).Return(nil)
	mockUoW.On("Rollback").Return(nil)
}

func expectCommit(mockUoW *MockUnitOfWork) {
	mockUoW.On("Commit").Return(nil)
}

func assertAllMockExpectations(t *testing.T, mocks ...interface{}) {
	for _, m := range mocks {
		if mockObj, ok := m.(interface{ AssertExpectations(mock.TestingT) bool }); ok {
			mockObj.AssertExpectations(t)
		}
	}
}
