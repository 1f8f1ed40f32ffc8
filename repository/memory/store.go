// Package memory holds the ledger in process memory.
// A unit of work holds the store's lock from Begin until Commit or Rollback,
// so every operation runs alone against a consistent state.
package memory

import (
	"sync"
	"time"

	"mainevent/models"
)

type betKey struct {
	eventID int64
	bettor  string
}

type state struct {
	events   []models.Event // events[i].ID == i+1
	bets     map[betKey]models.Bet
	betOrder map[int64][]string
	wallets  map[string]int64
	custody  []models.CustodyEntry
}

func newState() state {
	return state{
		bets:     make(map[betKey]models.Bet),
		betOrder: make(map[int64][]string),
		wallets:  make(map[string]int64),
	}
}

// clone deep-copies the state so a rollback can restore it
func (s state) clone() state {
	c := newState()
	c.events = append([]models.Event(nil), s.events...)
	for i := range c.events {
		if s.events[i].SettledAt != nil {
			settledAt := *s.events[i].SettledAt
			c.events[i].SettledAt = &settledAt
		}
	}
	for k, v := range s.bets {
		c.bets[k] = v
	}
	for k, v := range s.betOrder {
		c.betOrder[k] = append([]string(nil), v...)
	}
	for k, v := range s.wallets {
		c.wallets[k] = v
	}
	c.custody = append([]models.CustodyEntry(nil), s.custody...)
	return c
}

// Store is the in-memory ledger shared by all units of work
type Store struct {
	mu    sync.Mutex
	state state
	now   func() time.Time
}

// NewStore creates an empty store
func NewStore() *Store {
	return &Store{
		state: newState(),
		now:   time.Now,
	}
}
