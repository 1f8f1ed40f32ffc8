package memory

import (
	"context"
	"fmt"
	"time"

	"mainevent/models"
	"mainevent/service"
)

// Repositories run with the store lock held by their unit of work.
// Reads hand out copies so callers never alias stored state.

type eventRepository struct {
	st  *state
	now func() time.Time
}

func (r *eventRepository) Create(ctx context.Context, event *models.Event) error {
	event.ID = int64(len(r.st.events)) + 1
	event.CreatedAt = r.now()
	r.st.events = append(r.st.events, *event)
	return nil
}

func (r *eventRepository) GetByID(ctx context.Context, id int64) (*models.Event, error) {
	if id < 1 || id > int64(len(r.st.events)) {
		return nil, nil
	}
	event := r.st.events[id-1]
	return &event, nil
}

func (r *eventRepository) GetMostRecent(ctx context.Context) (*models.Event, error) {
	if len(r.st.events) == 0 {
		return nil, nil
	}
	event := r.st.events[len(r.st.events)-1]
	return &event, nil
}

func (r *eventRepository) SetWinner(ctx context.Context, id int64, winner int) error {
	if id < 1 || id > int64(len(r.st.events)) {
		return fmt.Errorf("event %d not found", id)
	}
	event := &r.st.events[id-1]
	if event.IsSettled() {
		return fmt.Errorf("event %d already has a winner", id)
	}
	settledAt := r.now()
	event.Winner = winner
	event.SettledAt = &settledAt
	return nil
}

type betRepository struct {
	st  *state
	now func() time.Time
}

func (r *betRepository) Get(ctx context.Context, eventID int64, bettor string) (*models.Bet, error) {
	bet, ok := r.st.bets[betKey{eventID, bettor}]
	if !ok {
		return nil, nil
	}
	return &bet, nil
}

func (r *betRepository) Save(ctx context.Context, bet *models.Bet) error {
	key := betKey{bet.EventID, bet.Bettor}
	now := r.now()
	if existing, ok := r.st.bets[key]; ok {
		bet.CreatedAt = existing.CreatedAt
	} else {
		bet.CreatedAt = now
		r.st.betOrder[bet.EventID] = append(r.st.betOrder[bet.EventID], bet.Bettor)
	}
	bet.UpdatedAt = now
	r.st.bets[key] = *bet
	return nil
}

func (r *betRepository) ListByEvent(ctx context.Context, eventID int64) ([]*models.Bet, error) {
	order := r.st.betOrder[eventID]
	bets := make([]*models.Bet, 0, len(order))
	for _, bettor := range order {
		bet := r.st.bets[betKey{eventID, bettor}]
		bets = append(bets, &bet)
	}
	return bets, nil
}

func (r *betRepository) OpenStakesExcluding(ctx context.Context, eventID int64) (int64, error) {
	var total int64
	for key, bet := range r.st.bets {
		if key.eventID == eventID {
			continue
		}
		if i := key.eventID - 1; i >= 0 && i < int64(len(r.st.events)) && r.st.events[i].IsSettled() {
			continue
		}
		total += bet.Amount
	}
	return total, nil
}

type accountRepository struct {
	st *state
}

func (r *accountRepository) GetBalance(ctx context.Context, identity string) (int64, error) {
	return r.st.wallets[identity], nil
}

func (r *accountRepository) Credit(ctx context.Context, identity string, amount int64) error {
	r.st.wallets[identity] += amount
	return nil
}

func (r *accountRepository) Debit(ctx context.Context, identity string, amount int64) error {
	if r.st.wallets[identity] < amount {
		return service.ErrInsufficientFunds
	}
	r.st.wallets[identity] -= amount
	return nil
}

type custodyRepository struct {
	st  *state
	now func() time.Time
}

func (r *custodyRepository) Balance(ctx context.Context) (int64, error) {
	var total int64
	for _, entry := range r.st.custody {
		total += entry.Amount
	}
	return total, nil
}

func (r *custodyRepository) Record(ctx context.Context, entry *models.CustodyEntry) error {
	entry.ID = int64(len(r.st.custody)) + 1
	entry.CreatedAt = r.now()
	r.st.custody = append(r.st.custody, *entry)
	return nil
}

func (r *custodyRepository) ListRecent(ctx context.Context, limit int) ([]*models.CustodyEntry, error) {
	if limit <= 0 {
		return []*models.CustodyEntry{}, nil
	}
	entries := make([]*models.CustodyEntry, 0, limit)
	for i := len(r.st.custody) - 1; i >= 0 && len(entries) < limit; i-- {
		entry := r.st.custody[i]
		entries = append(entries, &entry)
	}
	return entries, nil
}
