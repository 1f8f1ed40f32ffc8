package memory

import (
	"context"
	"fmt"

	"mainevent/events"
	"mainevent/service"
)

type unitOfWork struct {
	store            *Store
	transactionalBus *events.TransactionalBus
	snapshot         *state
	eventRepo        *eventRepository
	betRepo          *betRepository
	accountRepo      *accountRepository
	custodyRepo      *custodyRepository
}

type unitOfWorkFactory struct {
	store    *Store
	eventBus *events.Bus
}

// NewUnitOfWorkFactory creates units of work over store. eventBus may be nil.
func NewUnitOfWorkFactory(store *Store, eventBus *events.Bus) service.UnitOfWorkFactory {
	return &unitOfWorkFactory{
		store:    store,
		eventBus: eventBus,
	}
}

func (f *unitOfWorkFactory) Create() service.UnitOfWork {
	return &unitOfWork{
		store:            f.store,
		transactionalBus: events.NewTransactionalBus(f.eventBus),
	}
}

// Begin takes the store lock and snapshots the state
func (u *unitOfWork) Begin(ctx context.Context) error {
	if u.snapshot != nil {
		return fmt.Errorf("transaction already started")
	}
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	u.store.mu.Lock()
	snapshot := u.store.state.clone()
	u.snapshot = &snapshot

	st := &u.store.state
	u.eventRepo = &eventRepository{st: st, now: u.store.now}
	u.betRepo = &betRepository{st: st, now: u.store.now}
	u.accountRepo = &accountRepository{st: st}
	u.custodyRepo = &custodyRepository{st: st, now: u.store.now}
	return nil
}

// Commit keeps the mutations, releases the lock and flushes pending events
func (u *unitOfWork) Commit() error {
	if u.snapshot == nil {
		return fmt.Errorf("no transaction to commit")
	}

	u.snapshot = nil
	u.store.mu.Unlock()

	u.transactionalBus.Flush()
	return nil
}

// Rollback restores the snapshot taken at Begin
func (u *unitOfWork) Rollback() error {
	if u.snapshot == nil {
		return nil
	}

	u.store.state = *u.snapshot
	u.snapshot = nil
	u.store.mu.Unlock()

	u.transactionalBus.Discard()
	return nil
}

func (u *unitOfWork) EventRepository() service.EventRepository {
	if u.eventRepo == nil {
		panic("unit of work not started - call Begin() first")
	}
	return u.eventRepo
}

func (u *unitOfWork) BetRepository() service.BetRepository {
	if u.betRepo == nil {
		panic("unit of work not started - call Begin() first")
	}
	return u.betRepo
}

func (u *unitOfWork) AccountRepository() service.AccountRepository {
	if u.accountRepo == nil {
		panic("unit of work not started - call Begin() first")
	}
	return u.accountRepo
}

func (u *unitOfWork) CustodyRepository() service.CustodyRepository {
	if u.custodyRepo == nil {
		panic("unit of work not started - call Begin() first")
	}
	return u.custodyRepo
}

func (u *unitOfWork) EventBus() service.EventPublisher {
	return u.transactionalBus
}
