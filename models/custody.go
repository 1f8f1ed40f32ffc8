package models

import "time"

// CustodyEntryKind describes why value moved in or out of custody
type CustodyEntryKind string

const (
	CustodyEntryDeposit CustodyEntryKind = "deposit"
	CustodyEntryStake   CustodyEntryKind = "stake"
	CustodyEntryPayout  CustodyEntryKind = "payout"
)

// CustodyEntry is one row of the append-only custody ledger.
// Amount is positive for value entering custody and negative for value leaving it.
type CustodyEntry struct {
	ID        int64            `db:"id"`
	Kind      CustodyEntryKind `db:"kind"`
	Identity  string           `db:"identity"`
	EventID   int64            `db:"event_id"`
	Amount    int64            `db:"amount"`
	CreatedAt time.Time        `db:"created_at"`
}
