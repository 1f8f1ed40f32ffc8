package models

import "time"

// Bet represents a bettor's single open position on an event
type Bet struct {
	EventID   int64     `db:"event_id"`
	Bettor    string    `db:"bettor"`
	FighterID int       `db:"fighter_id"`
	Amount    int64     `db:"amount"`
	Payout    int64     `db:"payout"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

// HasPosition reports whether the bettor currently has stake on the event
func (b *Bet) HasPosition() bool {
	return b.Amount > 0
}
