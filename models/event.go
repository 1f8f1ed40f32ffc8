package models

import (
	"time"
)

// Fighter ids are relative to their event
const (
	FighterOne = 1
	FighterTwo = 2

	// NoWinner marks an event that has not been settled
	NoWinner = 0
)

// Fighter represents one side of a head-to-head event
type Fighter struct {
	ID   int    `db:"id"`
	Name string `db:"name"`
	Odds int64  `db:"odds"` // American odds, never zero
}

// Event represents a head-to-head matchup published by the authority
type Event struct {
	ID        int64     `db:"id"`
	EventName string    `db:"event_name"`
	EventDate time.Time `db:"event_date"`
	Fighter1  Fighter
	Fighter2  Fighter
	Winner    int        `db:"winner"`
	CreatedBy string     `db:"created_by"`
	CreatedAt time.Time  `db:"created_at"`
	SettledAt *time.Time `db:"settled_at"`
}

// IsSettled checks if a winner has been declared
func (e *Event) IsSettled() bool {
	return e.Winner != NoWinner
}

// Fighter returns the fighter with the given event-relative id
func (e *Event) Fighter(id int) (Fighter, bool) {
	switch id {
	case FighterOne:
		return e.Fighter1, true
	case FighterTwo:
		return e.Fighter2, true
	}
	return Fighter{}, false
}
