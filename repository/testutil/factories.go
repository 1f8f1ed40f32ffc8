package testutil

import (
	"time"

	"mainevent/models"
)

// CreateTestEvent creates an unsettled event with the given odds
func CreateTestEvent(odds1, odds2 int64) *models.Event {
	return &models.Event{
		EventName: "Main Event",
		EventDate: time.Date(2026, time.March, 14, 22, 0, 0, 0, time.UTC),
		Fighter1:  models.Fighter{ID: models.FighterOne, Name: "Fighter A", Odds: odds1},
		Fighter2:  models.Fighter{ID: models.FighterTwo, Name: "Fighter B", Odds: odds2},
		Winner:    models.NoWinner,
		CreatedBy: "authority",
	}
}

// CreateTestBet creates a position on an event
func CreateTestBet(eventID int64, bettor string, fighterID int, amount int64) *models.Bet {
	return &models.Bet{
		EventID:   eventID,
		Bettor:    bettor,
		FighterID: fighterID,
		Amount:    amount,
	}
}

// CreateTestCustodyEntry creates a custody entry of the given kind
func CreateTestCustodyEntry(kind models.CustodyEntryKind, identity string, eventID, amount int64) *models.CustodyEntry {
	return &models.CustodyEntry{
		Kind:     kind,
		Identity: identity,
		EventID:  eventID,
		Amount:   amount,
	}
}
