package betting

import (
	"testing"
	"time"

	"mainevent/models"

	"github.com/stretchr/testify/assert"
)

func testEvent() *models.Event {
	return &models.Event{
		ID:        1,
		EventName: "Main Event",
		EventDate: time.Date(2026, time.March, 14, 22, 0, 0, 0, time.UTC),
		Fighter1:  models.Fighter{ID: models.FighterOne, Name: "Fighter A", Odds: 150},
		Fighter2:  models.Fighter{ID: models.FighterTwo, Name: "Fighter B", Odds: -200},
	}
}

func TestFormatBetConfirmation(t *testing.T) {
	event := testEvent()

	msg := FormatBetConfirmation(event, event.Fighter1, 1000, 3000)
	assert.Contains(t, msg, "Bet **1,000** on **Fighter A** (+150)")
	assert.Contains(t, msg, "Your position: **3,000**")
	assert.Contains(t, msg, "Pays **7,500** if Fighter A wins.")

	msg = FormatBetConfirmation(event, event.Fighter2, 10000, 10000)
	assert.Contains(t, msg, "Pays **15,000**")
}

func TestFormatPosition(t *testing.T) {
	event := testEvent()

	open := FormatPosition(event, &models.Bet{EventID: 1, Bettor: "z", FighterID: 1, Amount: 5700})
	assert.Contains(t, open, "You have **5,700** on **Fighter A**")

	none := FormatPosition(event, &models.Bet{EventID: 1, Bettor: "q"})
	assert.Contains(t, none, "no open position")

	now := time.Now()
	event.Winner = models.FighterOne
	event.SettledAt = &now
	paid := FormatPosition(event, &models.Bet{EventID: 1, Bettor: "z", FighterID: 1, Payout: 14250})
	assert.Contains(t, paid, "You were paid **14,250**")

	lost := FormatPosition(event, &models.Bet{EventID: 1, Bettor: "y", FighterID: 2})
	assert.Contains(t, lost, "no open position")
}
