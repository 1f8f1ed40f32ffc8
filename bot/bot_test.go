package bot

import (
	"testing"
	"time"

	"mainevent/events"
	"mainevent/models"

	"github.com/bwmarrin/discordgo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCommandDefinitions(t *testing.T) {
	names := make(map[string]*discordgo.ApplicationCommand)
	for _, cmd := range commandDefinitions() {
		_, dup := names[cmd.Name]
		require.False(t, dup, "duplicate command %s", cmd.Name)
		names[cmd.Name] = cmd
	}

	for _, name := range []string{"createevent", "event", "bet", "mybet", "paywinners", "deposit", "balance", "ledger", "payout"} {
		assert.Contains(t, names, name)
	}

	bet := names["bet"]
	require.Len(t, bet.Options, 3)
	assert.True(t, bet.Options[0].Required)
	assert.Len(t, bet.Options[0].Choices, 2)
	assert.False(t, bet.Options[2].Required)
}

func TestAnnouncementFor(t *testing.T) {
	created := announcementFor(events.EventCreatedEvent{
		EventID:   3,
		EventName: "Card",
		EventDate: time.Date(2026, time.March, 14, 22, 0, 0, 0, time.UTC),
		Fighter1:  models.Fighter{ID: 1, Name: "Pereira", Odds: 225},
		Fighter2:  models.Fighter{ID: 2, Name: "Hill", Odds: -335},
	})
	require.NotNil(t, created)
	assert.Contains(t, created.Title, "#3 Card")
	require.Len(t, created.Fields, 2)
	assert.Equal(t, "+225", created.Fields[0].Value)

	paid := announcementFor(events.WinnersPaidEvent{
		EventID:          3,
		WinningFighterID: 2,
		Payouts:          []models.Payout{{Bettor: "42", FighterID: 2, Stake: 335, Amount: 435}},
		TotalDisbursed:   435,
	})
	require.NotNil(t, paid)
	assert.Contains(t, paid.Description, "<@42>")

	assert.Nil(t, announcementFor(events.PaidEvent{From: "x", Value: 1}))
	assert.Nil(t, announcementFor(events.BetSubmittedEvent{From: "x", EventID: 1, FighterID: 1, Amount: 1}))
}
