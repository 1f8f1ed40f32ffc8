package fightcard

import (
	"testing"
	"time"

	"mainevent/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildEventEmbed(t *testing.T) {
	event := &models.Event{
		ID:        1,
		EventName: "Main Event",
		EventDate: time.Date(2026, time.March, 14, 22, 0, 0, 0, time.UTC),
		Fighter1:  models.Fighter{ID: models.FighterOne, Name: "Fighter A", Odds: 150},
		Fighter2:  models.Fighter{ID: models.FighterTwo, Name: "Fighter B", Odds: -200},
	}

	embed := BuildEventEmbed(event)
	assert.Equal(t, "🥊 #1 Main Event", embed.Title)
	assert.Equal(t, colorOpen, embed.Color)
	require.Len(t, embed.Fields, 2)
	assert.Equal(t, "1. Fighter A", embed.Fields[0].Name)
	assert.Equal(t, "+150", embed.Fields[0].Value)
	assert.Equal(t, "-200", embed.Fields[1].Value)

	settledAt := event.EventDate.Add(time.Hour)
	event.Winner = models.FighterTwo
	event.SettledAt = &settledAt

	embed = BuildEventEmbed(event)
	assert.Equal(t, colorSettled, embed.Color)
	assert.Equal(t, "2. Fighter B 🏆", embed.Fields[1].Name)
	assert.Contains(t, embed.Description, "Winner: **Fighter B**")
}
