package common

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"mainevent/service"

	"github.com/bwmarrin/discordgo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatBalance(t *testing.T) {
	tests := map[int64]string{
		0:       "0",
		999:     "999",
		1000:    "1,000",
		14250:   "14,250",
		1234567: "1,234,567",
		-7500:   "-7,500",
		-100:    "-100",
	}
	for in, want := range tests {
		assert.Equal(t, want, FormatBalance(in), "%d", in)
	}
}

func TestFormatOdds(t *testing.T) {
	assert.Equal(t, "+150", FormatOdds(150))
	assert.Equal(t, "-200", FormatOdds(-200))
}

func TestParseEventDate(t *testing.T) {
	tests := []struct {
		in   string
		want time.Time
	}{
		{"2026-03-14", time.Date(2026, time.March, 14, 0, 0, 0, 0, time.UTC)},
		{"2026-03-14 22:30", time.Date(2026, time.March, 14, 22, 30, 0, 0, time.UTC)},
		{" 2026-03-14T22:30:00Z ", time.Date(2026, time.March, 14, 22, 30, 0, 0, time.UTC)},
	}
	for _, tt := range tests {
		got, err := ParseEventDate(tt.in)
		require.NoError(t, err, tt.in)
		assert.True(t, tt.want.Equal(got), tt.in)
	}

	_, err := ParseEventDate("next saturday")
	assert.Error(t, err)
}

func TestErrorMessage(t *testing.T) {
	assert.Equal(t, "Insufficient funds.", ErrorMessage(service.ErrInsufficientFunds))
	assert.Equal(t, "That event has already been settled.", ErrorMessage(fmt.Errorf("pay: %w", service.ErrEventAlreadySettled)))
	assert.Equal(t, "Something went wrong. Please try again.", ErrorMessage(errors.New("connection refused")))

	assert.True(t, IsUserFacing(service.ErrConflictingBet))
	assert.False(t, IsUserFacing(errors.New("connection refused")))
}

func TestCallerID(t *testing.T) {
	guild := &discordgo.InteractionCreate{Interaction: &discordgo.Interaction{
		Member: &discordgo.Member{User: &discordgo.User{ID: "guild-user"}},
	}}
	dm := &discordgo.InteractionCreate{Interaction: &discordgo.Interaction{
		User: &discordgo.User{ID: "dm-user"},
	}}

	assert.Equal(t, "guild-user", CallerID(guild))
	assert.Equal(t, "dm-user", CallerID(dm))
	assert.Equal(t, "", CallerID(&discordgo.InteractionCreate{Interaction: &discordgo.Interaction{}}))
}

func TestOrNop(t *testing.T) {
	assert.NotPanics(t, func() { OrNop(nil).RecordRejection("deposit", service.ErrInsufficientFunds) })
}
