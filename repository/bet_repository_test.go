package repository

import (
	"context"
	"testing"

	"mainevent/models"
	"mainevent/repository/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBetRepository(t *testing.T) {
	t.Parallel()
	testDB := testutil.SetupTestDatabase(t)

	eventRepo := NewEventRepository(testDB.DB)
	betRepo := NewBetRepository(testDB.DB)
	ctx := context.Background()

	event := testutil.CreateTestEvent(150, -200)
	require.NoError(t, eventRepo.Create(ctx, event))

	t.Run("missing position returns nil", func(t *testing.T) {
		bet, err := betRepo.Get(ctx, event.ID, "nobody")
		require.NoError(t, err)
		assert.Nil(t, bet)
	})

	t.Run("save and list in insertion order", func(t *testing.T) {
		require.NoError(t, betRepo.Save(ctx, testutil.CreateTestBet(event.ID, "x", models.FighterOne, 3000)))
		require.NoError(t, betRepo.Save(ctx, testutil.CreateTestBet(event.ID, "y", models.FighterTwo, 10000)))
		require.NoError(t, betRepo.Save(ctx, testutil.CreateTestBet(event.ID, "z", models.FighterOne, 5700)))

		bets, err := betRepo.ListByEvent(ctx, event.ID)
		require.NoError(t, err)
		require.Len(t, bets, 3)
		assert.Equal(t, "x", bets[0].Bettor)
		assert.Equal(t, "y", bets[1].Bettor)
		assert.Equal(t, "z", bets[2].Bettor)
		assert.Equal(t, models.FighterTwo, bets[1].FighterID)
	})

	t.Run("updating a position keeps its place", func(t *testing.T) {
		bet, err := betRepo.Get(ctx, event.ID, "x")
		require.NoError(t, err)
		require.NotNil(t, bet)

		bet.Amount += 500
		require.NoError(t, betRepo.Save(ctx, bet))

		bets, err := betRepo.ListByEvent(ctx, event.ID)
		require.NoError(t, err)
		require.Len(t, bets, 3)
		assert.Equal(t, "x", bets[0].Bettor)
		assert.Equal(t, int64(3500), bets[0].Amount)
	})

	t.Run("settled position records payout", func(t *testing.T) {
		bet, err := betRepo.Get(ctx, event.ID, "z")
		require.NoError(t, err)

		bet.Amount = 0
		bet.Payout = 14250
		require.NoError(t, betRepo.Save(ctx, bet))

		saved, err := betRepo.Get(ctx, event.ID, "z")
		require.NoError(t, err)
		assert.Equal(t, int64(0), saved.Amount)
		assert.Equal(t, int64(14250), saved.Payout)
		assert.False(t, saved.HasPosition())
	})
}

func TestBetRepository_OpenStakesExcluding(t *testing.T) {
	t.Parallel()
	testDB := testutil.SetupTestDatabase(t)

	eventRepo := NewEventRepository(testDB.DB)
	betRepo := NewBetRepository(testDB.DB)
	ctx := context.Background()

	first := testutil.CreateTestEvent(400, -500)
	require.NoError(t, eventRepo.Create(ctx, first))
	second := testutil.CreateTestEvent(100, -150)
	require.NoError(t, eventRepo.Create(ctx, second))

	require.NoError(t, betRepo.Save(ctx, testutil.CreateTestBet(first.ID, "x", models.FighterOne, 2000)))
	require.NoError(t, betRepo.Save(ctx, testutil.CreateTestBet(second.ID, "y", models.FighterOne, 8000)))
	require.NoError(t, betRepo.Save(ctx, testutil.CreateTestBet(second.ID, "z", models.FighterTwo, 500)))

	total, err := betRepo.OpenStakesExcluding(ctx, first.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(8500), total)

	total, err = betRepo.OpenStakesExcluding(ctx, second.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(2000), total)

	require.NoError(t, eventRepo.SetWinner(ctx, second.ID, models.FighterOne))
	total, err = betRepo.OpenStakesExcluding(ctx, first.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(0), total)
}
