package metrics

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"mainevent/events"
	"mainevent/models"
	"mainevent/service"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetrics_CountsBusEvents(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := New(reg)
	bus := events.NewBus()
	m.Subscribe(bus)
	ctx := context.Background()

	bus.Emit(ctx, events.EventCreatedEvent{EventID: 1})
	bus.Emit(ctx, events.BetSubmittedEvent{From: "x", EventID: 1, FighterID: 1, Amount: 3000})
	bus.Emit(ctx, events.BetSubmittedEvent{From: "z", EventID: 1, FighterID: 1, Amount: 5700})
	bus.Emit(ctx, events.PaidEvent{From: "house", Value: 10000})
	bus.Emit(ctx, events.WinnersPaidEvent{
		EventID:          1,
		WinningFighterID: models.FighterOne,
		Payouts: []models.Payout{
			{Bettor: "x", FighterID: 1, Stake: 3000, Amount: 7500},
			{Bettor: "y", FighterID: 2, Stake: 10000},
			{Bettor: "z", FighterID: 1, Stake: 5700, Amount: 14250},
		},
		TotalDisbursed: 21750,
	})

	assert.Eventually(t, func() bool {
		return testutil.ToFloat64(m.Settlements) == 1 &&
			testutil.ToFloat64(m.BetsSubmitted) == 2 &&
			testutil.ToFloat64(m.DepositsTotal) == 10000 &&
			testutil.ToFloat64(m.EventsCreated) == 1
	}, 2*time.Second, 10*time.Millisecond)

	assert.Equal(t, float64(8700), testutil.ToFloat64(m.StakedTotal))
	assert.Equal(t, float64(21750), testutil.ToFloat64(m.PayoutsTotal))
	assert.Equal(t, float64(2), testutil.ToFloat64(m.WinningBets))
}

func TestMetrics_RecordRejection(t *testing.T) {
	m := New(prometheus.NewRegistry())

	m.RecordRejection("place_bet", service.ErrConflictingBet)
	m.RecordRejection("place_bet", service.ErrConflictingBet)
	m.RecordRejection("pay_winners", service.ErrEventAlreadySettled)
	m.RecordRejection("deposit", errors.New("connection reset"))
	m.RecordRejection("deposit", nil)

	assert.Equal(t, float64(2), testutil.ToFloat64(m.Rejections.WithLabelValues("place_bet", "conflicting_bet")))
	assert.Equal(t, float64(1), testutil.ToFloat64(m.Rejections.WithLabelValues("pay_winners", "event_already_settled")))
	assert.Equal(t, float64(1), testutil.ToFloat64(m.Rejections.WithLabelValues("deposit", "internal")))
	assert.Equal(t, 3, testutil.CollectAndCount(m.Rejections))
}

func TestHandler(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := New(reg)
	m.EventsCreated.Inc()

	t.Run("metrics", func(t *testing.T) {
		srv := httptest.NewServer(NewHandler(reg, nil))
		defer srv.Close()

		resp, err := http.Get(srv.URL + "/metrics")
		require.NoError(t, err)
		defer resp.Body.Close()

		body, err := io.ReadAll(resp.Body)
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Contains(t, string(body), "mainevent_events_created_total 1")
	})

	t.Run("healthy", func(t *testing.T) {
		srv := httptest.NewServer(NewHandler(reg, func(ctx context.Context) error { return nil }))
		defer srv.Close()

		resp, err := http.Get(srv.URL + "/healthz")
		require.NoError(t, err)
		defer resp.Body.Close()
		assert.Equal(t, http.StatusOK, resp.StatusCode)
	})

	t.Run("unhealthy", func(t *testing.T) {
		srv := httptest.NewServer(NewHandler(reg, func(ctx context.Context) error { return errors.New("db down") }))
		defer srv.Close()

		resp, err := http.Get(srv.URL + "/healthz")
		require.NoError(t, err)
		defer resp.Body.Close()

		body, err := io.ReadAll(resp.Body)
		require.NoError(t, err)
		assert.Equal(t, http.StatusServiceUnavailable, resp.StatusCode)
		assert.Equal(t, "unhealthy: db down", string(body))
	})
}
