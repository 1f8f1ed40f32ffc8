package metrics

import (
	"context"

	"mainevent/events"
	"mainevent/service"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the ledger counters
type Metrics struct {
	EventsCreated prometheus.Counter
	BetsSubmitted prometheus.Counter
	StakedTotal   prometheus.Counter
	Settlements   prometheus.Counter
	PayoutsTotal  prometheus.Counter
	WinningBets   prometheus.Counter
	DepositsTotal prometheus.Counter
	Rejections    *prometheus.CounterVec
}

// New creates the counters and registers them with reg
func New(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		EventsCreated: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "mainevent_events_created_total",
			Help: "Events created",
		}),
		BetsSubmitted: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "mainevent_bets_submitted_total",
			Help: "Accepted bets",
		}),
		StakedTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "mainevent_staked_amount_total",
			Help: "Value staked on events",
		}),
		Settlements: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "mainevent_settlements_total",
			Help: "Events settled",
		}),
		PayoutsTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "mainevent_payout_amount_total",
			Help: "Value paid to winners",
		}),
		WinningBets: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "mainevent_winning_bets_total",
			Help: "Positions paid at settlement",
		}),
		DepositsTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "mainevent_deposit_amount_total",
			Help: "Value deposited straight into custody",
		}),
		Rejections: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "mainevent_rejections_total",
			Help: "Failed operations by reason",
		}, []string{"operation", "reason"}),
	}

	reg.MustRegister(
		m.EventsCreated,
		m.BetsSubmitted,
		m.StakedTotal,
		m.Settlements,
		m.PayoutsTotal,
		m.WinningBets,
		m.DepositsTotal,
		m.Rejections,
	)
	return m
}

// Subscribe feeds the counters from committed events
func (m *Metrics) Subscribe(bus *events.Bus) {
	bus.Subscribe(events.EventTypeEventCreated, func(ctx context.Context, e events.Event) {
		m.EventsCreated.Inc()
	})
	bus.Subscribe(events.EventTypeBetSubmitted, func(ctx context.Context, e events.Event) {
		if bet, ok := e.(events.BetSubmittedEvent); ok {
			m.BetsSubmitted.Inc()
			m.StakedTotal.Add(float64(bet.Amount))
		}
	})
	bus.Subscribe(events.EventTypeWinnersPaid, func(ctx context.Context, e events.Event) {
		if paid, ok := e.(events.WinnersPaidEvent); ok {
			m.Settlements.Inc()
			m.PayoutsTotal.Add(float64(paid.TotalDisbursed))
			for _, line := range paid.Payouts {
				if line.Amount > 0 {
					m.WinningBets.Inc()
				}
			}
		}
	})
	bus.Subscribe(events.EventTypePaid, func(ctx context.Context, e events.Event) {
		if paid, ok := e.(events.PaidEvent); ok {
			m.DepositsTotal.Add(float64(paid.Value))
		}
	})
}

// RecordRejection counts a failed operation. nil errors are ignored.
func (m *Metrics) RecordRejection(operation string, err error) {
	if err == nil {
		return
	}
	m.Rejections.WithLabelValues(operation, service.Reason(err)).Inc()
}
