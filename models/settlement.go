package models

// Payout is a single line of a settlement
type Payout struct {
	Bettor    string
	FighterID int
	Stake     int64
	Amount    int64 // zero for positions on the losing fighter
}

// SettlementResult represents the outcome of paying winners for an event
type SettlementResult struct {
	EventID          int64
	WinningFighterID int
	Payouts          []Payout
	TotalDisbursed   int64
}

// Winners returns the payout lines with a non-zero transfer
func (r *SettlementResult) Winners() []Payout {
	var winners []Payout
	for _, p := range r.Payouts {
		if p.Amount > 0 {
			winners = append(winners, p)
		}
	}
	return winners
}
