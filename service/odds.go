package service

import "math"

// CalculatePayout returns stake plus winnings for a stake at the given American odds.
// Plus lines win odds per 100 staked, minus lines need |odds| staked to win 100.
// Division truncates.
func CalculatePayout(stake int64, odds int64) (int64, error) {
	if odds == 0 {
		return 0, ErrInvalidOdds
	}
	if stake < 0 {
		return 0, ErrAmountMustBePositive
	}
	if odds == math.MinInt64 {
		return 0, ErrArithmeticOverflow
	}

	var winnings int64
	if odds > 0 {
		if stake > math.MaxInt64/odds {
			return 0, ErrArithmeticOverflow
		}
		winnings = stake * odds / 100
	} else {
		if stake > math.MaxInt64/100 {
			return 0, ErrArithmeticOverflow
		}
		winnings = stake * 100 / -odds
	}

	return addChecked(stake, winnings)
}

// addChecked adds two non-negative amounts
func addChecked(a, b int64) (int64, error) {
	if a > math.MaxInt64-b {
		return 0, ErrArithmeticOverflow
	}
	return a + b, nil
}
