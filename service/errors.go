package service

import "errors"

// Ledger rejections. Each one leaves state exactly as it was before the call.
var (
	ErrUnauthorized         = errors.New("caller is not the authority")
	ErrInvalidOdds          = errors.New("odds must be non-zero")
	ErrInvalidName          = errors.New("name must not be empty")
	ErrNoEventsExist        = errors.New("no events exist")
	ErrEventNotFound        = errors.New("event not found")
	ErrFighterNotFound      = errors.New("fighter not found")
	ErrEventAlreadySettled  = errors.New("event already settled")
	ErrAmountMustBePositive = errors.New("amount must be positive")
	ErrConflictingBet       = errors.New("bettor already holds a position on the other fighter")
	ErrArithmeticOverflow   = errors.New("arithmetic overflow")
	ErrInsufficientFunds    = errors.New("insufficient funds")
)

var reasons = []struct {
	err  error
	code string
}{
	{ErrUnauthorized, "unauthorized"},
	{ErrInvalidOdds, "invalid_odds"},
	{ErrInvalidName, "invalid_name"},
	{ErrNoEventsExist, "no_events_exist"},
	{ErrEventNotFound, "event_not_found"},
	{ErrFighterNotFound, "fighter_not_found"},
	{ErrEventAlreadySettled, "event_already_settled"},
	{ErrAmountMustBePositive, "amount_must_be_positive"},
	{ErrConflictingBet, "conflicting_bet"},
	{ErrArithmeticOverflow, "arithmetic_overflow"},
	{ErrInsufficientFunds, "insufficient_funds"},
}

// Reason returns a stable code for err, "internal" for anything that is not a ledger rejection
func Reason(err error) string {
	if err == nil {
		return ""
	}
	for _, r := range reasons {
		if errors.Is(err, r.err) {
			return r.code
		}
	}
	return "internal"
}

// IsRejection reports whether err is one of the ledger's own rejections
func IsRejection(err error) bool {
	r := Reason(err)
	return r != "" && r != "internal"
}

// IsNotFound reports whether err means a lookup came back empty
func IsNotFound(err error) bool {
	return errors.Is(err, ErrEventNotFound) ||
		errors.Is(err, ErrFighterNotFound) ||
		errors.Is(err, ErrNoEventsExist)
}
