package common

import (
	"fmt"
	"strings"
	"time"

	"mainevent/service"
)

// FormatBalance formats an amount with thousand separators
func FormatBalance(balance int64) string {
	str := fmt.Sprintf("%d", balance)

	negative := strings.HasPrefix(str, "-")
	if negative {
		str = str[1:]
	}

	n := len(str)
	if n <= 3 {
		if negative {
			return "-" + str
		}
		return str
	}

	var result strings.Builder
	if negative {
		result.WriteByte('-')
	}
	for i, digit := range str {
		if i > 0 && (n-i)%3 == 0 {
			result.WriteRune(',')
		}
		result.WriteRune(digit)
	}

	return result.String()
}

// FormatOdds renders American odds with an explicit sign
func FormatOdds(odds int64) string {
	if odds > 0 {
		return fmt.Sprintf("+%d", odds)
	}
	return fmt.Sprintf("%d", odds)
}

// FormatDiscordTimestamp formats a time as a Discord timestamp that displays in user's local timezone
// Format types: "t" = short time, "T" = long time, "d" = short date, "D" = long date,
// "f" = short date/time, "F" = long date/time, "R" = relative time
func FormatDiscordTimestamp(t time.Time, format string) string {
	return fmt.Sprintf("<t:%d:%s>", t.Unix(), format)
}

var eventDateLayouts = []string{
	time.RFC3339,
	"2006-01-02 15:04",
	"2006-01-02",
}

// ParseEventDate accepts RFC 3339, "YYYY-MM-DD HH:MM" or "YYYY-MM-DD". Dates without a zone are UTC.
func ParseEventDate(value string) (time.Time, error) {
	value = strings.TrimSpace(value)
	for _, layout := range eventDateLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized date %q, use YYYY-MM-DD or YYYY-MM-DD HH:MM", value)
}

var errorMessages = map[string]string{
	"unauthorized":            "Only the event authority can do that.",
	"invalid_odds":            "Odds must be non-zero American odds, like +150 or -200.",
	"invalid_name":            "Event and fighter names cannot be blank.",
	"no_events_exist":         "No events have been created yet.",
	"event_not_found":         "That event does not exist.",
	"fighter_not_found":       "Pick fighter 1 or fighter 2.",
	"event_already_settled":   "That event has already been settled.",
	"amount_must_be_positive": "Amount must be greater than zero.",
	"conflicting_bet":         "You already have a position on the other fighter.",
	"arithmetic_overflow":     "That amount is too large.",
	"insufficient_funds":      "Insufficient funds.",
}

// IsUserFacing reports whether err has a dedicated message for the caller
func IsUserFacing(err error) bool {
	_, ok := errorMessages[service.Reason(err)]
	return ok
}

// ErrorMessage maps a service error to text for the caller
func ErrorMessage(err error) string {
	if msg, ok := errorMessages[service.Reason(err)]; ok {
		return msg
	}
	return "Something went wrong. Please try again."
}
