package domain

import "time"

// The external store holds movement dates as text in more than one encoding.
// Both hyphen and slash separators are accepted.
var dateLayouts = []string{
	"2006-01-02",
	"2006/01/02",
	"02-01-2006",
	"02/01/2006",
}

// ParseMovementDate normalizes a textual calendar date to a comparable value
// (midnight UTC, no time component). ok is false when the text matches no
// supported encoding; callers must exclude such movements, never error.
func ParseMovementDate(text string) (time.Time, bool) {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, text); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// FormatDateBR renders a stored date the way the ledger table shows it,
// e.g. "2025-11-17" -> "17-11-2025". Unparseable input renders empty.
func FormatDateBR(text string) string {
	t, ok := ParseMovementDate(text)
	if !ok {
		return ""
	}
	return t.Format("02-01-2006")
}
