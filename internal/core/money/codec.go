// Package money converts between user-facing currency/percentage text and
// integer minor-unit (centavo) values. All functions are pure.
package money

import (
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// ParseMaskedAmount strips every non-digit rune and reads what remains as
// minor units. The rightmost two digits are implicitly the cents, so masked
// input accumulates digits left to right ("R$ 1.500,00" -> 150000). An empty
// digit string yields zero.
func ParseMaskedAmount(text string) int64 {
	var b strings.Builder
	for _, r := range text {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	digits := b.String()
	if digits == "" {
		return 0
	}
	cents, err := strconv.ParseInt(digits, 10, 64)
	if err != nil {
		return 0
	}
	return cents
}

// FormatMaskedAmount renders minor units as the masked input display text,
// e.g. 150000 -> "R$ 1.500,00". Zero renders as the canonical "R$ 0,00".
func FormatMaskedAmount(cents int64) string {
	return FormatCurrency(decimal.New(cents, -2))
}

// FormatCurrency renders a decimal amount in the pt-BR currency convention:
// thousands separated by "." and a decimal comma with two fixed digits.
func FormatCurrency(v decimal.Decimal) string {
	s := v.StringFixed(2)
	neg := strings.HasPrefix(s, "-")
	if neg {
		s = s[1:]
	}
	intPart, fracPart, _ := strings.Cut(s, ".")

	var groups []string
	for len(intPart) > 3 {
		groups = append([]string{intPart[len(intPart)-3:]}, groups...)
		intPart = intPart[:len(intPart)-3]
	}
	groups = append([]string{intPart}, groups...)

	out := "R$ " + strings.Join(groups, ".") + "," + fracPart
	if neg {
		out = "-" + out
	}
	return out
}

// FormatPercentage renders a percentage value the way the ledger table shows
// it, e.g. "4.8%".
func FormatPercentage(v decimal.Decimal) string {
	return v.String() + "%"
}

// ParsePercent normalizes user-entered percentage text to a decimal value.
// A decimal comma is treated as the decimal separator and a trailing
// separator (in-progress typing like "4,") still parses; anything else that
// is unparseable counts as zero.
func ParsePercent(text string) decimal.Decimal {
	text = strings.TrimSpace(strings.ReplaceAll(text, ",", "."))
	text = strings.TrimSuffix(text, ".")
	if text == "" {
		return decimal.Zero
	}
	d, err := decimal.NewFromString(text)
	if err != nil {
		return decimal.Zero
	}
	return d
}
