package money_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/appfinanceiro/ledger_view_app/internal/core/money"
)

func TestParseMaskedAmount(t *testing.T) {
	tests := []struct {
		name string
		text string
		want int64
	}{
		{name: "masked currency", text: "R$ 1.500,00", want: 150000},
		{name: "bare digits", text: "150000", want: 150000},
		{name: "digits accumulate left to right", text: "R$ 15,00", want: 1500},
		{name: "empty input", text: "", want: 0},
		{name: "no digits at all", text: "R$ ,", want: 0},
		{name: "single digit", text: "7", want: 7},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, money.ParseMaskedAmount(tt.text))
		})
	}
}

func TestFormatMaskedAmount_RoundTripsParse(t *testing.T) {
	for _, cents := range []int64{0, 7, 1500, 150000, 123456789} {
		formatted := money.FormatMaskedAmount(cents)
		assert.Equal(t, cents, money.ParseMaskedAmount(formatted), "round trip for %d (%s)", cents, formatted)
	}
}

func TestFormatCurrency(t *testing.T) {
	tests := []struct {
		name string
		v    decimal.Decimal
		want string
	}{
		{name: "zero", v: decimal.Zero, want: "R$ 0,00"},
		{name: "thousands grouping", v: decimal.New(150000, -2), want: "R$ 1.500,00"},
		{name: "millions grouping", v: decimal.New(123456789, -2), want: "R$ 1.234.567,89"},
		{name: "no grouping below one thousand", v: decimal.New(99999, -2), want: "R$ 999,99"},
		{name: "negative", v: decimal.New(-150000, -2), want: "-R$ 1.500,00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, money.FormatCurrency(tt.v))
		})
	}
}

func TestParsePercent(t *testing.T) {
	tests := []struct {
		name string
		text string
		want decimal.Decimal
	}{
		{name: "decimal comma", text: "4,80", want: decimal.RequireFromString("4.80")},
		{name: "decimal point", text: "4.8", want: decimal.RequireFromString("4.8")},
		{name: "integer", text: "5", want: decimal.NewFromInt(5)},
		{name: "trailing comma mid-typing", text: "4,", want: decimal.NewFromInt(4)},
		{name: "trailing point mid-typing", text: "4.", want: decimal.NewFromInt(4)},
		{name: "empty", text: "", want: decimal.Zero},
		{name: "garbage", text: "abc", want: decimal.Zero},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.True(t, tt.want.Equal(money.ParsePercent(tt.text)), "got %s", money.ParsePercent(tt.text))
		})
	}
}

func TestFormatPercentage(t *testing.T) {
	assert.Equal(t, "4.8%", money.FormatPercentage(decimal.RequireFromString("4.8")))
	assert.Equal(t, "0%", money.FormatPercentage(decimal.Zero))
}
