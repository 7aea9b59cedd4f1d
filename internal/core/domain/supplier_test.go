package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/appfinanceiro/ledger_view_app/internal/core/domain"
)

func TestDeriveSupplierID(t *testing.T) {
	tests := []struct {
		name   string
		cnpj   string
		want   string
		wantOK bool
	}{
		{name: "full masked CNPJ", cnpj: "12.345.678/0001-99", want: "1234599", wantOK: true},
		{name: "bare digits", cnpj: "12345678000199", want: "1234599", wantOK: true},
		{name: "minimum seven digits", cnpj: "1234567", want: "1234567", wantOK: true},
		{name: "too few digits", cnpj: "123456", wantOK: false},
		{name: "empty", cnpj: "", wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := domain.DeriveSupplierID(tt.cnpj)
			require.Equal(t, tt.wantOK, ok)
			if ok {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func TestFormatCNPJ(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
	}{
		{name: "full digits", raw: "12345678000199", want: "12.345.678/0001-99"},
		{name: "already masked", raw: "12.345.678/0001-99", want: "12.345.678/0001-99"},
		{name: "partial input", raw: "123456", want: "12.345.6"},
		{name: "overlong input truncates", raw: "123456780001991234", want: "12.345.678/0001-99"},
		{name: "empty", raw: "", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, domain.FormatCNPJ(tt.raw))
		})
	}
}

func TestValidCNPJ(t *testing.T) {
	assert.True(t, domain.ValidCNPJ("12.345.678/0001-99"))
	assert.False(t, domain.ValidCNPJ("12345678000199"), "bare digits are not the masked form")
	assert.False(t, domain.ValidCNPJ("12.345.678/0001-9"))
	assert.False(t, domain.ValidCNPJ(""))
}

func TestNormalizeID(t *testing.T) {
	assert.Equal(t, "1234599", domain.NormalizeID("  1234599 "))
	assert.Equal(t, "", domain.NormalizeID("   "))
}
