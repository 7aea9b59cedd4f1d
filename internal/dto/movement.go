package dto

import (
	"strconv"

	"github.com/shopspring/decimal"

	"github.com/appfinanceiro/ledger_view_app/internal/core/domain"
	"github.com/appfinanceiro/ledger_view_app/internal/core/money"
)

// MovementDraftPayload mirrors the editable movement form. Gross and
// retained travel as minor-unit integers encoded as text (masked input
// digits) and the percentage as the raw text the user typed.
type MovementDraftPayload struct {
	ID             string `json:"id"`
	SupplierID     string `json:"id_fornecedor"`
	SupplierName   string `json:"nome_fornecedor"`
	Date           string `json:"data"`
	DocumentNumber string `json:"numero_documento"`
	Gross          string `json:"valor"`
	Percent        string `json:"percentual_retido"`
	Retained       string `json:"retido"`
	EventType      string `json:"tipo_evento"`
}

// ToDraft converts the payload to the domain draft. Amount fields accept
// either bare digit strings or fully masked text.
func (p MovementDraftPayload) ToDraft() domain.MovementDraft {
	return domain.MovementDraft{
		MovementID:     p.ID,
		SupplierID:     p.SupplierID,
		SupplierName:   p.SupplierName,
		Date:           p.Date,
		DocumentNumber: p.DocumentNumber,
		GrossCents:     money.ParseMaskedAmount(p.Gross),
		PercentText:    p.Percent,
		RetainedCents:  money.ParseMaskedAmount(p.Retained),
		EventType:      p.EventType,
	}
}

// FromDraft converts a domain draft back to the wire payload.
func FromDraft(d domain.MovementDraft) MovementDraftPayload {
	return MovementDraftPayload{
		ID:             d.MovementID,
		SupplierID:     d.SupplierID,
		SupplierName:   d.SupplierName,
		Date:           d.Date,
		DocumentNumber: d.DocumentNumber,
		Gross:          strconv.FormatInt(d.GrossCents, 10),
		Percent:        d.PercentText,
		Retained:       strconv.FormatInt(d.RetainedCents, 10),
		EventType:      d.EventType,
	}
}

// MovementResponse defines the data returned for a movement, with the
// supplier name resolved and display strings pre-rendered for the table.
type MovementResponse struct {
	ID              string          `json:"id"`
	SupplierID      string          `json:"id_fornecedor"`
	SupplierName    string          `json:"nome_fornecedor"`
	Date            string          `json:"data"`
	DateDisplay     string          `json:"data_display"`
	DocumentNumber  string          `json:"numero_documento"`
	Gross           decimal.Decimal `json:"valor"`
	GrossDisplay    string          `json:"valor_display"`
	RetentionPct    decimal.Decimal `json:"percentual_retido"`
	PctDisplay      string          `json:"percentual_display"`
	Retained        decimal.Decimal `json:"retido"`
	RetainedDisplay string          `json:"retido_display"`
	EventType       string          `json:"tipo_evento"`
}

// ToMovementResponse converts a domain.Movement to its response DTO.
func ToMovementResponse(m *domain.Movement, supplierName string) MovementResponse {
	return MovementResponse{
		ID:              m.ID,
		SupplierID:      m.SupplierID,
		SupplierName:    supplierName,
		Date:            m.Date,
		DateDisplay:     domain.FormatDateBR(m.Date),
		DocumentNumber:  m.DocumentNumber,
		Gross:           m.GrossAmount,
		GrossDisplay:    money.FormatCurrency(m.GrossAmount),
		RetentionPct:    m.RetentionPct,
		PctDisplay:      money.FormatPercentage(m.RetentionPct),
		Retained:        m.RetainedAmount,
		RetainedDisplay: money.FormatCurrency(m.RetainedAmount),
		EventType:       m.EventType,
	}
}
