package domain

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Movement represents one ledger entry: a payment made to a supplier.
// JSON tags follow the external store's schema. Once persisted the three
// monetary fields are independent data; the retained ≈ gross × pct / 100
// relationship is only maintained while editing through MovementDraft.
type Movement struct {
	ID             string          `json:"id"`               // opaque token
	SupplierID     string          `json:"id_fornecedor"`    // FK -> Supplier.ID, canonical string form
	Date           string          `json:"data"`             // calendar date as stored, textual
	DocumentNumber string          `json:"numero_documento"` // free text
	GrossAmount    decimal.Decimal `json:"valor"`            // non-negative currency value
	RetentionPct   decimal.Decimal `json:"percentual_retido"`
	RetainedAmount decimal.Decimal `json:"retido"`
	EventType      string          `json:"tipo_evento"` // e.g. "S-1000", nullable in the store
}

// NormalizeID maps a store identifier to its canonical string form. The
// store is loosely typed (a reference may arrive as a number or a string),
// so all comparisons in the engine go through this form.
func NormalizeID(id string) string {
	return strings.TrimSpace(id)
}
