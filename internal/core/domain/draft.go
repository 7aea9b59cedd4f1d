package domain

import (
	"errors"

	"github.com/shopspring/decimal"

	"github.com/appfinanceiro/ledger_view_app/internal/core/money"
)

var (
	ErrDraftSupplierMissing = errors.New("a valid supplier must be selected")
	ErrDraftDateMissing     = errors.New("a date must be provided")
	ErrDraftAmountMissing   = errors.New("a gross amount must be provided")
)

// MovementDraft is the in-progress create/edit form for a movement. Gross
// and retained amounts are held as integer minor units (centavos) so the
// masked input never goes through floating point; the percentage is kept as
// the raw text the user typed (it may hold a decimal comma or a trailing
// separator) until commit.
type MovementDraft struct {
	MovementID     string `json:"id"`
	SupplierID     string `json:"id_fornecedor"`
	SupplierName   string `json:"nome_fornecedor"`
	Date           string `json:"data"`
	DocumentNumber string `json:"numero_documento"`
	GrossCents     int64  `json:"valor"`
	PercentText    string `json:"percentual_retido"`
	RetainedCents  int64  `json:"retido"`
	EventType      string `json:"tipo_evento"`
}

// NewMovementDraft returns an empty draft seeded with the default retention
// percentage used for new movements.
func NewMovementDraft(defaultPercent string) MovementDraft {
	return MovementDraft{PercentText: defaultPercent}
}

// DraftFromMovement converts a persisted movement back into the editable
// minor-unit representation.
func DraftFromMovement(m Movement, supplierName string) MovementDraft {
	return MovementDraft{
		MovementID:     m.ID,
		SupplierID:     m.SupplierID,
		SupplierName:   supplierName,
		Date:           m.Date,
		DocumentNumber: m.DocumentNumber,
		GrossCents:     m.GrossAmount.Mul(decimal.NewFromInt(100)).Round(0).IntPart(),
		PercentText:    m.RetentionPct.String(),
		RetainedCents:  m.RetainedAmount.Mul(decimal.NewFromInt(100)).Round(0).IntPart(),
		EventType:      m.EventType,
	}
}

// EditGross reparses the masked gross input and rederives the retained
// amount from the currently stored percentage. Each recompute starts from
// scratch, so rounding never accumulates across keystrokes.
func (d *MovementDraft) EditGross(masked string) {
	d.GrossCents = money.ParseMaskedAmount(masked)
	d.recomputeRetained()
}

// EditPercentage stores the raw percentage text verbatim (preserving
// in-progress typing) and rederives the retained amount from the current
// gross.
func (d *MovementDraft) EditPercentage(raw string) {
	d.PercentText = raw
	d.recomputeRetained()
}

// EditRetained stores the masked retained input verbatim. Gross and
// percentage are deliberately left untouched: retained becomes a free field
// until the next gross or percentage edit overwrites it again.
func (d *MovementDraft) EditRetained(masked string) {
	d.RetainedCents = money.ParseMaskedAmount(masked)
}

// GrossDisplay renders the masked input text for the gross field.
func (d MovementDraft) GrossDisplay() string {
	return money.FormatMaskedAmount(d.GrossCents)
}

// RetainedDisplay renders the masked input text for the retained field.
func (d MovementDraft) RetainedDisplay() string {
	return money.FormatMaskedAmount(d.RetainedCents)
}

func (d *MovementDraft) recomputeRetained() {
	pct := money.ParsePercent(d.PercentText)
	retained := decimal.NewFromInt(d.GrossCents).
		Mul(pct).
		Div(decimal.NewFromInt(100)).
		Round(0)
	d.RetainedCents = retained.IntPart()
}

// Commit validates the draft and converts it to the canonical movement
// representation. Validation failures surface before any write is
// attempted; the movement ID is carried over as-is (empty for new records,
// the caller assigns a token).
func (d MovementDraft) Commit() (Movement, error) {
	if NormalizeID(d.SupplierID) == "" {
		return Movement{}, ErrDraftSupplierMissing
	}
	if d.Date == "" {
		return Movement{}, ErrDraftDateMissing
	}
	if d.GrossCents <= 0 {
		return Movement{}, ErrDraftAmountMissing
	}
	return Movement{
		ID:             d.MovementID,
		SupplierID:     NormalizeID(d.SupplierID),
		Date:           d.Date,
		DocumentNumber: d.DocumentNumber,
		GrossAmount:    decimal.New(d.GrossCents, -2),
		RetentionPct:   money.ParsePercent(d.PercentText),
		RetainedAmount: decimal.New(d.RetainedCents, -2),
		EventType:      d.EventType,
	}, nil
}
