package domain_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/appfinanceiro/ledger_view_app/internal/core/domain"
)

func TestMovementDraft_EditGross_RederivesRetained(t *testing.T) {
	draft := domain.NewMovementDraft("4,80")

	draft.EditGross("R$ 1.500,00")

	assert.Equal(t, int64(150000), draft.GrossCents)
	// 150000 * 4.80 / 100 = 7200, exact
	assert.Equal(t, int64(7200), draft.RetainedCents)
}

func TestMovementDraft_EditPercentage_RederivesRetained(t *testing.T) {
	draft := domain.NewMovementDraft("4,80")
	draft.EditGross("R$ 1.500,00")

	draft.EditPercentage("5")

	assert.Equal(t, "5", draft.PercentText)
	assert.Equal(t, int64(7500), draft.RetainedCents)
}

func TestMovementDraft_EditPercentage_TrailingSeparatorStillDerives(t *testing.T) {
	draft := domain.NewMovementDraft("")
	draft.EditGross("R$ 1.000,00")

	draft.EditPercentage("4,")

	assert.Equal(t, "4,", draft.PercentText, "raw text is preserved verbatim")
	assert.Equal(t, int64(4000), draft.RetainedCents)
}

func TestMovementDraft_RetainedRoundsHalfUp(t *testing.T) {
	draft := domain.NewMovementDraft("4,80")

	// 10105 * 4.80 / 100 = 485.04 -> 485
	draft.EditGross("R$ 101,05")
	assert.Equal(t, int64(485), draft.RetainedCents)

	// 3125 * 5 / 100 = 156.25 -> 156; 3130 * 5 / 100 = 156.5 -> 157
	draft.EditPercentage("5")
	draft.EditGross("R$ 31,25")
	assert.Equal(t, int64(156), draft.RetainedCents)
	draft.EditGross("R$ 31,30")
	assert.Equal(t, int64(157), draft.RetainedCents)
}

func TestMovementDraft_EditRetained_IsOneWay(t *testing.T) {
	draft := domain.NewMovementDraft("4,80")
	draft.EditGross("R$ 1.500,00")

	draft.EditRetained("R$ 99,99")

	assert.Equal(t, int64(9999), draft.RetainedCents)
	assert.Equal(t, int64(150000), draft.GrossCents, "gross is untouched")
	assert.Equal(t, "4,80", draft.PercentText, "percentage is untouched")

	// The next gross edit overwrites the manual retained value.
	draft.EditGross("R$ 2.000,00")
	assert.Equal(t, int64(9600), draft.RetainedCents)
}

func TestMovementDraft_NoRoundingAccumulation(t *testing.T) {
	draft := domain.NewMovementDraft("4,80")

	// Simulate keystroke-by-keystroke masked input. Each recompute starts
	// from scratch, so only the final state matters.
	for _, typed := range []string{"1", "15", "150", "1.500", "15.000", "150.000", "1.500.00", "R$ 1.500,00"} {
		draft.EditGross(typed)
	}

	assert.Equal(t, int64(150000), draft.GrossCents)
	assert.Equal(t, int64(7200), draft.RetainedCents)
}

func TestMovementDraft_Commit_Validation(t *testing.T) {
	base := domain.MovementDraft{
		SupplierID:  "12345 67",
		Date:        "2024-03-15",
		GrossCents:  150000,
		PercentText: "4,80",
	}

	t.Run("missing supplier", func(t *testing.T) {
		d := base
		d.SupplierID = "  "
		_, err := d.Commit()
		assert.ErrorIs(t, err, domain.ErrDraftSupplierMissing)
	})

	t.Run("missing date", func(t *testing.T) {
		d := base
		d.Date = ""
		_, err := d.Commit()
		assert.ErrorIs(t, err, domain.ErrDraftDateMissing)
	})

	t.Run("zero gross", func(t *testing.T) {
		d := base
		d.GrossCents = 0
		_, err := d.Commit()
		assert.ErrorIs(t, err, domain.ErrDraftAmountMissing)
	})
}

func TestMovementDraft_Commit_ConvertsMinorUnits(t *testing.T) {
	draft := domain.NewMovementDraft("4,80")
	draft.SupplierID = "1234567"
	draft.Date = "2024-03-15"
	draft.EditGross("R$ 1.500,00")

	movement, err := draft.Commit()
	require.NoError(t, err)

	assert.True(t, decimal.RequireFromString("1500.00").Equal(movement.GrossAmount))
	assert.True(t, decimal.RequireFromString("4.80").Equal(movement.RetentionPct))
	assert.True(t, decimal.RequireFromString("72.00").Equal(movement.RetainedAmount))
	assert.Equal(t, "1234567", movement.SupplierID)
}

func TestDraftFromMovement_RoundTrip(t *testing.T) {
	movement := domain.Movement{
		ID:             "a1b2c3d4",
		SupplierID:     "1234599",
		Date:           "2024-03-15",
		DocumentNumber: "NF-42",
		GrossAmount:    decimal.RequireFromString("1500.00"),
		RetentionPct:   decimal.RequireFromString("4.8"),
		RetainedAmount: decimal.RequireFromString("72.00"),
		EventType:      "S-1000",
	}

	draft := domain.DraftFromMovement(movement, "ACME LTDA")

	assert.Equal(t, int64(150000), draft.GrossCents)
	assert.Equal(t, int64(7200), draft.RetainedCents)
	assert.Equal(t, "4.8", draft.PercentText)
	assert.Equal(t, "ACME LTDA", draft.SupplierName)

	committed, err := draft.Commit()
	require.NoError(t, err)
	committed.ID = movement.ID
	assert.True(t, movement.GrossAmount.Equal(committed.GrossAmount))
	assert.True(t, movement.RetainedAmount.Equal(committed.RetainedAmount))
}
