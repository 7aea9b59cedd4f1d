package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/appfinanceiro/ledger_view_app/internal/core/domain"
)

func TestViewState_ToggleChip(t *testing.T) {
	state := domain.NewViewState(2024)
	chip := domain.QuickFilters[0]

	state = state.ToggleChip(chip)
	assert.Len(t, state.Chips, 1)

	state = state.ToggleChip(chip)
	assert.Empty(t, state.Chips, "second toggle removes the chip")
}

func TestViewState_ToggleChip_PreservesOrder(t *testing.T) {
	state := domain.NewViewState(2024)
	for _, chip := range domain.QuickFilters {
		state = state.ToggleChip(chip)
	}

	state = state.ToggleChip(domain.QuickFilters[1])

	assert.Len(t, state.Chips, 2)
	assert.Equal(t, domain.QuickFilters[0].ID, state.Chips[0].ID)
	assert.Equal(t, domain.QuickFilters[2].ID, state.Chips[1].ID)
}

func TestViewState_ApplyPeriod_ReplacesExistingChip(t *testing.T) {
	state := domain.NewViewState(2024)

	state = state.ApplyPeriod("2024-01-01", "2024-06-30")
	assert.Len(t, state.Chips, 1)
	assert.Equal(t, domain.ChipPeriod, state.Chips[0].Tag)

	state = state.ApplyPeriod("2024-02-01", "2024-03-31")
	assert.Len(t, state.Chips, 1, "a new range replaces the old chip")
	assert.Equal(t, "2024-02-01", state.StartDate)
	assert.Equal(t, "2024-03-31", state.EndDate)
}

func TestViewState_RemoveChip_PeriodClearsBounds(t *testing.T) {
	state := domain.NewViewState(2024).ApplyPeriod("2024-01-01", "2024-06-30")

	state = state.RemoveChip(domain.ChipPeriod)

	assert.Empty(t, state.Chips)
	assert.Empty(t, state.StartDate)
	assert.Empty(t, state.EndDate)
}

func TestViewState_RemoveChip_OtherChipKeepsBounds(t *testing.T) {
	state := domain.NewViewState(2024).
		ApplyPeriod("2024-01-01", "2024-06-30").
		ToggleChip(domain.QuickFilters[0])

	state = state.RemoveChip(domain.QuickFilters[0].ID)

	assert.Len(t, state.Chips, 1)
	assert.Equal(t, "2024-01-01", state.StartDate)
}

func TestViewState_ClearPeriod(t *testing.T) {
	state := domain.NewViewState(2024).ApplyPeriod("2024-01-01", "")

	state = state.ClearPeriod()

	assert.Empty(t, state.Chips)
	assert.Empty(t, state.StartDate)
	assert.Empty(t, state.EndDate)
}

func TestViewState_ClickColumn(t *testing.T) {
	state := domain.NewViewState(2024)

	state = state.ClickColumn(domain.ColumnDate)
	assert.Equal(t, domain.SortConfig{Column: domain.ColumnDate, Direction: domain.SortAsc}, state.Sort)

	state = state.ClickColumn(domain.ColumnDate)
	assert.Equal(t, domain.SortDesc, state.Sort.Direction, "same column flips direction")

	state = state.ClickColumn(domain.ColumnGross)
	assert.Equal(t, domain.SortConfig{Column: domain.ColumnGross, Direction: domain.SortAsc}, state.Sort,
		"a new column always starts ascending")
}

func TestViewState_SetPageSize_ResetsToFirstPage(t *testing.T) {
	state := domain.NewViewState(2024)
	state.Page.Page = 3

	state = state.SetPageSize(50)

	assert.Equal(t, domain.Pagination{Page: 1, PageSize: 50}, state.Page)
}

func TestViewState_FilterTransitionsKeepPage(t *testing.T) {
	month := 2
	state := domain.NewViewState(2024)
	state.Page.Page = 4

	for name, next := range map[string]domain.ViewState{
		"year":   state.SelectYear(2023),
		"month":  state.SelectMonth(&month),
		"search": state.SetSearch("prefeitura"),
		"chip":   state.ToggleChip(domain.QuickFilters[0]),
		"period": state.ApplyPeriod("2024-01-01", ""),
	} {
		assert.Equal(t, 4, next.Page.Page, "transition %q must not reset the page", name)
	}
}

func TestViewState_PageNavigationGuards(t *testing.T) {
	state := domain.NewViewState(2024)

	state = state.PrevPage()
	assert.Equal(t, 1, state.Page.Page, "cannot step before the first page")

	state = state.NextPage(3)
	assert.Equal(t, 2, state.Page.Page)

	state = state.NextPage(2)
	assert.Equal(t, 2, state.Page.Page, "cannot step past the last page")
}

func TestViewState_ClampPage(t *testing.T) {
	state := domain.NewViewState(2024)
	state.Page.Page = 9

	assert.Equal(t, 3, state.ClampPage(3).Page.Page)
	assert.Equal(t, 1, state.ClampPage(0).Page.Page, "an empty result still has one page")
	assert.Equal(t, 9, state.ClampPage(20).Page.Page, "in-range pages are untouched")
}

func TestViewState_SelectMonth(t *testing.T) {
	month := 0 // January
	state := domain.NewViewState(2024).SelectMonth(&month)
	assert.NotNil(t, state.Month)
	assert.Equal(t, 0, *state.Month)

	state = state.SelectMonth(nil)
	assert.Nil(t, state.Month, "nil selects all months")
}

func TestViewState_TransitionsArePure(t *testing.T) {
	original := domain.NewViewState(2024).ToggleChip(domain.QuickFilters[0])

	_ = original.ToggleChip(domain.QuickFilters[1])
	_ = original.RemoveChip(domain.QuickFilters[0].ID)
	_ = original.ApplyPeriod("2024-01-01", "2024-06-30")

	assert.Len(t, original.Chips, 1, "the receiver is never mutated")
	assert.Empty(t, original.StartDate)
}
