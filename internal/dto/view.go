package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/appfinanceiro/ledger_view_app/internal/core/domain"
)

// ListMovementsRequest carries the full view state through query
// parameters: timeline window, lateral range, free text, chips, sort and
// pagination.
type ListMovementsRequest struct {
	Year      int      `form:"year"`
	Month     *int     `form:"month" binding:"omitempty,min=0,max=11"`
	StartDate string   `form:"start_date"`
	EndDate   string   `form:"end_date"`
	Search    string   `form:"search"`
	Chips     []string `form:"chips"`
	SortBy    string   `form:"sort_by"`
	SortDir   string   `form:"sort_dir" binding:"omitempty,oneof=asc desc"`
	Page      int      `form:"page,default=1"`
	Limit     int      `form:"limit,default=20" binding:"omitempty,oneof=20 50"`
}

// ToViewState builds the view state the engine evaluates. Exactly one year
// is always selected; when the client sends none the current year is used.
// Unknown chip identifiers are ignored.
func (r ListMovementsRequest) ToViewState() domain.ViewState {
	year := r.Year
	if year == 0 {
		year = time.Now().Year()
	}

	state := domain.NewViewState(year)
	state.Month = r.Month
	state.Search = r.Search
	state = state.SetPageSize(r.Limit)
	state.Page.Page = r.Page

	for _, id := range r.Chips {
		for _, chip := range domain.QuickFilters {
			if chip.ID == id {
				state = state.ToggleChip(chip)
			}
		}
	}
	if r.StartDate != "" || r.EndDate != "" {
		state = state.ApplyPeriod(r.StartDate, r.EndDate)
	}

	sortDir := domain.SortAsc
	if r.SortDir == string(domain.SortDesc) {
		sortDir = domain.SortDesc
	}
	if r.SortBy != "" {
		state.Sort = domain.SortConfig{Column: r.SortBy, Direction: sortDir}
	}
	return state
}

// TotalsResponse is the sum of gross and retained amounts over the filtered
// (pre-pagination) subset.
type TotalsResponse struct {
	Gross           decimal.Decimal `json:"valor"`
	GrossDisplay    string          `json:"valor_display"`
	Retained        decimal.Decimal `json:"retido"`
	RetainedDisplay string          `json:"retido_display"`
}

// ListMovementsResponse is the rendered page plus everything the table
// chrome needs: totals, chip set and pagination info.
type ListMovementsResponse struct {
	Items      []MovementResponse  `json:"items"`
	Totals     TotalsResponse      `json:"totals"`
	Chips      []domain.FilterChip `json:"chips"`
	Page       int                 `json:"page"`
	PageSize   int                 `json:"pageSize"`
	TotalPages int                 `json:"totalPages"`
	TotalCount int                 `json:"totalCount"`
}
