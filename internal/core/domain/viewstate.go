package domain

import "fmt"

// Sortable table columns. Names follow the store's field names so the sort
// configuration can round-trip through query parameters unchanged.
const (
	ColumnSupplier     = "fornecedor"
	ColumnDate         = "data"
	ColumnDocument     = "numero_documento"
	ColumnGross        = "valor"
	ColumnRetentionPct = "percentual_retido"
	ColumnRetained     = "retido"
)

// SortDirection is the direction of the single active sort.
type SortDirection string

const (
	SortAsc  SortDirection = "asc"
	SortDesc SortDirection = "desc"
)

// SortConfig holds the active (column, direction) pair. An empty column
// means no active sort: the table keeps input order.
type SortConfig struct {
	Column    string        `json:"column"`
	Direction SortDirection `json:"direction"`
}

// Pagination is the 1-based page cursor over the sorted subset.
type Pagination struct {
	Page     int `json:"page"`
	PageSize int `json:"pageSize"`
}

// PageSizes are the selectable page sizes.
var PageSizes = []int{20, 50}

// DefaultPageSize is used when a view state is first created.
const DefaultPageSize = 20

// ChipPeriod is the reserved chip tag for the lateral date range. At most
// one chip with this tag exists; applying a new range replaces it.
const ChipPeriod = "periodo"

// Quick-filter chip predicate tags.
const (
	ChipCityHalls     = "prefeituras"  // supplier name contains "PREFEITURA"
	ChipHighValue     = "valor>10000"  // gross amount above 10000
	ChipESocialEvents = "s1000"        // event type contains "S-1000"
)

// FilterChip is a removable, user-toggleable filter criterion. Chips form
// an ordered set: insertion order only matters for display, evaluation is a
// logical AND across all active chips.
type FilterChip struct {
	ID    string `json:"id"`
	Label string `json:"label"`
	Tag   string `json:"tag"`
}

// QuickFilters are the chips offered by the lateral panel.
var QuickFilters = []FilterChip{
	{ID: ChipCityHalls, Label: "Prefeituras", Tag: ChipCityHalls},
	{ID: ChipHighValue, Label: "Valor > R$ 10.000", Tag: ChipHighValue},
	{ID: ChipESocialEvents, Label: "Eventos S-1000", Tag: ChipESocialEvents},
}

// ViewState is the single serializable state of the ledger view: filters,
// sort and pagination. It is only updated through the pure transition
// methods below; every transition returns the next state, leaving the
// receiver untouched.
type ViewState struct {
	Year      int          `json:"year"`
	Month     *int         `json:"month"` // 0-based calendar month; nil = all months
	StartDate string       `json:"startDate"`
	EndDate   string       `json:"endDate"`
	Search    string       `json:"search"`
	Chips     []FilterChip `json:"chips"`
	Sort      SortConfig   `json:"sort"`
	Page      Pagination   `json:"pagination"`
}

// NewViewState returns the initial state for a year: no month selected, no
// filters, no active sort, first page at the default size.
func NewViewState(year int) ViewState {
	return ViewState{
		Year: year,
		Page: Pagination{Page: 1, PageSize: DefaultPageSize},
	}
}

// SelectYear switches the timeline year. The page is clamped at
// evaluation time when the filtered set shrinks.
func (s ViewState) SelectYear(year int) ViewState {
	s.Year = year
	return s
}

// PrevYear and NextYear mirror the timeline arrows.
func (s ViewState) PrevYear() ViewState { return s.SelectYear(s.Year - 1) }
func (s ViewState) NextYear() ViewState { return s.SelectYear(s.Year + 1) }

// SelectMonth sets the 0-based month window; nil selects all months.
func (s ViewState) SelectMonth(month *int) ViewState {
	s.Month = month
	return s
}

// SetSearch replaces the free-text filter.
func (s ViewState) SetSearch(text string) ViewState {
	s.Search = text
	return s
}

// ToggleChip adds the chip when absent and removes it when present.
func (s ViewState) ToggleChip(chip FilterChip) ViewState {
	for i, c := range s.Chips {
		if c.ID == chip.ID {
			s.Chips = append(append([]FilterChip(nil), s.Chips[:i]...), s.Chips[i+1:]...)
			return s
		}
	}
	s.Chips = append(append([]FilterChip(nil), s.Chips...), chip)
	return s
}

// RemoveChip removes a chip via its close control. Removing the period chip
// also clears the lateral date bounds.
func (s ViewState) RemoveChip(id string) ViewState {
	out := make([]FilterChip, 0, len(s.Chips))
	for _, c := range s.Chips {
		if c.ID != id {
			out = append(out, c)
		}
	}
	s.Chips = out
	if id == ChipPeriod {
		s.StartDate = ""
		s.EndDate = ""
	}
	return s
}

// ApplyPeriod sets the lateral date range. A non-empty range replaces any
// existing period chip with a fresh one; an empty range removes it.
func (s ViewState) ApplyPeriod(start, end string) ViewState {
	s.StartDate = start
	s.EndDate = end

	out := make([]FilterChip, 0, len(s.Chips)+1)
	for _, c := range s.Chips {
		if c.ID != ChipPeriod {
			out = append(out, c)
		}
	}
	if start != "" || end != "" {
		out = append(out, FilterChip{
			ID:    ChipPeriod,
			Label: fmt.Sprintf("Período: %s até %s", orDash(start), orDash(end)),
			Tag:   ChipPeriod,
		})
	}
	s.Chips = out
	return s
}

// ClearPeriod drops the lateral range and its chip.
func (s ViewState) ClearPeriod() ViewState {
	return s.ApplyPeriod("", "")
}

// ClickColumn applies the header-click rules: a new column becomes the
// active ascending sort; clicking the active column flips the direction.
func (s ViewState) ClickColumn(column string) ViewState {
	direction := SortAsc
	if s.Sort.Column == column && s.Sort.Direction == SortAsc {
		direction = SortDesc
	}
	s.Sort = SortConfig{Column: column, Direction: direction}
	return s
}

// SetPageSize switches the page size and resets to the first page.
func (s ViewState) SetPageSize(size int) ViewState {
	s.Page = Pagination{Page: 1, PageSize: size}
	return s
}

// NextPage advances one page, guarded against running past the last page.
func (s ViewState) NextPage(totalPages int) ViewState {
	if s.Page.Page < totalPages {
		s.Page.Page++
	}
	return s
}

// PrevPage steps back one page, guarded at the first page.
func (s ViewState) PrevPage() ViewState {
	if s.Page.Page > 1 {
		s.Page.Page--
	}
	return s
}

// ClampPage pulls the current page back into [1, totalPages] after the
// filtered set or the page size changed underneath it.
func (s ViewState) ClampPage(totalPages int) ViewState {
	if totalPages < 1 {
		totalPages = 1
	}
	if s.Page.Page > totalPages {
		s.Page.Page = totalPages
	}
	if s.Page.Page < 1 {
		s.Page.Page = 1
	}
	return s
}

func orDash(s string) string {
	if s == "" {
		return "—"
	}
	return s
}
