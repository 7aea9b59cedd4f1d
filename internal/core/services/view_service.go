package services

import (
	"context"
	"log/slog"
	"sort"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"

	"github.com/appfinanceiro/ledger_view_app/internal/core/domain"
	"github.com/appfinanceiro/ledger_view_app/internal/core/money"
	portsrepo "github.com/appfinanceiro/ledger_view_app/internal/core/ports/repositories"
	portssvc "github.com/appfinanceiro/ledger_view_app/internal/core/ports/services"
	"github.com/appfinanceiro/ledger_view_app/internal/dto"
	"github.com/appfinanceiro/ledger_view_app/internal/middleware"
)

var highValueThreshold = decimal.NewFromInt(10000)

// viewService evaluates the ledger view pipeline over the repository's
// current record sets.
type viewService struct {
	movementRepo portsrepo.MovementReader
	supplierRepo portsrepo.SupplierReader
}

// NewViewService creates a new view service.
func NewViewService(movementRepo portsrepo.MovementReader, supplierRepo portsrepo.SupplierReader) portssvc.ViewSvcFacade {
	return &viewService{
		movementRepo: movementRepo,
		supplierRepo: supplierRepo,
	}
}

var _ portssvc.ViewSvcFacade = (*viewService)(nil)

// load fetches both collections concurrently. A failed fetch degrades to an
// empty set so the view renders "no records" instead of failing.
func (s *viewService) load(ctx context.Context) ([]domain.Movement, []domain.Supplier) {
	logger := middleware.GetLoggerFromCtx(ctx)

	var movements []domain.Movement
	var suppliers []domain.Supplier

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		m, err := s.movementRepo.ListMovements(gctx)
		if err != nil {
			logger.Warn("Failed to load movements, using empty set", slog.String("error", err.Error()))
			return nil
		}
		movements = m
		return nil
	})
	g.Go(func() error {
		f, err := s.supplierRepo.ListSuppliers(gctx)
		if err != nil {
			logger.Warn("Failed to load suppliers, using empty set", slog.String("error", err.Error()))
			return nil
		}
		suppliers = f
		return nil
	})
	_ = g.Wait()

	return movements, suppliers
}

func (s *viewService) Evaluate(ctx context.Context, state domain.ViewState) (*dto.ListMovementsResponse, error) {
	movements, suppliers := s.load(ctx)

	filtered := FilterMovements(movements, suppliers, state)
	sorted := SortMovements(filtered, suppliers, state.Sort)

	totalPages := TotalPages(len(sorted), state.Page.PageSize)
	state = state.ClampPage(totalPages)
	page := PaginateMovements(sorted, state.Page)

	gross, retained := SumTotals(filtered)

	index := SupplierIndex(suppliers)
	items := make([]dto.MovementResponse, len(page))
	for i := range page {
		name := ""
		if f, ok := index[domain.NormalizeID(page[i].SupplierID)]; ok {
			name = f.Name
		}
		items[i] = dto.ToMovementResponse(&page[i], name)
	}

	return &dto.ListMovementsResponse{
		Items: items,
		Totals: dto.TotalsResponse{
			Gross:           gross,
			GrossDisplay:    money.FormatCurrency(gross),
			Retained:        retained,
			RetainedDisplay: money.FormatCurrency(retained),
		},
		Chips:      state.Chips,
		Page:       state.Page.Page,
		PageSize:   state.Page.PageSize,
		TotalPages: totalPages,
		TotalCount: len(sorted),
	}, nil
}

func (s *viewService) FilteredMovements(ctx context.Context, state domain.ViewState) ([]domain.Movement, []domain.Supplier, error) {
	movements, suppliers := s.load(ctx)
	return FilterMovements(movements, suppliers, state), suppliers, nil
}

// SupplierIndex builds a lookup keyed by the canonical identifier form.
func SupplierIndex(suppliers []domain.Supplier) map[string]domain.Supplier {
	index := make(map[string]domain.Supplier, len(suppliers))
	for _, f := range suppliers {
		index[domain.NormalizeID(f.ID)] = f
	}
	return index
}

// FilterMovements applies the five AND-ed criteria (year window, month
// window, lateral range, free text, active chips) per movement. Output
// preserves input order; a movement whose date cannot be parsed never
// matches.
func FilterMovements(movements []domain.Movement, suppliers []domain.Supplier, state domain.ViewState) []domain.Movement {
	index := SupplierIndex(suppliers)

	var start, end time.Time
	var hasStart, hasEnd bool
	if state.StartDate != "" {
		start, hasStart = domain.ParseMovementDate(state.StartDate)
	}
	if state.EndDate != "" {
		if end, hasEnd = domain.ParseMovementDate(state.EndDate); hasEnd {
			end = end.Add(24*time.Hour - time.Second) // inclusive end of day
		}
	}

	out := make([]domain.Movement, 0, len(movements))
	for _, m := range movements {
		date, ok := domain.ParseMovementDate(m.Date)
		if !ok {
			continue
		}
		if date.Year() != state.Year {
			continue
		}
		if state.Month != nil && int(date.Month())-1 != *state.Month {
			continue
		}
		if hasStart && date.Before(start) {
			continue
		}
		if hasEnd && date.After(end) {
			continue
		}

		name := index[domain.NormalizeID(m.SupplierID)].Name
		if state.Search != "" {
			nameMatch := strings.Contains(strings.ToLower(name), strings.ToLower(state.Search))
			refMatch := strings.Contains(m.SupplierID, state.Search)
			if !nameMatch && !refMatch {
				continue
			}
		}
		if !chipsMatch(state.Chips, m, name) {
			continue
		}
		out = append(out, m)
	}
	return out
}

// chipsMatch evaluates all active chip predicates as a logical AND. The
// period chip carries no predicate of its own: its bounds are already part
// of the lateral range criteria.
func chipsMatch(chips []domain.FilterChip, m domain.Movement, supplierName string) bool {
	for _, chip := range chips {
		switch chip.Tag {
		case domain.ChipCityHalls:
			if !strings.Contains(strings.ToUpper(supplierName), "PREFEITURA") {
				return false
			}
		case domain.ChipHighValue:
			if !m.GrossAmount.GreaterThan(highValueThreshold) {
				return false
			}
		case domain.ChipESocialEvents:
			if !strings.Contains(m.EventType, "S-1000") {
				return false
			}
		}
	}
	return true
}

// SortMovements applies the single active comparator, stable so ties keep
// their pre-sort order. An empty column is a pass-through.
func SortMovements(filtered []domain.Movement, suppliers []domain.Supplier, cfg domain.SortConfig) []domain.Movement {
	out := append([]domain.Movement(nil), filtered...)
	if cfg.Column == "" {
		return out
	}
	index := SupplierIndex(suppliers)

	sort.SliceStable(out, func(i, j int) bool {
		cmp := compareMovements(out[i], out[j], index, cfg.Column)
		if cfg.Direction == domain.SortDesc {
			return cmp > 0
		}
		return cmp < 0
	})
	return out
}

func compareMovements(a, b domain.Movement, index map[string]domain.Supplier, column string) int {
	switch column {
	case domain.ColumnSupplier:
		x := strings.ToLower(index[domain.NormalizeID(a.SupplierID)].Name)
		y := strings.ToLower(index[domain.NormalizeID(b.SupplierID)].Name)
		return strings.Compare(x, y)
	case domain.ColumnDate:
		x, _ := domain.ParseMovementDate(a.Date)
		y, _ := domain.ParseMovementDate(b.Date)
		return x.Compare(y)
	case domain.ColumnGross:
		return a.GrossAmount.Cmp(b.GrossAmount)
	case domain.ColumnRetentionPct:
		return a.RetentionPct.Cmp(b.RetentionPct)
	case domain.ColumnRetained:
		return a.RetainedAmount.Cmp(b.RetainedAmount)
	default:
		return compareLoose(rawField(a, column), rawField(b, column))
	}
}

func rawField(m domain.Movement, column string) string {
	switch column {
	case domain.ColumnDocument:
		return m.DocumentNumber
	default:
		return ""
	}
}

// compareLoose compares numerically when both operands are numeric, else
// lexicographically.
func compareLoose(x, y string) int {
	dx, errX := decimal.NewFromString(x)
	dy, errY := decimal.NewFromString(y)
	if errX == nil && errY == nil {
		return dx.Cmp(dy)
	}
	return strings.Compare(x, y)
}

// TotalPages is ceil(count/pageSize), never below one page.
func TotalPages(count, pageSize int) int {
	if pageSize <= 0 {
		return 1
	}
	pages := (count + pageSize - 1) / pageSize
	if pages < 1 {
		return 1
	}
	return pages
}

// PaginateMovements slices one page out of the sorted subset. The page
// number is assumed clamped; an out-of-range start still yields an empty
// page rather than panicking.
func PaginateMovements(sorted []domain.Movement, p domain.Pagination) []domain.Movement {
	if p.PageSize <= 0 {
		return append([]domain.Movement(nil), sorted...)
	}
	start := (p.Page - 1) * p.PageSize
	if start < 0 || start >= len(sorted) {
		return []domain.Movement{}
	}
	end := start + p.PageSize
	if end > len(sorted) {
		end = len(sorted)
	}
	return sorted[start:end]
}

// SumTotals sums gross and retained over the filtered (pre-pagination)
// subset.
func SumTotals(filtered []domain.Movement) (gross, retained decimal.Decimal) {
	gross = decimal.Zero
	retained = decimal.Zero
	for _, m := range filtered {
		gross = gross.Add(m.GrossAmount)
		retained = retained.Add(m.RetainedAmount)
	}
	return gross, retained
}
