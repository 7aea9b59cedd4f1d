package services

import (
	"context"

	"github.com/appfinanceiro/ledger_view_app/internal/core/domain"
	"github.com/appfinanceiro/ledger_view_app/internal/dto"
)

// ViewSvcFacade evaluates the ledger view pipeline: load both record sets,
// filter, sort, paginate and total them for a given view state.
type ViewSvcFacade interface {
	// Evaluate runs the full pipeline and returns the rendered page plus
	// totals and pagination info. A failed load degrades to an empty
	// working set rather than an error.
	Evaluate(ctx context.Context, state domain.ViewState) (*dto.ListMovementsResponse, error)

	// FilteredMovements returns the filtered (pre-pagination, pre-sort)
	// subset in input order together with the full supplier set. This is
	// the contract consumed by the report collaborator.
	FilteredMovements(ctx context.Context, state domain.ViewState) ([]domain.Movement, []domain.Supplier, error)
}
