package services

import (
	"context"

	"github.com/appfinanceiro/ledger_view_app/internal/core/domain"
	"github.com/appfinanceiro/ledger_view_app/internal/dto"
)

// SupplierSvcFacade defines supplier registry operations.
type SupplierSvcFacade interface {
	// ListSuppliers returns suppliers matching the search text (name or
	// municipality substring), paginated.
	ListSuppliers(ctx context.Context, req dto.ListSuppliersRequest) (*dto.ListSuppliersResponse, error)

	// SuggestSuppliers returns the top autocomplete matches for a query
	// against supplier ID or name.
	SuggestSuppliers(ctx context.Context, query string) ([]domain.Supplier, error)

	// CreateSupplier validates the CNPJ, derives the deterministic supplier
	// identifier from it and persists the supplier. Creation fails when the
	// derived identifier already exists in the loaded set.
	CreateSupplier(ctx context.Context, req dto.SaveSupplierRequest) (*domain.Supplier, error)

	// UpdateSupplier replaces an existing supplier, keeping its identifier.
	UpdateSupplier(ctx context.Context, id string, req dto.SaveSupplierRequest) (*domain.Supplier, error)

	// DeleteSupplier removes a supplier from the store.
	DeleteSupplier(ctx context.Context, id string) error
}
