package repositories

import (
	"context"

	"github.com/appfinanceiro/ledger_view_app/internal/core/domain"
)

// SupplierReader defines read operations for supplier data
type SupplierReader interface {
	// ListSuppliers retrieves the full supplier set from the store.
	ListSuppliers(ctx context.Context) ([]domain.Supplier, error)

	// FindSupplierByID retrieves a single supplier.
	FindSupplierByID(ctx context.Context, id string) (*domain.Supplier, error)
}

// SupplierWriter defines write operations for supplier data
type SupplierWriter interface {
	// SaveSupplier persists a new supplier.
	SaveSupplier(ctx context.Context, supplier domain.Supplier) error

	// UpdateSupplier replaces an existing supplier.
	UpdateSupplier(ctx context.Context, id string, supplier domain.Supplier) error

	// DeleteSupplier removes a supplier.
	DeleteSupplier(ctx context.Context, id string) error
}

// SupplierRepositoryFacade combines all supplier-related repository interfaces.
type SupplierRepositoryFacade interface {
	SupplierReader
	SupplierWriter
}
