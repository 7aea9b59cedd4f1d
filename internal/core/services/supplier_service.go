package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/appfinanceiro/ledger_view_app/internal/apperrors"
	"github.com/appfinanceiro/ledger_view_app/internal/core/domain"
	portsrepo "github.com/appfinanceiro/ledger_view_app/internal/core/ports/repositories"
	portssvc "github.com/appfinanceiro/ledger_view_app/internal/core/ports/services"
	"github.com/appfinanceiro/ledger_view_app/internal/dto"
	"github.com/appfinanceiro/ledger_view_app/internal/middleware"
)

var (
	ErrSupplierNameRequired = errors.New("supplier legal name is required")
	ErrSupplierCNPJInvalid  = errors.New("supplier CNPJ is malformed")
)

// maxSuggestions caps the autocomplete dropdown.
const maxSuggestions = 5

// supplierService provides supplier registry operations.
type supplierService struct {
	supplierRepo portsrepo.SupplierRepositoryFacade
}

// NewSupplierService creates a new SupplierService.
func NewSupplierService(supplierRepo portsrepo.SupplierRepositoryFacade) portssvc.SupplierSvcFacade {
	return &supplierService{supplierRepo: supplierRepo}
}

var _ portssvc.SupplierSvcFacade = (*supplierService)(nil)

func (s *supplierService) ListSuppliers(ctx context.Context, req dto.ListSuppliersRequest) (*dto.ListSuppliersResponse, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	suppliers, err := s.supplierRepo.ListSuppliers(ctx)
	if err != nil {
		// Same fail-safe as the movement view: an empty registry, not an error.
		logger.Warn("Failed to load suppliers, using empty set", slog.String("error", err.Error()))
		suppliers = nil
	}

	filtered := filterSuppliers(suppliers, req.Search)

	totalPages := TotalPages(len(filtered), req.Limit)
	page := req.Page
	if page > totalPages {
		page = totalPages
	}
	if page < 1 {
		page = 1
	}

	start := (page - 1) * req.Limit
	end := start + req.Limit
	if start > len(filtered) {
		start = len(filtered)
	}
	if end > len(filtered) {
		end = len(filtered)
	}

	return &dto.ListSuppliersResponse{
		Items:      dto.ToSupplierResponses(filtered[start:end]),
		Page:       page,
		PageSize:   req.Limit,
		TotalPages: totalPages,
		TotalCount: len(filtered),
	}, nil
}

// filterSuppliers matches the registry search: name or municipality
// substring, case-insensitive, preserving input order.
func filterSuppliers(suppliers []domain.Supplier, search string) []domain.Supplier {
	if search == "" {
		return append([]domain.Supplier(nil), suppliers...)
	}
	q := strings.ToLower(search)
	out := make([]domain.Supplier, 0, len(suppliers))
	for _, f := range suppliers {
		if strings.Contains(strings.ToLower(f.Name), q) || strings.Contains(strings.ToLower(f.Municipality), q) {
			out = append(out, f)
		}
	}
	return out
}

func (s *supplierService) SuggestSuppliers(ctx context.Context, query string) ([]domain.Supplier, error) {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return nil, nil
	}

	suppliers, err := s.supplierRepo.ListSuppliers(ctx)
	if err != nil {
		middleware.GetLoggerFromCtx(ctx).Warn("Failed to load suppliers for suggestions", slog.String("error", err.Error()))
		return nil, nil
	}

	out := make([]domain.Supplier, 0, maxSuggestions)
	for _, f := range suppliers {
		if strings.Contains(f.ID, q) || strings.Contains(strings.ToLower(f.Name), q) {
			out = append(out, f)
			if len(out) == maxSuggestions {
				break
			}
		}
	}
	return out, nil
}

func (s *supplierService) CreateSupplier(ctx context.Context, req dto.SaveSupplierRequest) (*domain.Supplier, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if err := validateSupplier(req); err != nil {
		return nil, fmt.Errorf("%w: %s", apperrors.ErrValidation, err.Error())
	}

	id, ok := domain.DeriveSupplierID(req.CNPJ)
	if !ok {
		return nil, fmt.Errorf("%w: %s", apperrors.ErrValidation, ErrSupplierCNPJInvalid.Error())
	}

	// The duplicate check happens against the loaded set, before any write.
	existing, err := s.supplierRepo.ListSuppliers(ctx)
	if err != nil {
		logger.Error("Failed to load suppliers for duplicate check", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to load suppliers: %w", err)
	}
	for _, f := range existing {
		if domain.NormalizeID(f.ID) == id {
			return nil, fmt.Errorf("%w: supplier %s", apperrors.ErrDuplicate, id)
		}
	}

	supplier := req.ToDomain(id)
	if err := s.supplierRepo.SaveSupplier(ctx, supplier); err != nil {
		logger.Error("Failed to save supplier", slog.String("supplier_id", id), slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to save supplier: %w", err)
	}

	logger.Info("Supplier created", slog.String("supplier_id", id), slog.String("name", supplier.Name))
	return &supplier, nil
}

func (s *supplierService) UpdateSupplier(ctx context.Context, id string, req dto.SaveSupplierRequest) (*domain.Supplier, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if err := validateSupplier(req); err != nil {
		return nil, fmt.Errorf("%w: %s", apperrors.ErrValidation, err.Error())
	}

	supplier := req.ToDomain(domain.NormalizeID(id))
	if err := s.supplierRepo.UpdateSupplier(ctx, supplier.ID, supplier); err != nil {
		logger.Error("Failed to update supplier", slog.String("supplier_id", supplier.ID), slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to update supplier: %w", err)
	}

	logger.Info("Supplier updated", slog.String("supplier_id", supplier.ID))
	return &supplier, nil
}

func (s *supplierService) DeleteSupplier(ctx context.Context, id string) error {
	logger := middleware.GetLoggerFromCtx(ctx)

	if err := s.supplierRepo.DeleteSupplier(ctx, domain.NormalizeID(id)); err != nil {
		logger.Error("Failed to delete supplier", slog.String("supplier_id", id), slog.String("error", err.Error()))
		return fmt.Errorf("failed to delete supplier: %w", err)
	}

	logger.Info("Supplier deleted", slog.String("supplier_id", id))
	return nil
}

func validateSupplier(req dto.SaveSupplierRequest) error {
	if strings.TrimSpace(req.Name) == "" {
		return ErrSupplierNameRequired
	}
	if !domain.ValidCNPJ(domain.FormatCNPJ(req.CNPJ)) {
		return ErrSupplierCNPJInvalid
	}
	return nil
}
