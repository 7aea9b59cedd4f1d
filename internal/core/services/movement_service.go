package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/appfinanceiro/ledger_view_app/internal/apperrors"
	"github.com/appfinanceiro/ledger_view_app/internal/core/domain"
	portsrepo "github.com/appfinanceiro/ledger_view_app/internal/core/ports/repositories"
	portssvc "github.com/appfinanceiro/ledger_view_app/internal/core/ports/services"
	"github.com/appfinanceiro/ledger_view_app/internal/middleware"
)

var ErrUnknownDraftField = errors.New("unknown draft field")

// movementService provides movement CRUD and draft derivation operations.
type movementService struct {
	movementRepo   portsrepo.MovementRepositoryFacade
	supplierRepo   portsrepo.SupplierReader
	defaultPercent string
}

// NewMovementService creates a new MovementService. defaultPercent seeds
// the retention percentage of fresh drafts, raw text as shown in the form.
func NewMovementService(movementRepo portsrepo.MovementRepositoryFacade, supplierRepo portsrepo.SupplierReader, defaultPercent string) portssvc.MovementSvcFacade {
	return &movementService{
		movementRepo:   movementRepo,
		supplierRepo:   supplierRepo,
		defaultPercent: defaultPercent,
	}
}

var _ portssvc.MovementSvcFacade = (*movementService)(nil)

// newMovementToken generates the short random opaque identifier assigned to
// new movements.
func newMovementToken() string {
	return strings.ReplaceAll(uuid.NewString(), "-", "")[:8]
}

func (s *movementService) NewDraft() domain.MovementDraft {
	return domain.NewMovementDraft(s.defaultPercent)
}

func (s *movementService) GetMovementDraft(ctx context.Context, id string) (domain.MovementDraft, error) {
	movement, err := s.movementRepo.FindMovementByID(ctx, domain.NormalizeID(id))
	if err != nil {
		return domain.MovementDraft{}, fmt.Errorf("failed to load movement: %w", err)
	}

	supplierName := ""
	if supplier, err := s.supplierRepo.FindSupplierByID(ctx, movement.SupplierID); err == nil {
		supplierName = supplier.Name
	}

	return domain.DraftFromMovement(*movement, supplierName), nil
}

func (s *movementService) CreateMovement(ctx context.Context, draft domain.MovementDraft) (*domain.Movement, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	movement, err := draft.Commit()
	if err != nil {
		return nil, fmt.Errorf("%w: %s", apperrors.ErrValidation, err.Error())
	}
	movement.ID = newMovementToken()

	if err := s.movementRepo.SaveMovement(ctx, movement); err != nil {
		logger.Error("Failed to save movement", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to save movement: %w", err)
	}

	logger.Info("Movement created", slog.String("movement_id", movement.ID), slog.String("supplier_id", movement.SupplierID))
	return &movement, nil
}

func (s *movementService) UpdateMovement(ctx context.Context, id string, draft domain.MovementDraft) (*domain.Movement, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	movement, err := draft.Commit()
	if err != nil {
		return nil, fmt.Errorf("%w: %s", apperrors.ErrValidation, err.Error())
	}
	movement.ID = domain.NormalizeID(id)

	if err := s.movementRepo.UpdateMovement(ctx, movement.ID, movement); err != nil {
		logger.Error("Failed to update movement", slog.String("movement_id", movement.ID), slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to update movement: %w", err)
	}

	logger.Info("Movement updated", slog.String("movement_id", movement.ID))
	return &movement, nil
}

func (s *movementService) DeleteMovement(ctx context.Context, id string) error {
	logger := middleware.GetLoggerFromCtx(ctx)

	if err := s.movementRepo.DeleteMovement(ctx, domain.NormalizeID(id)); err != nil {
		logger.Error("Failed to delete movement", slog.String("movement_id", id), slog.String("error", err.Error()))
		return fmt.Errorf("failed to delete movement: %w", err)
	}

	logger.Info("Movement deleted", slog.String("movement_id", id))
	return nil
}

// ApplyDraftEdit routes one masked-input edit to the draft's entry points.
// Editing gross or percentage rederives retained; editing retained stores
// it verbatim and leaves the other two untouched.
func (s *movementService) ApplyDraftEdit(draft domain.MovementDraft, field, value string) (domain.MovementDraft, error) {
	switch field {
	case domain.ColumnGross:
		draft.EditGross(value)
	case domain.ColumnRetentionPct:
		draft.EditPercentage(value)
	case domain.ColumnRetained:
		draft.EditRetained(value)
	default:
		return draft, fmt.Errorf("%w: %q", ErrUnknownDraftField, field)
	}
	return draft, nil
}
