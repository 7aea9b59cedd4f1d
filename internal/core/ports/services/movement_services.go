package services

import (
	"context"

	"github.com/appfinanceiro/ledger_view_app/internal/core/domain"
)

// MovementSvcFacade defines the movement CRUD and draft operations.
type MovementSvcFacade interface {
	// NewDraft returns an empty draft seeded with the configured default
	// retention percentage, ready for the create form.
	NewDraft() domain.MovementDraft

	// GetMovementDraft loads a stored movement as an editable draft with
	// the supplier name resolved.
	GetMovementDraft(ctx context.Context, id string) (domain.MovementDraft, error)

	// CreateMovement validates and persists a new movement built from the
	// draft, assigning it a fresh opaque token identifier.
	CreateMovement(ctx context.Context, draft domain.MovementDraft) (*domain.Movement, error)

	// UpdateMovement validates the draft and replaces the stored movement.
	UpdateMovement(ctx context.Context, id string, draft domain.MovementDraft) (*domain.Movement, error)

	// DeleteMovement removes a movement from the store.
	DeleteMovement(ctx context.Context, id string) error

	// ApplyDraftEdit performs one derivation step on an in-progress draft:
	// editing gross or percentage rederives retained, editing retained
	// stores it verbatim.
	ApplyDraftEdit(draft domain.MovementDraft, field, value string) (domain.MovementDraft, error)
}
