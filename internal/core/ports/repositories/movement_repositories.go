package repositories

import (
	"context"

	"github.com/appfinanceiro/ledger_view_app/internal/core/domain"
)

// MovementReader defines read operations for movement data
type MovementReader interface {
	// ListMovements retrieves the full movement set from the store.
	ListMovements(ctx context.Context) ([]domain.Movement, error)

	// FindMovementByID retrieves a single movement.
	FindMovementByID(ctx context.Context, id string) (*domain.Movement, error)
}

// MovementWriter defines write operations for movement data
type MovementWriter interface {
	// SaveMovement persists a new movement.
	SaveMovement(ctx context.Context, movement domain.Movement) error

	// UpdateMovement replaces an existing movement.
	UpdateMovement(ctx context.Context, id string, movement domain.Movement) error

	// DeleteMovement removes a movement.
	DeleteMovement(ctx context.Context, id string) error
}

// MovementRepositoryFacade combines all movement-related repository interfaces.
// This is a facade for clients that need access to all operations.
type MovementRepositoryFacade interface {
	MovementReader
	MovementWriter
}
