package jsonstore

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/appfinanceiro/ledger_view_app/internal/core/domain"
	portsrepo "github.com/appfinanceiro/ledger_view_app/internal/core/ports/repositories"
)

const movementsPath = "/api/movimentacoes"

// movementRecord is the store's wire shape for a movement. Identifiers go
// through flexID so number-typed references collapse to canonical strings.
type movementRecord struct {
	ID             flexID          `json:"id"`
	SupplierID     flexID          `json:"id_fornecedor"`
	Date           string          `json:"data"`
	DocumentNumber string          `json:"numero_documento"`
	GrossAmount    decimal.Decimal `json:"valor"`
	RetentionPct   decimal.Decimal `json:"percentual_retido"`
	RetainedAmount decimal.Decimal `json:"retido"`
	EventType      *string         `json:"tipo_evento"`
}

func (r movementRecord) toDomain() domain.Movement {
	eventType := ""
	if r.EventType != nil {
		eventType = *r.EventType
	}
	return domain.Movement{
		ID:             domain.NormalizeID(string(r.ID)),
		SupplierID:     domain.NormalizeID(string(r.SupplierID)),
		Date:           r.Date,
		DocumentNumber: r.DocumentNumber,
		GrossAmount:    r.GrossAmount,
		RetentionPct:   r.RetentionPct,
		RetainedAmount: r.RetainedAmount,
		EventType:      eventType,
	}
}

// MovementRepository implements the movement ports against the store.
type MovementRepository struct {
	client *Client
}

var _ portsrepo.MovementRepositoryFacade = (*MovementRepository)(nil)

// NewMovementRepository creates a store-backed movement repository.
func NewMovementRepository(client *Client) *MovementRepository {
	return &MovementRepository{client: client}
}

// ListMovements fetches every movement from the store.
func (r *MovementRepository) ListMovements(ctx context.Context) ([]domain.Movement, error) {
	var records []movementRecord
	if err := r.client.get(ctx, movementsPath, &records); err != nil {
		return nil, fmt.Errorf("list movements: %w", err)
	}
	movements := make([]domain.Movement, 0, len(records))
	for _, rec := range records {
		movements = append(movements, rec.toDomain())
	}
	return movements, nil
}

// FindMovementByID fetches a single movement.
func (r *MovementRepository) FindMovementByID(ctx context.Context, id string) (*domain.Movement, error) {
	var record movementRecord
	if err := r.client.get(ctx, movementsPath+"/"+id, &record); err != nil {
		return nil, err
	}
	movement := record.toDomain()
	return &movement, nil
}

// SaveMovement creates a new movement in the store.
func (r *MovementRepository) SaveMovement(ctx context.Context, movement domain.Movement) error {
	if err := r.client.post(ctx, movementsPath, movement); err != nil {
		return fmt.Errorf("save movement: %w", err)
	}
	return nil
}

// UpdateMovement replaces the stored movement with the given one.
// Last write wins; there is no version check.
func (r *MovementRepository) UpdateMovement(ctx context.Context, id string, movement domain.Movement) error {
	return r.client.put(ctx, movementsPath+"/"+id, movement)
}

// DeleteMovement removes a movement from the store.
func (r *MovementRepository) DeleteMovement(ctx context.Context, id string) error {
	return r.client.delete(ctx, movementsPath+"/"+id)
}
