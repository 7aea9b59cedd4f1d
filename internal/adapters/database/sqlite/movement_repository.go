package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/appfinanceiro/ledger_view_app/internal/apperrors"
	"github.com/appfinanceiro/ledger_view_app/internal/core/domain"
	portsrepo "github.com/appfinanceiro/ledger_view_app/internal/core/ports/repositories"
)

type movementRepository struct {
	db *sql.DB
}

// NewMovementRepository creates a SQLite-backed movement repository.
func NewMovementRepository(db *sql.DB) portsrepo.MovementRepositoryFacade {
	return &movementRepository{db: db}
}

const movementColumns = `id, id_fornecedor, data, numero_documento, valor, percentual_retido, retido, tipo_evento`

func scanMovement(row interface{ Scan(...any) error }) (domain.Movement, error) {
	var m domain.Movement
	var gross, pct, retained string
	err := row.Scan(&m.ID, &m.SupplierID, &m.Date, &m.DocumentNumber, &gross, &pct, &retained, &m.EventType)
	if err != nil {
		return domain.Movement{}, err
	}
	if m.GrossAmount, err = decimal.NewFromString(gross); err != nil {
		return domain.Movement{}, fmt.Errorf("parse valor for %s: %w", m.ID, err)
	}
	if m.RetentionPct, err = decimal.NewFromString(pct); err != nil {
		return domain.Movement{}, fmt.Errorf("parse percentual_retido for %s: %w", m.ID, err)
	}
	if m.RetainedAmount, err = decimal.NewFromString(retained); err != nil {
		return domain.Movement{}, fmt.Errorf("parse retido for %s: %w", m.ID, err)
	}
	return m, nil
}

func (r *movementRepository) ListMovements(ctx context.Context) ([]domain.Movement, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT `+movementColumns+` FROM movements`)
	if err != nil {
		return nil, fmt.Errorf("list movements: %w", err)
	}
	defer rows.Close()

	var movements []domain.Movement
	for rows.Next() {
		m, err := scanMovement(rows)
		if err != nil {
			return nil, err
		}
		movements = append(movements, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list movements: %w", err)
	}
	return movements, nil
}

func (r *movementRepository) FindMovementByID(ctx context.Context, id string) (*domain.Movement, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+movementColumns+` FROM movements WHERE id = ?`, id)
	m, err := scanMovement(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, apperrors.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("find movement %s: %w", id, err)
	}
	return &m, nil
}

func (r *movementRepository) SaveMovement(ctx context.Context, movement domain.Movement) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO movements (`+movementColumns+`)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		movement.ID,
		movement.SupplierID,
		movement.Date,
		movement.DocumentNumber,
		movement.GrossAmount.String(),
		movement.RetentionPct.String(),
		movement.RetainedAmount.String(),
		movement.EventType,
	)
	if err != nil {
		return fmt.Errorf("save movement %s: %w", movement.ID, err)
	}
	return nil
}

func (r *movementRepository) UpdateMovement(ctx context.Context, id string, movement domain.Movement) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE movements
		SET id_fornecedor = ?, data = ?, numero_documento = ?, valor = ?, percentual_retido = ?, retido = ?, tipo_evento = ?
		WHERE id = ?`,
		movement.SupplierID,
		movement.Date,
		movement.DocumentNumber,
		movement.GrossAmount.String(),
		movement.RetentionPct.String(),
		movement.RetainedAmount.String(),
		movement.EventType,
		id,
	)
	if err != nil {
		return fmt.Errorf("update movement %s: %w", id, err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("update movement %s: %w", id, err)
	}
	if affected == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *movementRepository) DeleteMovement(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM movements WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete movement %s: %w", id, err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete movement %s: %w", id, err)
	}
	if affected == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
