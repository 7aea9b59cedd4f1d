package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/appfinanceiro/ledger_view_app/internal/apperrors"
	"github.com/appfinanceiro/ledger_view_app/internal/core/domain"
	portsrepo "github.com/appfinanceiro/ledger_view_app/internal/core/ports/repositories"
)

type supplierRepository struct {
	db *sql.DB
}

// NewSupplierRepository creates a SQLite-backed supplier repository.
func NewSupplierRepository(db *sql.DB) portsrepo.SupplierRepositoryFacade {
	return &supplierRepository{db: db}
}

const supplierColumns = `id, nome, cnpj, fantasia, cep, logradouro, numero, complemento, bairro, municipio, uf`

func scanSupplier(row interface{ Scan(...any) error }) (domain.Supplier, error) {
	var s domain.Supplier
	err := row.Scan(&s.ID, &s.Name, &s.CNPJ, &s.TradeName, &s.CEP, &s.Street,
		&s.Number, &s.Complement, &s.District, &s.Municipality, &s.UF)
	return s, err
}

func (r *supplierRepository) ListSuppliers(ctx context.Context) ([]domain.Supplier, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT `+supplierColumns+` FROM suppliers`)
	if err != nil {
		return nil, fmt.Errorf("list suppliers: %w", err)
	}
	defer rows.Close()

	var suppliers []domain.Supplier
	for rows.Next() {
		s, err := scanSupplier(rows)
		if err != nil {
			return nil, err
		}
		suppliers = append(suppliers, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list suppliers: %w", err)
	}
	return suppliers, nil
}

func (r *supplierRepository) FindSupplierByID(ctx context.Context, id string) (*domain.Supplier, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+supplierColumns+` FROM suppliers WHERE id = ?`, id)
	s, err := scanSupplier(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, apperrors.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("find supplier %s: %w", id, err)
	}
	return &s, nil
}

func (r *supplierRepository) SaveSupplier(ctx context.Context, supplier domain.Supplier) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO suppliers (`+supplierColumns+`)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		supplier.ID,
		supplier.Name,
		supplier.CNPJ,
		supplier.TradeName,
		supplier.CEP,
		supplier.Street,
		supplier.Number,
		supplier.Complement,
		supplier.District,
		supplier.Municipality,
		supplier.UF,
	)
	if err != nil {
		return fmt.Errorf("save supplier %s: %w", supplier.ID, err)
	}
	return nil
}

func (r *supplierRepository) UpdateSupplier(ctx context.Context, id string, supplier domain.Supplier) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE suppliers
		SET nome = ?, cnpj = ?, fantasia = ?, cep = ?, logradouro = ?, numero = ?, complemento = ?, bairro = ?, municipio = ?, uf = ?
		WHERE id = ?`,
		supplier.Name,
		supplier.CNPJ,
		supplier.TradeName,
		supplier.CEP,
		supplier.Street,
		supplier.Number,
		supplier.Complement,
		supplier.District,
		supplier.Municipality,
		supplier.UF,
		id,
	)
	if err != nil {
		return fmt.Errorf("update supplier %s: %w", id, err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("update supplier %s: %w", id, err)
	}
	if affected == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *supplierRepository) DeleteSupplier(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM suppliers WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete supplier %s: %w", id, err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete supplier %s: %w", id, err)
	}
	if affected == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
