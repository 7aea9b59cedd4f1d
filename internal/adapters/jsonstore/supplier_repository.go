package jsonstore

import (
	"context"
	"fmt"

	"github.com/appfinanceiro/ledger_view_app/internal/core/domain"
	portsrepo "github.com/appfinanceiro/ledger_view_app/internal/core/ports/repositories"
)

const suppliersPath = "/api/fornecedores"

// supplierRecord is the store's wire shape for a supplier.
type supplierRecord struct {
	ID           flexID `json:"id"`
	Name         string `json:"nome"`
	CNPJ         string `json:"cnpj"`
	TradeName    string `json:"fantasia"`
	CEP          string `json:"cep"`
	Street       string `json:"logradouro"`
	Number       string `json:"numero"`
	Complement   string `json:"complemento"`
	District     string `json:"bairro"`
	Municipality string `json:"municipio"`
	UF           string `json:"uf"`
}

func (r supplierRecord) toDomain() domain.Supplier {
	return domain.Supplier{
		ID:           domain.NormalizeID(string(r.ID)),
		Name:         r.Name,
		CNPJ:         r.CNPJ,
		TradeName:    r.TradeName,
		CEP:          r.CEP,
		Street:       r.Street,
		Number:       r.Number,
		Complement:   r.Complement,
		District:     r.District,
		Municipality: r.Municipality,
		UF:           r.UF,
	}
}

// SupplierRepository implements the supplier ports against the store.
type SupplierRepository struct {
	client *Client
}

var _ portsrepo.SupplierRepositoryFacade = (*SupplierRepository)(nil)

// NewSupplierRepository creates a store-backed supplier repository.
func NewSupplierRepository(client *Client) *SupplierRepository {
	return &SupplierRepository{client: client}
}

// ListSuppliers fetches every supplier from the store.
func (r *SupplierRepository) ListSuppliers(ctx context.Context) ([]domain.Supplier, error) {
	var records []supplierRecord
	if err := r.client.get(ctx, suppliersPath, &records); err != nil {
		return nil, fmt.Errorf("list suppliers: %w", err)
	}
	suppliers := make([]domain.Supplier, 0, len(records))
	for _, rec := range records {
		suppliers = append(suppliers, rec.toDomain())
	}
	return suppliers, nil
}

// FindSupplierByID fetches a single supplier.
func (r *SupplierRepository) FindSupplierByID(ctx context.Context, id string) (*domain.Supplier, error) {
	var record supplierRecord
	if err := r.client.get(ctx, suppliersPath+"/"+id, &record); err != nil {
		return nil, err
	}
	supplier := record.toDomain()
	return &supplier, nil
}

// SaveSupplier creates a new supplier in the store.
func (r *SupplierRepository) SaveSupplier(ctx context.Context, supplier domain.Supplier) error {
	if err := r.client.post(ctx, suppliersPath, supplier); err != nil {
		return fmt.Errorf("save supplier: %w", err)
	}
	return nil
}

// UpdateSupplier replaces the stored supplier with the given one.
func (r *SupplierRepository) UpdateSupplier(ctx context.Context, id string, supplier domain.Supplier) error {
	return r.client.put(ctx, suppliersPath+"/"+id, supplier)
}

// DeleteSupplier removes a supplier from the store.
func (r *SupplierRepository) DeleteSupplier(ctx context.Context, id string) error {
	return r.client.delete(ctx, suppliersPath+"/"+id)
}
