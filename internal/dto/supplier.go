package dto

import "github.com/appfinanceiro/ledger_view_app/internal/core/domain"

// SaveSupplierRequest defines the payload for creating or updating a
// supplier. The identifier is never taken from the client: on create it is
// derived from the CNPJ, on update it comes from the path.
type SaveSupplierRequest struct {
	Name         string `json:"nome" binding:"required"`
	CNPJ         string `json:"cnpj" binding:"required,cnpj"`
	TradeName    string `json:"fantasia"`
	CEP          string `json:"cep"`
	Street       string `json:"logradouro"`
	Number       string `json:"numero"`
	Complement   string `json:"complemento"`
	District     string `json:"bairro"`
	Municipality string `json:"municipio"`
	UF           string `json:"uf"`
}

// ToDomain builds the supplier entity with the given identifier.
func (r SaveSupplierRequest) ToDomain(id string) domain.Supplier {
	return domain.Supplier{
		ID:           id,
		Name:         r.Name,
		CNPJ:         domain.FormatCNPJ(r.CNPJ),
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

// SupplierResponse defines the data returned for a supplier.
type SupplierResponse struct {
	ID           string `json:"id"`
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

// ToSupplierResponse converts a domain.Supplier to its response DTO.
func ToSupplierResponse(s *domain.Supplier) SupplierResponse {
	return SupplierResponse{
		ID:           s.ID,
		Name:         s.Name,
		CNPJ:         s.CNPJ,
		TradeName:    s.TradeName,
		CEP:          s.CEP,
		Street:       s.Street,
		Number:       s.Number,
		Complement:   s.Complement,
		District:     s.District,
		Municipality: s.Municipality,
		UF:           s.UF,
	}
}

// ToSupplierResponses converts a slice of suppliers.
func ToSupplierResponses(suppliers []domain.Supplier) []SupplierResponse {
	responses := make([]SupplierResponse, len(suppliers))
	for i := range suppliers {
		responses[i] = ToSupplierResponse(&suppliers[i])
	}
	return responses
}

// ListSuppliersRequest filters the registry by name or municipality
// substring and paginates the result.
type ListSuppliersRequest struct {
	Search string `form:"search"`
	Page   int    `form:"page,default=1"`
	Limit  int    `form:"limit,default=20" binding:"omitempty,oneof=20 50"`
}

// ListSuppliersResponse is one page of the supplier registry.
type ListSuppliersResponse struct {
	Items      []SupplierResponse `json:"items"`
	Page       int                `json:"page"`
	PageSize   int                `json:"pageSize"`
	TotalPages int                `json:"totalPages"`
	TotalCount int                `json:"totalCount"`
}
