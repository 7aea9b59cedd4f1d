package dto

import (
	"github.com/shopspring/decimal"

	"github.com/appfinanceiro/ledger_view_app/internal/core/domain"
)

// SummaryReportRequest combines the current view filters (the subset handed
// to the collaborator is the filtered one) with the report's own options.
type SummaryReportRequest struct {
	ListMovementsRequest
	ReportStart string `form:"report_start"`
	ReportEnd   string `form:"report_end"`
	SortKey     string `form:"sort_key"`
}

// Options extracts the collaborator configuration.
func (r SummaryReportRequest) Options() domain.ReportOptions {
	return domain.ReportOptions{
		StartDate: r.ReportStart,
		EndDate:   r.ReportEnd,
		SortKey:   r.SortKey,
	}
}

// SummaryRowResponse is one supplier group of the billing summary.
type SummaryRowResponse struct {
	CNPJ            string          `json:"cnpj"`
	Name            string          `json:"nome"`
	Gross           decimal.Decimal `json:"valor"`
	GrossDisplay    string          `json:"valor_display"`
	Pct             decimal.Decimal `json:"percentual"`
	PctDisplay      string          `json:"percentual_display"`
	Retained        decimal.Decimal `json:"retido"`
	RetainedDisplay string          `json:"retido_display"`
}

// SummaryReportResponse is the structured input for the export collaborator:
// per-CNPJ groups in first-seen order plus grand totals.
type SummaryReportResponse struct {
	PeriodLabel     string               `json:"periodo"`
	GeneratedAt     string               `json:"emissao"`
	Rows            []SummaryRowResponse `json:"linhas"`
	Gross           decimal.Decimal      `json:"total_valor"`
	GrossDisplay    string               `json:"total_valor_display"`
	Retained        decimal.Decimal      `json:"total_retido"`
	RetainedDisplay string               `json:"total_retido_display"`
	SortKey         string               `json:"ordenacao"`
}
