package services

import (
	"context"

	"github.com/appfinanceiro/ledger_view_app/internal/core/domain"
	"github.com/appfinanceiro/ledger_view_app/internal/dto"
)

// ReportingSvcFacade builds the structured input consumed by the export
// collaborator: the filtered subset grouped per supplier CNPJ.
type ReportingSvcFacade interface {
	Summary(ctx context.Context, state domain.ViewState, opts domain.ReportOptions) (*dto.SummaryReportResponse, error)
}
