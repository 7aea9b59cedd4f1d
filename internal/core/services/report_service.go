package services

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/appfinanceiro/ledger_view_app/internal/core/domain"
	"github.com/appfinanceiro/ledger_view_app/internal/core/money"
	portssvc "github.com/appfinanceiro/ledger_view_app/internal/core/ports/services"
	"github.com/appfinanceiro/ledger_view_app/internal/dto"
)

// missingCNPJBucket groups movements whose supplier cannot be resolved.
const missingCNPJBucket = "SEM CNPJ"

// reportService builds the billing summary handed to the export
// collaborator.
type reportService struct {
	viewSvc portssvc.ViewSvcFacade
}

// NewReportService creates a new ReportService.
func NewReportService(viewSvc portssvc.ViewSvcFacade) portssvc.ReportingSvcFacade {
	return &reportService{viewSvc: viewSvc}
}

var _ portssvc.ReportingSvcFacade = (*reportService)(nil)

func (s *reportService) Summary(ctx context.Context, state domain.ViewState, opts domain.ReportOptions) (*dto.SummaryReportResponse, error) {
	filtered, suppliers, err := s.viewSvc.FilteredMovements(ctx, state)
	if err != nil {
		return nil, err
	}

	report := BuildSummary(filtered, suppliers, opts)
	report.GeneratedAt = time.Now().Format("02-01-2006")
	return report, nil
}

// BuildSummary groups the filtered subset per supplier CNPJ, summing gross
// and retained per group and carrying the first-seen retention percentage.
// Groups keep first-seen order. The report applies its own date narrowing
// on top of the already-filtered subset; that redundancy is intentional and
// mirrors the export collaborator's observed behavior.
func BuildSummary(filtered []domain.Movement, suppliers []domain.Supplier, opts domain.ReportOptions) *dto.SummaryReportResponse {
	index := SupplierIndex(suppliers)

	narrowed := narrowByPeriod(filtered, opts.StartDate, opts.EndDate)

	type group struct {
		name     string
		gross    decimal.Decimal
		retained decimal.Decimal
		pct      decimal.Decimal
	}
	groups := make(map[string]*group)
	var order []string

	for _, m := range narrowed {
		cnpj := missingCNPJBucket
		name := ""
		if f, ok := index[domain.NormalizeID(m.SupplierID)]; ok && f.CNPJ != "" {
			cnpj = f.CNPJ
			name = f.Name
		}

		g, ok := groups[cnpj]
		if !ok {
			g = &group{
				name:     name,
				gross:    decimal.Zero,
				retained: decimal.Zero,
				pct:      m.RetentionPct,
			}
			groups[cnpj] = g
			order = append(order, cnpj)
		}
		g.gross = g.gross.Add(m.GrossAmount)
		g.retained = g.retained.Add(m.RetainedAmount)
	}

	rows := make([]dto.SummaryRowResponse, 0, len(order))
	totalGross := decimal.Zero
	totalRetained := decimal.Zero
	for _, cnpj := range order {
		g := groups[cnpj]
		rows = append(rows, dto.SummaryRowResponse{
			CNPJ:            cnpj,
			Name:            g.name,
			Gross:           g.gross,
			GrossDisplay:    money.FormatCurrency(g.gross),
			Pct:             g.pct,
			PctDisplay:      g.pct.StringFixed(2) + "%",
			Retained:        g.retained,
			RetainedDisplay: money.FormatCurrency(g.retained),
		})
		totalGross = totalGross.Add(g.gross)
		totalRetained = totalRetained.Add(g.retained)
	}

	return &dto.SummaryReportResponse{
		PeriodLabel:     periodLabel(opts.StartDate, opts.EndDate),
		Rows:            rows,
		Gross:           totalGross,
		GrossDisplay:    money.FormatCurrency(totalGross),
		Retained:        totalRetained,
		RetainedDisplay: money.FormatCurrency(totalRetained),
		SortKey:         opts.SortKey,
	}
}

func narrowByPeriod(movements []domain.Movement, startDate, endDate string) []domain.Movement {
	start, hasStart := domain.ParseMovementDate(startDate)
	end, hasEnd := domain.ParseMovementDate(endDate)
	if hasEnd {
		end = end.Add(24*time.Hour - time.Second)
	}
	if !hasStart && !hasEnd {
		return movements
	}

	out := make([]domain.Movement, 0, len(movements))
	for _, m := range movements {
		date, ok := domain.ParseMovementDate(m.Date)
		if !ok {
			continue
		}
		if hasStart && date.Before(start) {
			continue
		}
		if hasEnd && date.After(end) {
			continue
		}
		out = append(out, m)
	}
	return out
}

func periodLabel(startDate, endDate string) string {
	format := func(s string) string {
		if d := domain.FormatDateBR(s); d != "" {
			return d
		}
		return "—"
	}
	return fmt.Sprintf("Período: %s até %s", format(startDate), format(endDate))
}
