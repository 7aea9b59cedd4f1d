package services_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/appfinanceiro/ledger_view_app/internal/core/domain"
	"github.com/appfinanceiro/ledger_view_app/internal/core/services"
)

func TestBuildSummary_GroupsByCNPJFirstSeenOrder(t *testing.T) {
	movements := []domain.Movement{
		mv("m1", "1234599", "2024-03-15", "1", "1000.00", "4.8", "48.00", ""),
		mv("m2", "9876511", "2024-03-16", "2", "500.00", "4.8", "24.00", ""),
		mv("m3", "1234599", "2024-03-17", "3", "2000.00", "5", "100.00", ""),
	}

	report := services.BuildSummary(movements, testSuppliers, domain.ReportOptions{})

	require.Len(t, report.Rows, 2)
	assert.Equal(t, "12.345.678/0001-99", report.Rows[0].CNPJ)
	assert.Equal(t, "98.765.432/0001-11", report.Rows[1].CNPJ)
	assert.True(t, decimal.RequireFromString("3000.00").Equal(report.Rows[0].Gross))
	assert.True(t, decimal.RequireFromString("148.00").Equal(report.Rows[0].Retained))
}

func TestBuildSummary_FirstSeenPercentagePerGroup(t *testing.T) {
	movements := []domain.Movement{
		mv("m1", "1234599", "2024-03-15", "1", "1000.00", "4.8", "48.00", ""),
		mv("m2", "1234599", "2024-03-16", "2", "1000.00", "11", "110.00", ""),
	}

	report := services.BuildSummary(movements, testSuppliers, domain.ReportOptions{})

	require.Len(t, report.Rows, 1)
	assert.True(t, decimal.RequireFromString("4.8").Equal(report.Rows[0].Pct),
		"the group carries the first movement's percentage even when later ones differ")
	assert.Equal(t, "4.80%", report.Rows[0].PctDisplay)
}

func TestBuildSummary_MissingSupplierFallsInSemCNPJ(t *testing.T) {
	movements := []domain.Movement{
		mv("m1", "0000000", "2024-03-15", "1", "300.00", "4.8", "14.40", ""),
		mv("m2", "1234599", "2024-03-16", "2", "700.00", "4.8", "33.60", ""),
	}

	report := services.BuildSummary(movements, testSuppliers, domain.ReportOptions{})

	require.Len(t, report.Rows, 2)
	assert.Equal(t, "SEM CNPJ", report.Rows[0].CNPJ)
	assert.Empty(t, report.Rows[0].Name)
	assert.True(t, decimal.RequireFromString("300.00").Equal(report.Rows[0].Gross))
}

func TestBuildSummary_GrandTotals(t *testing.T) {
	movements := []domain.Movement{
		mv("m1", "1234599", "2024-03-15", "1", "1000.00", "4.8", "48.00", ""),
		mv("m2", "9876511", "2024-03-16", "2", "500.00", "4.8", "24.00", ""),
	}

	report := services.BuildSummary(movements, testSuppliers, domain.ReportOptions{})

	assert.True(t, decimal.RequireFromString("1500.00").Equal(report.Gross))
	assert.True(t, decimal.RequireFromString("72.00").Equal(report.Retained))
	assert.Equal(t, "R$ 1.500,00", report.GrossDisplay)
	assert.Equal(t, "R$ 72,00", report.RetainedDisplay)
}

func TestBuildSummary_NarrowsByReportPeriod(t *testing.T) {
	movements := []domain.Movement{
		mv("m1", "1234599", "2024-01-10", "1", "100.00", "4.8", "4.80", ""),
		mv("m2", "1234599", "2024-03-15", "2", "200.00", "4.8", "9.60", ""),
		mv("m3", "1234599", "2024-06-30", "3", "400.00", "4.8", "19.20", ""),
	}

	report := services.BuildSummary(movements, testSuppliers, domain.ReportOptions{
		StartDate: "2024-02-01",
		EndDate:   "2024-06-30",
	})

	require.Len(t, report.Rows, 1)
	assert.True(t, decimal.RequireFromString("600.00").Equal(report.Rows[0].Gross),
		"the end date is inclusive, the earlier movement is narrowed out")
	assert.Equal(t, "Período: 01-02-2024 até 30-06-2024", report.PeriodLabel)
}

func TestBuildSummary_EmptyPeriodLabel(t *testing.T) {
	report := services.BuildSummary(nil, testSuppliers, domain.ReportOptions{})
	assert.Equal(t, "Período: — até —", report.PeriodLabel)
	assert.Empty(t, report.Rows)
	assert.True(t, report.Gross.IsZero())
}

// --- Service wiring ---

type ReportServiceSuite struct {
	suite.Suite
	mockMovements *MockMovementRepository
	mockSuppliers *MockSupplierRepository
}

func (s *ReportServiceSuite) SetupTest() {
	s.mockMovements = new(MockMovementRepository)
	s.mockSuppliers = new(MockSupplierRepository)
}

func TestReportServiceSuite(t *testing.T) {
	suite.Run(t, new(ReportServiceSuite))
}

func (s *ReportServiceSuite) TestSummary_ConsumesFilteredSubset() {
	ctx := context.Background()
	s.mockMovements.On("ListMovements", mock.Anything).Return(testMovements, nil).Once()
	s.mockSuppliers.On("ListSuppliers", mock.Anything).Return(testSuppliers, nil).Once()

	viewSvc := services.NewViewService(s.mockMovements, s.mockSuppliers)
	reportSvc := services.NewReportService(viewSvc)

	report, err := reportSvc.Summary(ctx, domain.NewViewState(2024), domain.ReportOptions{SortKey: "valor"})

	s.Require().NoError(err)
	s.NotEmpty(report.GeneratedAt)
	s.Equal("valor", report.SortKey)
	// The 2024 filtered subset has movements for all three suppliers.
	s.Len(report.Rows, 3)
}
