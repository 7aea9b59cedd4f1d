package services_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/appfinanceiro/ledger_view_app/internal/apperrors"
	"github.com/appfinanceiro/ledger_view_app/internal/core/domain"
	"github.com/appfinanceiro/ledger_view_app/internal/core/services"
	portssvc "github.com/appfinanceiro/ledger_view_app/internal/core/ports/services"
)

type MovementServiceSuite struct {
	suite.Suite
	mockRepo      *MockMovementRepository
	mockSuppliers *MockSupplierRepository
	service       portssvc.MovementSvcFacade
}

func (s *MovementServiceSuite) SetupTest() {
	s.mockRepo = new(MockMovementRepository)
	s.mockSuppliers = new(MockSupplierRepository)
	s.service = services.NewMovementService(s.mockRepo, s.mockSuppliers, "4,80")
}

func TestMovementServiceSuite(t *testing.T) {
	suite.Run(t, new(MovementServiceSuite))
}

func validDraft() domain.MovementDraft {
	draft := domain.NewMovementDraft("4,80")
	draft.SupplierID = "1234599"
	draft.Date = "2024-03-15"
	draft.DocumentNumber = "NF-42"
	draft.EditGross("R$ 1.500,00")
	return draft
}

func (s *MovementServiceSuite) TestCreateMovement_Success() {
	ctx := context.Background()
	s.mockRepo.On("SaveMovement", ctx, mock.AnythingOfType("domain.Movement")).Return(nil).Once()

	movement, err := s.service.CreateMovement(ctx, validDraft())

	s.Require().NoError(err)
	s.Require().NotNil(movement)
	s.Len(movement.ID, 8, "new movements get a short random token")
	s.True(decimal.RequireFromString("1500.00").Equal(movement.GrossAmount))
	s.True(decimal.RequireFromString("72.00").Equal(movement.RetainedAmount))
	s.mockRepo.AssertExpectations(s.T())
}

func (s *MovementServiceSuite) TestCreateMovement_InvalidDraftNeverWrites() {
	ctx := context.Background()

	draft := validDraft()
	draft.SupplierID = ""

	movement, err := s.service.CreateMovement(ctx, draft)

	s.Require().Error(err)
	s.Nil(movement)
	s.ErrorIs(err, apperrors.ErrValidation)
	s.mockRepo.AssertNotCalled(s.T(), "SaveMovement", mock.Anything, mock.Anything)
}

func (s *MovementServiceSuite) TestUpdateMovement_KeepsGivenID() {
	ctx := context.Background()
	s.mockRepo.On("UpdateMovement", ctx, "m42", mock.AnythingOfType("domain.Movement")).Return(nil).Once()

	movement, err := s.service.UpdateMovement(ctx, " m42 ", validDraft())

	s.Require().NoError(err)
	s.Equal("m42", movement.ID)
	s.mockRepo.AssertExpectations(s.T())
}

func (s *MovementServiceSuite) TestUpdateMovement_NotFound() {
	ctx := context.Background()
	s.mockRepo.On("UpdateMovement", ctx, "missing", mock.AnythingOfType("domain.Movement")).Return(apperrors.ErrNotFound).Once()

	movement, err := s.service.UpdateMovement(ctx, "missing", validDraft())

	s.Require().Error(err)
	s.Nil(movement)
	s.ErrorIs(err, apperrors.ErrNotFound)
}

func (s *MovementServiceSuite) TestDeleteMovement() {
	ctx := context.Background()
	s.mockRepo.On("DeleteMovement", ctx, "m42").Return(nil).Once()

	s.Require().NoError(s.service.DeleteMovement(ctx, "m42"))
	s.mockRepo.AssertExpectations(s.T())
}

func (s *MovementServiceSuite) TestApplyDraftEdit() {
	draft := domain.NewMovementDraft("4,80")

	draft, err := s.service.ApplyDraftEdit(draft, domain.ColumnGross, "R$ 1.500,00")
	s.Require().NoError(err)
	s.Equal(int64(150000), draft.GrossCents)
	s.Equal(int64(7200), draft.RetainedCents)

	draft, err = s.service.ApplyDraftEdit(draft, domain.ColumnRetentionPct, "5")
	s.Require().NoError(err)
	s.Equal(int64(7500), draft.RetainedCents)

	draft, err = s.service.ApplyDraftEdit(draft, domain.ColumnRetained, "R$ 1,23")
	s.Require().NoError(err)
	s.Equal(int64(123), draft.RetainedCents)
	s.Equal(int64(150000), draft.GrossCents, "retained edits never touch gross")
}

func (s *MovementServiceSuite) TestNewDraft_SeedsDefaultPercent() {
	draft := s.service.NewDraft()

	s.Equal("4,80", draft.PercentText)
	s.Zero(draft.GrossCents)
	s.Zero(draft.RetainedCents)
}

func (s *MovementServiceSuite) TestGetMovementDraft_ResolvesSupplierName() {
	ctx := context.Background()
	stored := mv("m42", "1234599", "2024-03-15", "NF-1", "1500.00", "4.8", "72.00", "")
	s.mockRepo.On("FindMovementByID", ctx, "m42").Return(&stored, nil).Once()
	s.mockSuppliers.On("FindSupplierByID", ctx, "1234599").Return(&testSuppliers[0], nil).Once()

	draft, err := s.service.GetMovementDraft(ctx, " m42 ")

	s.Require().NoError(err)
	s.Equal(int64(150000), draft.GrossCents)
	s.Equal(int64(7200), draft.RetainedCents)
	s.Equal(testSuppliers[0].Name, draft.SupplierName)
}

func (s *MovementServiceSuite) TestGetMovementDraft_NotFound() {
	ctx := context.Background()
	s.mockRepo.On("FindMovementByID", ctx, "missing").Return(nil, apperrors.ErrNotFound).Once()

	_, err := s.service.GetMovementDraft(ctx, "missing")

	s.ErrorIs(err, apperrors.ErrNotFound)
	s.mockSuppliers.AssertNotCalled(s.T(), "FindSupplierByID", mock.Anything, mock.Anything)
}

func (s *MovementServiceSuite) TestApplyDraftEdit_UnknownField() {
	_, err := s.service.ApplyDraftEdit(domain.NewMovementDraft(""), "numero_documento", "x")
	s.ErrorIs(err, services.ErrUnknownDraftField)
}
