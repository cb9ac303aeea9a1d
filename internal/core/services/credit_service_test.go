package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/workpulse/hr_management_app/internal/apperrors"
	"github.com/workpulse/hr_management_app/internal/core/domain"
	portssvc "github.com/workpulse/hr_management_app/internal/core/ports/services"
	"github.com/workpulse/hr_management_app/internal/core/services"
	"github.com/workpulse/hr_management_app/internal/dto"
	"github.com/workpulse/hr_management_app/internal/platform/config"
)

type CreditServiceTestSuite struct {
	suite.Suite
	mockCreditRepo *MockCreditRepository
	mockPolicy     *MockPolicyService
	service        portssvc.CreditSvcFacade
}

func (suite *CreditServiceTestSuite) SetupTest() {
	suite.mockCreditRepo = new(MockCreditRepository)
	suite.mockPolicy = new(MockPolicyService)
	cfg := &config.Config{
		LeaveDefaultCredits:   decimal.NewFromInt(15),
		AbsenceDefaultCredits: decimal.NewFromInt(10),
	}
	suite.service = services.NewCreditService(suite.mockCreditRepo, suite.mockPolicy, cfg)
}

func (suite *CreditServiceTestSuite) TestGetBalance_ExistingAccount() {
	ctx := context.Background()
	employeeID := uuid.NewString()
	periodKey := domain.PeriodKeyFor(domain.EntitlementLeave, time.Now())

	account := &domain.CreditAccount{
		CreditID:     uuid.NewString(),
		EmployeeID:   employeeID,
		PeriodKey:    periodKey,
		TotalCredits: decimal.NewFromInt(20),
		UsedCredits:  decimal.NewFromInt(4),
	}

	suite.mockCreditRepo.On("FindCreditAccount", ctx, employeeID, periodKey).Return(account, nil).Once()

	got, err := suite.service.GetBalance(ctx, employeeID, domain.EntitlementLeave)

	suite.Require().NoError(err)
	suite.Equal(account.CreditID, got.CreditID)
	suite.True(got.Remaining().Equal(decimal.NewFromInt(16)))
	suite.mockCreditRepo.AssertExpectations(suite.T())
}

func (suite *CreditServiceTestSuite) TestGetBalance_MaterializesDefault() {
	ctx := context.Background()
	employeeID := uuid.NewString()
	periodKey := domain.PeriodKeyFor(domain.EntitlementAbsence, time.Now())

	suite.mockCreditRepo.On("FindCreditAccount", ctx, employeeID, periodKey).
		Return(nil, apperrors.ErrNotFound).Once()
	suite.mockCreditRepo.On("SaveCreditAccount", ctx, mock.MatchedBy(func(a domain.CreditAccount) bool {
		return a.EmployeeID == employeeID &&
			a.PeriodKey == periodKey &&
			a.TotalCredits.Equal(decimal.NewFromInt(10)) &&
			a.UsedCredits.IsZero()
	})).Return(nil).Once()

	got, err := suite.service.GetBalance(ctx, employeeID, domain.EntitlementAbsence)

	suite.Require().NoError(err)
	suite.True(got.TotalCredits.Equal(decimal.NewFromInt(10)))
	suite.True(got.Remaining().Equal(decimal.NewFromInt(10)))
	suite.mockCreditRepo.AssertExpectations(suite.T())
}

func (suite *CreditServiceTestSuite) TestGetBalance_FirstTouchRaceRereads() {
	ctx := context.Background()
	employeeID := uuid.NewString()
	periodKey := domain.PeriodKeyFor(domain.EntitlementLeave, time.Now())

	winner := &domain.CreditAccount{
		CreditID:     uuid.NewString(),
		EmployeeID:   employeeID,
		PeriodKey:    periodKey,
		TotalCredits: decimal.NewFromInt(15),
	}

	suite.mockCreditRepo.On("FindCreditAccount", ctx, employeeID, periodKey).
		Return(nil, apperrors.ErrNotFound).Once()
	suite.mockCreditRepo.On("SaveCreditAccount", ctx, mock.Anything).
		Return(apperrors.ErrDuplicate).Once()
	suite.mockCreditRepo.On("FindCreditAccount", ctx, employeeID, periodKey).
		Return(winner, nil).Once()

	got, err := suite.service.GetBalance(ctx, employeeID, domain.EntitlementLeave)

	suite.Require().NoError(err)
	suite.Equal(winner.CreditID, got.CreditID)
	suite.mockCreditRepo.AssertExpectations(suite.T())
}

func (suite *CreditServiceTestSuite) TestGetBalance_UnknownType() {
	_, err := suite.service.GetBalance(context.Background(), uuid.NewString(), domain.EntitlementType("OVERTIME"))
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *CreditServiceTestSuite) TestAdjustTotal_Success() {
	ctx := context.Background()
	actor := &domain.Employee{EmployeeID: uuid.NewString(), Role: domain.RoleHR, IsActive: true}
	employeeID := uuid.NewString()
	periodKey := domain.PeriodKeyFor(domain.EntitlementLeave, time.Now())

	account := &domain.CreditAccount{
		CreditID:     uuid.NewString(),
		EmployeeID:   employeeID,
		PeriodKey:    periodKey,
		TotalCredits: decimal.NewFromInt(15),
		UsedCredits:  decimal.NewFromInt(5),
	}

	suite.mockPolicy.On("AuthorizeCreditAdjust", ctx, actor.EmployeeID).Return(actor, nil).Once()
	suite.mockCreditRepo.On("FindCreditAccount", ctx, employeeID, periodKey).Return(account, nil).Once()
	suite.mockCreditRepo.On("UpdateCreditAccount", ctx, mock.MatchedBy(func(a domain.CreditAccount) bool {
		return a.TotalCredits.Equal(decimal.NewFromInt(25)) && a.LastUpdatedBy == actor.EmployeeID
	})).Return(nil).Once()

	got, err := suite.service.AdjustTotal(ctx, actor.EmployeeID, dto.AdjustCreditRequest{
		EmployeeID: employeeID,
		Type:       domain.EntitlementLeave,
		Total:      decimal.NewFromInt(25),
	})

	suite.Require().NoError(err)
	suite.True(got.TotalCredits.Equal(decimal.NewFromInt(25)))
	suite.mockCreditRepo.AssertExpectations(suite.T())
}

func (suite *CreditServiceTestSuite) TestAdjustTotal_BelowUsedRefused() {
	ctx := context.Background()
	actor := &domain.Employee{EmployeeID: uuid.NewString(), Role: domain.RoleAdmin, IsActive: true}
	employeeID := uuid.NewString()
	periodKey := domain.PeriodKeyFor(domain.EntitlementLeave, time.Now())

	account := &domain.CreditAccount{
		CreditID:     uuid.NewString(),
		EmployeeID:   employeeID,
		PeriodKey:    periodKey,
		TotalCredits: decimal.NewFromInt(15),
		UsedCredits:  decimal.NewFromInt(12),
	}

	suite.mockPolicy.On("AuthorizeCreditAdjust", ctx, actor.EmployeeID).Return(actor, nil).Once()
	suite.mockCreditRepo.On("FindCreditAccount", ctx, employeeID, periodKey).Return(account, nil).Once()

	got, err := suite.service.AdjustTotal(ctx, actor.EmployeeID, dto.AdjustCreditRequest{
		EmployeeID: employeeID,
		Type:       domain.EntitlementLeave,
		Total:      decimal.NewFromInt(10),
	})

	suite.Nil(got)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockCreditRepo.AssertNotCalled(suite.T(), "UpdateCreditAccount")
}

func (suite *CreditServiceTestSuite) TestAdjustTotal_Forbidden() {
	ctx := context.Background()
	actorID := uuid.NewString()

	suite.mockPolicy.On("AuthorizeCreditAdjust", ctx, actorID).Return(nil, apperrors.ErrForbidden).Once()

	got, err := suite.service.AdjustTotal(ctx, actorID, dto.AdjustCreditRequest{
		EmployeeID: uuid.NewString(),
		Type:       domain.EntitlementLeave,
		Total:      decimal.NewFromInt(20),
	})

	suite.Nil(got)
	suite.ErrorIs(err, apperrors.ErrForbidden)
	suite.mockCreditRepo.AssertNotCalled(suite.T(), "FindCreditAccount")
}

func (suite *CreditServiceTestSuite) TestAdjustTotal_NegativeTotal() {
	ctx := context.Background()
	actor := &domain.Employee{EmployeeID: uuid.NewString(), Role: domain.RoleHR, IsActive: true}

	suite.mockPolicy.On("AuthorizeCreditAdjust", ctx, actor.EmployeeID).Return(actor, nil).Once()

	got, err := suite.service.AdjustTotal(ctx, actor.EmployeeID, dto.AdjustCreditRequest{
		EmployeeID: uuid.NewString(),
		Type:       domain.EntitlementLeave,
		Total:      decimal.NewFromInt(-1),
	})

	suite.Nil(got)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func TestCreditService(t *testing.T) {
	suite.Run(t, new(CreditServiceTestSuite))
}
