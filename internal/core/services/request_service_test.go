package services_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/workpulse/hr_management_app/internal/apperrors"
	"github.com/workpulse/hr_management_app/internal/core/domain"
	portsrepo "github.com/workpulse/hr_management_app/internal/core/ports/repositories"
	portssvc "github.com/workpulse/hr_management_app/internal/core/ports/services"
	"github.com/workpulse/hr_management_app/internal/core/services"
	"github.com/workpulse/hr_management_app/internal/dto"
	"github.com/workpulse/hr_management_app/internal/platform/config"
)

var errSMTPDown = errors.New("smtp connection refused")

type RequestServiceTestSuite struct {
	suite.Suite
	mockRequestRepo  *MockRequestRepository
	mockCreditRepo   *MockCreditRepository
	mockEmployeeRepo *MockEmployeeRepository
	mockDeptRepo     *MockDepartmentRepository
	mockPolicy       *MockPolicyService
	mockNotifier     *MockNotifier
	service          portssvc.RequestSvcFacade
	cfg              *config.Config
}

func (suite *RequestServiceTestSuite) SetupTest() {
	suite.mockRequestRepo = new(MockRequestRepository)
	suite.mockCreditRepo = new(MockCreditRepository)
	suite.mockEmployeeRepo = new(MockEmployeeRepository)
	suite.mockDeptRepo = new(MockDepartmentRepository)
	suite.mockPolicy = new(MockPolicyService)
	suite.mockNotifier = new(MockNotifier)
	suite.cfg = &config.Config{
		LeaveDefaultCredits:   decimal.NewFromInt(15),
		AbsenceDefaultCredits: decimal.NewFromInt(10),
	}
	suite.service = services.NewRequestService(
		suite.mockRequestRepo,
		suite.mockCreditRepo,
		suite.mockEmployeeRepo,
		suite.mockDeptRepo,
		suite.mockPolicy,
		suite.mockNotifier,
		suite.cfg,
	)
}

func (suite *RequestServiceTestSuite) activeEmployee(role domain.Role) *domain.Employee {
	return &domain.Employee{
		EmployeeID:   uuid.NewString(),
		FirstName:    "Dana",
		LastName:     "Reyes",
		Email:        "dana.reyes@example.com",
		DepartmentID: uuid.NewString(),
		Role:         role,
		IsActive:     true,
	}
}

func (suite *RequestServiceTestSuite) pendingHRRequest(employeeID string) *domain.Request {
	now := time.Now()
	return &domain.Request{
		RequestID:    uuid.NewString(),
		EmployeeID:   employeeID,
		DepartmentID: uuid.NewString(),
		Type:         domain.EntitlementLeave,
		FromDate:     now.AddDate(0, 0, 7),
		ToDate:       now.AddDate(0, 0, 9),
		Days:         decimal.NewFromInt(3),
		Reason:       "trip",
		SubmittedAt:  now,
		Supervisor:   domain.StageRecord{Status: domain.StageApproved, ActorID: uuid.NewString()},
		HR:           domain.StageRecord{Status: domain.StagePending},
	}
}

// --- SubmitRequest ---

func (suite *RequestServiceTestSuite) TestSubmitRequest_Success() {
	ctx := context.Background()
	actor := suite.activeEmployee(domain.RoleEmployee)
	periodStart := time.Now().AddDate(0, 0, 14)

	req := dto.SubmitRequestRequest{
		Type:     domain.EntitlementLeave,
		FromDate: periodStart,
		ToDate:   periodStart.AddDate(0, 0, 2),
		Days:     decimal.NewFromInt(3),
		Reason:   "vacation",
	}

	suite.mockEmployeeRepo.On("FindEmployeeByID", ctx, actor.EmployeeID).Return(actor, nil).Once()
	// No account yet; the default allotment applies for the precheck.
	suite.mockCreditRepo.On("FindCreditAccount", ctx, actor.EmployeeID, domain.PeriodKeyFor(domain.EntitlementLeave, periodStart)).
		Return(nil, apperrors.ErrNotFound).Once()
	suite.mockRequestRepo.On("SaveRequest", ctx, mock.AnythingOfType("domain.Request")).Return(nil).Once()
	evaluators := []string{uuid.NewString(), uuid.NewString()}
	suite.mockDeptRepo.On("ListEvaluatorIDs", ctx, actor.DepartmentID).Return(evaluators, nil).Once()
	suite.mockNotifier.On("Notify", ctx, mock.MatchedBy(func(e domain.Event) bool {
		return e.Kind == domain.EventRequestCreated && len(e.RecipientIDs) == 2
	})).Return(nil).Once()

	created, err := suite.service.SubmitRequest(ctx, actor.EmployeeID, req)

	suite.Require().NoError(err)
	suite.Require().NotNil(created)
	suite.NotEmpty(created.RequestID)
	suite.Equal(actor.DepartmentID, created.DepartmentID)
	suite.Equal(domain.StatusPendingSupervisor, created.OverallStatus())
	suite.Equal(actor.EmployeeID, created.CreatedBy)

	suite.mockRequestRepo.AssertExpectations(suite.T())
	suite.mockNotifier.AssertExpectations(suite.T())
}

func (suite *RequestServiceTestSuite) TestSubmitRequest_ExceedsRemaining() {
	ctx := context.Background()
	actor := suite.activeEmployee(domain.RoleEmployee)
	periodStart := time.Now().AddDate(0, 0, 14)

	req := dto.SubmitRequestRequest{
		Type:     domain.EntitlementLeave,
		FromDate: periodStart,
		ToDate:   periodStart.AddDate(0, 0, 9),
		Days:     decimal.NewFromInt(10),
		Reason:   "long trip",
	}

	account := &domain.CreditAccount{
		CreditID:     uuid.NewString(),
		EmployeeID:   actor.EmployeeID,
		PeriodKey:    domain.PeriodKeyFor(domain.EntitlementLeave, periodStart),
		TotalCredits: decimal.NewFromInt(15),
		UsedCredits:  decimal.NewFromInt(12),
	}

	suite.mockEmployeeRepo.On("FindEmployeeByID", ctx, actor.EmployeeID).Return(actor, nil).Once()
	suite.mockCreditRepo.On("FindCreditAccount", ctx, actor.EmployeeID, account.PeriodKey).Return(account, nil).Once()

	created, err := suite.service.SubmitRequest(ctx, actor.EmployeeID, req)

	suite.Nil(created)
	suite.ErrorIs(err, apperrors.ErrInsufficientCredits)
	suite.mockRequestRepo.AssertNotCalled(suite.T(), "SaveRequest")
}

func (suite *RequestServiceTestSuite) TestSubmitRequest_DeactivatedEmployee() {
	ctx := context.Background()
	actor := suite.activeEmployee(domain.RoleEmployee)
	actor.IsActive = false

	suite.mockEmployeeRepo.On("FindEmployeeByID", ctx, actor.EmployeeID).Return(actor, nil).Once()

	created, err := suite.service.SubmitRequest(ctx, actor.EmployeeID, dto.SubmitRequestRequest{
		Type:     domain.EntitlementAbsence,
		FromDate: time.Now(),
		ToDate:   time.Now(),
		Days:     decimal.NewFromInt(1),
		Reason:   "sick",
	})

	suite.Nil(created)
	suite.ErrorIs(err, apperrors.ErrForbidden)
}

// --- DecideRequest ---

func (suite *RequestServiceTestSuite) TestDecideRequest_SupervisorApprove() {
	ctx := context.Background()
	supervisor := suite.activeEmployee(domain.RoleSupervisor)
	request := suite.pendingHRRequest(uuid.NewString())
	request.Supervisor = domain.StageRecord{Status: domain.StagePending}
	request.HR = domain.StageRecord{}

	req := dto.DecideRequestRequest{Stage: domain.StageSupervisor, Decision: domain.DecisionApprove, Comments: "ok"}

	suite.mockRequestRepo.On("FindRequestByID", ctx, request.RequestID).Return(request, nil).Once()
	suite.mockPolicy.On("AuthorizeStageAction", ctx, supervisor.EmployeeID, *request, domain.StageSupervisor).
		Return(supervisor, nil).Once()
	suite.mockRequestRepo.On("Begin", ctx).Return(nil, nil).Once()
	suite.mockRequestRepo.On("FindRequestByIDForUpdate", ctx, mock.Anything, request.RequestID).Return(request, nil).Once()
	suite.mockRequestRepo.On("UpdateRequestInTx", ctx, mock.Anything, mock.MatchedBy(func(r domain.Request) bool {
		return r.OverallStatus() == domain.StatusPendingHR && r.Supervisor.ActorID == supervisor.EmployeeID
	})).Return(nil).Once()
	suite.mockRequestRepo.On("Commit", ctx, mock.Anything).Return(nil).Once()
	suite.mockRequestRepo.On("Rollback", ctx, mock.Anything).Return(nil)
	suite.mockEmployeeRepo.On("ListEmployeesByRole", ctx, domain.RoleHR).
		Return([]domain.Employee{*suite.activeEmployee(domain.RoleHR)}, nil).Once()
	suite.mockNotifier.On("Notify", ctx, mock.MatchedBy(func(e domain.Event) bool {
		return e.Kind == domain.EventRequestStageApproved
	})).Return(nil).Once()

	decided, err := suite.service.DecideRequest(ctx, request.RequestID, supervisor.EmployeeID, req)

	suite.Require().NoError(err)
	suite.Equal(domain.StatusPendingHR, decided.OverallStatus())
	// The supervisor stage never touches the ledger.
	suite.mockCreditRepo.AssertNotCalled(suite.T(), "GetOrCreateCreditForUpdate")
	suite.mockRequestRepo.AssertExpectations(suite.T())
}

func (suite *RequestServiceTestSuite) TestDecideRequest_HRApproveDebits() {
	ctx := context.Background()
	hr := suite.activeEmployee(domain.RoleHR)
	request := suite.pendingHRRequest(uuid.NewString())
	periodKey := domain.PeriodKeyFor(request.Type, request.FromDate)

	account := &domain.CreditAccount{
		CreditID:     uuid.NewString(),
		EmployeeID:   request.EmployeeID,
		PeriodKey:    periodKey,
		TotalCredits: decimal.NewFromInt(15),
		UsedCredits:  decimal.NewFromInt(5),
	}

	req := dto.DecideRequestRequest{Stage: domain.StageHR, Decision: domain.DecisionApprove}

	suite.mockRequestRepo.On("FindRequestByID", ctx, request.RequestID).Return(request, nil).Once()
	suite.mockPolicy.On("AuthorizeStageAction", ctx, hr.EmployeeID, *request, domain.StageHR).Return(hr, nil).Once()
	suite.mockRequestRepo.On("Begin", ctx).Return(nil, nil).Once()
	suite.mockRequestRepo.On("FindRequestByIDForUpdate", ctx, mock.Anything, request.RequestID).Return(request, nil).Once()
	suite.mockCreditRepo.On("GetOrCreateCreditForUpdate", ctx, mock.Anything, request.EmployeeID, periodKey, suite.cfg.LeaveDefaultCredits, hr.EmployeeID).
		Return(account, nil).Once()
	suite.mockCreditRepo.On("UpdateCreditInTx", ctx, mock.Anything, mock.MatchedBy(func(a domain.CreditAccount) bool {
		return a.UsedCredits.Equal(decimal.NewFromInt(8))
	})).Return(nil).Once()
	suite.mockRequestRepo.On("UpdateRequestInTx", ctx, mock.Anything, mock.MatchedBy(func(r domain.Request) bool {
		return r.OverallStatus() == domain.StatusApproved
	})).Return(nil).Once()
	suite.mockRequestRepo.On("Commit", ctx, mock.Anything).Return(nil).Once()
	suite.mockRequestRepo.On("Rollback", ctx, mock.Anything).Return(nil)
	suite.mockNotifier.On("Notify", ctx, mock.MatchedBy(func(e domain.Event) bool {
		return e.Kind == domain.EventRequestFinalApproved
	})).Return(nil).Once()

	decided, err := suite.service.DecideRequest(ctx, request.RequestID, hr.EmployeeID, req)

	suite.Require().NoError(err)
	suite.Equal(domain.StatusApproved, decided.OverallStatus())
	suite.mockCreditRepo.AssertExpectations(suite.T())
	suite.mockRequestRepo.AssertExpectations(suite.T())
}

func (suite *RequestServiceTestSuite) TestDecideRequest_HRApproveInsufficientCredits() {
	ctx := context.Background()
	hr := suite.activeEmployee(domain.RoleHR)
	request := suite.pendingHRRequest(uuid.NewString())
	periodKey := domain.PeriodKeyFor(request.Type, request.FromDate)

	account := &domain.CreditAccount{
		CreditID:     uuid.NewString(),
		EmployeeID:   request.EmployeeID,
		PeriodKey:    periodKey,
		TotalCredits: decimal.NewFromInt(15),
		UsedCredits:  decimal.NewFromInt(14),
	}

	req := dto.DecideRequestRequest{Stage: domain.StageHR, Decision: domain.DecisionApprove}

	suite.mockRequestRepo.On("FindRequestByID", ctx, request.RequestID).Return(request, nil).Once()
	suite.mockPolicy.On("AuthorizeStageAction", ctx, hr.EmployeeID, *request, domain.StageHR).Return(hr, nil).Once()
	suite.mockRequestRepo.On("Begin", ctx).Return(nil, nil).Once()
	suite.mockRequestRepo.On("FindRequestByIDForUpdate", ctx, mock.Anything, request.RequestID).Return(request, nil).Once()
	suite.mockCreditRepo.On("GetOrCreateCreditForUpdate", ctx, mock.Anything, request.EmployeeID, periodKey, suite.cfg.LeaveDefaultCredits, hr.EmployeeID).
		Return(account, nil).Once()
	suite.mockRequestRepo.On("Rollback", ctx, mock.Anything).Return(nil)

	decided, err := suite.service.DecideRequest(ctx, request.RequestID, hr.EmployeeID, req)

	suite.Nil(decided)
	suite.ErrorIs(err, apperrors.ErrInsufficientCredits)
	suite.mockRequestRepo.AssertNotCalled(suite.T(), "Commit", ctx, mock.Anything)
	suite.mockCreditRepo.AssertNotCalled(suite.T(), "UpdateCreditInTx")
	suite.mockNotifier.AssertNotCalled(suite.T(), "Notify")
}

func (suite *RequestServiceTestSuite) TestDecideRequest_TerminalRequest() {
	ctx := context.Background()
	supervisor := suite.activeEmployee(domain.RoleSupervisor)
	request := suite.pendingHRRequest(uuid.NewString())
	request.Supervisor.Status = domain.StageRejected
	request.HR = domain.StageRecord{}

	req := dto.DecideRequestRequest{Stage: domain.StageSupervisor, Decision: domain.DecisionApprove}

	suite.mockRequestRepo.On("FindRequestByID", ctx, request.RequestID).Return(request, nil).Once()
	suite.mockPolicy.On("AuthorizeStageAction", ctx, supervisor.EmployeeID, *request, domain.StageSupervisor).
		Return(supervisor, nil).Once()
	suite.mockRequestRepo.On("Begin", ctx).Return(nil, nil).Once()
	suite.mockRequestRepo.On("FindRequestByIDForUpdate", ctx, mock.Anything, request.RequestID).Return(request, nil).Once()
	suite.mockRequestRepo.On("Rollback", ctx, mock.Anything).Return(nil)

	decided, err := suite.service.DecideRequest(ctx, request.RequestID, supervisor.EmployeeID, req)

	suite.Nil(decided)
	suite.ErrorIs(err, apperrors.ErrInvalidTransition)
	suite.mockRequestRepo.AssertNotCalled(suite.T(), "UpdateRequestInTx")
}

func (suite *RequestServiceTestSuite) TestDecideRequest_SuperadminOnSupervisorRejected() {
	ctx := context.Background()
	root := suite.activeEmployee(domain.RoleSuperAdmin)
	request := suite.pendingHRRequest(uuid.NewString())
	request.Supervisor.Status = domain.StageRejected
	request.HR = domain.StageRecord{}
	periodKey := domain.PeriodKeyFor(request.Type, request.FromDate)

	account := &domain.CreditAccount{
		CreditID:     uuid.NewString(),
		EmployeeID:   request.EmployeeID,
		PeriodKey:    periodKey,
		TotalCredits: decimal.NewFromInt(15),
		UsedCredits:  decimal.Zero,
	}

	req := dto.DecideRequestRequest{Stage: domain.StageHR, Decision: domain.DecisionApprove, Comments: "appeal"}

	suite.mockRequestRepo.On("FindRequestByID", ctx, request.RequestID).Return(request, nil).Once()
	suite.mockPolicy.On("AuthorizeStageAction", ctx, root.EmployeeID, *request, domain.StageHR).Return(root, nil).Once()
	suite.mockRequestRepo.On("Begin", ctx).Return(nil, nil).Once()
	suite.mockRequestRepo.On("FindRequestByIDForUpdate", ctx, mock.Anything, request.RequestID).Return(request, nil).Once()
	suite.mockCreditRepo.On("GetOrCreateCreditForUpdate", ctx, mock.Anything, request.EmployeeID, periodKey, suite.cfg.LeaveDefaultCredits, root.EmployeeID).
		Return(account, nil).Once()
	suite.mockCreditRepo.On("UpdateCreditInTx", ctx, mock.Anything, mock.MatchedBy(func(a domain.CreditAccount) bool {
		return a.UsedCredits.Equal(request.Days)
	})).Return(nil).Once()
	suite.mockRequestRepo.On("UpdateRequestInTx", ctx, mock.Anything, mock.MatchedBy(func(r domain.Request) bool {
		return r.OverallStatus() == domain.StatusApproved
	})).Return(nil).Once()
	suite.mockRequestRepo.On("Commit", ctx, mock.Anything).Return(nil).Once()
	suite.mockRequestRepo.On("Rollback", ctx, mock.Anything).Return(nil)
	suite.mockNotifier.On("Notify", ctx, mock.Anything).Return(nil).Once()

	decided, err := suite.service.DecideRequest(ctx, request.RequestID, root.EmployeeID, req)

	suite.Require().NoError(err)
	suite.Equal(domain.StatusApproved, decided.OverallStatus())
	suite.mockCreditRepo.AssertExpectations(suite.T())
}

func (suite *RequestServiceTestSuite) TestDecideRequest_NotifyFailureDoesNotFail() {
	ctx := context.Background()
	supervisor := suite.activeEmployee(domain.RoleSupervisor)
	request := suite.pendingHRRequest(uuid.NewString())
	request.Supervisor = domain.StageRecord{Status: domain.StagePending}
	request.HR = domain.StageRecord{}

	req := dto.DecideRequestRequest{Stage: domain.StageSupervisor, Decision: domain.DecisionReject, Comments: "conflict"}

	suite.mockRequestRepo.On("FindRequestByID", ctx, request.RequestID).Return(request, nil).Once()
	suite.mockPolicy.On("AuthorizeStageAction", ctx, supervisor.EmployeeID, *request, domain.StageSupervisor).
		Return(supervisor, nil).Once()
	suite.mockRequestRepo.On("Begin", ctx).Return(nil, nil).Once()
	suite.mockRequestRepo.On("FindRequestByIDForUpdate", ctx, mock.Anything, request.RequestID).Return(request, nil).Once()
	suite.mockRequestRepo.On("UpdateRequestInTx", ctx, mock.Anything, mock.Anything).Return(nil).Once()
	suite.mockRequestRepo.On("Commit", ctx, mock.Anything).Return(nil).Once()
	suite.mockRequestRepo.On("Rollback", ctx, mock.Anything).Return(nil)
	suite.mockNotifier.On("Notify", ctx, mock.Anything).Return(errSMTPDown).Once()

	decided, err := suite.service.DecideRequest(ctx, request.RequestID, supervisor.EmployeeID, req)

	suite.Require().NoError(err)
	suite.Equal(domain.StatusRejectedBySupervisor, decided.OverallStatus())
	suite.mockNotifier.AssertExpectations(suite.T())
}

// --- OverrideRequestStatus ---

func (suite *RequestServiceTestSuite) TestOverrideRequestStatus_RefundClampsAtZero() {
	ctx := context.Background()
	root := suite.activeEmployee(domain.RoleSuperAdmin)
	request := suite.pendingHRRequest(uuid.NewString())
	request.HR.Status = domain.StageApproved // fully approved
	periodKey := domain.PeriodKeyFor(request.Type, request.FromDate)

	account := &domain.CreditAccount{
		CreditID:     uuid.NewString(),
		EmployeeID:   request.EmployeeID,
		PeriodKey:    periodKey,
		TotalCredits: decimal.NewFromInt(15),
		UsedCredits:  decimal.NewFromInt(1), // less than the 3 days to refund
	}

	req := dto.OverrideRequestRequest{Status: domain.StatusRejectedByHR, Comments: "payroll correction"}

	suite.mockPolicy.On("AuthorizeOverride", ctx, root.EmployeeID).Return(root, nil).Once()
	suite.mockRequestRepo.On("Begin", ctx).Return(nil, nil).Once()
	suite.mockRequestRepo.On("FindRequestByIDForUpdate", ctx, mock.Anything, request.RequestID).Return(request, nil).Once()
	suite.mockCreditRepo.On("GetOrCreateCreditForUpdate", ctx, mock.Anything, request.EmployeeID, periodKey, suite.cfg.LeaveDefaultCredits, root.EmployeeID).
		Return(account, nil).Once()
	suite.mockCreditRepo.On("UpdateCreditInTx", ctx, mock.Anything, mock.MatchedBy(func(a domain.CreditAccount) bool {
		return a.UsedCredits.IsZero()
	})).Return(nil).Once()
	suite.mockRequestRepo.On("UpdateRequestInTx", ctx, mock.Anything, mock.Anything).Return(nil).Once()
	suite.mockRequestRepo.On("Commit", ctx, mock.Anything).Return(nil).Once()
	suite.mockRequestRepo.On("Rollback", ctx, mock.Anything).Return(nil)
	suite.mockNotifier.On("Notify", ctx, mock.MatchedBy(func(e domain.Event) bool {
		return e.Kind == domain.EventRequestStageRejected
	})).Return(nil).Once()

	overridden, err := suite.service.OverrideRequestStatus(ctx, request.RequestID, root.EmployeeID, req)

	suite.Require().NoError(err)
	suite.Equal(domain.StatusRejectedByHR, overridden.OverallStatus())
	suite.mockCreditRepo.AssertExpectations(suite.T())
}

func (suite *RequestServiceTestSuite) TestOverrideRequestStatus_NotSuperadmin() {
	ctx := context.Background()
	actorID := uuid.NewString()

	suite.mockPolicy.On("AuthorizeOverride", ctx, actorID).Return(nil, apperrors.ErrForbidden).Once()

	overridden, err := suite.service.OverrideRequestStatus(ctx, uuid.NewString(), actorID, dto.OverrideRequestRequest{
		Status:   domain.StatusApproved,
		Comments: "x",
	})

	suite.Nil(overridden)
	suite.ErrorIs(err, apperrors.ErrForbidden)
	suite.mockRequestRepo.AssertNotCalled(suite.T(), "Begin")
}

// --- ListRequests ---

func (suite *RequestServiceTestSuite) TestListRequests_EmployeeScopedToOwn() {
	ctx := context.Background()
	actor := suite.activeEmployee(domain.RoleEmployee)

	suite.mockEmployeeRepo.On("FindEmployeeByID", ctx, actor.EmployeeID).Return(actor, nil).Once()
	suite.mockRequestRepo.On("ListRequests", ctx, mock.MatchedBy(func(f portsrepo.RequestListFilters) bool {
		return f.EmployeeID == actor.EmployeeID
	}), 20, (*string)(nil)).Return([]domain.Request{}, nil, nil).Once()

	_, _, err := suite.service.ListRequests(ctx, actor.EmployeeID, portsrepo.RequestListFilters{}, 0, nil)

	suite.Require().NoError(err)
	suite.mockRequestRepo.AssertExpectations(suite.T())
}

func (suite *RequestServiceTestSuite) TestListRequests_EvaluatorWithoutRightsForbidden() {
	ctx := context.Background()
	actor := suite.activeEmployee(domain.RoleEmployee)
	departmentID := uuid.NewString()

	suite.mockEmployeeRepo.On("FindEmployeeByID", ctx, actor.EmployeeID).Return(actor, nil).Once()
	suite.mockDeptRepo.On("FindAssignment", ctx, actor.EmployeeID, departmentID).
		Return(&domain.DepartmentAssignment{CanEvaluate: false}, nil).Once()

	_, _, err := suite.service.ListRequests(ctx, actor.EmployeeID, portsrepo.RequestListFilters{DepartmentID: departmentID}, 20, nil)

	suite.ErrorIs(err, apperrors.ErrForbidden)
	suite.mockRequestRepo.AssertNotCalled(suite.T(), "ListRequests")
}

func TestRequestService(t *testing.T) {
	suite.Run(t, new(RequestServiceTestSuite))
}
