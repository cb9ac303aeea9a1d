package services_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"

	"github.com/workpulse/hr_management_app/internal/apperrors"
	"github.com/workpulse/hr_management_app/internal/core/domain"
	portssvc "github.com/workpulse/hr_management_app/internal/core/ports/services"
	"github.com/workpulse/hr_management_app/internal/core/services"
)

type PolicyServiceTestSuite struct {
	suite.Suite
	mockEmployeeRepo *MockEmployeeRepository
	mockDeptRepo     *MockDepartmentRepository
	service          portssvc.PolicySvcFacade
}

func (suite *PolicyServiceTestSuite) SetupTest() {
	suite.mockEmployeeRepo = new(MockEmployeeRepository)
	suite.mockDeptRepo = new(MockDepartmentRepository)
	suite.service = services.NewPolicyService(suite.mockEmployeeRepo, suite.mockDeptRepo)
}

func (suite *PolicyServiceTestSuite) employee(role domain.Role) *domain.Employee {
	return &domain.Employee{
		EmployeeID:   uuid.NewString(),
		DepartmentID: uuid.NewString(),
		Role:         role,
		IsActive:     true,
	}
}

func (suite *PolicyServiceTestSuite) request(employeeID string) domain.Request {
	return domain.Request{
		RequestID:    uuid.NewString(),
		EmployeeID:   employeeID,
		DepartmentID: uuid.NewString(),
		Type:         domain.EntitlementLeave,
		Supervisor:   domain.StageRecord{Status: domain.StagePending},
	}
}

func (suite *PolicyServiceTestSuite) TestAuthorizeStageAction_SelfApprovalForbidden() {
	ctx := context.Background()
	actor := suite.employee(domain.RoleSuperAdmin)
	request := suite.request(actor.EmployeeID)

	suite.mockEmployeeRepo.On("FindEmployeeByID", ctx, actor.EmployeeID).Return(actor, nil).Once()

	_, err := suite.service.AuthorizeStageAction(ctx, actor.EmployeeID, request, domain.StageSupervisor)

	suite.ErrorIs(err, apperrors.ErrForbidden)
	// The role never matters for self-approval, the assignment is not consulted.
	suite.mockDeptRepo.AssertNotCalled(suite.T(), "FindAssignment")
}

func (suite *PolicyServiceTestSuite) TestAuthorizeStageAction_SupervisorNeedsEvaluationRights() {
	ctx := context.Background()
	actor := suite.employee(domain.RoleSupervisor)
	request := suite.request(uuid.NewString())

	suite.mockEmployeeRepo.On("FindEmployeeByID", ctx, actor.EmployeeID).Return(actor, nil)

	suite.Run("assigned with rights", func() {
		suite.mockDeptRepo.On("FindAssignment", ctx, actor.EmployeeID, request.DepartmentID).
			Return(&domain.DepartmentAssignment{CanEvaluate: true}, nil).Once()

		got, err := suite.service.AuthorizeStageAction(ctx, actor.EmployeeID, request, domain.StageSupervisor)
		suite.Require().NoError(err)
		suite.Equal(actor.EmployeeID, got.EmployeeID)
	})

	suite.Run("assigned without rights", func() {
		suite.mockDeptRepo.On("FindAssignment", ctx, actor.EmployeeID, request.DepartmentID).
			Return(&domain.DepartmentAssignment{CanEvaluate: false}, nil).Once()

		_, err := suite.service.AuthorizeStageAction(ctx, actor.EmployeeID, request, domain.StageSupervisor)
		suite.ErrorIs(err, apperrors.ErrForbidden)
	})

	suite.Run("not assigned", func() {
		suite.mockDeptRepo.On("FindAssignment", ctx, actor.EmployeeID, request.DepartmentID).
			Return(nil, apperrors.ErrNotFound).Once()

		_, err := suite.service.AuthorizeStageAction(ctx, actor.EmployeeID, request, domain.StageSupervisor)
		suite.ErrorIs(err, apperrors.ErrForbidden)
	})
}

func (suite *PolicyServiceTestSuite) TestAuthorizeStageAction_EvaluatorRolesActAcrossDepartments() {
	ctx := context.Background()
	request := suite.request(uuid.NewString())

	suite.Run("hr with a grant elsewhere passes", func() {
		actor := suite.employee(domain.RoleHR)
		suite.mockEmployeeRepo.On("FindEmployeeByID", ctx, actor.EmployeeID).Return(actor, nil).Once()
		suite.mockDeptRepo.On("FindAssignment", ctx, actor.EmployeeID, request.DepartmentID).
			Return(nil, apperrors.ErrNotFound).Once()
		suite.mockDeptRepo.On("ListAssignmentsByEmployee", ctx, actor.EmployeeID).
			Return([]domain.DepartmentAssignment{
				{DepartmentID: uuid.NewString(), CanEvaluate: true},
			}, nil).Once()

		got, err := suite.service.AuthorizeStageAction(ctx, actor.EmployeeID, request, domain.StageSupervisor)
		suite.Require().NoError(err)
		suite.Equal(actor.EmployeeID, got.EmployeeID)
	})

	suite.Run("manager with a grant elsewhere passes", func() {
		actor := suite.employee(domain.RoleManager)
		suite.mockEmployeeRepo.On("FindEmployeeByID", ctx, actor.EmployeeID).Return(actor, nil).Once()
		suite.mockDeptRepo.On("FindAssignment", ctx, actor.EmployeeID, request.DepartmentID).
			Return(nil, apperrors.ErrNotFound).Once()
		suite.mockDeptRepo.On("ListAssignmentsByEmployee", ctx, actor.EmployeeID).
			Return([]domain.DepartmentAssignment{
				{DepartmentID: uuid.NewString(), CanEvaluate: true},
			}, nil).Once()

		_, err := suite.service.AuthorizeStageAction(ctx, actor.EmployeeID, request, domain.StageSupervisor)
		suite.Require().NoError(err)
	})

	suite.Run("hr with no evaluation grant anywhere fails", func() {
		actor := suite.employee(domain.RoleHR)
		suite.mockEmployeeRepo.On("FindEmployeeByID", ctx, actor.EmployeeID).Return(actor, nil).Once()
		suite.mockDeptRepo.On("FindAssignment", ctx, actor.EmployeeID, request.DepartmentID).
			Return(nil, apperrors.ErrNotFound).Once()
		suite.mockDeptRepo.On("ListAssignmentsByEmployee", ctx, actor.EmployeeID).
			Return([]domain.DepartmentAssignment{
				{DepartmentID: uuid.NewString(), CanEvaluate: false},
			}, nil).Once()

		_, err := suite.service.AuthorizeStageAction(ctx, actor.EmployeeID, request, domain.StageSupervisor)
		suite.ErrorIs(err, apperrors.ErrForbidden)
	})

	suite.Run("supervisor role gets no cross-department rights", func() {
		actor := suite.employee(domain.RoleSupervisor)
		suite.mockEmployeeRepo.On("FindEmployeeByID", ctx, actor.EmployeeID).Return(actor, nil).Once()
		suite.mockDeptRepo.On("FindAssignment", ctx, actor.EmployeeID, request.DepartmentID).
			Return(nil, apperrors.ErrNotFound).Once()

		// No ListAssignmentsByEmployee expectation is registered here; the
		// mock fails the test if the cross-department path is consulted.
		_, err := suite.service.AuthorizeStageAction(ctx, actor.EmployeeID, request, domain.StageSupervisor)
		suite.ErrorIs(err, apperrors.ErrForbidden)
	})
}

func (suite *PolicyServiceTestSuite) TestAuthorizeStageAction_HRStageIsRoleGated() {
	ctx := context.Background()
	request := suite.request(uuid.NewString())

	suite.Run("hr role passes without assignment", func() {
		actor := suite.employee(domain.RoleHR)
		suite.mockEmployeeRepo.On("FindEmployeeByID", ctx, actor.EmployeeID).Return(actor, nil).Once()

		got, err := suite.service.AuthorizeStageAction(ctx, actor.EmployeeID, request, domain.StageHR)
		suite.Require().NoError(err)
		suite.Equal(actor.EmployeeID, got.EmployeeID)
		suite.mockDeptRepo.AssertNotCalled(suite.T(), "FindAssignment")
	})

	suite.Run("supervisor role fails", func() {
		actor := suite.employee(domain.RoleSupervisor)
		suite.mockEmployeeRepo.On("FindEmployeeByID", ctx, actor.EmployeeID).Return(actor, nil).Once()

		_, err := suite.service.AuthorizeStageAction(ctx, actor.EmployeeID, request, domain.StageHR)
		suite.ErrorIs(err, apperrors.ErrForbidden)
	})
}

func (suite *PolicyServiceTestSuite) TestAuthorizeStageAction_SuperadminBypassesBothStages() {
	ctx := context.Background()
	actor := suite.employee(domain.RoleSuperAdmin)
	request := suite.request(uuid.NewString())

	suite.mockEmployeeRepo.On("FindEmployeeByID", ctx, actor.EmployeeID).Return(actor, nil)

	for _, stage := range []domain.Stage{domain.StageSupervisor, domain.StageHR} {
		_, err := suite.service.AuthorizeStageAction(ctx, actor.EmployeeID, request, stage)
		suite.NoError(err)
	}
	suite.mockDeptRepo.AssertNotCalled(suite.T(), "FindAssignment")
}

func (suite *PolicyServiceTestSuite) TestAuthorizeStageAction_DeactivatedActor() {
	ctx := context.Background()
	actor := suite.employee(domain.RoleHR)
	actor.IsActive = false
	request := suite.request(uuid.NewString())

	suite.mockEmployeeRepo.On("FindEmployeeByID", ctx, actor.EmployeeID).Return(actor, nil).Once()

	_, err := suite.service.AuthorizeStageAction(ctx, actor.EmployeeID, request, domain.StageHR)
	suite.ErrorIs(err, apperrors.ErrForbidden)
}

func (suite *PolicyServiceTestSuite) TestAuthorizeOverride() {
	ctx := context.Background()

	suite.Run("superadmin passes", func() {
		actor := suite.employee(domain.RoleSuperAdmin)
		suite.mockEmployeeRepo.On("FindEmployeeByID", ctx, actor.EmployeeID).Return(actor, nil).Once()

		got, err := suite.service.AuthorizeOverride(ctx, actor.EmployeeID)
		suite.Require().NoError(err)
		suite.Equal(actor.EmployeeID, got.EmployeeID)
	})

	suite.Run("admin fails", func() {
		actor := suite.employee(domain.RoleAdmin)
		suite.mockEmployeeRepo.On("FindEmployeeByID", ctx, actor.EmployeeID).Return(actor, nil).Once()

		_, err := suite.service.AuthorizeOverride(ctx, actor.EmployeeID)
		suite.ErrorIs(err, apperrors.ErrForbidden)
	})
}

func (suite *PolicyServiceTestSuite) TestAuthorizeRequestView() {
	ctx := context.Background()
	owner := suite.employee(domain.RoleEmployee)
	request := suite.request(owner.EmployeeID)

	suite.Run("owner sees own request", func() {
		suite.mockEmployeeRepo.On("FindEmployeeByID", ctx, owner.EmployeeID).Return(owner, nil).Once()

		_, err := suite.service.AuthorizeRequestView(ctx, owner.EmployeeID, request)
		suite.NoError(err)
	})

	suite.Run("hr sees any request", func() {
		actor := suite.employee(domain.RoleHR)
		suite.mockEmployeeRepo.On("FindEmployeeByID", ctx, actor.EmployeeID).Return(actor, nil).Once()

		_, err := suite.service.AuthorizeRequestView(ctx, actor.EmployeeID, request)
		suite.NoError(err)
	})

	suite.Run("unrelated employee is refused", func() {
		actor := suite.employee(domain.RoleEmployee)
		suite.mockEmployeeRepo.On("FindEmployeeByID", ctx, actor.EmployeeID).Return(actor, nil).Once()
		suite.mockDeptRepo.On("FindAssignment", ctx, actor.EmployeeID, request.DepartmentID).
			Return(nil, apperrors.ErrNotFound).Once()

		_, err := suite.service.AuthorizeRequestView(ctx, actor.EmployeeID, request)
		suite.ErrorIs(err, apperrors.ErrForbidden)
	})
}

func (suite *PolicyServiceTestSuite) TestAuthorizeCreditView() {
	ctx := context.Background()

	suite.Run("own balances", func() {
		actor := suite.employee(domain.RoleEmployee)
		suite.mockEmployeeRepo.On("FindEmployeeByID", ctx, actor.EmployeeID).Return(actor, nil).Once()

		_, err := suite.service.AuthorizeCreditView(ctx, actor.EmployeeID, actor.EmployeeID)
		suite.NoError(err)
	})

	suite.Run("someone else's balances refused for plain employee", func() {
		actor := suite.employee(domain.RoleEmployee)
		suite.mockEmployeeRepo.On("FindEmployeeByID", ctx, actor.EmployeeID).Return(actor, nil).Once()

		_, err := suite.service.AuthorizeCreditView(ctx, actor.EmployeeID, uuid.NewString())
		suite.ErrorIs(err, apperrors.ErrForbidden)
	})

	suite.Run("hr reads anyone", func() {
		actor := suite.employee(domain.RoleHR)
		suite.mockEmployeeRepo.On("FindEmployeeByID", ctx, actor.EmployeeID).Return(actor, nil).Once()

		_, err := suite.service.AuthorizeCreditView(ctx, actor.EmployeeID, uuid.NewString())
		suite.NoError(err)
	})
}

func TestPolicyService(t *testing.T) {
	suite.Run(t, new(PolicyServiceTestSuite))
}
