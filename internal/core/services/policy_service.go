package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/workpulse/hr_management_app/internal/apperrors"
	"github.com/workpulse/hr_management_app/internal/core/domain"
	portsrepo "github.com/workpulse/hr_management_app/internal/core/ports/repositories"
	portssvc "github.com/workpulse/hr_management_app/internal/core/ports/services"
	"github.com/workpulse/hr_management_app/internal/middleware"
)

// policyService answers authorization questions against current employee and
// assignment rows. Token claims are never trusted for decisions.
type policyService struct {
	employeeRepo   portsrepo.EmployeeRepositoryFacade
	departmentRepo portsrepo.DepartmentRepositoryFacade
}

// NewPolicyService creates a new policy service.
func NewPolicyService(employeeRepo portsrepo.EmployeeRepositoryFacade, departmentRepo portsrepo.DepartmentRepositoryFacade) portssvc.PolicySvcFacade {
	return &policyService{
		employeeRepo:   employeeRepo,
		departmentRepo: departmentRepo,
	}
}

var _ portssvc.PolicySvcFacade = (*policyService)(nil)

// loadActiveActor fetches the acting employee and rejects unknown or
// deactivated accounts.
func (s *policyService) loadActiveActor(ctx context.Context, actorID string) (*domain.Employee, error) {
	actor, err := s.employeeRepo.FindEmployeeByID(ctx, actorID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("%w: acting employee not found", apperrors.ErrForbidden)
		}
		return nil, fmt.Errorf("failed to load acting employee: %w", err)
	}
	if !actor.IsActive {
		return nil, fmt.Errorf("%w: employee account is deactivated", apperrors.ErrForbidden)
	}
	return actor, nil
}

// AuthorizeStageAction checks whether the actor may decide the given stage of
// the request. Self-approval is never allowed, regardless of role.
func (s *policyService) AuthorizeStageAction(ctx context.Context, actorID string, request domain.Request, stage domain.Stage) (*domain.Employee, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	actor, err := s.loadActiveActor(ctx, actorID)
	if err != nil {
		return nil, err
	}

	if actor.EmployeeID == request.EmployeeID {
		logger.Warn("Employee attempted to decide own request",
			slog.String("request_id", request.RequestID))
		return nil, fmt.Errorf("%w: cannot decide your own request", apperrors.ErrForbidden)
	}

	if actor.Role == domain.RoleSuperAdmin {
		return actor, nil
	}

	switch stage {
	case domain.StageSupervisor:
		// Supervisor stage rights come from a department assignment with the
		// evaluation flag, not from the role alone. HR and Manager roles
		// holding an evaluation grant on any department may act on every
		// department.
		assignment, err := s.departmentRepo.FindAssignment(ctx, actorID, request.DepartmentID)
		if err == nil && assignment.CanEvaluate {
			return actor, nil
		}
		if err != nil && !errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("failed to load department assignment: %w", err)
		}
		if actor.Role == domain.RoleHR || actor.Role == domain.RoleManager {
			assignments, listErr := s.departmentRepo.ListAssignmentsByEmployee(ctx, actorID)
			if listErr != nil {
				return nil, fmt.Errorf("failed to list department assignments: %w", listErr)
			}
			for _, a := range assignments {
				if a.CanEvaluate {
					return actor, nil
				}
			}
		}
		if err != nil {
			return nil, fmt.Errorf("%w: no assignment to the request's department", apperrors.ErrForbidden)
		}
		return nil, fmt.Errorf("%w: assignment has no evaluation rights", apperrors.ErrForbidden)

	case domain.StageHR:
		// HR stage is role gated; any HR employee may act on any department.
		if actor.Role != domain.RoleHR {
			return nil, fmt.Errorf("%w: HR stage requires the HR role", apperrors.ErrForbidden)
		}
		return actor, nil

	default:
		return nil, apperrors.NewAppError(400, "unknown approval stage", apperrors.ErrValidation)
	}
}

// AuthorizeOverride checks whether the actor may force request statuses.
func (s *policyService) AuthorizeOverride(ctx context.Context, actorID string) (*domain.Employee, error) {
	actor, err := s.loadActiveActor(ctx, actorID)
	if err != nil {
		return nil, err
	}
	if actor.Role != domain.RoleSuperAdmin {
		return nil, fmt.Errorf("%w: status override requires the SUPERADMIN role", apperrors.ErrForbidden)
	}
	return actor, nil
}

// AuthorizeRequestView checks whether the actor may see the request. Owners,
// HR, admins and the department's evaluators all qualify.
func (s *policyService) AuthorizeRequestView(ctx context.Context, actorID string, request domain.Request) (*domain.Employee, error) {
	actor, err := s.loadActiveActor(ctx, actorID)
	if err != nil {
		return nil, err
	}

	if actor.EmployeeID == request.EmployeeID {
		return actor, nil
	}
	switch actor.Role {
	case domain.RoleHR, domain.RoleAdmin, domain.RoleSuperAdmin:
		return actor, nil
	}

	assignment, err := s.departmentRepo.FindAssignment(ctx, actorID, request.DepartmentID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("%w: not allowed to view this request", apperrors.ErrForbidden)
		}
		return nil, fmt.Errorf("failed to load department assignment: %w", err)
	}
	if !assignment.CanEvaluate {
		return nil, fmt.Errorf("%w: not allowed to view this request", apperrors.ErrForbidden)
	}
	return actor, nil
}

// AuthorizeCreditView checks whether the actor may read the subject's balances.
func (s *policyService) AuthorizeCreditView(ctx context.Context, actorID string, subjectEmployeeID string) (*domain.Employee, error) {
	actor, err := s.loadActiveActor(ctx, actorID)
	if err != nil {
		return nil, err
	}
	if actor.EmployeeID == subjectEmployeeID {
		return actor, nil
	}
	switch actor.Role {
	case domain.RoleHR, domain.RoleAdmin, domain.RoleSuperAdmin:
		return actor, nil
	}
	return nil, fmt.Errorf("%w: not allowed to view these balances", apperrors.ErrForbidden)
}

// AuthorizeCreditAdjust checks whether the actor may change credit allotments.
func (s *policyService) AuthorizeCreditAdjust(ctx context.Context, actorID string) (*domain.Employee, error) {
	actor, err := s.loadActiveActor(ctx, actorID)
	if err != nil {
		return nil, err
	}
	switch actor.Role {
	case domain.RoleHR, domain.RoleAdmin, domain.RoleSuperAdmin:
		return actor, nil
	}
	return nil, fmt.Errorf("%w: credit adjustment requires an HR or admin role", apperrors.ErrForbidden)
}
