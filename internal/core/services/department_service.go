package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/workpulse/hr_management_app/internal/apperrors"
	"github.com/workpulse/hr_management_app/internal/core/domain"
	portsrepo "github.com/workpulse/hr_management_app/internal/core/ports/repositories"
	portssvc "github.com/workpulse/hr_management_app/internal/core/ports/services"
	"github.com/workpulse/hr_management_app/internal/dto"
	"github.com/workpulse/hr_management_app/internal/middleware"
)

// departmentService provides department and assignment operations.
type departmentService struct {
	deptRepo     portsrepo.DepartmentRepositoryFacade
	employeeRepo portsrepo.EmployeeRepositoryFacade
}

// NewDepartmentService creates a new department service.
func NewDepartmentService(deptRepo portsrepo.DepartmentRepositoryFacade, employeeRepo portsrepo.EmployeeRepositoryFacade) portssvc.DepartmentSvcFacade {
	return &departmentService{
		deptRepo:     deptRepo,
		employeeRepo: employeeRepo,
	}
}

var _ portssvc.DepartmentSvcFacade = (*departmentService)(nil)

// requireAdmin loads the actor and checks for an administrative role.
func (s *departmentService) requireAdmin(ctx context.Context, actorID string) (*domain.Employee, error) {
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
	switch actor.Role {
	case domain.RoleHR, domain.RoleAdmin, domain.RoleSuperAdmin:
		return actor, nil
	}
	return nil, fmt.Errorf("%w: department management requires an HR or admin role", apperrors.ErrForbidden)
}

// GetDepartmentByID retrieves a department by ID.
func (s *departmentService) GetDepartmentByID(ctx context.Context, departmentID string) (*domain.Department, error) {
	department, err := s.deptRepo.FindDepartmentByID(ctx, departmentID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			middleware.GetLoggerFromCtx(ctx).Error("Failed to find department", slog.String("error", err.Error()), slog.String("department_id", departmentID))
		}
		return nil, fmt.Errorf("failed to find department %s: %w", departmentID, err)
	}
	return department, nil
}

// ListDepartments retrieves a paginated list of departments.
func (s *departmentService) ListDepartments(ctx context.Context, limit, offset int) ([]domain.Department, error) {
	if limit <= 0 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}
	departments, err := s.deptRepo.ListDepartments(ctx, limit, offset)
	if err != nil {
		middleware.GetLoggerFromCtx(ctx).Error("Failed to list departments", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to list departments: %w", err)
	}
	return departments, nil
}

// ListAssignments retrieves all assignments to a department.
func (s *departmentService) ListAssignments(ctx context.Context, departmentID string) ([]domain.DepartmentAssignment, error) {
	assignments, err := s.deptRepo.ListAssignmentsByDepartment(ctx, departmentID)
	if err != nil {
		middleware.GetLoggerFromCtx(ctx).Error("Failed to list assignments", slog.String("error", err.Error()), slog.String("department_id", departmentID))
		return nil, fmt.Errorf("failed to list assignments: %w", err)
	}
	return assignments, nil
}

// CreateDepartment creates a new department.
func (s *departmentService) CreateDepartment(ctx context.Context, actorID string, req dto.CreateDepartmentRequest) (*domain.Department, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	actor, err := s.requireAdmin(ctx, actorID)
	if err != nil {
		logger.Warn("Authorization failed for CreateDepartment", slog.String("error", err.Error()))
		return nil, err
	}

	now := time.Now()
	department := domain.Department{
		DepartmentID: uuid.NewString(),
		Name:         req.Name,
		Description:  req.Description,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     actor.EmployeeID,
			LastUpdatedAt: now,
			LastUpdatedBy: actor.EmployeeID,
		},
	}

	if err := s.deptRepo.SaveDepartment(ctx, department); err != nil {
		logger.Error("Failed to save department", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to save department: %w", err)
	}

	logger.Info("Department created", slog.String("department_id", department.DepartmentID), slog.String("name", department.Name))
	return &department, nil
}

// UpdateDepartment updates an existing department.
func (s *departmentService) UpdateDepartment(ctx context.Context, departmentID string, actorID string, req dto.UpdateDepartmentRequest) (*domain.Department, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	actor, err := s.requireAdmin(ctx, actorID)
	if err != nil {
		logger.Warn("Authorization failed for UpdateDepartment", slog.String("error", err.Error()))
		return nil, err
	}

	department, err := s.deptRepo.FindDepartmentByID(ctx, departmentID)
	if err != nil {
		return nil, fmt.Errorf("failed to find department %s: %w", departmentID, err)
	}

	updated := false
	if req.Name != nil {
		department.Name = *req.Name
		updated = true
	}
	if req.Description != nil {
		department.Description = *req.Description
		updated = true
	}
	if !updated {
		return department, nil
	}

	now := time.Now()
	department.LastUpdatedAt = now
	department.LastUpdatedBy = actor.EmployeeID

	if err := s.deptRepo.UpdateDepartment(ctx, *department); err != nil {
		logger.Error("Failed to update department", slog.String("error", err.Error()), slog.String("department_id", departmentID))
		return nil, fmt.Errorf("failed to update department: %w", err)
	}
	return department, nil
}

// AssignEmployee assigns an employee to a department with a role.
func (s *departmentService) AssignEmployee(ctx context.Context, departmentID string, actorID string, req dto.AssignEmployeeRequest) (*domain.DepartmentAssignment, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	actor, err := s.requireAdmin(ctx, actorID)
	if err != nil {
		logger.Warn("Authorization failed for AssignEmployee", slog.String("error", err.Error()))
		return nil, err
	}

	if !req.Role.IsValid() {
		return nil, apperrors.NewAppError(400, "unknown role", apperrors.ErrValidation)
	}
	if _, err := s.deptRepo.FindDepartmentByID(ctx, departmentID); err != nil {
		return nil, fmt.Errorf("failed to find department %s: %w", departmentID, err)
	}
	if _, err := s.employeeRepo.FindEmployeeByID(ctx, req.EmployeeID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.NewAppError(400, "employee does not exist", apperrors.ErrValidation)
		}
		return nil, fmt.Errorf("failed to verify employee: %w", err)
	}

	now := time.Now()
	assignment := domain.DepartmentAssignment{
		AssignmentID: uuid.NewString(),
		EmployeeID:   req.EmployeeID,
		DepartmentID: departmentID,
		Role:         req.Role,
		CanEvaluate:  req.CanEvaluate,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     actor.EmployeeID,
			LastUpdatedAt: now,
			LastUpdatedBy: actor.EmployeeID,
		},
	}

	if err := s.deptRepo.SaveAssignment(ctx, assignment); err != nil {
		if errors.Is(err, apperrors.ErrDuplicate) {
			return nil, fmt.Errorf("%w: employee already assigned to this department", apperrors.ErrDuplicate)
		}
		logger.Error("Failed to save assignment", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to save assignment: %w", err)
	}

	logger.Info("Employee assigned to department",
		slog.String("employee_id", req.EmployeeID),
		slog.String("department_id", departmentID),
		slog.Bool("can_evaluate", req.CanEvaluate))
	return &assignment, nil
}

// UnassignEmployee removes an employee's assignment to a department.
func (s *departmentService) UnassignEmployee(ctx context.Context, departmentID string, employeeID string, actorID string) error {
	logger := middleware.GetLoggerFromCtx(ctx)

	if _, err := s.requireAdmin(ctx, actorID); err != nil {
		logger.Warn("Authorization failed for UnassignEmployee", slog.String("error", err.Error()))
		return err
	}

	if err := s.deptRepo.DeleteAssignment(ctx, employeeID, departmentID); err != nil {
		logger.Error("Failed to delete assignment", slog.String("error", err.Error()),
			slog.String("employee_id", employeeID), slog.String("department_id", departmentID))
		return fmt.Errorf("failed to delete assignment: %w", err)
	}

	logger.Info("Employee unassigned from department",
		slog.String("employee_id", employeeID),
		slog.String("department_id", departmentID))
	return nil
}
