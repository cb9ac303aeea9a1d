package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/workpulse/hr_management_app/internal/apperrors"
	"github.com/workpulse/hr_management_app/internal/core/domain"
	portsrepo "github.com/workpulse/hr_management_app/internal/core/ports/repositories"
	portssvc "github.com/workpulse/hr_management_app/internal/core/ports/services"
	"github.com/workpulse/hr_management_app/internal/dto"
	"github.com/workpulse/hr_management_app/internal/middleware"
	"github.com/workpulse/hr_management_app/internal/utils"
)

// employeeService provides employee account operations.
type employeeService struct {
	employeeRepo portsrepo.EmployeeRepositoryFacade
	deptRepo     portsrepo.DepartmentRepositoryFacade
}

// NewEmployeeService creates a new employee service.
func NewEmployeeService(employeeRepo portsrepo.EmployeeRepositoryFacade, deptRepo portsrepo.DepartmentRepositoryFacade) portssvc.EmployeeSvcFacade {
	return &employeeService{
		employeeRepo: employeeRepo,
		deptRepo:     deptRepo,
	}
}

var _ portssvc.EmployeeSvcFacade = (*employeeService)(nil)

// requireAdmin loads the actor and checks for an administrative role.
func (s *employeeService) requireAdmin(ctx context.Context, actorID string) (*domain.Employee, error) {
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
	return nil, fmt.Errorf("%w: employee management requires an HR or admin role", apperrors.ErrForbidden)
}

// GetEmployeeByID retrieves an employee by ID.
func (s *employeeService) GetEmployeeByID(ctx context.Context, employeeID string) (*domain.Employee, error) {
	employee, err := s.employeeRepo.FindEmployeeByID(ctx, employeeID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			middleware.GetLoggerFromCtx(ctx).Error("Failed to find employee", slog.String("error", err.Error()), slog.String("employee_id", employeeID))
		}
		return nil, fmt.Errorf("failed to find employee %s: %w", employeeID, err)
	}
	return employee, nil
}

// ListEmployees retrieves a paginated list of employees.
func (s *employeeService) ListEmployees(ctx context.Context, departmentID string, limit, offset int) ([]domain.Employee, error) {
	if limit <= 0 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}
	employees, err := s.employeeRepo.ListEmployees(ctx, departmentID, limit, offset)
	if err != nil {
		middleware.GetLoggerFromCtx(ctx).Error("Failed to list employees", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to list employees: %w", err)
	}
	return employees, nil
}

// CreateEmployee creates a new employee.
func (s *employeeService) CreateEmployee(ctx context.Context, actorID string, req dto.CreateEmployeeRequest) (*domain.Employee, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	actor, err := s.requireAdmin(ctx, actorID)
	if err != nil {
		logger.Warn("Authorization failed for CreateEmployee", slog.String("error", err.Error()))
		return nil, err
	}

	if !req.Role.IsValid() {
		return nil, apperrors.NewAppError(400, "unknown role", apperrors.ErrValidation)
	}
	if _, err := s.deptRepo.FindDepartmentByID(ctx, req.DepartmentID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.NewAppError(400, "department does not exist", apperrors.ErrValidation)
		}
		return nil, fmt.Errorf("failed to verify department: %w", err)
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))
	if existing, err := s.employeeRepo.FindEmployeeByEmail(ctx, email); err == nil && existing != nil {
		return nil, fmt.Errorf("%w: email already registered", apperrors.ErrDuplicate)
	} else if err != nil && !errors.Is(err, apperrors.ErrNotFound) {
		return nil, fmt.Errorf("failed to check email uniqueness: %w", err)
	}

	passwordHash, err := utils.HashPassword(req.Password)
	if err != nil {
		logger.Error("Failed to hash password", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to hash password: %w", apperrors.ErrInternal)
	}

	now := time.Now()
	employee := domain.Employee{
		EmployeeID:   uuid.NewString(),
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		Email:        email,
		DepartmentID: req.DepartmentID,
		Role:         req.Role,
		IsActive:     true,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     actor.EmployeeID,
			LastUpdatedAt: now,
			LastUpdatedBy: actor.EmployeeID,
		},
	}

	if err := s.employeeRepo.SaveEmployee(ctx, employee, passwordHash); err != nil {
		logger.Error("Failed to save employee", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to save employee: %w", err)
	}

	logger.Info("Employee created",
		slog.String("employee_id", employee.EmployeeID),
		slog.String("role", string(employee.Role)))
	return &employee, nil
}

// UpdateEmployee updates an existing employee.
func (s *employeeService) UpdateEmployee(ctx context.Context, employeeID string, actorID string, req dto.UpdateEmployeeRequest) (*domain.Employee, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	actor, err := s.requireAdmin(ctx, actorID)
	if err != nil {
		logger.Warn("Authorization failed for UpdateEmployee", slog.String("error", err.Error()))
		return nil, err
	}

	employee, err := s.employeeRepo.FindEmployeeByID(ctx, employeeID)
	if err != nil {
		return nil, fmt.Errorf("failed to find employee %s: %w", employeeID, err)
	}

	updated := false
	if req.FirstName != nil {
		employee.FirstName = *req.FirstName
		updated = true
	}
	if req.LastName != nil {
		employee.LastName = *req.LastName
		updated = true
	}
	if req.DepartmentID != nil {
		if _, err := s.deptRepo.FindDepartmentByID(ctx, *req.DepartmentID); err != nil {
			if errors.Is(err, apperrors.ErrNotFound) {
				return nil, apperrors.NewAppError(400, "department does not exist", apperrors.ErrValidation)
			}
			return nil, fmt.Errorf("failed to verify department: %w", err)
		}
		employee.DepartmentID = *req.DepartmentID
		updated = true
	}
	if req.Role != nil {
		if !req.Role.IsValid() {
			return nil, apperrors.NewAppError(400, "unknown role", apperrors.ErrValidation)
		}
		employee.Role = *req.Role
		updated = true
	}
	if !updated {
		return employee, nil
	}

	now := time.Now()
	employee.LastUpdatedAt = now
	employee.LastUpdatedBy = actor.EmployeeID

	if err := s.employeeRepo.UpdateEmployee(ctx, *employee); err != nil {
		logger.Error("Failed to update employee", slog.String("error", err.Error()), slog.String("employee_id", employeeID))
		return nil, fmt.Errorf("failed to update employee: %w", err)
	}
	return employee, nil
}

// DeactivateEmployee marks an employee as inactive.
func (s *employeeService) DeactivateEmployee(ctx context.Context, employeeID string, actorID string) error {
	logger := middleware.GetLoggerFromCtx(ctx)

	actor, err := s.requireAdmin(ctx, actorID)
	if err != nil {
		logger.Warn("Authorization failed for DeactivateEmployee", slog.String("error", err.Error()))
		return err
	}
	if actor.EmployeeID == employeeID {
		return fmt.Errorf("%w: cannot deactivate your own account", apperrors.ErrForbidden)
	}

	if err := s.employeeRepo.DeactivateEmployee(ctx, employeeID, actor.EmployeeID, time.Now()); err != nil {
		logger.Error("Failed to deactivate employee", slog.String("error", err.Error()), slog.String("employee_id", employeeID))
		return fmt.Errorf("failed to deactivate employee: %w", err)
	}

	logger.Info("Employee deactivated", slog.String("employee_id", employeeID))
	return nil
}

// AuthenticateEmployee authenticates an employee with email and password.
func (s *employeeService) AuthenticateEmployee(ctx context.Context, email, password string) (*domain.Employee, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	employee, err := s.employeeRepo.FindEmployeeByEmail(ctx, strings.ToLower(strings.TrimSpace(email)))
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.ErrUnauthorized
		}
		logger.Error("Failed to find employee by email", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to authenticate: %w", err)
	}
	if !employee.IsActive {
		return nil, apperrors.ErrUnauthorized
	}

	passwordHash, err := s.employeeRepo.FindEmployeePasswordHash(ctx, employee.EmployeeID)
	if err != nil {
		logger.Error("Failed to load password hash", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to authenticate: %w", err)
	}
	if !utils.CheckPasswordHash(password, passwordHash) {
		return nil, apperrors.ErrUnauthorized
	}

	return employee, nil
}
