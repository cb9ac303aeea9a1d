package services

import (
	"context"

	"github.com/workpulse/hr_management_app/internal/core/domain"
	"github.com/workpulse/hr_management_app/internal/dto"
)

// DepartmentReaderSvc defines read operations for department data
type DepartmentReaderSvc interface {
	// GetDepartmentByID retrieves a department by ID.
	GetDepartmentByID(ctx context.Context, departmentID string) (*domain.Department, error)

	// ListDepartments retrieves a paginated list of departments.
	ListDepartments(ctx context.Context, limit, offset int) ([]domain.Department, error)

	// ListAssignments retrieves all assignments to a department.
	ListAssignments(ctx context.Context, departmentID string) ([]domain.DepartmentAssignment, error)
}

// DepartmentWriterSvc defines write operations for department data
type DepartmentWriterSvc interface {
	// CreateDepartment creates a new department.
	CreateDepartment(ctx context.Context, actorID string, req dto.CreateDepartmentRequest) (*domain.Department, error)

	// UpdateDepartment updates an existing department.
	UpdateDepartment(ctx context.Context, departmentID string, actorID string, req dto.UpdateDepartmentRequest) (*domain.Department, error)

	// AssignEmployee assigns an employee to a department with a role.
	AssignEmployee(ctx context.Context, departmentID string, actorID string, req dto.AssignEmployeeRequest) (*domain.DepartmentAssignment, error)

	// UnassignEmployee removes an employee's assignment to a department.
	UnassignEmployee(ctx context.Context, departmentID string, employeeID string, actorID string) error
}

// DepartmentSvcFacade combines all department-related service interfaces
type DepartmentSvcFacade interface {
	DepartmentReaderSvc
	DepartmentWriterSvc
}
