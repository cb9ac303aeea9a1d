package services

import (
	"context"

	"github.com/workpulse/hr_management_app/internal/core/domain"
	"github.com/workpulse/hr_management_app/internal/dto"
)

// EmployeeReaderSvc defines read operations for employee data
type EmployeeReaderSvc interface {
	// GetEmployeeByID retrieves an employee by ID.
	GetEmployeeByID(ctx context.Context, employeeID string) (*domain.Employee, error)

	// ListEmployees retrieves a paginated list of employees, optionally scoped
	// to one department.
	ListEmployees(ctx context.Context, departmentID string, limit, offset int) ([]domain.Employee, error)
}

// EmployeeWriterSvc defines write operations for employee data
type EmployeeWriterSvc interface {
	// CreateEmployee creates a new employee.
	CreateEmployee(ctx context.Context, actorID string, req dto.CreateEmployeeRequest) (*domain.Employee, error)

	// UpdateEmployee updates an existing employee.
	UpdateEmployee(ctx context.Context, employeeID string, actorID string, req dto.UpdateEmployeeRequest) (*domain.Employee, error)

	// DeactivateEmployee marks an employee as inactive.
	DeactivateEmployee(ctx context.Context, employeeID string, actorID string) error
}

// EmployeeAuthSvc defines operations for employee authentication
type EmployeeAuthSvc interface {
	// AuthenticateEmployee authenticates an employee with email and password.
	AuthenticateEmployee(ctx context.Context, email, password string) (*domain.Employee, error)
}

// EmployeeSvcFacade combines all employee-related service interfaces
type EmployeeSvcFacade interface {
	EmployeeReaderSvc
	EmployeeWriterSvc
	EmployeeAuthSvc
}
