package repositories

import (
	"context"
	"time"

	"github.com/workpulse/hr_management_app/internal/core/domain"
)

// EmployeeReader defines read operations for employee data
type EmployeeReader interface {
	// FindEmployeeByID retrieves a specific employee by their unique identifier.
	FindEmployeeByID(ctx context.Context, employeeID string) (*domain.Employee, error)

	// FindEmployeeByEmail retrieves an employee by email address.
	FindEmployeeByEmail(ctx context.Context, email string) (*domain.Employee, error)

	// FindEmployeesByIDs retrieves multiple employees by their IDs.
	FindEmployeesByIDs(ctx context.Context, employeeIDs []string) (map[string]domain.Employee, error)

	// FindEmployeePasswordHash retrieves the stored password hash for an employee.
	FindEmployeePasswordHash(ctx context.Context, employeeID string) (string, error)

	// ListEmployees retrieves a paginated list of employees, optionally scoped
	// to one department.
	ListEmployees(ctx context.Context, departmentID string, limit int, offset int) ([]domain.Employee, error)

	// ListEmployeesByRole retrieves the active employees holding a role.
	ListEmployeesByRole(ctx context.Context, role domain.Role) ([]domain.Employee, error)
}

// EmployeeWriter defines write operations for employee data
type EmployeeWriter interface {
	// SaveEmployee persists a new employee together with their password hash.
	SaveEmployee(ctx context.Context, employee domain.Employee, passwordHash string) error

	// UpdateEmployee updates an existing employee's details.
	UpdateEmployee(ctx context.Context, employee domain.Employee) error

	// DeactivateEmployee marks an employee as inactive.
	DeactivateEmployee(ctx context.Context, employeeID string, actorID string, now time.Time) error
}

// EmployeeRepositoryFacade combines all employee-related repository interfaces
// This is a facade for clients that need access to all operations
type EmployeeRepositoryFacade interface {
	EmployeeReader
	EmployeeWriter
}

// EmployeeRepositoryWithTx extends EmployeeRepositoryFacade with transaction capabilities
type EmployeeRepositoryWithTx interface {
	EmployeeRepositoryFacade
	TransactionManager
}
