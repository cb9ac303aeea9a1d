package repositories

import (
	"context"

	"github.com/workpulse/hr_management_app/internal/core/domain"
)

// DepartmentReader defines read operations for department data
type DepartmentReader interface {
	// FindDepartmentByID retrieves a specific department by its unique identifier.
	FindDepartmentByID(ctx context.Context, departmentID string) (*domain.Department, error)

	// ListDepartments retrieves a paginated list of departments.
	ListDepartments(ctx context.Context, limit int, offset int) ([]domain.Department, error)
}

// DepartmentWriter defines write operations for department data
type DepartmentWriter interface {
	// SaveDepartment persists a new department.
	SaveDepartment(ctx context.Context, department domain.Department) error

	// UpdateDepartment updates an existing department's details.
	UpdateDepartment(ctx context.Context, department domain.Department) error
}

// AssignmentReader defines read operations for department assignment data
type AssignmentReader interface {
	// FindAssignment retrieves the assignment of an employee to a department, if any.
	FindAssignment(ctx context.Context, employeeID, departmentID string) (*domain.DepartmentAssignment, error)

	// ListAssignmentsByDepartment retrieves all assignments to a department.
	ListAssignmentsByDepartment(ctx context.Context, departmentID string) ([]domain.DepartmentAssignment, error)

	// ListAssignmentsByEmployee retrieves all assignments held by an employee.
	ListAssignmentsByEmployee(ctx context.Context, employeeID string) ([]domain.DepartmentAssignment, error)

	// ListEvaluatorIDs retrieves the employee IDs assigned to a department with
	// evaluation rights.
	ListEvaluatorIDs(ctx context.Context, departmentID string) ([]string, error)
}

// AssignmentWriter defines write operations for department assignment data
type AssignmentWriter interface {
	// SaveAssignment persists a new assignment. Assigning the same employee to
	// the same department twice is a conflict.
	SaveAssignment(ctx context.Context, assignment domain.DepartmentAssignment) error

	// UpdateAssignment updates an existing assignment's role or evaluation flag.
	UpdateAssignment(ctx context.Context, assignment domain.DepartmentAssignment) error

	// DeleteAssignment removes an employee's assignment to a department.
	DeleteAssignment(ctx context.Context, employeeID, departmentID string) error
}

// DepartmentRepositoryFacade combines all department-related repository interfaces
// This is a facade for clients that need access to all operations
type DepartmentRepositoryFacade interface {
	DepartmentReader
	DepartmentWriter
	AssignmentReader
	AssignmentWriter
}

// DepartmentRepositoryWithTx extends DepartmentRepositoryFacade with transaction capabilities
type DepartmentRepositoryWithTx interface {
	DepartmentRepositoryFacade
	TransactionManager
}
