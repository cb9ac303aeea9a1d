package dto

import (
	"time"

	"github.com/workpulse/hr_management_app/internal/core/domain"
)

// CreateEmployeeRequest defines the data needed to create a new employee.
type CreateEmployeeRequest struct {
	FirstName    string      `json:"firstName" binding:"required"`
	LastName     string      `json:"lastName" binding:"required"`
	Email        string      `json:"email" binding:"required,email"`
	Password     string      `json:"password" binding:"required,min=8"`
	DepartmentID string      `json:"departmentID" binding:"required"`
	Role         domain.Role `json:"role" binding:"required,oneof=EMPLOYEE SUPERVISOR HR MANAGER ADMIN SUPERADMIN"`
}

// UpdateEmployeeRequest defines the data allowed for updating an employee.
// Using pointers to differentiate between omitted fields and zero-value fields.
type UpdateEmployeeRequest struct {
	FirstName    *string      `json:"firstName"`
	LastName     *string      `json:"lastName"`
	DepartmentID *string      `json:"departmentID"`
	Role         *domain.Role `json:"role"`
}

// EmployeeResponse defines the data returned for an employee.
type EmployeeResponse struct {
	EmployeeID   string      `json:"employeeID"`
	FirstName    string      `json:"firstName"`
	LastName     string      `json:"lastName"`
	Email        string      `json:"email"`
	DepartmentID string      `json:"departmentID"`
	Role         domain.Role `json:"role"`
	IsActive     bool        `json:"isActive"`
	CreatedAt    time.Time   `json:"createdAt"`
}

// ToEmployeeResponse converts a domain.Employee to EmployeeResponse DTO
func ToEmployeeResponse(e *domain.Employee) EmployeeResponse {
	return EmployeeResponse{
		EmployeeID:   e.EmployeeID,
		FirstName:    e.FirstName,
		LastName:     e.LastName,
		Email:        e.Email,
		DepartmentID: e.DepartmentID,
		Role:         e.Role,
		IsActive:     e.IsActive,
		CreatedAt:    e.CreatedAt,
	}
}

// ListEmployeesParams defines query parameters for listing employees.
type ListEmployeesParams struct {
	DepartmentID string `form:"departmentID"`
	Limit        int    `form:"limit,default=20"`
	Offset       int    `form:"offset,default=0"`
}

// ListEmployeesResponse wraps the list of employees.
type ListEmployeesResponse struct {
	Employees []EmployeeResponse `json:"employees"`
}

// ToListEmployeesResponse converts a slice of domain.Employee to ListEmployeesResponse DTO
func ToListEmployeesResponse(employees []domain.Employee) ListEmployeesResponse {
	res := make([]EmployeeResponse, len(employees))
	for i, e := range employees {
		res[i] = ToEmployeeResponse(&e)
	}
	return ListEmployeesResponse{Employees: res}
}
