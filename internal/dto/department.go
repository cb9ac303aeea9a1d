package dto

import (
	"time"

	"github.com/workpulse/hr_management_app/internal/core/domain"
)

// CreateDepartmentRequest defines the data needed to create a new department.
type CreateDepartmentRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
}

// UpdateDepartmentRequest defines the data allowed for updating a department.
type UpdateDepartmentRequest struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
}

// AssignEmployeeRequest defines the data needed to assign an employee to a department.
type AssignEmployeeRequest struct {
	EmployeeID  string      `json:"employeeID" binding:"required"`
	Role        domain.Role `json:"role" binding:"required,oneof=EMPLOYEE SUPERVISOR HR MANAGER ADMIN SUPERADMIN"`
	CanEvaluate bool        `json:"canEvaluate"`
}

// DepartmentResponse defines the data returned for a department.
type DepartmentResponse struct {
	DepartmentID string    `json:"departmentID"`
	Name         string    `json:"name"`
	Description  string    `json:"description"`
	CreatedAt    time.Time `json:"createdAt"`
}

// ToDepartmentResponse converts a domain.Department to DepartmentResponse DTO
func ToDepartmentResponse(d *domain.Department) DepartmentResponse {
	return DepartmentResponse{
		DepartmentID: d.DepartmentID,
		Name:         d.Name,
		Description:  d.Description,
		CreatedAt:    d.CreatedAt,
	}
}

// ListDepartmentsParams defines query parameters for listing departments.
type ListDepartmentsParams struct {
	Limit  int `form:"limit,default=20"`
	Offset int `form:"offset,default=0"`
}

// ListDepartmentsResponse wraps the list of departments.
type ListDepartmentsResponse struct {
	Departments []DepartmentResponse `json:"departments"`
}

// ToListDepartmentsResponse converts domain departments to ListDepartmentsResponse DTO
func ToListDepartmentsResponse(departments []domain.Department) ListDepartmentsResponse {
	res := make([]DepartmentResponse, len(departments))
	for i, d := range departments {
		res[i] = ToDepartmentResponse(&d)
	}
	return ListDepartmentsResponse{Departments: res}
}

// AssignmentResponse defines the data returned for a department assignment.
type AssignmentResponse struct {
	AssignmentID string      `json:"assignmentID"`
	EmployeeID   string      `json:"employeeID"`
	DepartmentID string      `json:"departmentID"`
	Role         domain.Role `json:"role"`
	CanEvaluate  bool        `json:"canEvaluate"`
}

// ToAssignmentResponse converts a domain.DepartmentAssignment to AssignmentResponse DTO
func ToAssignmentResponse(a *domain.DepartmentAssignment) AssignmentResponse {
	return AssignmentResponse{
		AssignmentID: a.AssignmentID,
		EmployeeID:   a.EmployeeID,
		DepartmentID: a.DepartmentID,
		Role:         a.Role,
		CanEvaluate:  a.CanEvaluate,
	}
}

// ListAssignmentsResponse wraps the list of assignments to a department.
type ListAssignmentsResponse struct {
	Assignments []AssignmentResponse `json:"assignments"`
}

// ToListAssignmentsResponse converts domain assignments to ListAssignmentsResponse DTO
func ToListAssignmentsResponse(assignments []domain.DepartmentAssignment) ListAssignmentsResponse {
	res := make([]AssignmentResponse, len(assignments))
	for i, a := range assignments {
		res[i] = ToAssignmentResponse(&a)
	}
	return ListAssignmentsResponse{Assignments: res}
}
