package models

// Department represents a department row.
type Department struct {
	DepartmentID string `db:"department_id"`
	Name         string `db:"name"`
	Description  string `db:"description"`
	IsActive     bool   `db:"is_active"`
	AuditFields
}

// DepartmentAssignment represents a department evaluation grant row.
// Unique per (employee_id, department_id, role).
type DepartmentAssignment struct {
	AssignmentID string `db:"assignment_id"`
	EmployeeID   string `db:"employee_id"`
	DepartmentID string `db:"department_id"`
	Role         string `db:"role"`
	CanEvaluate  bool   `db:"can_evaluate"`
	AuditFields
}
