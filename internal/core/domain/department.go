package domain

// Department is an organizational unit that requests are scoped to.
type Department struct {
	DepartmentID string `json:"departmentID"` // Primary Key (UUID)
	Name         string `json:"name"`
	Description  string `json:"description"`
	IsActive     bool   `json:"isActive"`
	AuditFields
}

// DepartmentAssignment grants an employee evaluation rights scoped to one
// department. Role records the role context the grant applies under
// (SUPERVISOR, HR or MANAGER); CanEvaluate gates supervisor-stage decisions.
// Unique per (employee, department, role).
type DepartmentAssignment struct {
	AssignmentID string `json:"assignmentID"` // Primary Key (UUID)
	EmployeeID   string `json:"employeeID"`
	DepartmentID string `json:"departmentID"`
	Role         Role   `json:"role"`
	CanEvaluate  bool   `json:"canEvaluate"`
	AuditFields
}
