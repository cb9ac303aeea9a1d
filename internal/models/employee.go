package models

// Employee represents an employee row. PasswordHash never leaves the
// persistence layer.
type Employee struct {
	EmployeeID   string `db:"employee_id"`
	FirstName    string `db:"first_name"`
	LastName     string `db:"last_name"`
	Email        string `db:"email"`
	PasswordHash string `db:"password_hash"`
	DepartmentID string `db:"department_id"`
	Role         string `db:"role"`
	IsActive     bool   `db:"is_active"`
	AuditFields
}
