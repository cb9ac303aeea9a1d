package domain

// Role is the closed set of roles an employee can hold. Role checks live in
// the authorization policy service, not scattered across handlers.
type Role string

const (
	RoleEmployee   Role = "EMPLOYEE"
	RoleSupervisor Role = "SUPERVISOR"
	RoleHR         Role = "HR"
	RoleManager    Role = "MANAGER"
	RoleAdmin      Role = "ADMIN"
	RoleSuperAdmin Role = "SUPERADMIN"
)

// IsValid reports whether r is one of the known roles.
func (r Role) IsValid() bool {
	switch r {
	case RoleEmployee, RoleSupervisor, RoleHR, RoleManager, RoleAdmin, RoleSuperAdmin:
		return true
	}
	return false
}

// Employee represents an employee record. Employees are also the actors of the
// approval workflow; their Role decides which stages they may act on.
type Employee struct {
	EmployeeID   string `json:"employeeID"` // Primary Key (UUID)
	FirstName    string `json:"firstName"`
	LastName     string `json:"lastName"`
	Email        string `json:"email"`
	DepartmentID string `json:"departmentID"`
	Role         Role   `json:"role"`
	IsActive     bool   `json:"isActive"`
	AuditFields
}

// FullName returns the display name of the employee.
func (e Employee) FullName() string {
	if e.FirstName == "" {
		return e.LastName
	}
	if e.LastName == "" {
		return e.FirstName
	}
	return e.FirstName + " " + e.LastName
}
