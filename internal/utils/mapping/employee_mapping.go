package mapping

import (
	"github.com/workpulse/hr_management_app/internal/core/domain"
	"github.com/workpulse/hr_management_app/internal/models"
)

// ToModelEmployee converts a domain Employee to a model Employee.
// PasswordHash is persistence-only and must be set by the caller when relevant.
func ToModelEmployee(d domain.Employee) models.Employee {
	return models.Employee{
		EmployeeID:   d.EmployeeID,
		FirstName:    d.FirstName,
		LastName:     d.LastName,
		Email:        d.Email,
		DepartmentID: d.DepartmentID,
		Role:         string(d.Role),
		IsActive:     d.IsActive,
		AuditFields:  ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainEmployee converts a model Employee to a domain Employee.
func ToDomainEmployee(m models.Employee) domain.Employee {
	return domain.Employee{
		EmployeeID:   m.EmployeeID,
		FirstName:    m.FirstName,
		LastName:     m.LastName,
		Email:        m.Email,
		DepartmentID: m.DepartmentID,
		Role:         domain.Role(m.Role),
		IsActive:     m.IsActive,
		AuditFields:  ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainEmployeeSlice converts a slice of model Employees to domain Employees.
func ToDomainEmployeeSlice(ms []models.Employee) []domain.Employee {
	ds := make([]domain.Employee, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainEmployee(m)
	}
	return ds
}
