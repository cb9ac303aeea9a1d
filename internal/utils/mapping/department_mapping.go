package mapping

import (
	"github.com/workpulse/hr_management_app/internal/core/domain"
	"github.com/workpulse/hr_management_app/internal/models"
)

// ToModelDepartment converts a domain Department to a model Department.
func ToModelDepartment(d domain.Department) models.Department {
	return models.Department{
		DepartmentID: d.DepartmentID,
		Name:         d.Name,
		Description:  d.Description,
		IsActive:     d.IsActive,
		AuditFields:  ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainDepartment converts a model Department to a domain Department.
func ToDomainDepartment(m models.Department) domain.Department {
	return domain.Department{
		DepartmentID: m.DepartmentID,
		Name:         m.Name,
		Description:  m.Description,
		IsActive:     m.IsActive,
		AuditFields:  ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainDepartmentSlice converts a slice of model Departments to domain Departments.
func ToDomainDepartmentSlice(ms []models.Department) []domain.Department {
	ds := make([]domain.Department, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainDepartment(m)
	}
	return ds
}

// ToModelDepartmentAssignment converts a domain DepartmentAssignment to its model.
func ToModelDepartmentAssignment(d domain.DepartmentAssignment) models.DepartmentAssignment {
	return models.DepartmentAssignment{
		AssignmentID: d.AssignmentID,
		EmployeeID:   d.EmployeeID,
		DepartmentID: d.DepartmentID,
		Role:         string(d.Role),
		CanEvaluate:  d.CanEvaluate,
		AuditFields:  ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainDepartmentAssignment converts a model DepartmentAssignment to its domain form.
func ToDomainDepartmentAssignment(m models.DepartmentAssignment) domain.DepartmentAssignment {
	return domain.DepartmentAssignment{
		AssignmentID: m.AssignmentID,
		EmployeeID:   m.EmployeeID,
		DepartmentID: m.DepartmentID,
		Role:         domain.Role(m.Role),
		CanEvaluate:  m.CanEvaluate,
		AuditFields:  ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainDepartmentAssignmentSlice converts model assignments to domain assignments.
func ToDomainDepartmentAssignmentSlice(ms []models.DepartmentAssignment) []domain.DepartmentAssignment {
	ds := make([]domain.DepartmentAssignment, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainDepartmentAssignment(m)
	}
	return ds
}
