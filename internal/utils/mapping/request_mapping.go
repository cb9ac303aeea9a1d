package mapping

import (
	"github.com/workpulse/hr_management_app/internal/core/domain"
	"github.com/workpulse/hr_management_app/internal/models"
)

// ToModelRequest converts a domain Request to a model Request. Empty stage
// bookkeeping fields become NULLs so untouched stages stay distinguishable.
func ToModelRequest(d domain.Request) models.Request {
	m := models.Request{
		RequestID:        d.RequestID,
		EmployeeID:       d.EmployeeID,
		DepartmentID:     d.DepartmentID,
		Type:             string(d.Type),
		FromDate:         d.FromDate,
		ToDate:           d.ToDate,
		Days:             d.Days,
		Reason:           d.Reason,
		SubmittedAt:      d.SubmittedAt,
		SupervisorStatus: string(d.Supervisor.Status),
		AuditFields:      ToModelAuditFields(d.AuditFields),
	}
	m.SupervisorActorID = nilIfEmpty(d.Supervisor.ActorID)
	m.SupervisorComments = nilIfEmpty(d.Supervisor.Comments)
	m.SupervisorAt = d.Supervisor.At
	if d.HR.Status != domain.StageNone {
		s := string(d.HR.Status)
		m.HRStatus = &s
	}
	m.HRActorID = nilIfEmpty(d.HR.ActorID)
	m.HRComments = nilIfEmpty(d.HR.Comments)
	m.HRAt = d.HR.At
	return m
}

// ToDomainRequest converts a model Request to a domain Request.
func ToDomainRequest(m models.Request) domain.Request {
	d := domain.Request{
		RequestID:    m.RequestID,
		EmployeeID:   m.EmployeeID,
		DepartmentID: m.DepartmentID,
		Type:         domain.EntitlementType(m.Type),
		FromDate:     m.FromDate,
		ToDate:       m.ToDate,
		Days:         m.Days,
		Reason:       m.Reason,
		SubmittedAt:  m.SubmittedAt,
		Supervisor: domain.StageRecord{
			Status:   domain.StageStatus(m.SupervisorStatus),
			ActorID:  derefOrEmpty(m.SupervisorActorID),
			Comments: derefOrEmpty(m.SupervisorComments),
			At:       m.SupervisorAt,
		},
		HR: domain.StageRecord{
			ActorID:  derefOrEmpty(m.HRActorID),
			Comments: derefOrEmpty(m.HRComments),
			At:       m.HRAt,
		},
		AuditFields: ToDomainAuditFields(m.AuditFields),
	}
	if m.HRStatus != nil {
		d.HR.Status = domain.StageStatus(*m.HRStatus)
	}
	return d
}

// ToDomainRequestSlice converts model requests to domain requests.
func ToDomainRequestSlice(ms []models.Request) []domain.Request {
	ds := make([]domain.Request, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainRequest(m)
	}
	return ds
}

func nilIfEmpty(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func derefOrEmpty(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
