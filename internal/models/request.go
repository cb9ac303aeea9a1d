package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Request represents a leave/absence request row. Stage statuses are stored
// as text; the empty HR status is persisted as NULL.
type Request struct {
	RequestID          string          `db:"request_id"`
	EmployeeID         string          `db:"employee_id"`
	DepartmentID       string          `db:"department_id"`
	Type               string          `db:"request_type"`
	FromDate           time.Time       `db:"from_date"`
	ToDate             time.Time       `db:"to_date"`
	Days               decimal.Decimal `db:"days"`
	Reason             string          `db:"reason"`
	SubmittedAt        time.Time       `db:"submitted_at"`
	SupervisorStatus   string          `db:"supervisor_status"`
	SupervisorActorID  *string         `db:"supervisor_actor_id"`
	SupervisorComments *string         `db:"supervisor_comments"`
	SupervisorAt       *time.Time      `db:"supervisor_at"`
	HRStatus           *string         `db:"hr_status"`
	HRActorID          *string         `db:"hr_actor_id"`
	HRComments         *string         `db:"hr_comments"`
	HRAt               *time.Time      `db:"hr_at"`
	AuditFields
}
