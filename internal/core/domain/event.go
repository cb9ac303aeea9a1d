package domain

import "time"

// EventKind names the domain events the orchestrator emits per committed
// status-changing transition.
type EventKind string

const (
	EventRequestCreated       EventKind = "request.created"
	EventRequestStageApproved EventKind = "request.stage_approved"
	EventRequestStageRejected EventKind = "request.stage_rejected"
	EventRequestFinalApproved EventKind = "request.final_approved"
)

// Event is the payload handed to the notification dispatch contract. It is
// fully formed before dispatch; the dispatcher never reads back from the
// database to complete it.
type Event struct {
	Kind         EventKind   `json:"kind"`
	RequestID    string      `json:"requestID"`
	EmployeeID   string      `json:"employeeID"`
	RecipientIDs []string    `json:"recipientIDs"`
	Fields       EventFields `json:"fields"`
	OccurredAt   time.Time   `json:"occurredAt"`
}

// EventFields carries the request details recipients need to render the
// notification without another lookup.
type EventFields struct {
	Type     EntitlementType `json:"type"`
	FromDate time.Time       `json:"fromDate"`
	ToDate   time.Time       `json:"toDate"`
	Stage    Stage           `json:"stage,omitempty"`
	Status   OverallStatus   `json:"status"`
	Comments string          `json:"comments,omitempty"`
}
