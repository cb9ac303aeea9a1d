package domain

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/workpulse/hr_management_app/internal/apperrors"
)

// Stage identifies one of the two sequential approval steps.
type Stage string

const (
	StageSupervisor Stage = "SUPERVISOR"
	StageHR         Stage = "HR"
)

// IsValid reports whether s is a known stage.
func (s Stage) IsValid() bool {
	return s == StageSupervisor || s == StageHR
}

// Decision is an approve/reject verdict on a stage.
type Decision string

const (
	DecisionApprove Decision = "APPROVE"
	DecisionReject  Decision = "REJECT"
)

// IsValid reports whether d is a known decision.
func (d Decision) IsValid() bool {
	return d == DecisionApprove || d == DecisionReject
}

// StageStatus is the status of a single approval stage. The empty value means
// the stage has not been reached yet (HR before supervisor approval).
type StageStatus string

const (
	StageNone     StageStatus = ""
	StagePending  StageStatus = "PENDING"
	StageApproved StageStatus = "APPROVED"
	StageRejected StageStatus = "REJECTED"
)

// OverallStatus is the human-readable workflow label derived from the two
// stage statuses. It is never stored independently.
type OverallStatus string

const (
	StatusPendingSupervisor    OverallStatus = "Pending Supervisor Approval"
	StatusPendingHR            OverallStatus = "Pending HR Approval"
	StatusApproved             OverallStatus = "Approved"
	StatusRejectedBySupervisor OverallStatus = "Rejected by Supervisor"
	StatusRejectedByHR         OverallStatus = "Rejected by HR"
)

// IsValid reports whether o is a known overall status.
func (o OverallStatus) IsValid() bool {
	switch o {
	case StatusPendingSupervisor, StatusPendingHR, StatusApproved,
		StatusRejectedBySupervisor, StatusRejectedByHR:
		return true
	}
	return false
}

// LedgerAction tells the orchestrator what credit mutation a transition
// requires. The state machine never touches the ledger itself.
type LedgerAction int

const (
	LedgerNone LedgerAction = iota
	LedgerDebit
	LedgerCredit
)

// StageRecord holds the decision bookkeeping for one approval stage.
type StageRecord struct {
	Status   StageStatus `json:"status"`
	ActorID  string      `json:"actorID,omitempty"`
	Comments string      `json:"comments,omitempty"`
	At       *time.Time  `json:"at,omitempty"`
}

// Request is a leave or absence request moving through the two-stage approval
// pipeline. All transitions go through ApplyDecision and ApplyOverride, which
// return an updated copy or an error; callers persist the copy.
type Request struct {
	RequestID    string          `json:"requestID"` // Primary Key (UUID)
	EmployeeID   string          `json:"employeeID"`
	DepartmentID string          `json:"departmentID"` // Denormalized from employee at submit
	Type         EntitlementType `json:"type"`
	FromDate     time.Time       `json:"fromDate"`
	ToDate       time.Time       `json:"toDate"`
	Days         decimal.Decimal `json:"days"`
	Reason       string          `json:"reason"`
	SubmittedAt  time.Time       `json:"submittedAt"`
	Supervisor   StageRecord     `json:"supervisor"`
	HR           StageRecord     `json:"hr"`
	AuditFields
}

// OverallStatus derives the workflow label from the stage statuses.
func (r Request) OverallStatus() OverallStatus {
	switch r.Supervisor.Status {
	case StageRejected:
		return StatusRejectedBySupervisor
	case StageApproved:
		switch r.HR.Status {
		case StageApproved:
			return StatusApproved
		case StageRejected:
			return StatusRejectedByHR
		default:
			return StatusPendingHR
		}
	default:
		return StatusPendingSupervisor
	}
}

// IsTerminal reports whether no ordinary transition remains.
func (r Request) IsTerminal() bool {
	switch r.OverallStatus() {
	case StatusApproved, StatusRejectedBySupervisor, StatusRejectedByHR:
		return true
	}
	return false
}

// ValidateSubmission checks the submit-time field invariants.
func (r Request) ValidateSubmission() error {
	if !r.Type.IsValid() {
		return apperrors.NewAppError(400, "unknown request type", apperrors.ErrValidation)
	}
	if r.ToDate.Before(r.FromDate) {
		return apperrors.NewAppError(400, "to date must not precede from date", apperrors.ErrValidation)
	}
	if r.Days.LessThan(decimal.NewFromInt(1)) {
		return apperrors.NewAppError(400, "day count must be at least 1", apperrors.ErrValidation)
	}
	return nil
}

// ApplyDecision applies a stage decision and returns the updated request plus
// the ledger mutation the transition requires. The request itself is not
// modified. Guard failures return apperrors.ErrInvalidTransition.
func (r Request) ApplyDecision(stage Stage, decision Decision, actorID, comments string, now time.Time) (Request, LedgerAction, error) {
	switch stage {
	case StageSupervisor:
		if r.Supervisor.Status != StagePending {
			return r, LedgerNone, apperrors.ErrInvalidTransition
		}
		r.Supervisor.ActorID = actorID
		r.Supervisor.Comments = comments
		r.Supervisor.At = &now
		if decision == DecisionApprove {
			r.Supervisor.Status = StageApproved
			r.HR.Status = StagePending
		} else {
			r.Supervisor.Status = StageRejected
			// HR stage stays untouched; the request is terminal.
		}
		return r, LedgerNone, nil

	case StageHR:
		if r.Supervisor.Status != StageApproved || r.HR.Status != StagePending {
			return r, LedgerNone, apperrors.ErrInvalidTransition
		}
		r.HR.ActorID = actorID
		r.HR.Comments = comments
		r.HR.At = &now
		if decision == DecisionApprove {
			r.HR.Status = StageApproved
			return r, LedgerDebit, nil
		}
		r.HR.Status = StageRejected
		return r, LedgerNone, nil

	default:
		return r, LedgerNone, apperrors.NewAppError(400, "unknown approval stage", apperrors.ErrValidation)
	}
}

// ApplyOverride forces the overall status directly, bypassing stage ordering.
// Moving into Approved requires a ledger debit; moving out of Approved
// requires a refund, so the ledger stays consistent with the visible status.
// Overriding to the current status is refused to keep ledger mutation
// exactly-once per transition.
func (r Request) ApplyOverride(target OverallStatus, actorID, comments string, now time.Time) (Request, LedgerAction, error) {
	if !target.IsValid() {
		return r, LedgerNone, apperrors.NewAppError(400, "unknown overall status", apperrors.ErrValidation)
	}
	current := r.OverallStatus()
	if target == current {
		return r, LedgerNone, apperrors.ErrInvalidTransition
	}

	action := LedgerNone
	if target == StatusApproved {
		action = LedgerDebit
	} else if current == StatusApproved {
		action = LedgerCredit
	}

	stamp := StageRecord{ActorID: actorID, Comments: comments, At: &now}
	switch target {
	case StatusPendingSupervisor:
		r.Supervisor = StageRecord{Status: StagePending}
		r.HR = StageRecord{Status: StageNone}
	case StatusPendingHR:
		r.Supervisor = stampWith(stamp, StageApproved)
		r.HR = StageRecord{Status: StagePending}
	case StatusApproved:
		r.Supervisor = stampWith(stamp, StageApproved)
		r.HR = stampWith(stamp, StageApproved)
	case StatusRejectedBySupervisor:
		r.Supervisor = stampWith(stamp, StageRejected)
		r.HR = StageRecord{Status: StageNone}
	case StatusRejectedByHR:
		r.Supervisor = stampWith(stamp, StageApproved)
		r.HR = stampWith(stamp, StageRejected)
	}
	return r, action, nil
}

func stampWith(rec StageRecord, status StageStatus) StageRecord {
	rec.Status = status
	return rec
}
