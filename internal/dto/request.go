package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/workpulse/hr_management_app/internal/core/domain"
)

// SubmitRequestRequest defines the data needed to submit a leave or absence request.
type SubmitRequestRequest struct {
	Type     domain.EntitlementType `json:"type" binding:"required,oneof=LEAVE ABSENCE"`
	FromDate time.Time              `json:"fromDate" binding:"required"`
	ToDate   time.Time              `json:"toDate" binding:"required"`
	Days     decimal.Decimal        `json:"days" binding:"required,decimalpos"`
	Reason   string                 `json:"reason" binding:"required"`
}

// UpdateRequestRequest defines the data allowed for editing a request that is
// still pending supervisor approval.
// Use pointers to distinguish between zero-value updates and fields not provided.
type UpdateRequestRequest struct {
	FromDate *time.Time       `json:"fromDate"`
	ToDate   *time.Time       `json:"toDate"`
	Days     *decimal.Decimal `json:"days"`
	Reason   *string          `json:"reason"`
}

// DecideRequestRequest defines an approve/reject verdict on one stage.
type DecideRequestRequest struct {
	Stage    domain.Stage    `json:"stage" binding:"required,oneof=SUPERVISOR HR"`
	Decision domain.Decision `json:"decision" binding:"required,oneof=APPROVE REJECT"`
	Comments string          `json:"comments"`
}

// OverrideRequestRequest defines a forced status change.
type OverrideRequestRequest struct {
	Status   domain.OverallStatus `json:"status" binding:"required"`
	Comments string               `json:"comments" binding:"required"`
}

// StageRecordResponse mirrors domain.StageRecord for API responses.
type StageRecordResponse struct {
	Status   string     `json:"status"`
	ActorID  string     `json:"actorID,omitempty"`
	Comments string     `json:"comments,omitempty"`
	At       *time.Time `json:"at,omitempty"`
}

// RequestResponse defines the data returned for a request.
// Mirrors domain.Request with the derived overall status included.
type RequestResponse struct {
	RequestID     string                 `json:"requestID"`
	EmployeeID    string                 `json:"employeeID"`
	DepartmentID  string                 `json:"departmentID"`
	Type          domain.EntitlementType `json:"type"`
	FromDate      time.Time              `json:"fromDate"`
	ToDate        time.Time              `json:"toDate"`
	Days          decimal.Decimal        `json:"days"`
	Reason        string                 `json:"reason"`
	Status        domain.OverallStatus   `json:"status"`
	SubmittedAt   time.Time              `json:"submittedAt"`
	Supervisor    StageRecordResponse    `json:"supervisor"`
	HR            StageRecordResponse    `json:"hr"`
	CreatedAt     time.Time              `json:"createdAt"`
	CreatedBy     string                 `json:"createdBy"`
	LastUpdatedAt time.Time              `json:"lastUpdatedAt"`
	LastUpdatedBy string                 `json:"lastUpdatedBy"`
}

// ToRequestResponse converts a domain.Request to RequestResponse DTO
func ToRequestResponse(r *domain.Request) RequestResponse {
	return RequestResponse{
		RequestID:     r.RequestID,
		EmployeeID:    r.EmployeeID,
		DepartmentID:  r.DepartmentID,
		Type:          r.Type,
		FromDate:      r.FromDate,
		ToDate:        r.ToDate,
		Days:          r.Days,
		Reason:        r.Reason,
		Status:        r.OverallStatus(),
		SubmittedAt:   r.SubmittedAt,
		Supervisor:    toStageRecordResponse(r.Supervisor),
		HR:            toStageRecordResponse(r.HR),
		CreatedAt:     r.CreatedAt,
		CreatedBy:     r.CreatedBy,
		LastUpdatedAt: r.LastUpdatedAt,
		LastUpdatedBy: r.LastUpdatedBy,
	}
}

func toStageRecordResponse(rec domain.StageRecord) StageRecordResponse {
	return StageRecordResponse{
		Status:   string(rec.Status),
		ActorID:  rec.ActorID,
		Comments: rec.Comments,
		At:       rec.At,
	}
}

// ListRequestsParams defines query parameters for listing requests.
type ListRequestsParams struct {
	EmployeeID   string  `form:"employeeID"`
	DepartmentID string  `form:"departmentID"`
	Type         string  `form:"type"`
	Status       string  `form:"status"`
	Limit        int     `form:"limit,default=20"`
	NextToken    *string `form:"nextToken"`
}

// ListRequestsResponse wraps the list of requests with the next page token.
type ListRequestsResponse struct {
	Requests  []RequestResponse `json:"requests"`
	NextToken *string           `json:"nextToken,omitempty"`
}

// ToListRequestsResponse converts domain requests to ListRequestsResponse DTO
func ToListRequestsResponse(requests []domain.Request, nextToken *string) ListRequestsResponse {
	res := make([]RequestResponse, len(requests))
	for i, r := range requests {
		res[i] = ToRequestResponse(&r)
	}
	return ListRequestsResponse{
		Requests:  res,
		NextToken: nextToken,
	}
}
