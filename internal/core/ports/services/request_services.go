package services

import (
	"context"

	"github.com/workpulse/hr_management_app/internal/core/domain"
	portsrepo "github.com/workpulse/hr_management_app/internal/core/ports/repositories"
	"github.com/workpulse/hr_management_app/internal/dto"
)

// RequestReaderSvc defines read operations for request data
type RequestReaderSvc interface {
	// GetRequestByID retrieves a request, applying the caller's visibility rules.
	GetRequestByID(ctx context.Context, requestID string, actorID string) (*domain.Request, error)

	// ListRequests retrieves a paginated list of requests visible to the actor.
	ListRequests(ctx context.Context, actorID string, filters portsrepo.RequestListFilters, limit int, nextToken *string) ([]domain.Request, *string, error)
}

// RequestWriterSvc defines submission and pre-decision edit operations
type RequestWriterSvc interface {
	// SubmitRequest validates and persists a new request for the actor.
	SubmitRequest(ctx context.Context, actorID string, req dto.SubmitRequestRequest) (*domain.Request, error)

	// UpdateRequest edits a request that is still pending supervisor approval.
	// Only the submitting employee may edit.
	UpdateRequest(ctx context.Context, requestID string, actorID string, req dto.UpdateRequestRequest) (*domain.Request, error)
}

// RequestDeciderSvc defines the workflow transition operations
type RequestDeciderSvc interface {
	// DecideRequest applies an approve/reject verdict on one stage. The stage
	// update and any credit debit commit in a single transaction; notification
	// dispatch happens after commit.
	DecideRequest(ctx context.Context, requestID string, actorID string, req dto.DecideRequestRequest) (*domain.Request, error)

	// OverrideRequestStatus forces a request to a target overall status,
	// reconciling the credit ledger in the same transaction.
	OverrideRequestStatus(ctx context.Context, requestID string, actorID string, req dto.OverrideRequestRequest) (*domain.Request, error)
}

// RequestSvcFacade combines all request-related service interfaces
type RequestSvcFacade interface {
	RequestReaderSvc
	RequestWriterSvc
	RequestDeciderSvc
}
