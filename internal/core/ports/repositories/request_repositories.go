package repositories

import (
	"context"

	"github.com/jackc/pgx/v5"

	"github.com/workpulse/hr_management_app/internal/core/domain"
)

// RequestListFilters narrows a request listing. Zero values mean no filter.
type RequestListFilters struct {
	EmployeeID   string
	DepartmentID string
	Type         domain.EntitlementType
	Status       domain.OverallStatus
}

// RequestReader defines read operations for request data
type RequestReader interface {
	// FindRequestByID retrieves a specific request by its unique identifier.
	FindRequestByID(ctx context.Context, requestID string) (*domain.Request, error)

	// ListRequests retrieves a paginated list of requests matching the filters
	// using token-based pagination, newest submission first.
	// It returns the requests, a token for the next page, and an error.
	ListRequests(ctx context.Context, filters RequestListFilters, limit int, nextToken *string) ([]domain.Request, *string, error)
}

// RequestWriter defines write operations for request data
type RequestWriter interface {
	// SaveRequest persists a newly submitted request.
	SaveRequest(ctx context.Context, request domain.Request) error

	// UpdateRequest updates the mutable fields of a pending request.
	UpdateRequest(ctx context.Context, request domain.Request) error
}

// RequestTransactionSupport defines operations used inside decision transactions
type RequestTransactionSupport interface {
	// FindRequestByIDForUpdate selects a request and locks its row for update
	// within a transaction.
	FindRequestByIDForUpdate(ctx context.Context, tx pgx.Tx, requestID string) (*domain.Request, error)

	// UpdateRequestInTx updates a request's stage records within a given transaction.
	UpdateRequestInTx(ctx context.Context, tx pgx.Tx, request domain.Request) error
}

// RequestRepositoryFacade combines all request-related repository interfaces
// This is a facade for clients that need access to all operations
type RequestRepositoryFacade interface {
	RequestReader
	RequestWriter
	RequestTransactionSupport
}

// RequestRepositoryWithTx extends RequestRepositoryFacade with transaction capabilities
type RequestRepositoryWithTx interface {
	RequestRepositoryFacade
	TransactionManager
}
