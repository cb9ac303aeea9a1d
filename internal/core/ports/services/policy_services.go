package services

import (
	"context"

	"github.com/workpulse/hr_management_app/internal/core/domain"
)

// PolicySvcFacade answers authorization questions for the approval workflow.
// Every answer is evaluated against current employee and assignment rows, not
// against token claims.
type PolicySvcFacade interface {
	// AuthorizeStageAction checks whether the actor may decide the given stage
	// of the request. Returns apperrors.ErrForbidden when not.
	AuthorizeStageAction(ctx context.Context, actorID string, request domain.Request, stage domain.Stage) (*domain.Employee, error)

	// AuthorizeOverride checks whether the actor may force request statuses.
	AuthorizeOverride(ctx context.Context, actorID string) (*domain.Employee, error)

	// AuthorizeRequestView checks whether the actor may see the request.
	AuthorizeRequestView(ctx context.Context, actorID string, request domain.Request) (*domain.Employee, error)

	// AuthorizeCreditView checks whether the actor may read the credit balances
	// of the subject employee.
	AuthorizeCreditView(ctx context.Context, actorID string, subjectEmployeeID string) (*domain.Employee, error)

	// AuthorizeCreditAdjust checks whether the actor may change credit allotments.
	AuthorizeCreditAdjust(ctx context.Context, actorID string) (*domain.Employee, error)
}
