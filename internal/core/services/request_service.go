package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/workpulse/hr_management_app/internal/apperrors"
	"github.com/workpulse/hr_management_app/internal/core/domain"
	portsrepo "github.com/workpulse/hr_management_app/internal/core/ports/repositories"
	portssvc "github.com/workpulse/hr_management_app/internal/core/ports/services"
	"github.com/workpulse/hr_management_app/internal/dto"
	"github.com/workpulse/hr_management_app/internal/middleware"
	"github.com/workpulse/hr_management_app/internal/platform/config"
)

// requestService orchestrates the two-stage approval workflow. Stage updates
// and credit mutations commit in one database transaction; notification
// dispatch runs strictly after commit and can never undo a transition.
type requestService struct {
	requestRepo  portsrepo.RequestRepositoryWithTx
	creditRepo   portsrepo.CreditRepositoryWithTx
	employeeRepo portsrepo.EmployeeRepositoryFacade
	deptRepo     portsrepo.DepartmentRepositoryFacade
	policySvc    portssvc.PolicySvcFacade
	notifier     portssvc.Notifier
	cfg          *config.Config
}

// NewRequestService creates a new request service.
func NewRequestService(
	requestRepo portsrepo.RequestRepositoryWithTx,
	creditRepo portsrepo.CreditRepositoryWithTx,
	employeeRepo portsrepo.EmployeeRepositoryFacade,
	deptRepo portsrepo.DepartmentRepositoryFacade,
	policySvc portssvc.PolicySvcFacade,
	notifier portssvc.Notifier,
	cfg *config.Config,
) portssvc.RequestSvcFacade {
	return &requestService{
		requestRepo:  requestRepo,
		creditRepo:   creditRepo,
		employeeRepo: employeeRepo,
		deptRepo:     deptRepo,
		policySvc:    policySvc,
		notifier:     notifier,
		cfg:          cfg,
	}
}

var _ portssvc.RequestSvcFacade = (*requestService)(nil)

// SubmitRequest validates and persists a new request for the actor. The
// remaining-credit check here is advisory; the authoritative check runs under
// a row lock at final approval.
func (s *requestService) SubmitRequest(ctx context.Context, actorID string, req dto.SubmitRequestRequest) (*domain.Request, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	actor, err := s.employeeRepo.FindEmployeeByID(ctx, actorID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("%w: submitting employee not found", apperrors.ErrForbidden)
		}
		return nil, fmt.Errorf("failed to load submitting employee: %w", err)
	}
	if !actor.IsActive {
		return nil, fmt.Errorf("%w: employee account is deactivated", apperrors.ErrForbidden)
	}

	now := time.Now()
	request := domain.Request{
		RequestID:    uuid.NewString(),
		EmployeeID:   actor.EmployeeID,
		DepartmentID: actor.DepartmentID,
		Type:         req.Type,
		FromDate:     req.FromDate,
		ToDate:       req.ToDate,
		Days:         req.Days,
		Reason:       req.Reason,
		SubmittedAt:  now,
		Supervisor:   domain.StageRecord{Status: domain.StagePending},
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     actor.EmployeeID,
			LastUpdatedAt: now,
			LastUpdatedBy: actor.EmployeeID,
		},
	}
	if err := request.ValidateSubmission(); err != nil {
		return nil, err
	}

	if req.Type == domain.EntitlementLeave {
		if err := s.precheckLeaveBalance(ctx, actor.EmployeeID, request); err != nil {
			return nil, err
		}
	}

	if err := s.requestRepo.SaveRequest(ctx, request); err != nil {
		logger.Error("Failed to save request", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to save request: %w", err)
	}

	logger.Info("Request submitted",
		slog.String("request_id", request.RequestID),
		slog.String("type", string(request.Type)),
		slog.String("days", request.Days.String()))

	recipients, err := s.deptRepo.ListEvaluatorIDs(ctx, request.DepartmentID)
	if err != nil {
		logger.Warn("Failed to resolve evaluators for notification", slog.String("error", err.Error()))
		recipients = nil
	}
	s.dispatch(ctx, s.buildEvent(domain.EventRequestCreated, request, domain.StageSupervisor, "", recipients))

	return &request, nil
}

// precheckLeaveBalance rejects leave submissions that visibly exceed the
// remaining balance. It reads without a lock; final approval re-checks.
func (s *requestService) precheckLeaveBalance(ctx context.Context, employeeID string, request domain.Request) error {
	periodKey := domain.PeriodKeyFor(request.Type, request.FromDate)
	account, err := s.creditRepo.FindCreditAccount(ctx, employeeID, periodKey)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			// No account yet; the default allotment applies.
			if request.Days.GreaterThan(s.cfg.DefaultCreditsFor(string(request.Type))) {
				return fmt.Errorf("%w: requested %s days exceeds the default allotment", apperrors.ErrInsufficientCredits, request.Days.String())
			}
			return nil
		}
		return fmt.Errorf("failed to check leave balance: %w", err)
	}
	if request.Days.GreaterThan(account.Remaining()) {
		return fmt.Errorf("%w: requested %s days, %s remaining", apperrors.ErrInsufficientCredits, request.Days.String(), account.Remaining().String())
	}
	return nil
}

// GetRequestByID retrieves a request, applying the caller's visibility rules.
func (s *requestService) GetRequestByID(ctx context.Context, requestID string, actorID string) (*domain.Request, error) {
	request, err := s.requestRepo.FindRequestByID(ctx, requestID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			middleware.GetLoggerFromCtx(ctx).Error("Failed to find request", slog.String("error", err.Error()), slog.String("request_id", requestID))
		}
		return nil, fmt.Errorf("failed to find request %s: %w", requestID, err)
	}
	if _, err := s.policySvc.AuthorizeRequestView(ctx, actorID, *request); err != nil {
		return nil, err
	}
	return request, nil
}

// ListRequests retrieves a paginated list of requests visible to the actor.
// Plain employees only see their own; evaluators and HR see their scope.
func (s *requestService) ListRequests(ctx context.Context, actorID string, filters portsrepo.RequestListFilters, limit int, nextToken *string) ([]domain.Request, *string, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	actor, err := s.employeeRepo.FindEmployeeByID(ctx, actorID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, nil, fmt.Errorf("%w: acting employee not found", apperrors.ErrForbidden)
		}
		return nil, nil, fmt.Errorf("failed to load acting employee: %w", err)
	}

	switch actor.Role {
	case domain.RoleHR, domain.RoleAdmin, domain.RoleSuperAdmin:
		// Unrestricted; filters apply as requested.
	default:
		if filters.DepartmentID != "" {
			assignment, err := s.deptRepo.FindAssignment(ctx, actorID, filters.DepartmentID)
			if err != nil || !assignment.CanEvaluate {
				return nil, nil, fmt.Errorf("%w: no evaluation rights in this department", apperrors.ErrForbidden)
			}
		} else {
			// Scope to the actor's own requests.
			filters.EmployeeID = actor.EmployeeID
		}
	}

	if limit <= 0 {
		limit = 20
	}

	requests, next, err := s.requestRepo.ListRequests(ctx, filters, limit, nextToken)
	if err != nil {
		logger.Error("Failed to list requests", slog.String("error", err.Error()))
		return nil, nil, fmt.Errorf("failed to list requests: %w", err)
	}
	return requests, next, nil
}

// UpdateRequest edits a request that is still pending supervisor approval.
// Only the submitting employee may edit, and only before any decision.
func (s *requestService) UpdateRequest(ctx context.Context, requestID string, actorID string, req dto.UpdateRequestRequest) (*domain.Request, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	request, err := s.requestRepo.FindRequestByID(ctx, requestID)
	if err != nil {
		return nil, fmt.Errorf("failed to find request %s: %w", requestID, err)
	}
	if request.EmployeeID != actorID {
		return nil, fmt.Errorf("%w: only the submitter may edit a request", apperrors.ErrForbidden)
	}
	if request.OverallStatus() != domain.StatusPendingSupervisor {
		return nil, fmt.Errorf("%w: request is no longer editable", apperrors.ErrInvalidTransition)
	}

	updated := false
	if req.FromDate != nil {
		request.FromDate = *req.FromDate
		updated = true
	}
	if req.ToDate != nil {
		request.ToDate = *req.ToDate
		updated = true
	}
	if req.Days != nil {
		request.Days = *req.Days
		updated = true
	}
	if req.Reason != nil {
		request.Reason = *req.Reason
		updated = true
	}
	if !updated {
		return request, nil
	}

	if err := request.ValidateSubmission(); err != nil {
		return nil, err
	}
	if request.Type == domain.EntitlementLeave {
		if err := s.precheckLeaveBalance(ctx, request.EmployeeID, *request); err != nil {
			return nil, err
		}
	}

	now := time.Now()
	request.LastUpdatedAt = now
	request.LastUpdatedBy = actorID

	if err := s.requestRepo.UpdateRequest(ctx, *request); err != nil {
		logger.Error("Failed to update request", slog.String("error", err.Error()), slog.String("request_id", requestID))
		return nil, fmt.Errorf("failed to update request: %w", err)
	}
	return request, nil
}

// DecideRequest applies an approve/reject verdict on one stage. The row lock
// taken here makes concurrent decisions on the same request serialize; the
// loser re-reads a non-pending stage and fails the transition guard.
func (s *requestService) DecideRequest(ctx context.Context, requestID string, actorID string, req dto.DecideRequestRequest) (*domain.Request, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	request, err := s.requestRepo.FindRequestByID(ctx, requestID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			logger.Error("Failed to find request for decision", slog.String("error", err.Error()), slog.String("request_id", requestID))
		}
		return nil, fmt.Errorf("failed to find request %s: %w", requestID, err)
	}

	actor, err := s.policySvc.AuthorizeStageAction(ctx, actorID, *request, req.Stage)
	if err != nil {
		logger.Warn("Authorization failed for DecideRequest",
			slog.String("request_id", requestID),
			slog.String("stage", string(req.Stage)),
			slog.String("error", err.Error()))
		return nil, err
	}

	now := time.Now()

	tx, err := s.requestRepo.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		_ = s.requestRepo.Rollback(ctx, tx)
	}()

	locked, err := s.requestRepo.FindRequestByIDForUpdate(ctx, tx, requestID)
	if err != nil {
		return nil, fmt.Errorf("failed to lock request %s: %w", requestID, err)
	}

	var (
		updated domain.Request
		action  domain.LedgerAction
	)

	// A superadmin may resolve the HR stage of a supervisor-rejected request.
	// That is an override in workflow terms, so it routes through the same
	// forced-status path and keeps ledger accounting exactly-once.
	if req.Stage == domain.StageHR &&
		locked.Supervisor.Status == domain.StageRejected &&
		actor.Role == domain.RoleSuperAdmin {
		target := domain.StatusApproved
		if req.Decision == domain.DecisionReject {
			target = domain.StatusRejectedByHR
		}
		updated, action, err = locked.ApplyOverride(target, actor.EmployeeID, req.Comments, now)
	} else {
		updated, action, err = locked.ApplyDecision(req.Stage, req.Decision, actor.EmployeeID, req.Comments, now)
	}
	if err != nil {
		logger.Warn("Transition rejected",
			slog.String("request_id", requestID),
			slog.String("stage", string(req.Stage)),
			slog.String("decision", string(req.Decision)),
			slog.String("error", err.Error()))
		return nil, err
	}

	if err := s.applyLedgerAction(ctx, tx, &updated, action, actor.EmployeeID, now); err != nil {
		return nil, err
	}

	updated.LastUpdatedAt = now
	updated.LastUpdatedBy = actor.EmployeeID
	if err := s.requestRepo.UpdateRequestInTx(ctx, tx, updated); err != nil {
		logger.Error("Failed to persist decision", slog.String("error", err.Error()), slog.String("request_id", requestID))
		return nil, fmt.Errorf("failed to persist decision: %w", err)
	}

	if err := s.requestRepo.Commit(ctx, tx); err != nil {
		logger.Error("Failed to commit decision", slog.String("error", err.Error()), slog.String("request_id", requestID))
		return nil, fmt.Errorf("failed to commit decision: %w", err)
	}

	logger.Info("Decision applied",
		slog.String("request_id", requestID),
		slog.String("stage", string(req.Stage)),
		slog.String("decision", string(req.Decision)),
		slog.String("status", string(updated.OverallStatus())))

	s.dispatchDecisionEvents(ctx, updated, req.Stage, req.Comments)

	return &updated, nil
}

// OverrideRequestStatus forces a request to a target overall status,
// reconciling the credit ledger in the same transaction.
func (s *requestService) OverrideRequestStatus(ctx context.Context, requestID string, actorID string, req dto.OverrideRequestRequest) (*domain.Request, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	actor, err := s.policySvc.AuthorizeOverride(ctx, actorID)
	if err != nil {
		logger.Warn("Authorization failed for OverrideRequestStatus", slog.String("error", err.Error()))
		return nil, err
	}

	now := time.Now()

	tx, err := s.requestRepo.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		_ = s.requestRepo.Rollback(ctx, tx)
	}()

	locked, err := s.requestRepo.FindRequestByIDForUpdate(ctx, tx, requestID)
	if err != nil {
		return nil, fmt.Errorf("failed to lock request %s: %w", requestID, err)
	}

	updated, action, err := locked.ApplyOverride(req.Status, actor.EmployeeID, req.Comments, now)
	if err != nil {
		logger.Warn("Override rejected",
			slog.String("request_id", requestID),
			slog.String("target", string(req.Status)),
			slog.String("error", err.Error()))
		return nil, err
	}

	if err := s.applyLedgerAction(ctx, tx, &updated, action, actor.EmployeeID, now); err != nil {
		return nil, err
	}

	updated.LastUpdatedAt = now
	updated.LastUpdatedBy = actor.EmployeeID
	if err := s.requestRepo.UpdateRequestInTx(ctx, tx, updated); err != nil {
		logger.Error("Failed to persist override", slog.String("error", err.Error()), slog.String("request_id", requestID))
		return nil, fmt.Errorf("failed to persist override: %w", err)
	}

	if err := s.requestRepo.Commit(ctx, tx); err != nil {
		logger.Error("Failed to commit override", slog.String("error", err.Error()), slog.String("request_id", requestID))
		return nil, fmt.Errorf("failed to commit override: %w", err)
	}

	logger.Info("Status override applied",
		slog.String("request_id", requestID),
		slog.String("status", string(updated.OverallStatus())))

	kind := domain.EventRequestStageApproved
	switch updated.OverallStatus() {
	case domain.StatusApproved:
		kind = domain.EventRequestFinalApproved
	case domain.StatusRejectedBySupervisor, domain.StatusRejectedByHR:
		kind = domain.EventRequestStageRejected
	}
	s.dispatch(ctx, s.buildEvent(kind, updated, "", req.Comments, []string{updated.EmployeeID}))

	return &updated, nil
}

// applyLedgerAction performs the credit mutation a transition requires inside
// the caller's transaction. Debits that would overdraw the account fail the
// whole transition; refunds clamp at zero and log the discrepancy.
func (s *requestService) applyLedgerAction(ctx context.Context, tx pgx.Tx, request *domain.Request, action domain.LedgerAction, actorID string, now time.Time) error {
	if action == domain.LedgerNone {
		return nil
	}
	logger := middleware.GetLoggerFromCtx(ctx)

	periodKey := domain.PeriodKeyFor(request.Type, request.FromDate)
	account, err := s.creditRepo.GetOrCreateCreditForUpdate(ctx, tx, request.EmployeeID, periodKey, s.cfg.DefaultCreditsFor(string(request.Type)), actorID)
	if err != nil {
		logger.Error("Failed to lock credit account", slog.String("error", err.Error()), slog.String("period_key", periodKey))
		return fmt.Errorf("failed to lock credit account: %w", err)
	}

	switch action {
	case domain.LedgerDebit:
		newUsed := account.UsedCredits.Add(request.Days)
		if newUsed.GreaterThan(account.TotalCredits) {
			logger.Warn("Debit would overdraw credit account",
				slog.String("request_id", request.RequestID),
				slog.String("period_key", periodKey),
				slog.String("days", request.Days.String()),
				slog.String("remaining", account.Remaining().String()))
			return fmt.Errorf("%w: %s days requested, %s remaining", apperrors.ErrInsufficientCredits, request.Days.String(), account.Remaining().String())
		}
		account.UsedCredits = newUsed

	case domain.LedgerCredit:
		newUsed := account.UsedCredits.Sub(request.Days)
		if newUsed.IsNegative() {
			logger.Warn("Refund exceeds used credits, clamping to zero",
				slog.String("request_id", request.RequestID),
				slog.String("period_key", periodKey),
				slog.String("days", request.Days.String()),
				slog.String("used", account.UsedCredits.String()))
			newUsed = decimal.Zero
		}
		account.UsedCredits = newUsed
	}

	account.LastUpdatedAt = now
	account.LastUpdatedBy = actorID
	if err := s.creditRepo.UpdateCreditInTx(ctx, tx, *account); err != nil {
		logger.Error("Failed to update credit account", slog.String("error", err.Error()), slog.String("credit_id", account.CreditID))
		return fmt.Errorf("failed to update credit account: %w", err)
	}
	return nil
}

// dispatchDecisionEvents emits the events a committed stage decision implies.
func (s *requestService) dispatchDecisionEvents(ctx context.Context, request domain.Request, stage domain.Stage, comments string) {
	status := request.OverallStatus()
	switch status {
	case domain.StatusPendingHR:
		// Supervisor approved; tell the submitter and the HR team.
		s.dispatch(ctx, s.buildEvent(domain.EventRequestStageApproved, request, stage, comments, append(s.hrRecipients(ctx), request.EmployeeID)))
	case domain.StatusApproved:
		s.dispatch(ctx, s.buildEvent(domain.EventRequestFinalApproved, request, stage, comments, []string{request.EmployeeID}))
	case domain.StatusRejectedBySupervisor, domain.StatusRejectedByHR:
		s.dispatch(ctx, s.buildEvent(domain.EventRequestStageRejected, request, stage, comments, []string{request.EmployeeID}))
	}
}

// hrRecipients resolves the active HR employees, best effort.
func (s *requestService) hrRecipients(ctx context.Context) []string {
	hrs, err := s.employeeRepo.ListEmployeesByRole(ctx, domain.RoleHR)
	if err != nil {
		middleware.GetLoggerFromCtx(ctx).Warn("Failed to resolve HR recipients", slog.String("error", err.Error()))
		return nil
	}
	ids := make([]string, len(hrs))
	for i, hr := range hrs {
		ids[i] = hr.EmployeeID
	}
	return ids
}

// buildEvent assembles a fully formed event so the dispatcher never has to
// read back from the database.
func (s *requestService) buildEvent(kind domain.EventKind, request domain.Request, stage domain.Stage, comments string, recipients []string) domain.Event {
	return domain.Event{
		Kind:         kind,
		RequestID:    request.RequestID,
		EmployeeID:   request.EmployeeID,
		RecipientIDs: recipients,
		Fields: domain.EventFields{
			Type:     request.Type,
			FromDate: request.FromDate,
			ToDate:   request.ToDate,
			Stage:    stage,
			Status:   request.OverallStatus(),
			Comments: comments,
		},
		OccurredAt: time.Now(),
	}
}

// dispatch hands an event to the notifier. Failures are logged and swallowed;
// the transition already committed.
func (s *requestService) dispatch(ctx context.Context, event domain.Event) {
	if s.notifier == nil {
		return
	}
	if err := s.notifier.Notify(ctx, event); err != nil {
		middleware.GetLoggerFromCtx(ctx).Error("Notification dispatch failed",
			slog.String("kind", string(event.Kind)),
			slog.String("request_id", event.RequestID),
			slog.String("error", err.Error()))
	}
}
