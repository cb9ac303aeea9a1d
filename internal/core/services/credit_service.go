package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/workpulse/hr_management_app/internal/apperrors"
	"github.com/workpulse/hr_management_app/internal/core/domain"
	portsrepo "github.com/workpulse/hr_management_app/internal/core/ports/repositories"
	portssvc "github.com/workpulse/hr_management_app/internal/core/ports/services"
	"github.com/workpulse/hr_management_app/internal/dto"
	"github.com/workpulse/hr_management_app/internal/middleware"
	"github.com/workpulse/hr_management_app/internal/platform/config"
)

// creditService provides read and administrative operations on entitlement
// credit accounts. Debits and refunds during approval transitions are done by
// the request service inside its transaction, not here.
type creditService struct {
	creditRepo portsrepo.CreditRepositoryWithTx
	policySvc  portssvc.PolicySvcFacade
	cfg        *config.Config
}

// NewCreditService creates a new credit service.
func NewCreditService(creditRepo portsrepo.CreditRepositoryWithTx, policySvc portssvc.PolicySvcFacade, cfg *config.Config) portssvc.CreditSvcFacade {
	return &creditService{
		creditRepo: creditRepo,
		policySvc:  policySvc,
		cfg:        cfg,
	}
}

var _ portssvc.CreditSvcFacade = (*creditService)(nil)

// GetBalance retrieves the credit account for an employee and entitlement
// type, materializing it with the default allotment if it does not exist.
func (s *creditService) GetBalance(ctx context.Context, employeeID string, entitlementType domain.EntitlementType) (*domain.CreditAccount, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if !entitlementType.IsValid() {
		return nil, apperrors.NewAppError(400, "unknown entitlement type", apperrors.ErrValidation)
	}

	periodKey := domain.PeriodKeyFor(entitlementType, time.Now())
	account, err := s.creditRepo.FindCreditAccount(ctx, employeeID, periodKey)
	if err == nil {
		return account, nil
	}
	if !errors.Is(err, apperrors.ErrNotFound) {
		logger.Error("Failed to find credit account", slog.String("error", err.Error()), slog.String("employee_id", employeeID), slog.String("period_key", periodKey))
		return nil, fmt.Errorf("failed to find credit account: %w", err)
	}

	// First touch of this period: materialize the account with the default
	// allotment. A concurrent first touch loses on the unique key and rereads.
	now := time.Now()
	fresh := domain.CreditAccount{
		CreditID:     uuid.NewString(),
		EmployeeID:   employeeID,
		PeriodKey:    periodKey,
		TotalCredits: s.cfg.DefaultCreditsFor(string(entitlementType)),
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     employeeID,
			LastUpdatedAt: now,
			LastUpdatedBy: employeeID,
		},
	}
	if err := s.creditRepo.SaveCreditAccount(ctx, fresh); err != nil {
		if errors.Is(err, apperrors.ErrDuplicate) {
			return s.creditRepo.FindCreditAccount(ctx, employeeID, periodKey)
		}
		logger.Error("Failed to materialize credit account", slog.String("error", err.Error()), slog.String("employee_id", employeeID), slog.String("period_key", periodKey))
		return nil, fmt.Errorf("failed to create credit account: %w", err)
	}

	logger.Info("Credit account materialized with default allotment",
		slog.String("employee_id", employeeID),
		slog.String("period_key", periodKey),
		slog.String("total", fresh.TotalCredits.String()))
	return &fresh, nil
}

// ListBalances retrieves all credit accounts of an employee.
func (s *creditService) ListBalances(ctx context.Context, employeeID string) ([]domain.CreditAccount, error) {
	accounts, err := s.creditRepo.ListCreditAccountsByEmployee(ctx, employeeID)
	if err != nil {
		middleware.GetLoggerFromCtx(ctx).Error("Failed to list credit accounts", slog.String("error", err.Error()), slog.String("employee_id", employeeID))
		return nil, fmt.Errorf("failed to list credit accounts: %w", err)
	}
	return accounts, nil
}

// AdjustTotal sets a new total allotment on an employee's credit account.
// Lowering the total below the used amount is refused so the used <= total
// invariant holds.
func (s *creditService) AdjustTotal(ctx context.Context, actorID string, req dto.AdjustCreditRequest) (*domain.CreditAccount, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	actor, err := s.policySvc.AuthorizeCreditAdjust(ctx, actorID)
	if err != nil {
		logger.Warn("Authorization failed for AdjustTotal", slog.String("error", err.Error()))
		return nil, err
	}

	if req.Total.IsNegative() {
		return nil, apperrors.NewAppError(400, "total allotment cannot be negative", apperrors.ErrValidation)
	}

	account, err := s.GetBalance(ctx, req.EmployeeID, req.Type)
	if err != nil {
		return nil, err
	}

	if req.Total.LessThan(account.UsedCredits) {
		return nil, apperrors.NewAppError(400,
			fmt.Sprintf("total %s would fall below used credits %s", req.Total.String(), account.UsedCredits.String()),
			apperrors.ErrValidation)
	}

	account.TotalCredits = req.Total
	account.LastUpdatedAt = time.Now()
	account.LastUpdatedBy = actor.EmployeeID

	if err := s.creditRepo.UpdateCreditAccount(ctx, *account); err != nil {
		logger.Error("Failed to update credit account", slog.String("error", err.Error()), slog.String("credit_id", account.CreditID))
		return nil, fmt.Errorf("failed to update credit account: %w", err)
	}

	logger.Info("Credit allotment adjusted",
		slog.String("credit_id", account.CreditID),
		slog.String("employee_id", account.EmployeeID),
		slog.String("total", account.TotalCredits.String()))
	return account, nil
}
