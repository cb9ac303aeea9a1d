package services

import (
	"context"

	"github.com/workpulse/hr_management_app/internal/core/domain"
	"github.com/workpulse/hr_management_app/internal/dto"
)

// CreditReaderSvc defines read operations for entitlement credit data
type CreditReaderSvc interface {
	// GetBalance retrieves the credit account for an employee and entitlement
	// type, materializing it with the default allotment if it does not exist.
	GetBalance(ctx context.Context, employeeID string, entitlementType domain.EntitlementType) (*domain.CreditAccount, error)

	// ListBalances retrieves all credit accounts of an employee.
	ListBalances(ctx context.Context, employeeID string) ([]domain.CreditAccount, error)
}

// CreditAdminSvc defines administrative adjustments to credit totals
type CreditAdminSvc interface {
	// AdjustTotal sets a new total allotment on an employee's credit account.
	// Lowering the total below the used amount is a validation error.
	AdjustTotal(ctx context.Context, actorID string, req dto.AdjustCreditRequest) (*domain.CreditAccount, error)
}

// CreditSvcFacade combines all credit-related service interfaces
type CreditSvcFacade interface {
	CreditReaderSvc
	CreditAdminSvc
}
