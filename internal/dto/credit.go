package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/workpulse/hr_management_app/internal/core/domain"
)

// AdjustCreditRequest defines an administrative change to a credit allotment.
type AdjustCreditRequest struct {
	EmployeeID string                 `json:"employeeID" binding:"required"`
	Type       domain.EntitlementType `json:"type" binding:"required,oneof=LEAVE ABSENCE"`
	Total      decimal.Decimal        `json:"total" binding:"required"`
}

// CreditAccountResponse defines the data returned for a credit account.
// Remaining is derived, never stored.
type CreditAccountResponse struct {
	CreditID      string          `json:"creditID"`
	EmployeeID    string          `json:"employeeID"`
	PeriodKey     string          `json:"periodKey"`
	TotalCredits  decimal.Decimal `json:"totalCredits"`
	UsedCredits   decimal.Decimal `json:"usedCredits"`
	Remaining     decimal.Decimal `json:"remaining"`
	LastUpdatedAt time.Time       `json:"lastUpdatedAt"`
}

// ToCreditAccountResponse converts a domain.CreditAccount to CreditAccountResponse DTO
func ToCreditAccountResponse(a *domain.CreditAccount) CreditAccountResponse {
	return CreditAccountResponse{
		CreditID:      a.CreditID,
		EmployeeID:    a.EmployeeID,
		PeriodKey:     a.PeriodKey,
		TotalCredits:  a.TotalCredits,
		UsedCredits:   a.UsedCredits,
		Remaining:     a.Remaining(),
		LastUpdatedAt: a.LastUpdatedAt,
	}
}

// ListCreditAccountsResponse wraps the list of an employee's credit accounts.
type ListCreditAccountsResponse struct {
	Accounts []CreditAccountResponse `json:"accounts"`
}

// ToListCreditAccountsResponse converts domain accounts to ListCreditAccountsResponse DTO
func ToListCreditAccountsResponse(accounts []domain.CreditAccount) ListCreditAccountsResponse {
	res := make([]CreditAccountResponse, len(accounts))
	for i, a := range accounts {
		res[i] = ToCreditAccountResponse(&a)
	}
	return ListCreditAccountsResponse{Accounts: res}
}
