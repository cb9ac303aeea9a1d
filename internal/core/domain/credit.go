package domain

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// EntitlementType distinguishes the two parallel credit ledgers.
type EntitlementType string

const (
	EntitlementLeave   EntitlementType = "LEAVE"
	EntitlementAbsence EntitlementType = "ABSENCE"
)

// IsValid reports whether t is a known entitlement type.
func (t EntitlementType) IsValid() bool {
	return t == EntitlementLeave || t == EntitlementAbsence
}

// PeriodKeyFor returns the ledger period key for an entitlement type and a
// reference date. Leave credits are allotted per calendar year; absence
// credits live in a single rolling account.
func PeriodKeyFor(t EntitlementType, ref time.Time) string {
	if t == EntitlementLeave {
		return fmt.Sprintf("leave-%d", ref.Year())
	}
	return "absence"
}

// CreditAccount tracks one employee's entitlement balance for one period key.
// Remaining is always derived from Total and Used, never stored independently.
type CreditAccount struct {
	CreditID     string          `json:"creditID"` // Primary Key (UUID)
	EmployeeID   string          `json:"employeeID"`
	PeriodKey    string          `json:"periodKey"` // e.g. "leave-2025", "absence"
	TotalCredits decimal.Decimal `json:"totalCredits"`
	UsedCredits  decimal.Decimal `json:"usedCredits"`
	AuditFields
}

// Remaining returns the credits still available on the account.
func (a CreditAccount) Remaining() decimal.Decimal {
	return a.TotalCredits.Sub(a.UsedCredits)
}

// IsConsistent reports whether 0 <= used <= total holds.
func (a CreditAccount) IsConsistent() bool {
	return !a.UsedCredits.IsNegative() && a.UsedCredits.LessThanOrEqual(a.TotalCredits)
}
