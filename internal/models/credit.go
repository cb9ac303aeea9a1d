package models

import "github.com/shopspring/decimal"

// CreditAccount represents an entitlement credit row. The remaining balance
// is never stored; it is derived from total and used.
type CreditAccount struct {
	CreditID     string          `db:"credit_id"`
	EmployeeID   string          `db:"employee_id"`
	PeriodKey    string          `db:"period_key"`
	TotalCredits decimal.Decimal `db:"total_credits"`
	UsedCredits  decimal.Decimal `db:"used_credits"`
	AuditFields
}
