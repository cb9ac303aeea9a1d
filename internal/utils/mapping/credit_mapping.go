package mapping

import (
	"github.com/workpulse/hr_management_app/internal/core/domain"
	"github.com/workpulse/hr_management_app/internal/models"
)

// ToModelCreditAccount converts a domain CreditAccount to a model CreditAccount.
func ToModelCreditAccount(d domain.CreditAccount) models.CreditAccount {
	return models.CreditAccount{
		CreditID:     d.CreditID,
		EmployeeID:   d.EmployeeID,
		PeriodKey:    d.PeriodKey,
		TotalCredits: d.TotalCredits,
		UsedCredits:  d.UsedCredits,
		AuditFields:  ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainCreditAccount converts a model CreditAccount to a domain CreditAccount.
func ToDomainCreditAccount(m models.CreditAccount) domain.CreditAccount {
	return domain.CreditAccount{
		CreditID:     m.CreditID,
		EmployeeID:   m.EmployeeID,
		PeriodKey:    m.PeriodKey,
		TotalCredits: m.TotalCredits,
		UsedCredits:  m.UsedCredits,
		AuditFields:  ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainCreditAccountSlice converts model credit accounts to domain accounts.
func ToDomainCreditAccountSlice(ms []models.CreditAccount) []domain.CreditAccount {
	ds := make([]domain.CreditAccount, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainCreditAccount(m)
	}
	return ds
}
