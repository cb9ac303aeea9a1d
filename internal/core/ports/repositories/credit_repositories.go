package repositories

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/workpulse/hr_management_app/internal/core/domain"
)

// CreditReader defines read operations for entitlement credit data
type CreditReader interface {
	// FindCreditAccount retrieves the credit account for an employee and period key.
	FindCreditAccount(ctx context.Context, employeeID, periodKey string) (*domain.CreditAccount, error)

	// ListCreditAccountsByEmployee retrieves all credit accounts of an employee.
	ListCreditAccountsByEmployee(ctx context.Context, employeeID string) ([]domain.CreditAccount, error)
}

// CreditWriter defines write operations for entitlement credit data
type CreditWriter interface {
	// SaveCreditAccount persists a new credit account. Saving an account that
	// already exists for the same employee and period key is a conflict.
	SaveCreditAccount(ctx context.Context, account domain.CreditAccount) error

	// UpdateCreditAccount updates an existing credit account's totals.
	UpdateCreditAccount(ctx context.Context, account domain.CreditAccount) error
}

// CreditTransactionSupport defines operations used inside decision transactions
type CreditTransactionSupport interface {
	// GetOrCreateCreditForUpdate finds the credit account for an employee and
	// period key and locks its row, creating the account with defaultTotal
	// first if it does not exist yet.
	GetOrCreateCreditForUpdate(ctx context.Context, tx pgx.Tx, employeeID, periodKey string, defaultTotal decimal.Decimal, createdBy string) (*domain.CreditAccount, error)

	// UpdateCreditInTx updates a credit account's used total within a given transaction.
	UpdateCreditInTx(ctx context.Context, tx pgx.Tx, account domain.CreditAccount) error
}

// CreditRepositoryFacade combines all credit-related repository interfaces
// This is a facade for clients that need access to all operations
type CreditRepositoryFacade interface {
	CreditReader
	CreditWriter
	CreditTransactionSupport
}

// CreditRepositoryWithTx extends CreditRepositoryFacade with transaction capabilities
type CreditRepositoryWithTx interface {
	CreditRepositoryFacade
	TransactionManager
}
