package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/workpulse/hr_management_app/internal/apperrors"
	"github.com/workpulse/hr_management_app/internal/core/domain"
	portsrepo "github.com/workpulse/hr_management_app/internal/core/ports/repositories"
	"github.com/workpulse/hr_management_app/internal/models"
	"github.com/workpulse/hr_management_app/internal/utils/mapping"
)

const creditColumns = `credit_id, employee_id, period_key, total_credits, used_credits, created_at, created_by, last_updated_at, last_updated_by`

type PgxCreditRepository struct {
	BaseRepository
}

func newPgxCreditRepository(db *pgxpool.Pool) portsrepo.CreditRepositoryWithTx {
	return &PgxCreditRepository{BaseRepository{Pool: db}}
}

// Ensure PgxCreditRepository implements portsrepo.CreditRepositoryWithTx
var _ portsrepo.CreditRepositoryWithTx = (*PgxCreditRepository)(nil)

func scanCreditRow(row pgx.Row) (*models.CreditAccount, error) {
	var m models.CreditAccount
	err := row.Scan(
		&m.CreditID,
		&m.EmployeeID,
		&m.PeriodKey,
		&m.TotalCredits,
		&m.UsedCredits,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	if err != nil {
		return nil, err
	}
	return &m, nil
}

// SaveCreditAccount persists a new credit account. The unique key on
// (employee_id, period_key) turns a concurrent first touch into ErrDuplicate.
func (r *PgxCreditRepository) SaveCreditAccount(ctx context.Context, account domain.CreditAccount) error {
	m := mapping.ToModelCreditAccount(account)
	query := fmt.Sprintf(`
		INSERT INTO entitlement_credits (%s)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9);
	`, creditColumns)
	_, err := r.Pool.Exec(ctx, query,
		m.CreditID, m.EmployeeID, m.PeriodKey, m.TotalCredits, m.UsedCredits,
		m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" { // Unique violation
			return apperrors.ErrDuplicate
		}
		return fmt.Errorf("failed to save credit account: %w", err)
	}
	return nil
}

// FindCreditAccount retrieves the credit account for an employee and period key.
func (r *PgxCreditRepository) FindCreditAccount(ctx context.Context, employeeID, periodKey string) (*domain.CreditAccount, error) {
	query := fmt.Sprintf(`SELECT %s FROM entitlement_credits WHERE employee_id = $1 AND period_key = $2;`, creditColumns)
	m, err := scanCreditRow(r.Pool.QueryRow(ctx, query, employeeID, periodKey))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find credit account: %w", err)
	}
	d := mapping.ToDomainCreditAccount(*m)
	return &d, nil
}

// ListCreditAccountsByEmployee retrieves all credit accounts of an employee.
func (r *PgxCreditRepository) ListCreditAccountsByEmployee(ctx context.Context, employeeID string) ([]domain.CreditAccount, error) {
	query := fmt.Sprintf(`SELECT %s FROM entitlement_credits WHERE employee_id = $1 ORDER BY period_key;`, creditColumns)
	rows, err := r.Pool.Query(ctx, query, employeeID)
	if err != nil {
		return nil, fmt.Errorf("failed to list credit accounts: %w", err)
	}
	defer rows.Close()

	var list []models.CreditAccount
	for rows.Next() {
		m, err := scanCreditRow(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan credit account row: %w", err)
		}
		list = append(list, *m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating credit account rows: %w", err)
	}
	return mapping.ToDomainCreditAccountSlice(list), nil
}

// UpdateCreditAccount updates an existing credit account's totals.
func (r *PgxCreditRepository) UpdateCreditAccount(ctx context.Context, account domain.CreditAccount) error {
	m := mapping.ToModelCreditAccount(account)
	query := `
		UPDATE entitlement_credits
		SET total_credits = $2, used_credits = $3, last_updated_at = $4, last_updated_by = $5
		WHERE credit_id = $1;
	`
	tag, err := r.Pool.Exec(ctx, query, m.CreditID, m.TotalCredits, m.UsedCredits, m.LastUpdatedAt, m.LastUpdatedBy)
	if err != nil {
		return fmt.Errorf("failed to update credit account: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// GetOrCreateCreditForUpdate finds the credit account for an employee and
// period key and locks its row, creating the account with defaultTotal first
// if it does not exist yet. Must be called within a transaction.
func (r *PgxCreditRepository) GetOrCreateCreditForUpdate(ctx context.Context, tx pgx.Tx, employeeID, periodKey string, defaultTotal decimal.Decimal, createdBy string) (*domain.CreditAccount, error) {
	now := time.Now()
	insert := fmt.Sprintf(`
		INSERT INTO entitlement_credits (%s)
		VALUES (gen_random_uuid(), $1, $2, $3, 0, $4, $5, $4, $5)
		ON CONFLICT (employee_id, period_key) DO NOTHING;
	`, creditColumns)
	if _, err := tx.Exec(ctx, insert, employeeID, periodKey, defaultTotal, now, createdBy); err != nil {
		return nil, fmt.Errorf("failed to materialize credit account: %w", err)
	}

	query := fmt.Sprintf(`
		SELECT %s FROM entitlement_credits
		WHERE employee_id = $1 AND period_key = $2
		FOR UPDATE;
	`, creditColumns)
	m, err := scanCreditRow(tx.QueryRow(ctx, query, employeeID, periodKey))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to lock credit account row: %w", err)
	}
	d := mapping.ToDomainCreditAccount(*m)
	return &d, nil
}

// UpdateCreditInTx updates a credit account's used total within a transaction.
func (r *PgxCreditRepository) UpdateCreditInTx(ctx context.Context, tx pgx.Tx, account domain.CreditAccount) error {
	m := mapping.ToModelCreditAccount(account)
	query := `
		UPDATE entitlement_credits
		SET total_credits = $2, used_credits = $3, last_updated_at = $4, last_updated_by = $5
		WHERE credit_id = $1;
	`
	tag, err := tx.Exec(ctx, query, m.CreditID, m.TotalCredits, m.UsedCredits, m.LastUpdatedAt, m.LastUpdatedBy)
	if err != nil {
		return fmt.Errorf("failed to update credit account in tx: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
