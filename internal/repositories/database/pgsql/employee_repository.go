package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/workpulse/hr_management_app/internal/apperrors"
	"github.com/workpulse/hr_management_app/internal/core/domain"
	portsrepo "github.com/workpulse/hr_management_app/internal/core/ports/repositories"
	"github.com/workpulse/hr_management_app/internal/models"
	"github.com/workpulse/hr_management_app/internal/utils/mapping"
)

const employeeColumns = `employee_id, first_name, last_name, email, department_id, role, is_active, created_at, created_by, last_updated_at, last_updated_by`

type PgxEmployeeRepository struct {
	BaseRepository
}

func newPgxEmployeeRepository(db *pgxpool.Pool) portsrepo.EmployeeRepositoryWithTx {
	return &PgxEmployeeRepository{BaseRepository{Pool: db}}
}

// Ensure PgxEmployeeRepository implements portsrepo.EmployeeRepositoryWithTx
var _ portsrepo.EmployeeRepositoryWithTx = (*PgxEmployeeRepository)(nil)

func scanEmployeeRow(row pgx.Row) (*models.Employee, error) {
	var m models.Employee
	err := row.Scan(
		&m.EmployeeID,
		&m.FirstName,
		&m.LastName,
		&m.Email,
		&m.DepartmentID,
		&m.Role,
		&m.IsActive,
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

// SaveEmployee persists a new employee together with their password hash.
func (r *PgxEmployeeRepository) SaveEmployee(ctx context.Context, employee domain.Employee, passwordHash string) error {
	m := mapping.ToModelEmployee(employee)
	query := `
		INSERT INTO employees (employee_id, first_name, last_name, email, password_hash, department_id, role, is_active, created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12);
	`
	_, err := r.Pool.Exec(ctx, query,
		m.EmployeeID, m.FirstName, m.LastName, m.Email, passwordHash,
		m.DepartmentID, m.Role, m.IsActive,
		m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" { // Unique violation
			return apperrors.ErrDuplicate
		}
		return fmt.Errorf("failed to save employee: %w", err)
	}
	return nil
}

// FindEmployeeByID retrieves a specific employee by their unique identifier.
func (r *PgxEmployeeRepository) FindEmployeeByID(ctx context.Context, employeeID string) (*domain.Employee, error) {
	query := fmt.Sprintf(`SELECT %s FROM employees WHERE employee_id = $1;`, employeeColumns)
	m, err := scanEmployeeRow(r.Pool.QueryRow(ctx, query, employeeID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find employee by ID: %w", err)
	}
	d := mapping.ToDomainEmployee(*m)
	return &d, nil
}

// FindEmployeeByEmail retrieves an employee by email address.
func (r *PgxEmployeeRepository) FindEmployeeByEmail(ctx context.Context, email string) (*domain.Employee, error) {
	query := fmt.Sprintf(`SELECT %s FROM employees WHERE email = $1;`, employeeColumns)
	m, err := scanEmployeeRow(r.Pool.QueryRow(ctx, query, email))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find employee by email: %w", err)
	}
	d := mapping.ToDomainEmployee(*m)
	return &d, nil
}

// FindEmployeePasswordHash retrieves the stored password hash for an employee.
func (r *PgxEmployeeRepository) FindEmployeePasswordHash(ctx context.Context, employeeID string) (string, error) {
	var hash string
	err := r.Pool.QueryRow(ctx, `SELECT password_hash FROM employees WHERE employee_id = $1;`, employeeID).Scan(&hash)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", apperrors.ErrNotFound
		}
		return "", fmt.Errorf("failed to find employee password hash: %w", err)
	}
	return hash, nil
}

// FindEmployeesByIDs retrieves multiple employees by their IDs.
func (r *PgxEmployeeRepository) FindEmployeesByIDs(ctx context.Context, employeeIDs []string) (map[string]domain.Employee, error) {
	if len(employeeIDs) == 0 {
		return map[string]domain.Employee{}, nil
	}
	query := fmt.Sprintf(`SELECT %s FROM employees WHERE employee_id = ANY($1);`, employeeColumns)
	rows, err := r.Pool.Query(ctx, query, employeeIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to query employees by IDs: %w", err)
	}
	defer rows.Close()

	result := make(map[string]domain.Employee)
	for rows.Next() {
		m, err := scanEmployeeRow(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan employee row: %w", err)
		}
		result[m.EmployeeID] = mapping.ToDomainEmployee(*m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating employee rows: %w", err)
	}
	return result, nil
}

// ListEmployees retrieves a paginated list of employees, optionally scoped to
// one department.
func (r *PgxEmployeeRepository) ListEmployees(ctx context.Context, departmentID string, limit int, offset int) ([]domain.Employee, error) {
	var (
		rows pgx.Rows
		err  error
	)
	if departmentID != "" {
		query := fmt.Sprintf(`SELECT %s FROM employees WHERE department_id = $1 ORDER BY last_name, first_name LIMIT $2 OFFSET $3;`, employeeColumns)
		rows, err = r.Pool.Query(ctx, query, departmentID, limit, offset)
	} else {
		query := fmt.Sprintf(`SELECT %s FROM employees ORDER BY last_name, first_name LIMIT $1 OFFSET $2;`, employeeColumns)
		rows, err = r.Pool.Query(ctx, query, limit, offset)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to list employees: %w", err)
	}
	defer rows.Close()

	var list []models.Employee
	for rows.Next() {
		m, err := scanEmployeeRow(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan employee row: %w", err)
		}
		list = append(list, *m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating employee rows: %w", err)
	}
	return mapping.ToDomainEmployeeSlice(list), nil
}

// ListEmployeesByRole retrieves the active employees holding a role.
func (r *PgxEmployeeRepository) ListEmployeesByRole(ctx context.Context, role domain.Role) ([]domain.Employee, error) {
	query := fmt.Sprintf(`SELECT %s FROM employees WHERE role = $1 AND is_active ORDER BY last_name, first_name;`, employeeColumns)
	rows, err := r.Pool.Query(ctx, query, string(role))
	if err != nil {
		return nil, fmt.Errorf("failed to list employees by role: %w", err)
	}
	defer rows.Close()

	var list []models.Employee
	for rows.Next() {
		m, err := scanEmployeeRow(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan employee row: %w", err)
		}
		list = append(list, *m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating employee rows: %w", err)
	}
	return mapping.ToDomainEmployeeSlice(list), nil
}

// UpdateEmployee updates an existing employee's details.
func (r *PgxEmployeeRepository) UpdateEmployee(ctx context.Context, employee domain.Employee) error {
	m := mapping.ToModelEmployee(employee)
	query := `
		UPDATE employees
		SET first_name = $2, last_name = $3, department_id = $4, role = $5, is_active = $6,
		    last_updated_at = $7, last_updated_by = $8
		WHERE employee_id = $1;
	`
	tag, err := r.Pool.Exec(ctx, query,
		m.EmployeeID, m.FirstName, m.LastName, m.DepartmentID, m.Role, m.IsActive,
		m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to update employee: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// DeactivateEmployee marks an employee as inactive.
func (r *PgxEmployeeRepository) DeactivateEmployee(ctx context.Context, employeeID string, actorID string, now time.Time) error {
	query := `
		UPDATE employees
		SET is_active = FALSE, last_updated_at = $2, last_updated_by = $3
		WHERE employee_id = $1 AND is_active;
	`
	tag, err := r.Pool.Exec(ctx, query, employeeID, now, actorID)
	if err != nil {
		return fmt.Errorf("failed to deactivate employee: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
