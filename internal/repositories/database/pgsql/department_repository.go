package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/workpulse/hr_management_app/internal/apperrors"
	"github.com/workpulse/hr_management_app/internal/core/domain"
	portsrepo "github.com/workpulse/hr_management_app/internal/core/ports/repositories"
	"github.com/workpulse/hr_management_app/internal/models"
	"github.com/workpulse/hr_management_app/internal/utils/mapping"
)

const departmentColumns = `department_id, name, description, is_active, created_at, created_by, last_updated_at, last_updated_by`
const assignmentColumns = `assignment_id, employee_id, department_id, role, can_evaluate, created_at, created_by, last_updated_at, last_updated_by`

type PgxDepartmentRepository struct {
	BaseRepository
}

func newPgxDepartmentRepository(db *pgxpool.Pool) portsrepo.DepartmentRepositoryWithTx {
	return &PgxDepartmentRepository{BaseRepository{Pool: db}}
}

// Ensure PgxDepartmentRepository implements portsrepo.DepartmentRepositoryWithTx
var _ portsrepo.DepartmentRepositoryWithTx = (*PgxDepartmentRepository)(nil)

func scanDepartmentRow(row pgx.Row) (*models.Department, error) {
	var m models.Department
	err := row.Scan(
		&m.DepartmentID,
		&m.Name,
		&m.Description,
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

func scanAssignmentRow(row pgx.Row) (*models.DepartmentAssignment, error) {
	var m models.DepartmentAssignment
	err := row.Scan(
		&m.AssignmentID,
		&m.EmployeeID,
		&m.DepartmentID,
		&m.Role,
		&m.CanEvaluate,
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

// SaveDepartment persists a new department.
func (r *PgxDepartmentRepository) SaveDepartment(ctx context.Context, department domain.Department) error {
	m := mapping.ToModelDepartment(department)
	query := fmt.Sprintf(`
		INSERT INTO departments (%s)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8);
	`, departmentColumns)
	_, err := r.Pool.Exec(ctx, query,
		m.DepartmentID, m.Name, m.Description, m.IsActive,
		m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" { // Unique violation
			return apperrors.ErrDuplicate
		}
		return fmt.Errorf("failed to save department: %w", err)
	}
	return nil
}

// FindDepartmentByID retrieves a specific department by its unique identifier.
func (r *PgxDepartmentRepository) FindDepartmentByID(ctx context.Context, departmentID string) (*domain.Department, error) {
	query := fmt.Sprintf(`SELECT %s FROM departments WHERE department_id = $1;`, departmentColumns)
	m, err := scanDepartmentRow(r.Pool.QueryRow(ctx, query, departmentID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find department by ID: %w", err)
	}
	d := mapping.ToDomainDepartment(*m)
	return &d, nil
}

// ListDepartments retrieves a paginated list of departments.
func (r *PgxDepartmentRepository) ListDepartments(ctx context.Context, limit int, offset int) ([]domain.Department, error) {
	query := fmt.Sprintf(`SELECT %s FROM departments ORDER BY name LIMIT $1 OFFSET $2;`, departmentColumns)
	rows, err := r.Pool.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list departments: %w", err)
	}
	defer rows.Close()

	var list []models.Department
	for rows.Next() {
		m, err := scanDepartmentRow(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan department row: %w", err)
		}
		list = append(list, *m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating department rows: %w", err)
	}
	return mapping.ToDomainDepartmentSlice(list), nil
}

// UpdateDepartment updates an existing department's details.
func (r *PgxDepartmentRepository) UpdateDepartment(ctx context.Context, department domain.Department) error {
	m := mapping.ToModelDepartment(department)
	query := `
		UPDATE departments
		SET name = $2, description = $3, is_active = $4, last_updated_at = $5, last_updated_by = $6
		WHERE department_id = $1;
	`
	tag, err := r.Pool.Exec(ctx, query, m.DepartmentID, m.Name, m.Description, m.IsActive, m.LastUpdatedAt, m.LastUpdatedBy)
	if err != nil {
		return fmt.Errorf("failed to update department: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// SaveAssignment persists a new assignment.
func (r *PgxDepartmentRepository) SaveAssignment(ctx context.Context, assignment domain.DepartmentAssignment) error {
	m := mapping.ToModelDepartmentAssignment(assignment)
	query := fmt.Sprintf(`
		INSERT INTO department_assignments (%s)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9);
	`, assignmentColumns)
	_, err := r.Pool.Exec(ctx, query,
		m.AssignmentID, m.EmployeeID, m.DepartmentID, m.Role, m.CanEvaluate,
		m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" { // Unique violation
			return apperrors.ErrDuplicate
		}
		return fmt.Errorf("failed to save assignment: %w", err)
	}
	return nil
}

// FindAssignment retrieves the assignment of an employee to a department.
func (r *PgxDepartmentRepository) FindAssignment(ctx context.Context, employeeID, departmentID string) (*domain.DepartmentAssignment, error) {
	query := fmt.Sprintf(`SELECT %s FROM department_assignments WHERE employee_id = $1 AND department_id = $2;`, assignmentColumns)
	m, err := scanAssignmentRow(r.Pool.QueryRow(ctx, query, employeeID, departmentID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find assignment: %w", err)
	}
	d := mapping.ToDomainDepartmentAssignment(*m)
	return &d, nil
}

// ListAssignmentsByDepartment retrieves all assignments to a department.
func (r *PgxDepartmentRepository) ListAssignmentsByDepartment(ctx context.Context, departmentID string) ([]domain.DepartmentAssignment, error) {
	query := fmt.Sprintf(`SELECT %s FROM department_assignments WHERE department_id = $1;`, assignmentColumns)
	return r.queryAssignments(ctx, query, departmentID)
}

// ListAssignmentsByEmployee retrieves all assignments held by an employee.
func (r *PgxDepartmentRepository) ListAssignmentsByEmployee(ctx context.Context, employeeID string) ([]domain.DepartmentAssignment, error) {
	query := fmt.Sprintf(`SELECT %s FROM department_assignments WHERE employee_id = $1;`, assignmentColumns)
	return r.queryAssignments(ctx, query, employeeID)
}

func (r *PgxDepartmentRepository) queryAssignments(ctx context.Context, query string, arg any) ([]domain.DepartmentAssignment, error) {
	rows, err := r.Pool.Query(ctx, query, arg)
	if err != nil {
		return nil, fmt.Errorf("failed to list assignments: %w", err)
	}
	defer rows.Close()

	var list []models.DepartmentAssignment
	for rows.Next() {
		m, err := scanAssignmentRow(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan assignment row: %w", err)
		}
		list = append(list, *m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating assignment rows: %w", err)
	}
	return mapping.ToDomainDepartmentAssignmentSlice(list), nil
}

// ListEvaluatorIDs retrieves the employee IDs assigned to a department with
// evaluation rights.
func (r *PgxDepartmentRepository) ListEvaluatorIDs(ctx context.Context, departmentID string) ([]string, error) {
	query := `SELECT employee_id FROM department_assignments WHERE department_id = $1 AND can_evaluate;`
	rows, err := r.Pool.Query(ctx, query, departmentID)
	if err != nil {
		return nil, fmt.Errorf("failed to list evaluator IDs: %w", err)
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("failed to scan evaluator ID: %w", err)
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating evaluator IDs: %w", err)
	}
	return ids, nil
}

// UpdateAssignment updates an existing assignment's role or evaluation flag.
func (r *PgxDepartmentRepository) UpdateAssignment(ctx context.Context, assignment domain.DepartmentAssignment) error {
	m := mapping.ToModelDepartmentAssignment(assignment)
	query := `
		UPDATE department_assignments
		SET role = $2, can_evaluate = $3, last_updated_at = $4, last_updated_by = $5
		WHERE assignment_id = $1;
	`
	tag, err := r.Pool.Exec(ctx, query, m.AssignmentID, m.Role, m.CanEvaluate, m.LastUpdatedAt, m.LastUpdatedBy)
	if err != nil {
		return fmt.Errorf("failed to update assignment: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// DeleteAssignment removes an employee's assignment to a department.
func (r *PgxDepartmentRepository) DeleteAssignment(ctx context.Context, employeeID, departmentID string) error {
	query := `DELETE FROM department_assignments WHERE employee_id = $1 AND department_id = $2;`
	tag, err := r.Pool.Exec(ctx, query, employeeID, departmentID)
	if err != nil {
		return fmt.Errorf("failed to delete assignment: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
