package pgsql

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/workpulse/hr_management_app/internal/apperrors"
	"github.com/workpulse/hr_management_app/internal/core/domain"
	portsrepo "github.com/workpulse/hr_management_app/internal/core/ports/repositories"
	"github.com/workpulse/hr_management_app/internal/models"
	"github.com/workpulse/hr_management_app/internal/utils/mapping"
	"github.com/workpulse/hr_management_app/internal/utils/pagination"
)

const requestColumns = `request_id, employee_id, department_id, request_type, from_date, to_date, days, reason, submitted_at,
	supervisor_status, supervisor_actor_id, supervisor_comments, supervisor_at,
	hr_status, hr_actor_id, hr_comments, hr_at,
	created_at, created_by, last_updated_at, last_updated_by`

type PgxRequestRepository struct {
	BaseRepository
}

func newPgxRequestRepository(db *pgxpool.Pool) portsrepo.RequestRepositoryWithTx {
	return &PgxRequestRepository{BaseRepository{Pool: db}}
}

// Ensure PgxRequestRepository implements portsrepo.RequestRepositoryWithTx
var _ portsrepo.RequestRepositoryWithTx = (*PgxRequestRepository)(nil)

func scanRequestRow(row pgx.Row) (*models.Request, error) {
	var m models.Request
	err := row.Scan(
		&m.RequestID,
		&m.EmployeeID,
		&m.DepartmentID,
		&m.Type,
		&m.FromDate,
		&m.ToDate,
		&m.Days,
		&m.Reason,
		&m.SubmittedAt,
		&m.SupervisorStatus,
		&m.SupervisorActorID,
		&m.SupervisorComments,
		&m.SupervisorAt,
		&m.HRStatus,
		&m.HRActorID,
		&m.HRComments,
		&m.HRAt,
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

// SaveRequest persists a newly submitted request.
func (r *PgxRequestRepository) SaveRequest(ctx context.Context, request domain.Request) error {
	m := mapping.ToModelRequest(request)
	query := fmt.Sprintf(`
		INSERT INTO requests (%s)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20, $21);
	`, requestColumns)
	_, err := r.Pool.Exec(ctx, query,
		m.RequestID, m.EmployeeID, m.DepartmentID, m.Type, m.FromDate, m.ToDate, m.Days, m.Reason, m.SubmittedAt,
		m.SupervisorStatus, m.SupervisorActorID, m.SupervisorComments, m.SupervisorAt,
		m.HRStatus, m.HRActorID, m.HRComments, m.HRAt,
		m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to save request: %w", err)
	}
	return nil
}

// FindRequestByID retrieves a specific request by its unique identifier.
func (r *PgxRequestRepository) FindRequestByID(ctx context.Context, requestID string) (*domain.Request, error) {
	query := fmt.Sprintf(`SELECT %s FROM requests WHERE request_id = $1;`, requestColumns)
	m, err := scanRequestRow(r.Pool.QueryRow(ctx, query, requestID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find request by ID: %w", err)
	}
	d := mapping.ToDomainRequest(*m)
	return &d, nil
}

// FindRequestByIDForUpdate selects a request and locks its row for update.
// Must be called within a transaction.
func (r *PgxRequestRepository) FindRequestByIDForUpdate(ctx context.Context, tx pgx.Tx, requestID string) (*domain.Request, error) {
	query := fmt.Sprintf(`SELECT %s FROM requests WHERE request_id = $1 FOR UPDATE;`, requestColumns)
	m, err := scanRequestRow(tx.QueryRow(ctx, query, requestID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to lock request row: %w", err)
	}
	d := mapping.ToDomainRequest(*m)
	return &d, nil
}

// UpdateRequest updates the mutable fields of a pending request.
func (r *PgxRequestRepository) UpdateRequest(ctx context.Context, request domain.Request) error {
	m := mapping.ToModelRequest(request)
	query := `
		UPDATE requests
		SET from_date = $2, to_date = $3, days = $4, reason = $5,
		    last_updated_at = $6, last_updated_by = $7
		WHERE request_id = $1;
	`
	tag, err := r.Pool.Exec(ctx, query,
		m.RequestID, m.FromDate, m.ToDate, m.Days, m.Reason, m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to update request: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// UpdateRequestInTx updates a request's stage records within a transaction.
func (r *PgxRequestRepository) UpdateRequestInTx(ctx context.Context, tx pgx.Tx, request domain.Request) error {
	m := mapping.ToModelRequest(request)
	query := `
		UPDATE requests
		SET supervisor_status = $2, supervisor_actor_id = $3, supervisor_comments = $4, supervisor_at = $5,
		    hr_status = $6, hr_actor_id = $7, hr_comments = $8, hr_at = $9,
		    last_updated_at = $10, last_updated_by = $11
		WHERE request_id = $1;
	`
	tag, err := tx.Exec(ctx, query,
		m.RequestID,
		m.SupervisorStatus, m.SupervisorActorID, m.SupervisorComments, m.SupervisorAt,
		m.HRStatus, m.HRActorID, m.HRComments, m.HRAt,
		m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to update request in tx: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// statusConditions maps a derived overall status onto the stored stage columns.
func statusConditions(status domain.OverallStatus) string {
	switch status {
	case domain.StatusPendingSupervisor:
		return "supervisor_status = 'PENDING'"
	case domain.StatusPendingHR:
		return "supervisor_status = 'APPROVED' AND hr_status = 'PENDING'"
	case domain.StatusApproved:
		return "supervisor_status = 'APPROVED' AND hr_status = 'APPROVED'"
	case domain.StatusRejectedBySupervisor:
		return "supervisor_status = 'REJECTED'"
	case domain.StatusRejectedByHR:
		return "hr_status = 'REJECTED'"
	}
	return ""
}

// ListRequests retrieves a paginated list of requests matching the filters,
// newest submission first. The token encodes the last row's submission time
// and ID so pages stay stable under concurrent inserts.
func (r *PgxRequestRepository) ListRequests(ctx context.Context, filters portsrepo.RequestListFilters, limit int, nextToken *string) ([]domain.Request, *string, error) {
	conditions := []string{}
	args := []any{}
	argPos := 1

	addCondition := func(cond string, value any) {
		conditions = append(conditions, fmt.Sprintf(cond, argPos))
		args = append(args, value)
		argPos++
	}

	if filters.EmployeeID != "" {
		addCondition("employee_id = $%d", filters.EmployeeID)
	}
	if filters.DepartmentID != "" {
		addCondition("department_id = $%d", filters.DepartmentID)
	}
	if filters.Type != "" {
		addCondition("request_type = $%d", string(filters.Type))
	}
	if filters.Status != "" {
		cond := statusConditions(filters.Status)
		if cond == "" {
			return nil, nil, apperrors.NewAppError(400, "unknown status filter", apperrors.ErrValidation)
		}
		conditions = append(conditions, cond)
	}

	if nextToken != nil && *nextToken != "" {
		lastSubmittedAt, lastID, decodeErr := pagination.DecodeToken(*nextToken)
		if decodeErr != nil {
			return nil, nil, apperrors.NewAppError(400, "invalid pagination token", apperrors.ErrValidation)
		}
		conditions = append(conditions, fmt.Sprintf("(submitted_at, request_id) < ($%d, $%d)", argPos, argPos+1))
		args = append(args, lastSubmittedAt, lastID)
		argPos += 2
	}

	query := fmt.Sprintf(`SELECT %s FROM requests`, requestColumns)
	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}
	// Fetch one extra row to detect whether another page exists.
	query += fmt.Sprintf(" ORDER BY submitted_at DESC, request_id DESC LIMIT $%d;", argPos)
	args = append(args, limit+1)

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to list requests: %w", err)
	}
	defer rows.Close()

	var modelRequests []models.Request
	for rows.Next() {
		m, err := scanRequestRow(rows)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to scan request row: %w", err)
		}
		modelRequests = append(modelRequests, *m)
	}
	if err := rows.Err(); err != nil {
		return nil, nil, fmt.Errorf("error iterating request rows: %w", err)
	}

	var newToken *string
	if len(modelRequests) > limit {
		modelRequests = modelRequests[:limit]
		last := modelRequests[len(modelRequests)-1]
		token := pagination.EncodeToken(last.SubmittedAt, last.RequestID)
		newToken = &token
	}

	return mapping.ToDomainRequestSlice(modelRequests), newToken, nil
}
