package pgsql

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/workpulse/hr_management_app/internal/apperrors"
	"github.com/workpulse/hr_management_app/internal/core/domain"
	portsrepo "github.com/workpulse/hr_management_app/internal/core/ports/repositories"
	"github.com/workpulse/hr_management_app/internal/models"
	"github.com/workpulse/hr_management_app/internal/utils/mapping"
	"github.com/workpulse/hr_management_app/internal/utils/pagination"
)

const notificationColumns = `notification_id, recipient_id, kind, request_id, employee_id, title, body, is_read, created_at`

type PgxNotificationRepository struct {
	BaseRepository
}

func newPgxNotificationRepository(db *pgxpool.Pool) portsrepo.NotificationRepositoryFacade {
	return &PgxNotificationRepository{BaseRepository{Pool: db}}
}

// Ensure PgxNotificationRepository implements portsrepo.NotificationRepositoryFacade
var _ portsrepo.NotificationRepositoryFacade = (*PgxNotificationRepository)(nil)

// SaveNotifications persists a batch of notifications in one round trip.
func (r *PgxNotificationRepository) SaveNotifications(ctx context.Context, notifications []domain.Notification) error {
	if len(notifications) == 0 {
		return nil
	}
	batch := &pgx.Batch{}
	query := fmt.Sprintf(`
		INSERT INTO notifications (%s)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9);
	`, notificationColumns)
	for _, n := range notifications {
		m := mapping.ToModelNotification(n)
		batch.Queue(query,
			m.NotificationID, m.RecipientID, m.Kind, m.RequestID, m.EmployeeID,
			m.Title, m.Body, m.IsRead, m.CreatedAt,
		)
	}
	results := r.Pool.SendBatch(ctx, batch)
	defer results.Close()
	for range notifications {
		if _, err := results.Exec(); err != nil {
			return fmt.Errorf("failed to save notifications: %w", err)
		}
	}
	return nil
}

// ListNotificationsByRecipient retrieves a paginated list of a recipient's
// notifications, newest first.
func (r *PgxNotificationRepository) ListNotificationsByRecipient(ctx context.Context, recipientID string, limit int, nextToken *string) ([]domain.Notification, *string, error) {
	query := fmt.Sprintf(`SELECT %s FROM notifications WHERE recipient_id = $1`, notificationColumns)
	args := []any{recipientID}
	argPos := 2

	if nextToken != nil && *nextToken != "" {
		lastCreatedAt, lastID, decodeErr := pagination.DecodeToken(*nextToken)
		if decodeErr != nil {
			return nil, nil, apperrors.NewAppError(400, "invalid pagination token", apperrors.ErrValidation)
		}
		query += fmt.Sprintf(" AND (created_at, notification_id) < ($%d, $%d)", argPos, argPos+1)
		args = append(args, lastCreatedAt, lastID)
		argPos += 2
	}

	// Fetch one extra row to detect whether another page exists.
	query += fmt.Sprintf(" ORDER BY created_at DESC, notification_id DESC LIMIT $%d;", argPos)
	args = append(args, limit+1)

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to list notifications: %w", err)
	}
	defer rows.Close()

	var list []models.Notification
	for rows.Next() {
		var m models.Notification
		err := rows.Scan(
			&m.NotificationID,
			&m.RecipientID,
			&m.Kind,
			&m.RequestID,
			&m.EmployeeID,
			&m.Title,
			&m.Body,
			&m.IsRead,
			&m.CreatedAt,
		)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to scan notification row: %w", err)
		}
		list = append(list, m)
	}
	if err := rows.Err(); err != nil {
		return nil, nil, fmt.Errorf("error iterating notification rows: %w", err)
	}

	var newToken *string
	if len(list) > limit {
		list = list[:limit]
		last := list[len(list)-1]
		token := pagination.EncodeToken(last.CreatedAt, last.NotificationID)
		newToken = &token
	}

	return mapping.ToDomainNotificationSlice(list), newToken, nil
}

// MarkNotificationRead flags a notification as read by its recipient. The
// recipient predicate keeps one employee from touching another's rows.
func (r *PgxNotificationRepository) MarkNotificationRead(ctx context.Context, notificationID, recipientID string) error {
	query := `UPDATE notifications SET is_read = TRUE WHERE notification_id = $1 AND recipient_id = $2;`
	tag, err := r.Pool.Exec(ctx, query, notificationID, recipientID)
	if err != nil {
		return fmt.Errorf("failed to mark notification read: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
