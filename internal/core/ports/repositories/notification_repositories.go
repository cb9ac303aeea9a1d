package repositories

import (
	"context"

	"github.com/workpulse/hr_management_app/internal/core/domain"
)

// NotificationReader defines read operations for notification data
type NotificationReader interface {
	// ListNotificationsByRecipient retrieves a paginated list of a recipient's
	// notifications using token-based pagination, newest first.
	// It returns the notifications, a token for the next page, and an error.
	ListNotificationsByRecipient(ctx context.Context, recipientID string, limit int, nextToken *string) ([]domain.Notification, *string, error)
}

// NotificationWriter defines write operations for notification data
type NotificationWriter interface {
	// SaveNotifications persists a batch of notifications in one statement.
	SaveNotifications(ctx context.Context, notifications []domain.Notification) error

	// MarkNotificationRead flags a notification as read by its recipient.
	MarkNotificationRead(ctx context.Context, notificationID, recipientID string) error
}

// NotificationRepositoryFacade combines all notification-related repository interfaces
type NotificationRepositoryFacade interface {
	NotificationReader
	NotificationWriter
}
