package services

import (
	"context"

	"github.com/workpulse/hr_management_app/internal/core/domain"
)

// Notifier is the post-commit dispatch contract. Implementations receive a
// fully formed event; failures are reported back so the caller can log them,
// but they never affect the committed transition.
type Notifier interface {
	Notify(ctx context.Context, event domain.Event) error
}

// NotificationReaderSvc defines read operations for stored notifications
type NotificationReaderSvc interface {
	// ListNotifications retrieves a paginated list of the actor's notifications.
	ListNotifications(ctx context.Context, actorID string, limit int, nextToken *string) ([]domain.Notification, *string, error)
}

// NotificationWriterSvc defines state changes on stored notifications
type NotificationWriterSvc interface {
	// MarkRead flags one of the actor's notifications as read.
	MarkRead(ctx context.Context, notificationID string, actorID string) error
}

// NotificationSvcFacade combines the stored-notification service interfaces
type NotificationSvcFacade interface {
	NotificationReaderSvc
	NotificationWriterSvc
}
