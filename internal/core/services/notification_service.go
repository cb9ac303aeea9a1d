package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/workpulse/hr_management_app/internal/core/domain"
	portsrepo "github.com/workpulse/hr_management_app/internal/core/ports/repositories"
	portssvc "github.com/workpulse/hr_management_app/internal/core/ports/services"
	"github.com/workpulse/hr_management_app/internal/middleware"
)

// notificationService exposes the stored in-app notifications to their
// recipients. Rows are produced by the dispatcher, never here.
type notificationService struct {
	notificationRepo portsrepo.NotificationRepositoryFacade
}

// NewNotificationService creates a new notification service.
func NewNotificationService(notificationRepo portsrepo.NotificationRepositoryFacade) portssvc.NotificationSvcFacade {
	return &notificationService{notificationRepo: notificationRepo}
}

var _ portssvc.NotificationSvcFacade = (*notificationService)(nil)

// ListNotifications retrieves a paginated list of the actor's notifications.
func (s *notificationService) ListNotifications(ctx context.Context, actorID string, limit int, nextToken *string) ([]domain.Notification, *string, error) {
	if limit <= 0 {
		limit = 20
	}
	notifications, next, err := s.notificationRepo.ListNotificationsByRecipient(ctx, actorID, limit, nextToken)
	if err != nil {
		middleware.GetLoggerFromCtx(ctx).Error("Failed to list notifications", slog.String("error", err.Error()))
		return nil, nil, fmt.Errorf("failed to list notifications: %w", err)
	}
	return notifications, next, nil
}

// MarkRead flags one of the actor's notifications as read. The recipient
// scoping happens in the repository, so one employee can never mark another's.
func (s *notificationService) MarkRead(ctx context.Context, notificationID string, actorID string) error {
	if err := s.notificationRepo.MarkNotificationRead(ctx, notificationID, actorID); err != nil {
		middleware.GetLoggerFromCtx(ctx).Error("Failed to mark notification read",
			slog.String("error", err.Error()),
			slog.String("notification_id", notificationID))
		return fmt.Errorf("failed to mark notification read: %w", err)
	}
	return nil
}
