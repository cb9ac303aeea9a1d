package mapping

import (
	"github.com/workpulse/hr_management_app/internal/core/domain"
	"github.com/workpulse/hr_management_app/internal/models"
)

// ToModelNotification converts a domain Notification to a model Notification.
func ToModelNotification(d domain.Notification) models.Notification {
	return models.Notification{
		NotificationID: d.NotificationID,
		RecipientID:    d.RecipientID,
		Kind:           string(d.Kind),
		RequestID:      d.RequestID,
		EmployeeID:     d.EmployeeID,
		Title:          d.Title,
		Body:           d.Body,
		IsRead:         d.IsRead,
		CreatedAt:      d.CreatedAt,
	}
}

// ToDomainNotification converts a model Notification to a domain Notification.
func ToDomainNotification(m models.Notification) domain.Notification {
	return domain.Notification{
		NotificationID: m.NotificationID,
		RecipientID:    m.RecipientID,
		Kind:           domain.EventKind(m.Kind),
		RequestID:      m.RequestID,
		EmployeeID:     m.EmployeeID,
		Title:          m.Title,
		Body:           m.Body,
		IsRead:         m.IsRead,
		CreatedAt:      m.CreatedAt,
	}
}

// ToDomainNotificationSlice converts model notifications to domain notifications.
func ToDomainNotificationSlice(ms []models.Notification) []domain.Notification {
	ds := make([]domain.Notification, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainNotification(m)
	}
	return ds
}
