package dto

import (
	"time"

	"github.com/workpulse/hr_management_app/internal/core/domain"
)

// NotificationResponse defines the data returned for a notification.
type NotificationResponse struct {
	NotificationID string    `json:"notificationID"`
	Kind           string    `json:"kind"`
	RequestID      string    `json:"requestID"`
	EmployeeID     string    `json:"employeeID"`
	Title          string    `json:"title"`
	Body           string    `json:"body"`
	IsRead         bool      `json:"isRead"`
	CreatedAt      time.Time `json:"createdAt"`
}

// ToNotificationResponse converts a domain.Notification to NotificationResponse DTO
func ToNotificationResponse(n *domain.Notification) NotificationResponse {
	return NotificationResponse{
		NotificationID: n.NotificationID,
		Kind:           string(n.Kind),
		RequestID:      n.RequestID,
		EmployeeID:     n.EmployeeID,
		Title:          n.Title,
		Body:           n.Body,
		IsRead:         n.IsRead,
		CreatedAt:      n.CreatedAt,
	}
}

// ListNotificationsParams defines query parameters for listing notifications.
type ListNotificationsParams struct {
	Limit     int     `form:"limit,default=20"`
	NextToken *string `form:"nextToken"`
}

// ListNotificationsResponse wraps the list of notifications with the next page token.
type ListNotificationsResponse struct {
	Notifications []NotificationResponse `json:"notifications"`
	NextToken     *string                `json:"nextToken,omitempty"`
}

// ToListNotificationsResponse converts domain notifications to ListNotificationsResponse DTO
func ToListNotificationsResponse(notifications []domain.Notification, nextToken *string) ListNotificationsResponse {
	res := make([]NotificationResponse, len(notifications))
	for i, n := range notifications {
		res[i] = ToNotificationResponse(&n)
	}
	return ListNotificationsResponse{
		Notifications: res,
		NextToken:     nextToken,
	}
}
