package domain

import "time"

// Notification is an in-app notification produced from a workflow event.
// Rows are written best effort after the owning transaction commits.
type Notification struct {
	NotificationID string    `json:"notificationID"` // Primary Key (UUID)
	RecipientID    string    `json:"recipientID"`
	Kind           EventKind `json:"kind"`
	RequestID      string    `json:"requestID"`
	EmployeeID     string    `json:"employeeID"`
	Title          string    `json:"title"`
	Body           string    `json:"body"`
	IsRead         bool      `json:"isRead"`
	CreatedAt      time.Time `json:"createdAt"`
}
