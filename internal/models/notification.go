package models

import "time"

// Notification represents an in-app notification row.
type Notification struct {
	NotificationID string    `db:"notification_id"`
	RecipientID    string    `db:"recipient_id"`
	Kind           string    `db:"kind"`
	RequestID      string    `db:"request_id"`
	EmployeeID     string    `db:"employee_id"`
	Title          string    `db:"title"`
	Body           string    `db:"body"`
	IsRead         bool      `db:"is_read"`
	CreatedAt      time.Time `db:"created_at"`
}
