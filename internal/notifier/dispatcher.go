package notifier

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"gopkg.in/gomail.v2"

	"github.com/workpulse/hr_management_app/internal/core/domain"
	portsrepo "github.com/workpulse/hr_management_app/internal/core/ports/repositories"
	portssvc "github.com/workpulse/hr_management_app/internal/core/ports/services"
	"github.com/workpulse/hr_management_app/internal/middleware"
	"github.com/workpulse/hr_management_app/internal/platform/config"
)

// Dispatcher fans a workflow event out to in-app notification rows and,
// when SMTP is configured, to email. It runs after the owning transaction
// has committed; every failure here is reported back for logging and
// otherwise ignored.
type Dispatcher struct {
	notificationRepo portsrepo.NotificationWriter
	employeeRepo     portsrepo.EmployeeReader
	cfg              *config.Config
	dialer           *gomail.Dialer
}

// NewDispatcher creates a dispatcher. Email sending stays disabled when the
// SMTP host is empty.
func NewDispatcher(notificationRepo portsrepo.NotificationWriter, employeeRepo portsrepo.EmployeeReader, cfg *config.Config) *Dispatcher {
	d := &Dispatcher{
		notificationRepo: notificationRepo,
		employeeRepo:     employeeRepo,
		cfg:              cfg,
	}
	if cfg.SMTPHost != "" {
		d.dialer = gomail.NewDialer(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUsername, cfg.SMTPPassword)
	}
	return d
}

var _ portssvc.Notifier = (*Dispatcher)(nil)

// Notify writes one notification row per recipient and sends the matching
// emails. A partial failure does not stop the remaining recipients.
func (d *Dispatcher) Notify(ctx context.Context, event domain.Event) error {
	logger := middleware.GetLoggerFromCtx(ctx)

	recipients := dedupe(event.RecipientIDs)
	if len(recipients) == 0 {
		return nil
	}

	title, body := render(event)
	now := time.Now()

	notifications := make([]domain.Notification, len(recipients))
	for i, recipientID := range recipients {
		notifications[i] = domain.Notification{
			NotificationID: uuid.NewString(),
			RecipientID:    recipientID,
			Kind:           event.Kind,
			RequestID:      event.RequestID,
			EmployeeID:     event.EmployeeID,
			Title:          title,
			Body:           body,
			CreatedAt:      now,
		}
	}

	var firstErr error
	if err := d.notificationRepo.SaveNotifications(ctx, notifications); err != nil {
		logger.Error("Failed to store notifications",
			slog.String("kind", string(event.Kind)),
			slog.String("request_id", event.RequestID),
			slog.String("error", err.Error()))
		firstErr = err
	}

	if d.dialer != nil {
		if err := d.sendEmails(ctx, recipients, title, body); err != nil && firstErr == nil {
			firstErr = err
		}
	}

	return firstErr
}

// sendEmails resolves recipient addresses and delivers one message per
// recipient over a single SMTP connection.
func (d *Dispatcher) sendEmails(ctx context.Context, recipientIDs []string, title, body string) error {
	logger := middleware.GetLoggerFromCtx(ctx)

	employees, err := d.employeeRepo.FindEmployeesByIDs(ctx, recipientIDs)
	if err != nil {
		logger.Error("Failed to resolve notification recipients", slog.String("error", err.Error()))
		return err
	}

	sender, err := d.dialer.Dial()
	if err != nil {
		logger.Error("Failed to connect to SMTP server", slog.String("error", err.Error()))
		return err
	}
	defer sender.Close()

	var firstErr error
	msg := gomail.NewMessage()
	for _, id := range recipientIDs {
		employee, ok := employees[id]
		if !ok || !employee.IsActive || employee.Email == "" {
			continue
		}
		msg.Reset()
		msg.SetHeader("From", d.cfg.SMTPFrom)
		msg.SetHeader("To", employee.Email)
		msg.SetHeader("Subject", title)
		msg.SetBody("text/plain", body)
		if err := gomail.Send(sender, msg); err != nil {
			logger.Error("Failed to send notification email",
				slog.String("recipient_id", id),
				slog.String("error", err.Error()))
			if firstErr == nil {
				firstErr = err
			}
		}
	}
	return firstErr
}

// render produces the recipient-facing title and body for an event.
func render(event domain.Event) (string, string) {
	dates := fmt.Sprintf("%s to %s",
		event.Fields.FromDate.Format("2006-01-02"),
		event.Fields.ToDate.Format("2006-01-02"))

	var title string
	switch event.Kind {
	case domain.EventRequestCreated:
		title = fmt.Sprintf("New %s request awaiting review", event.Fields.Type)
	case domain.EventRequestStageApproved:
		title = fmt.Sprintf("%s request moved forward", event.Fields.Type)
	case domain.EventRequestStageRejected:
		title = fmt.Sprintf("%s request rejected", event.Fields.Type)
	case domain.EventRequestFinalApproved:
		title = fmt.Sprintf("%s request approved", event.Fields.Type)
	default:
		title = fmt.Sprintf("%s request update", event.Fields.Type)
	}

	body := fmt.Sprintf("Request %s (%s) is now: %s.", event.RequestID, dates, event.Fields.Status)
	if event.Fields.Comments != "" {
		body += " Comments: " + event.Fields.Comments
	}
	return title, body
}

func dedupe(ids []string) []string {
	seen := make(map[string]struct{}, len(ids))
	result := make([]string, 0, len(ids))
	for _, id := range ids {
		if id == "" {
			continue
		}
		if _, ok := seen[id]; !ok {
			seen[id] = struct{}{}
			result = append(result, id)
		}
	}
	return result
}
