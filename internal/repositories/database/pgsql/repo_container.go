package pgsql

import (
	"github.com/jackc/pgx/v5/pgxpool"

	portsrepo "github.com/workpulse/hr_management_app/internal/core/ports/repositories"
)

func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	requestRepo := newPgxRequestRepository(dbPool)
	creditRepo := newPgxCreditRepository(dbPool)
	employeeRepo := newPgxEmployeeRepository(dbPool)
	departmentRepo := newPgxDepartmentRepository(dbPool)
	notificationRepo := newPgxNotificationRepository(dbPool)

	return portsrepo.RepositoryProvider{
		RequestRepo:      requestRepo,
		CreditRepo:       creditRepo,
		EmployeeRepo:     employeeRepo,
		DepartmentRepo:   departmentRepo,
		NotificationRepo: notificationRepo,
	}
}
