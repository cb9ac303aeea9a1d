package services

import (
	portsrepo "github.com/workpulse/hr_management_app/internal/core/ports/repositories"
	portssvc "github.com/workpulse/hr_management_app/internal/core/ports/services"
	"github.com/workpulse/hr_management_app/internal/platform/config"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider, notifier portssvc.Notifier) *portssvc.ServiceContainer {
	// Create the container structure first
	container := &portssvc.ServiceContainer{}

	// Initialize the policy service first since other services depend on it
	container.Policy = NewPolicyService(repos.EmployeeRepo, repos.DepartmentRepo)

	container.Credit = NewCreditService(repos.CreditRepo, container.Policy, cfg)
	container.Employee = NewEmployeeService(repos.EmployeeRepo, repos.DepartmentRepo)
	container.Department = NewDepartmentService(repos.DepartmentRepo, repos.EmployeeRepo)
	container.Notification = NewNotificationService(repos.NotificationRepo)

	container.Request = NewRequestService(
		repos.RequestRepo,
		repos.CreditRepo,
		repos.EmployeeRepo,
		repos.DepartmentRepo,
		container.Policy,
		notifier,
		cfg,
	)

	// Initialize token issuance and login on top of the employee service
	tokenSvc := NewTokenService(cfg)
	container.Auth = NewAuthService(container.Employee, tokenSvc)

	return container
}
