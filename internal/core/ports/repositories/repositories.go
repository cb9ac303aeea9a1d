package repositories

// RepositoryProvider holds all repository interfaces needed by services.
// This makes passing dependencies to the service container constructor cleaner.
type RepositoryProvider struct {
	RequestRepo      RequestRepositoryWithTx
	CreditRepo       CreditRepositoryWithTx
	EmployeeRepo     EmployeeRepositoryFacade
	DepartmentRepo   DepartmentRepositoryFacade
	NotificationRepo NotificationRepositoryFacade
}
