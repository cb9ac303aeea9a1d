package services_test

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"

	"github.com/workpulse/hr_management_app/internal/core/domain"
	portsrepo "github.com/workpulse/hr_management_app/internal/core/ports/repositories"
	portssvc "github.com/workpulse/hr_management_app/internal/core/ports/services"
)

// --- Mock RequestRepository ---

type MockRequestRepository struct {
	mock.Mock
}

func (m *MockRequestRepository) FindRequestByID(ctx context.Context, requestID string) (*domain.Request, error) {
	args := m.Called(ctx, requestID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Request), args.Error(1)
}

func (m *MockRequestRepository) ListRequests(ctx context.Context, filters portsrepo.RequestListFilters, limit int, nextToken *string) ([]domain.Request, *string, error) {
	args := m.Called(ctx, filters, limit, nextToken)
	if args.Get(0) == nil {
		return nil, nil, args.Error(2)
	}
	var token *string
	if args.Get(1) != nil {
		token = args.Get(1).(*string)
	}
	return args.Get(0).([]domain.Request), token, args.Error(2)
}

func (m *MockRequestRepository) SaveRequest(ctx context.Context, request domain.Request) error {
	args := m.Called(ctx, request)
	return args.Error(0)
}

func (m *MockRequestRepository) UpdateRequest(ctx context.Context, request domain.Request) error {
	args := m.Called(ctx, request)
	return args.Error(0)
}

func (m *MockRequestRepository) FindRequestByIDForUpdate(ctx context.Context, tx pgx.Tx, requestID string) (*domain.Request, error) {
	args := m.Called(ctx, tx, requestID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Request), args.Error(1)
}

func (m *MockRequestRepository) UpdateRequestInTx(ctx context.Context, tx pgx.Tx, request domain.Request) error {
	args := m.Called(ctx, tx, request)
	return args.Error(0)
}

func (m *MockRequestRepository) Begin(ctx context.Context) (pgx.Tx, error) {
	args := m.Called(ctx)
	tx, _ := args.Get(0).(pgx.Tx)
	return tx, args.Error(1)
}

func (m *MockRequestRepository) Commit(ctx context.Context, tx pgx.Tx) error {
	args := m.Called(ctx, tx)
	return args.Error(0)
}

func (m *MockRequestRepository) Rollback(ctx context.Context, tx pgx.Tx) error {
	args := m.Called(ctx, tx)
	return args.Error(0)
}

var _ portsrepo.RequestRepositoryWithTx = (*MockRequestRepository)(nil)

// --- Mock CreditRepository ---

type MockCreditRepository struct {
	mock.Mock
}

func (m *MockCreditRepository) FindCreditAccount(ctx context.Context, employeeID, periodKey string) (*domain.CreditAccount, error) {
	args := m.Called(ctx, employeeID, periodKey)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CreditAccount), args.Error(1)
}

func (m *MockCreditRepository) ListCreditAccountsByEmployee(ctx context.Context, employeeID string) ([]domain.CreditAccount, error) {
	args := m.Called(ctx, employeeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.CreditAccount), args.Error(1)
}

func (m *MockCreditRepository) SaveCreditAccount(ctx context.Context, account domain.CreditAccount) error {
	args := m.Called(ctx, account)
	return args.Error(0)
}

func (m *MockCreditRepository) UpdateCreditAccount(ctx context.Context, account domain.CreditAccount) error {
	args := m.Called(ctx, account)
	return args.Error(0)
}

func (m *MockCreditRepository) GetOrCreateCreditForUpdate(ctx context.Context, tx pgx.Tx, employeeID, periodKey string, defaultTotal decimal.Decimal, createdBy string) (*domain.CreditAccount, error) {
	args := m.Called(ctx, tx, employeeID, periodKey, defaultTotal, createdBy)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CreditAccount), args.Error(1)
}

func (m *MockCreditRepository) UpdateCreditInTx(ctx context.Context, tx pgx.Tx, account domain.CreditAccount) error {
	args := m.Called(ctx, tx, account)
	return args.Error(0)
}

func (m *MockCreditRepository) Begin(ctx context.Context) (pgx.Tx, error) {
	args := m.Called(ctx)
	tx, _ := args.Get(0).(pgx.Tx)
	return tx, args.Error(1)
}

func (m *MockCreditRepository) Commit(ctx context.Context, tx pgx.Tx) error {
	args := m.Called(ctx, tx)
	return args.Error(0)
}

func (m *MockCreditRepository) Rollback(ctx context.Context, tx pgx.Tx) error {
	args := m.Called(ctx, tx)
	return args.Error(0)
}

var _ portsrepo.CreditRepositoryWithTx = (*MockCreditRepository)(nil)

// --- Mock EmployeeRepository ---

type MockEmployeeRepository struct {
	mock.Mock
}

func (m *MockEmployeeRepository) FindEmployeeByID(ctx context.Context, employeeID string) (*domain.Employee, error) {
	args := m.Called(ctx, employeeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Employee), args.Error(1)
}

func (m *MockEmployeeRepository) FindEmployeeByEmail(ctx context.Context, email string) (*domain.Employee, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Employee), args.Error(1)
}

func (m *MockEmployeeRepository) FindEmployeesByIDs(ctx context.Context, employeeIDs []string) (map[string]domain.Employee, error) {
	args := m.Called(ctx, employeeIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]domain.Employee), args.Error(1)
}

func (m *MockEmployeeRepository) FindEmployeePasswordHash(ctx context.Context, employeeID string) (string, error) {
	args := m.Called(ctx, employeeID)
	return args.String(0), args.Error(1)
}

func (m *MockEmployeeRepository) ListEmployees(ctx context.Context, departmentID string, limit int, offset int) ([]domain.Employee, error) {
	args := m.Called(ctx, departmentID, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Employee), args.Error(1)
}

func (m *MockEmployeeRepository) ListEmployeesByRole(ctx context.Context, role domain.Role) ([]domain.Employee, error) {
	args := m.Called(ctx, role)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Employee), args.Error(1)
}

func (m *MockEmployeeRepository) SaveEmployee(ctx context.Context, employee domain.Employee, passwordHash string) error {
	args := m.Called(ctx, employee, passwordHash)
	return args.Error(0)
}

func (m *MockEmployeeRepository) UpdateEmployee(ctx context.Context, employee domain.Employee) error {
	args := m.Called(ctx, employee)
	return args.Error(0)
}

func (m *MockEmployeeRepository) DeactivateEmployee(ctx context.Context, employeeID string, actorID string, now time.Time) error {
	args := m.Called(ctx, employeeID, actorID, now)
	return args.Error(0)
}

var _ portsrepo.EmployeeRepositoryFacade = (*MockEmployeeRepository)(nil)

// --- Mock DepartmentRepository ---

type MockDepartmentRepository struct {
	mock.Mock
}

func (m *MockDepartmentRepository) FindDepartmentByID(ctx context.Context, departmentID string) (*domain.Department, error) {
	args := m.Called(ctx, departmentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Department), args.Error(1)
}

func (m *MockDepartmentRepository) ListDepartments(ctx context.Context, limit int, offset int) ([]domain.Department, error) {
	args := m.Called(ctx, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Department), args.Error(1)
}

func (m *MockDepartmentRepository) SaveDepartment(ctx context.Context, department domain.Department) error {
	args := m.Called(ctx, department)
	return args.Error(0)
}

func (m *MockDepartmentRepository) UpdateDepartment(ctx context.Context, department domain.Department) error {
	args := m.Called(ctx, department)
	return args.Error(0)
}

func (m *MockDepartmentRepository) FindAssignment(ctx context.Context, employeeID, departmentID string) (*domain.DepartmentAssignment, error) {
	args := m.Called(ctx, employeeID, departmentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.DepartmentAssignment), args.Error(1)
}

func (m *MockDepartmentRepository) ListAssignmentsByDepartment(ctx context.Context, departmentID string) ([]domain.DepartmentAssignment, error) {
	args := m.Called(ctx, departmentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.DepartmentAssignment), args.Error(1)
}

func (m *MockDepartmentRepository) ListAssignmentsByEmployee(ctx context.Context, employeeID string) ([]domain.DepartmentAssignment, error) {
	args := m.Called(ctx, employeeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.DepartmentAssignment), args.Error(1)
}

func (m *MockDepartmentRepository) ListEvaluatorIDs(ctx context.Context, departmentID string) ([]string, error) {
	args := m.Called(ctx, departmentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

func (m *MockDepartmentRepository) SaveAssignment(ctx context.Context, assignment domain.DepartmentAssignment) error {
	args := m.Called(ctx, assignment)
	return args.Error(0)
}

func (m *MockDepartmentRepository) UpdateAssignment(ctx context.Context, assignment domain.DepartmentAssignment) error {
	args := m.Called(ctx, assignment)
	return args.Error(0)
}

func (m *MockDepartmentRepository) DeleteAssignment(ctx context.Context, employeeID, departmentID string) error {
	args := m.Called(ctx, employeeID, departmentID)
	return args.Error(0)
}

var _ portsrepo.DepartmentRepositoryFacade = (*MockDepartmentRepository)(nil)

// --- Mock PolicyService ---

type MockPolicyService struct {
	mock.Mock
}

func (m *MockPolicyService) AuthorizeStageAction(ctx context.Context, actorID string, request domain.Request, stage domain.Stage) (*domain.Employee, error) {
	args := m.Called(ctx, actorID, request, stage)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Employee), args.Error(1)
}

func (m *MockPolicyService) AuthorizeOverride(ctx context.Context, actorID string) (*domain.Employee, error) {
	args := m.Called(ctx, actorID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Employee), args.Error(1)
}

func (m *MockPolicyService) AuthorizeRequestView(ctx context.Context, actorID string, request domain.Request) (*domain.Employee, error) {
	args := m.Called(ctx, actorID, request)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Employee), args.Error(1)
}

func (m *MockPolicyService) AuthorizeCreditView(ctx context.Context, actorID string, subjectEmployeeID string) (*domain.Employee, error) {
	args := m.Called(ctx, actorID, subjectEmployeeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Employee), args.Error(1)
}

func (m *MockPolicyService) AuthorizeCreditAdjust(ctx context.Context, actorID string) (*domain.Employee, error) {
	args := m.Called(ctx, actorID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Employee), args.Error(1)
}

var _ portssvc.PolicySvcFacade = (*MockPolicyService)(nil)

// --- Mock Notifier ---

type MockNotifier struct {
	mock.Mock
}

func (m *MockNotifier) Notify(ctx context.Context, event domain.Event) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}

var _ portssvc.Notifier = (*MockNotifier)(nil)
