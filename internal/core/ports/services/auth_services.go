package services

import (
	"context"
	"time"

	"github.com/workpulse/hr_management_app/internal/core/domain"
)

// TokenSvcFacade defines the interface for token management services.
type TokenSvcFacade interface {
	// GenerateAccessToken issues a signed access token for an employee.
	GenerateAccessToken(ctx context.Context, employee *domain.Employee) (string, time.Time, error)
}

// AuthSvcFacade combines credential verification and token issuance.
type AuthSvcFacade interface {
	// Login verifies the credentials and returns the employee with a fresh
	// access token and its expiry.
	Login(ctx context.Context, email, password string) (*domain.Employee, string, time.Time, error)
}
