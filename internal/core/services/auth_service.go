package services

import (
	"context"
	"log/slog"
	"time"

	"github.com/workpulse/hr_management_app/internal/core/domain"
	portssvc "github.com/workpulse/hr_management_app/internal/core/ports/services"
	"github.com/workpulse/hr_management_app/internal/middleware"
	"github.com/workpulse/hr_management_app/internal/platform/config"
	"github.com/workpulse/hr_management_app/internal/utils"
)

// tokenService implements TokenSvcFacade for issuing JWT access tokens.
// It requires access to application configuration for secrets and expiry.
type tokenService struct {
	cfg *config.Config
}

// NewTokenService creates a new instance of tokenService.
func NewTokenService(cfg *config.Config) portssvc.TokenSvcFacade {
	return &tokenService{cfg: cfg}
}

var _ portssvc.TokenSvcFacade = (*tokenService)(nil)

// GenerateAccessToken creates a new JWT access token for the given employee.
func (s *tokenService) GenerateAccessToken(ctx context.Context, employee *domain.Employee) (string, time.Time, error) {
	expiryTime := time.Now().Add(s.cfg.JWTExpiryDuration)

	accessToken, err := utils.GenerateJWT(employee.EmployeeID, string(employee.Role), s.cfg.JWTSecret, s.cfg.JWTExpiryDuration, s.cfg.JWTIssuer)
	if err != nil {
		return "", time.Time{}, err
	}
	return accessToken, expiryTime, nil
}

// authService combines credential verification and token issuance.
type authService struct {
	employeeSvc portssvc.EmployeeAuthSvc
	tokenSvc    portssvc.TokenSvcFacade
}

// NewAuthService creates a new auth service.
func NewAuthService(employeeSvc portssvc.EmployeeAuthSvc, tokenSvc portssvc.TokenSvcFacade) portssvc.AuthSvcFacade {
	return &authService{
		employeeSvc: employeeSvc,
		tokenSvc:    tokenSvc,
	}
}

var _ portssvc.AuthSvcFacade = (*authService)(nil)

// Login verifies the credentials and returns the employee with a fresh access
// token and its expiry.
func (s *authService) Login(ctx context.Context, email, password string) (*domain.Employee, string, time.Time, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	employee, err := s.employeeSvc.AuthenticateEmployee(ctx, email, password)
	if err != nil {
		return nil, "", time.Time{}, err
	}

	token, expiresAt, err := s.tokenSvc.GenerateAccessToken(ctx, employee)
	if err != nil {
		logger.Error("Failed to generate access token", slog.String("error", err.Error()), slog.String("employee_id", employee.EmployeeID))
		return nil, "", time.Time{}, err
	}

	logger.Info("Employee logged in", slog.String("employee_id", employee.EmployeeID))
	return employee, token, expiresAt, nil
}
