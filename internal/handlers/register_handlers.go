package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/workpulse/hr_management_app/cmd/docs"
	"github.com/workpulse/hr_management_app/internal/apperrors"
	portssvc "github.com/workpulse/hr_management_app/internal/core/ports/services"
	"github.com/workpulse/hr_management_app/internal/middleware"
	"github.com/workpulse/hr_management_app/internal/platform/config"
)

func init() {
	// Gin's default validator does not understand decimal.Decimal, so day
	// counts need their own positivity check.
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		_ = v.RegisterValidation("decimalpos", func(fl validator.FieldLevel) bool {
			d, ok := fl.Field().Interface().(decimal.Decimal)
			return ok && d.IsPositive()
		})
	}
}

// RegisterRoutes sets up all the application routes on the Gin engine.
func RegisterRoutes(r *gin.Engine, cfg *config.Config, services *portssvc.ServiceContainer) {
	r.GET("/health", healthHandler)

	registerAuthRoutes(r, cfg, services.Auth)

	setupAPIV1Routes(r, cfg, services)

	setupSwaggerRoutes(r, cfg)
}

// setupAPIV1Routes configures the authenticated /api/v1 route group.
func setupAPIV1Routes(r *gin.Engine, cfg *config.Config, services *portssvc.ServiceContainer) {
	v1 := r.Group("/api/v1", middleware.AuthMiddleware(cfg.JWTSecret))

	RegisterRequestRoutes(v1, services.Request)
	registerCreditRoutes(v1, services.Credit, services.Policy)
	registerEmployeeRoutes(v1, services.Employee)
	registerDepartmentRoutes(v1, services.Department)
	registerNotificationRoutes(v1, services.Notification)
}

// setupSwaggerRoutes exposes the swagger UI outside production.
func setupSwaggerRoutes(r *gin.Engine, cfg *config.Config) {
	if cfg.IsProduction {
		return
	}
	docs.SwaggerInfo.BasePath = "/api/v1"
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}

// healthHandler godoc
// @Summary Health check
// @Description Reports whether the service is up.
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// ErrorResponse is the generic error response structure for handlers. Code is
// a stable machine-readable label so clients never parse the message text.
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code,omitempty"`
}

// Stable error codes carried in ErrorResponse.Code.
const (
	CodeValidation          = "VALIDATION"
	CodeUnauthorized        = "UNAUTHORIZED"
	CodeForbidden           = "FORBIDDEN"
	CodeNotFound            = "NOT_FOUND"
	CodeConflict            = "CONFLICT"
	CodeInvalidTransition   = "INVALID_TRANSITION"
	CodeInsufficientCredits = "INSUFFICIENT_CREDITS"
	CodeInternal            = "INTERNAL"
)

// respondWithError maps service errors onto HTTP statuses and writes the
// response. fallback is the message used for unrecognized errors.
func respondWithError(c *gin.Context, logger *slog.Logger, err error, fallback string) {
	var appErr *apperrors.AppError
	message := fallback
	if errors.As(err, &appErr) && appErr.Message != "" {
		message = appErr.Message
	}

	switch {
	case errors.Is(err, apperrors.ErrValidation):
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: message, Code: CodeValidation})
	case errors.Is(err, apperrors.ErrUnauthorized):
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: message, Code: CodeUnauthorized})
	case errors.Is(err, apperrors.ErrForbidden):
		c.JSON(http.StatusForbidden, ErrorResponse{Error: message, Code: CodeForbidden})
	case errors.Is(err, apperrors.ErrNotFound):
		c.JSON(http.StatusNotFound, ErrorResponse{Error: message, Code: CodeNotFound})
	case errors.Is(err, apperrors.ErrDuplicate), errors.Is(err, apperrors.ErrConflict):
		c.JSON(http.StatusConflict, ErrorResponse{Error: message, Code: CodeConflict})
	case errors.Is(err, apperrors.ErrInvalidTransition):
		c.JSON(http.StatusConflict, ErrorResponse{Error: message, Code: CodeInvalidTransition})
	case errors.Is(err, apperrors.ErrInsufficientCredits):
		c.JSON(http.StatusUnprocessableEntity, ErrorResponse{Error: message, Code: CodeInsufficientCredits})
	default:
		logger.Error("Unhandled service error", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: fallback, Code: CodeInternal})
	}
}

// actorFromContext extracts the authenticated employee ID, responding with 401
// when the auth middleware did not populate it.
func actorFromContext(c *gin.Context, logger *slog.Logger) (string, bool) {
	actorID, ok := middleware.GetEmployeeIDFromContext(c)
	if !ok {
		logger.Error("Employee ID not found in context")
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized", Code: CodeUnauthorized})
		return "", false
	}
	return actorID, true
}
