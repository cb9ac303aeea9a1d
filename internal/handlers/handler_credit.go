package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/workpulse/hr_management_app/internal/core/domain"
	portssvc "github.com/workpulse/hr_management_app/internal/core/ports/services"
	"github.com/workpulse/hr_management_app/internal/dto"
	"github.com/workpulse/hr_management_app/internal/middleware"
)

// creditHandler handles HTTP requests for entitlement credit accounts.
type creditHandler struct {
	creditService portssvc.CreditSvcFacade
	policyService portssvc.PolicySvcFacade
}

// newCreditHandler creates a new creditHandler.
func newCreditHandler(cs portssvc.CreditSvcFacade, ps portssvc.PolicySvcFacade) *creditHandler {
	return &creditHandler{
		creditService: cs,
		policyService: ps,
	}
}

// registerCreditRoutes registers all credit-related routes.
func registerCreditRoutes(rg *gin.RouterGroup, creditService portssvc.CreditSvcFacade, policyService portssvc.PolicySvcFacade) {
	h := newCreditHandler(creditService, policyService)

	credits := rg.Group("/credits")
	{
		credits.GET("/:employeeID", h.listBalances)
		credits.GET("/:employeeID/:type", h.getBalance)
		credits.PUT("", h.adjustTotal) // HR/admin only
	}
}

// getBalance godoc
// @Summary Get a credit balance
// @Description Retrieves the credit account for an employee and entitlement type. Creates the account with the default allotment on first read.
// @Tags credits
// @Produce json
// @Param employeeID path string true "Employee ID"
// @Param type path string true "Entitlement type" Enums(LEAVE, ABSENCE)
// @Success 200 {object} dto.CreditAccountResponse
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 403 {object} ErrorResponse "Forbidden"
// @Security BearerAuth
// @Router /credits/{employeeID}/{type} [get]
func (h *creditHandler) getBalance(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	employeeID := c.Param("employeeID")
	entitlementType := domain.EntitlementType(c.Param("type"))

	actorID, ok := actorFromContext(c, logger)
	if !ok {
		return
	}

	if _, err := h.policyService.AuthorizeCreditView(c.Request.Context(), actorID, employeeID); err != nil {
		respondWithError(c, logger, err, "Failed to authorize balance read")
		return
	}

	account, err := h.creditService.GetBalance(c.Request.Context(), employeeID, entitlementType)
	if err != nil {
		respondWithError(c, logger, err, "Failed to retrieve credit balance")
		return
	}

	c.JSON(http.StatusOK, dto.ToCreditAccountResponse(account))
}

// listBalances godoc
// @Summary List credit balances
// @Description Retrieves all credit accounts of an employee.
// @Tags credits
// @Produce json
// @Param employeeID path string true "Employee ID"
// @Success 200 {object} dto.ListCreditAccountsResponse
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 403 {object} ErrorResponse "Forbidden"
// @Security BearerAuth
// @Router /credits/{employeeID} [get]
func (h *creditHandler) listBalances(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	employeeID := c.Param("employeeID")

	actorID, ok := actorFromContext(c, logger)
	if !ok {
		return
	}

	if _, err := h.policyService.AuthorizeCreditView(c.Request.Context(), actorID, employeeID); err != nil {
		respondWithError(c, logger, err, "Failed to authorize balance read")
		return
	}

	accounts, err := h.creditService.ListBalances(c.Request.Context(), employeeID)
	if err != nil {
		respondWithError(c, logger, err, "Failed to list credit balances")
		return
	}

	c.JSON(http.StatusOK, dto.ToListCreditAccountsResponse(accounts))
}

// adjustTotal godoc
// @Summary Adjust a credit allotment
// @Description Sets a new total allotment on an employee's credit account. Restricted to HR and admins.
// @Tags credits
// @Accept json
// @Produce json
// @Param adjustment body dto.AdjustCreditRequest true "Adjustment details"
// @Success 200 {object} dto.CreditAccountResponse
// @Failure 400 {object} ErrorResponse "Invalid input or total below used credits"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 403 {object} ErrorResponse "Forbidden"
// @Security BearerAuth
// @Router /credits [put]
func (h *creditHandler) adjustTotal(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.AdjustCreditRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Error("Failed to bind JSON for credit adjustment", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error(), Code: CodeValidation})
		return
	}

	actorID, ok := actorFromContext(c, logger)
	if !ok {
		return
	}

	logger = logger.With(slog.String("target_employee_id", req.EmployeeID), slog.String("entitlement_type", string(req.Type)))
	logger.Info("Received credit adjustment")

	account, err := h.creditService.AdjustTotal(c.Request.Context(), actorID, req)
	if err != nil {
		respondWithError(c, logger, err, "Failed to adjust credit allotment")
		return
	}

	logger.Info("Credit allotment adjusted", slog.String("total", account.TotalCredits.String()))
	c.JSON(http.StatusOK, dto.ToCreditAccountResponse(account))
}
