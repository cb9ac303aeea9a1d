package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/workpulse/hr_management_app/internal/core/domain"
	portsrepo "github.com/workpulse/hr_management_app/internal/core/ports/repositories"
	portssvc "github.com/workpulse/hr_management_app/internal/core/ports/services"
	"github.com/workpulse/hr_management_app/internal/dto"
	"github.com/workpulse/hr_management_app/internal/middleware"
)

// requestHandler handles HTTP requests for leave and absence requests.
type requestHandler struct {
	requestService portssvc.RequestSvcFacade
}

// newRequestHandler creates a new requestHandler.
func newRequestHandler(rs portssvc.RequestSvcFacade) *requestHandler {
	return &requestHandler{
		requestService: rs,
	}
}

// RegisterRequestRoutes registers all request-related routes.
func RegisterRequestRoutes(rg *gin.RouterGroup, requestService portssvc.RequestSvcFacade) {
	h := newRequestHandler(requestService)

	requests := rg.Group("/requests")
	{
		requests.POST("", h.submitRequest)
		requests.GET("", h.listRequests)
		requests.GET("/:id", h.getRequest)
		requests.PUT("/:id", h.updateRequest)
		requests.POST("/:id/decision", h.decideRequest)
		requests.POST("/:id/override", h.overrideRequest)
	}
}

// submitRequest godoc
// @Summary Submit a leave or absence request
// @Description Creates a new request for the authenticated employee, pending supervisor approval.
// @Tags requests
// @Accept json
// @Produce json
// @Param request body dto.SubmitRequestRequest true "Request details"
// @Success 201 {object} dto.RequestResponse
// @Failure 400 {object} ErrorResponse "Invalid input"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 500 {object} ErrorResponse "Failed to submit request"
// @Security BearerAuth
// @Router /requests [post]
func (h *requestHandler) submitRequest(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.SubmitRequestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Error("Failed to bind JSON for submit request", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error(), Code: CodeValidation})
		return
	}

	actorID, ok := actorFromContext(c, logger)
	if !ok {
		return
	}

	logger = logger.With(slog.String("employee_id", actorID), slog.String("request_type", string(req.Type)))
	logger.Info("Received request submission")

	created, err := h.requestService.SubmitRequest(c.Request.Context(), actorID, req)
	if err != nil {
		logger.Error("Failed to submit request", slog.String("error", err.Error()))
		respondWithError(c, logger, err, "Failed to submit request")
		return
	}

	logger.Info("Request submitted successfully", slog.String("request_id", created.RequestID))
	c.JSON(http.StatusCreated, dto.ToRequestResponse(created))
}

// getRequest godoc
// @Summary Get a request by ID
// @Description Retrieves a request. Visible to the submitting employee, their evaluators, and HR staff.
// @Tags requests
// @Produce json
// @Param id path string true "Request ID"
// @Success 200 {object} dto.RequestResponse
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 403 {object} ErrorResponse "Forbidden"
// @Failure 404 {object} ErrorResponse "Request not found"
// @Security BearerAuth
// @Router /requests/{id} [get]
func (h *requestHandler) getRequest(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	requestID := c.Param("id")

	actorID, ok := actorFromContext(c, logger)
	if !ok {
		return
	}

	logger = logger.With(slog.String("request_id", requestID))

	request, err := h.requestService.GetRequestByID(c.Request.Context(), requestID, actorID)
	if err != nil {
		respondWithError(c, logger, err, "Failed to retrieve request")
		return
	}

	c.JSON(http.StatusOK, dto.ToRequestResponse(request))
}

// listRequests godoc
// @Summary List requests
// @Description Retrieves requests visible to the caller, with optional filters and token pagination.
// @Tags requests
// @Produce json
// @Param employeeID query string false "Filter by employee"
// @Param departmentID query string false "Filter by department"
// @Param type query string false "Filter by entitlement type" Enums(LEAVE, ABSENCE)
// @Param status query string false "Filter by overall status"
// @Param limit query int false "Limit number of results" default(20)
// @Param nextToken query string false "Pagination token from the previous page"
// @Success 200 {object} dto.ListRequestsResponse
// @Failure 400 {object} ErrorResponse "Invalid parameters"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 403 {object} ErrorResponse "Forbidden"
// @Security BearerAuth
// @Router /requests [get]
func (h *requestHandler) listRequests(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var params dto.ListRequestsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		logger.Error("Failed to bind query params for list requests", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid query parameters: " + err.Error(), Code: CodeValidation})
		return
	}

	actorID, ok := actorFromContext(c, logger)
	if !ok {
		return
	}

	filters := portsrepo.RequestListFilters{
		EmployeeID:   params.EmployeeID,
		DepartmentID: params.DepartmentID,
		Type:         domain.EntitlementType(params.Type),
		Status:       domain.OverallStatus(params.Status),
	}

	requests, nextToken, err := h.requestService.ListRequests(c.Request.Context(), actorID, filters, params.Limit, params.NextToken)
	if err != nil {
		respondWithError(c, logger, err, "Failed to list requests")
		return
	}

	c.JSON(http.StatusOK, dto.ToListRequestsResponse(requests, nextToken))
}

// updateRequest godoc
// @Summary Edit a pending request
// @Description Edits a request that is still pending supervisor approval. Only the submitting employee may edit.
// @Tags requests
// @Accept json
// @Produce json
// @Param id path string true "Request ID"
// @Param request body dto.UpdateRequestRequest true "Fields to update"
// @Success 200 {object} dto.RequestResponse
// @Failure 400 {object} ErrorResponse "Invalid input"
// @Failure 403 {object} ErrorResponse "Forbidden"
// @Failure 404 {object} ErrorResponse "Request not found"
// @Failure 409 {object} ErrorResponse "Request already past supervisor review"
// @Security BearerAuth
// @Router /requests/{id} [put]
func (h *requestHandler) updateRequest(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	requestID := c.Param("id")

	var req dto.UpdateRequestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Error("Failed to bind JSON for update request", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error(), Code: CodeValidation})
		return
	}

	actorID, ok := actorFromContext(c, logger)
	if !ok {
		return
	}

	logger = logger.With(slog.String("request_id", requestID))
	logger.Info("Received request update")

	updated, err := h.requestService.UpdateRequest(c.Request.Context(), requestID, actorID, req)
	if err != nil {
		respondWithError(c, logger, err, "Failed to update request")
		return
	}

	logger.Info("Request updated successfully")
	c.JSON(http.StatusOK, dto.ToRequestResponse(updated))
}

// decideRequest godoc
// @Summary Apply a stage decision
// @Description Approves or rejects one stage of a request. HR approval of a LEAVE request debits the employee's entitlement credits in the same transaction.
// @Tags requests
// @Accept json
// @Produce json
// @Param id path string true "Request ID"
// @Param decision body dto.DecideRequestRequest true "Stage decision"
// @Success 200 {object} dto.RequestResponse
// @Failure 400 {object} ErrorResponse "Invalid input"
// @Failure 403 {object} ErrorResponse "Actor may not decide this stage"
// @Failure 404 {object} ErrorResponse "Request not found"
// @Failure 409 {object} ErrorResponse "Stage not in an actionable state"
// @Failure 422 {object} ErrorResponse "Insufficient entitlement credits"
// @Security BearerAuth
// @Router /requests/{id}/decision [post]
func (h *requestHandler) decideRequest(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	requestID := c.Param("id")

	var req dto.DecideRequestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Error("Failed to bind JSON for decide request", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error(), Code: CodeValidation})
		return
	}

	actorID, ok := actorFromContext(c, logger)
	if !ok {
		return
	}

	logger = logger.With(
		slog.String("request_id", requestID),
		slog.String("stage", string(req.Stage)),
		slog.String("decision", string(req.Decision)),
	)
	logger.Info("Received stage decision")

	decided, err := h.requestService.DecideRequest(c.Request.Context(), requestID, actorID, req)
	if err != nil {
		logger.Warn("Stage decision failed", slog.String("error", err.Error()))
		respondWithError(c, logger, err, "Failed to apply decision")
		return
	}

	logger.Info("Stage decision applied", slog.String("overall_status", string(decided.OverallStatus())))
	c.JSON(http.StatusOK, dto.ToRequestResponse(decided))
}

// overrideRequest godoc
// @Summary Override a request status
// @Description Forces a request to a target overall status, reconciling the credit ledger. Restricted to superadmins.
// @Tags requests
// @Accept json
// @Produce json
// @Param id path string true "Request ID"
// @Param override body dto.OverrideRequestRequest true "Target status and comments"
// @Success 200 {object} dto.RequestResponse
// @Failure 400 {object} ErrorResponse "Invalid input"
// @Failure 403 {object} ErrorResponse "Forbidden"
// @Failure 404 {object} ErrorResponse "Request not found"
// @Failure 409 {object} ErrorResponse "Override not applicable"
// @Failure 422 {object} ErrorResponse "Insufficient entitlement credits"
// @Security BearerAuth
// @Router /requests/{id}/override [post]
func (h *requestHandler) overrideRequest(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	requestID := c.Param("id")

	var req dto.OverrideRequestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Error("Failed to bind JSON for override request", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error(), Code: CodeValidation})
		return
	}

	actorID, ok := actorFromContext(c, logger)
	if !ok {
		return
	}

	logger = logger.With(slog.String("request_id", requestID), slog.String("target_status", string(req.Status)))
	logger.Info("Received status override")

	overridden, err := h.requestService.OverrideRequestStatus(c.Request.Context(), requestID, actorID, req)
	if err != nil {
		logger.Warn("Status override failed", slog.String("error", err.Error()))
		respondWithError(c, logger, err, "Failed to override request status")
		return
	}

	logger.Info("Status override applied")
	c.JSON(http.StatusOK, dto.ToRequestResponse(overridden))
}
