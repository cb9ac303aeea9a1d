package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/workpulse/hr_management_app/internal/core/ports/services"
	"github.com/workpulse/hr_management_app/internal/dto"
	"github.com/workpulse/hr_management_app/internal/middleware"
)

// departmentHandler handles HTTP requests related to departments and
// evaluator assignments.
type departmentHandler struct {
	departmentService portssvc.DepartmentSvcFacade
}

// newDepartmentHandler creates a new departmentHandler.
func newDepartmentHandler(ds portssvc.DepartmentSvcFacade) *departmentHandler {
	return &departmentHandler{
		departmentService: ds,
	}
}

// registerDepartmentRoutes registers all department-related routes.
func registerDepartmentRoutes(rg *gin.RouterGroup, departmentService portssvc.DepartmentSvcFacade) {
	h := newDepartmentHandler(departmentService)

	departments := rg.Group("/departments")
	{
		departments.POST("", h.createDepartment) // Admin only
		departments.GET("", h.listDepartments)
		departments.GET("/:id", h.getDepartment)
		departments.PUT("/:id", h.updateDepartment) // Admin only
		departments.GET("/:id/assignments", h.listAssignments)
		departments.POST("/:id/assignments", h.assignEmployee)                 // Admin only
		departments.DELETE("/:id/assignments/:employeeID", h.unassignEmployee) // Admin only
	}
}

// createDepartment godoc
// @Summary Create a department
// @Description Creates a new department. Restricted to HR and admins.
// @Tags departments
// @Accept json
// @Produce json
// @Param department body dto.CreateDepartmentRequest true "Department details"
// @Success 201 {object} dto.DepartmentResponse
// @Failure 400 {object} ErrorResponse "Invalid input"
// @Failure 403 {object} ErrorResponse "Forbidden"
// @Security BearerAuth
// @Router /departments [post]
func (h *departmentHandler) createDepartment(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateDepartmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Error("Failed to bind JSON for create department", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error(), Code: CodeValidation})
		return
	}

	actorID, ok := actorFromContext(c, logger)
	if !ok {
		return
	}

	logger.Info("Received request to create department", slog.String("name", req.Name))

	created, err := h.departmentService.CreateDepartment(c.Request.Context(), actorID, req)
	if err != nil {
		respondWithError(c, logger, err, "Failed to create department")
		return
	}

	logger.Info("Department created successfully", slog.String("department_id", created.DepartmentID))
	c.JSON(http.StatusCreated, dto.ToDepartmentResponse(created))
}

// getDepartment godoc
// @Summary Get a department by ID
// @Description Retrieves details for a specific department.
// @Tags departments
// @Produce json
// @Param id path string true "Department ID"
// @Success 200 {object} dto.DepartmentResponse
// @Failure 404 {object} ErrorResponse "Department not found"
// @Security BearerAuth
// @Router /departments/{id} [get]
func (h *departmentHandler) getDepartment(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	departmentID := c.Param("id")

	if _, ok := actorFromContext(c, logger); !ok {
		return
	}

	department, err := h.departmentService.GetDepartmentByID(c.Request.Context(), departmentID)
	if err != nil {
		respondWithError(c, logger, err, "Failed to retrieve department")
		return
	}

	c.JSON(http.StatusOK, dto.ToDepartmentResponse(department))
}

// listDepartments godoc
// @Summary List departments
// @Description Retrieves a paginated list of departments.
// @Tags departments
// @Produce json
// @Param limit query int false "Limit number of results" default(20)
// @Param offset query int false "Offset for pagination" default(0)
// @Success 200 {object} dto.ListDepartmentsResponse
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Security BearerAuth
// @Router /departments [get]
func (h *departmentHandler) listDepartments(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var params dto.ListDepartmentsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		logger.Error("Failed to bind query params for list departments", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid query parameters: " + err.Error(), Code: CodeValidation})
		return
	}

	if _, ok := actorFromContext(c, logger); !ok {
		return
	}

	departments, err := h.departmentService.ListDepartments(c.Request.Context(), params.Limit, params.Offset)
	if err != nil {
		respondWithError(c, logger, err, "Failed to list departments")
		return
	}

	c.JSON(http.StatusOK, dto.ToListDepartmentsResponse(departments))
}

// updateDepartment godoc
// @Summary Update a department
// @Description Updates a department's details. Restricted to HR and admins.
// @Tags departments
// @Accept json
// @Produce json
// @Param id path string true "Department ID"
// @Param department body dto.UpdateDepartmentRequest true "Fields to update"
// @Success 200 {object} dto.DepartmentResponse
// @Failure 400 {object} ErrorResponse "Invalid input"
// @Failure 403 {object} ErrorResponse "Forbidden"
// @Failure 404 {object} ErrorResponse "Department not found"
// @Security BearerAuth
// @Router /departments/{id} [put]
func (h *departmentHandler) updateDepartment(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	departmentID := c.Param("id")

	var req dto.UpdateDepartmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Error("Failed to bind JSON for update department", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error(), Code: CodeValidation})
		return
	}

	actorID, ok := actorFromContext(c, logger)
	if !ok {
		return
	}

	logger = logger.With(slog.String("department_id", departmentID))
	logger.Info("Received request to update department")

	updated, err := h.departmentService.UpdateDepartment(c.Request.Context(), departmentID, actorID, req)
	if err != nil {
		respondWithError(c, logger, err, "Failed to update department")
		return
	}

	logger.Info("Department updated successfully")
	c.JSON(http.StatusOK, dto.ToDepartmentResponse(updated))
}

// listAssignments godoc
// @Summary List department assignments
// @Description Retrieves all evaluator and member assignments of a department.
// @Tags departments
// @Produce json
// @Param id path string true "Department ID"
// @Success 200 {object} dto.ListAssignmentsResponse
// @Failure 404 {object} ErrorResponse "Department not found"
// @Security BearerAuth
// @Router /departments/{id}/assignments [get]
func (h *departmentHandler) listAssignments(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	departmentID := c.Param("id")

	if _, ok := actorFromContext(c, logger); !ok {
		return
	}

	assignments, err := h.departmentService.ListAssignments(c.Request.Context(), departmentID)
	if err != nil {
		respondWithError(c, logger, err, "Failed to list assignments")
		return
	}

	c.JSON(http.StatusOK, dto.ToListAssignmentsResponse(assignments))
}

// assignEmployee godoc
// @Summary Assign an employee to a department
// @Description Creates an assignment linking an employee to a department, optionally as an evaluator. Restricted to HR and admins.
// @Tags departments
// @Accept json
// @Produce json
// @Param id path string true "Department ID"
// @Param assignment body dto.AssignEmployeeRequest true "Assignment details"
// @Success 201 {object} dto.AssignmentResponse
// @Failure 400 {object} ErrorResponse "Invalid input"
// @Failure 403 {object} ErrorResponse "Forbidden"
// @Failure 409 {object} ErrorResponse "Employee already assigned"
// @Security BearerAuth
// @Router /departments/{id}/assignments [post]
func (h *departmentHandler) assignEmployee(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	departmentID := c.Param("id")

	var req dto.AssignEmployeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Error("Failed to bind JSON for assign employee", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error(), Code: CodeValidation})
		return
	}

	actorID, ok := actorFromContext(c, logger)
	if !ok {
		return
	}

	logger = logger.With(slog.String("department_id", departmentID), slog.String("assignee_id", req.EmployeeID))
	logger.Info("Received request to assign employee")

	assignment, err := h.departmentService.AssignEmployee(c.Request.Context(), departmentID, actorID, req)
	if err != nil {
		respondWithError(c, logger, err, "Failed to assign employee")
		return
	}

	logger.Info("Employee assigned successfully")
	c.JSON(http.StatusCreated, dto.ToAssignmentResponse(assignment))
}

// unassignEmployee godoc
// @Summary Remove an employee's department assignment
// @Description Deletes the assignment linking an employee to a department. Restricted to HR and admins.
// @Tags departments
// @Produce json
// @Param id path string true "Department ID"
// @Param employeeID path string true "Employee ID"
// @Success 204 "Assignment removed"
// @Failure 403 {object} ErrorResponse "Forbidden"
// @Failure 404 {object} ErrorResponse "Assignment not found"
// @Security BearerAuth
// @Router /departments/{id}/assignments/{employeeID} [delete]
func (h *departmentHandler) unassignEmployee(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	departmentID := c.Param("id")
	employeeID := c.Param("employeeID")

	actorID, ok := actorFromContext(c, logger)
	if !ok {
		return
	}

	logger = logger.With(slog.String("department_id", departmentID), slog.String("assignee_id", employeeID))
	logger.Info("Received request to unassign employee")

	if err := h.departmentService.UnassignEmployee(c.Request.Context(), departmentID, employeeID, actorID); err != nil {
		respondWithError(c, logger, err, "Failed to unassign employee")
		return
	}

	logger.Info("Employee unassigned successfully")
	c.Status(http.StatusNoContent)
}
