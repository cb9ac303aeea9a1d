package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/workpulse/hr_management_app/internal/core/ports/services"
	"github.com/workpulse/hr_management_app/internal/dto"
	"github.com/workpulse/hr_management_app/internal/middleware"
)

// employeeHandler handles HTTP requests related to employees.
type employeeHandler struct {
	employeeService portssvc.EmployeeSvcFacade
}

// newEmployeeHandler creates a new employeeHandler.
func newEmployeeHandler(es portssvc.EmployeeSvcFacade) *employeeHandler {
	return &employeeHandler{
		employeeService: es,
	}
}

// registerEmployeeRoutes registers all employee-related routes.
func registerEmployeeRoutes(rg *gin.RouterGroup, employeeService portssvc.EmployeeSvcFacade) {
	h := newEmployeeHandler(employeeService)

	employees := rg.Group("/employees")
	{
		employees.POST("", h.createEmployee) // Admin only
		employees.GET("", h.listEmployees)
		employees.GET("/:id", h.getEmployee)
		employees.PUT("/:id", h.updateEmployee)        // Admin only
		employees.DELETE("/:id", h.deactivateEmployee) // Admin only
	}
}

// createEmployee godoc
// @Summary Create a new employee
// @Description Creates a new employee record. Restricted to HR and admins.
// @Tags employees
// @Accept json
// @Produce json
// @Param employee body dto.CreateEmployeeRequest true "Employee details"
// @Success 201 {object} dto.EmployeeResponse
// @Failure 400 {object} ErrorResponse "Invalid input"
// @Failure 403 {object} ErrorResponse "Forbidden"
// @Failure 409 {object} ErrorResponse "Email already in use"
// @Security BearerAuth
// @Router /employees [post]
func (h *employeeHandler) createEmployee(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateEmployeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Error("Failed to bind JSON for create employee", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error(), Code: CodeValidation})
		return
	}

	actorID, ok := actorFromContext(c, logger)
	if !ok {
		return
	}

	logger = logger.With(slog.String("creator_id", actorID))
	logger.Info("Received request to create employee", slog.String("email", req.Email))

	created, err := h.employeeService.CreateEmployee(c.Request.Context(), actorID, req)
	if err != nil {
		respondWithError(c, logger, err, "Failed to create employee")
		return
	}

	logger.Info("Employee created successfully", slog.String("new_employee_id", created.EmployeeID))
	c.JSON(http.StatusCreated, dto.ToEmployeeResponse(created))
}

// getEmployee godoc
// @Summary Get an employee by ID
// @Description Retrieves details for a specific employee.
// @Tags employees
// @Produce json
// @Param id path string true "Employee ID"
// @Success 200 {object} dto.EmployeeResponse
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 404 {object} ErrorResponse "Employee not found"
// @Security BearerAuth
// @Router /employees/{id} [get]
func (h *employeeHandler) getEmployee(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	employeeID := c.Param("id")

	if _, ok := actorFromContext(c, logger); !ok {
		return
	}

	employee, err := h.employeeService.GetEmployeeByID(c.Request.Context(), employeeID)
	if err != nil {
		respondWithError(c, logger, err, "Failed to retrieve employee")
		return
	}

	c.JSON(http.StatusOK, dto.ToEmployeeResponse(employee))
}

// listEmployees godoc
// @Summary List employees
// @Description Retrieves a list of employees, optionally scoped to one department.
// @Tags employees
// @Produce json
// @Param departmentID query string false "Filter by department"
// @Param limit query int false "Limit number of results" default(20)
// @Param offset query int false "Offset for pagination" default(0)
// @Success 200 {object} dto.ListEmployeesResponse
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Security BearerAuth
// @Router /employees [get]
func (h *employeeHandler) listEmployees(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var params dto.ListEmployeesParams
	if err := c.ShouldBindQuery(&params); err != nil {
		logger.Error("Failed to bind query params for list employees", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid query parameters: " + err.Error(), Code: CodeValidation})
		return
	}

	if _, ok := actorFromContext(c, logger); !ok {
		return
	}

	employees, err := h.employeeService.ListEmployees(c.Request.Context(), params.DepartmentID, params.Limit, params.Offset)
	if err != nil {
		respondWithError(c, logger, err, "Failed to list employees")
		return
	}

	c.JSON(http.StatusOK, dto.ToListEmployeesResponse(employees))
}

// updateEmployee godoc
// @Summary Update an employee
// @Description Updates an employee's details. Restricted to HR and admins.
// @Tags employees
// @Accept json
// @Produce json
// @Param id path string true "Employee ID"
// @Param employee body dto.UpdateEmployeeRequest true "Fields to update"
// @Success 200 {object} dto.EmployeeResponse
// @Failure 400 {object} ErrorResponse "Invalid input"
// @Failure 403 {object} ErrorResponse "Forbidden"
// @Failure 404 {object} ErrorResponse "Employee not found"
// @Security BearerAuth
// @Router /employees/{id} [put]
func (h *employeeHandler) updateEmployee(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	employeeID := c.Param("id")

	var req dto.UpdateEmployeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Error("Failed to bind JSON for update employee", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error(), Code: CodeValidation})
		return
	}

	actorID, ok := actorFromContext(c, logger)
	if !ok {
		return
	}

	logger = logger.With(slog.String("target_employee_id", employeeID))
	logger.Info("Received request to update employee")

	updated, err := h.employeeService.UpdateEmployee(c.Request.Context(), employeeID, actorID, req)
	if err != nil {
		respondWithError(c, logger, err, "Failed to update employee")
		return
	}

	logger.Info("Employee updated successfully")
	c.JSON(http.StatusOK, dto.ToEmployeeResponse(updated))
}

// deactivateEmployee godoc
// @Summary Deactivate an employee
// @Description Marks an employee as inactive. Restricted to HR and admins.
// @Tags employees
// @Produce json
// @Param id path string true "Employee ID"
// @Success 204 "Employee deactivated"
// @Failure 403 {object} ErrorResponse "Forbidden"
// @Failure 404 {object} ErrorResponse "Employee not found"
// @Security BearerAuth
// @Router /employees/{id} [delete]
func (h *employeeHandler) deactivateEmployee(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	employeeID := c.Param("id")

	actorID, ok := actorFromContext(c, logger)
	if !ok {
		return
	}

	logger = logger.With(slog.String("target_employee_id", employeeID))
	logger.Info("Received request to deactivate employee")

	if err := h.employeeService.DeactivateEmployee(c.Request.Context(), employeeID, actorID); err != nil {
		respondWithError(c, logger, err, "Failed to deactivate employee")
		return
	}

	logger.Info("Employee deactivated successfully")
	c.Status(http.StatusNoContent)
}
