package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/salilgupta4/absoms-backend/internal/core/ports/services"
	"github.com/salilgupta4/absoms-backend/internal/dto"
)

// employeeHandler handles HTTP requests for employee operations.
type employeeHandler struct {
	service portssvc.EmployeeSvcFacade
}

func newEmployeeHandler(service portssvc.EmployeeSvcFacade) *employeeHandler {
	return &employeeHandler{service: service}
}

func registerEmployeeRoutes(rg *gin.RouterGroup, service portssvc.EmployeeSvcFacade) {
	h := newEmployeeHandler(service)

	employees := rg.Group("/payroll/employees")
	{
		employees.POST("", h.CreateEmployee)
		employees.GET("", h.ListEmployees)
		employees.GET("/:id", h.GetEmployee)
		employees.PUT("/:id", h.UpdateEmployee)
		employees.DELETE("/:id", h.DeactivateEmployee)
	}
}

// CreateEmployee godoc
// @Summary Create an employee
// @Description Creates an employee with their salary structure and bank accounts.
// @Tags payroll
// @Accept json
// @Produce json
// @Param employee body dto.CreateEmployeeRequest true "Employee to create"
// @Success 201 {object} dto.EmployeeResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse "Employee code already exists"
// @Security BearerAuth
// @Router /payroll/employees [post]
func (h *employeeHandler) CreateEmployee(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	var req dto.CreateEmployeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}

	employee, err := h.service.CreateEmployee(c.Request.Context(), req, userID)
	if err != nil {
		respondError(c, err, "Failed to create employee")
		return
	}
	c.JSON(http.StatusCreated, dto.ToEmployeeResponse(employee))
}

// ListEmployees godoc
// @Summary List employees
// @Tags payroll
// @Produce json
// @Param activeOnly query bool false "Only active employees" default(false)
// @Param limit query int false "Page size" default(20)
// @Param offset query int false "Offset" default(0)
// @Success 200 {array} dto.EmployeeResponse
// @Failure 401 {object} ErrorResponse
// @Security BearerAuth
// @Router /payroll/employees [get]
func (h *employeeHandler) ListEmployees(c *gin.Context) {
	var params dto.ListEmployeesParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid query parameters"})
		return
	}

	employees, err := h.service.ListEmployees(c.Request.Context(), params.ActiveOnly, params.Limit, params.Offset)
	if err != nil {
		respondError(c, err, "Failed to list employees")
		return
	}
	c.JSON(http.StatusOK, dto.ToListEmployeeResponse(employees))
}

// GetEmployee godoc
// @Summary Get an employee by ID
// @Tags payroll
// @Produce json
// @Param id path string true "Employee ID"
// @Success 200 {object} dto.EmployeeResponse
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /payroll/employees/{id} [get]
func (h *employeeHandler) GetEmployee(c *gin.Context) {
	employee, err := h.service.GetEmployeeByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err, "Failed to get employee")
		return
	}
	c.JSON(http.StatusOK, dto.ToEmployeeResponse(employee))
}

// UpdateEmployee godoc
// @Summary Update an employee
// @Description Replaces the employee's details. Bank accounts are replaced as a set.
// @Tags payroll
// @Accept json
// @Produce json
// @Param id path string true "Employee ID"
// @Param employee body dto.UpdateEmployeeRequest true "New employee details"
// @Success 200 {object} dto.EmployeeResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /payroll/employees/{id} [put]
func (h *employeeHandler) UpdateEmployee(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	var req dto.UpdateEmployeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}

	employee, err := h.service.UpdateEmployee(c.Request.Context(), c.Param("id"), req, userID)
	if err != nil {
		respondError(c, err, "Failed to update employee")
		return
	}
	c.JSON(http.StatusOK, dto.ToEmployeeResponse(employee))
}

// DeactivateEmployee godoc
// @Summary Deactivate an employee
// @Description Soft-deletes an employee. Past payroll records remain.
// @Tags payroll
// @Produce json
// @Param id path string true "Employee ID"
// @Success 204 "Employee deactivated"
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /payroll/employees/{id} [delete]
func (h *employeeHandler) DeactivateEmployee(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	if err := h.service.DeactivateEmployee(c.Request.Context(), c.Param("id"), userID); err != nil {
		respondError(c, err, "Failed to deactivate employee")
		return
	}
	c.Status(http.StatusNoContent)
}
