package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/salilgupta4/absoms-backend/internal/core/ports/services"
	"github.com/salilgupta4/absoms-backend/internal/dto"
)

// leaveHandler handles HTTP requests for leave requests.
type leaveHandler struct {
	service portssvc.LeaveSvcFacade
}

func newLeaveHandler(service portssvc.LeaveSvcFacade) *leaveHandler {
	return &leaveHandler{service: service}
}

func registerLeaveRoutes(rg *gin.RouterGroup, service portssvc.LeaveSvcFacade) {
	h := newLeaveHandler(service)

	leaves := rg.Group("/payroll/leaves")
	{
		leaves.POST("", h.CreateLeaveRequest)
		leaves.GET("", h.ListByEmployee)
		leaves.GET("/:id", h.GetLeaveRequest)
		leaves.POST("/:id/decision", h.DecideLeaveRequest)
	}
}

// CreateLeaveRequest godoc
// @Summary File a leave request
// @Description Files a new PENDING leave request for an employee.
// @Tags payroll
// @Accept json
// @Produce json
// @Param leave body dto.CreateLeaveRequest true "Leave request"
// @Success 201 {object} dto.LeaveRequestResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse "Employee not found"
// @Security BearerAuth
// @Router /payroll/leaves [post]
func (h *leaveHandler) CreateLeaveRequest(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	var req dto.CreateLeaveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}

	leave, err := h.service.CreateLeaveRequest(c.Request.Context(), req, userID)
	if err != nil {
		respondError(c, err, "Failed to create leave request")
		return
	}
	c.JSON(http.StatusCreated, dto.ToLeaveRequestResponse(leave))
}

// ListByEmployee godoc
// @Summary List leave requests for an employee
// @Tags payroll
// @Produce json
// @Param employeeID query string true "Employee ID"
// @Param month query string false "Restrict to leaves overlapping a YYYY-MM month"
// @Param limit query int false "Page size" default(20)
// @Param offset query int false "Offset" default(0)
// @Success 200 {array} dto.LeaveRequestResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Security BearerAuth
// @Router /payroll/leaves [get]
func (h *leaveHandler) ListByEmployee(c *gin.Context) {
	var params dto.ListLeavesParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "employeeID query parameter is required"})
		return
	}

	leaves, err := h.service.ListLeaveRequestsByEmployee(c.Request.Context(), params.EmployeeID, params.Month, params.Limit, params.Offset)
	if err != nil {
		respondError(c, err, "Failed to list leave requests")
		return
	}
	c.JSON(http.StatusOK, dto.ToListLeaveRequestResponse(leaves))
}

// GetLeaveRequest godoc
// @Summary Get a leave request by ID
// @Tags payroll
// @Produce json
// @Param id path string true "Leave request ID"
// @Success 200 {object} dto.LeaveRequestResponse
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /payroll/leaves/{id} [get]
func (h *leaveHandler) GetLeaveRequest(c *gin.Context) {
	leave, err := h.service.GetLeaveRequestByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err, "Failed to get leave request")
		return
	}
	c.JSON(http.StatusOK, dto.ToLeaveRequestResponse(leave))
}

// DecideLeaveRequest godoc
// @Summary Approve or reject a leave request
// @Description Decides a PENDING leave request. Decided requests cannot be changed.
// @Tags payroll
// @Accept json
// @Produce json
// @Param id path string true "Leave request ID"
// @Param decision body dto.DecideLeaveRequest true "Decision"
// @Success 200 {object} dto.LeaveRequestResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /payroll/leaves/{id}/decision [post]
func (h *leaveHandler) DecideLeaveRequest(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	var req dto.DecideLeaveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}

	leave, err := h.service.DecideLeaveRequest(c.Request.Context(), c.Param("id"), *req.Approve, userID)
	if err != nil {
		respondError(c, err, "Failed to decide leave request")
		return
	}
	c.JSON(http.StatusOK, dto.ToLeaveRequestResponse(leave))
}
