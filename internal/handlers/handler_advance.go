package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/salilgupta4/absoms-backend/internal/core/ports/services"
	"github.com/salilgupta4/absoms-backend/internal/dto"
)

// advanceHandler handles HTTP requests for salary advance operations.
type advanceHandler struct {
	service portssvc.AdvanceSvcFacade
}

func newAdvanceHandler(service portssvc.AdvanceSvcFacade) *advanceHandler {
	return &advanceHandler{service: service}
}

func registerAdvanceRoutes(rg *gin.RouterGroup, service portssvc.AdvanceSvcFacade) {
	h := newAdvanceHandler(service)

	advances := rg.Group("/payroll/advances")
	{
		advances.POST("", h.CreateAdvance)
		advances.GET("", h.ListByEmployee)
		advances.GET("/:id", h.GetAdvance)
		advances.POST("/:id/topups", h.RecordTopUp)
		advances.POST("/:id/repayments", h.RecordRepayment)
	}
}

// CreateAdvance godoc
// @Summary Disburse a salary advance
// @Description Creates a new advance with its initial disbursement ledger entry. An employee may hold at most one ACTIVE advance.
// @Tags payroll
// @Accept json
// @Produce json
// @Param advance body dto.CreateAdvanceRequest true "Advance to disburse"
// @Success 201 {object} dto.AdvanceResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse "Employee not found"
// @Failure 409 {object} ErrorResponse "Employee already has an active advance"
// @Security BearerAuth
// @Router /payroll/advances [post]
func (h *advanceHandler) CreateAdvance(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	var req dto.CreateAdvanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}

	advance, err := h.service.CreateAdvance(c.Request.Context(), req, userID)
	if err != nil {
		respondError(c, err, "Failed to create advance")
		return
	}
	c.JSON(http.StatusCreated, dto.ToAdvanceResponse(advance))
}

// ListByEmployee godoc
// @Summary List advances for an employee
// @Tags payroll
// @Produce json
// @Param employeeID query string true "Employee ID"
// @Success 200 {array} dto.AdvanceResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Security BearerAuth
// @Router /payroll/advances [get]
func (h *advanceHandler) ListByEmployee(c *gin.Context) {
	employeeID := c.Query("employeeID")
	if employeeID == "" {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "employeeID query parameter is required"})
		return
	}

	advances, err := h.service.ListAdvancesByEmployee(c.Request.Context(), employeeID)
	if err != nil {
		respondError(c, err, "Failed to list advances")
		return
	}
	c.JSON(http.StatusOK, dto.ToListAdvanceResponse(advances))
}

// GetAdvance godoc
// @Summary Get an advance by ID
// @Description Returns the advance with its full transaction ledger.
// @Tags payroll
// @Produce json
// @Param id path string true "Advance ID"
// @Success 200 {object} dto.AdvanceResponse
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /payroll/advances/{id} [get]
func (h *advanceHandler) GetAdvance(c *gin.Context) {
	advance, err := h.service.GetAdvanceByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err, "Failed to get advance")
		return
	}
	c.JSON(http.StatusOK, dto.ToAdvanceResponse(advance))
}

// RecordTopUp godoc
// @Summary Record an additional disbursement
// @Description Appends a further disbursement to the advance ledger, raising the total and the outstanding balance. A FULLY_DEDUCTED advance is re-activated when the employee holds no other active advance.
// @Tags payroll
// @Accept json
// @Produce json
// @Param id path string true "Advance ID"
// @Param topup body dto.AdvanceTopUpRequest true "Top-up details"
// @Success 200 {object} dto.AdvanceResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse "Employee already has another active advance"
// @Security BearerAuth
// @Router /payroll/advances/{id}/topups [post]
func (h *advanceHandler) RecordTopUp(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	var req dto.AdvanceTopUpRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}

	advance, err := h.service.RecordTopUp(c.Request.Context(), c.Param("id"), req, userID)
	if err != nil {
		respondError(c, err, "Failed to record top-up")
		return
	}
	c.JSON(http.StatusOK, dto.ToAdvanceResponse(advance))
}

// RecordRepayment godoc
// @Summary Record a cash repayment
// @Description Appends a repayment to the advance ledger. The repayment may not exceed the outstanding balance; a balance of zero settles the advance.
// @Tags payroll
// @Accept json
// @Produce json
// @Param id path string true "Advance ID"
// @Param repayment body dto.AdvanceRepaymentRequest true "Repayment details"
// @Success 200 {object} dto.AdvanceResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /payroll/advances/{id}/repayments [post]
func (h *advanceHandler) RecordRepayment(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	var req dto.AdvanceRepaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}

	advance, err := h.service.RecordRepayment(c.Request.Context(), c.Param("id"), req, userID)
	if err != nil {
		respondError(c, err, "Failed to record repayment")
		return
	}
	c.JSON(http.StatusOK, dto.ToAdvanceResponse(advance))
}
