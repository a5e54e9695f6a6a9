package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/salilgupta4/absoms-backend/internal/core/ports/services"
	"github.com/salilgupta4/absoms-backend/internal/dto"
)

// payrollHandler handles HTTP requests for payroll computation and approval.
type payrollHandler struct {
	service portssvc.PayrollSvcFacade
}

func newPayrollHandler(service portssvc.PayrollSvcFacade) *payrollHandler {
	return &payrollHandler{service: service}
}

func registerPayrollRoutes(rg *gin.RouterGroup, service portssvc.PayrollSvcFacade) {
	h := newPayrollHandler(service)

	records := rg.Group("/payroll/records")
	{
		records.POST("/compute", h.ComputePayroll)
		records.GET("", h.ListByMonth)
		records.GET("/:id", h.GetRecord)
		records.POST("/:id/approve", h.ApprovePayroll)
	}
}

// ComputePayroll godoc
// @Summary Compute payroll for one employee-month
// @Description Computes (or recomputes) a DRAFT payroll record. Statutory deductions and the proposed advance deduction are derived here; the advance ledger is untouched until approval.
// @Tags payroll
// @Accept json
// @Produce json
// @Param computation body dto.ComputePayrollRequest true "Employee, month and attendance inputs"
// @Success 200 {object} dto.PayrollRecordResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse "Employee not found"
// @Failure 409 {object} ErrorResponse "Record already approved"
// @Security BearerAuth
// @Router /payroll/records/compute [post]
func (h *payrollHandler) ComputePayroll(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	var req dto.ComputePayrollRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}

	record, err := h.service.ComputePayroll(c.Request.Context(), req, userID)
	if err != nil {
		respondError(c, err, "Failed to compute payroll")
		return
	}
	c.JSON(http.StatusOK, dto.ToPayrollRecordResponse(record))
}

// ListByMonth godoc
// @Summary List payroll records for a month
// @Tags payroll
// @Produce json
// @Param month query string true "Month in YYYY-MM format"
// @Success 200 {array} dto.PayrollRecordResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Security BearerAuth
// @Router /payroll/records [get]
func (h *payrollHandler) ListByMonth(c *gin.Context) {
	month := c.Query("month")
	if month == "" {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "month query parameter is required"})
		return
	}

	records, err := h.service.ListPayrollRecordsByMonth(c.Request.Context(), month)
	if err != nil {
		respondError(c, err, "Failed to list payroll records")
		return
	}
	c.JSON(http.StatusOK, dto.ToListPayrollRecordResponse(records))
}

// GetRecord godoc
// @Summary Get a payroll record by ID
// @Tags payroll
// @Produce json
// @Param id path string true "Payroll record ID"
// @Success 200 {object} dto.PayrollRecordResponse
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /payroll/records/{id} [get]
func (h *payrollHandler) GetRecord(c *gin.Context) {
	record, err := h.service.GetPayrollRecordByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err, "Failed to get payroll record")
		return
	}
	c.JSON(http.StatusOK, dto.ToPayrollRecordResponse(record))
}

// ApprovePayroll godoc
// @Summary Approve a payroll record
// @Description Finalizes a DRAFT record. If it carries an advance deduction, the corresponding ledger entry is appended atomically.
// @Tags payroll
// @Produce json
// @Param id path string true "Payroll record ID"
// @Success 200 {object} dto.PayrollRecordResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /payroll/records/{id}/approve [post]
func (h *payrollHandler) ApprovePayroll(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	record, err := h.service.ApprovePayroll(c.Request.Context(), c.Param("id"), userID)
	if err != nil {
		respondError(c, err, "Failed to approve payroll")
		return
	}
	c.JSON(http.StatusOK, dto.ToPayrollRecordResponse(record))
}
