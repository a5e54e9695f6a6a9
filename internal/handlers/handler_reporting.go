package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/salilgupta4/absoms-backend/internal/core/ports/services"
)

// reportingHandler serves the dashboard and the integrity scan.
type reportingHandler struct {
	service portssvc.ReportingSvc
}

func newReportingHandler(service portssvc.ReportingSvc) *reportingHandler {
	return &reportingHandler{service: service}
}

func registerReportingRoutes(rg *gin.RouterGroup, service portssvc.ReportingSvc) {
	h := newReportingHandler(service)

	rg.GET("/reports/dashboard", h.GetDashboard)
	rg.GET("/admin/integrity-check", h.RunIntegrityScan)
}

// GetDashboard godoc
// @Summary Get dashboard aggregates
// @Description Returns document status counts, open quote value, monthly sales total, pending deliveries, outstanding advances and headcounts in one call.
// @Tags reports
// @Produce json
// @Success 200 {object} domain.DashboardReport
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /reports/dashboard [get]
func (h *reportingHandler) GetDashboard(c *gin.Context) {
	report, err := h.service.GetDashboard(c.Request.Context())
	if err != nil {
		respondError(c, err, "Failed to compute dashboard")
		return
	}
	c.JSON(http.StatusOK, report)
}

// RunIntegrityScan godoc
// @Summary Run the data integrity scan
// @Description Checks referential and invariant health across customers, documents and advances. Read-only; mutates nothing.
// @Tags reports
// @Produce json
// @Success 200 {object} domain.IntegrityReport
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /admin/integrity-check [get]
func (h *reportingHandler) RunIntegrityScan(c *gin.Context) {
	report, err := h.service.RunIntegrityScan(c.Request.Context())
	if err != nil {
		respondError(c, err, "Failed to run integrity scan")
		return
	}
	c.JSON(http.StatusOK, report)
}
