package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/salilgupta4/absoms-backend/internal/core/ports/services"
)

// pdfHandler renders printable documents.
type pdfHandler struct {
	service portssvc.PDFSvc
}

func newPDFHandler(service portssvc.PDFSvc) *pdfHandler {
	return &pdfHandler{service: service}
}

func registerPDFRoutes(rg *gin.RouterGroup, service portssvc.PDFSvc) {
	h := newPDFHandler(service)

	rg.GET("/documents/:type/:id/pdf", h.RenderDocument)
	rg.GET("/payroll/records/:id/payslip", h.RenderPayslip)
}

// RenderDocument godoc
// @Summary Download a document as PDF
// @Description Renders a quote, sales order, delivery order or purchase order using the company profile and template settings.
// @Tags documents
// @Produce application/pdf
// @Param type path string true "Document type" Enums(quotes, sales-orders, delivery-orders, purchase-orders)
// @Param id path string true "Document ID"
// @Success 200 {string} string "PDF file"
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /documents/{type}/{id}/pdf [get]
func (h *pdfHandler) RenderDocument(c *gin.Context) {
	var render func(context.Context, string) ([]byte, error)
	switch c.Param("type") {
	case "quotes":
		render = h.service.RenderQuotePDF
	case "sales-orders":
		render = h.service.RenderSalesOrderPDF
	case "delivery-orders":
		render = h.service.RenderDeliveryOrderPDF
	case "purchase-orders":
		render = h.service.RenderPurchaseOrderPDF
	default:
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Unknown document type"})
		return
	}

	data, err := render(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err, "Failed to render PDF")
		return
	}

	c.Header("Content-Disposition", `inline; filename="`+c.Param("id")+`.pdf"`)
	c.Data(http.StatusOK, "application/pdf", data)
}

// RenderPayslip godoc
// @Summary Download a payslip as PDF
// @Tags payroll
// @Produce application/pdf
// @Param id path string true "Payroll record ID"
// @Success 200 {string} string "PDF file"
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /payroll/records/{id}/payslip [get]
func (h *pdfHandler) RenderPayslip(c *gin.Context) {
	data, err := h.service.RenderPayslipPDF(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err, "Failed to render payslip")
		return
	}

	c.Header("Content-Disposition", `inline; filename="payslip-`+c.Param("id")+`.pdf"`)
	c.Data(http.StatusOK, "application/pdf", data)
}
