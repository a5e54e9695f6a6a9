package handlers

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/salilgupta4/absoms-backend/internal/core/ports/services"
)

// maxImportSize caps uploaded CSV files at 5 MiB.
const maxImportSize = 5 << 20

// exportHandler serves CSV exports and the product CSV import.
type exportHandler struct {
	service portssvc.ExportSvc
}

func newExportHandler(service portssvc.ExportSvc) *exportHandler {
	return &exportHandler{service: service}
}

func registerExportRoutes(rg *gin.RouterGroup, service portssvc.ExportSvc) {
	h := newExportHandler(service)

	exports := rg.Group("/exports")
	{
		exports.GET("/customers.csv", h.ExportCustomers)
		exports.GET("/products.csv", h.ExportProducts)
		exports.GET("/quotes.csv", h.ExportQuotes)
		exports.GET("/sales-orders.csv", h.ExportSalesOrders)
		exports.GET("/payroll.csv", h.ExportPayroll)
	}

	imports := rg.Group("/imports")
	{
		imports.POST("/products", h.ImportProducts)
		imports.POST("/customers", h.ImportCustomers)
	}
}

func writeCSV(c *gin.Context, filename string, data []byte) {
	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusOK, "text/csv", data)
}

// ExportCustomers godoc
// @Summary Export customers as CSV
// @Tags exports
// @Produce text/csv
// @Success 200 {string} string "CSV file"
// @Failure 401 {object} ErrorResponse
// @Security BearerAuth
// @Router /exports/customers.csv [get]
func (h *exportHandler) ExportCustomers(c *gin.Context) {
	data, err := h.service.ExportCustomersCSV(c.Request.Context())
	if err != nil {
		respondError(c, err, "Failed to export customers")
		return
	}
	writeCSV(c, "customers.csv", data)
}

// ExportProducts godoc
// @Summary Export products as CSV
// @Tags exports
// @Produce text/csv
// @Success 200 {string} string "CSV file"
// @Failure 401 {object} ErrorResponse
// @Security BearerAuth
// @Router /exports/products.csv [get]
func (h *exportHandler) ExportProducts(c *gin.Context) {
	data, err := h.service.ExportProductsCSV(c.Request.Context())
	if err != nil {
		respondError(c, err, "Failed to export products")
		return
	}
	writeCSV(c, "products.csv", data)
}

// ExportQuotes godoc
// @Summary Export quote headers as CSV
// @Tags exports
// @Produce text/csv
// @Param status query string false "Status filter"
// @Success 200 {string} string "CSV file"
// @Failure 401 {object} ErrorResponse
// @Security BearerAuth
// @Router /exports/quotes.csv [get]
func (h *exportHandler) ExportQuotes(c *gin.Context) {
	data, err := h.service.ExportQuotesCSV(c.Request.Context(), c.Query("status"))
	if err != nil {
		respondError(c, err, "Failed to export quotes")
		return
	}
	writeCSV(c, "quotes.csv", data)
}

// ExportSalesOrders godoc
// @Summary Export sales order headers as CSV
// @Tags exports
// @Produce text/csv
// @Param status query string false "Status filter"
// @Success 200 {string} string "CSV file"
// @Failure 401 {object} ErrorResponse
// @Security BearerAuth
// @Router /exports/sales-orders.csv [get]
func (h *exportHandler) ExportSalesOrders(c *gin.Context) {
	data, err := h.service.ExportSalesOrdersCSV(c.Request.Context(), c.Query("status"))
	if err != nil {
		respondError(c, err, "Failed to export sales orders")
		return
	}
	writeCSV(c, "sales-orders.csv", data)
}

// ExportPayroll godoc
// @Summary Export one month's payroll as CSV
// @Tags exports
// @Produce text/csv
// @Param month query string true "Month in YYYY-MM format"
// @Success 200 {string} string "CSV file"
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Security BearerAuth
// @Router /exports/payroll.csv [get]
func (h *exportHandler) ExportPayroll(c *gin.Context) {
	month := c.Query("month")
	if month == "" {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "month query parameter is required"})
		return
	}

	data, err := h.service.ExportPayrollCSV(c.Request.Context(), month)
	if err != nil {
		respondError(c, err, "Failed to export payroll")
		return
	}
	writeCSV(c, "payroll-"+month+".csv", data)
}

// ImportProducts godoc
// @Summary Import products from CSV
// @Description Upserts products from an uploaded CSV file, matching rows on product name. Bad rows are reported in the summary; the rest are applied.
// @Tags exports
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "CSV file"
// @Success 200 {object} dto.ImportSummary
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Security BearerAuth
// @Router /imports/products [post]
func (h *exportHandler) ImportProducts(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	data, ok := readUploadedCSV(c)
	if !ok {
		return
	}

	summary, err := h.service.ImportProductsCSV(c.Request.Context(), data, userID)
	if err != nil {
		respondError(c, err, "Failed to import products")
		return
	}
	c.JSON(http.StatusOK, summary)
}

// ImportCustomers godoc
// @Summary Import customers from CSV
// @Description Upserts customers from an uploaded CSV file, matching rows on customer name. Bad rows are reported in the summary; the rest are applied.
// @Tags exports
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "CSV file"
// @Success 200 {object} dto.ImportSummary
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Security BearerAuth
// @Router /imports/customers [post]
func (h *exportHandler) ImportCustomers(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	data, ok := readUploadedCSV(c)
	if !ok {
		return
	}

	summary, err := h.service.ImportCustomersCSV(c.Request.Context(), data, userID)
	if err != nil {
		respondError(c, err, "Failed to import customers")
		return
	}
	c.JSON(http.StatusOK, summary)
}

// readUploadedCSV pulls the "file" form upload, enforcing the size cap. It
// writes the error response itself on failure.
func readUploadedCSV(c *gin.Context) ([]byte, bool) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "file upload is required"})
		return nil, false
	}
	if fileHeader.Size > maxImportSize {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "file exceeds the 5 MiB limit"})
		return nil, false
	}

	file, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "failed to read uploaded file"})
		return nil, false
	}
	defer file.Close()

	data, err := io.ReadAll(io.LimitReader(file, maxImportSize))
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "failed to read uploaded file"})
		return nil, false
	}
	return data, true
}
