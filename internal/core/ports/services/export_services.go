package services

import (
	"context"

	"github.com/salilgupta4/absoms-backend/internal/dto"
)

// ExportSvc produces CSV exports and consumes CSV imports for data admin
type ExportSvc interface {
	// ExportCustomersCSV writes all customers as CSV.
	ExportCustomersCSV(ctx context.Context) ([]byte, error)

	// ExportProductsCSV writes all products as CSV.
	ExportProductsCSV(ctx context.Context) ([]byte, error)

	// ExportQuotesCSV writes quote headers as CSV, optionally filtered by status.
	ExportQuotesCSV(ctx context.Context, status string) ([]byte, error)

	// ExportSalesOrdersCSV writes sales order headers as CSV.
	ExportSalesOrdersCSV(ctx context.Context, status string) ([]byte, error)

	// ExportPayrollCSV writes one month's payroll records as CSV.
	ExportPayrollCSV(ctx context.Context, month string) ([]byte, error)

	// ImportProductsCSV upserts products from CSV rows, matching on name.
	// Bad rows are reported in the summary; valid rows are still applied.
	ImportProductsCSV(ctx context.Context, data []byte, userID string) (*dto.ImportSummary, error)

	// ImportCustomersCSV upserts customers from CSV rows, matching on name.
	// Bad rows are reported in the summary; valid rows are still applied.
	ImportCustomersCSV(ctx context.Context, data []byte, userID string) (*dto.ImportSummary, error)
}

// PDFSvc renders printable documents
type PDFSvc interface {
	// RenderQuotePDF renders a quote using the company profile and template settings.
	RenderQuotePDF(ctx context.Context, quoteID string) ([]byte, error)

	// RenderSalesOrderPDF renders a sales order confirmation.
	RenderSalesOrderPDF(ctx context.Context, salesOrderID string) ([]byte, error)

	// RenderDeliveryOrderPDF renders a delivery challan.
	RenderDeliveryOrderPDF(ctx context.Context, deliveryOrderID string) ([]byte, error)

	// RenderPurchaseOrderPDF renders a purchase order.
	RenderPurchaseOrderPDF(ctx context.Context, purchaseOrderID string) ([]byte, error)

	// RenderPayslipPDF renders a payslip for one payroll record.
	RenderPayslipPDF(ctx context.Context, payrollRecordID string) ([]byte, error)
}
