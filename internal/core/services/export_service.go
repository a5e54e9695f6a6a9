package services

import (
	"bytes"
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/salilgupta4/absoms-backend/internal/apperrors"
	"github.com/salilgupta4/absoms-backend/internal/core/domain"
	portsrepo "github.com/salilgupta4/absoms-backend/internal/core/ports/repositories"
	portssvc "github.com/salilgupta4/absoms-backend/internal/core/ports/services"
	"github.com/salilgupta4/absoms-backend/internal/dto"
)

// exportListLimit bounds full-table exports. Large enough for this scale of
// business data.
const exportListLimit = 100000

// exportService produces CSV exports and consumes CSV imports.
type exportService struct {
	customerRepo   portsrepo.CustomerReader
	productRepo    portsrepo.ProductRepositoryFacade
	quoteRepo      portsrepo.QuoteReader
	salesOrderRepo portsrepo.SalesOrderReader
	payrollRepo    portsrepo.PayrollReader
	productSvc     portssvc.ProductSvcFacade
	customerSvc    portssvc.CustomerSvcFacade
}

// NewExportService creates a new export service.
func NewExportService(
	customerRepo portsrepo.CustomerReader,
	productRepo portsrepo.ProductRepositoryFacade,
	quoteRepo portsrepo.QuoteReader,
	salesOrderRepo portsrepo.SalesOrderReader,
	payrollRepo portsrepo.PayrollReader,
	productSvc portssvc.ProductSvcFacade,
	customerSvc portssvc.CustomerSvcFacade,
) portssvc.ExportSvc {
	return &exportService{
		customerRepo:   customerRepo,
		productRepo:    productRepo,
		quoteRepo:      quoteRepo,
		salesOrderRepo: salesOrderRepo,
		payrollRepo:    payrollRepo,
		productSvc:     productSvc,
		customerSvc:    customerSvc,
	}
}

var _ portssvc.ExportSvc = (*exportService)(nil)

func writeCSV(header []string, rows [][]string) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.Write(header); err != nil {
		return nil, err
	}
	if err := w.WriteAll(rows); err != nil {
		return nil, err
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (s *exportService) ExportCustomersCSV(ctx context.Context) ([]byte, error) {
	customers, err := s.customerRepo.FindCustomers(ctx, "", exportListLimit, 0)
	if err != nil {
		return nil, fmt.Errorf("failed to load customers for export: %w", err)
	}

	rows := make([][]string, 0, len(customers))
	for _, c := range customers {
		primaryName, primaryEmail, primaryPhone := "", "", ""
		if p := c.PrimaryContact(); p != nil {
			primaryName, primaryEmail, primaryPhone = p.Name, p.Email, p.Phone
		}
		billing := ""
		if a := c.DefaultAddress(domain.AddressBilling); a != nil {
			billing = formatAddress(*a)
		}
		rows = append(rows, []string{
			c.CustomerID, c.Name, c.GSTIN,
			primaryName, primaryEmail, primaryPhone,
			billing, fmt.Sprintf("%t", c.IsActive),
		})
	}
	return writeCSV([]string{
		"customer_id", "name", "gstin",
		"primary_contact", "primary_email", "primary_phone",
		"billing_address", "is_active",
	}, rows)
}

func (s *exportService) ExportProductsCSV(ctx context.Context) ([]byte, error) {
	products, err := s.productRepo.FindProducts(ctx, "", exportListLimit, 0)
	if err != nil {
		return nil, fmt.Errorf("failed to load products for export: %w", err)
	}

	rows := make([][]string, 0, len(products))
	for _, p := range products {
		rows = append(rows, []string{
			p.Name, p.Description, p.HSNCode, p.Unit,
			p.Rate.String(), p.GSTRate.String(), fmt.Sprintf("%t", p.IsActive),
		})
	}
	return writeCSV([]string{
		"name", "description", "hsn_code", "unit", "rate", "gst_rate", "is_active",
	}, rows)
}

func (s *exportService) ExportQuotesCSV(ctx context.Context, status string) ([]byte, error) {
	quotes, err := s.quoteRepo.FindQuotes(ctx, portsrepo.DocumentListFilter{
		Status: domain.DocumentStatus(status),
		Limit:  exportListLimit,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to load quotes for export: %w", err)
	}

	rows := make([][]string, 0, len(quotes))
	for _, q := range quotes {
		rows = append(rows, []string{
			q.QuoteNumber, fmt.Sprintf("%d", q.Revision), q.Customer.CustomerName,
			q.QuoteDate.Format("2006-01-02"), string(q.Status),
			q.Totals.Subtotal.String(), q.Totals.TotalTax.String(), q.Totals.GrandTotal.String(),
		})
	}
	return writeCSV([]string{
		"quote_number", "revision", "customer", "quote_date", "status",
		"subtotal", "total_tax", "grand_total",
	}, rows)
}

func (s *exportService) ExportSalesOrdersCSV(ctx context.Context, status string) ([]byte, error) {
	orders, err := s.salesOrderRepo.FindSalesOrders(ctx, portsrepo.DocumentListFilter{
		Status: domain.DocumentStatus(status),
		Limit:  exportListLimit,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to load sales orders for export: %w", err)
	}

	rows := make([][]string, 0, len(orders))
	for _, so := range orders {
		rows = append(rows, []string{
			so.OrderNumber, so.ClientPONum, so.Customer.CustomerName,
			so.OrderDate.Format("2006-01-02"), string(so.Status),
			so.Totals.GrandTotal.String(), fmt.Sprintf("%t", so.FullyDelivered()),
		})
	}
	return writeCSV([]string{
		"order_number", "client_po_number", "customer", "order_date", "status",
		"grand_total", "fully_delivered",
	}, rows)
}

func (s *exportService) ExportPayrollCSV(ctx context.Context, month string) ([]byte, error) {
	records, err := s.payrollRepo.FindPayrollRecordsByMonth(ctx, month)
	if err != nil {
		return nil, fmt.Errorf("failed to load payroll records for export: %w", err)
	}

	rows := make([][]string, 0, len(records))
	for _, r := range records {
		rows = append(rows, []string{
			r.EmployeeName, r.Month, r.DaysWorked.String(),
			r.GrossPay.String(), r.PFDeduction.String(), r.ESIDeduction.String(),
			r.ProfessionalTax.String(), r.AdvanceDeduction.String(),
			r.NetPay.String(), string(r.Status),
		})
	}
	return writeCSV([]string{
		"employee", "month", "days_worked", "gross_pay", "pf", "esi",
		"professional_tax", "advance_deduction", "net_pay", "status",
	}, rows)
}

// csvTable is a parsed CSV file with header-based cell access.
type csvTable struct {
	rows [][]string
	idx  map[string]int
}

func parseCSVTable(data []byte, required ...string) (*csvTable, error) {
	r := csv.NewReader(bytes.NewReader(data))
	r.TrimLeadingSpace = true

	records, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("malformed csv: %w", apperrors.ErrValidation)
	}
	if len(records) < 2 {
		return nil, fmt.Errorf("csv has no data rows: %w", apperrors.ErrValidation)
	}

	idx := map[string]int{}
	for i, h := range records[0] {
		idx[strings.ToLower(strings.TrimSpace(h))] = i
	}
	for _, col := range required {
		if _, ok := idx[col]; !ok {
			return nil, fmt.Errorf("csv is missing column %q: %w", col, apperrors.ErrValidation)
		}
	}
	return &csvTable{rows: records[1:], idx: idx}, nil
}

func (t *csvTable) cell(row []string, name string) string {
	i, ok := t.idx[name]
	if !ok || i >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[i])
}

// ImportProductsCSV upserts products from CSV data. The header must match the
// product export layout (is_active column optional). Rows match existing
// products by exact name. A bad row is reported and skipped; the rest of the
// file is still applied.
func (s *exportService) ImportProductsCSV(ctx context.Context, data []byte, userID string) (*dto.ImportSummary, error) {
	table, err := parseCSVTable(data, "name", "unit", "rate")
	if err != nil {
		return nil, err
	}
	cell := table.cell

	summary := &dto.ImportSummary{}
	for n, row := range table.rows {
		name := cell(row, "name")
		if name == "" {
			summary.Errors = append(summary.Errors, fmt.Sprintf("row %d: name is empty", n+2))
			continue
		}
		rate, err := decimal.NewFromString(cell(row, "rate"))
		if err != nil {
			summary.Errors = append(summary.Errors, fmt.Sprintf("row %d: bad rate", n+2))
			continue
		}
		gstRate := decimal.Zero
		if g := cell(row, "gst_rate"); g != "" {
			gstRate, err = decimal.NewFromString(g)
			if err != nil {
				summary.Errors = append(summary.Errors, fmt.Sprintf("row %d: bad gst_rate", n+2))
				continue
			}
		}

		existing, err := s.productRepo.FindProductByName(ctx, name)
		if err != nil && !errors.Is(err, apperrors.ErrNotFound) {
			return nil, err
		}

		if existing == nil {
			_, err = s.productSvc.CreateProduct(ctx, dto.CreateProductRequest{
				Name:        name,
				Description: cell(row, "description"),
				HSNCode:     cell(row, "hsn_code"),
				Unit:        cell(row, "unit"),
				Rate:        rate,
				GSTRate:     gstRate,
			}, userID)
			if err != nil {
				summary.Errors = append(summary.Errors, fmt.Sprintf("row %d: %v", n+2, err))
				continue
			}
			summary.Created++
			continue
		}

		description := cell(row, "description")
		hsn := cell(row, "hsn_code")
		unit := cell(row, "unit")
		_, err = s.productSvc.UpdateProduct(ctx, existing.ProductID, dto.UpdateProductRequest{
			Description: &description,
			HSNCode:     &hsn,
			Unit:        &unit,
			Rate:        &rate,
			GSTRate:     &gstRate,
		}, userID)
		if err != nil {
			summary.Errors = append(summary.Errors, fmt.Sprintf("row %d: %v", n+2, err))
			continue
		}
		summary.Updated++
	}

	return summary, nil
}

// ImportCustomersCSV upserts customers from CSV data, matching rows on exact
// name (case-insensitive). Contact columns, when present, replace the primary
// contact; existing addresses and secondary contacts are kept. A bad row is
// reported and skipped; the rest of the file is still applied.
func (s *exportService) ImportCustomersCSV(ctx context.Context, data []byte, userID string) (*dto.ImportSummary, error) {
	table, err := parseCSVTable(data, "name")
	if err != nil {
		return nil, err
	}
	cell := table.cell

	existing, err := s.customerSvc.ListCustomers(ctx, "", exportListLimit, 0)
	if err != nil {
		return nil, fmt.Errorf("failed to load customers for import: %w", err)
	}
	byName := make(map[string]domain.Customer, len(existing))
	for _, c := range existing {
		byName[strings.ToLower(c.Name)] = c
	}

	summary := &dto.ImportSummary{}
	for n, row := range table.rows {
		name := cell(row, "name")
		if name == "" {
			summary.Errors = append(summary.Errors, fmt.Sprintf("row %d: name is empty", n+2))
			continue
		}
		gstin := cell(row, "gstin")
		contactName := cell(row, "primary_contact")

		current, exists := byName[strings.ToLower(name)]
		if !exists {
			req := dto.CreateCustomerRequest{Name: name, GSTIN: gstin}
			if contactName != "" {
				req.Contacts = []dto.ContactRequest{{
					Name:      contactName,
					Email:     cell(row, "primary_email"),
					Phone:     cell(row, "primary_phone"),
					IsPrimary: true,
				}}
			}
			saved, err := s.customerSvc.CreateCustomer(ctx, req, userID)
			if err != nil {
				summary.Errors = append(summary.Errors, fmt.Sprintf("row %d: %v", n+2, err))
				continue
			}
			byName[strings.ToLower(name)] = *saved
			summary.Created++
			continue
		}

		req := dto.UpdateCustomerRequest{
			Name:      current.Name,
			GSTIN:     current.GSTIN,
			Contacts:  contactRequests(current.Contacts),
			Addresses: addressRequests(current.Addresses),
		}
		if gstin != "" {
			req.GSTIN = gstin
		}
		if contactName != "" {
			replaced := false
			for i := range req.Contacts {
				if req.Contacts[i].IsPrimary {
					req.Contacts[i] = dto.ContactRequest{
						Name:      contactName,
						Email:     cell(row, "primary_email"),
						Phone:     cell(row, "primary_phone"),
						IsPrimary: true,
					}
					replaced = true
					break
				}
			}
			if !replaced {
				req.Contacts = append(req.Contacts, dto.ContactRequest{
					Name:      contactName,
					Email:     cell(row, "primary_email"),
					Phone:     cell(row, "primary_phone"),
					IsPrimary: true,
				})
			}
		}
		saved, err := s.customerSvc.UpdateCustomer(ctx, current.CustomerID, req, userID)
		if err != nil {
			summary.Errors = append(summary.Errors, fmt.Sprintf("row %d: %v", n+2, err))
			continue
		}
		byName[strings.ToLower(name)] = *saved
		summary.Updated++
	}

	return summary, nil
}

func contactRequests(contacts []domain.Contact) []dto.ContactRequest {
	reqs := make([]dto.ContactRequest, len(contacts))
	for i, c := range contacts {
		reqs[i] = dto.ContactRequest{Name: c.Name, Email: c.Email, Phone: c.Phone, IsPrimary: c.IsPrimary}
	}
	return reqs
}

func addressRequests(addresses []domain.Address) []dto.AddressRequest {
	reqs := make([]dto.AddressRequest, len(addresses))
	for i, a := range addresses {
		reqs[i] = dto.AddressRequest{
			Kind:      string(a.Kind),
			Line1:     a.Line1,
			Line2:     a.Line2,
			City:      a.City,
			State:     a.State,
			Pincode:   a.Pincode,
			IsDefault: a.IsDefault,
		}
	}
	return reqs
}
