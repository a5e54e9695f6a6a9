package services

import (
	"context"
	"fmt"
	"strconv"

	"github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
	"github.com/shopspring/decimal"

	"github.com/salilgupta4/absoms-backend/internal/core/domain"
	portsrepo "github.com/salilgupta4/absoms-backend/internal/core/ports/repositories"
	portssvc "github.com/salilgupta4/absoms-backend/internal/core/ports/services"
)

// pdfService renders printable documents with maroto, styled by the company
// profile and PDF template settings singletons.
type pdfService struct {
	quoteRepo         portsrepo.QuoteReader
	salesOrderRepo    portsrepo.SalesOrderReader
	deliveryOrderRepo portsrepo.DeliveryOrderReader
	purchaseOrderRepo portsrepo.PurchaseOrderReader
	payrollRepo       portsrepo.PayrollReader
	settingsSvc       portssvc.SettingsSvcFacade
}

// NewPDFService creates a new PDF rendering service.
func NewPDFService(
	quoteRepo portsrepo.QuoteReader,
	salesOrderRepo portsrepo.SalesOrderReader,
	deliveryOrderRepo portsrepo.DeliveryOrderReader,
	purchaseOrderRepo portsrepo.PurchaseOrderReader,
	payrollRepo portsrepo.PayrollReader,
	settingsSvc portssvc.SettingsSvcFacade,
) portssvc.PDFSvc {
	return &pdfService{
		quoteRepo:         quoteRepo,
		salesOrderRepo:    salesOrderRepo,
		deliveryOrderRepo: deliveryOrderRepo,
		purchaseOrderRepo: purchaseOrderRepo,
		payrollRepo:       payrollRepo,
		settingsSvc:       settingsSvc,
	}
}

var _ portssvc.PDFSvc = (*pdfService)(nil)

// renderContext carries the settings both singletons contribute to a render.
type renderContext struct {
	company *domain.CompanyDetails
	tmpl    *domain.PDFTemplateSettings
	accent  *props.Color
}

func (s *pdfService) newRenderContext(ctx context.Context) (*renderContext, error) {
	company, err := s.settingsSvc.GetCompanyDetails(ctx)
	if err != nil {
		return nil, err
	}
	tmpl, err := s.settingsSvc.GetPDFTemplate(ctx)
	if err != nil {
		return nil, err
	}
	return &renderContext{
		company: company,
		tmpl:    tmpl,
		accent:  parseHexColor(tmpl.AccentColor),
	}, nil
}

// parseHexColor converts "#RRGGBB" to a maroto color, falling back to a dark
// blue on malformed input.
func parseHexColor(hex string) *props.Color {
	fallback := &props.Color{Red: 31, Green: 78, Blue: 121}
	if len(hex) != 7 || hex[0] != '#' {
		return fallback
	}
	r, err1 := strconv.ParseInt(hex[1:3], 16, 32)
	g, err2 := strconv.ParseInt(hex[3:5], 16, 32)
	b, err3 := strconv.ParseInt(hex[5:7], 16, 32)
	if err1 != nil || err2 != nil || err3 != nil {
		return fallback
	}
	return &props.Color{Red: int(r), Green: int(g), Blue: int(b)}
}

func newDocument() core.Maroto {
	cfg := config.NewBuilder().
		WithLeftMargin(10).
		WithTopMargin(10).
		WithRightMargin(10).
		Build()
	return maroto.New(cfg)
}

// addHeader writes the company block and the document title.
func (rc *renderContext) addHeader(m core.Maroto, title, number string) {
	m.AddRow(10,
		text.NewCol(8, rc.company.Name, props.Text{Size: 14, Style: fontstyle.Bold, Color: rc.accent}),
		text.NewCol(4, title, props.Text{Size: 14, Style: fontstyle.Bold, Align: align.Right, Color: rc.accent}),
	)
	companyLine := fmt.Sprintf("%s, %s, %s %s", rc.company.Address, rc.company.City, rc.company.State, rc.company.Pincode)
	m.AddRow(5,
		text.NewCol(8, companyLine, props.Text{Size: 8}),
		text.NewCol(4, number, props.Text{Size: 10, Align: align.Right}),
	)
	m.AddRow(5,
		text.NewCol(8, fmt.Sprintf("GSTIN: %s  |  %s  |  %s", rc.company.GSTIN, rc.company.Email, rc.company.Phone), props.Text{Size: 8}),
	)
	m.AddRows(line.NewRow(3))
}

// addPartyBlock writes the counterparty identity.
func (rc *renderContext) addPartyBlock(m core.Maroto, label, name, gstin, address string) {
	m.AddRow(5, text.NewCol(12, label, props.Text{Size: 9, Style: fontstyle.Bold, Color: rc.accent}))
	m.AddRow(5, text.NewCol(12, name, props.Text{Size: 10}))
	if address != "" {
		m.AddRow(5, text.NewCol(12, address, props.Text{Size: 8}))
	}
	if gstin != "" {
		m.AddRow(5, text.NewCol(12, "GSTIN: "+gstin, props.Text{Size: 8}))
	}
	m.AddRows(line.NewRow(3))
}

// addLineItemTable writes the priced items grid used by quotes, sales orders
// and purchase orders.
func (rc *renderContext) addLineItemTable(m core.Maroto, items []domain.LineItem) {
	headerProps := props.Text{Size: 8, Style: fontstyle.Bold, Color: rc.accent}
	m.AddRow(6,
		text.NewCol(4, "Item", headerProps),
		text.NewCol(1, "HSN", headerProps),
		text.NewCol(2, "Qty", props.Text{Size: 8, Style: fontstyle.Bold, Align: align.Right, Color: rc.accent}),
		text.NewCol(2, "Rate", props.Text{Size: 8, Style: fontstyle.Bold, Align: align.Right, Color: rc.accent}),
		text.NewCol(1, "GST%", props.Text{Size: 8, Style: fontstyle.Bold, Align: align.Right, Color: rc.accent}),
		text.NewCol(2, "Amount", props.Text{Size: 8, Style: fontstyle.Bold, Align: align.Right, Color: rc.accent}),
	)
	for _, li := range items {
		m.AddRow(5,
			text.NewCol(4, li.ProductName, props.Text{Size: 8}),
			text.NewCol(1, li.HSNCode, props.Text{Size: 8}),
			text.NewCol(2, fmt.Sprintf("%s %s", li.Quantity, li.Unit), props.Text{Size: 8, Align: align.Right}),
			text.NewCol(2, li.Rate.StringFixed(2), props.Text{Size: 8, Align: align.Right}),
			text.NewCol(1, li.GSTRate.String(), props.Text{Size: 8, Align: align.Right}),
			text.NewCol(2, li.Amount.StringFixed(2), props.Text{Size: 8, Align: align.Right}),
		)
	}
	m.AddRows(line.NewRow(3))
}

// addTotals writes the money summary block.
func (rc *renderContext) addTotals(m core.Maroto, totals domain.DocumentTotals) {
	addTotalRow := func(label string, amount decimal.Decimal, bold bool) {
		style := fontstyle.Normal
		if bold {
			style = fontstyle.Bold
		}
		m.AddRow(5,
			col.New(8),
			text.NewCol(2, label, props.Text{Size: 9, Style: style, Align: align.Right}),
			text.NewCol(2, amount.StringFixed(2), props.Text{Size: 9, Style: style, Align: align.Right}),
		)
	}
	addTotalRow("Subtotal", totals.Subtotal, false)
	addTotalRow("Tax", totals.TotalTax, false)
	addTotalRow("Total", totals.GrandTotal, true)
}

// addFooter writes terms and the configured footer line.
func (rc *renderContext) addFooter(m core.Maroto) {
	if rc.tmpl.Terms != "" {
		m.AddRows(line.NewRow(3))
		m.AddRow(5, text.NewCol(12, "Terms & Conditions", props.Text{Size: 8, Style: fontstyle.Bold}))
		m.AddRow(8, text.NewCol(12, rc.tmpl.Terms, props.Text{Size: 7}))
	}
	if rc.tmpl.FooterText != "" {
		m.AddRow(6, text.NewCol(12, rc.tmpl.FooterText, props.Text{Size: 7, Align: align.Center}))
	}
}

func generate(m core.Maroto) ([]byte, error) {
	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf generation failed: %w", err)
	}
	return doc.GetBytes(), nil
}

func (s *pdfService) RenderQuotePDF(ctx context.Context, quoteID string) ([]byte, error) {
	quote, err := s.quoteRepo.FindQuoteByID(ctx, quoteID)
	if err != nil {
		return nil, err
	}
	rc, err := s.newRenderContext(ctx)
	if err != nil {
		return nil, err
	}

	m := newDocument()
	title := "QUOTATION"
	number := quote.QuoteNumber
	if quote.Revision > 1 {
		number = fmt.Sprintf("%s (Rev %d)", quote.QuoteNumber, quote.Revision)
	}
	rc.addHeader(m, title, number)
	rc.addPartyBlock(m, "To", quote.Customer.CustomerName, quote.Customer.GSTIN, quote.Customer.Address)
	m.AddRow(5, text.NewCol(12, "Date: "+quote.QuoteDate.Format("02 Jan 2006"), props.Text{Size: 8}))
	rc.addLineItemTable(m, quote.Items)
	rc.addTotals(m, quote.Totals)
	rc.addFooter(m)
	return generate(m)
}

func (s *pdfService) RenderSalesOrderPDF(ctx context.Context, salesOrderID string) ([]byte, error) {
	order, err := s.salesOrderRepo.FindSalesOrderByID(ctx, salesOrderID)
	if err != nil {
		return nil, err
	}
	rc, err := s.newRenderContext(ctx)
	if err != nil {
		return nil, err
	}

	m := newDocument()
	rc.addHeader(m, "ORDER CONFIRMATION", order.OrderNumber)
	rc.addPartyBlock(m, "To", order.Customer.CustomerName, order.Customer.GSTIN, order.Customer.Address)
	meta := "Date: " + order.OrderDate.Format("02 Jan 2006")
	if order.ClientPONum != "" {
		meta += "  |  Your PO: " + order.ClientPONum
	}
	m.AddRow(5, text.NewCol(12, meta, props.Text{Size: 8}))
	rc.addLineItemTable(m, order.Items)
	rc.addTotals(m, order.Totals)
	rc.addFooter(m)
	return generate(m)
}

func (s *pdfService) RenderDeliveryOrderPDF(ctx context.Context, deliveryOrderID string) ([]byte, error) {
	do, err := s.deliveryOrderRepo.FindDeliveryOrderByID(ctx, deliveryOrderID)
	if err != nil {
		return nil, err
	}
	rc, err := s.newRenderContext(ctx)
	if err != nil {
		return nil, err
	}

	m := newDocument()
	rc.addHeader(m, "DELIVERY CHALLAN", do.DONumber)
	rc.addPartyBlock(m, "Deliver To", do.Customer.CustomerName, do.Customer.GSTIN, do.ShippingAddress)
	meta := "Date: " + do.DeliveryDate.Format("02 Jan 2006")
	if do.VehicleNumber != "" {
		meta += "  |  Vehicle: " + do.VehicleNumber
	}
	m.AddRow(5, text.NewCol(12, meta, props.Text{Size: 8}))

	headerProps := props.Text{Size: 8, Style: fontstyle.Bold, Color: rc.accent}
	m.AddRow(6,
		text.NewCol(6, "Item", headerProps),
		text.NewCol(3, "HSN", headerProps),
		text.NewCol(3, "Qty", props.Text{Size: 8, Style: fontstyle.Bold, Align: align.Right, Color: rc.accent}),
	)
	for _, it := range do.Items {
		m.AddRow(5,
			text.NewCol(6, it.ProductName, props.Text{Size: 8}),
			text.NewCol(3, it.HSNCode, props.Text{Size: 8}),
			text.NewCol(3, fmt.Sprintf("%s %s", it.Quantity, it.Unit), props.Text{Size: 8, Align: align.Right}),
		)
	}
	rc.addFooter(m)
	return generate(m)
}

func (s *pdfService) RenderPurchaseOrderPDF(ctx context.Context, purchaseOrderID string) ([]byte, error) {
	po, err := s.purchaseOrderRepo.FindPurchaseOrderByID(ctx, purchaseOrderID)
	if err != nil {
		return nil, err
	}
	rc, err := s.newRenderContext(ctx)
	if err != nil {
		return nil, err
	}

	m := newDocument()
	rc.addHeader(m, "PURCHASE ORDER", po.PONumber)
	rc.addPartyBlock(m, "Vendor", po.VendorName, po.VendorGSTIN, po.VendorAddress)
	m.AddRow(5, text.NewCol(12, "Date: "+po.OrderDate.Format("02 Jan 2006"), props.Text{Size: 8}))
	rc.addLineItemTable(m, po.Items)
	rc.addTotals(m, po.Totals)
	rc.addFooter(m)
	return generate(m)
}

func (s *pdfService) RenderPayslipPDF(ctx context.Context, payrollRecordID string) ([]byte, error) {
	record, err := s.payrollRepo.FindPayrollRecordByID(ctx, payrollRecordID)
	if err != nil {
		return nil, err
	}
	rc, err := s.newRenderContext(ctx)
	if err != nil {
		return nil, err
	}

	m := newDocument()
	rc.addHeader(m, "PAYSLIP", record.Month)
	m.AddRow(6, text.NewCol(12, record.EmployeeName, props.Text{Size: 11, Style: fontstyle.Bold}))
	m.AddRow(5, text.NewCol(12, fmt.Sprintf("Days paid: %s of %d", record.DaysWorked, record.DaysInMonth), props.Text{Size: 8}))
	m.AddRows(line.NewRow(3))

	addAmountRow := func(label string, amount decimal.Decimal, bold bool) {
		style := fontstyle.Normal
		if bold {
			style = fontstyle.Bold
		}
		m.AddRow(5,
			text.NewCol(8, label, props.Text{Size: 9, Style: style}),
			text.NewCol(4, amount.StringFixed(2), props.Text{Size: 9, Style: style, Align: align.Right}),
		)
	}

	addAmountRow("Basic", record.EarnedBasic, false)
	addAmountRow("HRA", record.EarnedHRA, false)
	addAmountRow("Special Allowances", record.EarnedAllowances, false)
	if record.OvertimeAmount.IsPositive() {
		addAmountRow("Overtime", record.OvertimeAmount, false)
	}
	addAmountRow("Gross Pay", record.GrossPay, true)
	m.AddRows(line.NewRow(2))
	addAmountRow("Provident Fund", record.PFDeduction.Neg(), false)
	addAmountRow("ESI", record.ESIDeduction.Neg(), false)
	addAmountRow("Professional Tax", record.ProfessionalTax.Neg(), false)
	if record.AdvanceDeduction.IsPositive() {
		addAmountRow("Advance Recovery", record.AdvanceDeduction.Neg(), false)
	}
	m.AddRows(line.NewRow(2))
	addAmountRow("Net Pay", record.NetPay, true)

	rc.addFooter(m)
	return generate(m)
}
