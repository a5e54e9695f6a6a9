package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Quote represents a quotes row with the denormalized customer snapshot and
// persisted totals.
type Quote struct {
	QuoteID           string          `db:"quote_id"`
	QuoteNumber       string          `db:"quote_number"`
	Revision          int             `db:"revision"`
	CustomerID        string          `db:"customer_id"`
	CustomerName      string          `db:"customer_name"`
	CustomerGSTIN     string          `db:"customer_gstin"`
	CustomerAddress   string          `db:"customer_address"`
	Subtotal          decimal.Decimal `db:"subtotal"`
	TotalTax          decimal.Decimal `db:"total_tax"`
	GrandTotal        decimal.Decimal `db:"grand_total"`
	Status            string          `db:"status"`
	QuoteDate         time.Time       `db:"quote_date"`
	ValidUntil        *time.Time      `db:"valid_until"`
	Notes             string          `db:"notes"`
	LinkedSalesOrder  string          `db:"linked_sales_order_id"`
	SupersededByQuote string          `db:"superseded_by_quote_id"`
	AuditFields
}

// QuoteItem represents a quote_items row.
type QuoteItem struct {
	LineItemID  string          `db:"line_item_id"`
	QuoteID     string          `db:"quote_id"`
	ProductID   string          `db:"product_id"`
	ProductName string          `db:"product_name"`
	Description string          `db:"description"`
	HSNCode     string          `db:"hsn_code"`
	Quantity    decimal.Decimal `db:"quantity"`
	Unit        string          `db:"unit"`
	Rate        decimal.Decimal `db:"rate"`
	DiscountPct decimal.Decimal `db:"discount_pct"`
	GSTRate     decimal.Decimal `db:"gst_rate"`
	Amount      decimal.Decimal `db:"amount"`
	TaxAmount   decimal.Decimal `db:"tax_amount"`
}

// SalesOrder represents a sales_orders row.
type SalesOrder struct {
	SalesOrderID    string          `db:"sales_order_id"`
	OrderNumber     string          `db:"order_number"`
	ClientPONumber  string          `db:"client_po_number"`
	SourceQuoteID   string          `db:"source_quote_id"`
	CustomerID      string          `db:"customer_id"`
	CustomerName    string          `db:"customer_name"`
	CustomerGSTIN   string          `db:"customer_gstin"`
	CustomerAddress string          `db:"customer_address"`
	Subtotal        decimal.Decimal `db:"subtotal"`
	TotalTax        decimal.Decimal `db:"total_tax"`
	GrandTotal      decimal.Decimal `db:"grand_total"`
	Status          string          `db:"status"`
	OrderDate       time.Time       `db:"order_date"`
	Notes           string          `db:"notes"`
	AuditFields
}

// SalesOrderItem represents a sales_order_items row. DeliveredQuantity moves
// as delivery orders are recorded.
type SalesOrderItem struct {
	LineItemID        string          `db:"line_item_id"`
	SalesOrderID      string          `db:"sales_order_id"`
	ProductID         string          `db:"product_id"`
	ProductName       string          `db:"product_name"`
	Description       string          `db:"description"`
	HSNCode           string          `db:"hsn_code"`
	Quantity          decimal.Decimal `db:"quantity"`
	Unit              string          `db:"unit"`
	Rate              decimal.Decimal `db:"rate"`
	DiscountPct       decimal.Decimal `db:"discount_pct"`
	GSTRate           decimal.Decimal `db:"gst_rate"`
	Amount            decimal.Decimal `db:"amount"`
	TaxAmount         decimal.Decimal `db:"tax_amount"`
	DeliveredQuantity decimal.Decimal `db:"delivered_quantity"`
}

// DeliveryOrder represents a delivery_orders row.
type DeliveryOrder struct {
	DeliveryOrderID string    `db:"delivery_order_id"`
	DONumber        string    `db:"do_number"`
	SalesOrderID    string    `db:"sales_order_id"`
	CustomerID      string    `db:"customer_id"`
	CustomerName    string    `db:"customer_name"`
	CustomerGSTIN   string    `db:"customer_gstin"`
	CustomerAddress string    `db:"customer_address"`
	ShippingAddress string    `db:"shipping_address"`
	VehicleNumber   string    `db:"vehicle_number"`
	Status          string    `db:"status"`
	DeliveryDate    time.Time `db:"delivery_date"`
	AuditFields
}

// DeliveryOrderItem represents a delivery_order_items row.
type DeliveryOrderItem struct {
	DeliveryItemID  string          `db:"delivery_item_id"`
	DeliveryOrderID string          `db:"delivery_order_id"`
	SourceLineID    string          `db:"source_line_id"`
	ProductName     string          `db:"product_name"`
	HSNCode         string          `db:"hsn_code"`
	Quantity        decimal.Decimal `db:"quantity"`
	Unit            string          `db:"unit"`
}

// PurchaseOrder represents a purchase_orders row.
type PurchaseOrder struct {
	PurchaseOrderID string          `db:"purchase_order_id"`
	PONumber        string          `db:"po_number"`
	VendorName      string          `db:"vendor_name"`
	VendorGSTIN     string          `db:"vendor_gstin"`
	VendorAddress   string          `db:"vendor_address"`
	Subtotal        decimal.Decimal `db:"subtotal"`
	TotalTax        decimal.Decimal `db:"total_tax"`
	GrandTotal      decimal.Decimal `db:"grand_total"`
	Status          string          `db:"status"`
	OrderDate       time.Time       `db:"order_date"`
	Notes           string          `db:"notes"`
	AuditFields
}

// PurchaseOrderItem represents a purchase_order_items row.
type PurchaseOrderItem struct {
	LineItemID      string          `db:"line_item_id"`
	PurchaseOrderID string          `db:"purchase_order_id"`
	ProductID       string          `db:"product_id"`
	ProductName     string          `db:"product_name"`
	Description     string          `db:"description"`
	HSNCode         string          `db:"hsn_code"`
	Quantity        decimal.Decimal `db:"quantity"`
	Unit            string          `db:"unit"`
	Rate            decimal.Decimal `db:"rate"`
	DiscountPct     decimal.Decimal `db:"discount_pct"`
	GSTRate         decimal.Decimal `db:"gst_rate"`
	Amount          decimal.Decimal `db:"amount"`
	TaxAmount       decimal.Decimal `db:"tax_amount"`
}
