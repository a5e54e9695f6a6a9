package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// DocumentType identifies which numbering sequence and transition table a
// document uses.
type DocumentType string

const (
	DocTypeQuote         DocumentType = "QUOTE"
	DocTypeSalesOrder    DocumentType = "SALES_ORDER"
	DocTypeDeliveryOrder DocumentType = "DELIVERY_ORDER"
	DocTypePurchaseOrder DocumentType = "PURCHASE_ORDER"
)

// DocumentStatus is the shared lifecycle enum for all business documents.
type DocumentStatus string

const (
	StatusDraft      DocumentStatus = "DRAFT"
	StatusSent       DocumentStatus = "SENT"
	StatusApproved   DocumentStatus = "APPROVED"
	StatusPartial    DocumentStatus = "PARTIAL"
	StatusClosed     DocumentStatus = "CLOSED"
	StatusRejected   DocumentStatus = "REJECTED"
	StatusSuperseded DocumentStatus = "SUPERSEDED"
	StatusDispatched DocumentStatus = "DISPATCHED"
)

// allowedTransitions lists, per document type, the statuses reachable from a
// given status through an explicit user action. Conversion side effects
// (e.g. a quote closing when its sales order is created) go through the same
// table.
var allowedTransitions = map[DocumentType]map[DocumentStatus][]DocumentStatus{
	DocTypeQuote: {
		StatusDraft:    {StatusSent},
		StatusSent:     {StatusApproved, StatusRejected, StatusSuperseded},
		StatusApproved: {StatusClosed, StatusSuperseded},
	},
	DocTypeSalesOrder: {
		StatusApproved: {StatusPartial, StatusClosed},
		StatusPartial:  {StatusPartial, StatusClosed},
	},
	DocTypeDeliveryOrder: {
		StatusDraft: {StatusDispatched},
	},
	DocTypePurchaseOrder: {
		StatusDraft: {StatusSent},
		StatusSent:  {StatusClosed, StatusRejected},
	},
}

// CanTransition reports whether a document of the given type may move from
// one status to another.
func CanTransition(docType DocumentType, from, to DocumentStatus) bool {
	targets, ok := allowedTransitions[docType][from]
	if !ok {
		return false
	}
	for _, t := range targets {
		if t == to {
			return true
		}
	}
	return false
}

// LineItem is a single product line on a quote, order or delivery.
// Quantities and money use decimals; computed amounts are rounded to 2dp.
type LineItem struct {
	LineItemID  string          `json:"lineItemID"`
	ProductID   string          `json:"productID"`
	ProductName string          `json:"productName"` // snapshot, survives product deletion
	Description string          `json:"description"`
	HSNCode     string          `json:"hsnCode"`
	Quantity    decimal.Decimal `json:"quantity"`
	Unit        string          `json:"unit"`
	Rate        decimal.Decimal `json:"rate"`
	DiscountPct decimal.Decimal `json:"discountPct"`
	GSTRate     decimal.Decimal `json:"gstRate"`
	Amount      decimal.Decimal `json:"amount"`    // qty * rate * (1 - discount)
	TaxAmount   decimal.Decimal `json:"taxAmount"` // amount * gstRate / 100

	// DeliveredQuantity tracks fulfilment on sales order lines only.
	DeliveredQuantity decimal.Decimal `json:"deliveredQuantity"`
}

// DocumentTotals aggregates the money columns shared by every document kind.
type DocumentTotals struct {
	Subtotal   decimal.Decimal `json:"subtotal"`
	TotalTax   decimal.Decimal `json:"totalTax"`
	GrandTotal decimal.Decimal `json:"grandTotal"`
}

// CustomerSnapshot denormalizes the customer identity onto a document so the
// document stays printable after customer edits or deletion.
type CustomerSnapshot struct {
	CustomerID   string `json:"customerID"`
	CustomerName string `json:"customerName"`
	GSTIN        string `json:"gstin"`
	Address      string `json:"address"`
}

// Quote is a priced offer to a customer.
type Quote struct {
	QuoteID           string           `json:"quoteID"`
	QuoteNumber       string           `json:"quoteNumber"`
	Revision          int              `json:"revision"`
	Customer          CustomerSnapshot `json:"customer"`
	Items             []LineItem       `json:"items"`
	Totals            DocumentTotals   `json:"totals"`
	Status            DocumentStatus   `json:"status"`
	QuoteDate         time.Time        `json:"quoteDate"`
	ValidUntil        *time.Time       `json:"validUntil"`
	Notes             string           `json:"notes"`
	LinkedSalesOrder  string           `json:"linkedSalesOrderID"` // set on conversion
	SupersededByQuote string           `json:"supersededByQuoteID"`
	AuditFields
}

// SalesOrder is a confirmed customer order, usually born from an approved quote.
type SalesOrder struct {
	SalesOrderID  string           `json:"salesOrderID"`
	OrderNumber   string           `json:"orderNumber"`
	ClientPONum   string           `json:"clientPONumber"`
	SourceQuoteID string           `json:"sourceQuoteID"`
	Customer      CustomerSnapshot `json:"customer"`
	Items         []LineItem       `json:"items"`
	Totals        DocumentTotals   `json:"totals"`
	Status        DocumentStatus   `json:"status"`
	OrderDate     time.Time        `json:"orderDate"`
	Notes         string           `json:"notes"`
	AuditFields
}

// PendingQuantity returns the undelivered quantity for a sales order line.
func (li LineItem) PendingQuantity() decimal.Decimal {
	return li.Quantity.Sub(li.DeliveredQuantity)
}

// FullyDelivered reports whether every line of the order has been delivered.
func (so SalesOrder) FullyDelivered() bool {
	for _, li := range so.Items {
		if li.PendingQuantity().IsPositive() {
			return false
		}
	}
	return true
}

// DeliveryItem references a sales order line and the quantity shipped against it.
type DeliveryItem struct {
	DeliveryItemID string          `json:"deliveryItemID"`
	SourceLineID   string          `json:"sourceLineID"` // sales order LineItemID
	ProductName    string          `json:"productName"`
	HSNCode        string          `json:"hsnCode"`
	Quantity       decimal.Decimal `json:"quantity"`
	Unit           string          `json:"unit"`
}

// DeliveryOrder records a (possibly partial) shipment against a sales order.
type DeliveryOrder struct {
	DeliveryOrderID string           `json:"deliveryOrderID"`
	DONumber        string           `json:"doNumber"`
	SalesOrderID    string           `json:"salesOrderID"`
	Customer        CustomerSnapshot `json:"customer"`
	Items           []DeliveryItem   `json:"items"`
	ShippingAddress string           `json:"shippingAddress"`
	VehicleNumber   string           `json:"vehicleNumber"`
	Status          DocumentStatus   `json:"status"`
	DeliveryDate    time.Time        `json:"deliveryDate"`
	AuditFields
}

// PurchaseOrder is an outbound order to a vendor.
type PurchaseOrder struct {
	PurchaseOrderID string         `json:"purchaseOrderID"`
	PONumber        string         `json:"poNumber"`
	VendorName      string         `json:"vendorName"`
	VendorGSTIN     string         `json:"vendorGSTIN"`
	VendorAddress   string         `json:"vendorAddress"`
	Items           []LineItem     `json:"items"`
	Totals          DocumentTotals `json:"totals"`
	Status          DocumentStatus `json:"status"`
	OrderDate       time.Time      `json:"orderDate"`
	Notes           string         `json:"notes"`
	AuditFields
}
