package dto

import (
	"time"

	"github.com/salilgupta4/absoms-backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// LineItemRequest defines one product line on a document request. Rate and
// GSTRate default from the product when omitted.
type LineItemRequest struct {
	ProductID   string           `json:"productID" binding:"required"`
	Description string           `json:"description"`
	Quantity    decimal.Decimal  `json:"quantity" binding:"required"`
	Rate        *decimal.Decimal `json:"rate"`
	DiscountPct decimal.Decimal  `json:"discountPct"`
	GSTRate     *decimal.Decimal `json:"gstRate"`
}

// LineItemResponse defines the data returned for a document line.
type LineItemResponse struct {
	LineItemID        string          `json:"lineItemID"`
	ProductID         string          `json:"productID"`
	ProductName       string          `json:"productName"`
	Description       string          `json:"description"`
	HSNCode           string          `json:"hsnCode"`
	Quantity          decimal.Decimal `json:"quantity"`
	Unit              string          `json:"unit"`
	Rate              decimal.Decimal `json:"rate"`
	DiscountPct       decimal.Decimal `json:"discountPct"`
	GSTRate           decimal.Decimal `json:"gstRate"`
	Amount            decimal.Decimal `json:"amount"`
	TaxAmount         decimal.Decimal `json:"taxAmount"`
	DeliveredQuantity decimal.Decimal `json:"deliveredQuantity"`
	PendingQuantity   decimal.Decimal `json:"pendingQuantity"`
}

// TotalsResponse defines the aggregated money columns of a document.
type TotalsResponse struct {
	Subtotal   decimal.Decimal `json:"subtotal"`
	TotalTax   decimal.Decimal `json:"totalTax"`
	GrandTotal decimal.Decimal `json:"grandTotal"`
}

// CustomerSnapshotResponse is the customer identity frozen onto a document.
type CustomerSnapshotResponse struct {
	CustomerID   string `json:"customerID"`
	CustomerName string `json:"customerName"`
	GSTIN        string `json:"gstin"`
	Address      string `json:"address"`
}

// ChangeStatusRequest moves a document to a new lifecycle status.
type ChangeStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// ListDocumentsParams defines query parameters for listing documents.
type ListDocumentsParams struct {
	Status     string `form:"status"`
	CustomerID string `form:"customerID"`
	Limit      int    `form:"limit,default=20"`
	Offset     int    `form:"offset,default=0"`
}

func toLineItemResponses(items []domain.LineItem) []LineItemResponse {
	res := make([]LineItemResponse, len(items))
	for i, li := range items {
		res[i] = LineItemResponse{
			LineItemID:        li.LineItemID,
			ProductID:         li.ProductID,
			ProductName:       li.ProductName,
			Description:       li.Description,
			HSNCode:           li.HSNCode,
			Quantity:          li.Quantity,
			Unit:              li.Unit,
			Rate:              li.Rate,
			DiscountPct:       li.DiscountPct,
			GSTRate:           li.GSTRate,
			Amount:            li.Amount,
			TaxAmount:         li.TaxAmount,
			DeliveredQuantity: li.DeliveredQuantity,
			PendingQuantity:   li.PendingQuantity(),
		}
	}
	return res
}

func toTotalsResponse(t domain.DocumentTotals) TotalsResponse {
	return TotalsResponse{
		Subtotal:   t.Subtotal,
		TotalTax:   t.TotalTax,
		GrandTotal: t.GrandTotal,
	}
}

func toCustomerSnapshotResponse(c domain.CustomerSnapshot) CustomerSnapshotResponse {
	return CustomerSnapshotResponse{
		CustomerID:   c.CustomerID,
		CustomerName: c.CustomerName,
		GSTIN:        c.GSTIN,
		Address:      c.Address,
	}
}

// CreateQuoteRequest defines the data needed to create a quote.
type CreateQuoteRequest struct {
	CustomerID string            `json:"customerID" binding:"required"`
	QuoteDate  time.Time         `json:"quoteDate" binding:"required"`
	ValidUntil *time.Time        `json:"validUntil"`
	Notes      string            `json:"notes"`
	Items      []LineItemRequest `json:"items" binding:"required,min=1,dive"`
}

// UpdateQuoteRequest replaces the editable fields of a DRAFT quote.
type UpdateQuoteRequest struct {
	QuoteDate  time.Time         `json:"quoteDate" binding:"required"`
	ValidUntil *time.Time        `json:"validUntil"`
	Notes      string            `json:"notes"`
	Items      []LineItemRequest `json:"items" binding:"required,min=1,dive"`
}

// ConvertQuoteRequest carries the conversion-time fields for the sales order.
type ConvertQuoteRequest struct {
	ClientPONumber string     `json:"clientPONumber"`
	OrderDate      *time.Time `json:"orderDate"`
}

// QuoteResponse defines the data returned for a quote.
type QuoteResponse struct {
	QuoteID           string                   `json:"quoteID"`
	QuoteNumber       string                   `json:"quoteNumber"`
	Revision          int                      `json:"revision"`
	Customer          CustomerSnapshotResponse `json:"customer"`
	Items             []LineItemResponse       `json:"items"`
	Totals            TotalsResponse           `json:"totals"`
	Status            string                   `json:"status"`
	QuoteDate         time.Time                `json:"quoteDate"`
	ValidUntil        *time.Time               `json:"validUntil,omitempty"`
	Notes             string                   `json:"notes"`
	LinkedSalesOrder  string                   `json:"linkedSalesOrderID,omitempty"`
	SupersededByQuote string                   `json:"supersededByQuoteID,omitempty"`
	CreatedAt         time.Time                `json:"createdAt"`
	CreatedBy         string                   `json:"createdBy"`
}

// ToQuoteResponse converts a domain.Quote to QuoteResponse DTO
func ToQuoteResponse(q *domain.Quote) QuoteResponse {
	return QuoteResponse{
		QuoteID:           q.QuoteID,
		QuoteNumber:       q.QuoteNumber,
		Revision:          q.Revision,
		Customer:          toCustomerSnapshotResponse(q.Customer),
		Items:             toLineItemResponses(q.Items),
		Totals:            toTotalsResponse(q.Totals),
		Status:            string(q.Status),
		QuoteDate:         q.QuoteDate,
		ValidUntil:        q.ValidUntil,
		Notes:             q.Notes,
		LinkedSalesOrder:  q.LinkedSalesOrder,
		SupersededByQuote: q.SupersededByQuote,
		CreatedAt:         q.CreatedAt,
		CreatedBy:         q.CreatedBy,
	}
}

// ToListQuoteResponse converts a slice of domain.Quote to DTOs
func ToListQuoteResponse(quotes []domain.Quote) []QuoteResponse {
	res := make([]QuoteResponse, len(quotes))
	for i, q := range quotes {
		res[i] = ToQuoteResponse(&q)
	}
	return res
}

// CreateSalesOrderRequest defines the data for creating a sales order without
// a source quote.
type CreateSalesOrderRequest struct {
	CustomerID     string            `json:"customerID" binding:"required"`
	ClientPONumber string            `json:"clientPONumber"`
	OrderDate      time.Time         `json:"orderDate" binding:"required"`
	Notes          string            `json:"notes"`
	Items          []LineItemRequest `json:"items" binding:"required,min=1,dive"`
}

// UpdateSalesOrderRequest patches header fields of a sales order.
type UpdateSalesOrderRequest struct {
	ClientPONumber *string `json:"clientPONumber"`
	Notes          *string `json:"notes"`
}

// SalesOrderResponse defines the data returned for a sales order.
type SalesOrderResponse struct {
	SalesOrderID   string                   `json:"salesOrderID"`
	OrderNumber    string                   `json:"orderNumber"`
	ClientPONumber string                   `json:"clientPONumber"`
	SourceQuoteID  string                   `json:"sourceQuoteID,omitempty"`
	Customer       CustomerSnapshotResponse `json:"customer"`
	Items          []LineItemResponse       `json:"items"`
	Totals         TotalsResponse           `json:"totals"`
	Status         string                   `json:"status"`
	OrderDate      time.Time                `json:"orderDate"`
	Notes          string                   `json:"notes"`
	FullyDelivered bool                     `json:"fullyDelivered"`
	CreatedAt      time.Time                `json:"createdAt"`
	CreatedBy      string                   `json:"createdBy"`
}

// ToSalesOrderResponse converts a domain.SalesOrder to SalesOrderResponse DTO
func ToSalesOrderResponse(so *domain.SalesOrder) SalesOrderResponse {
	return SalesOrderResponse{
		SalesOrderID:   so.SalesOrderID,
		OrderNumber:    so.OrderNumber,
		ClientPONumber: so.ClientPONum,
		SourceQuoteID:  so.SourceQuoteID,
		Customer:       toCustomerSnapshotResponse(so.Customer),
		Items:          toLineItemResponses(so.Items),
		Totals:         toTotalsResponse(so.Totals),
		Status:         string(so.Status),
		OrderDate:      so.OrderDate,
		Notes:          so.Notes,
		FullyDelivered: so.FullyDelivered(),
		CreatedAt:      so.CreatedAt,
		CreatedBy:      so.CreatedBy,
	}
}

// ToListSalesOrderResponse converts a slice of domain.SalesOrder to DTOs
func ToListSalesOrderResponse(orders []domain.SalesOrder) []SalesOrderResponse {
	res := make([]SalesOrderResponse, len(orders))
	for i, so := range orders {
		res[i] = ToSalesOrderResponse(&so)
	}
	return res
}

// DeliveryItemRequest ships a quantity against one sales order line.
type DeliveryItemRequest struct {
	SourceLineID string          `json:"sourceLineID" binding:"required"`
	Quantity     decimal.Decimal `json:"quantity" binding:"required"`
}

// CreateDeliveryOrderRequest defines the data for recording a shipment.
type CreateDeliveryOrderRequest struct {
	SalesOrderID    string                `json:"salesOrderID" binding:"required"`
	DeliveryDate    time.Time             `json:"deliveryDate" binding:"required"`
	ShippingAddress string                `json:"shippingAddress"`
	VehicleNumber   string                `json:"vehicleNumber"`
	Items           []DeliveryItemRequest `json:"items" binding:"required,min=1,dive"`
}

// DeliveryItemResponse defines the data returned for a delivery line.
type DeliveryItemResponse struct {
	DeliveryItemID string          `json:"deliveryItemID"`
	SourceLineID   string          `json:"sourceLineID"`
	ProductName    string          `json:"productName"`
	HSNCode        string          `json:"hsnCode"`
	Quantity       decimal.Decimal `json:"quantity"`
	Unit           string          `json:"unit"`
}

// DeliveryOrderResponse defines the data returned for a delivery order.
type DeliveryOrderResponse struct {
	DeliveryOrderID string                   `json:"deliveryOrderID"`
	DONumber        string                   `json:"doNumber"`
	SalesOrderID    string                   `json:"salesOrderID"`
	Customer        CustomerSnapshotResponse `json:"customer"`
	Items           []DeliveryItemResponse   `json:"items"`
	ShippingAddress string                   `json:"shippingAddress"`
	VehicleNumber   string                   `json:"vehicleNumber"`
	Status          string                   `json:"status"`
	DeliveryDate    time.Time                `json:"deliveryDate"`
	CreatedAt       time.Time                `json:"createdAt"`
	CreatedBy       string                   `json:"createdBy"`
}

// ToDeliveryOrderResponse converts a domain.DeliveryOrder to its DTO
func ToDeliveryOrderResponse(do *domain.DeliveryOrder) DeliveryOrderResponse {
	items := make([]DeliveryItemResponse, len(do.Items))
	for i, it := range do.Items {
		items[i] = DeliveryItemResponse{
			DeliveryItemID: it.DeliveryItemID,
			SourceLineID:   it.SourceLineID,
			ProductName:    it.ProductName,
			HSNCode:        it.HSNCode,
			Quantity:       it.Quantity,
			Unit:           it.Unit,
		}
	}
	return DeliveryOrderResponse{
		DeliveryOrderID: do.DeliveryOrderID,
		DONumber:        do.DONumber,
		SalesOrderID:    do.SalesOrderID,
		Customer:        toCustomerSnapshotResponse(do.Customer),
		Items:           items,
		ShippingAddress: do.ShippingAddress,
		VehicleNumber:   do.VehicleNumber,
		Status:          string(do.Status),
		DeliveryDate:    do.DeliveryDate,
		CreatedAt:       do.CreatedAt,
		CreatedBy:       do.CreatedBy,
	}
}

// ToListDeliveryOrderResponse converts a slice of domain.DeliveryOrder to DTOs
func ToListDeliveryOrderResponse(orders []domain.DeliveryOrder) []DeliveryOrderResponse {
	res := make([]DeliveryOrderResponse, len(orders))
	for i, do := range orders {
		res[i] = ToDeliveryOrderResponse(&do)
	}
	return res
}

// CreatePurchaseOrderRequest defines the data needed to create a purchase order.
type CreatePurchaseOrderRequest struct {
	VendorName    string            `json:"vendorName" binding:"required"`
	VendorGSTIN   string            `json:"vendorGSTIN" binding:"omitempty,len=15"`
	VendorAddress string            `json:"vendorAddress"`
	OrderDate     time.Time         `json:"orderDate" binding:"required"`
	Notes         string            `json:"notes"`
	Items         []LineItemRequest `json:"items" binding:"required,min=1,dive"`
}

// UpdatePurchaseOrderRequest replaces the editable fields of a DRAFT purchase order.
type UpdatePurchaseOrderRequest struct {
	VendorName    string            `json:"vendorName" binding:"required"`
	VendorGSTIN   string            `json:"vendorGSTIN" binding:"omitempty,len=15"`
	VendorAddress string            `json:"vendorAddress"`
	OrderDate     time.Time         `json:"orderDate" binding:"required"`
	Notes         string            `json:"notes"`
	Items         []LineItemRequest `json:"items" binding:"required,min=1,dive"`
}

// PurchaseOrderResponse defines the data returned for a purchase order.
type PurchaseOrderResponse struct {
	PurchaseOrderID string             `json:"purchaseOrderID"`
	PONumber        string             `json:"poNumber"`
	VendorName      string             `json:"vendorName"`
	VendorGSTIN     string             `json:"vendorGSTIN"`
	VendorAddress   string             `json:"vendorAddress"`
	Items           []LineItemResponse `json:"items"`
	Totals          TotalsResponse     `json:"totals"`
	Status          string             `json:"status"`
	OrderDate       time.Time          `json:"orderDate"`
	Notes           string             `json:"notes"`
	CreatedAt       time.Time          `json:"createdAt"`
	CreatedBy       string             `json:"createdBy"`
}

// ToPurchaseOrderResponse converts a domain.PurchaseOrder to its DTO
func ToPurchaseOrderResponse(po *domain.PurchaseOrder) PurchaseOrderResponse {
	return PurchaseOrderResponse{
		PurchaseOrderID: po.PurchaseOrderID,
		PONumber:        po.PONumber,
		VendorName:      po.VendorName,
		VendorGSTIN:     po.VendorGSTIN,
		VendorAddress:   po.VendorAddress,
		Items:           toLineItemResponses(po.Items),
		Totals:          toTotalsResponse(po.Totals),
		Status:          string(po.Status),
		OrderDate:       po.OrderDate,
		Notes:           po.Notes,
		CreatedAt:       po.CreatedAt,
		CreatedBy:       po.CreatedBy,
	}
}

// ToListPurchaseOrderResponse converts a slice of domain.PurchaseOrder to DTOs
func ToListPurchaseOrderResponse(orders []domain.PurchaseOrder) []PurchaseOrderResponse {
	res := make([]PurchaseOrderResponse, len(orders))
	for i, po := range orders {
		res[i] = ToPurchaseOrderResponse(&po)
	}
	return res
}
