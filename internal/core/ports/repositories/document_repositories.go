package repositories

import (
	"context"

	"github.com/salilgupta4/absoms-backend/internal/core/domain"
)

// DocumentListFilter narrows document list queries.
type DocumentListFilter struct {
	Status     domain.DocumentStatus // empty matches all
	CustomerID string                // empty matches all
	Limit      int
	Offset     int
}

// QuoteReader defines read operations for quotes
type QuoteReader interface {
	// FindQuoteByID retrieves a quote with its line items.
	FindQuoteByID(ctx context.Context, quoteID string) (*domain.Quote, error)

	// FindQuotes retrieves a filtered, paginated list of quotes.
	FindQuotes(ctx context.Context, filter DocumentListFilter) ([]domain.Quote, error)
}

// QuoteWriter defines write operations for quotes
type QuoteWriter interface {
	// SaveQuote persists a new quote with its line items. A quote arriving
	// without a number has the next quote number reserved and set inside the
	// insert transaction, so a failed save never burns a number.
	SaveQuote(ctx context.Context, quote *domain.Quote) error

	// UpdateQuote replaces the quote row and its line items.
	UpdateQuote(ctx context.Context, quote domain.Quote) error

	// UpdateQuoteStatus updates only the status (and link columns) of a quote.
	UpdateQuoteStatus(ctx context.Context, quote domain.Quote) error

	// DeleteQuote removes a draft quote and its line items.
	DeleteQuote(ctx context.Context, quoteID string) error
}

// QuoteRepositoryFacade combines all quote repository interfaces
type QuoteRepositoryFacade interface {
	QuoteReader
	QuoteWriter
}

// SalesOrderReader defines read operations for sales orders
type SalesOrderReader interface {
	FindSalesOrderByID(ctx context.Context, salesOrderID string) (*domain.SalesOrder, error)
	FindSalesOrders(ctx context.Context, filter DocumentListFilter) ([]domain.SalesOrder, error)
}

// SalesOrderWriter defines write operations for sales orders
type SalesOrderWriter interface {
	// SaveSalesOrder persists a new order, reserving its order number inside
	// the insert transaction when none is set.
	SaveSalesOrder(ctx context.Context, order *domain.SalesOrder) error

	// UpdateSalesOrder replaces the order row and its line items, including
	// delivered quantities and status.
	UpdateSalesOrder(ctx context.Context, order domain.SalesOrder) error
}

// SalesOrderRepositoryFacade combines all sales order repository interfaces
type SalesOrderRepositoryFacade interface {
	SalesOrderReader
	SalesOrderWriter
}

// DeliveryOrderReader defines read operations for delivery orders
type DeliveryOrderReader interface {
	FindDeliveryOrderByID(ctx context.Context, deliveryOrderID string) (*domain.DeliveryOrder, error)
	FindDeliveryOrders(ctx context.Context, filter DocumentListFilter) ([]domain.DeliveryOrder, error)

	// FindDeliveryOrdersBySalesOrder retrieves every delivery against a sales order.
	FindDeliveryOrdersBySalesOrder(ctx context.Context, salesOrderID string) ([]domain.DeliveryOrder, error)
}

// DeliveryOrderWriter defines write operations for delivery orders
type DeliveryOrderWriter interface {
	// SaveDeliveryOrder persists a new delivery order, reserving its DO number
	// inside the insert transaction when none is set.
	SaveDeliveryOrder(ctx context.Context, do *domain.DeliveryOrder) error
	UpdateDeliveryOrderStatus(ctx context.Context, do domain.DeliveryOrder) error
}

// DeliveryOrderRepositoryFacade combines all delivery order repository interfaces
type DeliveryOrderRepositoryFacade interface {
	DeliveryOrderReader
	DeliveryOrderWriter
}

// PurchaseOrderReader defines read operations for purchase orders
type PurchaseOrderReader interface {
	FindPurchaseOrderByID(ctx context.Context, purchaseOrderID string) (*domain.PurchaseOrder, error)
	FindPurchaseOrders(ctx context.Context, filter DocumentListFilter) ([]domain.PurchaseOrder, error)
}

// PurchaseOrderWriter defines write operations for purchase orders
type PurchaseOrderWriter interface {
	// SavePurchaseOrder persists a new purchase order, reserving its PO number
	// inside the insert transaction when none is set.
	SavePurchaseOrder(ctx context.Context, po *domain.PurchaseOrder) error
	UpdatePurchaseOrder(ctx context.Context, po domain.PurchaseOrder) error
	UpdatePurchaseOrderStatus(ctx context.Context, po domain.PurchaseOrder) error
}

// PurchaseOrderRepositoryFacade combines all purchase order repository interfaces
type PurchaseOrderRepositoryFacade interface {
	PurchaseOrderReader
	PurchaseOrderWriter
}
