package services

import (
	"context"

	"github.com/salilgupta4/absoms-backend/internal/core/domain"
	"github.com/salilgupta4/absoms-backend/internal/dto"
)

// SalesOrderReaderSvc defines read operations for sales orders
type SalesOrderReaderSvc interface {
	// GetSalesOrderByID retrieves a sales order with its line items and
	// delivered quantities.
	GetSalesOrderByID(ctx context.Context, salesOrderID string) (*domain.SalesOrder, error)

	// ListSalesOrders retrieves a filtered, paginated list of sales orders.
	ListSalesOrders(ctx context.Context, status string, customerID string, limit int, offset int) ([]domain.SalesOrder, error)
}

// SalesOrderWriterSvc defines write operations for sales orders
type SalesOrderWriterSvc interface {
	// CreateSalesOrder creates a sales order directly, without a source quote.
	CreateSalesOrder(ctx context.Context, req dto.CreateSalesOrderRequest, userID string) (*domain.SalesOrder, error)

	// UpdateSalesOrder updates header fields of an order with no deliveries yet.
	UpdateSalesOrder(ctx context.Context, salesOrderID string, req dto.UpdateSalesOrderRequest, userID string) (*domain.SalesOrder, error)

	// CloseSalesOrder force-closes an order, e.g. when the remainder is cancelled.
	CloseSalesOrder(ctx context.Context, salesOrderID string, userID string) (*domain.SalesOrder, error)
}

// SalesOrderSvcFacade combines all sales order service interfaces
type SalesOrderSvcFacade interface {
	SalesOrderReaderSvc
	SalesOrderWriterSvc
}
