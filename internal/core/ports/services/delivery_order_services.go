package services

import (
	"context"

	"github.com/salilgupta4/absoms-backend/internal/core/domain"
	"github.com/salilgupta4/absoms-backend/internal/dto"
)

// DeliveryOrderReaderSvc defines read operations for delivery orders
type DeliveryOrderReaderSvc interface {
	// GetDeliveryOrderByID retrieves a delivery order with its items.
	GetDeliveryOrderByID(ctx context.Context, deliveryOrderID string) (*domain.DeliveryOrder, error)

	// ListDeliveryOrders retrieves a filtered, paginated list of delivery orders.
	ListDeliveryOrders(ctx context.Context, status string, customerID string, limit int, offset int) ([]domain.DeliveryOrder, error)

	// ListDeliveryOrdersBySalesOrder retrieves all deliveries against an order.
	ListDeliveryOrdersBySalesOrder(ctx context.Context, salesOrderID string) ([]domain.DeliveryOrder, error)
}

// DeliveryOrderWriterSvc defines write operations for delivery orders
type DeliveryOrderWriterSvc interface {
	// CreateDeliveryOrder records a shipment against a sales order. Quantities
	// may not exceed the pending quantity of their source lines. The sales
	// order's delivered quantities and status move in the same transaction.
	CreateDeliveryOrder(ctx context.Context, req dto.CreateDeliveryOrderRequest, userID string) (*domain.DeliveryOrder, error)

	// DispatchDeliveryOrder marks a DRAFT delivery order as DISPATCHED.
	DispatchDeliveryOrder(ctx context.Context, deliveryOrderID string, userID string) (*domain.DeliveryOrder, error)
}

// DeliveryOrderSvcFacade combines all delivery order service interfaces
type DeliveryOrderSvcFacade interface {
	DeliveryOrderReaderSvc
	DeliveryOrderWriterSvc
}
