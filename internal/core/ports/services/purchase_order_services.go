package services

import (
	"context"

	"github.com/salilgupta4/absoms-backend/internal/core/domain"
	"github.com/salilgupta4/absoms-backend/internal/dto"
)

// PurchaseOrderReaderSvc defines read operations for purchase orders
type PurchaseOrderReaderSvc interface {
	// GetPurchaseOrderByID retrieves a purchase order with its line items.
	GetPurchaseOrderByID(ctx context.Context, purchaseOrderID string) (*domain.PurchaseOrder, error)

	// ListPurchaseOrders retrieves a filtered, paginated list of purchase orders.
	ListPurchaseOrders(ctx context.Context, status string, limit int, offset int) ([]domain.PurchaseOrder, error)
}

// PurchaseOrderWriterSvc defines write operations for purchase orders
type PurchaseOrderWriterSvc interface {
	// CreatePurchaseOrder allocates a PO number, computes totals and persists
	// the order in DRAFT.
	CreatePurchaseOrder(ctx context.Context, req dto.CreatePurchaseOrderRequest, userID string) (*domain.PurchaseOrder, error)

	// UpdatePurchaseOrder replaces the line items and header fields of a DRAFT order.
	UpdatePurchaseOrder(ctx context.Context, purchaseOrderID string, req dto.UpdatePurchaseOrderRequest, userID string) (*domain.PurchaseOrder, error)

	// ChangePurchaseOrderStatus moves a purchase order through its lifecycle.
	ChangePurchaseOrderStatus(ctx context.Context, purchaseOrderID string, to domain.DocumentStatus, userID string) (*domain.PurchaseOrder, error)
}

// PurchaseOrderSvcFacade combines all purchase order service interfaces
type PurchaseOrderSvcFacade interface {
	PurchaseOrderReaderSvc
	PurchaseOrderWriterSvc
}
