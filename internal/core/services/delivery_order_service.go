package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/salilgupta4/absoms-backend/internal/apperrors"
	"github.com/salilgupta4/absoms-backend/internal/core/domain"
	portsrepo "github.com/salilgupta4/absoms-backend/internal/core/ports/repositories"
	portssvc "github.com/salilgupta4/absoms-backend/internal/core/ports/services"
	"github.com/salilgupta4/absoms-backend/internal/dto"
	"github.com/salilgupta4/absoms-backend/internal/middleware"
)

// deliveryOrderService records shipments against sales orders and keeps the
// order's delivered quantities and status in step.
type deliveryOrderService struct {
	deliveryOrderRepo portsrepo.DeliveryOrderRepositoryFacade
	salesOrderRepo    portsrepo.SalesOrderRepositoryFacade
}

// NewDeliveryOrderService creates a new delivery order service.
func NewDeliveryOrderService(
	deliveryOrderRepo portsrepo.DeliveryOrderRepositoryFacade,
	salesOrderRepo portsrepo.SalesOrderRepositoryFacade,
) portssvc.DeliveryOrderSvcFacade {
	return &deliveryOrderService{
		deliveryOrderRepo: deliveryOrderRepo,
		salesOrderRepo:    salesOrderRepo,
	}
}

var _ portssvc.DeliveryOrderSvcFacade = (*deliveryOrderService)(nil)

func (s *deliveryOrderService) CreateDeliveryOrder(ctx context.Context, req dto.CreateDeliveryOrderRequest, userID string) (*domain.DeliveryOrder, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	order, err := s.salesOrderRepo.FindSalesOrderByID(ctx, req.SalesOrderID)
	if err != nil {
		return nil, err
	}
	if order.Status != domain.StatusApproved && order.Status != domain.StatusPartial {
		return nil, fmt.Errorf("sales order %s is not open for delivery: %w", req.SalesOrderID, apperrors.ErrValidation)
	}

	linesByID := make(map[string]*domain.LineItem, len(order.Items))
	for i := range order.Items {
		linesByID[order.Items[i].LineItemID] = &order.Items[i]
	}

	items := make([]domain.DeliveryItem, len(req.Items))
	for i, itemReq := range req.Items {
		line, ok := linesByID[itemReq.SourceLineID]
		if !ok {
			return nil, fmt.Errorf("line %s does not belong to sales order %s: %w",
				itemReq.SourceLineID, req.SalesOrderID, apperrors.ErrValidation)
		}
		if !itemReq.Quantity.IsPositive() {
			return nil, fmt.Errorf("delivery quantity must be positive: %w", apperrors.ErrValidation)
		}
		// Over-delivery is rejected, never silently clamped.
		if itemReq.Quantity.GreaterThan(line.PendingQuantity()) {
			return nil, fmt.Errorf("delivery of %s exceeds pending %s on line %s: %w",
				itemReq.Quantity, line.PendingQuantity(), line.LineItemID, apperrors.ErrValidation)
		}

		line.DeliveredQuantity = line.DeliveredQuantity.Add(itemReq.Quantity)
		items[i] = domain.DeliveryItem{
			DeliveryItemID: uuid.NewString(),
			SourceLineID:   line.LineItemID,
			ProductName:    line.ProductName,
			HSNCode:        line.HSNCode,
			Quantity:       itemReq.Quantity,
			Unit:           line.Unit,
		}
	}

	now := time.Now()
	shippingAddress := req.ShippingAddress
	if shippingAddress == "" {
		shippingAddress = order.Customer.Address
	}

	do := domain.DeliveryOrder{
		DeliveryOrderID: uuid.NewString(),
		SalesOrderID:    order.SalesOrderID,
		Customer:        order.Customer,
		Items:           items,
		ShippingAddress: shippingAddress,
		VehicleNumber:   req.VehicleNumber,
		Status:          domain.StatusDraft,
		DeliveryDate:    req.DeliveryDate,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		},
	}

	if err := s.deliveryOrderRepo.SaveDeliveryOrder(ctx, &do); err != nil {
		return nil, fmt.Errorf("failed to create delivery order: %w", err)
	}

	// The order flips to PARTIAL on first delivery and CLOSED once every
	// line is fully delivered.
	if order.FullyDelivered() {
		order.Status = domain.StatusClosed
	} else {
		order.Status = domain.StatusPartial
	}
	order.LastUpdatedAt = now
	order.LastUpdatedBy = userID
	if err := s.salesOrderRepo.UpdateSalesOrder(ctx, *order); err != nil {
		logger.Error("delivery order saved but sales order update failed",
			slog.String("delivery_order_id", do.DeliveryOrderID),
			slog.String("sales_order_id", order.SalesOrderID))
		return nil, fmt.Errorf("failed to update sales order fulfilment: %w", err)
	}

	return &do, nil
}

func (s *deliveryOrderService) GetDeliveryOrderByID(ctx context.Context, deliveryOrderID string) (*domain.DeliveryOrder, error) {
	do, err := s.deliveryOrderRepo.FindDeliveryOrderByID(ctx, deliveryOrderID)
	if err != nil {
		return nil, fmt.Errorf("failed to get delivery order %s: %w", deliveryOrderID, err)
	}
	return do, nil
}

func (s *deliveryOrderService) ListDeliveryOrders(ctx context.Context, status string, customerID string, limit int, offset int) ([]domain.DeliveryOrder, error) {
	orders, err := s.deliveryOrderRepo.FindDeliveryOrders(ctx, portsrepo.DocumentListFilter{
		Status:     domain.DocumentStatus(status),
		CustomerID: customerID,
		Limit:      limit,
		Offset:     offset,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list delivery orders: %w", err)
	}
	return orders, nil
}

func (s *deliveryOrderService) ListDeliveryOrdersBySalesOrder(ctx context.Context, salesOrderID string) ([]domain.DeliveryOrder, error) {
	orders, err := s.deliveryOrderRepo.FindDeliveryOrdersBySalesOrder(ctx, salesOrderID)
	if err != nil {
		return nil, fmt.Errorf("failed to list deliveries for sales order %s: %w", salesOrderID, err)
	}
	return orders, nil
}

func (s *deliveryOrderService) DispatchDeliveryOrder(ctx context.Context, deliveryOrderID string, userID string) (*domain.DeliveryOrder, error) {
	do, err := s.deliveryOrderRepo.FindDeliveryOrderByID(ctx, deliveryOrderID)
	if err != nil {
		return nil, err
	}
	if !domain.CanTransition(domain.DocTypeDeliveryOrder, do.Status, domain.StatusDispatched) {
		return nil, fmt.Errorf("delivery order cannot move from %s to DISPATCHED: %w", do.Status, apperrors.ErrValidation)
	}

	do.Status = domain.StatusDispatched
	do.LastUpdatedAt = time.Now()
	do.LastUpdatedBy = userID

	if err := s.deliveryOrderRepo.UpdateDeliveryOrderStatus(ctx, *do); err != nil {
		return nil, fmt.Errorf("failed to dispatch delivery order %s: %w", deliveryOrderID, err)
	}
	return do, nil
}
