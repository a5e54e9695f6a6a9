package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/salilgupta4/absoms-backend/internal/apperrors"
	"github.com/salilgupta4/absoms-backend/internal/core/domain"
	portsrepo "github.com/salilgupta4/absoms-backend/internal/core/ports/repositories"
	portssvc "github.com/salilgupta4/absoms-backend/internal/core/ports/services"
	"github.com/salilgupta4/absoms-backend/internal/dto"
)

// salesOrderService provides sales order operations. Fulfilment updates come
// in through the delivery order service.
type salesOrderService struct {
	salesOrderRepo portsrepo.SalesOrderRepositoryFacade
	customerRepo   portsrepo.CustomerReader
	productRepo    portsrepo.ProductReader
}

// NewSalesOrderService creates a new sales order service.
func NewSalesOrderService(
	salesOrderRepo portsrepo.SalesOrderRepositoryFacade,
	customerRepo portsrepo.CustomerReader,
	productRepo portsrepo.ProductReader,
) portssvc.SalesOrderSvcFacade {
	return &salesOrderService{
		salesOrderRepo: salesOrderRepo,
		customerRepo:   customerRepo,
		productRepo:    productRepo,
	}
}

var _ portssvc.SalesOrderSvcFacade = (*salesOrderService)(nil)

func (s *salesOrderService) CreateSalesOrder(ctx context.Context, req dto.CreateSalesOrderRequest, userID string) (*domain.SalesOrder, error) {
	customer, err := s.customerRepo.FindCustomerByID(ctx, req.CustomerID)
	if err != nil {
		return nil, err
	}
	if !customer.IsActive {
		return nil, fmt.Errorf("customer %s is inactive: %w", req.CustomerID, apperrors.ErrValidation)
	}

	items, err := buildLineItems(ctx, s.productRepo, req.Items)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	order := domain.SalesOrder{
		SalesOrderID: uuid.NewString(),
		ClientPONum:  req.ClientPONumber,
		Customer:     snapshotCustomer(customer),
		Items:        items,
		Totals:       computeTotals(items),
		Status:       domain.StatusApproved,
		OrderDate:    req.OrderDate,
		Notes:        req.Notes,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		},
	}

	if err := s.salesOrderRepo.SaveSalesOrder(ctx, &order); err != nil {
		return nil, fmt.Errorf("failed to create sales order: %w", err)
	}
	return &order, nil
}

func (s *salesOrderService) GetSalesOrderByID(ctx context.Context, salesOrderID string) (*domain.SalesOrder, error) {
	order, err := s.salesOrderRepo.FindSalesOrderByID(ctx, salesOrderID)
	if err != nil {
		return nil, fmt.Errorf("failed to get sales order %s: %w", salesOrderID, err)
	}
	return order, nil
}

func (s *salesOrderService) ListSalesOrders(ctx context.Context, status string, customerID string, limit int, offset int) ([]domain.SalesOrder, error) {
	orders, err := s.salesOrderRepo.FindSalesOrders(ctx, portsrepo.DocumentListFilter{
		Status:     domain.DocumentStatus(status),
		CustomerID: customerID,
		Limit:      limit,
		Offset:     offset,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list sales orders: %w", err)
	}
	return orders, nil
}

func (s *salesOrderService) UpdateSalesOrder(ctx context.Context, salesOrderID string, req dto.UpdateSalesOrderRequest, userID string) (*domain.SalesOrder, error) {
	order, err := s.salesOrderRepo.FindSalesOrderByID(ctx, salesOrderID)
	if err != nil {
		return nil, err
	}
	if order.Status == domain.StatusClosed {
		return nil, fmt.Errorf("closed orders cannot be edited: %w", apperrors.ErrValidation)
	}

	if req.ClientPONumber != nil {
		order.ClientPONum = *req.ClientPONumber
	}
	if req.Notes != nil {
		order.Notes = *req.Notes
	}
	order.LastUpdatedAt = time.Now()
	order.LastUpdatedBy = userID

	if err := s.salesOrderRepo.UpdateSalesOrder(ctx, *order); err != nil {
		return nil, fmt.Errorf("failed to update sales order %s: %w", salesOrderID, err)
	}
	return order, nil
}

// CloseSalesOrder force-closes an order regardless of pending quantities,
// e.g. when the customer cancels the remainder.
func (s *salesOrderService) CloseSalesOrder(ctx context.Context, salesOrderID string, userID string) (*domain.SalesOrder, error) {
	order, err := s.salesOrderRepo.FindSalesOrderByID(ctx, salesOrderID)
	if err != nil {
		return nil, err
	}
	if !domain.CanTransition(domain.DocTypeSalesOrder, order.Status, domain.StatusClosed) {
		return nil, fmt.Errorf("sales order cannot move from %s to CLOSED: %w", order.Status, apperrors.ErrValidation)
	}

	order.Status = domain.StatusClosed
	order.LastUpdatedAt = time.Now()
	order.LastUpdatedBy = userID

	if err := s.salesOrderRepo.UpdateSalesOrder(ctx, *order); err != nil {
		return nil, fmt.Errorf("failed to close sales order %s: %w", salesOrderID, err)
	}
	return order, nil
}
