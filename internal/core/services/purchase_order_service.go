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

// purchaseOrderService provides outbound purchase order operations.
type purchaseOrderService struct {
	purchaseOrderRepo portsrepo.PurchaseOrderRepositoryFacade
	productRepo       portsrepo.ProductReader
}

// NewPurchaseOrderService creates a new purchase order service.
func NewPurchaseOrderService(
	purchaseOrderRepo portsrepo.PurchaseOrderRepositoryFacade,
	productRepo portsrepo.ProductReader,
) portssvc.PurchaseOrderSvcFacade {
	return &purchaseOrderService{
		purchaseOrderRepo: purchaseOrderRepo,
		productRepo:       productRepo,
	}
}

var _ portssvc.PurchaseOrderSvcFacade = (*purchaseOrderService)(nil)

func (s *purchaseOrderService) CreatePurchaseOrder(ctx context.Context, req dto.CreatePurchaseOrderRequest, userID string) (*domain.PurchaseOrder, error) {
	items, err := buildLineItems(ctx, s.productRepo, req.Items)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	po := domain.PurchaseOrder{
		PurchaseOrderID: uuid.NewString(),
		VendorName:      req.VendorName,
		VendorGSTIN:     req.VendorGSTIN,
		VendorAddress:   req.VendorAddress,
		Items:           items,
		Totals:          computeTotals(items),
		Status:          domain.StatusDraft,
		OrderDate:       req.OrderDate,
		Notes:           req.Notes,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		},
	}

	if err := s.purchaseOrderRepo.SavePurchaseOrder(ctx, &po); err != nil {
		return nil, fmt.Errorf("failed to create purchase order: %w", err)
	}
	return &po, nil
}

func (s *purchaseOrderService) GetPurchaseOrderByID(ctx context.Context, purchaseOrderID string) (*domain.PurchaseOrder, error) {
	po, err := s.purchaseOrderRepo.FindPurchaseOrderByID(ctx, purchaseOrderID)
	if err != nil {
		return nil, fmt.Errorf("failed to get purchase order %s: %w", purchaseOrderID, err)
	}
	return po, nil
}

func (s *purchaseOrderService) ListPurchaseOrders(ctx context.Context, status string, limit int, offset int) ([]domain.PurchaseOrder, error) {
	orders, err := s.purchaseOrderRepo.FindPurchaseOrders(ctx, portsrepo.DocumentListFilter{
		Status: domain.DocumentStatus(status),
		Limit:  limit,
		Offset: offset,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list purchase orders: %w", err)
	}
	return orders, nil
}

func (s *purchaseOrderService) UpdatePurchaseOrder(ctx context.Context, purchaseOrderID string, req dto.UpdatePurchaseOrderRequest, userID string) (*domain.PurchaseOrder, error) {
	po, err := s.purchaseOrderRepo.FindPurchaseOrderByID(ctx, purchaseOrderID)
	if err != nil {
		return nil, err
	}
	if po.Status != domain.StatusDraft {
		return nil, fmt.Errorf("only draft purchase orders can be edited: %w", apperrors.ErrValidation)
	}

	items, err := buildLineItems(ctx, s.productRepo, req.Items)
	if err != nil {
		return nil, err
	}

	po.VendorName = req.VendorName
	po.VendorGSTIN = req.VendorGSTIN
	po.VendorAddress = req.VendorAddress
	po.Items = items
	po.Totals = computeTotals(items)
	po.OrderDate = req.OrderDate
	po.Notes = req.Notes
	po.LastUpdatedAt = time.Now()
	po.LastUpdatedBy = userID

	if err := s.purchaseOrderRepo.UpdatePurchaseOrder(ctx, *po); err != nil {
		return nil, fmt.Errorf("failed to update purchase order %s: %w", purchaseOrderID, err)
	}
	return po, nil
}

func (s *purchaseOrderService) ChangePurchaseOrderStatus(ctx context.Context, purchaseOrderID string, to domain.DocumentStatus, userID string) (*domain.PurchaseOrder, error) {
	po, err := s.purchaseOrderRepo.FindPurchaseOrderByID(ctx, purchaseOrderID)
	if err != nil {
		return nil, err
	}
	if !domain.CanTransition(domain.DocTypePurchaseOrder, po.Status, to) {
		return nil, fmt.Errorf("purchase order cannot move from %s to %s: %w", po.Status, to, apperrors.ErrValidation)
	}

	po.Status = to
	po.LastUpdatedAt = time.Now()
	po.LastUpdatedBy = userID

	if err := s.purchaseOrderRepo.UpdatePurchaseOrderStatus(ctx, *po); err != nil {
		return nil, fmt.Errorf("failed to change purchase order status: %w", err)
	}
	return po, nil
}
