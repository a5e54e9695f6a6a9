package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/salilgupta4/absoms-backend/internal/apperrors"
	"github.com/salilgupta4/absoms-backend/internal/core/domain"
	portsrepo "github.com/salilgupta4/absoms-backend/internal/core/ports/repositories"
	portssvc "github.com/salilgupta4/absoms-backend/internal/core/ports/services"
	"github.com/salilgupta4/absoms-backend/internal/dto"
)

// productService provides product catalog operations.
type productService struct {
	productRepo portsrepo.ProductRepositoryFacade
}

// NewProductService creates a new product service.
func NewProductService(productRepo portsrepo.ProductRepositoryFacade) portssvc.ProductSvcFacade {
	return &productService{productRepo: productRepo}
}

var _ portssvc.ProductSvcFacade = (*productService)(nil)

func (s *productService) CreateProduct(ctx context.Context, req dto.CreateProductRequest, userID string) (*domain.Product, error) {
	if req.Rate.IsNegative() {
		return nil, fmt.Errorf("rate must not be negative: %w", apperrors.ErrValidation)
	}

	now := time.Now()
	product := domain.Product{
		ProductID:   uuid.NewString(),
		Name:        req.Name,
		Description: req.Description,
		HSNCode:     req.HSNCode,
		Unit:        req.Unit,
		Rate:        req.Rate,
		GSTRate:     req.GSTRate,
		IsActive:    true,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		},
	}

	if err := s.productRepo.SaveProduct(ctx, product); err != nil {
		if errors.Is(err, apperrors.ErrDuplicate) {
			return nil, fmt.Errorf("product %q already exists: %w", req.Name, apperrors.ErrDuplicate)
		}
		return nil, fmt.Errorf("failed to create product: %w", err)
	}
	return &product, nil
}

func (s *productService) GetProductByID(ctx context.Context, productID string) (*domain.Product, error) {
	product, err := s.productRepo.FindProductByID(ctx, productID)
	if err != nil {
		return nil, fmt.Errorf("failed to get product %s: %w", productID, err)
	}
	return product, nil
}

func (s *productService) ListProducts(ctx context.Context, nameFilter string, activeOnly bool, limit int, offset int) ([]domain.Product, error) {
	products, err := s.productRepo.FindProducts(ctx, nameFilter, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list products: %w", err)
	}
	if !activeOnly {
		return products, nil
	}
	active := products[:0]
	for _, p := range products {
		if p.IsActive {
			active = append(active, p)
		}
	}
	return active, nil
}

func (s *productService) UpdateProduct(ctx context.Context, productID string, req dto.UpdateProductRequest, userID string) (*domain.Product, error) {
	product, err := s.productRepo.FindProductByID(ctx, productID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		product.Name = *req.Name
	}
	if req.Description != nil {
		product.Description = *req.Description
	}
	if req.HSNCode != nil {
		product.HSNCode = *req.HSNCode
	}
	if req.Unit != nil {
		product.Unit = *req.Unit
	}
	if req.Rate != nil {
		if req.Rate.IsNegative() {
			return nil, fmt.Errorf("rate must not be negative: %w", apperrors.ErrValidation)
		}
		product.Rate = *req.Rate
	}
	if req.GSTRate != nil {
		product.GSTRate = *req.GSTRate
	}
	if req.IsActive != nil {
		product.IsActive = *req.IsActive
	}
	product.LastUpdatedAt = time.Now()
	product.LastUpdatedBy = userID

	if err := s.productRepo.UpdateProduct(ctx, *product); err != nil {
		return nil, fmt.Errorf("failed to update product %s: %w", productID, err)
	}
	return product, nil
}

func (s *productService) DeactivateProduct(ctx context.Context, productID string, userID string) error {
	if _, err := s.productRepo.FindProductByID(ctx, productID); err != nil {
		return err
	}
	return s.productRepo.DeactivateProduct(ctx, productID, userID, time.Now())
}
