package repositories

import (
	"context"
	"time"

	"github.com/salilgupta4/absoms-backend/internal/core/domain"
)

// ProductReader defines read operations for product data
type ProductReader interface {
	// FindProductByID retrieves a product by its ID.
	FindProductByID(ctx context.Context, productID string) (*domain.Product, error)

	// FindProductByName retrieves a product by its exact name (used by CSV import upserts).
	FindProductByName(ctx context.Context, name string) (*domain.Product, error)

	// FindProducts retrieves a paginated list of active products, optionally
	// filtered by a case-insensitive name substring.
	FindProducts(ctx context.Context, nameFilter string, limit int, offset int) ([]domain.Product, error)
}

// ProductWriter defines write operations for product data
type ProductWriter interface {
	// SaveProduct persists a new product.
	SaveProduct(ctx context.Context, product domain.Product) error

	// UpdateProduct updates an existing product.
	UpdateProduct(ctx context.Context, product domain.Product) error
}

// ProductLifecycleManager defines operations for managing product lifecycle
type ProductLifecycleManager interface {
	// DeactivateProduct marks a product inactive (soft delete).
	DeactivateProduct(ctx context.Context, productID string, userID string, now time.Time) error
}

// ProductRepositoryFacade combines all product-related repository interfaces
type ProductRepositoryFacade interface {
	ProductReader
	ProductWriter
	ProductLifecycleManager
}
