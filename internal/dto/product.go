package dto

import (
	"github.com/salilgupta4/absoms-backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateProductRequest defines the data needed to create a new product.
type CreateProductRequest struct {
	Name        string          `json:"name" binding:"required"`
	Description string          `json:"description"`
	HSNCode     string          `json:"hsnCode"`
	Unit        string          `json:"unit" binding:"required"`
	Rate        decimal.Decimal `json:"rate" binding:"required"`
	GSTRate     decimal.Decimal `json:"gstRate"`
}

// UpdateProductRequest defines the data allowed for updating a product.
// Use pointers to distinguish between zero-value updates and fields not provided.
type UpdateProductRequest struct {
	Name        *string          `json:"name"`
	Description *string          `json:"description"`
	HSNCode     *string          `json:"hsnCode"`
	Unit        *string          `json:"unit"`
	Rate        *decimal.Decimal `json:"rate"`
	GSTRate     *decimal.Decimal `json:"gstRate"`
	IsActive    *bool            `json:"isActive"`
}

// ProductResponse defines the data returned for a product.
type ProductResponse struct {
	ProductID   string          `json:"productID"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	HSNCode     string          `json:"hsnCode"`
	Unit        string          `json:"unit"`
	Rate        decimal.Decimal `json:"rate"`
	GSTRate     decimal.Decimal `json:"gstRate"`
	IsActive    bool            `json:"isActive"`
}

// ToProductResponse converts a domain.Product to ProductResponse DTO
func ToProductResponse(p *domain.Product) ProductResponse {
	return ProductResponse{
		ProductID:   p.ProductID,
		Name:        p.Name,
		Description: p.Description,
		HSNCode:     p.HSNCode,
		Unit:        p.Unit,
		Rate:        p.Rate,
		GSTRate:     p.GSTRate,
		IsActive:    p.IsActive,
	}
}

// ToListProductResponse converts a slice of domain.Product to DTOs
func ToListProductResponse(products []domain.Product) []ProductResponse {
	res := make([]ProductResponse, len(products))
	for i, p := range products {
		res[i] = ToProductResponse(&p)
	}
	return res
}

// ListProductsParams defines query parameters for listing products.
type ListProductsParams struct {
	Name       string `form:"name"`
	ActiveOnly bool   `form:"activeOnly,default=false"`
	Limit      int    `form:"limit,default=20"`
	Offset     int    `form:"offset,default=0"`
}
