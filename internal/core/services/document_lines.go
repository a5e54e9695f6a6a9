package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/salilgupta4/absoms-backend/internal/apperrors"
	"github.com/salilgupta4/absoms-backend/internal/core/domain"
	portsrepo "github.com/salilgupta4/absoms-backend/internal/core/ports/repositories"
	"github.com/salilgupta4/absoms-backend/internal/dto"
)

var oneHundred = decimal.NewFromInt(100)

// buildLineItems resolves product references, applies rate and GST defaults
// from the catalog and computes per-line amounts. The product name, HSN code
// and unit are snapshotted onto the line so the document survives later
// product edits.
func buildLineItems(ctx context.Context, productRepo portsrepo.ProductReader, reqs []dto.LineItemRequest) ([]domain.LineItem, error) {
	items := make([]domain.LineItem, len(reqs))
	for i, req := range reqs {
		if !req.Quantity.IsPositive() {
			return nil, fmt.Errorf("line %d: quantity must be positive: %w", i+1, apperrors.ErrValidation)
		}
		if req.DiscountPct.IsNegative() || req.DiscountPct.GreaterThan(oneHundred) {
			return nil, fmt.Errorf("line %d: discount must be between 0 and 100: %w", i+1, apperrors.ErrValidation)
		}

		product, err := productRepo.FindProductByID(ctx, req.ProductID)
		if err != nil {
			return nil, fmt.Errorf("line %d: product %s: %w", i+1, req.ProductID, err)
		}

		rate := product.Rate
		if req.Rate != nil {
			if req.Rate.IsNegative() {
				return nil, fmt.Errorf("line %d: rate must not be negative: %w", i+1, apperrors.ErrValidation)
			}
			rate = *req.Rate
		}
		gstRate := product.GSTRate
		if req.GSTRate != nil {
			gstRate = *req.GSTRate
		}

		discountFactor := decimal.NewFromInt(1).Sub(req.DiscountPct.Div(oneHundred))
		amount := req.Quantity.Mul(rate).Mul(discountFactor).Round(2)
		taxAmount := amount.Mul(gstRate).Div(oneHundred).Round(2)

		items[i] = domain.LineItem{
			LineItemID:  uuid.NewString(),
			ProductID:   product.ProductID,
			ProductName: product.Name,
			Description: req.Description,
			HSNCode:     product.HSNCode,
			Quantity:    req.Quantity,
			Unit:        product.Unit,
			Rate:        rate,
			DiscountPct: req.DiscountPct,
			GSTRate:     gstRate,
			Amount:      amount,
			TaxAmount:   taxAmount,
		}
	}
	return items, nil
}

// computeTotals folds line amounts into document totals.
func computeTotals(items []domain.LineItem) domain.DocumentTotals {
	subtotal := decimal.Zero
	totalTax := decimal.Zero
	for _, li := range items {
		subtotal = subtotal.Add(li.Amount)
		totalTax = totalTax.Add(li.TaxAmount)
	}
	return domain.DocumentTotals{
		Subtotal:   subtotal,
		TotalTax:   totalTax,
		GrandTotal: subtotal.Add(totalTax),
	}
}

// snapshotCustomer freezes the customer identity onto a document, preferring
// the default billing address.
func snapshotCustomer(c *domain.Customer) domain.CustomerSnapshot {
	address := ""
	if addr := c.DefaultAddress(domain.AddressBilling); addr != nil {
		address = formatAddress(*addr)
	} else if len(c.Addresses) > 0 {
		address = formatAddress(c.Addresses[0])
	}
	return domain.CustomerSnapshot{
		CustomerID:   c.CustomerID,
		CustomerName: c.Name,
		GSTIN:        c.GSTIN,
		Address:      address,
	}
}

func formatAddress(a domain.Address) string {
	parts := make([]string, 0, 5)
	for _, p := range []string{a.Line1, a.Line2, a.City, a.State, a.Pincode} {
		if p != "" {
			parts = append(parts, p)
		}
	}
	return strings.Join(parts, ", ")
}
