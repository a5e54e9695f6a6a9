package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/salilgupta4/absoms-backend/internal/apperrors"
	"github.com/salilgupta4/absoms-backend/internal/core/domain"
	portsrepo "github.com/salilgupta4/absoms-backend/internal/core/ports/repositories"
	portssvc "github.com/salilgupta4/absoms-backend/internal/core/ports/services"
	"github.com/salilgupta4/absoms-backend/internal/dto"
	"github.com/salilgupta4/absoms-backend/internal/middleware"
)

// quoteService provides quote lifecycle operations, including revision and
// conversion into sales orders.
type quoteService struct {
	quoteRepo      portsrepo.QuoteRepositoryFacade
	salesOrderRepo portsrepo.SalesOrderRepositoryFacade
	customerRepo   portsrepo.CustomerReader
	productRepo    portsrepo.ProductReader
}

// NewQuoteService creates a new quote service.
func NewQuoteService(
	quoteRepo portsrepo.QuoteRepositoryFacade,
	salesOrderRepo portsrepo.SalesOrderRepositoryFacade,
	customerRepo portsrepo.CustomerReader,
	productRepo portsrepo.ProductReader,
) portssvc.QuoteSvcFacade {
	return &quoteService{
		quoteRepo:      quoteRepo,
		salesOrderRepo: salesOrderRepo,
		customerRepo:   customerRepo,
		productRepo:    productRepo,
	}
}

var _ portssvc.QuoteSvcFacade = (*quoteService)(nil)

func (s *quoteService) CreateQuote(ctx context.Context, req dto.CreateQuoteRequest, userID string) (*domain.Quote, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

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
	quote := domain.Quote{
		QuoteID:  uuid.NewString(),
		Revision: 1,
		Customer:    snapshotCustomer(customer),
		Items:       items,
		Totals:      computeTotals(items),
		Status:      domain.StatusDraft,
		QuoteDate:   req.QuoteDate,
		ValidUntil:  req.ValidUntil,
		Notes:       req.Notes,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		},
	}

	// The repository reserves the quote number inside the insert transaction.
	if err := s.quoteRepo.SaveQuote(ctx, &quote); err != nil {
		logger.Error("failed to save quote", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to create quote: %w", err)
	}
	return &quote, nil
}

func (s *quoteService) GetQuoteByID(ctx context.Context, quoteID string) (*domain.Quote, error) {
	quote, err := s.quoteRepo.FindQuoteByID(ctx, quoteID)
	if err != nil {
		return nil, fmt.Errorf("failed to get quote %s: %w", quoteID, err)
	}
	return quote, nil
}

func (s *quoteService) ListQuotes(ctx context.Context, status string, customerID string, limit int, offset int) ([]domain.Quote, error) {
	quotes, err := s.quoteRepo.FindQuotes(ctx, portsrepo.DocumentListFilter{
		Status:     domain.DocumentStatus(status),
		CustomerID: customerID,
		Limit:      limit,
		Offset:     offset,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list quotes: %w", err)
	}
	return quotes, nil
}

func (s *quoteService) UpdateQuote(ctx context.Context, quoteID string, req dto.UpdateQuoteRequest, userID string) (*domain.Quote, error) {
	quote, err := s.quoteRepo.FindQuoteByID(ctx, quoteID)
	if err != nil {
		return nil, err
	}
	if quote.Status != domain.StatusDraft {
		return nil, fmt.Errorf("only draft quotes can be edited: %w", apperrors.ErrValidation)
	}

	items, err := buildLineItems(ctx, s.productRepo, req.Items)
	if err != nil {
		return nil, err
	}

	quote.Items = items
	quote.Totals = computeTotals(items)
	quote.QuoteDate = req.QuoteDate
	quote.ValidUntil = req.ValidUntil
	quote.Notes = req.Notes
	quote.LastUpdatedAt = time.Now()
	quote.LastUpdatedBy = userID

	if err := s.quoteRepo.UpdateQuote(ctx, *quote); err != nil {
		return nil, fmt.Errorf("failed to update quote %s: %w", quoteID, err)
	}
	return quote, nil
}

func (s *quoteService) DeleteQuote(ctx context.Context, quoteID string, userID string) error {
	quote, err := s.quoteRepo.FindQuoteByID(ctx, quoteID)
	if err != nil {
		return err
	}
	if quote.Status != domain.StatusDraft {
		return fmt.Errorf("only draft quotes can be deleted: %w", apperrors.ErrValidation)
	}

	if err := s.quoteRepo.DeleteQuote(ctx, quoteID); err != nil {
		return fmt.Errorf("failed to delete quote %s: %w", quoteID, err)
	}
	return nil
}

func (s *quoteService) ChangeQuoteStatus(ctx context.Context, quoteID string, to domain.DocumentStatus, userID string) (*domain.Quote, error) {
	quote, err := s.quoteRepo.FindQuoteByID(ctx, quoteID)
	if err != nil {
		return nil, err
	}
	if !domain.CanTransition(domain.DocTypeQuote, quote.Status, to) {
		return nil, fmt.Errorf("quote cannot move from %s to %s: %w", quote.Status, to, apperrors.ErrValidation)
	}

	quote.Status = to
	quote.LastUpdatedAt = time.Now()
	quote.LastUpdatedBy = userID

	if err := s.quoteRepo.UpdateQuoteStatus(ctx, *quote); err != nil {
		return nil, fmt.Errorf("failed to change quote status: %w", err)
	}
	return quote, nil
}

// ReviseQuote supersedes the current quote with a fresh DRAFT copy carrying
// the same number and the next revision counter.
func (s *quoteService) ReviseQuote(ctx context.Context, quoteID string, userID string) (*domain.Quote, error) {
	quote, err := s.quoteRepo.FindQuoteByID(ctx, quoteID)
	if err != nil {
		return nil, err
	}
	if quote.Status != domain.StatusSent && quote.Status != domain.StatusApproved {
		return nil, fmt.Errorf("only sent or approved quotes can be revised: %w", apperrors.ErrValidation)
	}

	now := time.Now()
	revision := domain.Quote{
		QuoteID:     uuid.NewString(),
		QuoteNumber: quote.QuoteNumber,
		Revision:    quote.Revision + 1,
		Customer:    quote.Customer,
		Items:       cloneLineItems(quote.Items),
		Totals:      quote.Totals,
		Status:      domain.StatusDraft,
		QuoteDate:   now,
		ValidUntil:  quote.ValidUntil,
		Notes:       quote.Notes,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		},
	}

	if err := s.quoteRepo.SaveQuote(ctx, &revision); err != nil {
		return nil, fmt.Errorf("failed to save quote revision: %w", err)
	}

	quote.Status = domain.StatusSuperseded
	quote.SupersededByQuote = revision.QuoteID
	quote.LastUpdatedAt = now
	quote.LastUpdatedBy = userID
	if err := s.quoteRepo.UpdateQuoteStatus(ctx, *quote); err != nil {
		return nil, fmt.Errorf("failed to supersede quote %s: %w", quoteID, err)
	}

	return &revision, nil
}

// ConvertQuoteToSalesOrder creates a sales order from an approved quote and
// closes the quote.
func (s *quoteService) ConvertQuoteToSalesOrder(ctx context.Context, quoteID string, req dto.ConvertQuoteRequest, userID string) (*domain.SalesOrder, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	quote, err := s.quoteRepo.FindQuoteByID(ctx, quoteID)
	if err != nil {
		return nil, err
	}
	if quote.Status != domain.StatusApproved {
		return nil, fmt.Errorf("only approved quotes can be converted: %w", apperrors.ErrValidation)
	}
	if quote.LinkedSalesOrder != "" {
		return nil, fmt.Errorf("quote %s is already converted: %w", quoteID, apperrors.ErrDuplicate)
	}

	now := time.Now()
	orderDate := now
	if req.OrderDate != nil {
		orderDate = *req.OrderDate
	}

	order := domain.SalesOrder{
		SalesOrderID:  uuid.NewString(),
		ClientPONum:   req.ClientPONumber,
		SourceQuoteID: quote.QuoteID,
		Customer:      quote.Customer,
		Items:         cloneLineItems(quote.Items),
		Totals:        quote.Totals,
		Status:        domain.StatusApproved,
		OrderDate:     orderDate,
		Notes:         quote.Notes,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		},
	}

	if err := s.salesOrderRepo.SaveSalesOrder(ctx, &order); err != nil {
		return nil, fmt.Errorf("failed to create sales order from quote %s: %w", quoteID, err)
	}

	quote.Status = domain.StatusClosed
	quote.LinkedSalesOrder = order.SalesOrderID
	quote.LastUpdatedAt = now
	quote.LastUpdatedBy = userID
	if err := s.quoteRepo.UpdateQuoteStatus(ctx, *quote); err != nil {
		// The order exists; surface the inconsistency loudly.
		logger.Error("sales order created but quote close failed",
			slog.String("quote_id", quoteID), slog.String("sales_order_id", order.SalesOrderID))
		return nil, fmt.Errorf("failed to close quote %s after conversion: %w", quoteID, err)
	}

	return &order, nil
}

// cloneLineItems copies lines with fresh IDs and zeroed fulfilment state.
func cloneLineItems(items []domain.LineItem) []domain.LineItem {
	cloned := make([]domain.LineItem, len(items))
	for i, li := range items {
		li.LineItemID = uuid.NewString()
		li.DeliveredQuantity = decimal.Zero
		cloned[i] = li
	}
	return cloned
}
