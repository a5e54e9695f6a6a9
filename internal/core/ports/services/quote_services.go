package services

import (
	"context"

	"github.com/salilgupta4/absoms-backend/internal/core/domain"
	"github.com/salilgupta4/absoms-backend/internal/dto"
)

// QuoteReaderSvc defines read operations for quotes
type QuoteReaderSvc interface {
	// GetQuoteByID retrieves a quote with its line items.
	GetQuoteByID(ctx context.Context, quoteID string) (*domain.Quote, error)

	// ListQuotes retrieves a filtered, paginated list of quotes.
	ListQuotes(ctx context.Context, status string, customerID string, limit int, offset int) ([]domain.Quote, error)
}

// QuoteWriterSvc defines write operations for quotes
type QuoteWriterSvc interface {
	// CreateQuote allocates a quote number, snapshots the customer, computes
	// totals and persists the quote in DRAFT.
	CreateQuote(ctx context.Context, req dto.CreateQuoteRequest, userID string) (*domain.Quote, error)

	// UpdateQuote replaces the line items and header fields of a DRAFT quote.
	UpdateQuote(ctx context.Context, quoteID string, req dto.UpdateQuoteRequest, userID string) (*domain.Quote, error)

	// ChangeQuoteStatus moves a quote through its lifecycle.
	ChangeQuoteStatus(ctx context.Context, quoteID string, to domain.DocumentStatus, userID string) (*domain.Quote, error)

	// DeleteQuote removes a DRAFT quote and its line items.
	DeleteQuote(ctx context.Context, quoteID string, userID string) error
}

// QuoteLifecycleSvc defines the revision and conversion operations
type QuoteLifecycleSvc interface {
	// ReviseQuote supersedes a SENT or APPROVED quote with a new DRAFT revision
	// carrying the same quote number and an incremented revision counter.
	ReviseQuote(ctx context.Context, quoteID string, userID string) (*domain.Quote, error)

	// ConvertQuoteToSalesOrder creates a sales order from an APPROVED quote,
	// closes the quote and links the two.
	ConvertQuoteToSalesOrder(ctx context.Context, quoteID string, req dto.ConvertQuoteRequest, userID string) (*domain.SalesOrder, error)
}

// QuoteSvcFacade combines all quote service interfaces
type QuoteSvcFacade interface {
	QuoteReaderSvc
	QuoteWriterSvc
	QuoteLifecycleSvc
}
