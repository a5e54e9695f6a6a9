package services

import (
	"context"

	"github.com/salilgupta4/absoms-backend/internal/core/domain"
	"github.com/salilgupta4/absoms-backend/internal/dto"
)

// CustomerReaderSvc defines read operations for customer data
type CustomerReaderSvc interface {
	// GetCustomerByID retrieves a customer with contacts and addresses.
	GetCustomerByID(ctx context.Context, customerID string) (*domain.Customer, error)

	// ListCustomers retrieves a paginated list of customers. nameFilter is a
	// case-insensitive substring match; empty means no filter.
	ListCustomers(ctx context.Context, nameFilter string, limit int, offset int) ([]domain.Customer, error)
}

// CustomerWriterSvc defines write operations for customer data
type CustomerWriterSvc interface {
	// CreateCustomer persists a new customer with its contacts and addresses.
	CreateCustomer(ctx context.Context, req dto.CreateCustomerRequest, userID string) (*domain.Customer, error)

	// UpdateCustomer replaces a customer's details, contacts and addresses.
	UpdateCustomer(ctx context.Context, customerID string, req dto.UpdateCustomerRequest, userID string) (*domain.Customer, error)

	// DeactivateCustomer soft-deletes a customer. Documents keep their snapshot.
	DeactivateCustomer(ctx context.Context, customerID string, userID string) error
}

// CustomerSvcFacade combines all customer-related service interfaces
type CustomerSvcFacade interface {
	CustomerReaderSvc
	CustomerWriterSvc
}
