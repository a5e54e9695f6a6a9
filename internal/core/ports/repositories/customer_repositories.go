package repositories

import (
	"context"
	"time"

	"github.com/salilgupta4/absoms-backend/internal/core/domain"
)

// CustomerReader defines read operations for customer data
type CustomerReader interface {
	// FindCustomerByID retrieves a customer with its contacts and addresses.
	FindCustomerByID(ctx context.Context, customerID string) (*domain.Customer, error)

	// FindCustomers retrieves a paginated list of active customers, optionally
	// filtered by a case-insensitive name substring.
	FindCustomers(ctx context.Context, nameFilter string, limit int, offset int) ([]domain.Customer, error)
}

// CustomerWriter defines write operations for customer data
type CustomerWriter interface {
	// SaveCustomer persists a new customer with its contacts and addresses.
	SaveCustomer(ctx context.Context, customer domain.Customer) error

	// UpdateCustomer replaces the customer row and its child rows.
	UpdateCustomer(ctx context.Context, customer domain.Customer) error
}

// CustomerLifecycleManager defines operations for managing customer lifecycle
type CustomerLifecycleManager interface {
	// DeactivateCustomer marks a customer inactive (soft delete).
	DeactivateCustomer(ctx context.Context, customerID string, userID string, now time.Time) error
}

// CustomerRepositoryFacade combines all customer-related repository interfaces
type CustomerRepositoryFacade interface {
	CustomerReader
	CustomerWriter
	CustomerLifecycleManager
}
