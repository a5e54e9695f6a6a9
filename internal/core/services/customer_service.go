package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/salilgupta4/absoms-backend/internal/core/domain"
	portsrepo "github.com/salilgupta4/absoms-backend/internal/core/ports/repositories"
	portssvc "github.com/salilgupta4/absoms-backend/internal/core/ports/services"
	"github.com/salilgupta4/absoms-backend/internal/dto"
	"github.com/salilgupta4/absoms-backend/internal/middleware"
)

// customerService provides customer management operations.
type customerService struct {
	customerRepo portsrepo.CustomerRepositoryFacade
}

// NewCustomerService creates a new customer service.
func NewCustomerService(customerRepo portsrepo.CustomerRepositoryFacade) portssvc.CustomerSvcFacade {
	return &customerService{customerRepo: customerRepo}
}

var _ portssvc.CustomerSvcFacade = (*customerService)(nil)

// buildContacts maps contact requests to domain contacts, keeping the primary
// flag on the first claimant only.
func buildContacts(reqs []dto.ContactRequest) []domain.Contact {
	contacts := make([]domain.Contact, len(reqs))
	primarySeen := false
	for i, c := range reqs {
		isPrimary := c.IsPrimary && !primarySeen
		if isPrimary {
			primarySeen = true
		}
		contacts[i] = domain.Contact{
			ContactID: uuid.NewString(),
			Name:      c.Name,
			Email:     c.Email,
			Phone:     c.Phone,
			IsPrimary: isPrimary,
		}
	}
	// A customer with contacts always has exactly one primary.
	if !primarySeen && len(contacts) > 0 {
		contacts[0].IsPrimary = true
	}
	return contacts
}

// buildAddresses maps address requests to domain addresses, keeping at most
// one default per address kind.
func buildAddresses(reqs []dto.AddressRequest) []domain.Address {
	addresses := make([]domain.Address, len(reqs))
	defaultSeen := map[domain.AddressKind]bool{}
	for i, a := range reqs {
		kind := domain.AddressKind(a.Kind)
		isDefault := a.IsDefault && !defaultSeen[kind]
		if isDefault {
			defaultSeen[kind] = true
		}
		addresses[i] = domain.Address{
			AddressID: uuid.NewString(),
			Kind:      kind,
			Line1:     a.Line1,
			Line2:     a.Line2,
			City:      a.City,
			State:     a.State,
			Pincode:   a.Pincode,
			IsDefault: isDefault,
		}
	}
	return addresses
}

func (s *customerService) CreateCustomer(ctx context.Context, req dto.CreateCustomerRequest, userID string) (*domain.Customer, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	now := time.Now()
	customer := domain.Customer{
		CustomerID: uuid.NewString(),
		Name:       req.Name,
		GSTIN:      req.GSTIN,
		Contacts:   buildContacts(req.Contacts),
		Addresses:  buildAddresses(req.Addresses),
		IsActive:   true,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		},
	}

	if err := s.customerRepo.SaveCustomer(ctx, customer); err != nil {
		logger.Error("failed to save customer", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to create customer: %w", err)
	}
	return &customer, nil
}

func (s *customerService) GetCustomerByID(ctx context.Context, customerID string) (*domain.Customer, error) {
	customer, err := s.customerRepo.FindCustomerByID(ctx, customerID)
	if err != nil {
		return nil, fmt.Errorf("failed to get customer %s: %w", customerID, err)
	}
	return customer, nil
}

func (s *customerService) ListCustomers(ctx context.Context, nameFilter string, limit int, offset int) ([]domain.Customer, error) {
	customers, err := s.customerRepo.FindCustomers(ctx, nameFilter, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list customers: %w", err)
	}
	return customers, nil
}

func (s *customerService) UpdateCustomer(ctx context.Context, customerID string, req dto.UpdateCustomerRequest, userID string) (*domain.Customer, error) {
	existing, err := s.customerRepo.FindCustomerByID(ctx, customerID)
	if err != nil {
		return nil, err
	}

	existing.Name = req.Name
	existing.GSTIN = req.GSTIN
	existing.Contacts = buildContacts(req.Contacts)
	existing.Addresses = buildAddresses(req.Addresses)
	existing.LastUpdatedAt = time.Now()
	existing.LastUpdatedBy = userID

	if err := s.customerRepo.UpdateCustomer(ctx, *existing); err != nil {
		return nil, fmt.Errorf("failed to update customer %s: %w", customerID, err)
	}
	return existing, nil
}

func (s *customerService) DeactivateCustomer(ctx context.Context, customerID string, userID string) error {
	if _, err := s.customerRepo.FindCustomerByID(ctx, customerID); err != nil {
		return err
	}
	return s.customerRepo.DeactivateCustomer(ctx, customerID, userID, time.Now())
}
