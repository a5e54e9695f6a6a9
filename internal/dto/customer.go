package dto

import (
	"time"

	"github.com/salilgupta4/absoms-backend/internal/core/domain"
)

// ContactRequest defines one contact on a create/update customer request.
type ContactRequest struct {
	Name      string `json:"name" binding:"required"`
	Email     string `json:"email" binding:"omitempty,email"`
	Phone     string `json:"phone"`
	IsPrimary bool   `json:"isPrimary"`
}

// AddressRequest defines one address on a create/update customer request.
type AddressRequest struct {
	Kind      string `json:"kind" binding:"required,oneof=BILLING SHIPPING"`
	Line1     string `json:"line1" binding:"required"`
	Line2     string `json:"line2"`
	City      string `json:"city"`
	State     string `json:"state"`
	Pincode   string `json:"pincode"`
	IsDefault bool   `json:"isDefault"`
}

// CreateCustomerRequest defines the data needed to create a new customer.
// When several contacts claim primary, only the first keeps the flag; the
// same normalization applies to default addresses per kind.
type CreateCustomerRequest struct {
	Name      string           `json:"name" binding:"required"`
	GSTIN     string           `json:"gstin" binding:"omitempty,len=15"`
	Contacts  []ContactRequest `json:"contacts" binding:"dive"`
	Addresses []AddressRequest `json:"addresses" binding:"dive"`
}

// UpdateCustomerRequest replaces a customer's details wholesale. Contacts and
// addresses are replaced as a set, not patched.
type UpdateCustomerRequest struct {
	Name      string           `json:"name" binding:"required"`
	GSTIN     string           `json:"gstin" binding:"omitempty,len=15"`
	Contacts  []ContactRequest `json:"contacts" binding:"dive"`
	Addresses []AddressRequest `json:"addresses" binding:"dive"`
}

// ContactResponse defines the data returned for a contact.
type ContactResponse struct {
	ContactID string `json:"contactID"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	IsPrimary bool   `json:"isPrimary"`
}

// AddressResponse defines the data returned for an address.
type AddressResponse struct {
	AddressID string `json:"addressID"`
	Kind      string `json:"kind"`
	Line1     string `json:"line1"`
	Line2     string `json:"line2"`
	City      string `json:"city"`
	State     string `json:"state"`
	Pincode   string `json:"pincode"`
	IsDefault bool   `json:"isDefault"`
}

// CustomerResponse defines the data returned for a customer.
type CustomerResponse struct {
	CustomerID string            `json:"customerID"`
	Name       string            `json:"name"`
	GSTIN      string            `json:"gstin"`
	Contacts   []ContactResponse `json:"contacts"`
	Addresses  []AddressResponse `json:"addresses"`
	IsActive   bool              `json:"isActive"`
	CreatedAt  time.Time         `json:"createdAt"`
	CreatedBy  string            `json:"createdBy"`
}

// ToCustomerResponse converts a domain.Customer to CustomerResponse DTO
func ToCustomerResponse(c *domain.Customer) CustomerResponse {
	contacts := make([]ContactResponse, len(c.Contacts))
	for i, ct := range c.Contacts {
		contacts[i] = ContactResponse{
			ContactID: ct.ContactID,
			Name:      ct.Name,
			Email:     ct.Email,
			Phone:     ct.Phone,
			IsPrimary: ct.IsPrimary,
		}
	}
	addresses := make([]AddressResponse, len(c.Addresses))
	for i, ad := range c.Addresses {
		addresses[i] = AddressResponse{
			AddressID: ad.AddressID,
			Kind:      string(ad.Kind),
			Line1:     ad.Line1,
			Line2:     ad.Line2,
			City:      ad.City,
			State:     ad.State,
			Pincode:   ad.Pincode,
			IsDefault: ad.IsDefault,
		}
	}
	return CustomerResponse{
		CustomerID: c.CustomerID,
		Name:       c.Name,
		GSTIN:      c.GSTIN,
		Contacts:   contacts,
		Addresses:  addresses,
		IsActive:   c.IsActive,
		CreatedAt:  c.CreatedAt,
		CreatedBy:  c.CreatedBy,
	}
}

// ToListCustomerResponse converts a slice of domain.Customer to DTOs
func ToListCustomerResponse(customers []domain.Customer) []CustomerResponse {
	res := make([]CustomerResponse, len(customers))
	for i, c := range customers {
		res[i] = ToCustomerResponse(&c)
	}
	return res
}

// ListCustomersParams defines query parameters for listing customers.
type ListCustomersParams struct {
	Name   string `form:"name"`
	Limit  int    `form:"limit,default=20"`
	Offset int    `form:"offset,default=0"`
}
