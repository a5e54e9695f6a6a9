package domain

// AddressKind distinguishes billing from shipping addresses.
type AddressKind string

const (
	AddressBilling  AddressKind = "BILLING"
	AddressShipping AddressKind = "SHIPPING"
)

// Contact is a person attached to a customer. At most one contact per
// customer carries IsPrimary.
type Contact struct {
	ContactID string `json:"contactID"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	IsPrimary bool   `json:"isPrimary"`
}

// Address is a postal address attached to a customer. At most one address
// per kind carries IsDefault.
type Address struct {
	AddressID string      `json:"addressID"`
	Kind      AddressKind `json:"kind"`
	Line1     string      `json:"line1"`
	Line2     string      `json:"line2"`
	City      string      `json:"city"`
	State     string      `json:"state"`
	Pincode   string      `json:"pincode"`
	IsDefault bool        `json:"isDefault"`
}

// Customer is a buying party with its contacts and addresses.
type Customer struct {
	CustomerID string    `json:"customerID"`
	Name       string    `json:"name"`
	GSTIN      string    `json:"gstin"`
	Contacts   []Contact `json:"contacts"`
	Addresses  []Address `json:"addresses"`
	IsActive   bool      `json:"isActive"`
	AuditFields
}

// PrimaryContact returns the primary contact, or nil when the customer has none.
func (c Customer) PrimaryContact() *Contact {
	for i := range c.Contacts {
		if c.Contacts[i].IsPrimary {
			return &c.Contacts[i]
		}
	}
	return nil
}

// DefaultAddress returns the default address of the given kind, or nil.
func (c Customer) DefaultAddress(kind AddressKind) *Address {
	for i := range c.Addresses {
		if c.Addresses[i].Kind == kind && c.Addresses[i].IsDefault {
			return &c.Addresses[i]
		}
	}
	return nil
}
