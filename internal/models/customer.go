package models

// Customer represents a customer row. Contacts and addresses live in their
// own tables and are loaded alongside.
type Customer struct {
	CustomerID string `db:"customer_id"`
	Name       string `db:"name"`
	GSTIN      string `db:"gstin"`
	IsActive   bool   `db:"is_active"`
	AuditFields
}

// CustomerContact represents a customer_contacts row.
type CustomerContact struct {
	ContactID  string `db:"contact_id"`
	CustomerID string `db:"customer_id"`
	Name       string `db:"name"`
	Email      string `db:"email"`
	Phone      string `db:"phone"`
	IsPrimary  bool   `db:"is_primary"`
}

// CustomerAddress represents a customer_addresses row.
type CustomerAddress struct {
	AddressID  string `db:"address_id"`
	CustomerID string `db:"customer_id"`
	Kind       string `db:"kind"`
	Line1      string `db:"line1"`
	Line2      string `db:"line2"`
	City       string `db:"city"`
	State      string `db:"state"`
	Pincode    string `db:"pincode"`
	IsDefault  bool   `db:"is_default"`
}
