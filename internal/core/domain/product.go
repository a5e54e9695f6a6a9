package domain

import "github.com/shopspring/decimal"

// Product is a sellable item or service.
type Product struct {
	ProductID   string          `json:"productID"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	HSNCode     string          `json:"hsnCode"`
	Unit        string          `json:"unit"` // e.g. "Nos", "Kg", "Mtr"
	Rate        decimal.Decimal `json:"rate"`
	GSTRate     decimal.Decimal `json:"gstRate"` // percent
	IsActive    bool            `json:"isActive"`
	AuditFields
}
