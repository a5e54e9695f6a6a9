package models

import "github.com/shopspring/decimal"

// Product represents a product row.
type Product struct {
	ProductID   string          `db:"product_id"`
	Name        string          `db:"name"`
	Description string          `db:"description"`
	HSNCode     string          `db:"hsn_code"`
	Unit        string          `db:"unit"`
	Rate        decimal.Decimal `db:"rate"`
	GSTRate     decimal.Decimal `db:"gst_rate"`
	IsActive    bool            `db:"is_active"`
	AuditFields
}
