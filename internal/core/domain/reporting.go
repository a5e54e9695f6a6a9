package domain

import (
	"github.com/shopspring/decimal"
)

// StatusCount is a document count for a single status.
type StatusCount struct {
	Status DocumentStatus `json:"status"`
	Count  int64          `json:"count"`
}

// DashboardReport aggregates the figures shown on the landing dashboard.
type DashboardReport struct {
	QuoteCounts         []StatusCount   `json:"quoteCounts"`
	SalesOrderCounts    []StatusCount   `json:"salesOrderCounts"`
	PurchaseOrderCounts []StatusCount   `json:"purchaseOrderCounts"`
	OpenQuoteValue      decimal.Decimal `json:"openQuoteValue"`      // grand totals of DRAFT/SENT quotes
	MonthlySalesTotal   decimal.Decimal `json:"monthlySalesTotal"`   // approved SO totals this month
	PendingDeliveries   int64           `json:"pendingDeliveries"`   // sales orders not fully delivered
	OutstandingAdvances decimal.Decimal `json:"outstandingAdvances"` // sum of active advance balances
	ActiveEmployees     int64           `json:"activeEmployees"`
	ActiveCustomers     int64           `json:"activeCustomers"`
}

// IntegrityIssue is one finding from the data-administration integrity scan.
type IntegrityIssue struct {
	Kind        string `json:"kind"`     // e.g. "DUPLICATE_PRIMARY_CONTACT"
	EntityID    string `json:"entityID"` // offending record
	Description string `json:"description"`
}

// IntegrityReport is the full result of an integrity scan. The scan never
// mutates data; it only reports.
type IntegrityReport struct {
	ScannedCustomers int64            `json:"scannedCustomers"`
	ScannedDocuments int64            `json:"scannedDocuments"`
	ScannedAdvances  int64            `json:"scannedAdvances"`
	Issues           []IntegrityIssue `json:"issues"`
}
