package repositories

import (
	"context"
	"time"

	"github.com/salilgupta4/absoms-backend/internal/core/domain"
)

// ReportingRepository runs the aggregate queries behind the dashboard and
// the data-administration integrity scan.
type ReportingRepository interface {
	// GetDashboardReport computes the dashboard aggregates. monthStart bounds
	// the "monthly sales" figure.
	GetDashboardReport(ctx context.Context, monthStart time.Time) (*domain.DashboardReport, error)

	// RunIntegrityScan checks referential and invariant health without
	// mutating anything.
	RunIntegrityScan(ctx context.Context) (*domain.IntegrityReport, error)
}
