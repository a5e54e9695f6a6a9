package services

import (
	"context"

	"github.com/salilgupta4/absoms-backend/internal/core/domain"
)

// ReportingSvc serves the dashboard and the data-administration integrity scan
type ReportingSvc interface {
	// GetDashboard computes the landing dashboard aggregates.
	GetDashboard(ctx context.Context) (*domain.DashboardReport, error)

	// RunIntegrityScan checks referential and invariant health. Read-only.
	RunIntegrityScan(ctx context.Context) (*domain.IntegrityReport, error)
}
