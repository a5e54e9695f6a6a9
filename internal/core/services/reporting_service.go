package services

import (
	"context"
	"fmt"
	"time"

	"github.com/salilgupta4/absoms-backend/internal/core/domain"
	portsrepo "github.com/salilgupta4/absoms-backend/internal/core/ports/repositories"
	portssvc "github.com/salilgupta4/absoms-backend/internal/core/ports/services"
)

// reportingService serves dashboard aggregates and the integrity scan.
type reportingService struct {
	reportingRepo portsrepo.ReportingRepository
}

// NewReportingService creates a new reporting service.
func NewReportingService(reportingRepo portsrepo.ReportingRepository) portssvc.ReportingSvc {
	return &reportingService{reportingRepo: reportingRepo}
}

var _ portssvc.ReportingSvc = (*reportingService)(nil)

func (s *reportingService) GetDashboard(ctx context.Context) (*domain.DashboardReport, error) {
	now := time.Now()
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())

	report, err := s.reportingRepo.GetDashboardReport(ctx, monthStart)
	if err != nil {
		return nil, fmt.Errorf("failed to build dashboard report: %w", err)
	}
	return report, nil
}

func (s *reportingService) RunIntegrityScan(ctx context.Context) (*domain.IntegrityReport, error) {
	report, err := s.reportingRepo.RunIntegrityScan(ctx)
	if err != nil {
		return nil, fmt.Errorf("integrity scan failed: %w", err)
	}
	return report, nil
}
