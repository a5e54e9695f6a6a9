package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/salilgupta4/absoms-backend/internal/apperrors"
	"github.com/salilgupta4/absoms-backend/internal/core/domain"
	portsrepo "github.com/salilgupta4/absoms-backend/internal/core/ports/repositories"
	portssvc "github.com/salilgupta4/absoms-backend/internal/core/ports/services"
	"github.com/salilgupta4/absoms-backend/internal/dto"
)

// settingsService manages the singleton settings documents. Reads seed
// defaults when the singletons have never been saved.
type settingsService struct {
	settingsRepo portsrepo.SettingsRepository
}

// NewSettingsService creates a new settings service.
func NewSettingsService(settingsRepo portsrepo.SettingsRepository) portssvc.SettingsSvcFacade {
	return &settingsService{settingsRepo: settingsRepo}
}

var _ portssvc.SettingsSvcFacade = (*settingsService)(nil)

func (s *settingsService) GetCompanyDetails(ctx context.Context) (*domain.CompanyDetails, error) {
	details, err := s.settingsRepo.GetCompanyDetails(ctx)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return &domain.CompanyDetails{}, nil
		}
		return nil, fmt.Errorf("failed to get company details: %w", err)
	}
	return details, nil
}

func (s *settingsService) UpdateCompanyDetails(ctx context.Context, req dto.UpdateCompanyDetailsRequest, userID string) (*domain.CompanyDetails, error) {
	now := time.Now()
	details := domain.CompanyDetails{
		Name:          req.Name,
		Address:       req.Address,
		City:          req.City,
		State:         req.State,
		Pincode:       req.Pincode,
		GSTIN:         req.GSTIN,
		Email:         req.Email,
		Phone:         req.Phone,
		BankName:      req.BankName,
		AccountNumber: req.AccountNumber,
		IFSC:          req.IFSC,
		LogoURL:       req.LogoURL,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		},
	}

	if err := s.settingsRepo.SaveCompanyDetails(ctx, details); err != nil {
		return nil, fmt.Errorf("failed to save company details: %w", err)
	}
	return &details, nil
}

func (s *settingsService) GetPDFTemplate(ctx context.Context) (*domain.PDFTemplateSettings, error) {
	tmpl, err := s.settingsRepo.GetPDFTemplate(ctx)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return &domain.PDFTemplateSettings{
				AccentColor: "#1F4E79",
				ShowLogo:    true,
			}, nil
		}
		return nil, fmt.Errorf("failed to get pdf template settings: %w", err)
	}
	return tmpl, nil
}

func (s *settingsService) UpdatePDFTemplate(ctx context.Context, req dto.UpdatePDFTemplateRequest, userID string) (*domain.PDFTemplateSettings, error) {
	now := time.Now()
	tmpl := domain.PDFTemplateSettings{
		AccentColor: req.AccentColor,
		FooterText:  req.FooterText,
		ShowLogo:    req.ShowLogo,
		Terms:       req.Terms,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		},
	}

	if err := s.settingsRepo.SavePDFTemplate(ctx, tmpl); err != nil {
		return nil, fmt.Errorf("failed to save pdf template settings: %w", err)
	}
	return &tmpl, nil
}
