package services

import (
	"context"

	"github.com/salilgupta4/absoms-backend/internal/core/domain"
	"github.com/salilgupta4/absoms-backend/internal/dto"
)

// SettingsSvcFacade manages the singleton settings documents
type SettingsSvcFacade interface {
	// GetCompanyDetails retrieves the company profile, seeding defaults when unset.
	GetCompanyDetails(ctx context.Context) (*domain.CompanyDetails, error)

	// UpdateCompanyDetails upserts the company profile singleton.
	UpdateCompanyDetails(ctx context.Context, req dto.UpdateCompanyDetailsRequest, userID string) (*domain.CompanyDetails, error)

	// GetPDFTemplate retrieves the PDF template settings, seeding defaults when unset.
	GetPDFTemplate(ctx context.Context) (*domain.PDFTemplateSettings, error)

	// UpdatePDFTemplate upserts the PDF template settings singleton.
	UpdatePDFTemplate(ctx context.Context, req dto.UpdatePDFTemplateRequest, userID string) (*domain.PDFTemplateSettings, error)
}
