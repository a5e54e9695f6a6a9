package repositories

import (
	"context"

	"github.com/salilgupta4/absoms-backend/internal/core/domain"
)

// SettingsRepository manages the singleton settings documents.
type SettingsRepository interface {
	// GetCompanyDetails retrieves the company profile singleton.
	GetCompanyDetails(ctx context.Context) (*domain.CompanyDetails, error)

	// SaveCompanyDetails upserts the company profile singleton.
	SaveCompanyDetails(ctx context.Context, details domain.CompanyDetails) error

	// GetPDFTemplate retrieves the PDF template settings singleton.
	GetPDFTemplate(ctx context.Context) (*domain.PDFTemplateSettings, error)

	// SavePDFTemplate upserts the PDF template settings singleton.
	SavePDFTemplate(ctx context.Context, tmpl domain.PDFTemplateSettings) error
}
