package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/salilgupta4/absoms-backend/internal/apperrors"
	"github.com/salilgupta4/absoms-backend/internal/core/domain"
	portsrepo "github.com/salilgupta4/absoms-backend/internal/core/ports/repositories"
	"github.com/salilgupta4/absoms-backend/internal/models"
)

type PgxSettingsRepository struct {
	pool *pgxpool.Pool
}

// newPgxSettingsRepository creates a new repository for the settings singletons.
func newPgxSettingsRepository(pool *pgxpool.Pool) portsrepo.SettingsRepository {
	return &PgxSettingsRepository{pool: pool}
}

var _ portsrepo.SettingsRepository = (*PgxSettingsRepository)(nil)

func (r *PgxSettingsRepository) GetCompanyDetails(ctx context.Context) (*domain.CompanyDetails, error) {
	query := `
		SELECT id, name, address, city, state, pincode, gstin, email, phone, bank_name, account_number, ifsc, logo_url, created_at, created_by, last_updated_at, last_updated_by
		FROM company_details
		WHERE id = 1;
	`
	var m models.CompanyDetails
	err := r.pool.QueryRow(ctx, query).Scan(
		&m.ID, &m.Name, &m.Address, &m.City, &m.State, &m.Pincode, &m.GSTIN,
		&m.Email, &m.Phone, &m.BankName, &m.AccountNumber, &m.IFSC, &m.LogoURL,
		&m.CreatedAt, &m.CreatedBy, &m.LastUpdatedAt, &m.LastUpdatedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get company details: %w", err)
	}

	details := domain.CompanyDetails{
		Name:          m.Name,
		Address:       m.Address,
		City:          m.City,
		State:         m.State,
		Pincode:       m.Pincode,
		GSTIN:         m.GSTIN,
		Email:         m.Email,
		Phone:         m.Phone,
		BankName:      m.BankName,
		AccountNumber: m.AccountNumber,
		IFSC:          m.IFSC,
		LogoURL:       m.LogoURL,
		AuditFields: domain.AuditFields{
			CreatedAt:     m.CreatedAt,
			CreatedBy:     m.CreatedBy,
			LastUpdatedAt: m.LastUpdatedAt,
			LastUpdatedBy: m.LastUpdatedBy,
		},
	}
	return &details, nil
}

// SaveCompanyDetails upserts the single row keyed on id = 1.
func (r *PgxSettingsRepository) SaveCompanyDetails(ctx context.Context, details domain.CompanyDetails) error {
	query := `
		INSERT INTO company_details (id, name, address, city, state, pincode, gstin, email, phone, bank_name, account_number, ifsc, logo_url, created_at, created_by, last_updated_at, last_updated_by)
		VALUES (1, $1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)
		ON CONFLICT (id) DO UPDATE
		SET name = EXCLUDED.name, address = EXCLUDED.address, city = EXCLUDED.city, state = EXCLUDED.state,
		    pincode = EXCLUDED.pincode, gstin = EXCLUDED.gstin, email = EXCLUDED.email, phone = EXCLUDED.phone,
		    bank_name = EXCLUDED.bank_name, account_number = EXCLUDED.account_number, ifsc = EXCLUDED.ifsc,
		    logo_url = EXCLUDED.logo_url,
		    last_updated_at = EXCLUDED.last_updated_at, last_updated_by = EXCLUDED.last_updated_by;
	`
	_, err := r.pool.Exec(ctx, query,
		details.Name, details.Address, details.City, details.State, details.Pincode, details.GSTIN,
		details.Email, details.Phone, details.BankName, details.AccountNumber, details.IFSC, details.LogoURL,
		details.CreatedAt, details.CreatedBy, details.LastUpdatedAt, details.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to save company details: %w", err)
	}
	return nil
}

func (r *PgxSettingsRepository) GetPDFTemplate(ctx context.Context) (*domain.PDFTemplateSettings, error) {
	query := `
		SELECT id, accent_color, footer_text, show_logo, terms, created_at, created_by, last_updated_at, last_updated_by
		FROM pdf_template_settings
		WHERE id = 1;
	`
	var m models.PDFTemplateSettings
	err := r.pool.QueryRow(ctx, query).Scan(
		&m.ID, &m.AccentColor, &m.FooterText, &m.ShowLogo, &m.Terms,
		&m.CreatedAt, &m.CreatedBy, &m.LastUpdatedAt, &m.LastUpdatedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get pdf template settings: %w", err)
	}

	tmpl := domain.PDFTemplateSettings{
		AccentColor: m.AccentColor,
		FooterText:  m.FooterText,
		ShowLogo:    m.ShowLogo,
		Terms:       m.Terms,
		AuditFields: domain.AuditFields{
			CreatedAt:     m.CreatedAt,
			CreatedBy:     m.CreatedBy,
			LastUpdatedAt: m.LastUpdatedAt,
			LastUpdatedBy: m.LastUpdatedBy,
		},
	}
	return &tmpl, nil
}

// SavePDFTemplate upserts the single row keyed on id = 1.
func (r *PgxSettingsRepository) SavePDFTemplate(ctx context.Context, tmpl domain.PDFTemplateSettings) error {
	query := `
		INSERT INTO pdf_template_settings (id, accent_color, footer_text, show_logo, terms, created_at, created_by, last_updated_at, last_updated_by)
		VALUES (1, $1, $2, $3, $4, $5, $6, $7, $8)
		ON CONFLICT (id) DO UPDATE
		SET accent_color = EXCLUDED.accent_color, footer_text = EXCLUDED.footer_text,
		    show_logo = EXCLUDED.show_logo, terms = EXCLUDED.terms,
		    last_updated_at = EXCLUDED.last_updated_at, last_updated_by = EXCLUDED.last_updated_by;
	`
	_, err := r.pool.Exec(ctx, query,
		tmpl.AccentColor, tmpl.FooterText, tmpl.ShowLogo, tmpl.Terms,
		tmpl.CreatedAt, tmpl.CreatedBy, tmpl.LastUpdatedAt, tmpl.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to save pdf template settings: %w", err)
	}
	return nil
}
