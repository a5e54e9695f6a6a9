package dto

import (
	"github.com/salilgupta4/absoms-backend/internal/core/domain"
)

// UpdateCompanyDetailsRequest replaces the company profile singleton.
type UpdateCompanyDetailsRequest struct {
	Name          string `json:"name" binding:"required"`
	Address       string `json:"address"`
	City          string `json:"city"`
	State         string `json:"state"`
	Pincode       string `json:"pincode"`
	GSTIN         string `json:"gstin" binding:"omitempty,len=15"`
	Email         string `json:"email" binding:"omitempty,email"`
	Phone         string `json:"phone"`
	BankName      string `json:"bankName"`
	AccountNumber string `json:"accountNumber"`
	IFSC          string `json:"ifsc" binding:"omitempty,len=11"`
	LogoURL       string `json:"logoURL" binding:"omitempty,url"`
}

// UpdatePDFTemplateRequest replaces the PDF template settings singleton.
type UpdatePDFTemplateRequest struct {
	AccentColor string `json:"accentColor" binding:"omitempty,hexcolor"`
	FooterText  string `json:"footerText"`
	ShowLogo    bool   `json:"showLogo"`
	Terms       string `json:"terms"`
}

// CompanyDetailsResponse defines the data returned for the company profile.
type CompanyDetailsResponse struct {
	Name          string `json:"name"`
	Address       string `json:"address"`
	City          string `json:"city"`
	State         string `json:"state"`
	Pincode       string `json:"pincode"`
	GSTIN         string `json:"gstin"`
	Email         string `json:"email"`
	Phone         string `json:"phone"`
	BankName      string `json:"bankName"`
	AccountNumber string `json:"accountNumber"`
	IFSC          string `json:"ifsc"`
	LogoURL       string `json:"logoURL"`
}

// ToCompanyDetailsResponse converts domain.CompanyDetails to its DTO
func ToCompanyDetailsResponse(d *domain.CompanyDetails) CompanyDetailsResponse {
	return CompanyDetailsResponse{
		Name:          d.Name,
		Address:       d.Address,
		City:          d.City,
		State:         d.State,
		Pincode:       d.Pincode,
		GSTIN:         d.GSTIN,
		Email:         d.Email,
		Phone:         d.Phone,
		BankName:      d.BankName,
		AccountNumber: d.AccountNumber,
		IFSC:          d.IFSC,
		LogoURL:       d.LogoURL,
	}
}

// PDFTemplateResponse defines the data returned for PDF template settings.
type PDFTemplateResponse struct {
	AccentColor string `json:"accentColor"`
	FooterText  string `json:"footerText"`
	ShowLogo    bool   `json:"showLogo"`
	Terms       string `json:"terms"`
}

// ToPDFTemplateResponse converts domain.PDFTemplateSettings to its DTO
func ToPDFTemplateResponse(t *domain.PDFTemplateSettings) PDFTemplateResponse {
	return PDFTemplateResponse{
		AccentColor: t.AccentColor,
		FooterText:  t.FooterText,
		ShowLogo:    t.ShowLogo,
		Terms:       t.Terms,
	}
}
