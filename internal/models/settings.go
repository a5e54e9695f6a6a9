package models

// CompanyDetails represents the singleton company_details row (id always 1).
type CompanyDetails struct {
	ID            int    `db:"id"`
	Name          string `db:"name"`
	Address       string `db:"address"`
	City          string `db:"city"`
	State         string `db:"state"`
	Pincode       string `db:"pincode"`
	GSTIN         string `db:"gstin"`
	Email         string `db:"email"`
	Phone         string `db:"phone"`
	BankName      string `db:"bank_name"`
	AccountNumber string `db:"account_number"`
	IFSC          string `db:"ifsc"`
	LogoURL       string `db:"logo_url"`
	AuditFields
}

// PDFTemplateSettings represents the singleton pdf_template_settings row.
type PDFTemplateSettings struct {
	ID          int    `db:"id"`
	AccentColor string `db:"accent_color"`
	FooterText  string `db:"footer_text"`
	ShowLogo    bool   `db:"show_logo"`
	Terms       string `db:"terms"`
	AuditFields
}
