package domain

// CompanyDetails is the singleton company profile printed on documents.
type CompanyDetails struct {
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
	AuditFields
}

// PDFTemplateSettings is the singleton controlling rendered document styling.
type PDFTemplateSettings struct {
	AccentColor string `json:"accentColor"` // hex, e.g. "#1F4E79"
	FooterText  string `json:"footerText"`
	ShowLogo    bool   `json:"showLogo"`
	Terms       string `json:"terms"`
	AuditFields
}
