package services

// ServiceContainer holds instances of all the application services.
// This is the main entry point for accessing service functionality and
// is used throughout the application, particularly in the handlers.
type ServiceContainer struct {
	User               UserSvcFacade
	APIToken           APITokenSvc
	TokenService       TokenSvcFacade
	GoogleOAuthHandler GoogleOAuthHandlerSvcFacade
	Customer           CustomerSvcFacade
	Product            ProductSvcFacade
	Numbering          NumberingSvcFacade
	Quote              QuoteSvcFacade
	SalesOrder         SalesOrderSvcFacade
	DeliveryOrder      DeliveryOrderSvcFacade
	PurchaseOrder      PurchaseOrderSvcFacade
	Employee           EmployeeSvcFacade
	Payroll            PayrollSvcFacade
	Advance            AdvanceSvcFacade
	Leave              LeaveSvcFacade
	Settings           SettingsSvcFacade
	Export             ExportSvc
	PDF                PDFSvc
	Reporting          ReportingSvc
}
