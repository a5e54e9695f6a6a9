package repositories

// RepositoryProvider holds all repository interfaces needed by services.
// This makes passing dependencies to the service container constructor cleaner.
type RepositoryProvider struct {
	UserRepo          UserRepositoryFacade
	APITokenRepo      APITokenRepository
	CustomerRepo      CustomerRepositoryFacade
	ProductRepo       ProductRepositoryFacade
	QuoteRepo         QuoteRepositoryFacade
	SalesOrderRepo    SalesOrderRepositoryFacade
	DeliveryOrderRepo DeliveryOrderRepositoryFacade
	PurchaseOrderRepo PurchaseOrderRepositoryFacade
	NumberingRepo     NumberingRepository
	EmployeeRepo      EmployeeRepositoryFacade
	PayrollRepo       PayrollRepositoryFacade
	AdvanceRepo       AdvanceRepositoryFacade
	LeaveRepo         LeaveRepositoryFacade
	SettingsRepo      SettingsRepository
	ReportingRepo     ReportingRepository
}
