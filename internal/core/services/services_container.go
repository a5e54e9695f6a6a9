package services

import (
	portsrepo "github.com/salilgupta4/absoms-backend/internal/core/ports/repositories"
	portssvc "github.com/salilgupta4/absoms-backend/internal/core/ports/services"
	"github.com/salilgupta4/absoms-backend/internal/platform/config"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	// User and auth come first since token and API token services depend on them.
	container.User = NewUserService(repos.UserRepo)
	container.TokenService = NewTokenService(cfg, container.User)
	container.GoogleOAuthHandler = NewGoogleOAuthHandlerService(cfg)
	container.APIToken = NewAPITokenService(repos.APITokenRepo, container.User)

	// Masters.
	container.Customer = NewCustomerService(repos.CustomerRepo)
	container.Product = NewProductService(repos.ProductRepo)

	// Numbering only administers the sequences; repositories reserve numbers
	// inside their insert transactions.
	container.Numbering = NewNumberingService(repos.NumberingRepo)

	// Document pipeline.
	container.Quote = NewQuoteService(repos.QuoteRepo, repos.SalesOrderRepo, repos.CustomerRepo, repos.ProductRepo)
	container.SalesOrder = NewSalesOrderService(repos.SalesOrderRepo, repos.CustomerRepo, repos.ProductRepo)
	container.DeliveryOrder = NewDeliveryOrderService(repos.DeliveryOrderRepo, repos.SalesOrderRepo)
	container.PurchaseOrder = NewPurchaseOrderService(repos.PurchaseOrderRepo, repos.ProductRepo)

	// HR. Advance before payroll since payroll approval posts ledger deductions.
	container.Employee = NewEmployeeService(repos.EmployeeRepo)
	container.Advance = NewAdvanceService(repos.AdvanceRepo, repos.EmployeeRepo)
	container.Payroll = NewPayrollService(repos.PayrollRepo, repos.EmployeeRepo, repos.AdvanceRepo, container.Advance)
	container.Leave = NewLeaveService(repos.LeaveRepo, repos.EmployeeRepo)

	// Settings before PDF rendering, which styles itself from the singletons.
	container.Settings = NewSettingsService(repos.SettingsRepo)
	container.PDF = NewPDFService(repos.QuoteRepo, repos.SalesOrderRepo, repos.DeliveryOrderRepo, repos.PurchaseOrderRepo, repos.PayrollRepo, container.Settings)

	container.Export = NewExportService(repos.CustomerRepo, repos.ProductRepo, repos.QuoteRepo, repos.SalesOrderRepo, repos.PayrollRepo, container.Product, container.Customer)
	container.Reporting = NewReportingService(repos.ReportingRepo)

	return container
}
