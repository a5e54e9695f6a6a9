package pgsql

import (
	"github.com/jackc/pgx/v5/pgxpool"

	portsrepo "github.com/salilgupta4/absoms-backend/internal/core/ports/repositories"
)

// NewRepositoryProvider wires every pgx-backed repository onto one pool.
func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		UserRepo:          newPgxUserRepository(dbPool),
		APITokenRepo:      newPgxAPITokenRepository(dbPool),
		CustomerRepo:      newPgxCustomerRepository(dbPool),
		ProductRepo:       newPgxProductRepository(dbPool),
		QuoteRepo:         newPgxQuoteRepository(dbPool),
		SalesOrderRepo:    newPgxSalesOrderRepository(dbPool),
		DeliveryOrderRepo: newPgxDeliveryOrderRepository(dbPool),
		PurchaseOrderRepo: newPgxPurchaseOrderRepository(dbPool),
		NumberingRepo:     newPgxNumberingRepository(dbPool),
		EmployeeRepo:      newPgxEmployeeRepository(dbPool),
		PayrollRepo:       newPgxPayrollRepository(dbPool),
		AdvanceRepo:       newPgxAdvanceRepository(dbPool),
		LeaveRepo:         newPgxLeaveRepository(dbPool),
		SettingsRepo:      newPgxSettingsRepository(dbPool),
		ReportingRepo:     newPgxReportingRepository(dbPool),
	}
}
