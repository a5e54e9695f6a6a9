package pgsql

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/salilgupta4/absoms-backend/internal/core/domain"
	portsrepo "github.com/salilgupta4/absoms-backend/internal/core/ports/repositories"
)

type PgxReportingRepository struct {
	pool *pgxpool.Pool
}

// newPgxReportingRepository creates a new repository for reporting queries.
func newPgxReportingRepository(pool *pgxpool.Pool) portsrepo.ReportingRepository {
	return &PgxReportingRepository{pool: pool}
}

var _ portsrepo.ReportingRepository = (*PgxReportingRepository)(nil)

func (r *PgxReportingRepository) countByStatus(ctx context.Context, table string) ([]domain.StatusCount, error) {
	query := fmt.Sprintf(`SELECT status, COUNT(*) FROM %s GROUP BY status ORDER BY status;`, table)
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to count %s by status: %w", table, err)
	}
	defer rows.Close()

	counts := []domain.StatusCount{}
	for rows.Next() {
		var sc domain.StatusCount
		if err := rows.Scan(&sc.Status, &sc.Count); err != nil {
			return nil, fmt.Errorf("failed to scan status count: %w", err)
		}
		counts = append(counts, sc)
	}
	return counts, rows.Err()
}

func (r *PgxReportingRepository) GetDashboardReport(ctx context.Context, monthStart time.Time) (*domain.DashboardReport, error) {
	report := &domain.DashboardReport{}

	var err error
	if report.QuoteCounts, err = r.countByStatus(ctx, "quotes"); err != nil {
		return nil, err
	}
	if report.SalesOrderCounts, err = r.countByStatus(ctx, "sales_orders"); err != nil {
		return nil, err
	}
	if report.PurchaseOrderCounts, err = r.countByStatus(ctx, "purchase_orders"); err != nil {
		return nil, err
	}

	openQuoteQuery := `
		SELECT COALESCE(SUM(grand_total), 0)
		FROM quotes
		WHERE status IN ('DRAFT', 'SENT');
	`
	if err := r.pool.QueryRow(ctx, openQuoteQuery).Scan(&report.OpenQuoteValue); err != nil {
		return nil, fmt.Errorf("failed to compute open quote value: %w", err)
	}

	monthlySalesQuery := `
		SELECT COALESCE(SUM(grand_total), 0)
		FROM sales_orders
		WHERE status IN ('APPROVED', 'PARTIAL', 'CLOSED') AND order_date >= $1;
	`
	if err := r.pool.QueryRow(ctx, monthlySalesQuery, monthStart).Scan(&report.MonthlySalesTotal); err != nil {
		return nil, fmt.Errorf("failed to compute monthly sales total: %w", err)
	}

	pendingQuery := `
		SELECT COUNT(*)
		FROM sales_orders
		WHERE status IN ('APPROVED', 'PARTIAL');
	`
	if err := r.pool.QueryRow(ctx, pendingQuery).Scan(&report.PendingDeliveries); err != nil {
		return nil, fmt.Errorf("failed to count pending deliveries: %w", err)
	}

	advancesQuery := `
		SELECT COALESCE(SUM(balance_amount), 0)
		FROM advance_payments
		WHERE status = 'ACTIVE';
	`
	if err := r.pool.QueryRow(ctx, advancesQuery).Scan(&report.OutstandingAdvances); err != nil {
		return nil, fmt.Errorf("failed to sum outstanding advances: %w", err)
	}

	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM employees WHERE is_active = TRUE;`).Scan(&report.ActiveEmployees); err != nil {
		return nil, fmt.Errorf("failed to count active employees: %w", err)
	}
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM customers WHERE is_active = TRUE;`).Scan(&report.ActiveCustomers); err != nil {
		return nil, fmt.Errorf("failed to count active customers: %w", err)
	}

	return report, nil
}

// integrityCheck is one read-only scan query. Each row it returns becomes an
// issue of the given kind; the first column is the entity ID, the second the
// description.
type integrityCheck struct {
	kind  string
	query string
}

var integrityChecks = []integrityCheck{
	{
		kind: "DUPLICATE_PRIMARY_CONTACT",
		query: `
			SELECT customer_id, 'customer has ' || COUNT(*) || ' primary contacts'
			FROM customer_contacts
			WHERE is_primary = TRUE
			GROUP BY customer_id
			HAVING COUNT(*) > 1;
		`,
	},
	{
		kind: "DUPLICATE_DEFAULT_ADDRESS",
		query: `
			SELECT customer_id, 'customer has multiple default ' || kind || ' addresses'
			FROM customer_addresses
			WHERE is_default = TRUE
			GROUP BY customer_id, kind
			HAVING COUNT(*) > 1;
		`,
	},
	{
		kind: "ORPHAN_DELIVERY_ORDER",
		query: `
			SELECT d.delivery_order_id, 'delivery order references missing sales order ' || d.sales_order_id
			FROM delivery_orders d
			LEFT JOIN sales_orders s ON s.sales_order_id = d.sales_order_id
			WHERE s.sales_order_id IS NULL;
		`,
	},
	{
		kind: "OVER_DELIVERED_LINE",
		query: `
			SELECT line_item_id, 'delivered quantity ' || delivered_quantity || ' exceeds ordered ' || quantity
			FROM sales_order_items
			WHERE delivered_quantity > quantity;
		`,
	},
	{
		kind: "NEGATIVE_ADVANCE_BALANCE",
		query: `
			SELECT advance_id, 'advance balance is negative: ' || balance_amount
			FROM advance_payments
			WHERE balance_amount < 0;
		`,
	},
	{
		kind: "ADVANCE_BALANCE_MISMATCH",
		query: `
			SELECT a.advance_id, 'stored balance ' || a.balance_amount || ' disagrees with ledger sum ' || l.ledger_balance
			FROM advance_payments a
			JOIN (
				SELECT advance_id,
				       SUM(CASE WHEN type = 'DISBURSEMENT' THEN amount ELSE -amount END) AS ledger_balance
				FROM advance_transactions
				GROUP BY advance_id
			) l ON l.advance_id = a.advance_id
			WHERE a.balance_amount <> l.ledger_balance;
		`,
	},
	{
		kind: "MULTIPLE_ACTIVE_ADVANCES",
		query: `
			SELECT employee_id, 'employee has ' || COUNT(*) || ' active advances'
			FROM advance_payments
			WHERE status = 'ACTIVE'
			GROUP BY employee_id
			HAVING COUNT(*) > 1;
		`,
	},
	{
		kind: "QUOTE_LINK_BROKEN",
		query: `
			SELECT q.quote_id, 'quote links to missing sales order ' || q.linked_sales_order_id
			FROM quotes q
			LEFT JOIN sales_orders s ON s.sales_order_id = q.linked_sales_order_id
			WHERE q.linked_sales_order_id <> '' AND s.sales_order_id IS NULL;
		`,
	},
	{
		// The counter holds the next unissued value, so any stored document
		// number at or past it means the sequence was edited below issued
		// numbers and will collide on the next insert.
		kind: "NUMBER_BEYOND_SEQUENCE",
		query: `
			WITH docs AS (
				SELECT quote_id AS entity_id, quote_number AS number, 'QUOTE' AS doc_type FROM quotes
				UNION ALL
				SELECT sales_order_id, order_number, 'SALES_ORDER' FROM sales_orders
				UNION ALL
				SELECT delivery_order_id, do_number, 'DELIVERY_ORDER' FROM delivery_orders
				UNION ALL
				SELECT purchase_order_id, po_number, 'PURCHASE_ORDER' FROM purchase_orders
			)
			SELECT d.entity_id,
			       'document number ' || d.number || ' is at or beyond the ' || d.doc_type || ' counter ' || n.next_number
			FROM docs d
			JOIN numbering_sequences n ON n.doc_type = d.doc_type
			WHERE SUBSTRING(d.number FROM LENGTH(n.prefix) + 1 FOR LENGTH(d.number) - LENGTH(n.prefix) - LENGTH(n.suffix)) ~ '^[0-9]+$'
			  AND SUBSTRING(d.number FROM LENGTH(n.prefix) + 1 FOR LENGTH(d.number) - LENGTH(n.prefix) - LENGTH(n.suffix))::BIGINT >= n.next_number;
		`,
	},
	{
		kind: "ORPHAN_CUSTOMER_REFERENCE",
		query: `
			WITH refs AS (
				SELECT quote_id AS entity_id, customer_id, 'quote' AS doc FROM quotes
				UNION ALL
				SELECT sales_order_id, customer_id, 'sales order' FROM sales_orders
				UNION ALL
				SELECT delivery_order_id, customer_id, 'delivery order' FROM delivery_orders
			)
			SELECT r.entity_id, r.doc || ' references missing customer ' || r.customer_id
			FROM refs r
			LEFT JOIN customers c ON c.customer_id = r.customer_id
			WHERE c.customer_id IS NULL;
		`,
	},
	{
		kind: "ORPHAN_PRODUCT_REFERENCE",
		query: `
			WITH refs AS (
				SELECT line_item_id, product_id, 'quote line' AS doc FROM quote_items
				UNION ALL
				SELECT line_item_id, product_id, 'sales order line' FROM sales_order_items
				UNION ALL
				SELECT line_item_id, product_id, 'purchase order line' FROM purchase_order_items
			)
			SELECT r.line_item_id, r.doc || ' references missing product ' || r.product_id
			FROM refs r
			LEFT JOIN products p ON p.product_id = r.product_id
			WHERE r.product_id <> '' AND p.product_id IS NULL;
		`,
	},
}

func (r *PgxReportingRepository) RunIntegrityScan(ctx context.Context) (*domain.IntegrityReport, error) {
	report := &domain.IntegrityReport{Issues: []domain.IntegrityIssue{}}

	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM customers;`).Scan(&report.ScannedCustomers); err != nil {
		return nil, fmt.Errorf("failed to count customers: %w", err)
	}
	documentsQuery := `
		SELECT (SELECT COUNT(*) FROM quotes)
		     + (SELECT COUNT(*) FROM sales_orders)
		     + (SELECT COUNT(*) FROM delivery_orders)
		     + (SELECT COUNT(*) FROM purchase_orders);
	`
	if err := r.pool.QueryRow(ctx, documentsQuery).Scan(&report.ScannedDocuments); err != nil {
		return nil, fmt.Errorf("failed to count documents: %w", err)
	}
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM advance_payments;`).Scan(&report.ScannedAdvances); err != nil {
		return nil, fmt.Errorf("failed to count advances: %w", err)
	}

	for _, check := range integrityChecks {
		issues, err := r.runCheck(ctx, check)
		if err != nil {
			return nil, err
		}
		report.Issues = append(report.Issues, issues...)
	}
	return report, nil
}

func (r *PgxReportingRepository) runCheck(ctx context.Context, check integrityCheck) ([]domain.IntegrityIssue, error) {
	rows, err := r.pool.Query(ctx, check.query)
	if err != nil {
		return nil, fmt.Errorf("integrity check %s failed: %w", check.kind, err)
	}
	defer rows.Close()

	var issues []domain.IntegrityIssue
	for rows.Next() {
		issue := domain.IntegrityIssue{Kind: check.kind}
		if err := rows.Scan(&issue.EntityID, &issue.Description); err != nil {
			return nil, fmt.Errorf("failed to scan integrity issue: %w", err)
		}
		issues = append(issues, issue)
	}
	return issues, rows.Err()
}
