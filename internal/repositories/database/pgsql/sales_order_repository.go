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

type PgxSalesOrderRepository struct {
	BaseRepository
}

// newPgxSalesOrderRepository creates a new repository for sales order data.
func newPgxSalesOrderRepository(pool *pgxpool.Pool) portsrepo.SalesOrderRepositoryFacade {
	return &PgxSalesOrderRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.SalesOrderRepositoryFacade = (*PgxSalesOrderRepository)(nil)

const salesOrderColumns = `sales_order_id, order_number, client_po_number, source_quote_id, customer_id, customer_name, customer_gstin, customer_address, subtotal, total_tax, grand_total, status, order_date, notes, created_at, created_by, last_updated_at, last_updated_by`

func scanSalesOrderRow(row pgx.Row) (*models.SalesOrder, error) {
	var m models.SalesOrder
	err := row.Scan(
		&m.SalesOrderID, &m.OrderNumber, &m.ClientPONumber, &m.SourceQuoteID,
		&m.CustomerID, &m.CustomerName, &m.CustomerGSTIN, &m.CustomerAddress,
		&m.Subtotal, &m.TotalTax, &m.GrandTotal,
		&m.Status, &m.OrderDate, &m.Notes,
		&m.CreatedAt, &m.CreatedBy, &m.LastUpdatedAt, &m.LastUpdatedBy,
	)
	if err != nil {
		return nil, err
	}
	return &m, nil
}

func toDomainSalesOrder(m models.SalesOrder, items []models.SalesOrderItem) domain.SalesOrder {
	so := domain.SalesOrder{
		SalesOrderID:  m.SalesOrderID,
		OrderNumber:   m.OrderNumber,
		ClientPONum:   m.ClientPONumber,
		SourceQuoteID: m.SourceQuoteID,
		Customer: domain.CustomerSnapshot{
			CustomerID:   m.CustomerID,
			CustomerName: m.CustomerName,
			GSTIN:        m.CustomerGSTIN,
			Address:      m.CustomerAddress,
		},
		Totals: domain.DocumentTotals{
			Subtotal:   m.Subtotal,
			TotalTax:   m.TotalTax,
			GrandTotal: m.GrandTotal,
		},
		Status:    domain.DocumentStatus(m.Status),
		OrderDate: m.OrderDate,
		Notes:     m.Notes,
		AuditFields: domain.AuditFields{
			CreatedAt:     m.CreatedAt,
			CreatedBy:     m.CreatedBy,
			LastUpdatedAt: m.LastUpdatedAt,
			LastUpdatedBy: m.LastUpdatedBy,
		},
	}
	for _, mi := range items {
		so.Items = append(so.Items, domain.LineItem{
			LineItemID:        mi.LineItemID,
			ProductID:         mi.ProductID,
			ProductName:       mi.ProductName,
			Description:       mi.Description,
			HSNCode:           mi.HSNCode,
			Quantity:          mi.Quantity,
			Unit:              mi.Unit,
			Rate:              mi.Rate,
			DiscountPct:       mi.DiscountPct,
			GSTRate:           mi.GSTRate,
			Amount:            mi.Amount,
			TaxAmount:         mi.TaxAmount,
			DeliveredQuantity: mi.DeliveredQuantity,
		})
	}
	return so
}

func insertSalesOrderItems(ctx context.Context, tx pgx.Tx, order domain.SalesOrder) error {
	query := `
		INSERT INTO sales_order_items (line_item_id, sales_order_id, product_id, product_name, description, hsn_code, quantity, unit, rate, discount_pct, gst_rate, amount, tax_amount, delivered_quantity)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14);
	`
	for _, li := range order.Items {
		if _, err := tx.Exec(ctx, query,
			li.LineItemID, order.SalesOrderID, li.ProductID, li.ProductName, li.Description, li.HSNCode,
			li.Quantity, li.Unit, li.Rate, li.DiscountPct, li.GSTRate, li.Amount, li.TaxAmount,
			li.DeliveredQuantity,
		); err != nil {
			return fmt.Errorf("failed to insert sales order item for order %s: %w", order.SalesOrderID, err)
		}
	}
	return nil
}

func (r *PgxSalesOrderRepository) SaveSalesOrder(ctx context.Context, order *domain.SalesOrder) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	if order.OrderNumber == "" {
		number, err := allocateDocumentNumber(ctx, tx, domain.DocTypeSalesOrder)
		if err != nil {
			return err
		}
		order.OrderNumber = number
	}

	query := `
		INSERT INTO sales_orders (` + salesOrderColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18);
	`
	_, err = tx.Exec(ctx, query,
		order.SalesOrderID, order.OrderNumber, order.ClientPONum, order.SourceQuoteID,
		order.Customer.CustomerID, order.Customer.CustomerName, order.Customer.GSTIN, order.Customer.Address,
		order.Totals.Subtotal, order.Totals.TotalTax, order.Totals.GrandTotal,
		string(order.Status), order.OrderDate, order.Notes,
		order.CreatedAt, order.CreatedBy, order.LastUpdatedAt, order.LastUpdatedBy,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: sales order %s already exists", apperrors.ErrDuplicate, order.OrderNumber)
		}
		return fmt.Errorf("failed to save sales order %s: %w", order.SalesOrderID, err)
	}

	if err := insertSalesOrderItems(ctx, tx, *order); err != nil {
		return err
	}
	return r.Commit(ctx, tx)
}

// UpdateSalesOrder replaces the order row and its line items. Line item IDs
// come from the domain object unchanged, so delivery order source_line_id
// references stay valid across updates.
func (r *PgxSalesOrderRepository) UpdateSalesOrder(ctx context.Context, order domain.SalesOrder) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	query := `
		UPDATE sales_orders
		SET client_po_number = $2, customer_id = $3, customer_name = $4, customer_gstin = $5, customer_address = $6,
		    subtotal = $7, total_tax = $8, grand_total = $9,
		    status = $10, order_date = $11, notes = $12,
		    last_updated_at = $13, last_updated_by = $14
		WHERE sales_order_id = $1;
	`
	tag, err := tx.Exec(ctx, query,
		order.SalesOrderID, order.ClientPONum,
		order.Customer.CustomerID, order.Customer.CustomerName, order.Customer.GSTIN, order.Customer.Address,
		order.Totals.Subtotal, order.Totals.TotalTax, order.Totals.GrandTotal,
		string(order.Status), order.OrderDate, order.Notes,
		order.LastUpdatedAt, order.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to update sales order %s: %w", order.SalesOrderID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}

	if _, err := tx.Exec(ctx, `DELETE FROM sales_order_items WHERE sales_order_id = $1;`, order.SalesOrderID); err != nil {
		return fmt.Errorf("failed to clear sales order items for order %s: %w", order.SalesOrderID, err)
	}
	if err := insertSalesOrderItems(ctx, tx, order); err != nil {
		return err
	}
	return r.Commit(ctx, tx)
}

func (r *PgxSalesOrderRepository) findSalesOrderItems(ctx context.Context, salesOrderID string) ([]models.SalesOrderItem, error) {
	query := `
		SELECT line_item_id, sales_order_id, product_id, product_name, description, hsn_code, quantity, unit, rate, discount_pct, gst_rate, amount, tax_amount, delivered_quantity
		FROM sales_order_items
		WHERE sales_order_id = $1
		ORDER BY product_name;
	`
	rows, err := r.Pool.Query(ctx, query, salesOrderID)
	if err != nil {
		return nil, fmt.Errorf("failed to query sales order items for order %s: %w", salesOrderID, err)
	}
	defer rows.Close()

	var items []models.SalesOrderItem
	for rows.Next() {
		var mi models.SalesOrderItem
		if err := rows.Scan(
			&mi.LineItemID, &mi.SalesOrderID, &mi.ProductID, &mi.ProductName, &mi.Description, &mi.HSNCode,
			&mi.Quantity, &mi.Unit, &mi.Rate, &mi.DiscountPct, &mi.GSTRate, &mi.Amount, &mi.TaxAmount,
			&mi.DeliveredQuantity,
		); err != nil {
			return nil, fmt.Errorf("failed to scan sales order item: %w", err)
		}
		items = append(items, mi)
	}
	return items, rows.Err()
}

func (r *PgxSalesOrderRepository) FindSalesOrderByID(ctx context.Context, salesOrderID string) (*domain.SalesOrder, error) {
	query := `SELECT ` + salesOrderColumns + ` FROM sales_orders WHERE sales_order_id = $1;`
	m, err := scanSalesOrderRow(r.Pool.QueryRow(ctx, query, salesOrderID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find sales order by ID %s: %w", salesOrderID, err)
	}

	items, err := r.findSalesOrderItems(ctx, salesOrderID)
	if err != nil {
		return nil, err
	}
	order := toDomainSalesOrder(*m, items)
	return &order, nil
}

func (r *PgxSalesOrderRepository) FindSalesOrders(ctx context.Context, filter portsrepo.DocumentListFilter) ([]domain.SalesOrder, error) {
	query := `
		SELECT ` + salesOrderColumns + `
		FROM sales_orders
		WHERE ($1 = '' OR status = $1) AND ($2 = '' OR customer_id = $2)
		ORDER BY order_date DESC, order_number DESC
		LIMIT $3 OFFSET $4;
	`
	rows, err := r.Pool.Query(ctx, query, string(filter.Status), filter.CustomerID, filter.Limit, filter.Offset)
	if err != nil {
		return nil, fmt.Errorf("failed to query sales orders: %w", err)
	}
	defer rows.Close()

	var orderModels []models.SalesOrder
	for rows.Next() {
		m, err := scanSalesOrderRow(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan sales order: %w", err)
		}
		orderModels = append(orderModels, *m)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	orders := make([]domain.SalesOrder, 0, len(orderModels))
	for _, m := range orderModels {
		items, err := r.findSalesOrderItems(ctx, m.SalesOrderID)
		if err != nil {
			return nil, err
		}
		orders = append(orders, toDomainSalesOrder(m, items))
	}
	return orders, nil
}
