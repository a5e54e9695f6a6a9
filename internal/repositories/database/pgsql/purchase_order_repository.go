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

type PgxPurchaseOrderRepository struct {
	BaseRepository
}

// newPgxPurchaseOrderRepository creates a new repository for purchase order data.
func newPgxPurchaseOrderRepository(pool *pgxpool.Pool) portsrepo.PurchaseOrderRepositoryFacade {
	return &PgxPurchaseOrderRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.PurchaseOrderRepositoryFacade = (*PgxPurchaseOrderRepository)(nil)

const purchaseOrderColumns = `purchase_order_id, po_number, vendor_name, vendor_gstin, vendor_address, subtotal, total_tax, grand_total, status, order_date, notes, created_at, created_by, last_updated_at, last_updated_by`

func scanPurchaseOrderRow(row pgx.Row) (*models.PurchaseOrder, error) {
	var m models.PurchaseOrder
	err := row.Scan(
		&m.PurchaseOrderID, &m.PONumber, &m.VendorName, &m.VendorGSTIN, &m.VendorAddress,
		&m.Subtotal, &m.TotalTax, &m.GrandTotal,
		&m.Status, &m.OrderDate, &m.Notes,
		&m.CreatedAt, &m.CreatedBy, &m.LastUpdatedAt, &m.LastUpdatedBy,
	)
	if err != nil {
		return nil, err
	}
	return &m, nil
}

func toDomainPurchaseOrder(m models.PurchaseOrder, items []models.PurchaseOrderItem) domain.PurchaseOrder {
	po := domain.PurchaseOrder{
		PurchaseOrderID: m.PurchaseOrderID,
		PONumber:        m.PONumber,
		VendorName:      m.VendorName,
		VendorGSTIN:     m.VendorGSTIN,
		VendorAddress:   m.VendorAddress,
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
		po.Items = append(po.Items, domain.LineItem{
			LineItemID:  mi.LineItemID,
			ProductID:   mi.ProductID,
			ProductName: mi.ProductName,
			Description: mi.Description,
			HSNCode:     mi.HSNCode,
			Quantity:    mi.Quantity,
			Unit:        mi.Unit,
			Rate:        mi.Rate,
			DiscountPct: mi.DiscountPct,
			GSTRate:     mi.GSTRate,
			Amount:      mi.Amount,
			TaxAmount:   mi.TaxAmount,
		})
	}
	return po
}

func insertPurchaseOrderItems(ctx context.Context, tx pgx.Tx, po domain.PurchaseOrder) error {
	query := `
		INSERT INTO purchase_order_items (line_item_id, purchase_order_id, product_id, product_name, description, hsn_code, quantity, unit, rate, discount_pct, gst_rate, amount, tax_amount)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13);
	`
	for _, li := range po.Items {
		if _, err := tx.Exec(ctx, query,
			li.LineItemID, po.PurchaseOrderID, li.ProductID, li.ProductName, li.Description, li.HSNCode,
			li.Quantity, li.Unit, li.Rate, li.DiscountPct, li.GSTRate, li.Amount, li.TaxAmount,
		); err != nil {
			return fmt.Errorf("failed to insert purchase order item for %s: %w", po.PurchaseOrderID, err)
		}
	}
	return nil
}

func (r *PgxPurchaseOrderRepository) SavePurchaseOrder(ctx context.Context, po *domain.PurchaseOrder) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	if po.PONumber == "" {
		number, err := allocateDocumentNumber(ctx, tx, domain.DocTypePurchaseOrder)
		if err != nil {
			return err
		}
		po.PONumber = number
	}

	query := `
		INSERT INTO purchase_orders (` + purchaseOrderColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15);
	`
	_, err = tx.Exec(ctx, query,
		po.PurchaseOrderID, po.PONumber, po.VendorName, po.VendorGSTIN, po.VendorAddress,
		po.Totals.Subtotal, po.Totals.TotalTax, po.Totals.GrandTotal,
		string(po.Status), po.OrderDate, po.Notes,
		po.CreatedAt, po.CreatedBy, po.LastUpdatedAt, po.LastUpdatedBy,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: purchase order %s already exists", apperrors.ErrDuplicate, po.PONumber)
		}
		return fmt.Errorf("failed to save purchase order %s: %w", po.PurchaseOrderID, err)
	}

	if err := insertPurchaseOrderItems(ctx, tx, *po); err != nil {
		return err
	}
	return r.Commit(ctx, tx)
}

func (r *PgxPurchaseOrderRepository) UpdatePurchaseOrder(ctx context.Context, po domain.PurchaseOrder) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	query := `
		UPDATE purchase_orders
		SET vendor_name = $2, vendor_gstin = $3, vendor_address = $4,
		    subtotal = $5, total_tax = $6, grand_total = $7,
		    order_date = $8, notes = $9,
		    last_updated_at = $10, last_updated_by = $11
		WHERE purchase_order_id = $1;
	`
	tag, err := tx.Exec(ctx, query,
		po.PurchaseOrderID, po.VendorName, po.VendorGSTIN, po.VendorAddress,
		po.Totals.Subtotal, po.Totals.TotalTax, po.Totals.GrandTotal,
		po.OrderDate, po.Notes,
		po.LastUpdatedAt, po.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to update purchase order %s: %w", po.PurchaseOrderID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}

	if _, err := tx.Exec(ctx, `DELETE FROM purchase_order_items WHERE purchase_order_id = $1;`, po.PurchaseOrderID); err != nil {
		return fmt.Errorf("failed to clear purchase order items for %s: %w", po.PurchaseOrderID, err)
	}
	if err := insertPurchaseOrderItems(ctx, tx, po); err != nil {
		return err
	}
	return r.Commit(ctx, tx)
}

func (r *PgxPurchaseOrderRepository) UpdatePurchaseOrderStatus(ctx context.Context, po domain.PurchaseOrder) error {
	query := `
		UPDATE purchase_orders
		SET status = $2, last_updated_at = $3, last_updated_by = $4
		WHERE purchase_order_id = $1;
	`
	tag, err := r.Pool.Exec(ctx, query,
		po.PurchaseOrderID, string(po.Status), po.LastUpdatedAt, po.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to update purchase order status for %s: %w", po.PurchaseOrderID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxPurchaseOrderRepository) findPurchaseOrderItems(ctx context.Context, purchaseOrderID string) ([]models.PurchaseOrderItem, error) {
	query := `
		SELECT line_item_id, purchase_order_id, product_id, product_name, description, hsn_code, quantity, unit, rate, discount_pct, gst_rate, amount, tax_amount
		FROM purchase_order_items
		WHERE purchase_order_id = $1
		ORDER BY product_name;
	`
	rows, err := r.Pool.Query(ctx, query, purchaseOrderID)
	if err != nil {
		return nil, fmt.Errorf("failed to query purchase order items for %s: %w", purchaseOrderID, err)
	}
	defer rows.Close()

	var items []models.PurchaseOrderItem
	for rows.Next() {
		var mi models.PurchaseOrderItem
		if err := rows.Scan(
			&mi.LineItemID, &mi.PurchaseOrderID, &mi.ProductID, &mi.ProductName, &mi.Description, &mi.HSNCode,
			&mi.Quantity, &mi.Unit, &mi.Rate, &mi.DiscountPct, &mi.GSTRate, &mi.Amount, &mi.TaxAmount,
		); err != nil {
			return nil, fmt.Errorf("failed to scan purchase order item: %w", err)
		}
		items = append(items, mi)
	}
	return items, rows.Err()
}

func (r *PgxPurchaseOrderRepository) FindPurchaseOrderByID(ctx context.Context, purchaseOrderID string) (*domain.PurchaseOrder, error) {
	query := `SELECT ` + purchaseOrderColumns + ` FROM purchase_orders WHERE purchase_order_id = $1;`
	m, err := scanPurchaseOrderRow(r.Pool.QueryRow(ctx, query, purchaseOrderID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find purchase order by ID %s: %w", purchaseOrderID, err)
	}

	items, err := r.findPurchaseOrderItems(ctx, purchaseOrderID)
	if err != nil {
		return nil, err
	}
	po := toDomainPurchaseOrder(*m, items)
	return &po, nil
}

func (r *PgxPurchaseOrderRepository) FindPurchaseOrders(ctx context.Context, filter portsrepo.DocumentListFilter) ([]domain.PurchaseOrder, error) {
	query := `
		SELECT ` + purchaseOrderColumns + `
		FROM purchase_orders
		WHERE ($1 = '' OR status = $1)
		ORDER BY order_date DESC, po_number DESC
		LIMIT $2 OFFSET $3;
	`
	rows, err := r.Pool.Query(ctx, query, string(filter.Status), filter.Limit, filter.Offset)
	if err != nil {
		return nil, fmt.Errorf("failed to query purchase orders: %w", err)
	}
	defer rows.Close()

	var poModels []models.PurchaseOrder
	for rows.Next() {
		m, err := scanPurchaseOrderRow(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan purchase order: %w", err)
		}
		poModels = append(poModels, *m)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	pos := make([]domain.PurchaseOrder, 0, len(poModels))
	for _, m := range poModels {
		items, err := r.findPurchaseOrderItems(ctx, m.PurchaseOrderID)
		if err != nil {
			return nil, err
		}
		pos = append(pos, toDomainPurchaseOrder(m, items))
	}
	return pos, nil
}
