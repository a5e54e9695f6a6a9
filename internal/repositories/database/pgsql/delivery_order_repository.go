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

type PgxDeliveryOrderRepository struct {
	BaseRepository
}

// newPgxDeliveryOrderRepository creates a new repository for delivery order data.
func newPgxDeliveryOrderRepository(pool *pgxpool.Pool) portsrepo.DeliveryOrderRepositoryFacade {
	return &PgxDeliveryOrderRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.DeliveryOrderRepositoryFacade = (*PgxDeliveryOrderRepository)(nil)

const deliveryOrderColumns = `delivery_order_id, do_number, sales_order_id, customer_id, customer_name, customer_gstin, customer_address, shipping_address, vehicle_number, status, delivery_date, created_at, created_by, last_updated_at, last_updated_by`

func scanDeliveryOrderRow(row pgx.Row) (*models.DeliveryOrder, error) {
	var m models.DeliveryOrder
	err := row.Scan(
		&m.DeliveryOrderID, &m.DONumber, &m.SalesOrderID,
		&m.CustomerID, &m.CustomerName, &m.CustomerGSTIN, &m.CustomerAddress,
		&m.ShippingAddress, &m.VehicleNumber, &m.Status, &m.DeliveryDate,
		&m.CreatedAt, &m.CreatedBy, &m.LastUpdatedAt, &m.LastUpdatedBy,
	)
	if err != nil {
		return nil, err
	}
	return &m, nil
}

func toDomainDeliveryOrder(m models.DeliveryOrder, items []models.DeliveryOrderItem) domain.DeliveryOrder {
	do := domain.DeliveryOrder{
		DeliveryOrderID: m.DeliveryOrderID,
		DONumber:        m.DONumber,
		SalesOrderID:    m.SalesOrderID,
		Customer: domain.CustomerSnapshot{
			CustomerID:   m.CustomerID,
			CustomerName: m.CustomerName,
			GSTIN:        m.CustomerGSTIN,
			Address:      m.CustomerAddress,
		},
		ShippingAddress: m.ShippingAddress,
		VehicleNumber:   m.VehicleNumber,
		Status:          domain.DocumentStatus(m.Status),
		DeliveryDate:    m.DeliveryDate,
		AuditFields: domain.AuditFields{
			CreatedAt:     m.CreatedAt,
			CreatedBy:     m.CreatedBy,
			LastUpdatedAt: m.LastUpdatedAt,
			LastUpdatedBy: m.LastUpdatedBy,
		},
	}
	for _, mi := range items {
		do.Items = append(do.Items, domain.DeliveryItem{
			DeliveryItemID: mi.DeliveryItemID,
			SourceLineID:   mi.SourceLineID,
			ProductName:    mi.ProductName,
			HSNCode:        mi.HSNCode,
			Quantity:       mi.Quantity,
			Unit:           mi.Unit,
		})
	}
	return do
}

func (r *PgxDeliveryOrderRepository) SaveDeliveryOrder(ctx context.Context, do *domain.DeliveryOrder) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	if do.DONumber == "" {
		number, err := allocateDocumentNumber(ctx, tx, domain.DocTypeDeliveryOrder)
		if err != nil {
			return err
		}
		do.DONumber = number
	}

	query := `
		INSERT INTO delivery_orders (` + deliveryOrderColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15);
	`
	_, err = tx.Exec(ctx, query,
		do.DeliveryOrderID, do.DONumber, do.SalesOrderID,
		do.Customer.CustomerID, do.Customer.CustomerName, do.Customer.GSTIN, do.Customer.Address,
		do.ShippingAddress, do.VehicleNumber, string(do.Status), do.DeliveryDate,
		do.CreatedAt, do.CreatedBy, do.LastUpdatedAt, do.LastUpdatedBy,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: delivery order %s already exists", apperrors.ErrDuplicate, do.DONumber)
		}
		return fmt.Errorf("failed to save delivery order %s: %w", do.DeliveryOrderID, err)
	}

	itemQuery := `
		INSERT INTO delivery_order_items (delivery_item_id, delivery_order_id, source_line_id, product_name, hsn_code, quantity, unit)
		VALUES ($1, $2, $3, $4, $5, $6, $7);
	`
	for _, li := range do.Items {
		if _, err := tx.Exec(ctx, itemQuery,
			li.DeliveryItemID, do.DeliveryOrderID, li.SourceLineID, li.ProductName, li.HSNCode, li.Quantity, li.Unit,
		); err != nil {
			return fmt.Errorf("failed to insert delivery order item for %s: %w", do.DeliveryOrderID, err)
		}
	}
	return r.Commit(ctx, tx)
}

func (r *PgxDeliveryOrderRepository) UpdateDeliveryOrderStatus(ctx context.Context, do domain.DeliveryOrder) error {
	query := `
		UPDATE delivery_orders
		SET status = $2, vehicle_number = $3, last_updated_at = $4, last_updated_by = $5
		WHERE delivery_order_id = $1;
	`
	tag, err := r.Pool.Exec(ctx, query,
		do.DeliveryOrderID, string(do.Status), do.VehicleNumber, do.LastUpdatedAt, do.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to update delivery order status for %s: %w", do.DeliveryOrderID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxDeliveryOrderRepository) findDeliveryOrderItems(ctx context.Context, deliveryOrderID string) ([]models.DeliveryOrderItem, error) {
	query := `
		SELECT delivery_item_id, delivery_order_id, source_line_id, product_name, hsn_code, quantity, unit
		FROM delivery_order_items
		WHERE delivery_order_id = $1
		ORDER BY product_name;
	`
	rows, err := r.Pool.Query(ctx, query, deliveryOrderID)
	if err != nil {
		return nil, fmt.Errorf("failed to query delivery order items for %s: %w", deliveryOrderID, err)
	}
	defer rows.Close()

	var items []models.DeliveryOrderItem
	for rows.Next() {
		var mi models.DeliveryOrderItem
		if err := rows.Scan(&mi.DeliveryItemID, &mi.DeliveryOrderID, &mi.SourceLineID, &mi.ProductName, &mi.HSNCode, &mi.Quantity, &mi.Unit); err != nil {
			return nil, fmt.Errorf("failed to scan delivery order item: %w", err)
		}
		items = append(items, mi)
	}
	return items, rows.Err()
}

func (r *PgxDeliveryOrderRepository) FindDeliveryOrderByID(ctx context.Context, deliveryOrderID string) (*domain.DeliveryOrder, error) {
	query := `SELECT ` + deliveryOrderColumns + ` FROM delivery_orders WHERE delivery_order_id = $1;`
	m, err := scanDeliveryOrderRow(r.Pool.QueryRow(ctx, query, deliveryOrderID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find delivery order by ID %s: %w", deliveryOrderID, err)
	}

	items, err := r.findDeliveryOrderItems(ctx, deliveryOrderID)
	if err != nil {
		return nil, err
	}
	do := toDomainDeliveryOrder(*m, items)
	return &do, nil
}

func (r *PgxDeliveryOrderRepository) findDeliveryOrdersWhere(ctx context.Context, query string, args ...any) ([]domain.DeliveryOrder, error) {
	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query delivery orders: %w", err)
	}
	defer rows.Close()

	var doModels []models.DeliveryOrder
	for rows.Next() {
		m, err := scanDeliveryOrderRow(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan delivery order: %w", err)
		}
		doModels = append(doModels, *m)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	dos := make([]domain.DeliveryOrder, 0, len(doModels))
	for _, m := range doModels {
		items, err := r.findDeliveryOrderItems(ctx, m.DeliveryOrderID)
		if err != nil {
			return nil, err
		}
		dos = append(dos, toDomainDeliveryOrder(m, items))
	}
	return dos, nil
}

func (r *PgxDeliveryOrderRepository) FindDeliveryOrders(ctx context.Context, filter portsrepo.DocumentListFilter) ([]domain.DeliveryOrder, error) {
	query := `
		SELECT ` + deliveryOrderColumns + `
		FROM delivery_orders
		WHERE ($1 = '' OR status = $1) AND ($2 = '' OR customer_id = $2)
		ORDER BY delivery_date DESC, do_number DESC
		LIMIT $3 OFFSET $4;
	`
	return r.findDeliveryOrdersWhere(ctx, query, string(filter.Status), filter.CustomerID, filter.Limit, filter.Offset)
}

func (r *PgxDeliveryOrderRepository) FindDeliveryOrdersBySalesOrder(ctx context.Context, salesOrderID string) ([]domain.DeliveryOrder, error) {
	query := `
		SELECT ` + deliveryOrderColumns + `
		FROM delivery_orders
		WHERE sales_order_id = $1
		ORDER BY delivery_date, do_number;
	`
	return r.findDeliveryOrdersWhere(ctx, query, salesOrderID)
}
