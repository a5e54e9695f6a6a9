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

type PgxQuoteRepository struct {
	BaseRepository
}

// newPgxQuoteRepository creates a new repository for quote data.
func newPgxQuoteRepository(pool *pgxpool.Pool) portsrepo.QuoteRepositoryFacade {
	return &PgxQuoteRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.QuoteRepositoryFacade = (*PgxQuoteRepository)(nil)

const quoteColumns = `quote_id, quote_number, revision, customer_id, customer_name, customer_gstin, customer_address, subtotal, total_tax, grand_total, status, quote_date, valid_until, notes, linked_sales_order_id, superseded_by_quote_id, created_at, created_by, last_updated_at, last_updated_by`

func scanQuoteRow(row pgx.Row) (*models.Quote, error) {
	var m models.Quote
	err := row.Scan(
		&m.QuoteID, &m.QuoteNumber, &m.Revision,
		&m.CustomerID, &m.CustomerName, &m.CustomerGSTIN, &m.CustomerAddress,
		&m.Subtotal, &m.TotalTax, &m.GrandTotal,
		&m.Status, &m.QuoteDate, &m.ValidUntil, &m.Notes,
		&m.LinkedSalesOrder, &m.SupersededByQuote,
		&m.CreatedAt, &m.CreatedBy, &m.LastUpdatedAt, &m.LastUpdatedBy,
	)
	if err != nil {
		return nil, err
	}
	return &m, nil
}

func toDomainQuote(m models.Quote, items []models.QuoteItem) domain.Quote {
	q := domain.Quote{
		QuoteID:     m.QuoteID,
		QuoteNumber: m.QuoteNumber,
		Revision:    m.Revision,
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
		Status:            domain.DocumentStatus(m.Status),
		QuoteDate:         m.QuoteDate,
		ValidUntil:        m.ValidUntil,
		Notes:             m.Notes,
		LinkedSalesOrder:  m.LinkedSalesOrder,
		SupersededByQuote: m.SupersededByQuote,
		AuditFields: domain.AuditFields{
			CreatedAt:     m.CreatedAt,
			CreatedBy:     m.CreatedBy,
			LastUpdatedAt: m.LastUpdatedAt,
			LastUpdatedBy: m.LastUpdatedBy,
		},
	}
	for _, mi := range items {
		q.Items = append(q.Items, domain.LineItem{
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
	return q
}

func insertQuoteItems(ctx context.Context, tx pgx.Tx, quote domain.Quote) error {
	query := `
		INSERT INTO quote_items (line_item_id, quote_id, product_id, product_name, description, hsn_code, quantity, unit, rate, discount_pct, gst_rate, amount, tax_amount)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13);
	`
	for _, li := range quote.Items {
		if _, err := tx.Exec(ctx, query,
			li.LineItemID, quote.QuoteID, li.ProductID, li.ProductName, li.Description, li.HSNCode,
			li.Quantity, li.Unit, li.Rate, li.DiscountPct, li.GSTRate, li.Amount, li.TaxAmount,
		); err != nil {
			return fmt.Errorf("failed to insert quote item for quote %s: %w", quote.QuoteID, err)
		}
	}
	return nil
}

func (r *PgxQuoteRepository) SaveQuote(ctx context.Context, quote *domain.Quote) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	// Reserving the number in the insert transaction means a failed save
	// rolls the counter back instead of burning the number.
	if quote.QuoteNumber == "" {
		number, err := allocateDocumentNumber(ctx, tx, domain.DocTypeQuote)
		if err != nil {
			return err
		}
		quote.QuoteNumber = number
	}

	query := `
		INSERT INTO quotes (` + quoteColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20);
	`
	_, err = tx.Exec(ctx, query,
		quote.QuoteID, quote.QuoteNumber, quote.Revision,
		quote.Customer.CustomerID, quote.Customer.CustomerName, quote.Customer.GSTIN, quote.Customer.Address,
		quote.Totals.Subtotal, quote.Totals.TotalTax, quote.Totals.GrandTotal,
		string(quote.Status), quote.QuoteDate, quote.ValidUntil, quote.Notes,
		quote.LinkedSalesOrder, quote.SupersededByQuote,
		quote.CreatedAt, quote.CreatedBy, quote.LastUpdatedAt, quote.LastUpdatedBy,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: quote %s rev %d already exists", apperrors.ErrDuplicate, quote.QuoteNumber, quote.Revision)
		}
		return fmt.Errorf("failed to save quote %s: %w", quote.QuoteID, err)
	}

	if err := insertQuoteItems(ctx, tx, *quote); err != nil {
		return err
	}
	return r.Commit(ctx, tx)
}

func (r *PgxQuoteRepository) UpdateQuote(ctx context.Context, quote domain.Quote) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	query := `
		UPDATE quotes
		SET customer_id = $2, customer_name = $3, customer_gstin = $4, customer_address = $5,
		    subtotal = $6, total_tax = $7, grand_total = $8,
		    quote_date = $9, valid_until = $10, notes = $11,
		    last_updated_at = $12, last_updated_by = $13
		WHERE quote_id = $1;
	`
	tag, err := tx.Exec(ctx, query,
		quote.QuoteID,
		quote.Customer.CustomerID, quote.Customer.CustomerName, quote.Customer.GSTIN, quote.Customer.Address,
		quote.Totals.Subtotal, quote.Totals.TotalTax, quote.Totals.GrandTotal,
		quote.QuoteDate, quote.ValidUntil, quote.Notes,
		quote.LastUpdatedAt, quote.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to update quote %s: %w", quote.QuoteID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}

	if _, err := tx.Exec(ctx, `DELETE FROM quote_items WHERE quote_id = $1;`, quote.QuoteID); err != nil {
		return fmt.Errorf("failed to clear quote items for quote %s: %w", quote.QuoteID, err)
	}
	if err := insertQuoteItems(ctx, tx, quote); err != nil {
		return err
	}
	return r.Commit(ctx, tx)
}

// UpdateQuoteStatus touches only the status and link columns, leaving the
// priced content untouched.
func (r *PgxQuoteRepository) UpdateQuoteStatus(ctx context.Context, quote domain.Quote) error {
	query := `
		UPDATE quotes
		SET status = $2, linked_sales_order_id = $3, superseded_by_quote_id = $4, last_updated_at = $5, last_updated_by = $6
		WHERE quote_id = $1;
	`
	tag, err := r.Pool.Exec(ctx, query,
		quote.QuoteID, string(quote.Status), quote.LinkedSalesOrder, quote.SupersededByQuote,
		quote.LastUpdatedAt, quote.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to update quote status for %s: %w", quote.QuoteID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxQuoteRepository) DeleteQuote(ctx context.Context, quoteID string) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	if _, err := tx.Exec(ctx, `DELETE FROM quote_items WHERE quote_id = $1;`, quoteID); err != nil {
		return fmt.Errorf("failed to delete quote items for quote %s: %w", quoteID, err)
	}
	tag, err := tx.Exec(ctx, `DELETE FROM quotes WHERE quote_id = $1;`, quoteID)
	if err != nil {
		return fmt.Errorf("failed to delete quote %s: %w", quoteID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return r.Commit(ctx, tx)
}

func (r *PgxQuoteRepository) findQuoteItems(ctx context.Context, quoteID string) ([]models.QuoteItem, error) {
	query := `
		SELECT line_item_id, quote_id, product_id, product_name, description, hsn_code, quantity, unit, rate, discount_pct, gst_rate, amount, tax_amount
		FROM quote_items
		WHERE quote_id = $1
		ORDER BY product_name;
	`
	rows, err := r.Pool.Query(ctx, query, quoteID)
	if err != nil {
		return nil, fmt.Errorf("failed to query quote items for quote %s: %w", quoteID, err)
	}
	defer rows.Close()

	var items []models.QuoteItem
	for rows.Next() {
		var mi models.QuoteItem
		if err := rows.Scan(
			&mi.LineItemID, &mi.QuoteID, &mi.ProductID, &mi.ProductName, &mi.Description, &mi.HSNCode,
			&mi.Quantity, &mi.Unit, &mi.Rate, &mi.DiscountPct, &mi.GSTRate, &mi.Amount, &mi.TaxAmount,
		); err != nil {
			return nil, fmt.Errorf("failed to scan quote item: %w", err)
		}
		items = append(items, mi)
	}
	return items, rows.Err()
}

func (r *PgxQuoteRepository) FindQuoteByID(ctx context.Context, quoteID string) (*domain.Quote, error) {
	query := `SELECT ` + quoteColumns + ` FROM quotes WHERE quote_id = $1;`
	m, err := scanQuoteRow(r.Pool.QueryRow(ctx, query, quoteID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find quote by ID %s: %w", quoteID, err)
	}

	items, err := r.findQuoteItems(ctx, quoteID)
	if err != nil {
		return nil, err
	}
	quote := toDomainQuote(*m, items)
	return &quote, nil
}

func (r *PgxQuoteRepository) FindQuotes(ctx context.Context, filter portsrepo.DocumentListFilter) ([]domain.Quote, error) {
	query := `
		SELECT ` + quoteColumns + `
		FROM quotes
		WHERE ($1 = '' OR status = $1) AND ($2 = '' OR customer_id = $2)
		ORDER BY quote_date DESC, quote_number DESC
		LIMIT $3 OFFSET $4;
	`
	rows, err := r.Pool.Query(ctx, query, string(filter.Status), filter.CustomerID, filter.Limit, filter.Offset)
	if err != nil {
		return nil, fmt.Errorf("failed to query quotes: %w", err)
	}
	defer rows.Close()

	var quoteModels []models.Quote
	for rows.Next() {
		m, err := scanQuoteRow(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan quote: %w", err)
		}
		quoteModels = append(quoteModels, *m)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	quotes := make([]domain.Quote, 0, len(quoteModels))
	for _, m := range quoteModels {
		items, err := r.findQuoteItems(ctx, m.QuoteID)
		if err != nil {
			return nil, err
		}
		quotes = append(quotes, toDomainQuote(m, items))
	}
	return quotes, nil
}
