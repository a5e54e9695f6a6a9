package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/salilgupta4/absoms-backend/internal/apperrors"
	"github.com/salilgupta4/absoms-backend/internal/core/domain"
	portsrepo "github.com/salilgupta4/absoms-backend/internal/core/ports/repositories"
	"github.com/salilgupta4/absoms-backend/internal/models"
)

type PgxCustomerRepository struct {
	BaseRepository
}

// newPgxCustomerRepository creates a new repository for customer data.
func newPgxCustomerRepository(pool *pgxpool.Pool) portsrepo.CustomerRepositoryFacade {
	return &PgxCustomerRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.CustomerRepositoryFacade = (*PgxCustomerRepository)(nil)

func toDomainCustomer(m models.Customer, contacts []models.CustomerContact, addresses []models.CustomerAddress) domain.Customer {
	c := domain.Customer{
		CustomerID: m.CustomerID,
		Name:       m.Name,
		GSTIN:      m.GSTIN,
		IsActive:   m.IsActive,
		AuditFields: domain.AuditFields{
			CreatedAt:     m.CreatedAt,
			CreatedBy:     m.CreatedBy,
			LastUpdatedAt: m.LastUpdatedAt,
			LastUpdatedBy: m.LastUpdatedBy,
		},
	}
	for _, mc := range contacts {
		c.Contacts = append(c.Contacts, domain.Contact{
			ContactID: mc.ContactID,
			Name:      mc.Name,
			Email:     mc.Email,
			Phone:     mc.Phone,
			IsPrimary: mc.IsPrimary,
		})
	}
	for _, ma := range addresses {
		c.Addresses = append(c.Addresses, domain.Address{
			AddressID: ma.AddressID,
			Kind:      domain.AddressKind(ma.Kind),
			Line1:     ma.Line1,
			Line2:     ma.Line2,
			City:      ma.City,
			State:     ma.State,
			Pincode:   ma.Pincode,
			IsDefault: ma.IsDefault,
		})
	}
	return c
}

// insertCustomerChildren writes the contact and address rows within tx.
func insertCustomerChildren(ctx context.Context, tx pgx.Tx, customer domain.Customer) error {
	contactQuery := `
		INSERT INTO customer_contacts (contact_id, customer_id, name, email, phone, is_primary)
		VALUES ($1, $2, $3, $4, $5, $6);
	`
	for _, c := range customer.Contacts {
		if _, err := tx.Exec(ctx, contactQuery, c.ContactID, customer.CustomerID, c.Name, c.Email, c.Phone, c.IsPrimary); err != nil {
			return fmt.Errorf("failed to insert contact for customer %s: %w", customer.CustomerID, err)
		}
	}

	addressQuery := `
		INSERT INTO customer_addresses (address_id, customer_id, kind, line1, line2, city, state, pincode, is_default)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9);
	`
	for _, a := range customer.Addresses {
		if _, err := tx.Exec(ctx, addressQuery, a.AddressID, customer.CustomerID, string(a.Kind), a.Line1, a.Line2, a.City, a.State, a.Pincode, a.IsDefault); err != nil {
			return fmt.Errorf("failed to insert address for customer %s: %w", customer.CustomerID, err)
		}
	}
	return nil
}

func (r *PgxCustomerRepository) SaveCustomer(ctx context.Context, customer domain.Customer) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	query := `
		INSERT INTO customers (customer_id, name, gstin, is_active, created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8);
	`
	_, err = tx.Exec(ctx, query,
		customer.CustomerID, customer.Name, customer.GSTIN, customer.IsActive,
		customer.CreatedAt, customer.CreatedBy, customer.LastUpdatedAt, customer.LastUpdatedBy,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: customer %q already exists", apperrors.ErrDuplicate, customer.Name)
		}
		return fmt.Errorf("failed to save customer %s: %w", customer.CustomerID, err)
	}

	if err := insertCustomerChildren(ctx, tx, customer); err != nil {
		return err
	}
	return r.Commit(ctx, tx)
}

// UpdateCustomer replaces the customer row and its child rows as a set.
func (r *PgxCustomerRepository) UpdateCustomer(ctx context.Context, customer domain.Customer) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	query := `
		UPDATE customers
		SET name = $2, gstin = $3, is_active = $4, last_updated_at = $5, last_updated_by = $6
		WHERE customer_id = $1;
	`
	tag, err := tx.Exec(ctx, query,
		customer.CustomerID, customer.Name, customer.GSTIN, customer.IsActive,
		customer.LastUpdatedAt, customer.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to update customer %s: %w", customer.CustomerID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}

	if _, err := tx.Exec(ctx, `DELETE FROM customer_contacts WHERE customer_id = $1;`, customer.CustomerID); err != nil {
		return fmt.Errorf("failed to clear contacts for customer %s: %w", customer.CustomerID, err)
	}
	if _, err := tx.Exec(ctx, `DELETE FROM customer_addresses WHERE customer_id = $1;`, customer.CustomerID); err != nil {
		return fmt.Errorf("failed to clear addresses for customer %s: %w", customer.CustomerID, err)
	}
	if err := insertCustomerChildren(ctx, tx, customer); err != nil {
		return err
	}
	return r.Commit(ctx, tx)
}

func (r *PgxCustomerRepository) FindCustomerByID(ctx context.Context, customerID string) (*domain.Customer, error) {
	query := `
		SELECT customer_id, name, gstin, is_active, created_at, created_by, last_updated_at, last_updated_by
		FROM customers
		WHERE customer_id = $1;
	`
	var m models.Customer
	err := r.Pool.QueryRow(ctx, query, customerID).Scan(
		&m.CustomerID, &m.Name, &m.GSTIN, &m.IsActive,
		&m.CreatedAt, &m.CreatedBy, &m.LastUpdatedAt, &m.LastUpdatedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find customer by ID %s: %w", customerID, err)
	}

	contacts, err := r.findContacts(ctx, customerID)
	if err != nil {
		return nil, err
	}
	addresses, err := r.findAddresses(ctx, customerID)
	if err != nil {
		return nil, err
	}

	customer := toDomainCustomer(m, contacts, addresses)
	return &customer, nil
}

func (r *PgxCustomerRepository) findContacts(ctx context.Context, customerID string) ([]models.CustomerContact, error) {
	query := `
		SELECT contact_id, customer_id, name, email, phone, is_primary
		FROM customer_contacts
		WHERE customer_id = $1
		ORDER BY is_primary DESC, name;
	`
	rows, err := r.Pool.Query(ctx, query, customerID)
	if err != nil {
		return nil, fmt.Errorf("failed to query contacts for customer %s: %w", customerID, err)
	}
	defer rows.Close()

	var contacts []models.CustomerContact
	for rows.Next() {
		var c models.CustomerContact
		if err := rows.Scan(&c.ContactID, &c.CustomerID, &c.Name, &c.Email, &c.Phone, &c.IsPrimary); err != nil {
			return nil, fmt.Errorf("failed to scan contact: %w", err)
		}
		contacts = append(contacts, c)
	}
	return contacts, rows.Err()
}

func (r *PgxCustomerRepository) findAddresses(ctx context.Context, customerID string) ([]models.CustomerAddress, error) {
	query := `
		SELECT address_id, customer_id, kind, line1, line2, city, state, pincode, is_default
		FROM customer_addresses
		WHERE customer_id = $1
		ORDER BY kind, is_default DESC;
	`
	rows, err := r.Pool.Query(ctx, query, customerID)
	if err != nil {
		return nil, fmt.Errorf("failed to query addresses for customer %s: %w", customerID, err)
	}
	defer rows.Close()

	var addresses []models.CustomerAddress
	for rows.Next() {
		var a models.CustomerAddress
		if err := rows.Scan(&a.AddressID, &a.CustomerID, &a.Kind, &a.Line1, &a.Line2, &a.City, &a.State, &a.Pincode, &a.IsDefault); err != nil {
			return nil, fmt.Errorf("failed to scan address: %w", err)
		}
		addresses = append(addresses, a)
	}
	return addresses, rows.Err()
}

// FindCustomers lists active customers. Contacts and addresses are loaded per
// customer; list sizes here are small enough that N+1 is acceptable.
func (r *PgxCustomerRepository) FindCustomers(ctx context.Context, nameFilter string, limit int, offset int) ([]domain.Customer, error) {
	query := `
		SELECT customer_id, name, gstin, is_active, created_at, created_by, last_updated_at, last_updated_by
		FROM customers
		WHERE is_active = TRUE AND ($1 = '' OR name ILIKE '%' || $1 || '%')
		ORDER BY name
		LIMIT $2 OFFSET $3;
	`
	rows, err := r.Pool.Query(ctx, query, nameFilter, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to query customers: %w", err)
	}
	defer rows.Close()

	var customerModels []models.Customer
	for rows.Next() {
		var m models.Customer
		if err := rows.Scan(
			&m.CustomerID, &m.Name, &m.GSTIN, &m.IsActive,
			&m.CreatedAt, &m.CreatedBy, &m.LastUpdatedAt, &m.LastUpdatedBy,
		); err != nil {
			return nil, fmt.Errorf("failed to scan customer: %w", err)
		}
		customerModels = append(customerModels, m)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	customers := make([]domain.Customer, 0, len(customerModels))
	for _, m := range customerModels {
		contacts, err := r.findContacts(ctx, m.CustomerID)
		if err != nil {
			return nil, err
		}
		addresses, err := r.findAddresses(ctx, m.CustomerID)
		if err != nil {
			return nil, err
		}
		customers = append(customers, toDomainCustomer(m, contacts, addresses))
	}
	return customers, nil
}

func (r *PgxCustomerRepository) DeactivateCustomer(ctx context.Context, customerID string, userID string, now time.Time) error {
	query := `
		UPDATE customers
		SET is_active = FALSE, last_updated_at = $2, last_updated_by = $3
		WHERE customer_id = $1;
	`
	tag, err := r.Pool.Exec(ctx, query, customerID, now, userID)
	if err != nil {
		return fmt.Errorf("failed to deactivate customer %s: %w", customerID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
