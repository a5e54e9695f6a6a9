package pgsql

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// The scan queries only run against a live database, so this locks down the
// catalogue itself: every kind registered exactly once, and the reference
// checks joined against the tables they are meant to validate.
func TestIntegrityChecksCatalogue(t *testing.T) {
	wantKinds := []string{
		"DUPLICATE_PRIMARY_CONTACT",
		"DUPLICATE_DEFAULT_ADDRESS",
		"ORPHAN_DELIVERY_ORDER",
		"OVER_DELIVERED_LINE",
		"NEGATIVE_ADVANCE_BALANCE",
		"ADVANCE_BALANCE_MISMATCH",
		"MULTIPLE_ACTIVE_ADVANCES",
		"QUOTE_LINK_BROKEN",
		"NUMBER_BEYOND_SEQUENCE",
		"ORPHAN_CUSTOMER_REFERENCE",
		"ORPHAN_PRODUCT_REFERENCE",
	}

	byKind := make(map[string]string, len(integrityChecks))
	for _, check := range integrityChecks {
		_, dup := byKind[check.kind]
		assert.Falsef(t, dup, "check %s registered twice", check.kind)
		byKind[check.kind] = check.query
	}
	assert.Len(t, integrityChecks, len(wantKinds))
	for _, kind := range wantKinds {
		assert.Containsf(t, byKind, kind, "check %s missing", kind)
	}
}

func TestNumberBeyondSequenceCheckCoversAllDocumentTables(t *testing.T) {
	query := integrityCheckQuery(t, "NUMBER_BEYOND_SEQUENCE")

	for _, table := range []string{"quotes", "sales_orders", "delivery_orders", "purchase_orders"} {
		assert.Containsf(t, query, "FROM "+table, "table %s not scanned", table)
	}
	assert.Contains(t, query, "numbering_sequences")
	assert.Contains(t, query, ">= n.next_number")
}

func TestOrphanReferenceChecksJoinMasterTables(t *testing.T) {
	customerQuery := integrityCheckQuery(t, "ORPHAN_CUSTOMER_REFERENCE")
	assert.Contains(t, customerQuery, "LEFT JOIN customers")
	assert.Contains(t, customerQuery, "c.customer_id IS NULL")

	productQuery := integrityCheckQuery(t, "ORPHAN_PRODUCT_REFERENCE")
	assert.Contains(t, productQuery, "LEFT JOIN products")
	assert.Contains(t, productQuery, "p.product_id IS NULL")
	// POs may carry free-text lines with no catalogue product.
	assert.Contains(t, productQuery, "r.product_id <> ''")
}

func integrityCheckQuery(t *testing.T, kind string) string {
	t.Helper()
	for _, check := range integrityChecks {
		if check.kind == kind {
			return strings.TrimSpace(check.query)
		}
	}
	require.Failf(t, "missing check", "no integrity check registered for %s", kind)
	return ""
}
