package domain_test

import (
	"testing"

	"github.com/salilgupta4/absoms-backend/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestCanTransition(t *testing.T) {
	tests := []struct {
		name    string
		docType domain.DocumentType
		from    domain.DocumentStatus
		to      domain.DocumentStatus
		want    bool
	}{
		{"quote draft to sent", domain.DocTypeQuote, domain.StatusDraft, domain.StatusSent, true},
		{"quote sent to approved", domain.DocTypeQuote, domain.StatusSent, domain.StatusApproved, true},
		{"quote sent to rejected", domain.DocTypeQuote, domain.StatusSent, domain.StatusRejected, true},
		{"quote draft straight to approved", domain.DocTypeQuote, domain.StatusDraft, domain.StatusApproved, false},
		{"quote approved to closed on conversion", domain.DocTypeQuote, domain.StatusApproved, domain.StatusClosed, true},
		{"rejected quote is terminal", domain.DocTypeQuote, domain.StatusRejected, domain.StatusSent, false},
		{"superseded quote is terminal", domain.DocTypeQuote, domain.StatusSuperseded, domain.StatusSent, false},
		{"sales order approved to partial", domain.DocTypeSalesOrder, domain.StatusApproved, domain.StatusPartial, true},
		{"sales order partial to partial", domain.DocTypeSalesOrder, domain.StatusPartial, domain.StatusPartial, true},
		{"sales order partial to closed", domain.DocTypeSalesOrder, domain.StatusPartial, domain.StatusClosed, true},
		{"closed sales order is terminal", domain.DocTypeSalesOrder, domain.StatusClosed, domain.StatusPartial, false},
		{"delivery order draft to dispatched", domain.DocTypeDeliveryOrder, domain.StatusDraft, domain.StatusDispatched, true},
		{"delivery order cannot be sent", domain.DocTypeDeliveryOrder, domain.StatusDraft, domain.StatusSent, false},
		{"purchase order sent to closed", domain.DocTypePurchaseOrder, domain.StatusSent, domain.StatusClosed, true},
		{"purchase order sent to rejected", domain.DocTypePurchaseOrder, domain.StatusSent, domain.StatusRejected, true},
		{"purchase order draft to closed", domain.DocTypePurchaseOrder, domain.StatusDraft, domain.StatusClosed, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := domain.CanTransition(tt.docType, tt.from, tt.to)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSalesOrder_FullyDelivered(t *testing.T) {
	so := domain.SalesOrder{
		Items: []domain.LineItem{
			{Quantity: decimal.NewFromInt(10), DeliveredQuantity: decimal.NewFromInt(10)},
			{Quantity: decimal.NewFromInt(5), DeliveredQuantity: decimal.NewFromInt(3)},
		},
	}
	assert.False(t, so.FullyDelivered())

	so.Items[1].DeliveredQuantity = decimal.NewFromInt(5)
	assert.True(t, so.FullyDelivered())
}

func TestAdvancePayment_ComputeBalance(t *testing.T) {
	adv := domain.AdvancePayment{
		Transactions: []domain.AdvanceTransaction{
			{Type: domain.AdvanceDisbursement, Amount: decimal.NewFromInt(10000)},
			{Type: domain.AdvanceDeduction, Amount: decimal.NewFromInt(2500)},
			{Type: domain.AdvanceRepayment, Amount: decimal.NewFromInt(1500)},
		},
	}
	assert.True(t, adv.ComputeBalance().Equal(decimal.NewFromInt(6000)))
	assert.Equal(t, domain.AdvanceActive, domain.StatusForBalance(adv.ComputeBalance()))

	adv.Transactions = append(adv.Transactions, domain.AdvanceTransaction{
		Type: domain.AdvanceDeduction, Amount: decimal.NewFromInt(6000),
	})
	assert.True(t, adv.ComputeBalance().IsZero())
	assert.Equal(t, domain.AdvanceFullyDeducted, domain.StatusForBalance(adv.ComputeBalance()))
}

func TestNumberingSequence_Format(t *testing.T) {
	seq := domain.NumberingSequence{Prefix: "QT-", Padding: 4, Suffix: "/25"}
	assert.Equal(t, "QT-0042/25", seq.Format(42))

	seq.Padding = 0
	assert.Equal(t, "QT-42/25", seq.Format(42))

	seq = domain.NumberingSequence{Prefix: "PO/", Padding: 3}
	assert.Equal(t, "PO/007", seq.Format(7))
}
