package dto

import (
	"time"

	"github.com/salilgupta4/absoms-backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateAdvanceRequest disburses a new salary advance.
type CreateAdvanceRequest struct {
	EmployeeID string          `json:"employeeID" binding:"required"`
	Amount     decimal.Decimal `json:"amount" binding:"required"`
	Date       time.Time       `json:"date" binding:"required"`
	Reason     string          `json:"reason"`
}

// AdvanceTopUpRequest disburses additional funds onto an existing advance.
type AdvanceTopUpRequest struct {
	Amount decimal.Decimal `json:"amount" binding:"required"`
	Date   time.Time       `json:"date" binding:"required"`
	Note   string          `json:"note"`
}

// AdvanceRepaymentRequest records a cash repayment against an advance.
type AdvanceRepaymentRequest struct {
	Amount decimal.Decimal `json:"amount" binding:"required"`
	Date   time.Time       `json:"date" binding:"required"`
	Note   string          `json:"note"`
}

// AdvanceDeductionRequest records a payroll deduction against an advance.
// Used internally by payroll approval; not bound from HTTP.
type AdvanceDeductionRequest struct {
	Amount          decimal.Decimal `json:"amount"`
	Date            time.Time       `json:"date"`
	PayrollRecordID string          `json:"payrollRecordID"`
	Note            string          `json:"note"`
}

// AdvanceTransactionResponse defines one ledger entry in a response.
type AdvanceTransactionResponse struct {
	TransactionID   string          `json:"transactionID"`
	Date            time.Time       `json:"date"`
	Type            string          `json:"type"`
	Amount          decimal.Decimal `json:"amount"`
	Note            string          `json:"note"`
	PayrollRecordID string          `json:"payrollRecordID,omitempty"`
}

// AdvanceResponse defines the data returned for an advance payment.
type AdvanceResponse struct {
	AdvanceID     string                       `json:"advanceID"`
	EmployeeID    string                       `json:"employeeID"`
	Amount        decimal.Decimal              `json:"amount"`
	BalanceAmount decimal.Decimal              `json:"balanceAmount"`
	Status        string                       `json:"status"`
	Reason        string                       `json:"reason"`
	Transactions  []AdvanceTransactionResponse `json:"transactions"`
	CreatedAt     time.Time                    `json:"createdAt"`
	CreatedBy     string                       `json:"createdBy"`
}

// ToAdvanceResponse converts a domain.AdvancePayment to AdvanceResponse DTO
func ToAdvanceResponse(a *domain.AdvancePayment) AdvanceResponse {
	txns := make([]AdvanceTransactionResponse, len(a.Transactions))
	for i, t := range a.Transactions {
		txns[i] = AdvanceTransactionResponse{
			TransactionID:   t.TransactionID,
			Date:            t.Date,
			Type:            string(t.Type),
			Amount:          t.Amount,
			Note:            t.Note,
			PayrollRecordID: t.PayrollRecordID,
		}
	}
	return AdvanceResponse{
		AdvanceID:     a.AdvanceID,
		EmployeeID:    a.EmployeeID,
		Amount:        a.Amount,
		BalanceAmount: a.BalanceAmount,
		Status:        string(a.Status),
		Reason:        a.Reason,
		Transactions:  txns,
		CreatedAt:     a.CreatedAt,
		CreatedBy:     a.CreatedBy,
	}
}

// ToListAdvanceResponse converts a slice of domain.AdvancePayment to DTOs
func ToListAdvanceResponse(advances []domain.AdvancePayment) []AdvanceResponse {
	res := make([]AdvanceResponse, len(advances))
	for i, a := range advances {
		res[i] = ToAdvanceResponse(&a)
	}
	return res
}
