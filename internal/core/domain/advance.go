package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// AdvanceStatus tracks whether an advance still has balance to recover.
type AdvanceStatus string

const (
	AdvanceActive        AdvanceStatus = "ACTIVE"
	AdvanceFullyDeducted AdvanceStatus = "FULLY_DEDUCTED"
)

// AdvanceTxnType classifies advance ledger entries.
// DISBURSEMENT increases the outstanding balance, DEDUCTION (via payroll)
// and REPAYMENT (cash back from the employee) decrease it.
type AdvanceTxnType string

const (
	AdvanceDisbursement AdvanceTxnType = "DISBURSEMENT"
	AdvanceDeduction    AdvanceTxnType = "DEDUCTION"
	AdvanceRepayment    AdvanceTxnType = "REPAYMENT"
)

// AdvanceTransaction is a single entry in an advance's ledger.
type AdvanceTransaction struct {
	TransactionID   string          `json:"transactionID"`
	AdvanceID       string          `json:"advanceID"`
	Date            time.Time       `json:"date"`
	Type            AdvanceTxnType  `json:"type"`
	Amount          decimal.Decimal `json:"amount"` // always positive
	Note            string          `json:"note"`
	PayrollRecordID string          `json:"payrollRecordID"` // set for payroll deductions
	AuditFields
}

// AdvancePayment is a salary advance recovered over subsequent payroll runs.
// BalanceAmount is derived from the transaction list and must never be
// negative; Status follows the balance (zero -> FULLY_DEDUCTED).
type AdvancePayment struct {
	AdvanceID     string               `json:"advanceID"`
	EmployeeID    string               `json:"employeeID"`
	Amount        decimal.Decimal      `json:"amount"` // total disbursed
	BalanceAmount decimal.Decimal      `json:"balanceAmount"`
	Status        AdvanceStatus        `json:"status"`
	Reason        string               `json:"reason"`
	Transactions  []AdvanceTransaction `json:"transactions"`
	AuditFields
}

// ComputeBalance folds the transaction list into the outstanding balance.
func (a AdvancePayment) ComputeBalance() decimal.Decimal {
	balance := decimal.Zero
	for _, txn := range a.Transactions {
		switch txn.Type {
		case AdvanceDisbursement:
			balance = balance.Add(txn.Amount)
		case AdvanceDeduction, AdvanceRepayment:
			balance = balance.Sub(txn.Amount)
		}
	}
	return balance
}

// StatusForBalance returns the status implied by a balance value.
func StatusForBalance(balance decimal.Decimal) AdvanceStatus {
	if balance.IsZero() {
		return AdvanceFullyDeducted
	}
	return AdvanceActive
}
