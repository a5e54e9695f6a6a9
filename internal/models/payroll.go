package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Employee represents an employees row.
type Employee struct {
	EmployeeID        string          `db:"employee_id"`
	EmployeeCode      string          `db:"employee_code"`
	Name              string          `db:"name"`
	Designation       string          `db:"designation"`
	JoiningDate       time.Time       `db:"joining_date"`
	Basic             decimal.Decimal `db:"basic"`
	HRA               decimal.Decimal `db:"hra"`
	SpecialAllowances decimal.Decimal `db:"special_allowances"`
	IsActive          bool            `db:"is_active"`
	AuditFields
}

// EmployeeBankAccount represents an employee_bank_accounts row.
type EmployeeBankAccount struct {
	BankAccountID string `db:"bank_account_id"`
	EmployeeID    string `db:"employee_id"`
	BankName      string `db:"bank_name"`
	AccountNumber string `db:"account_number"`
	IFSC          string `db:"ifsc"`
	IsDefault     bool   `db:"is_default"`
}

// PayrollRecord represents a payroll_records row. (employee_id, month) is
// unique.
type PayrollRecord struct {
	PayrollRecordID  string          `db:"payroll_record_id"`
	EmployeeID       string          `db:"employee_id"`
	EmployeeName     string          `db:"employee_name"`
	Month            string          `db:"month"`
	DaysInMonth      int             `db:"days_in_month"`
	DaysWorked       decimal.Decimal `db:"days_worked"`
	EarnedBasic      decimal.Decimal `db:"earned_basic"`
	EarnedHRA        decimal.Decimal `db:"earned_hra"`
	EarnedAllowances decimal.Decimal `db:"earned_allowances"`
	OvertimeAmount   decimal.Decimal `db:"overtime_amount"`
	GrossPay         decimal.Decimal `db:"gross_pay"`
	PFDeduction      decimal.Decimal `db:"pf_deduction"`
	ESIDeduction     decimal.Decimal `db:"esi_deduction"`
	ProfessionalTax  decimal.Decimal `db:"professional_tax"`
	AdvanceDeduction decimal.Decimal `db:"advance_deduction"`
	TotalDeductions  decimal.Decimal `db:"total_deductions"`
	NetPay           decimal.Decimal `db:"net_pay"`
	Status           string          `db:"status"`
	AuditFields
}

// AdvancePayment represents an advance_payments row. BalanceAmount is kept in
// step with the transaction ledger inside the same transaction.
type AdvancePayment struct {
	AdvanceID     string          `db:"advance_id"`
	EmployeeID    string          `db:"employee_id"`
	Amount        decimal.Decimal `db:"amount"`
	BalanceAmount decimal.Decimal `db:"balance_amount"`
	Status        string          `db:"status"`
	Reason        string          `db:"reason"`
	AuditFields
}

// AdvanceTransaction represents an advance_transactions row.
type AdvanceTransaction struct {
	TransactionID   string          `db:"transaction_id"`
	AdvanceID       string          `db:"advance_id"`
	Date            time.Time       `db:"date"`
	Type            string          `db:"type"`
	Amount          decimal.Decimal `db:"amount"`
	Note            string          `db:"note"`
	PayrollRecordID string          `db:"payroll_record_id"`
	AuditFields
}

// LeaveRequest represents a leave_requests row.
type LeaveRequest struct {
	LeaveRequestID string    `db:"leave_request_id"`
	EmployeeID     string    `db:"employee_id"`
	FromDate       time.Time `db:"from_date"`
	ToDate         time.Time `db:"to_date"`
	Kind           string    `db:"kind"`
	Reason         string    `db:"reason"`
	Status         string    `db:"status"`
	DecidedBy      string    `db:"decided_by"`
	AuditFields
}
