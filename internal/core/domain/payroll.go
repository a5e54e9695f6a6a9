package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// BankAccount is an employee payout account. At most one per employee is the
// default salary account.
type BankAccount struct {
	BankAccountID string `json:"bankAccountID"`
	BankName      string `json:"bankName"`
	AccountNumber string `json:"accountNumber"`
	IFSC          string `json:"ifsc"`
	IsDefault     bool   `json:"isDefault"`
}

// Employee is a payroll employee with their monthly salary structure.
type Employee struct {
	EmployeeID        string          `json:"employeeID"`
	EmployeeCode      string          `json:"employeeCode"`
	Name              string          `json:"name"`
	Designation       string          `json:"designation"`
	JoiningDate       time.Time       `json:"joiningDate"`
	Basic             decimal.Decimal `json:"basic"`
	HRA               decimal.Decimal `json:"hra"`
	SpecialAllowances decimal.Decimal `json:"specialAllowances"`
	BankAccounts      []BankAccount   `json:"bankAccounts"`
	IsActive          bool            `json:"isActive"`
	AuditFields
}

// DefaultBankAccount returns the default payout account, or nil.
func (e Employee) DefaultBankAccount() *BankAccount {
	for i := range e.BankAccounts {
		if e.BankAccounts[i].IsDefault {
			return &e.BankAccounts[i]
		}
	}
	return nil
}

// PayrollStatus is the lifecycle of a monthly payroll record.
type PayrollStatus string

const (
	PayrollDraft    PayrollStatus = "DRAFT"
	PayrollApproved PayrollStatus = "APPROVED"
)

// PayrollRecord is one employee's computed pay for one month ("YYYY-MM").
// All money fields are rounded to 2dp at computation time.
type PayrollRecord struct {
	PayrollRecordID  string          `json:"payrollRecordID"`
	EmployeeID       string          `json:"employeeID"`
	EmployeeName     string          `json:"employeeName"`
	Month            string          `json:"month"` // YYYY-MM
	DaysInMonth      int             `json:"daysInMonth"`
	DaysWorked       decimal.Decimal `json:"daysWorked"`
	EarnedBasic      decimal.Decimal `json:"earnedBasic"`
	EarnedHRA        decimal.Decimal `json:"earnedHRA"`
	EarnedAllowances decimal.Decimal `json:"earnedAllowances"`
	OvertimeAmount   decimal.Decimal `json:"overtimeAmount"`
	GrossPay         decimal.Decimal `json:"grossPay"`
	PFDeduction      decimal.Decimal `json:"pfDeduction"`
	ESIDeduction     decimal.Decimal `json:"esiDeduction"`
	ProfessionalTax  decimal.Decimal `json:"professionalTax"`
	AdvanceDeduction decimal.Decimal `json:"advanceDeduction"`
	TotalDeductions  decimal.Decimal `json:"totalDeductions"`
	NetPay           decimal.Decimal `json:"netPay"`
	Status           PayrollStatus   `json:"status"`
	AuditFields
}

// LeaveStatus is the lifecycle of a leave request.
type LeaveStatus string

const (
	LeavePending  LeaveStatus = "PENDING"
	LeaveApproved LeaveStatus = "APPROVED"
	LeaveRejected LeaveStatus = "REJECTED"
)

// LeaveKind is the category of a leave request.
type LeaveKind string

const (
	LeaveCasual LeaveKind = "CASUAL"
	LeaveSick   LeaveKind = "SICK"
	LeaveEarned LeaveKind = "EARNED"
	LeaveUnpaid LeaveKind = "UNPAID"
)

// LeaveRequest is an employee's request for time off.
type LeaveRequest struct {
	LeaveRequestID string      `json:"leaveRequestID"`
	EmployeeID     string      `json:"employeeID"`
	FromDate       time.Time   `json:"fromDate"`
	ToDate         time.Time   `json:"toDate"`
	Kind           LeaveKind   `json:"kind"`
	Reason         string      `json:"reason"`
	Status         LeaveStatus `json:"status"`
	DecidedBy      string      `json:"decidedBy"`
	AuditFields
}
