package dto

import (
	"time"

	"github.com/salilgupta4/absoms-backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// BankAccountRequest defines one payout account on an employee request.
type BankAccountRequest struct {
	BankName      string `json:"bankName" binding:"required"`
	AccountNumber string `json:"accountNumber" binding:"required"`
	IFSC          string `json:"ifsc" binding:"required,len=11"`
	IsDefault     bool   `json:"isDefault"`
}

// CreateEmployeeRequest defines the data needed to create an employee.
type CreateEmployeeRequest struct {
	EmployeeCode      string               `json:"employeeCode" binding:"required"`
	Name              string               `json:"name" binding:"required"`
	Designation       string               `json:"designation"`
	JoiningDate       time.Time            `json:"joiningDate" binding:"required"`
	Basic             decimal.Decimal      `json:"basic" binding:"required"`
	HRA               decimal.Decimal      `json:"hra"`
	SpecialAllowances decimal.Decimal      `json:"specialAllowances"`
	BankAccounts      []BankAccountRequest `json:"bankAccounts" binding:"dive"`
}

// UpdateEmployeeRequest replaces an employee's details. Bank accounts are
// replaced as a set.
type UpdateEmployeeRequest struct {
	Name              string               `json:"name" binding:"required"`
	Designation       string               `json:"designation"`
	Basic             decimal.Decimal      `json:"basic" binding:"required"`
	HRA               decimal.Decimal      `json:"hra"`
	SpecialAllowances decimal.Decimal      `json:"specialAllowances"`
	BankAccounts      []BankAccountRequest `json:"bankAccounts" binding:"dive"`
}

// BankAccountResponse defines the data returned for a payout account.
type BankAccountResponse struct {
	BankAccountID string `json:"bankAccountID"`
	BankName      string `json:"bankName"`
	AccountNumber string `json:"accountNumber"`
	IFSC          string `json:"ifsc"`
	IsDefault     bool   `json:"isDefault"`
}

// EmployeeResponse defines the data returned for an employee.
type EmployeeResponse struct {
	EmployeeID        string                `json:"employeeID"`
	EmployeeCode      string                `json:"employeeCode"`
	Name              string                `json:"name"`
	Designation       string                `json:"designation"`
	JoiningDate       time.Time             `json:"joiningDate"`
	Basic             decimal.Decimal       `json:"basic"`
	HRA               decimal.Decimal       `json:"hra"`
	SpecialAllowances decimal.Decimal       `json:"specialAllowances"`
	GrossSalary       decimal.Decimal       `json:"grossSalary"`
	BankAccounts      []BankAccountResponse `json:"bankAccounts"`
	IsActive          bool                  `json:"isActive"`
}

// ToEmployeeResponse converts a domain.Employee to EmployeeResponse DTO
func ToEmployeeResponse(e *domain.Employee) EmployeeResponse {
	accounts := make([]BankAccountResponse, len(e.BankAccounts))
	for i, b := range e.BankAccounts {
		accounts[i] = BankAccountResponse{
			BankAccountID: b.BankAccountID,
			BankName:      b.BankName,
			AccountNumber: b.AccountNumber,
			IFSC:          b.IFSC,
			IsDefault:     b.IsDefault,
		}
	}
	return EmployeeResponse{
		EmployeeID:        e.EmployeeID,
		EmployeeCode:      e.EmployeeCode,
		Name:              e.Name,
		Designation:       e.Designation,
		JoiningDate:       e.JoiningDate,
		Basic:             e.Basic,
		HRA:               e.HRA,
		SpecialAllowances: e.SpecialAllowances,
		GrossSalary:       e.Basic.Add(e.HRA).Add(e.SpecialAllowances),
		BankAccounts:      accounts,
		IsActive:          e.IsActive,
	}
}

// ToListEmployeeResponse converts a slice of domain.Employee to DTOs
func ToListEmployeeResponse(employees []domain.Employee) []EmployeeResponse {
	res := make([]EmployeeResponse, len(employees))
	for i, e := range employees {
		res[i] = ToEmployeeResponse(&e)
	}
	return res
}

// ListEmployeesParams defines query parameters for listing employees.
type ListEmployeesParams struct {
	ActiveOnly bool `form:"activeOnly,default=false"`
	Limit      int  `form:"limit,default=20"`
	Offset     int  `form:"offset,default=0"`
}

// ComputePayrollRequest defines the inputs for computing one employee-month.
type ComputePayrollRequest struct {
	EmployeeID     string          `json:"employeeID" binding:"required"`
	Month          string          `json:"month" binding:"required,len=7"` // YYYY-MM
	DaysWorked     decimal.Decimal `json:"daysWorked" binding:"required"`
	OvertimeAmount decimal.Decimal `json:"overtimeAmount"`
}

// PayrollRecordResponse defines the data returned for a payroll record.
type PayrollRecordResponse struct {
	PayrollRecordID  string          `json:"payrollRecordID"`
	EmployeeID       string          `json:"employeeID"`
	EmployeeName     string          `json:"employeeName"`
	Month            string          `json:"month"`
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
	Status           string          `json:"status"`
}

// ToPayrollRecordResponse converts a domain.PayrollRecord to its DTO
func ToPayrollRecordResponse(r *domain.PayrollRecord) PayrollRecordResponse {
	return PayrollRecordResponse{
		PayrollRecordID:  r.PayrollRecordID,
		EmployeeID:       r.EmployeeID,
		EmployeeName:     r.EmployeeName,
		Month:            r.Month,
		DaysInMonth:      r.DaysInMonth,
		DaysWorked:       r.DaysWorked,
		EarnedBasic:      r.EarnedBasic,
		EarnedHRA:        r.EarnedHRA,
		EarnedAllowances: r.EarnedAllowances,
		OvertimeAmount:   r.OvertimeAmount,
		GrossPay:         r.GrossPay,
		PFDeduction:      r.PFDeduction,
		ESIDeduction:     r.ESIDeduction,
		ProfessionalTax:  r.ProfessionalTax,
		AdvanceDeduction: r.AdvanceDeduction,
		TotalDeductions:  r.TotalDeductions,
		NetPay:           r.NetPay,
		Status:           string(r.Status),
	}
}

// ToListPayrollRecordResponse converts a slice of domain.PayrollRecord to DTOs
func ToListPayrollRecordResponse(records []domain.PayrollRecord) []PayrollRecordResponse {
	res := make([]PayrollRecordResponse, len(records))
	for i, r := range records {
		res[i] = ToPayrollRecordResponse(&r)
	}
	return res
}

// ListLeavesParams defines query parameters for listing leave requests.
type ListLeavesParams struct {
	EmployeeID string `form:"employeeID" binding:"required"`
	Month      string `form:"month"`
	Limit      int    `form:"limit,default=20"`
	Offset     int    `form:"offset,default=0"`
}

// CreateLeaveRequest files a new leave request.
type CreateLeaveRequest struct {
	EmployeeID string    `json:"employeeID" binding:"required"`
	FromDate   time.Time `json:"fromDate" binding:"required"`
	ToDate     time.Time `json:"toDate" binding:"required"`
	Kind       string    `json:"kind" binding:"required,oneof=CASUAL SICK EARNED UNPAID"`
	Reason     string    `json:"reason"`
}

// DecideLeaveRequest approves or rejects a pending leave request.
type DecideLeaveRequest struct {
	Approve *bool `json:"approve" binding:"required"`
}

// LeaveRequestResponse defines the data returned for a leave request.
type LeaveRequestResponse struct {
	LeaveRequestID string    `json:"leaveRequestID"`
	EmployeeID     string    `json:"employeeID"`
	FromDate       time.Time `json:"fromDate"`
	ToDate         time.Time `json:"toDate"`
	Kind           string    `json:"kind"`
	Reason         string    `json:"reason"`
	Status         string    `json:"status"`
	DecidedBy      string    `json:"decidedBy,omitempty"`
}

// ToLeaveRequestResponse converts a domain.LeaveRequest to its DTO
func ToLeaveRequestResponse(l *domain.LeaveRequest) LeaveRequestResponse {
	return LeaveRequestResponse{
		LeaveRequestID: l.LeaveRequestID,
		EmployeeID:     l.EmployeeID,
		FromDate:       l.FromDate,
		ToDate:         l.ToDate,
		Kind:           string(l.Kind),
		Reason:         l.Reason,
		Status:         string(l.Status),
		DecidedBy:      l.DecidedBy,
	}
}

// ToListLeaveRequestResponse converts a slice of domain.LeaveRequest to DTOs
func ToListLeaveRequestResponse(leaves []domain.LeaveRequest) []LeaveRequestResponse {
	res := make([]LeaveRequestResponse, len(leaves))
	for i, l := range leaves {
		res[i] = ToLeaveRequestResponse(&l)
	}
	return res
}
