package payrollmath

import (
	"github.com/shopspring/decimal"
)

// Statutory deduction parameters. Values follow the Indian payroll rules the
// company operates under; amounts are monthly.
var (
	pfRate          = decimal.NewFromFloat(0.12)   // employee PF share on basic
	pfWageCeiling   = decimal.NewFromInt(15000)    // basic above this caps PF
	pfCapAmount     = decimal.NewFromInt(1800)     // 12% of the ceiling
	esiRate         = decimal.NewFromFloat(0.0075) // employee ESI share on gross
	esiGrossCeiling = decimal.NewFromInt(21000)    // no ESI above this gross
	ptSlabLow       = decimal.NewFromInt(10000)
	ptSlabMid       = decimal.NewFromInt(15000)
	ptAmountMid     = decimal.NewFromInt(150)
	ptAmountHigh    = decimal.NewFromInt(200)
)

// Round2 rounds a money amount to two decimal places.
func Round2(amount decimal.Decimal) decimal.Decimal {
	return amount.Round(2)
}

// Prorate scales a monthly amount by days worked over days in the month.
func Prorate(monthly decimal.Decimal, daysWorked decimal.Decimal, daysInMonth int) decimal.Decimal {
	if daysInMonth <= 0 {
		return decimal.Zero
	}
	return Round2(monthly.Mul(daysWorked).Div(decimal.NewFromInt(int64(daysInMonth))))
}

// PFDeduction computes the employee provident fund share: 12% of earned
// basic, capped at the statutory ceiling amount.
func PFDeduction(earnedBasic decimal.Decimal) decimal.Decimal {
	if earnedBasic.GreaterThan(pfWageCeiling) {
		return pfCapAmount
	}
	return Round2(earnedBasic.Mul(pfRate))
}

// ESIDeduction computes the employee state insurance share: 0.75% of gross,
// zero once gross crosses the eligibility ceiling.
func ESIDeduction(gross decimal.Decimal) decimal.Decimal {
	if gross.GreaterThan(esiGrossCeiling) {
		return decimal.Zero
	}
	return Round2(gross.Mul(esiRate))
}

// ProfessionalTax returns the slab amount for the given gross pay.
func ProfessionalTax(gross decimal.Decimal) decimal.Decimal {
	switch {
	case gross.LessThanOrEqual(ptSlabLow):
		return decimal.Zero
	case gross.LessThanOrEqual(ptSlabMid):
		return ptAmountMid
	default:
		return ptAmountHigh
	}
}

// ClampAdvanceDeduction limits a requested advance deduction so it neither
// exceeds the advance balance nor drives net pay negative.
func ClampAdvanceDeduction(requested, advanceBalance, payAfterStatutory decimal.Decimal) decimal.Decimal {
	clamped := requested
	if clamped.GreaterThan(advanceBalance) {
		clamped = advanceBalance
	}
	if clamped.GreaterThan(payAfterStatutory) {
		clamped = payAfterStatutory
	}
	if clamped.IsNegative() {
		return decimal.Zero
	}
	return clamped
}
