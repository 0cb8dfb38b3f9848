package payroll

import (
	"github.com/shopspring/decimal"

	"github.com/uns-kikaku/staffing-backend-go/internal/domain/payroll"
)

// CalculateAmounts multiplies categorized hours by resolved rates. Each
// category is rounded half-up to whole yen exactly once; the gross total is
// the plain sum of the rounded lines so it always reconciles against the
// itemized payslip.
func CalculateAmounts(hours payroll.HoursBreakdown, rates payroll.Rates) payroll.Amounts {
	a := payroll.Amounts{
		BaseAmount:     roundYen(hours.RegularHours.Mul(rates.BaseRate)),
		OvertimeAmount: roundYen(hours.OvertimeHours.Mul(rates.OvertimeRate)),
		NightAmount:    roundYen(hours.NightHours.Mul(rates.NightRate)),
		HolidayAmount:  roundYen(hours.HolidayHours.Mul(rates.HolidayRate)),
		SundayAmount:   roundYen(hours.SundayHours.Mul(rates.SundayRate)),
	}
	a.GrossAmount = a.BaseAmount.
		Add(a.OvertimeAmount).
		Add(a.NightAmount).
		Add(a.HolidayAmount).
		Add(a.SundayAmount)
	return a
}

// roundYen rounds half-up to the smallest currency unit. Amounts are never
// negative here, so Round's half-away-from-zero is half-up.
func roundYen(v decimal.Decimal) decimal.Decimal {
	return v.Round(0)
}
