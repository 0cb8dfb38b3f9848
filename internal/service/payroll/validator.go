package payroll

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/uns-kikaku/staffing-backend-go/internal/domain/payroll"
)

// Max working hours in a 31-day month.
var maxMonthlyHours = decimal.NewFromInt(744)

// Validator runs the fixed compliance battery over an assembled calculation.
// Its verdict is attached to the result and never blocks persistence: payroll
// runs stay drafts until a human approves them.
type Validator struct{}

func NewValidator() *Validator {
	return &Validator{}
}

// Validate checks the assembled result plus any data-quality faults collected
// by the hours classifier. Negative net pay alone is only a warning since
// large legitimate deductions exist, but net below -gross means deductions
// exceeded the ceiling and is a hard failure.
func (v *Validator) Validate(result payroll.CalculationResult, dataFaults []string) payroll.ValidationResult {
	out := payroll.ValidationResult{
		Errors:   []string{},
		Warnings: []string{},
	}

	out.Errors = append(out.Errors, dataFaults...)

	if result.Amounts.GrossAmount.IsNegative() {
		out.Errors = append(out.Errors, fmt.Sprintf("gross amount is negative: %s", result.Amounts.GrossAmount))
	}

	if result.NetAmount.IsNegative() {
		if result.NetAmount.LessThan(result.Amounts.GrossAmount.Neg()) {
			out.Errors = append(out.Errors, fmt.Sprintf("net amount %s is below -gross %s: deductions exceed ceiling", result.NetAmount, result.Amounts.GrossAmount.Neg()))
		} else {
			out.Warnings = append(out.Warnings, fmt.Sprintf("net amount is negative: %s", result.NetAmount))
		}
	}

	h := result.Hours
	if h.TotalHours.IsNegative() || h.TotalHours.GreaterThan(maxMonthlyHours) {
		out.Errors = append(out.Errors, fmt.Sprintf("total hours %s outside [0, 744]", h.TotalHours))
	}

	for _, cat := range []struct {
		name  string
		value decimal.Decimal
	}{
		{"regular_hours", h.RegularHours},
		{"overtime_hours", h.OvertimeHours},
		{"night_hours", h.NightHours},
		{"holiday_hours", h.HolidayHours},
		{"sunday_hours", h.SundayHours},
	} {
		if cat.value.IsNegative() {
			out.Errors = append(out.Errors, fmt.Sprintf("%s is negative: %s", cat.name, cat.value))
		}
	}

	// Night hours double-count with the other buckets, so the cross-check
	// excludes them.
	categorySum := h.RegularHours.Add(h.OvertimeHours).Add(h.HolidayHours).Add(h.SundayHours)
	if !categorySum.Equal(h.TotalHours) {
		out.Warnings = append(out.Warnings, fmt.Sprintf("category hours %s do not reconcile with total hours %s", categorySum, h.TotalHours))
	}

	out.IsValid = len(out.Errors) == 0
	return out
}
