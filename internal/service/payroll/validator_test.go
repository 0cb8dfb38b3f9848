package payroll

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/uns-kikaku/staffing-backend-go/internal/domain/payroll"
)

func validResult() payroll.CalculationResult {
	return payroll.CalculationResult{
		EmployeeID: "emp-1",
		Period:     payroll.Period{Year: 2026, Month: 1},
		Hours: payroll.HoursBreakdown{
			RegularHours:  decimal.NewFromInt(160),
			OvertimeHours: decimal.NewFromInt(10),
			NightHours:    decimal.NewFromInt(5),
			TotalHours:    decimal.NewFromInt(170),
		},
		Amounts: payroll.Amounts{
			GrossAmount: decimal.NewFromInt(210000),
		},
		NetAmount: decimal.NewFromInt(150000),
	}
}

func TestValidator_ValidResult(t *testing.T) {
	t.Parallel()
	v := NewValidator()

	out := v.Validate(validResult(), nil)

	assert.True(t, out.IsValid)
	assert.Empty(t, out.Errors)
	assert.Empty(t, out.Warnings)
}

func TestValidator_DataFaultsBecomeErrors(t *testing.T) {
	t.Parallel()
	v := NewValidator()

	out := v.Validate(validResult(), []string{"timer record skipped: bad clock_in"})

	assert.False(t, out.IsValid)
	assert.Len(t, out.Errors, 1)
}

func TestValidator_NegativeNetIsWarning(t *testing.T) {
	t.Parallel()
	v := NewValidator()

	r := validResult()
	r.NetAmount = decimal.NewFromInt(-20000)

	out := v.Validate(r, nil)

	assert.True(t, out.IsValid)
	assert.Len(t, out.Warnings, 1)
}

func TestValidator_NetBelowNegativeGrossIsError(t *testing.T) {
	t.Parallel()
	v := NewValidator()

	r := validResult()
	r.NetAmount = decimal.NewFromInt(-250000)

	out := v.Validate(r, nil)

	assert.False(t, out.IsValid)
	assert.NotEmpty(t, out.Errors)
}

func TestValidator_TotalHoursOutOfRange(t *testing.T) {
	t.Parallel()
	v := NewValidator()

	r := validResult()
	r.Hours.TotalHours = decimal.NewFromInt(800)

	out := v.Validate(r, nil)

	assert.False(t, out.IsValid)
}

func TestValidator_CategoryMismatchIsWarning(t *testing.T) {
	t.Parallel()
	v := NewValidator()

	r := validResult()
	r.Hours.RegularHours = decimal.NewFromInt(100)

	out := v.Validate(r, nil)

	// Reconciliation drift is a warning, not a hard failure
	assert.True(t, out.IsValid)
	assert.NotEmpty(t, out.Warnings)
}

func TestValidator_NightHoursExcludedFromReconciliation(t *testing.T) {
	t.Parallel()
	v := NewValidator()

	// Night hours overlap other categories; 160+10 = 170 reconciles even
	// with 5 night hours on top.
	out := v.Validate(validResult(), nil)

	assert.Empty(t, out.Warnings)
}
