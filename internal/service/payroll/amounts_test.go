package payroll

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/uns-kikaku/staffing-backend-go/internal/domain/payroll"
)

func TestCalculateAmounts_NineHourWeekday(t *testing.T) {
	t.Parallel()

	rates, err := ResolveRates(decimal.NewFromInt(1200), payroll.DefaultRateSettings())
	assert.NoError(t, err)

	hours := payroll.HoursBreakdown{
		RegularHours:  decimal.NewFromInt(8),
		OvertimeHours: decimal.NewFromInt(1),
		TotalHours:    decimal.NewFromInt(9),
	}

	amounts := CalculateAmounts(hours, rates)

	assert.True(t, amounts.BaseAmount.Equal(decimal.NewFromInt(9600)), "base = %s", amounts.BaseAmount)
	assert.True(t, amounts.OvertimeAmount.Equal(decimal.NewFromInt(1500)))
	assert.True(t, amounts.GrossAmount.Equal(decimal.NewFromInt(11100)), "gross = %s", amounts.GrossAmount)
}

func TestCalculateAmounts_RoundsEachCategoryOnce(t *testing.T) {
	t.Parallel()

	// 7.5h x 1033 = 7747.5, rounds half-up to 7748; 0.25h x 1291.25 =
	// 322.8125 rounds to 323. Gross is the sum of the rounded lines.
	rates := payroll.Rates{
		BaseRate:     decimal.NewFromInt(1033),
		OvertimeRate: decimal.NewFromFloat(1291.25),
		NightRate:    decimal.NewFromFloat(1291.25),
		HolidayRate:  decimal.NewFromFloat(1394.55),
		SundayRate:   decimal.NewFromFloat(1394.55),
	}
	hours := payroll.HoursBreakdown{
		RegularHours:  decimal.NewFromFloat(7.5),
		OvertimeHours: decimal.NewFromFloat(0.25),
		TotalHours:    decimal.NewFromFloat(7.75),
	}

	amounts := CalculateAmounts(hours, rates)

	assert.True(t, amounts.BaseAmount.Equal(decimal.NewFromInt(7748)), "base = %s", amounts.BaseAmount)
	assert.True(t, amounts.OvertimeAmount.Equal(decimal.NewFromInt(323)), "overtime = %s", amounts.OvertimeAmount)
	assert.True(t, amounts.GrossAmount.Equal(decimal.NewFromInt(8071)))
}

func TestCalculateAmounts_ZeroHours(t *testing.T) {
	t.Parallel()

	rates, err := ResolveRates(decimal.NewFromInt(1200), payroll.DefaultRateSettings())
	assert.NoError(t, err)

	amounts := CalculateAmounts(payroll.HoursBreakdown{}, rates)

	assert.True(t, amounts.GrossAmount.IsZero())
}
