package payroll

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/uns-kikaku/staffing-backend-go/internal/domain/payroll"
)

// ResolveRates combines an employee's base hourly wage with the configured
// multipliers. Pure function, no I/O.
func ResolveRates(baseHourlyRate decimal.Decimal, settings payroll.RateSettings) (payroll.Rates, error) {
	if !baseHourlyRate.IsPositive() {
		return payroll.Rates{}, fmt.Errorf("%w: got %s", payroll.ErrInvalidRate, baseHourlyRate.String())
	}

	return payroll.Rates{
		BaseRate:     baseHourlyRate,
		OvertimeRate: baseHourlyRate.Mul(settings.OvertimeMultiplier),
		NightRate:    baseHourlyRate.Mul(settings.NightMultiplier),
		HolidayRate:  baseHourlyRate.Mul(settings.HolidayMultiplier),
		SundayRate:   baseHourlyRate.Mul(settings.SundayMultiplier),
	}, nil
}
