package payroll

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/uns-kikaku/staffing-backend-go/internal/domain/apartment"
	"github.com/uns-kikaku/staffing-backend-go/internal/domain/employee"
	"github.com/uns-kikaku/staffing-backend-go/internal/domain/payroll"
)

type stubRentRepo struct {
	rows []apartment.RentDeduction
	err  error
}

func (s *stubRentRepo) ListForPayrollMonth(ctx context.Context, employeeID string, year, month int) ([]apartment.RentDeduction, error) {
	return s.rows, s.err
}

func testEmployee(dependents int) employee.Employee {
	return employee.Employee{
		ID:              "emp-1",
		HakenmotoID:     101,
		FullNameKanji:   "山田太郎",
		BaseHourlyRate:  decimal.NewFromInt(1200),
		HireDate:        time.Date(2023, 4, 1, 0, 0, 0, 0, time.UTC),
		DependentsCount: dependents,
		IsActive:        true,
	}
}

func TestDeductionCalculator_StatutoryFloors(t *testing.T) {
	t.Parallel()
	calc := NewDeductionCalculator(&stubRentRepo{}, payroll.DefaultStatutoryRates(), true)

	gross := decimal.NewFromInt(200000)
	deds, err := calc.Calculate(context.Background(), testEmployee(0), payroll.Period{Year: 2026, Month: 1}, &gross)
	require.NoError(t, err)

	assert.True(t, deds.IncomeTax.Equal(decimal.NewFromInt(10200)), "income tax = %s", deds.IncomeTax)
	assert.True(t, deds.ResidentTax.Equal(decimal.NewFromInt(12000)))
	assert.True(t, deds.HealthInsurance.Equal(decimal.NewFromInt(9900)))
	assert.True(t, deds.Pension.Equal(decimal.NewFromInt(18300)))
	assert.True(t, deds.EmploymentInsurance.Equal(decimal.NewFromInt(1200)))
	assert.True(t, deds.Apartment.IsZero())
	assert.True(t, deds.Total.Equal(decimal.NewFromInt(51600)), "total = %s", deds.Total)
}

func TestDeductionCalculator_DependentAllowance(t *testing.T) {
	t.Parallel()
	calc := NewDeductionCalculator(&stubRentRepo{}, payroll.DefaultStatutoryRates(), true)

	gross := decimal.NewFromInt(200000)
	deds, err := calc.Calculate(context.Background(), testEmployee(2), payroll.Period{Year: 2026, Month: 1}, &gross)
	require.NoError(t, err)

	// taxable = 200000 - 2 x 31667 = 136666; x 0.0510 = 6969.966, floored
	assert.True(t, deds.IncomeTax.Equal(decimal.NewFromInt(6969)), "income tax = %s", deds.IncomeTax)
}

func TestDeductionCalculator_AllowanceExceedsGross(t *testing.T) {
	t.Parallel()
	calc := NewDeductionCalculator(&stubRentRepo{}, payroll.DefaultStatutoryRates(), true)

	gross := decimal.NewFromInt(50000)
	deds, err := calc.Calculate(context.Background(), testEmployee(3), payroll.Period{Year: 2026, Month: 1}, &gross)
	require.NoError(t, err)

	assert.True(t, deds.IncomeTax.IsZero())
}

func TestDeductionCalculator_NilGross(t *testing.T) {
	t.Parallel()
	calc := NewDeductionCalculator(&stubRentRepo{}, payroll.DefaultStatutoryRates(), true)

	_, err := calc.Calculate(context.Background(), testEmployee(0), payroll.Period{Year: 2026, Month: 1}, nil)
	assert.ErrorIs(t, err, payroll.ErrInsufficientData)
}

func TestDeductionCalculator_RentStatusFiltering(t *testing.T) {
	t.Parallel()

	rows := []apartment.RentDeduction{
		{EmployeeID: "emp-1", Status: apartment.DeductionProcessed, TotalDeduction: decimal.NewFromInt(45000)},
		{EmployeeID: "emp-1", Status: apartment.DeductionPending, TotalDeduction: decimal.NewFromInt(5000)},
	}
	gross := decimal.NewFromInt(200000)

	withPending := NewDeductionCalculator(&stubRentRepo{rows: rows}, payroll.DefaultStatutoryRates(), true)
	deds, err := withPending.Calculate(context.Background(), testEmployee(0), payroll.Period{Year: 2026, Month: 1}, &gross)
	require.NoError(t, err)
	assert.True(t, deds.Apartment.Equal(decimal.NewFromInt(50000)), "apartment = %s", deds.Apartment)

	withoutPending := NewDeductionCalculator(&stubRentRepo{rows: rows}, payroll.DefaultStatutoryRates(), false)
	deds, err = withoutPending.Calculate(context.Background(), testEmployee(0), payroll.Period{Year: 2026, Month: 1}, &gross)
	require.NoError(t, err)
	assert.True(t, deds.Apartment.Equal(decimal.NewFromInt(45000)), "apartment = %s", deds.Apartment)
}

func TestDeductionStatus_CountsTowardPayroll(t *testing.T) {
	t.Parallel()

	assert.True(t, apartment.DeductionProcessed.CountsTowardPayroll(false))
	assert.True(t, apartment.DeductionPending.CountsTowardPayroll(true))
	assert.False(t, apartment.DeductionPending.CountsTowardPayroll(false))
	assert.False(t, apartment.DeductionPaid.CountsTowardPayroll(true))
	assert.False(t, apartment.DeductionCancelled.CountsTowardPayroll(true))
}
