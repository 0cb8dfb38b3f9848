package payroll

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/uns-kikaku/staffing-backend-go/internal/domain/apartment"
	"github.com/uns-kikaku/staffing-backend-go/internal/domain/employee"
	"github.com/uns-kikaku/staffing-backend-go/internal/domain/payroll"
)

// DeductionCalculator combines the statutory withholdings, computed from
// configured rates over the gross amount, with the apartment-rent ledger
// lookup. It is read-only against the ledger; approving or cancelling
// deductions belongs to the apartment workflow.
type DeductionCalculator struct {
	rentRepo           apartment.RentDeductionRepository
	rates              payroll.StatutoryRates
	includePendingRent bool
}

func NewDeductionCalculator(rentRepo apartment.RentDeductionRepository, rates payroll.StatutoryRates, includePendingRent bool) *DeductionCalculator {
	return &DeductionCalculator{
		rentRepo:           rentRepo,
		rates:              rates,
		includePendingRent: includePendingRent,
	}
}

// Calculate returns the itemized deductions and their total for one
// employee-month. A nil gross means the upstream amount calculation never
// completed and fails the employee. No matching rent rows is not an error:
// not every employee has an apartment assignment.
func (d *DeductionCalculator) Calculate(ctx context.Context, emp employee.Employee, period payroll.Period, gross *decimal.Decimal) (payroll.Deductions, error) {
	if gross == nil {
		return payroll.Deductions{}, payroll.ErrInsufficientData
	}

	out := payroll.Deductions{
		IncomeTax:           d.incomeTax(*gross, emp.DependentsCount),
		ResidentTax:         floorYen(gross.Mul(d.rates.ResidentTaxRate)),
		HealthInsurance:     floorYen(gross.Mul(d.rates.HealthInsuranceRate)),
		Pension:             floorYen(gross.Mul(d.rates.PensionRate)),
		EmploymentInsurance: floorYen(gross.Mul(d.rates.EmploymentInsuranceRate)),
	}

	housing, err := d.housingDeduction(ctx, emp.ID, period)
	if err != nil {
		return payroll.Deductions{}, fmt.Errorf("failed to get apartment deductions: %w", err)
	}
	out.Apartment = housing

	out.Total = out.IncomeTax.
		Add(out.ResidentTax).
		Add(out.HealthInsurance).
		Add(out.Pension).
		Add(out.EmploymentInsurance).
		Add(out.Apartment)

	return out, nil
}

// incomeTax applies the configured withholding rate after the per-dependent
// monthly allowance. The real withholding tables are injected configuration;
// this is their rate-based stand-in.
func (d *DeductionCalculator) incomeTax(gross decimal.Decimal, dependents int) decimal.Decimal {
	taxable := gross.Sub(d.rates.DependentAllowance.Mul(decimal.NewFromInt(int64(dependents))))
	if taxable.IsNegative() {
		return decimal.Zero
	}
	return floorYen(taxable.Mul(d.rates.IncomeTaxRate))
}

// housingDeduction sums total_deduction across every matching ledger row for
// the month; an employee can carry several assignments or charge rows.
func (d *DeductionCalculator) housingDeduction(ctx context.Context, employeeID string, period payroll.Period) (decimal.Decimal, error) {
	rows, err := d.rentRepo.ListForPayrollMonth(ctx, employeeID, period.Year, period.Month)
	if err != nil {
		return decimal.Zero, err
	}

	total := decimal.Zero
	for _, row := range rows {
		if row.Status.CountsTowardPayroll(d.includePendingRent) {
			total = total.Add(row.TotalDeduction)
		}
	}
	return total, nil
}

// Statutory withholdings round down to whole yen per withholding convention;
// pay categories round half-up (see amounts.go).
func floorYen(v decimal.Decimal) decimal.Decimal {
	return v.Floor()
}
