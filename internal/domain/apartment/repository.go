package apartment

import "context"

type RentDeductionRepository interface {
	// ListForPayrollMonth returns the pending and processed deductions for an
	// employee in a month. An employee may have several assignments and
	// charge rows in one month; no rows at all is a normal outcome.
	ListForPayrollMonth(ctx context.Context, employeeID string, year, month int) ([]RentDeduction, error)
}
