package apartment

import (
	"time"

	"github.com/shopspring/decimal"
)

// DeductionStatus enum
type DeductionStatus string

const (
	DeductionPending   DeductionStatus = "pending"
	DeductionProcessed DeductionStatus = "processed"
	DeductionPaid      DeductionStatus = "paid"
	DeductionCancelled DeductionStatus = "cancelled"
)

// CountsTowardPayroll reports whether a deduction in this status is withheld
// from the employee's pay this month. Paid rows were already settled and
// cancelled rows never apply; pending rows count only when the payroll run is
// configured to withhold not-yet-processed rent.
func (s DeductionStatus) CountsTowardPayroll(includePending bool) bool {
	switch s {
	case DeductionProcessed:
		return true
	case DeductionPending:
		return includePending
	default:
		return false
	}
}

// RentDeduction - one month of housing charges for one apartment assignment.
// Created and transitioned by the apartment-management workflow; payroll only
// reads it.
type RentDeduction struct {
	ID                string
	AssignmentID      string
	EmployeeID        string
	Year              int
	Month             int
	BaseRent          decimal.Decimal
	AdditionalCharges decimal.Decimal
	TotalDeduction    decimal.Decimal
	Status            DeductionStatus
	Notes             *string
	CreatedAt         time.Time
	UpdatedAt         time.Time
}
