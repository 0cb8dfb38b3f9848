package employee

import (
	"time"

	"github.com/shopspring/decimal"
)

// Employee - master data snapshot used by payroll and compliance.
// The engine never mutates it; ownership stays with the employee master store.
type Employee struct {
	ID              string
	HakenmotoID     int
	FullNameKanji   string
	FullNameKana    string
	BaseHourlyRate  decimal.Decimal // jikyu, yen per hour
	FactoryID       *string
	ApartmentID     *string
	ApartmentRent   decimal.Decimal
	HireDate        time.Time
	DependentsCount int
	YukyuRemaining  decimal.Decimal // paid-leave balance snapshot, in days
	IsActive        bool
	CreatedAt       time.Time
	UpdatedAt       time.Time
}
