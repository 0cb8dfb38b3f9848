package leave

import (
	"time"

	"github.com/shopspring/decimal"
)

// LegalMinimumDays is the statutory paid-leave minimum per fiscal year for
// qualifying employees under the Labor Standards Act revision.
var LegalMinimumDays = decimal.NewFromInt(5)

// FiscalYearOf returns the Japanese fiscal year containing d: April 1
// through March 31 of the following calendar year.
func FiscalYearOf(d time.Time) int {
	if d.Month() >= time.April {
		return d.Year()
	}
	return d.Year() - 1
}

// FiscalYearWindow returns the first and last calendar day of a fiscal year.
func FiscalYearWindow(fiscalYear int) (start, end time.Time) {
	start = time.Date(fiscalYear, time.April, 1, 0, 0, 0, 0, time.UTC)
	end = time.Date(fiscalYear+1, time.March, 31, 0, 0, 0, 0, time.UTC)
	return start, end
}

// DaysInFiscalYear is 365 or 366 depending on whether the window contains a
// February 29 (which belongs to fiscalYear+1).
func DaysInFiscalYear(fiscalYear int) int {
	start, end := FiscalYearWindow(fiscalYear)
	return int(end.Sub(start).Hours()/24) + 1
}

// AttributedFiscalYear returns the fiscal year a leave request is charged
// against. Requests contained in one fiscal year go to that year; a request
// spanning the April 1 boundary goes to the year holding the majority of its
// calendar days, and a tie goes to the later year since the end date is the
// operative date.
func AttributedFiscalYear(start, end time.Time) int {
	startFY := FiscalYearOf(start)
	if FiscalYearOf(end) == startFY {
		return startFY
	}

	_, startFYEnd := FiscalYearWindow(startFY)
	daysBefore := int(startFYEnd.Sub(truncateDay(start)).Hours()/24) + 1
	daysAfter := int(truncateDay(end).Sub(startFYEnd).Hours() / 24)

	if daysBefore > daysAfter {
		return startFY
	}
	return startFY + 1
}

func truncateDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
