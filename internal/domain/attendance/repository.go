package attendance

import "context"

type AttendanceRepository interface {
	// ListByEmployeePeriod returns all timer-card rows for an employee in a
	// calendar month, including rows that may fail classification.
	ListByEmployeePeriod(ctx context.Context, employeeID string, year, month int) ([]TimerRecord, error)
}
