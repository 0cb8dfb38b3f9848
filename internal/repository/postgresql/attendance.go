package postgresql

import (
	"context"
	"fmt"

	"github.com/uns-kikaku/staffing-backend-go/internal/domain/attendance"
	"github.com/uns-kikaku/staffing-backend-go/internal/pkg/database"
)

type attendanceRepository struct {
	db *database.DB
}

func NewAttendanceRepository(db *database.DB) attendance.AttendanceRepository {
	return &attendanceRepository{db: db}
}

func (r *attendanceRepository) ListByEmployeePeriod(ctx context.Context, employeeID string, year, month int) ([]attendance.TimerRecord, error) {
	q := GetQuerier(ctx, r.db)

	// Clock times stay text: the ingestion pipeline stores them raw and the
	// hours classifier owns the parsing and fault reporting.
	query := `
		SELECT to_char(work_date, 'YYYY-MM-DD'), clock_in, clock_out
		FROM timer_records
		WHERE employee_id = $1
		  AND EXTRACT(YEAR FROM work_date) = $2
		  AND EXTRACT(MONTH FROM work_date) = $3
		ORDER BY work_date, clock_in
	`

	rows, err := q.Query(ctx, query, employeeID, year, month)
	if err != nil {
		return nil, fmt.Errorf("failed to list timer records: %w", err)
	}
	defer rows.Close()

	var records []attendance.TimerRecord
	for rows.Next() {
		var rec attendance.TimerRecord
		if err := rows.Scan(&rec.WorkDate, &rec.ClockIn, &rec.ClockOut); err != nil {
			return nil, fmt.Errorf("failed to scan timer record: %w", err)
		}
		records = append(records, rec)
	}

	return records, rows.Err()
}
