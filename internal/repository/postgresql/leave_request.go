package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/uns-kikaku/staffing-backend-go/internal/domain/leave"
	"github.com/uns-kikaku/staffing-backend-go/internal/pkg/database"
)

type leaveRequestRepository struct {
	db *database.DB
}

func NewLeaveRequestRepository(db *database.DB) leave.LeaveRequestRepository {
	return &leaveRequestRepository{db: db}
}

const leaveRequestColumns = `
	id, employee_id, hakenmoto_id, start_date, end_date, days_requested,
	reason, status, approved_at, created_at
`

func (r *leaveRequestRepository) ListApprovedOverlapping(ctx context.Context, start, end time.Time) ([]leave.LeaveRequest, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + leaveRequestColumns + `
		FROM leave_requests
		WHERE status = 'approved'
		  AND start_date <= $2
		  AND end_date >= $1
		ORDER BY start_date, employee_id
	`

	return r.list(ctx, q, query, start, end)
}

func (r *leaveRequestRepository) ListApprovedSince(ctx context.Context, from time.Time) ([]leave.LeaveRequest, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + leaveRequestColumns + `
		FROM leave_requests
		WHERE status = 'approved'
		  AND start_date >= $1
		ORDER BY start_date, employee_id
	`

	return r.list(ctx, q, query, from)
}

func (r *leaveRequestRepository) list(ctx context.Context, q database.Querier, query string, args ...interface{}) ([]leave.LeaveRequest, error) {
	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list leave requests: %w", err)
	}
	defer rows.Close()

	var requests []leave.LeaveRequest
	for rows.Next() {
		var req leave.LeaveRequest
		err := rows.Scan(
			&req.ID, &req.EmployeeID, &req.HakenmotoID, &req.StartDate, &req.EndDate,
			&req.DaysRequested, &req.Reason, &req.Status, &req.ApprovedAt, &req.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan leave request: %w", err)
		}
		requests = append(requests, req)
	}

	return requests, rows.Err()
}
