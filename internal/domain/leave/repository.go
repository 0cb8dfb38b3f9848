package leave

import (
	"context"
	"time"
)

type LeaveRequestRepository interface {
	// ListApprovedOverlapping returns approved requests whose [StartDate,
	// EndDate] range overlaps the window. Callers attribute boundary-spanning
	// requests to a fiscal year themselves.
	ListApprovedOverlapping(ctx context.Context, start, end time.Time) ([]LeaveRequest, error)

	// ListApprovedSince returns approved requests starting on or after from,
	// oldest first.
	ListApprovedSince(ctx context.Context, from time.Time) ([]LeaveRequest, error)
}

type ComplianceService interface {
	// GetComplianceStatus classifies every active employee against the legal
	// minimum for the fiscal year; nil means the fiscal year of today.
	GetComplianceStatus(ctx context.Context, fiscalYear *int) ([]ComplianceRecord, error)

	// GetLeaveTrends aggregates approved yukyu usage per calendar month for
	// the trailing N months, newest month last.
	GetLeaveTrends(ctx context.Context, months int) ([]TrendMonth, error)
}
