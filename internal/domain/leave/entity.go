package leave

import (
	"time"

	"github.com/shopspring/decimal"
)

// RequestStatus enum
type RequestStatus string

const (
	RequestStatusPending  RequestStatus = "pending"
	RequestStatusApproved RequestStatus = "approved"
	RequestStatusRejected RequestStatus = "rejected"
)

// LeaveRequest - one yukyu request. Owned by the leave-request workflow;
// compliance tracking only reads approved rows. DaysRequested is decimal and
// may be fractional down to 0.25 (enforced at data entry, not here).
type LeaveRequest struct {
	ID            string
	EmployeeID    string
	HakenmotoID   int
	StartDate     time.Time
	EndDate       time.Time
	DaysRequested decimal.Decimal
	Reason        *string
	Status        RequestStatus
	ApprovedAt    *time.Time
	CreatedAt     time.Time
}

// ComplianceRecord - derived per employee per fiscal year, recomputed on
// demand; there is no persisted compliance state.
type ComplianceRecord struct {
	EmployeeID     string          `json:"employee_id"`
	EmployeeName   string          `json:"employee_name"`
	FiscalYear     int             `json:"fiscal_year"`
	TotalUsed      decimal.Decimal `json:"total_used"`
	TotalRemaining decimal.Decimal `json:"total_remaining"`
	LegalMinimum   decimal.Decimal `json:"legal_minimum"`
	Entitlement    decimal.Decimal `json:"entitlement"`
	IsCompliant    bool            `json:"is_compliant"`
	Warning        *string         `json:"warning,omitempty"`
}

// TrendMonth - one month of yukyu usage for the dashboard.
type TrendMonth struct {
	Month              string          `json:"month"` // "2006-01"
	TotalApprovedDays  decimal.Decimal `json:"total_approved_days"`
	EmployeesWithYukyu int             `json:"employees_with_yukyu"`
	TotalDeductionJPY  decimal.Decimal `json:"total_deduction_jpy"`
}
