package leave

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/uns-kikaku/staffing-backend-go/internal/domain/employee"
	"github.com/uns-kikaku/staffing-backend-go/internal/domain/leave"
	"github.com/uns-kikaku/staffing-backend-go/internal/domain/payroll"
)

var (
	oneDay              = decimal.NewFromInt(1)
	workingDaysPerMonth = decimal.NewFromInt(20)
)

type ComplianceServiceImpl struct {
	employeeRepo employee.EmployeeRepository
	leaveRepo    leave.LeaveRequestRepository
	payrollRepo  payroll.PayrollRepository
}

func NewComplianceService(
	employeeRepo employee.EmployeeRepository,
	leaveRepo leave.LeaveRequestRepository,
	payrollRepo payroll.PayrollRepository,
) leave.ComplianceService {
	return &ComplianceServiceImpl{
		employeeRepo: employeeRepo,
		leaveRepo:    leaveRepo,
		payrollRepo:  payrollRepo,
	}
}

// ========== COMPLIANCE ==========

func (s *ComplianceServiceImpl) GetComplianceStatus(ctx context.Context, fiscalYear *int) ([]leave.ComplianceRecord, error) {
	fy := leave.FiscalYearOf(time.Now().UTC())
	if fiscalYear != nil {
		fy = *fiscalYear
	}
	if fy < 2019 {
		return nil, fmt.Errorf("%w: %d", leave.ErrInvalidFiscalYear, fy)
	}

	employees, err := s.employeeRepo.ListActive(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list active employees: %w", err)
	}

	fyStart, fyEnd := leave.FiscalYearWindow(fy)

	requests, err := s.leaveRepo.ListApprovedOverlapping(ctx, fyStart, fyEnd)
	if err != nil {
		return nil, fmt.Errorf("failed to list leave requests: %w", err)
	}

	// Requests spanning April 1 are charged to exactly one fiscal year, so
	// only rows attributed to this one count toward its usage.
	usedByEmployee := make(map[string]decimal.Decimal)
	for _, req := range requests {
		if leave.AttributedFiscalYear(req.StartDate, req.EndDate) != fy {
			continue
		}
		usedByEmployee[req.EmployeeID] = usedByEmployee[req.EmployeeID].Add(req.DaysRequested)
	}

	records := make([]leave.ComplianceRecord, 0, len(employees))
	for _, emp := range employees {
		used := usedByEmployee[emp.ID]
		entitlement := entitlementFor(emp.HireDate, fy)
		record := leave.ComplianceRecord{
			EmployeeID:     emp.ID,
			EmployeeName:   emp.FullNameKanji,
			FiscalYear:     fy,
			TotalUsed:      used,
			TotalRemaining: emp.YukyuRemaining,
			LegalMinimum:   leave.LegalMinimumDays,
			Entitlement:    entitlement,
		}

		// Compliance means the employee can still reach their obligation:
		// days already taken plus the remaining balance cover the entitlement,
		// which is the flat legal minimum for full-year employees and the
		// prorated grant for mid-year hires.
		record.IsCompliant = used.Add(emp.YukyuRemaining).GreaterThanOrEqual(entitlement)

		if !record.IsCompliant {
			shortfall := entitlement.Sub(used).Sub(emp.YukyuRemaining)
			w := fmt.Sprintf("balance cannot reach the required minimum: %s days short", shortfall)
			record.Warning = &w
		} else if emp.YukyuRemaining.LessThanOrEqual(oneDay) {
			// Near-miss: compliant on paper but the balance is about to run out.
			w := fmt.Sprintf("only %s yukyu days remain in the balance", emp.YukyuRemaining)
			record.Warning = &w
		}

		records = append(records, record)
	}

	sort.Slice(records, func(i, j int) bool { return records[i].EmployeeID < records[j].EmployeeID })
	return records, nil
}

// entitlementFor prorates the statutory 5-day grant for employees hired
// mid-fiscal-year by the fraction of the year they are employed. Fractional
// entitlements are reported as-is, never rounded.
func entitlementFor(hireDate time.Time, fiscalYear int) decimal.Decimal {
	fyStart, fyEnd := leave.FiscalYearWindow(fiscalYear)

	if !hireDate.After(fyStart) {
		return leave.LegalMinimumDays
	}
	if hireDate.After(fyEnd) {
		return decimal.Zero
	}

	employedDays := int(fyEnd.Sub(truncateDay(hireDate)).Hours()/24) + 1
	return leave.LegalMinimumDays.
		Mul(decimal.NewFromInt(int64(employedDays))).
		Div(decimal.NewFromInt(int64(leave.DaysInFiscalYear(fiscalYear))))
}

// ========== TRENDS ==========

func (s *ComplianceServiceImpl) GetLeaveTrends(ctx context.Context, months int) ([]leave.TrendMonth, error) {
	if months < 1 || months > 24 {
		return nil, fmt.Errorf("%w: %d", leave.ErrInvalidTrendMonths, months)
	}

	// A yukyu day is paid at teiji hours of jikyu; teiji follows the current
	// standard monthly hours, so a settings change flows into the estimate.
	settings, err := s.rateSettingsSnapshot(ctx)
	if err != nil {
		return nil, err
	}
	teijiHours := settings.StandardHoursPerMonth.Div(workingDaysPerMonth)

	now := time.Now().UTC()
	windowStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC).AddDate(0, -(months - 1), 0)

	requests, err := s.leaveRepo.ListApprovedSince(ctx, windowStart)
	if err != nil {
		return nil, fmt.Errorf("failed to list leave requests: %w", err)
	}

	employees, err := s.employeeRepo.ListActive(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list active employees: %w", err)
	}
	rateByEmployee := make(map[string]decimal.Decimal, len(employees))
	for _, emp := range employees {
		rateByEmployee[emp.ID] = emp.BaseHourlyRate
	}

	type bucket struct {
		days      decimal.Decimal
		deduction decimal.Decimal
		employees map[string]struct{}
	}
	buckets := make(map[string]*bucket, months)

	for _, req := range requests {
		key := req.StartDate.Format("2006-01")
		b, ok := buckets[key]
		if !ok {
			b = &bucket{employees: make(map[string]struct{})}
			buckets[key] = b
		}
		b.days = b.days.Add(req.DaysRequested)
		b.employees[req.EmployeeID] = struct{}{}

		// Employees no longer active contribute days but no deduction estimate.
		if rate, ok := rateByEmployee[req.EmployeeID]; ok {
			b.deduction = b.deduction.Add(req.DaysRequested.Mul(teijiHours).Mul(rate))
		}
	}

	// Every month in the window appears, zero-filled, oldest first.
	trends := make([]leave.TrendMonth, 0, months)
	for i := 0; i < months; i++ {
		month := windowStart.AddDate(0, i, 0)
		key := month.Format("2006-01")

		tm := leave.TrendMonth{
			Month:             key,
			TotalApprovedDays: decimal.Zero,
			TotalDeductionJPY: decimal.Zero,
		}
		if b, ok := buckets[key]; ok {
			tm.TotalApprovedDays = b.days
			tm.EmployeesWithYukyu = len(b.employees)
			tm.TotalDeductionJPY = b.deduction
		}
		trends = append(trends, tm)
	}

	return trends, nil
}

// rateSettingsSnapshot reads the stored multipliers, falling back to the
// legal defaults when no override row exists yet.
func (s *ComplianceServiceImpl) rateSettingsSnapshot(ctx context.Context) (payroll.RateSettings, error) {
	settings, err := s.payrollRepo.GetRateSettings(ctx)
	if err != nil {
		if errors.Is(err, payroll.ErrRateSettingsNotFound) {
			return payroll.DefaultRateSettings(), nil
		}
		return payroll.RateSettings{}, err
	}
	return settings, nil
}

func truncateDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
