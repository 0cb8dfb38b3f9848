package postgresql

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/uns-kikaku/staffing-backend-go/internal/domain/payroll"
	"github.com/uns-kikaku/staffing-backend-go/internal/pkg/database"
)

type payrollRepository struct {
	db *database.DB
}

func NewPayrollRepository(db *database.DB) payroll.PayrollRepository {
	return &payrollRepository{db: db}
}

// ========== SETTINGS ==========

func (r *payrollRepository) GetRateSettings(ctx context.Context) (payroll.RateSettings, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, overtime_multiplier, night_multiplier, holiday_multiplier,
			   sunday_multiplier, standard_hours_per_month, created_at, updated_at
		FROM payroll_rate_settings
		WHERE singleton
	`

	var s payroll.RateSettings
	err := q.QueryRow(ctx, query).Scan(
		&s.ID, &s.OvertimeMultiplier, &s.NightMultiplier, &s.HolidayMultiplier,
		&s.SundayMultiplier, &s.StandardHoursPerMonth, &s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return payroll.RateSettings{}, payroll.ErrRateSettingsNotFound
		}
		return payroll.RateSettings{}, fmt.Errorf("failed to get rate settings: %w", err)
	}

	return s, nil
}

func (r *payrollRepository) UpsertRateSettings(ctx context.Context, settings payroll.RateSettings) (payroll.RateSettings, error) {
	q := GetQuerier(ctx, r.db)

	// Single-row table: the singleton column is constrained unique and always
	// true, so the upsert always targets the same row.
	query := `
		INSERT INTO payroll_rate_settings (
			singleton, overtime_multiplier, night_multiplier,
			holiday_multiplier, sunday_multiplier, standard_hours_per_month
		) VALUES (true, $1, $2, $3, $4, $5)
		ON CONFLICT (singleton) DO UPDATE SET
			overtime_multiplier = EXCLUDED.overtime_multiplier,
			night_multiplier = EXCLUDED.night_multiplier,
			holiday_multiplier = EXCLUDED.holiday_multiplier,
			sunday_multiplier = EXCLUDED.sunday_multiplier,
			standard_hours_per_month = EXCLUDED.standard_hours_per_month,
			updated_at = NOW()
		RETURNING id, overtime_multiplier, night_multiplier, holiday_multiplier,
			sunday_multiplier, standard_hours_per_month, created_at, updated_at
	`

	var s payroll.RateSettings
	err := q.QueryRow(ctx, query,
		settings.OvertimeMultiplier, settings.NightMultiplier,
		settings.HolidayMultiplier, settings.SundayMultiplier, settings.StandardHoursPerMonth,
	).Scan(
		&s.ID, &s.OvertimeMultiplier, &s.NightMultiplier, &s.HolidayMultiplier,
		&s.SundayMultiplier, &s.StandardHoursPerMonth, &s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		return payroll.RateSettings{}, fmt.Errorf("failed to upsert rate settings: %w", err)
	}

	return s, nil
}

// ========== RUNS ==========

func (r *payrollRepository) CreateRun(ctx context.Context, run payroll.PayrollRun) (payroll.PayrollRun, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO payroll_runs (id, period_year, period_month, status, created_by)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, period_year, period_month, status, created_by, created_at
	`

	var created payroll.PayrollRun
	err := q.QueryRow(ctx, query,
		run.ID, run.PeriodYear, run.PeriodMonth, run.Status, run.CreatedBy,
	).Scan(
		&created.ID, &created.PeriodYear, &created.PeriodMonth, &created.Status,
		&created.CreatedBy, &created.CreatedAt,
	)
	if err != nil {
		return payroll.PayrollRun{}, fmt.Errorf("failed to create payroll run: %w", err)
	}

	return created, nil
}

func (r *payrollRepository) GetRun(ctx context.Context, id string) (payroll.PayrollRun, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, period_year, period_month, status, created_by, created_at
		FROM payroll_runs
		WHERE id = $1
	`

	var run payroll.PayrollRun
	err := q.QueryRow(ctx, query, id).Scan(
		&run.ID, &run.PeriodYear, &run.PeriodMonth, &run.Status, &run.CreatedBy, &run.CreatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return payroll.PayrollRun{}, payroll.ErrPayrollRunNotFound
		}
		return payroll.PayrollRun{}, fmt.Errorf("failed to get payroll run: %w", err)
	}

	return run, nil
}

// ========== EMPLOYEE RECORDS ==========

func (r *payrollRepository) SaveEmployeeRecord(ctx context.Context, record payroll.EmployeePayrollRecord) (payroll.EmployeePayrollRecord, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO employee_payroll_records (
			payroll_run_id, employee_id,
			regular_hours, overtime_hours, night_hours, holiday_hours, sunday_hours,
			total_hours, work_days,
			base_rate, overtime_rate, night_rate, holiday_rate, sunday_rate,
			base_amount, overtime_amount, night_amount, holiday_amount, sunday_amount,
			gross_amount,
			income_tax, resident_tax, health_insurance, pension, employment_insurance,
			apartment_deduction, total_deductions, net_amount, is_valid
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14,
			$15, $16, $17, $18, $19, $20, $21, $22, $23, $24, $25, $26, $27, $28, $29
		)
		RETURNING id, created_at
	`

	err := q.QueryRow(ctx, query,
		record.PayrollRunID, record.EmployeeID,
		record.RegularHours, record.OvertimeHours, record.NightHours, record.HolidayHours, record.SundayHours,
		record.TotalHours, record.WorkDays,
		record.BaseRate, record.OvertimeRate, record.NightRate, record.HolidayRate, record.SundayRate,
		record.BaseAmount, record.OvertimeAmount, record.NightAmount, record.HolidayAmount, record.SundayAmount,
		record.GrossAmount,
		record.IncomeTax, record.ResidentTax, record.HealthInsurance, record.Pension, record.EmploymentInsurance,
		record.ApartmentDeduction, record.TotalDeductions, record.NetAmount, record.IsValid,
	).Scan(&record.ID, &record.CreatedAt)
	if err != nil {
		if strings.Contains(err.Error(), "uk_employee_payroll_run_employee") {
			return payroll.EmployeePayrollRecord{}, payroll.ErrPayrollRecordAlreadyExists
		}
		return payroll.EmployeePayrollRecord{}, fmt.Errorf("failed to save employee payroll record: %w", err)
	}

	return record, nil
}

func (r *payrollRepository) ListRecordsByRun(ctx context.Context, runID string) ([]payroll.EmployeePayrollRecord, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, payroll_run_id, employee_id,
			   regular_hours, overtime_hours, night_hours, holiday_hours, sunday_hours,
			   total_hours, work_days,
			   base_rate, overtime_rate, night_rate, holiday_rate, sunday_rate,
			   base_amount, overtime_amount, night_amount, holiday_amount, sunday_amount,
			   gross_amount,
			   income_tax, resident_tax, health_insurance, pension, employment_insurance,
			   apartment_deduction, total_deductions, net_amount, is_valid, created_at
		FROM employee_payroll_records
		WHERE payroll_run_id = $1
		ORDER BY employee_id
	`

	rows, err := q.Query(ctx, query, runID)
	if err != nil {
		return nil, fmt.Errorf("failed to list employee payroll records: %w", err)
	}
	defer rows.Close()

	var records []payroll.EmployeePayrollRecord
	for rows.Next() {
		var rec payroll.EmployeePayrollRecord
		err := rows.Scan(
			&rec.ID, &rec.PayrollRunID, &rec.EmployeeID,
			&rec.RegularHours, &rec.OvertimeHours, &rec.NightHours, &rec.HolidayHours, &rec.SundayHours,
			&rec.TotalHours, &rec.WorkDays,
			&rec.BaseRate, &rec.OvertimeRate, &rec.NightRate, &rec.HolidayRate, &rec.SundayRate,
			&rec.BaseAmount, &rec.OvertimeAmount, &rec.NightAmount, &rec.HolidayAmount, &rec.SundayAmount,
			&rec.GrossAmount,
			&rec.IncomeTax, &rec.ResidentTax, &rec.HealthInsurance, &rec.Pension, &rec.EmploymentInsurance,
			&rec.ApartmentDeduction, &rec.TotalDeductions, &rec.NetAmount, &rec.IsValid, &rec.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan employee payroll record: %w", err)
		}
		records = append(records, rec)
	}

	return records, rows.Err()
}
